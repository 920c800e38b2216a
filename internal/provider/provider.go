// Package provider routes every catalog operation to the remote service
// when connectivity exists and to the local cache otherwise, keeping the
// cache consistent with whichever path is taken.
package provider

import (
	"context"
	"errors"
	"fmt"
	"sort"

	"github.com/sirupsen/logrus"

	"github.com/filmotek/filmotek/internal/connectivity"
	"github.com/filmotek/filmotek/internal/models"
	"github.com/filmotek/filmotek/internal/schema"
	"github.com/filmotek/filmotek/internal/storage"
)

// ErrOfflineUnsupported is returned for operations that have no offline
// semantics: creating and deleting comments.
var ErrOfflineUnsupported = errors.New("operation unsupported while offline")

// ErrOffline is returned when a reconciliation pass is attempted while
// offline. The remote service is not contacted.
var ErrOffline = errors.New("sync attempted while offline")

// RemoteAPI is the transport contract the provider routes to when
// online. Implemented by cinema.Client.
type RemoteAPI interface {
	ListFilms(ctx context.Context) ([]schema.WireFilm, error)
	UpdateFilm(ctx context.Context, film schema.WireFilm) (schema.WireFilm, error)
	ListComments(ctx context.Context, filmID string) ([]schema.WireComment, error)
	AddComment(ctx context.Context, filmID string, draft schema.WireCommentDraft) (schema.AddCommentResponse, error)
	DeleteComment(ctx context.Context, commentID string) error
	BulkSync(ctx context.Context, films []schema.WireFilm) (schema.SyncResponse, error)
}

// Provider is the sync gateway. It holds no state of its own beyond the
// injected collaborators; connectivity is queried fresh on every call.
type Provider struct {
	api    RemoteAPI
	store  storage.Store
	oracle connectivity.Oracle
	logger *logrus.Logger
}

// NewProvider creates a sync gateway.
func NewProvider(api RemoteAPI, store storage.Store, oracle connectivity.Oracle, logger *logrus.Logger) *Provider {
	return &Provider{
		api:    api,
		store:  store,
		oracle: oracle,
		logger: logger,
	}
}

// GetFilms fetches the catalog. Online, the remote result overwrites
// the cache wholesale; offline, the cached films are returned sorted by
// id. The offline path only fails if the cache itself is broken.
func (p *Provider) GetFilms(ctx context.Context) ([]*models.Film, error) {
	if p.oracle.IsOnline() {
		wireFilms, err := p.api.ListFilms(ctx)
		if err != nil {
			return nil, err
		}

		films := make([]*models.Film, 0, len(wireFilms))
		items := make(map[string]*models.Film, len(wireFilms))
		for _, wireFilm := range wireFilms {
			film, err := schema.FilmToClient(wireFilm)
			if err != nil {
				return nil, fmt.Errorf("failed to adapt film: %w", err)
			}
			films = append(films, film)
			items[film.ID] = film
		}

		if err := p.store.SetItems(items); err != nil {
			return nil, err
		}

		p.logger.WithField("count", len(films)).Debug("Catalog fetched from remote")
		return films, nil
	}

	items, err := p.store.GetItems()
	if err != nil {
		return nil, err
	}

	films := make([]*models.Film, 0, len(items))
	for _, film := range items {
		films = append(films, film.Clone())
	}
	sort.Slice(films, func(i, j int) bool { return films[i].ID < films[j].ID })

	p.logger.WithField("count", len(films)).Debug("Catalog served from cache")
	return films, nil
}

// UpdateFilm pushes a film mutation. Online, the server's authoritative
// record is cached and returned; offline, the given film is cached
// as-is and echoed back, to be reconciled later.
func (p *Provider) UpdateFilm(ctx context.Context, film *models.Film) (*models.Film, error) {
	if p.oracle.IsOnline() {
		wireFilm, err := p.api.UpdateFilm(ctx, schema.FilmToServer(film))
		if err != nil {
			return nil, err
		}

		updated, err := schema.FilmToClient(wireFilm)
		if err != nil {
			return nil, fmt.Errorf("failed to adapt film: %w", err)
		}

		if err := p.store.SetItem(updated.ID, updated); err != nil {
			return nil, err
		}
		return updated, nil
	}

	if err := p.store.SetItem(film.ID, film.Clone()); err != nil {
		return nil, err
	}
	return film.Clone(), nil
}

// GetComments fetches a film's comments. There is no comment cache:
// offline, the result is empty.
func (p *Provider) GetComments(ctx context.Context, filmID string) ([]*models.Comment, error) {
	if !p.oracle.IsOnline() {
		return []*models.Comment{}, nil
	}

	wireComments, err := p.api.ListComments(ctx, filmID)
	if err != nil {
		return nil, err
	}
	return schema.CommentsToClient(wireComments)
}

// AddComment creates a comment on a film and returns the updated film
// together with its complete comment collection. Offline, it fails with
// ErrOfflineUnsupported.
func (p *Provider) AddComment(ctx context.Context, film *models.Film, draft models.CommentDraft) (*models.Film, []*models.Comment, error) {
	if !p.oracle.IsOnline() {
		return nil, nil, ErrOfflineUnsupported
	}

	response, err := p.api.AddComment(ctx, film.ID, schema.CommentDraftToServer(draft))
	if err != nil {
		return nil, nil, err
	}

	updated, err := schema.FilmToClient(response.Movie)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to adapt film: %w", err)
	}

	comments, err := schema.CommentsToClient(response.Comments)
	if err != nil {
		return nil, nil, err
	}

	return updated, comments, nil
}

// DeleteComment removes a comment. Offline, it fails with
// ErrOfflineUnsupported.
func (p *Provider) DeleteComment(ctx context.Context, commentID string) error {
	if !p.oracle.IsOnline() {
		return ErrOfflineUnsupported
	}
	return p.api.DeleteComment(ctx, commentID)
}

// Sync pushes every cached film to the remote service in one batch and
// merges the outcome back: accepted films are overwritten with the
// server's payload, rejected films stay untouched in the cache for a
// future attempt. The merge is applied as a single wholesale write, so
// callers never observe an intermediate state. Offline, it fails with
// ErrOffline without contacting the remote service.
func (p *Provider) Sync(ctx context.Context) error {
	if !p.oracle.IsOnline() {
		return ErrOffline
	}

	items, err := p.store.GetItems()
	if err != nil {
		return err
	}

	ids := make([]string, 0, len(items))
	for id := range items {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	wireFilms := make([]schema.WireFilm, 0, len(items))
	for _, id := range ids {
		wireFilms = append(wireFilms, schema.FilmToServer(items[id]))
	}

	response, err := p.api.BulkSync(ctx, wireFilms)
	if err != nil {
		return err
	}

	accepted := 0
	for _, result := range response.Updated {
		if !result.Success {
			continue
		}

		film, err := schema.FilmToClient(result.Payload.Film)
		if err != nil {
			return fmt.Errorf("failed to adapt synced film: %w", err)
		}
		items[film.ID] = film
		accepted++
	}

	if err := p.store.SetItems(items); err != nil {
		return err
	}

	p.logger.WithFields(logrus.Fields{
		"pushed":   len(wireFilms),
		"accepted": accepted,
	}).Info("Catalog sync completed")

	return nil
}
