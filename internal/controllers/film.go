// Package controllers drives user-initiated catalog mutations through
// the sync gateway, giving each one an optimistic lifecycle: the view
// is told immediately, the store is committed on success, and the view
// is shaken back on failure.
package controllers

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/filmotek/filmotek/internal/models"
)

// ErrMutationInFlight is returned when a comment mutation is attempted
// on a film that already has one outstanding. The relevant control is
// disabled for the duration; callers retry after settlement.
var ErrMutationInFlight = errors.New("mutation already in flight")

// ErrNotViewing is returned when a comment mutation is attempted while
// the film's detail view is not open.
var ErrNotViewing = errors.New("detail view not open")

// ViewState is the overlay status broadcast to views during an
// in-flight comment mutation.
type ViewState string

const (
	// ViewStateSaving disables the comment authoring control.
	ViewStateSaving ViewState = "SAVING"
	// ViewStateDeleting disables one comment's delete control.
	ViewStateDeleting ViewState = "DELETING"
	// ViewStateAborting signals a failed attempt; it is transient and
	// always resolves back to the pre-attempt state with controls
	// re-enabled.
	ViewStateAborting ViewState = "ABORTING"
)

// ToggleField names a user-details flag a view can toggle.
type ToggleField string

const (
	ToggleWatchlist ToggleField = "watchlist"
	ToggleWatched   ToggleField = "alreadyWatched"
	ToggleFavorite  ToggleField = "favorite"
)

// FilmView is a presentation instance rendering one film. A film may be
// rendered by several views at once (main list, top rated, most
// commented); the controller broadcasts to all of them.
type FilmView interface {
	// ShowFilm rerenders the film. resetOverlay tells the view to also
	// drop any transient authoring state.
	ShowFilm(film *models.Film, resetOverlay bool)
	// SetViewState applies an overlay status. commentID is empty when
	// the authoring control is affected, otherwise it scopes the state
	// to that one comment's control.
	SetViewState(state ViewState, commentID string)
}

// Gateway is the subset of the sync gateway the controller drives.
type Gateway interface {
	UpdateFilm(ctx context.Context, film *models.Film) (*models.Film, error)
	GetComments(ctx context.Context, filmID string) ([]*models.Comment, error)
	AddComment(ctx context.Context, film *models.Film, draft models.CommentDraft) (*models.Film, []*models.Comment, error)
	DeleteComment(ctx context.Context, commentID string) error
}

type overlay int

const (
	overlayNone overlay = iota
	overlaySaving
	overlayDeleting
)

// FilmController is the per-film mutation orchestrator. There is one
// controller per film id regardless of how many views render the film.
type FilmController struct {
	gateway  Gateway
	films    *models.FilmStore
	comments *models.CommentStore
	filter   *models.FilterStore
	logger   *logrus.Logger

	mu         sync.Mutex
	film       *models.Film
	views      []FilmView
	viewing    bool
	epoch      uint64
	overlay    overlay
	deletingID string
}

// NewFilmController creates a controller for one film.
func NewFilmController(film *models.Film, gateway Gateway, films *models.FilmStore, comments *models.CommentStore, filter *models.FilterStore, logger *logrus.Logger) *FilmController {
	return &FilmController{
		gateway:  gateway,
		films:    films,
		comments: comments,
		filter:   filter,
		logger:   logger,
		film:     film.Clone(),
	}
}

// RegisterView attaches a presentation instance. All registered views
// receive every state broadcast for this film.
func (c *FilmController) RegisterView(view FilmView) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.views = append(c.views, view)
}

// Film returns the controller's current snapshot.
func (c *FilmController) Film() *models.Film {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.film.Clone()
}

// Viewing reports whether the detail view is open.
func (c *FilmController) Viewing() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.viewing
}

// Refresh replaces the controller's snapshot after a store mutation and
// rerenders every view. resetOverlay propagates to the views.
func (c *FilmController) Refresh(film *models.Film, resetOverlay bool) {
	c.mu.Lock()
	c.film = film.Clone()
	views := c.snapshotViews()
	shown := c.film.Clone()
	c.mu.Unlock()

	for _, view := range views {
		view.ShowFilm(shown, resetOverlay)
	}
}

// Open transitions the film into the viewing state and loads its
// comments. A fetch failure is absorbed as an empty collection so the
// detail view is always openable.
func (c *FilmController) Open(ctx context.Context) {
	c.mu.Lock()
	c.viewing = true
	c.epoch++
	c.overlay = overlayNone
	c.deletingID = ""
	epoch := c.epoch
	filmID := c.film.ID
	c.mu.Unlock()

	comments, err := c.gateway.GetComments(ctx, filmID)
	if err != nil {
		c.logger.WithError(err).WithField("film", filmID).Debug("Comment fetch failed, opening with none")
		comments = []*models.Comment{}
	}

	c.mu.Lock()
	stale := !c.viewing || c.epoch != epoch
	c.mu.Unlock()
	if stale {
		// The view closed (or reopened) while the fetch was in flight.
		return
	}

	c.comments.SetComments(comments)
}

// Close transitions back to idle from any overlay status, discarding
// in-flight overlay state. Late completions of already-dispatched calls
// find the epoch advanced and drop their results.
func (c *FilmController) Close() {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.viewing = false
	c.epoch++
	c.overlay = overlayNone
	c.deletingID = ""
}

// Toggle flips one of the user-details flags. Toggles bypass the
// comment overlay machinery entirely: they go straight through the
// gateway and commit with PATCH when the active filter shows all films,
// MINOR otherwise, since a flipped flag may move the film out of the
// current bucket.
func (c *FilmController) Toggle(ctx context.Context, field ToggleField) error {
	c.mu.Lock()
	toggled := c.film.Clone()
	c.mu.Unlock()

	switch field {
	case ToggleWatchlist:
		toggled.UserDetails.Watchlist = !toggled.UserDetails.Watchlist
	case ToggleWatched:
		toggled.UserDetails.AlreadyWatched = !toggled.UserDetails.AlreadyWatched
	case ToggleFavorite:
		toggled.UserDetails.Favorite = !toggled.UserDetails.Favorite
	default:
		return fmt.Errorf("unknown toggle field %q", field)
	}

	tag := models.UpdateMinor
	if c.filter.GetFilter() == models.FilterAll {
		tag = models.UpdatePatch
	}

	updated, err := c.gateway.UpdateFilm(ctx, toggled)
	if err != nil {
		return err
	}

	return c.films.UpdateFilm(tag, updated)
}

// SubmitComment runs the add-comment flow: the authoring control is
// disabled (SAVING), the gateway is called, and on success the
// server-confirmed collection is committed with the COMMENT tag. On
// failure the authoring control aborts and nothing is committed.
func (c *FilmController) SubmitComment(ctx context.Context, draft models.CommentDraft) error {
	c.mu.Lock()
	if !c.viewing {
		c.mu.Unlock()
		return ErrNotViewing
	}
	if c.overlay != overlayNone {
		c.mu.Unlock()
		return ErrMutationInFlight
	}
	c.overlay = overlaySaving
	epoch := c.epoch
	film := c.film.Clone()
	views := c.snapshotViews()
	c.mu.Unlock()

	for _, view := range views {
		view.SetViewState(ViewStateSaving, "")
	}

	updated, comments, err := c.gateway.AddComment(ctx, film, draft)

	c.mu.Lock()
	if !c.viewing || c.epoch != epoch {
		// The view closed mid-flight; the result is discarded and no
		// overlay state may resurface.
		c.mu.Unlock()
		return nil
	}
	c.overlay = overlayNone
	c.mu.Unlock()

	if err != nil {
		c.abort(views, "")
		return err
	}

	c.comments.AddComment(models.UpdateComment, updated, comments)
	return nil
}

// DeleteComment runs the delete-comment flow for one comment id. Only
// that comment's control is disabled (DELETING); all other comments
// stay interactable. On success the deletion commits with the PATCH
// tag; on failure the abort is scoped to that one control.
func (c *FilmController) DeleteComment(ctx context.Context, commentID string) error {
	c.mu.Lock()
	if !c.viewing {
		c.mu.Unlock()
		return ErrNotViewing
	}
	if c.overlay != overlayNone {
		c.mu.Unlock()
		return ErrMutationInFlight
	}
	c.overlay = overlayDeleting
	c.deletingID = commentID
	epoch := c.epoch
	film := c.film.Clone()
	views := c.snapshotViews()
	c.mu.Unlock()

	for _, view := range views {
		view.SetViewState(ViewStateDeleting, commentID)
	}

	err := c.gateway.DeleteComment(ctx, commentID)

	c.mu.Lock()
	if !c.viewing || c.epoch != epoch {
		c.mu.Unlock()
		return nil
	}
	c.overlay = overlayNone
	c.deletingID = ""
	c.mu.Unlock()

	if err != nil {
		c.abort(views, commentID)
		return err
	}

	_, err = c.comments.DeleteComment(models.UpdatePatch, film, commentID)
	return err
}

// abort signals a failed attempt and resolves straight back to the
// pre-attempt state: the attempted change is never applied.
func (c *FilmController) abort(views []FilmView, commentID string) {
	for _, view := range views {
		view.SetViewState(ViewStateAborting, commentID)
	}
}

// snapshotViews must be called with the lock held.
func (c *FilmController) snapshotViews() []FilmView {
	views := make([]FilmView, len(c.views))
	copy(views, c.views)
	return views
}
