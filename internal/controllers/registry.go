package controllers

import (
	"context"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/filmotek/filmotek/internal/models"
)

// Registry indexes film controllers by film id, independent of how many
// views currently render each film, and enforces that at most one
// detail view is open at a time. The comment store is a single working
// set, so a second open view would cross-contaminate it.
type Registry struct {
	gateway  Gateway
	films    *models.FilmStore
	comments *models.CommentStore
	filter   *models.FilterStore
	logger   *logrus.Logger

	mu          sync.Mutex
	controllers map[string]*FilmController
	open        *FilmController
}

// NewRegistry creates a registry and wires the store subscriptions that
// keep film records and comment id lists consistent.
func NewRegistry(gateway Gateway, films *models.FilmStore, comments *models.CommentStore, filter *models.FilterStore, logger *logrus.Logger) *Registry {
	r := &Registry{
		gateway:     gateway,
		films:       films,
		comments:    comments,
		filter:      filter,
		logger:      logger,
		controllers: make(map[string]*FilmController),
	}

	// Comment mutations notify with the owning film; fold it back into
	// the film store so the comment id list invariant holds.
	comments.Subscribe(func(tag models.UpdateType, film *models.Film) {
		if film == nil {
			return
		}
		if err := films.UpdateFilm(tag, film); err != nil {
			logger.WithError(err).WithField("film", film.ID).Error("Failed to reconcile film after comment change")
		}
	})

	// Single-film store changes propagate to the film's controller and
	// from there to every registered view.
	films.Subscribe(func(tag models.UpdateType, film *models.Film) {
		if film == nil {
			return
		}
		r.mu.Lock()
		controller := r.controllers[film.ID]
		r.mu.Unlock()
		if controller != nil {
			controller.Refresh(film, tag == models.UpdateComment)
		}
	})

	return r
}

// Controller returns the controller for a film, creating it on first
// use. An existing controller is resynced to the given film first: a
// wholesale catalog replace notifies without a per-film payload, so
// its snapshot may predate the replace, and the store is canonical.
func (r *Registry) Controller(film *models.Film) *FilmController {
	r.mu.Lock()
	controller, existing := r.controllers[film.ID]
	if !existing {
		controller = NewFilmController(film, r.gateway, r.films, r.comments, r.filter, r.logger)
		r.controllers[film.ID] = controller
	}
	r.mu.Unlock()

	if existing {
		controller.Refresh(film, false)
	}
	return controller
}

// Open opens the detail view for a film, superseding any view already
// open. The previous controller is closed first, discarding its
// in-flight overlay state.
func (r *Registry) Open(ctx context.Context, filmID string) (*FilmController, error) {
	film, err := r.films.GetFilm(filmID)
	if err != nil {
		return nil, err
	}

	controller := r.Controller(film)

	r.mu.Lock()
	previous := r.open
	r.open = controller
	r.mu.Unlock()

	if previous != nil && previous != controller {
		previous.Close()
	}

	controller.Open(ctx)
	return controller, nil
}

// Close closes the currently open detail view, if any.
func (r *Registry) Close() {
	r.mu.Lock()
	open := r.open
	r.open = nil
	r.mu.Unlock()

	if open != nil {
		open.Close()
	}
}
