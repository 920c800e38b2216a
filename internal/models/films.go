package models

import (
	"fmt"
	"sync"
)

// FilmStore is the canonical in-memory film collection. It owns its
// slice exclusively; reads return clones. Populated once with
// UpdateInit at startup and mutated for the process lifetime.
type FilmStore struct {
	Notifier[*Film]

	mu    sync.Mutex
	films []*Film
}

// NewFilmStore creates an empty film store.
func NewFilmStore() *FilmStore {
	return &FilmStore{}
}

// GetFilms returns a copy of the collection in canonical order.
func (s *FilmStore) GetFilms() []*Film {
	s.mu.Lock()
	defer s.mu.Unlock()

	films := make([]*Film, len(s.films))
	for i, film := range s.films {
		films[i] = film.Clone()
	}
	return films
}

// GetFilm returns a copy of the film with the given id, or ErrNotFound.
func (s *FilmStore) GetFilm(id string) (*Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, film := range s.films {
		if film.ID == id {
			return film.Clone(), nil
		}
	}
	return nil, fmt.Errorf("film %q: %w", id, ErrNotFound)
}

// SetFilms replaces the whole collection and notifies with tag.
func (s *FilmStore) SetFilms(tag UpdateType, films []*Film) {
	s.mu.Lock()
	s.films = make([]*Film, len(films))
	for i, film := range films {
		s.films[i] = film.Clone()
	}
	s.mu.Unlock()

	s.notify(tag, nil)
}

// UpdateFilm replaces the entry matching film.ID and notifies with tag.
// A missing id is a contract violation and returns ErrNotFound with the
// store unmodified.
func (s *FilmStore) UpdateFilm(tag UpdateType, film *Film) error {
	s.mu.Lock()

	index := -1
	for i, existing := range s.films {
		if existing.ID == film.ID {
			index = i
			break
		}
	}
	if index == -1 {
		s.mu.Unlock()
		return fmt.Errorf("update film %q: %w", film.ID, ErrNotFound)
	}

	s.films[index] = film.Clone()
	s.mu.Unlock()

	s.notify(tag, film.Clone())
	return nil
}
