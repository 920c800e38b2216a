package storage

import (
	"sync"

	"github.com/filmotek/filmotek/internal/models"
)

// MemoryStore is a Store kept entirely in memory. Used when no cache
// file is configured, and by tests.
type MemoryStore struct {
	mu    sync.Mutex
	items map[string]*models.Film
}

// NewMemoryStore creates an empty in-memory store.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{items: make(map[string]*models.Film)}
}

// GetItems returns a copy of the cache content keyed by id.
func (s *MemoryStore) GetItems() (map[string]*models.Film, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	items := make(map[string]*models.Film, len(s.items))
	for id, film := range s.items {
		items[id] = film.Clone()
	}
	return items, nil
}

// SetItem writes one film under its id.
func (s *MemoryStore) SetItem(id string, film *models.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items[id] = film.Clone()
	return nil
}

// SetItems replaces the whole cache content.
func (s *MemoryStore) SetItems(items map[string]*models.Film) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.items = make(map[string]*models.Film, len(items))
	for id, film := range items {
		s.items[id] = film.Clone()
	}
	return nil
}
