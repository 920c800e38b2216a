package models

import "sync"

// FilterStore tracks which film bucket the UI currently shows. The
// active filter decides whether a flag toggle is a PATCH or a MINOR
// change.
type FilterStore struct {
	Notifier[FilterType]

	mu     sync.Mutex
	filter FilterType
}

// NewFilterStore creates a filter store showing all films.
func NewFilterStore() *FilterStore {
	return &FilterStore{filter: FilterAll}
}

// GetFilter returns the active filter.
func (s *FilterStore) GetFilter() FilterType {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filter
}

// SetFilter changes the active filter and notifies with tag.
func (s *FilterStore) SetFilter(tag UpdateType, filter FilterType) {
	s.mu.Lock()
	s.filter = filter
	s.mu.Unlock()

	s.notify(tag, filter)
}
