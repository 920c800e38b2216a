// Package storage provides the local persistent film cache that keeps
// the catalog usable while the network is down. The sync gateway is the
// only writer; every write is a wholesale key write, never a partial
// record merge.
package storage

import (
	"fmt"
	"time"

	"github.com/timshannon/bolthold"
	"go.etcd.io/bbolt"

	"github.com/filmotek/filmotek/internal/models"
)

// Store is the cache contract consumed by the sync gateway.
type Store interface {
	// GetItems returns the cached films keyed by id.
	GetItems() (map[string]*models.Film, error)
	// SetItem writes one film under its id, replacing any previous record.
	SetItem(id string, film *models.Film) error
	// SetItems replaces the whole cache content in a single transaction.
	SetItems(items map[string]*models.Film) error
}

// BoltStore persists the cache in an embedded bolt database so it
// survives process restarts.
type BoltStore struct {
	store *bolthold.Store
}

// OpenBoltStore opens (or creates) the cache database at path.
func OpenBoltStore(path string) (*BoltStore, error) {
	store, err := bolthold.Open(path, 0600, &bolthold.Options{
		Options: &bbolt.Options{
			Timeout: 1 * time.Second,
		},
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open cache database: %w", err)
	}

	return &BoltStore{store: store}, nil
}

// Close closes the underlying database.
func (s *BoltStore) Close() error {
	return s.store.Close()
}

// GetItems returns every cached film keyed by id.
func (s *BoltStore) GetItems() (map[string]*models.Film, error) {
	var films []*models.Film
	if err := s.store.Find(&films, nil); err != nil {
		return nil, fmt.Errorf("failed to read cache: %w", err)
	}

	items := make(map[string]*models.Film, len(films))
	for _, film := range films {
		items[film.ID] = film
	}
	return items, nil
}

// SetItem upserts one film under its id.
func (s *BoltStore) SetItem(id string, film *models.Film) error {
	if err := s.store.Upsert(id, film); err != nil {
		return fmt.Errorf("failed to write cache entry %q: %w", id, err)
	}
	return nil
}

// SetItems replaces the entire cache content atomically.
func (s *BoltStore) SetItems(items map[string]*models.Film) error {
	err := s.store.Bolt().Update(func(tx *bbolt.Tx) error {
		if err := s.store.TxDeleteMatching(tx, &models.Film{}, nil); err != nil {
			return err
		}
		for id, film := range items {
			if err := s.store.TxInsert(tx, id, film); err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to replace cache content: %w", err)
	}
	return nil
}
