// Package memstore holds the in-memory store implementations behind the
// usecase ports. Persistence proper is owned by external services; these
// stores exist so the core's contracts can run and be tested without them.
package memstore

import (
	"context"
	"log/slog"
	"sync"

	"carevacay/internal/domain/property"
	"carevacay/internal/infra"

	"github.com/google/uuid"
)

type PropertyStore struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*property.Property
	order  []uuid.UUID // insertion order, the catalog's tie-break order
	logger *slog.Logger
}

func NewPropertyStore(logger *slog.Logger) *PropertyStore {
	return &PropertyStore{
		byID:   make(map[uuid.UUID]*property.Property),
		logger: logger,
	}
}

// Put upserts a catalog entry after validating it. Host management owns
// writes; the core only reads.
func (s *PropertyStore) Put(_ context.Context, p *property.Property) error {
	if err := p.Validate(); err != nil {
		return infra.WrapRepoErr(s.logger, infra.KindStoreFailure, "invalid property", err)
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.byID[p.ID]; !exists {
		s.order = append(s.order, p.ID)
	}
	s.byID[p.ID] = p
	return nil
}

func (s *PropertyStore) FindByID(_ context.Context, id uuid.UUID) (*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(s.logger, infra.KindNotFound, "property not found", nil)
	}
	return p, nil
}

func (s *PropertyStore) ListAll(_ context.Context) ([]*property.Property, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	listings := make([]*property.Property, 0, len(s.order))
	for _, id := range s.order {
		listings = append(listings, s.byID[id])
	}
	return listings, nil
}
