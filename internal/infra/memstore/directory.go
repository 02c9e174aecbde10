package memstore

import (
	"context"
	"log/slog"
	"sync"

	"carevacay/internal/infra"
	"carevacay/internal/usecase/shared"

	"github.com/google/uuid"
)

// UserDirectory is the in-memory stand-in for the external identity
// service; it only resolves ids to snapshots.
type UserDirectory struct {
	mu     sync.RWMutex
	byID   map[uuid.UUID]*shared.UserSnapshot
	logger *slog.Logger
}

func NewUserDirectory(logger *slog.Logger) *UserDirectory {
	return &UserDirectory{
		byID:   make(map[uuid.UUID]*shared.UserSnapshot),
		logger: logger,
	}
}

func (d *UserDirectory) Put(_ context.Context, u *shared.UserSnapshot) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.byID[u.ID] = u
}

func (d *UserDirectory) FindByID(_ context.Context, id uuid.UUID) (*shared.UserSnapshot, error) {
	d.mu.RLock()
	defer d.mu.RUnlock()

	u, ok := d.byID[id]
	if !ok {
		return nil, infra.WrapRepoErr(d.logger, infra.KindNotFound, "user not found", nil)
	}
	return u, nil
}
