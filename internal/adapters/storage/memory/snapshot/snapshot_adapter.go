// Package snapshot provides an in-memory implementation of the SnapshotRepository interface.
package snapshot

import (
	"context"
	"sync"

	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/repository"
)

// InMemorySnapshotRepo is an in-memory implementation of SnapshotRepository.
type InMemorySnapshotRepo struct {
	mu       sync.RWMutex
	snapshot []domain.Transaction
	set      bool
}

// Compile-time check to ensure InMemorySnapshotRepo implements repository.SnapshotRepository
var _ repository.SnapshotRepository = (*InMemorySnapshotRepo)(nil)

// NewInMemorySnapshotRepo creates a new InMemorySnapshotRepo.
func NewInMemorySnapshotRepo() *InMemorySnapshotRepo {
	return &InMemorySnapshotRepo{}
}

// Get retrieves a copy of the last stored list.
func (r *InMemorySnapshotRepo) Get(_ context.Context) ([]domain.Transaction, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	if !r.set {
		return nil, repository.ErrSnapshotEmpty
	}
	out := make([]domain.Transaction, len(r.snapshot))
	copy(out, r.snapshot)
	return out, nil
}

// Set stores a copy of txs.
func (r *InMemorySnapshotRepo) Set(_ context.Context, txs []domain.Transaction) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.snapshot = make([]domain.Transaction, len(txs))
	copy(r.snapshot, txs)
	r.set = true
	return nil
}
