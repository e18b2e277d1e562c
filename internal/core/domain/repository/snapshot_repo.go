package repository

import (
	"context"
	"errors"

	"ledgerui/internal/core/domain"
)

// ErrSnapshotEmpty indicates that no list has been fetched yet.
var ErrSnapshotEmpty = errors.New("snapshot not initialized")

// SnapshotRepository holds the last-fetched transaction list used by the polling cache.
type SnapshotRepository interface {
	// Get returns the last stored list, or ErrSnapshotEmpty before the first Set.
	Get(ctx context.Context) ([]domain.Transaction, error)

	// Set replaces the stored list.
	Set(ctx context.Context, txs []domain.Transaction) error
}
