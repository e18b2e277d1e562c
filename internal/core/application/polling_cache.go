package application

import (
	"context"
	"errors"
	"fmt"

	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/client"
	"ledgerui/internal/core/domain/repository"
)

// PollingCache wraps the client's read path and reports whether the fetched list
// differs from the last one it saw.
type PollingCache struct {
	client    client.TransactionsClient
	snapshots repository.SnapshotRepository
}

// NewPollingCache creates a PollingCache backed by the given snapshot repository.
func NewPollingCache(c client.TransactionsClient, snapshots repository.SnapshotRepository) *PollingCache {
	return &PollingCache{client: c, snapshots: snapshots}
}

// Refresh fetches the full list. When it equals the cached list, the cached list is
// returned with changed=false. Otherwise the cache is replaced and changed=true.
// The first successful fetch always counts as a change. On error the cache is untouched.
func (c *PollingCache) Refresh(ctx context.Context) (txs []domain.Transaction, changed bool, err error) {
	fetched, err := c.client.List(ctx)
	if err != nil {
		return nil, false, err
	}

	cached, err := c.snapshots.Get(ctx)
	switch {
	case errors.Is(err, repository.ErrSnapshotEmpty):
	case err != nil:
		return nil, false, fmt.Errorf("failed to read cached transactions: %w", err)
	case Equal(cached, fetched):
		return cached, false, nil
	}

	if err := c.snapshots.Set(ctx, fetched); err != nil {
		return nil, false, fmt.Errorf("failed to cache transactions: %w", err)
	}
	return fetched, true, nil
}

// Equal reports whether a and b have the same length and are value-equal at every index.
// Order matters: the same elements in a different order are not equal.
func Equal(a, b []domain.Transaction) bool {
	if len(a) != len(b) {
		return false
	}
	for i := range a {
		if !a[i].Equals(b[i]) {
			return false
		}
	}
	return true
}
