// Package repository defines interfaces for data storage and retrieval operations.
package repository

import (
	"context"

	"ledgerui/internal/core/domain"
)

// TransactionStore defines the ordered, in-memory source of truth for rendered transactions.
type TransactionStore interface {
	// ReplaceAll discards the current contents and stores txs in the given order.
	ReplaceAll(ctx context.Context, txs []domain.Transaction) error

	// Append adds tx at the end, or replaces the entry with the same id in place.
	Append(ctx context.Context, tx domain.Transaction) error

	// ReplaceByID swaps the entry with the given id for tx. Reports false when id is absent.
	ReplaceByID(ctx context.Context, id string, tx domain.Transaction) (bool, error)

	// RemoveByID deletes the entry with the given id. Reports false when id is absent.
	RemoveByID(ctx context.Context, id string) (bool, error)

	// FindByID returns the entry with the given id.
	FindByID(ctx context.Context, id string) (domain.Transaction, bool, error)

	// All returns a copy of the stored transactions in order.
	All(ctx context.Context) ([]domain.Transaction, error)
}
