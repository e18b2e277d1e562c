// Package transaction provides an in-memory implementation of the TransactionStore interface.
package transaction

import (
	"context"
	"sync"

	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/repository"
)

// InMemoryTransactionStore implements the TransactionStore interface using an ordered slice.
type InMemoryTransactionStore struct {
	mu           sync.RWMutex
	transactions []domain.Transaction
}

// Compile-time check to ensure InMemoryTransactionStore implements repository.TransactionStore
var _ repository.TransactionStore = (*InMemoryTransactionStore)(nil)

// NewInMemoryTransactionStore creates a new, empty in-memory transaction store.
func NewInMemoryTransactionStore() *InMemoryTransactionStore {
	return &InMemoryTransactionStore{
		transactions: make([]domain.Transaction, 0),
	}
}

// ReplaceAll discards the current contents and stores txs in the given order.
// Later duplicates of an id overwrite earlier ones in place.
func (s *InMemoryTransactionStore) ReplaceAll(_ context.Context, txs []domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.transactions = make([]domain.Transaction, 0, len(txs))
	for _, tx := range txs {
		s.upsert(tx)
	}
	return nil
}

// Append adds tx at the end, or replaces the entry with the same id in place.
func (s *InMemoryTransactionStore) Append(_ context.Context, tx domain.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.upsert(tx)
	return nil
}

// ReplaceByID swaps the entry with the given id for tx.
func (s *InMemoryTransactionStore) ReplaceByID(_ context.Context, id string, tx domain.Transaction) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	s.transactions[idx] = tx
	return true, nil
}

// RemoveByID deletes the entry with the given id.
func (s *InMemoryTransactionStore) RemoveByID(_ context.Context, id string) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return false, nil
	}
	s.transactions = append(s.transactions[:idx], s.transactions[idx+1:]...)
	return true, nil
}

// FindByID returns the entry with the given id.
func (s *InMemoryTransactionStore) FindByID(_ context.Context, id string) (domain.Transaction, bool, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	idx := s.indexOf(id)
	if idx < 0 {
		return domain.Transaction{}, false, nil
	}
	return s.transactions[idx], true, nil
}

// All returns a copy of the stored transactions in order.
func (s *InMemoryTransactionStore) All(_ context.Context) ([]domain.Transaction, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	txCopy := make([]domain.Transaction, len(s.transactions))
	copy(txCopy, s.transactions)

	return txCopy, nil
}

// upsert must be called with mu held.
func (s *InMemoryTransactionStore) upsert(tx domain.Transaction) {
	if idx := s.indexOf(tx.ID); idx >= 0 {
		s.transactions[idx] = tx
		return
	}
	s.transactions = append(s.transactions, tx)
}

func (s *InMemoryTransactionStore) indexOf(id string) int {
	for i, tx := range s.transactions {
		if tx.ID == id {
			return i
		}
	}
	return -1
}
