// Package ledger defines the public API contracts for the transactions ledger service.
package ledger

import (
	"context"
)

// Transaction represents a transaction as exposed by the ledger API.
type Transaction struct {
	ID         string `json:"id"`
	Name       string `json:"name"`
	Amount     string `json:"amount"`
	AmountText string `json:"amountText"`
	Kind       string `json:"kind"`
}

// Summary is the current list of transactions with its formatted balance.
type Summary struct {
	Transactions []Transaction `json:"transactions"`
	Balance      string        `json:"balance"`
}

// Ledger defines the public interface for the transactions ledger service.
type Ledger interface {
	// Summary returns the transactions currently held in the store and their balance.
	Summary(ctx context.Context) (Summary, error)

	// Refresh runs a single fetch, cache check and render pass.
	Refresh(ctx context.Context) error

	// Start initiates the background auto-refresh loop.
	Start(ctx context.Context) error

	// Stop cancels the auto-refresh loop and waits for it to exit.
	Stop(ctx context.Context) error
}
