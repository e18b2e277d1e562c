// Package client defines interfaces for external service clients, such as the transactions API.
//
//go:generate mockery --name TransactionsClient --output ../../application/mocks/mock_client --outpkg mock_client --filename mock_transactions_client.go
package client

import (
	"context"
	"errors"

	"ledgerui/internal/core/domain"

	"github.com/shopspring/decimal"
)

var (
	// ErrRemoteUnavailable indicates that a request to the transactions API could not complete.
	ErrRemoteUnavailable = errors.New("remote unavailable")

	// ErrUnexpectedStatus indicates that the transactions API answered with a non-success status.
	ErrUnexpectedStatus = errors.New("unexpected http status code")

	// ErrInvalidResponse indicates that a response body could not be decoded.
	ErrInvalidResponse = errors.New("invalid response body")
)

// TransactionsClient defines the interface for the CRUD calls against the external transactions API.
type TransactionsClient interface {
	// List fetches every transaction known to the API.
	List(ctx context.Context) ([]domain.Transaction, error)

	// Create stores a new transaction and returns it with its server-assigned id.
	Create(ctx context.Context, name string, amount decimal.Decimal) (domain.Transaction, error)

	// Update replaces the name and amount of the transaction with the given id.
	Update(ctx context.Context, id, name string, amount decimal.Decimal) (domain.Transaction, error)

	// Remove deletes the transaction with the given id.
	Remove(ctx context.Context, id string) error
}
