// Package domain defines the core domain models and business logic entities.
package domain

import (
	"github.com/shopspring/decimal"
)

// Kind classifies a transaction by the sign of its amount.
type Kind string

// Supported transaction kinds.
const (
	KindCredit Kind = "credit"
	KindDebit  Kind = "debit"
)

// Transaction represents a named, signed monetary amount with a server-assigned identifier.
type Transaction struct {
	ID     string          `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}

// NewTransaction is a simple constructor for the Transaction entity.
func NewTransaction(id, name string, amount decimal.Decimal) Transaction {
	return Transaction{
		ID:     id,
		Name:   name,
		Amount: amount,
	}
}

// Kind returns KindCredit for positive amounts and KindDebit otherwise.
func (t Transaction) Kind() Kind {
	if t.Amount.IsPositive() {
		return KindCredit
	}
	return KindDebit
}

// Equals checks if two transactions carry the same id, name and amount value.
func (t Transaction) Equals(other Transaction) bool {
	return t.ID == other.ID && t.Name == other.Name && t.Amount.Equal(other.Amount)
}

// Balance returns the sum of all amounts in txs.
func Balance(txs []Transaction) decimal.Decimal {
	sum := decimal.Zero
	for _, tx := range txs {
		sum = sum.Add(tx.Amount)
	}
	return sum
}
