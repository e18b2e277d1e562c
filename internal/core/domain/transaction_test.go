package domain_test

import (
	"testing"

	"ledgerui/internal/core/domain"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func TestTransaction_Kind(t *testing.T) {
	tests := []struct {
		name   string
		amount int64
		want   domain.Kind
	}{
		{name: "Positive amount is credit", amount: 10, want: domain.KindCredit},
		{name: "Negative amount is debit", amount: -10, want: domain.KindDebit},
		{name: "Zero amount is debit", amount: 0, want: domain.KindDebit},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tx := domain.NewTransaction("1", "t", decimal.NewFromInt(tt.amount))
			if got := tx.Kind(); got != tt.want {
				t.Errorf("Kind() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestTransaction_Equals(t *testing.T) {
	a := domain.NewTransaction("1", "Coffee", decimal.RequireFromString("-5.0"))
	b := domain.NewTransaction("1", "Coffee", decimal.NewFromInt(-5))
	c := domain.NewTransaction("2", "Coffee", decimal.NewFromInt(-5))

	assert.True(t, a.Equals(b))
	assert.False(t, a.Equals(c))
}

func TestBalance_IsOrderIndependentSum(t *testing.T) {
	txs := []domain.Transaction{
		domain.NewTransaction("1", "Salary", decimal.RequireFromString("1500.25")),
		domain.NewTransaction("2", "Rent", decimal.RequireFromString("-900")),
		domain.NewTransaction("3", "Coffee", decimal.RequireFromString("-5.25")),
	}
	reversed := []domain.Transaction{txs[2], txs[1], txs[0]}

	want := decimal.RequireFromString("595")
	assert.True(t, want.Equal(domain.Balance(txs)))
	assert.True(t, want.Equal(domain.Balance(reversed)))
	assert.True(t, decimal.Zero.Equal(domain.Balance(nil)))
}
