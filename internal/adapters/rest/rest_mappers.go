package rest

import (
	"bytes"
	"encoding/json"
	"fmt"

	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/client"

	"github.com/shopspring/decimal"
)

// mapDomainToRequest builds the POST/PUT body for a transaction.
func mapDomainToRequest(name string, amount decimal.Decimal) TransactionRequest {
	return TransactionRequest{
		Name:   name,
		Amount: json.Number(amount.String()),
	}
}

// mapRESTTransactionToDomain converts the API DTO for a transaction to the domain model.
func mapRESTTransactionToDomain(dto Transaction) (domain.Transaction, error) {
	id, err := decodeID(dto.ID)
	if err != nil {
		return domain.Transaction{}, err
	}
	return domain.NewTransaction(id, dto.Name, dto.Amount), nil
}

// decodeID accepts a JSON string or number and returns its string form.
func decodeID(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || bytes.Equal(trimmed, []byte("null")) {
		return "", fmt.Errorf("%w: transaction id is missing", client.ErrInvalidResponse)
	}

	if trimmed[0] == '"' {
		var s string
		if err := json.Unmarshal(trimmed, &s); err != nil {
			return "", fmt.Errorf("%w: invalid transaction id %s: %w", client.ErrInvalidResponse, trimmed, err)
		}
		if s == "" {
			return "", fmt.Errorf("%w: transaction id is empty", client.ErrInvalidResponse)
		}
		return s, nil
	}

	var n json.Number
	if err := json.Unmarshal(trimmed, &n); err != nil {
		return "", fmt.Errorf("%w: invalid transaction id %s: %w", client.ErrInvalidResponse, trimmed, err)
	}
	return n.String(), nil
}
