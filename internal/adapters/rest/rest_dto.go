package rest

import (
	"encoding/json"

	"github.com/shopspring/decimal"
)

// TransactionRequest is the JSON body sent on POST and PUT.
// Amount is a json.Number so it is written as a bare JSON number.
type TransactionRequest struct {
	Name   string      `json:"name"`
	Amount json.Number `json:"amount"`
}

// Transaction represents the DTO for a transaction returned by the API.
// ID is kept raw because json-server style backends assign numeric ids.
type Transaction struct {
	ID     json.RawMessage `json:"id"`
	Name   string          `json:"name"`
	Amount decimal.Decimal `json:"amount"`
}
