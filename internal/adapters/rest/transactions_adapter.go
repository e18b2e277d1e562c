// Package rest implements the transactions API client using JSON over HTTP.
package rest

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/client"
	"ledgerui/internal/logger"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const transactionsPath = "transactions"

// TransactionsAdapter implements the client.TransactionsClient interface against a REST transactions API.
type TransactionsAdapter struct {
	baseURL    *url.URL
	httpClient *http.Client
	logger     logger.AppLogger
}

// Compile-time check to ensure TransactionsAdapter implements client.TransactionsClient
var _ client.TransactionsClient = (*TransactionsAdapter)(nil)

// NewTransactionsAdapter creates a new REST adapter rooted at baseURL.
func NewTransactionsAdapter(
	baseURL string,
	httpClient *http.Client,
	appLogger logger.AppLogger,
) (*TransactionsAdapter, error) {
	parsed, err := url.Parse(strings.TrimRight(baseURL, "/"))
	if err != nil {
		return nil, fmt.Errorf("invalid transactions API base URL '%s': %w", baseURL, err)
	}
	if parsed.Scheme == "" || parsed.Host == "" {
		return nil, fmt.Errorf("invalid transactions API base URL '%s': scheme and host are required", baseURL)
	}
	if httpClient == nil {
		httpClient = http.DefaultClient
	}
	if appLogger == nil {
		appLogger = logger.Discard()
	}
	return &TransactionsAdapter{
		baseURL:    parsed,
		httpClient: httpClient,
		logger:     appLogger,
	}, nil
}

// List fetches every transaction known to the API.
func (a *TransactionsAdapter) List(ctx context.Context) ([]domain.Transaction, error) {
	var dtos []Transaction
	if err := a.doJSON(ctx, http.MethodGet, a.collectionURL(), nil, &dtos); err != nil {
		return nil, fmt.Errorf("list transactions: %w", err)
	}

	txs := make([]domain.Transaction, 0, len(dtos))
	for i, dto := range dtos {
		tx, err := mapRESTTransactionToDomain(dto)
		if err != nil {
			return nil, fmt.Errorf("list transactions: item %d: %w", i, err)
		}
		txs = append(txs, tx)
	}
	return txs, nil
}

// Create stores a new transaction and returns it with its server-assigned id.
func (a *TransactionsAdapter) Create(
	ctx context.Context,
	name string,
	amount decimal.Decimal,
) (domain.Transaction, error) {
	var dto Transaction
	body := mapDomainToRequest(name, amount)
	if err := a.doJSON(ctx, http.MethodPost, a.collectionURL(), body, &dto); err != nil {
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}

	tx, err := mapRESTTransactionToDomain(dto)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("create transaction: %w", err)
	}
	return tx, nil
}

// Update replaces the name and amount of the transaction with the given id.
func (a *TransactionsAdapter) Update(
	ctx context.Context,
	id, name string,
	amount decimal.Decimal,
) (domain.Transaction, error) {
	var dto Transaction
	body := mapDomainToRequest(name, amount)
	if err := a.doJSON(ctx, http.MethodPut, a.itemURL(id), body, &dto); err != nil {
		return domain.Transaction{}, fmt.Errorf("update transaction %s: %w", id, err)
	}

	tx, err := mapRESTTransactionToDomain(dto)
	if err != nil {
		return domain.Transaction{}, fmt.Errorf("update transaction %s: %w", id, err)
	}
	return tx, nil
}

// Remove deletes the transaction with the given id. Any response body is ignored.
func (a *TransactionsAdapter) Remove(ctx context.Context, id string) error {
	if err := a.doJSON(ctx, http.MethodDelete, a.itemURL(id), nil, nil); err != nil {
		return fmt.Errorf("remove transaction %s: %w", id, err)
	}
	return nil
}

func (a *TransactionsAdapter) collectionURL() string {
	return a.baseURL.JoinPath(transactionsPath).String()
}

func (a *TransactionsAdapter) itemURL(id string) string {
	return a.baseURL.JoinPath(transactionsPath, url.PathEscape(id)).String()
}

// doJSON performs a single API call. A nil out skips body decoding.
func (a *TransactionsAdapter) doJSON(
	ctx context.Context,
	method string,
	target string,
	in any,
	out any,
) error {
	requestID := uuid.NewString()
	reqLogger := a.logger.With("method", method, "url", target, "requestID", requestID)

	var reqBody io.Reader
	if in != nil {
		jsonReqBody, err := json.Marshal(in)
		if err != nil {
			return fmt.Errorf("failed to marshal request body: %w", err)
		}
		reqBody = bytes.NewReader(jsonReqBody)
	}

	httpReq, err := http.NewRequestWithContext(ctx, method, target, reqBody)
	if err != nil {
		return fmt.Errorf("failed to create HTTP request: %w", err)
	}
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("X-Request-ID", requestID)

	reqLogger.Debug("Sending request to transactions API")

	httpResp, err := a.httpClient.Do(httpReq)
	if err != nil {
		reqLogger.Warn("Transactions API request failed", "error", err)
		return fmt.Errorf("%w: %w", client.ErrRemoteUnavailable, err)
	}
	defer func() {
		if errClose := httpResp.Body.Close(); errClose != nil {
			reqLogger.Warn("Failed to close response body", "error", errClose)
		}
	}()

	bodyBytes, err := io.ReadAll(httpResp.Body)
	if err != nil {
		return fmt.Errorf("%w: failed to read response body: %w", client.ErrRemoteUnavailable, err)
	}

	if httpResp.StatusCode < 200 || httpResp.StatusCode >= 300 {
		reqLogger.Warn("Transactions API answered with non-success status", "status", httpResp.StatusCode)
		return fmt.Errorf("%w: %s: %s", client.ErrUnexpectedStatus, httpResp.Status, strings.TrimSpace(string(bodyBytes)))
	}

	reqLogger.Debug("Transactions API request succeeded", "status", httpResp.StatusCode)

	if out == nil {
		return nil
	}
	if len(bytes.TrimSpace(bodyBytes)) == 0 {
		return fmt.Errorf("%w: empty body", client.ErrInvalidResponse)
	}
	if err := json.Unmarshal(bodyBytes, out); err != nil {
		return fmt.Errorf("%w: %w, body: %s", client.ErrInvalidResponse, err, string(bodyBytes))
	}
	return nil
}
