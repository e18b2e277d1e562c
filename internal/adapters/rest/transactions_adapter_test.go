package rest_test

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"ledgerui/internal/adapters/rest"
	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/client"
	"ledgerui/internal/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newAdapter(t *testing.T, handler http.HandlerFunc) *rest.TransactionsAdapter {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	adapter, err := rest.NewTransactionsAdapter(srv.URL, srv.Client(), logger.Discard())
	require.NoError(t, err)
	return adapter
}

func TestTransactionsAdapter_List(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.NotEmpty(t, r.Header.Get("X-Request-ID"))
		_, _ = io.WriteString(w, `[{"id":"a1","name":"Salary","amount":1500.5},{"id":7,"name":"Coffee","amount":-5}]`)
	})

	txs, err := adapter.List(context.Background())
	require.NoError(t, err)
	require.Len(t, txs, 2)

	assert.Equal(t, "a1", txs[0].ID)
	assert.Equal(t, "Salary", txs[0].Name)
	assert.True(t, decimal.RequireFromString("1500.5").Equal(txs[0].Amount))
	assert.Equal(t, "7", txs[1].ID, "numeric ids are normalised to strings")
	assert.True(t, decimal.NewFromInt(-5).Equal(txs[1].Amount))
}

func TestTransactionsAdapter_Create(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/transactions", r.URL.Path)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))

		body, err := io.ReadAll(r.Body)
		require.NoError(t, err)
		assert.JSONEq(t, `{"name":"Coffee","amount":-5}`, string(body), "amount must be a JSON number")

		w.WriteHeader(http.StatusCreated)
		_, _ = io.WriteString(w, `{"id":"99","name":"Coffee","amount":-5}`)
	})

	tx, err := adapter.Create(context.Background(), "Coffee", decimal.NewFromInt(-5))
	require.NoError(t, err)
	assert.Equal(t, "99", tx.ID)
	assert.Equal(t, "Coffee", tx.Name)
}

func TestTransactionsAdapter_Update(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPut, r.Method)
		assert.Equal(t, "/transactions/42", r.URL.Path)

		var req map[string]any
		require.NoError(t, json.NewDecoder(r.Body).Decode(&req))
		assert.Equal(t, "Lunch", req["name"])

		_, _ = io.WriteString(w, `{"id":"42","name":"Lunch","amount":-30.25}`)
	})

	tx, err := adapter.Update(context.Background(), "42", "Lunch", decimal.RequireFromString("-30.25"))
	require.NoError(t, err)
	assert.Equal(t, domain.NewTransaction("42", "Lunch", tx.Amount), tx)
	assert.True(t, decimal.RequireFromString("-30.25").Equal(tx.Amount))
}

func TestTransactionsAdapter_NonSuccessStatus(t *testing.T) {
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "not found", http.StatusNotFound)
	})
	ctx := context.Background()

	_, err := adapter.Update(ctx, "42", "Lunch", decimal.NewFromInt(1))
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrUnexpectedStatus)

	_, err = adapter.Create(ctx, "Lunch", decimal.NewFromInt(1))
	assert.ErrorIs(t, err, client.ErrUnexpectedStatus)

	err = adapter.Remove(ctx, "42")
	assert.ErrorIs(t, err, client.ErrUnexpectedStatus)

	_, err = adapter.List(ctx)
	assert.ErrorIs(t, err, client.ErrUnexpectedStatus)
}

func TestTransactionsAdapter_Remove(t *testing.T) {
	called := false
	adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
		called = true
		assert.Equal(t, http.MethodDelete, r.Method)
		assert.Equal(t, "/transactions/7", r.URL.Path)
		w.WriteHeader(http.StatusOK)
		_, _ = io.WriteString(w, `{}`)
	})

	require.NoError(t, adapter.Remove(context.Background(), "7"))
	assert.True(t, called)
}

func TestTransactionsAdapter_RemoteUnavailable(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	baseURL := srv.URL
	srv.Close()

	adapter, err := rest.NewTransactionsAdapter(baseURL, nil, logger.Discard())
	require.NoError(t, err)

	_, err = adapter.List(context.Background())
	require.Error(t, err)
	assert.ErrorIs(t, err, client.ErrRemoteUnavailable)
}

func TestTransactionsAdapter_InvalidResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{name: "Not JSON", body: `<html>oops</html>`},
		{name: "Empty body", body: ``},
		{name: "Missing id", body: `{"name":"Coffee","amount":-5}`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			adapter := newAdapter(t, func(w http.ResponseWriter, r *http.Request) {
				_, _ = io.WriteString(w, tt.body)
			})

			_, err := adapter.Create(context.Background(), "Coffee", decimal.NewFromInt(-5))
			require.Error(t, err)
			assert.ErrorIs(t, err, client.ErrInvalidResponse)
		})
	}
}

func TestNewTransactionsAdapter_InvalidBaseURL(t *testing.T) {
	_, err := rest.NewTransactionsAdapter("localhost-without-scheme", nil, nil)
	assert.Error(t, err)
}
