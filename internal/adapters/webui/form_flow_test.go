package webui_test

import (
	"fmt"
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"ledgerui/internal/adapters/storage/memory/snapshot"
	"ledgerui/internal/adapters/storage/memory/transaction"
	"ledgerui/internal/adapters/webui"
	"ledgerui/internal/core/application"
	"ledgerui/internal/core/application/mocks/mock_client"
	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/client"
	"ledgerui/internal/logger"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// setupLedgerRouter serves the real ledger service over the router, with only the remote API mocked.
func setupLedgerRouter(t *testing.T) (http.Handler, *mock_client.TransactionsClient) {
	t.Helper()
	mockClient := mock_client.NewTransactionsClient(t)
	page := webui.NewPage()

	formatter, err := domain.NewMoneyFormatter(domain.DefaultLocale, domain.DefaultCurrencySymbol)
	require.NoError(t, err)

	service, err := application.NewLedgerService(
		transaction.NewInMemoryTransactionStore(),
		snapshot.NewInMemorySnapshotRepo(),
		mockClient,
		page,
		formatter,
		logger.Discard(),
		application.Config{RefreshInterval: time.Second},
	)
	require.NoError(t, err)

	h, err := webui.NewHTTPHandler(page, service, logger.Discard(), 5)
	require.NoError(t, err)
	return webui.NewRouter(h), mockClient
}

func getPage(router http.Handler) string {
	rr := httptest.NewRecorder()
	router.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/", nil))
	return rr.Body.String()
}

func TestFormFlow_FailedCreateKeepsInput(t *testing.T) {
	router, mockClient := setupLedgerRouter(t)

	mockClient.On("Create", mock.Anything, "Coffee", mock.Anything).
		Return(domain.Transaction{}, fmt.Errorf("create transaction: %w", client.ErrRemoteUnavailable)).Once()

	rr := postForm(router, "/transactions", url.Values{"id": {""}, "name": {"Coffee"}, "amount": {"-5"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	body := getPage(router)
	assert.Contains(t, body, `value="Coffee"`)
	assert.Contains(t, body, `value="-5"`)
	assert.Contains(t, body, "Servidor indisponível, tente novamente.")
}

func TestFormFlow_InvalidAmountKeepsInput(t *testing.T) {
	router, _ := setupLedgerRouter(t)

	rr := postForm(router, "/transactions", url.Values{"name": {"Coffee"}, "amount": {"cinco"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	body := getPage(router)
	assert.Contains(t, body, `value="Coffee"`)
	assert.Contains(t, body, `value="cinco"`)
	assert.Contains(t, body, "Valor inválido: cinco")
}

func TestFormFlow_FailedUpdateStaysInEditMode(t *testing.T) {
	router, mockClient := setupLedgerRouter(t)

	mockClient.On("Update", mock.Anything, "42", "Dinner", mock.Anything).
		Return(domain.Transaction{}, fmt.Errorf("update transaction 42: %w: 500", client.ErrUnexpectedStatus)).Once()

	rr := postForm(router, "/transactions", url.Values{"id": {"42"}, "name": {"Dinner"}, "amount": {"-80"}})
	require.Equal(t, http.StatusSeeOther, rr.Code)

	body := getPage(router)
	assert.Contains(t, body, `value="42"`)
	assert.Contains(t, body, `value="Dinner"`)
	assert.Contains(t, body, "Cancelar")
	assert.Contains(t, body, "O servidor recusou a operação.")
}
