package application_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"ledgerui/internal/adapters/storage/memory/snapshot"
	"ledgerui/internal/adapters/storage/memory/transaction"
	"ledgerui/internal/adapters/webui"
	"ledgerui/internal/core/application"
	"ledgerui/internal/core/application/mocks/mock_client"
	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/client"
	"ledgerui/internal/core/domain/ui"
	applogger "ledgerui/internal/logger"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

type fixture struct {
	service *application.LedgerServiceImpl
	client  *mock_client.TransactionsClient
	store   *transaction.InMemoryTransactionStore
	page    *webui.Page
}

// setupService builds the service with a mocked client and the real in-memory store and page.
func setupService(t *testing.T, interval time.Duration) fixture {
	t.Helper()
	mockClient := mock_client.NewTransactionsClient(t)
	store := transaction.NewInMemoryTransactionStore()
	page := webui.NewPage()

	formatter, err := domain.NewMoneyFormatter("pt-BR", "R$")
	require.NoError(t, err)

	service, err := application.NewLedgerService(
		store,
		snapshot.NewInMemorySnapshotRepo(),
		mockClient,
		page,
		formatter,
		applogger.Discard(),
		application.Config{RefreshInterval: interval},
	)
	require.NoError(t, err, "Failed to create test service")

	return fixture{service: service, client: mockClient, store: store, page: page}
}

func tx(id, name, amount string) domain.Transaction {
	return domain.NewTransaction(id, name, decimal.RequireFromString(amount))
}

func amountEq(want string) any {
	expected := decimal.RequireFromString(want)
	return mock.MatchedBy(func(d decimal.Decimal) bool { return d.Equal(expected) })
}

func rowIDs(rows []ui.Row) []string {
	ids := make([]string, 0, len(rows))
	for _, r := range rows {
		ids = append(ids, r.ID)
	}
	return ids
}

func TestNewLedgerService_NilDependencies(t *testing.T) {
	formatter, err := domain.NewMoneyFormatter("pt-BR", "R$")
	require.NoError(t, err)

	_, err = application.NewLedgerService(nil, snapshot.NewInMemorySnapshotRepo(), mock_client.NewTransactionsClient(t),
		webui.NewPage(), formatter, applogger.Discard(), application.Config{RefreshInterval: time.Second})
	assert.Error(t, err)

	_, err = application.NewLedgerService(transaction.NewInMemoryTransactionStore(), snapshot.NewInMemorySnapshotRepo(),
		mock_client.NewTransactionsClient(t), webui.NewPage(), formatter, applogger.Discard(), application.Config{})
	assert.Error(t, err, "zero refresh interval must be rejected")
}

func TestNewLedgerService_BindsHandlers(t *testing.T) {
	f := setupService(t, time.Second)

	h := f.page.Handlers()
	assert.NotNil(t, h.Submit)
	assert.NotNil(t, h.Edit)
	assert.NotNil(t, h.Delete)
	assert.NotNil(t, h.CancelEdit)
}

func TestLedgerService_Summary(t *testing.T) {
	f := setupService(t, time.Second)
	ctx := context.Background()

	require.NoError(t, f.store.ReplaceAll(ctx, []domain.Transaction{
		tx("1", "Salary", "100"),
		tx("2", "Coffee", "-5"),
	}))

	summary, err := f.service.Summary(ctx)
	require.NoError(t, err)
	require.Len(t, summary.Transactions, 2)
	assert.Equal(t, "R$95,00", summary.Balance)
	assert.Equal(t, "R$100,00 C", summary.Transactions[0].AmountText)
	assert.Equal(t, "credit", summary.Transactions[0].Kind)
	assert.Equal(t, "-5", summary.Transactions[1].Amount)
	assert.Equal(t, "debit", summary.Transactions[1].Kind)
}

func TestLedgerService_StartStop(t *testing.T) {
	f := setupService(t, 20*time.Millisecond)
	ctx := context.Background()

	f.client.On("List", mock.Anything).Return([]domain.Transaction{tx("1", "Salary", "10")}, nil)

	require.NoError(t, f.service.Start(ctx))
	t.Cleanup(func() { _ = f.service.Stop(context.Background()) })

	err := f.service.Start(ctx)
	assert.ErrorIs(t, err, application.ErrServiceRunning)

	assert.Eventually(t, func() bool {
		return len(f.page.Snapshot().Rows) == 1
	}, 2*time.Second, 10*time.Millisecond)

	stopCtx, cancel := context.WithTimeout(ctx, 2*time.Second)
	defer cancel()
	require.NoError(t, f.service.Stop(stopCtx))
	assert.NoError(t, f.service.Stop(stopCtx), "stopping twice is a no-op")

	require.NoError(t, f.service.Start(ctx), "a stopped service can be started again")
}

func TestLedgerService_RefreshLoopSurvivesFailedCycle(t *testing.T) {
	f := setupService(t, 20*time.Millisecond)

	f.client.On("List", mock.Anything).Return(nil, client.ErrRemoteUnavailable).Once()
	f.client.On("List", mock.Anything).Return([]domain.Transaction{tx("7", "Rent", "-700")}, nil)

	require.NoError(t, f.service.Start(context.Background()))
	t.Cleanup(func() { _ = f.service.Stop(context.Background()) })

	assert.Eventually(t, func() bool {
		snap := f.page.Snapshot()
		return len(snap.Rows) == 1 && snap.Balance == "-R$700,00"
	}, 2*time.Second, 10*time.Millisecond)
}

func TestLedgerService_StopHonoursContext(t *testing.T) {
	f := setupService(t, time.Hour)

	block := make(chan struct{})
	t.Cleanup(func() { close(block) })
	f.client.On("List", mock.Anything).Run(func(mock.Arguments) { <-block }).Return(nil, errors.New("late")).Maybe()

	require.NoError(t, f.service.Start(context.Background()))

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()
	err := f.service.Stop(ctx)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
