// Package application contains the core application service logic for the transactions ledger.
package application

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/client"
	"ledgerui/internal/core/domain/repository"
	"ledgerui/internal/core/domain/ui"
	"ledgerui/internal/logger"
	"ledgerui/pkg/ledger"
)

var (
	// ErrServiceRunning is returned by Start when the refresh loop is already active.
	ErrServiceRunning = errors.New("service already running")

	// ErrInvalidAmount is returned by Submit when the amount field cannot be parsed.
	ErrInvalidAmount = errors.New("invalid amount")
)

const minCycleTimeout = 500 * time.Millisecond

// Config holds configuration needed by the LedgerService.
type Config struct {
	RefreshInterval time.Duration
}

// LedgerServiceImpl implements the ledger.Ledger interface. It owns the store,
// drives the view and hosts the form controller and the auto-refresh loop.
type LedgerServiceImpl struct {
	store    repository.TransactionStore
	client   client.TransactionsClient
	cache    *PollingCache
	renderer *Renderer
	view     ui.View
	logger   logger.AppLogger

	refreshInterval time.Duration

	// turn serialises every store mutation together with the view update that follows it.
	turn sync.Mutex

	runMu      sync.Mutex
	pollCtx    context.Context
	pollCancel context.CancelFunc
	stopChan   chan struct{}
}

// Compile-time check to ensure LedgerServiceImpl implements ledger.Ledger
var _ ledger.Ledger = (*LedgerServiceImpl)(nil)

// NewLedgerService wires the service and binds its handlers to view.
func NewLedgerService(
	store repository.TransactionStore,
	snapshots repository.SnapshotRepository,
	txClient client.TransactionsClient,
	view ui.View,
	formatter *domain.MoneyFormatter,
	appLogger logger.AppLogger,
	cfg Config,
) (*LedgerServiceImpl, error) {
	if appLogger == nil {
		return nil, errors.New("NewLedgerService: appLogger is nil")
	}
	if store == nil {
		return nil, errors.New("NewLedgerService: store is nil")
	}
	if snapshots == nil {
		return nil, errors.New("NewLedgerService: snapshots is nil")
	}
	if txClient == nil {
		return nil, errors.New("NewLedgerService: txClient is nil")
	}
	if view == nil {
		return nil, errors.New("NewLedgerService: view is nil")
	}
	if formatter == nil {
		return nil, errors.New("NewLedgerService: formatter is nil")
	}
	if cfg.RefreshInterval <= 0 {
		return nil, fmt.Errorf("NewLedgerService: refresh interval must be positive, got %s", cfg.RefreshInterval)
	}

	s := &LedgerServiceImpl{
		store:           store,
		client:          txClient,
		cache:           NewPollingCache(txClient, snapshots),
		renderer:        NewRenderer(formatter),
		view:            view,
		logger:          appLogger,
		refreshInterval: cfg.RefreshInterval,
	}

	view.Bind(ui.Handlers{
		Submit:     s.Submit,
		Edit:       s.Edit,
		Delete:     s.Delete,
		CancelEdit: s.CancelEdit,
	})

	return s, nil
}

// Summary returns the transactions currently held in the store and their formatted balance.
func (s *LedgerServiceImpl) Summary(ctx context.Context) (ledger.Summary, error) {
	txs, err := s.store.All(ctx)
	if err != nil {
		return ledger.Summary{}, fmt.Errorf("failed to read transactions from store: %w", err)
	}

	out := ledger.Summary{
		Transactions: make([]ledger.Transaction, 0, len(txs)),
		Balance:      s.renderer.Balance(txs),
	}
	for _, tx := range txs {
		row := s.renderer.Row(tx)
		out.Transactions = append(out.Transactions, ledger.Transaction{
			ID:         tx.ID,
			Name:       tx.Name,
			Amount:     tx.Amount.String(),
			AmountText: row.AmountText,
			Kind:       string(row.Kind),
		})
	}
	return out, nil
}

// Start initiates the background auto-refresh loop. The first refresh runs immediately.
func (s *LedgerServiceImpl) Start(_ context.Context) error {
	s.runMu.Lock()
	defer s.runMu.Unlock()

	if s.pollCancel != nil && s.pollCtx.Err() == nil {
		s.logger.Info("Ledger service is already running.")
		return ErrServiceRunning
	}

	s.pollCtx, s.pollCancel = context.WithCancel(context.Background())
	s.stopChan = make(chan struct{})

	go s.pollTransactions(s.pollCtx, s.stopChan)
	s.logger.Info("Ledger service started auto-refresh", "interval", s.refreshInterval.String())
	return nil
}

// Stop cancels the auto-refresh loop and waits for it to exit or for ctx to expire.
func (s *LedgerServiceImpl) Stop(ctx context.Context) error {
	s.runMu.Lock()
	if s.pollCancel == nil || s.pollCtx.Err() != nil {
		s.runMu.Unlock()
		s.logger.Info("Ledger service is not running or already stopped.")
		return nil
	}
	s.pollCancel()
	stopChan := s.stopChan
	s.runMu.Unlock()

	s.logger.Info("Stopping ledger service...")
	select {
	case <-stopChan:
		s.logger.Info("Ledger service stopped gracefully.")
		return nil
	case <-ctx.Done():
		s.logger.Error("Ledger service stop timed out.", "error", ctx.Err())
		return ctx.Err()
	}
}

// updateBalance must be called while holding turn.
func (s *LedgerServiceImpl) updateBalance(ctx context.Context) error {
	txs, err := s.store.All(ctx)
	if err != nil {
		return fmt.Errorf("failed to read transactions from store: %w", err)
	}
	s.view.SetBalance(s.renderer.Balance(txs))
	return nil
}

// rejectForm puts the submitted values back into the form and shows msg beside them.
func (s *LedgerServiceImpl) rejectForm(form ui.FormValues, msg string) {
	s.turn.Lock()
	defer s.turn.Unlock()
	s.view.SetForm(form)
	s.view.SetError(msg)
}

// showError surfaces a user-facing message for a failed action.
func (s *LedgerServiceImpl) showError(msg string) {
	s.turn.Lock()
	defer s.turn.Unlock()
	s.view.SetError(msg)
}
