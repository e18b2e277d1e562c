package application

import (
	"context"
	"errors"
	"fmt"
	"time"
)

// Refresh runs the fetch, cache check and render pipeline once.
// An unchanged list leaves the store and the view alone.
func (s *LedgerServiceImpl) Refresh(ctx context.Context) error {
	txs, changed, err := s.cache.Refresh(ctx)
	if err != nil {
		return fmt.Errorf("refresh transactions: %w", err)
	}
	if !changed {
		s.logger.Debug("Transactions unchanged, skipping render", "count", len(txs))
		return nil
	}

	s.turn.Lock()
	defer s.turn.Unlock()

	if err := s.store.ReplaceAll(ctx, txs); err != nil {
		return fmt.Errorf("refresh transactions: failed to replace store contents: %w", err)
	}
	stored, err := s.store.All(ctx)
	if err != nil {
		return fmt.Errorf("refresh transactions: failed to read store: %w", err)
	}
	s.renderer.Render(s.view, stored)

	s.logger.Info("Rendered refreshed transactions", "count", len(stored))
	return nil
}

// pollTransactions is the main background loop re-pulling remote state.
func (s *LedgerServiceImpl) pollTransactions(ctx context.Context, stopChan chan struct{}) {
	defer close(stopChan)
	ticker := time.NewTicker(s.refreshInterval)
	defer ticker.Stop()

	s.logger.Info("Auto-refresh loop started.")

	s.refreshCycle(ctx)

	for {
		select {
		case <-ticker.C:
			s.refreshCycle(ctx)
		case <-ctx.Done():
			s.logger.Info("Auto-refresh loop stopping due to context cancellation.")
			return
		}
	}
}

// refreshCycle runs one bounded Refresh. Failures are logged and never stop the loop.
func (s *LedgerServiceImpl) refreshCycle(ctx context.Context) {
	timeout := s.refreshInterval
	if timeout < minCycleTimeout {
		timeout = minCycleTimeout
	}
	cycleCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	if err := s.Refresh(cycleCtx); err != nil {
		if ctx.Err() != nil && (errors.Is(err, context.Canceled) || errors.Is(err, context.DeadlineExceeded)) {
			s.logger.Info("Refresh cycle interrupted by shutdown.", "error", err)
			return
		}
		s.logger.Error("Refresh cycle failed", "error", err)
	}
}
