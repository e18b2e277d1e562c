package application

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/client"
	"ledgerui/internal/core/domain/ui"
	"ledgerui/internal/utils"

	"github.com/shopspring/decimal"
)

// Submit handles the transaction form. A populated id updates that transaction,
// an empty id creates a new one. On failure the store and the rows are left as they were
// and the submitted values stay in the form next to the error.
func (s *LedgerServiceImpl) Submit(ctx context.Context, form ui.FormValues) error {
	id := strings.TrimSpace(form.ID)
	name := strings.TrimSpace(form.Name)
	formLogger := s.logger.With("txID", id, "name", name)

	amount, err := utils.ParseAmount(form.Amount)
	if err != nil {
		formLogger.Warn("Rejected form submission", "amount", form.Amount, "error", err)
		s.rejectForm(form, "Valor inválido: "+form.Amount)
		return fmt.Errorf("%w: %w", ErrInvalidAmount, err)
	}

	if id != "" {
		return s.update(ctx, form, id, name, amount)
	}
	return s.create(ctx, form, name, amount)
}

func (s *LedgerServiceImpl) create(ctx context.Context, form ui.FormValues, name string, amount decimal.Decimal) error {
	tx, err := s.client.Create(ctx, name, amount)
	if err != nil {
		s.logger.Error("Failed to create transaction", "name", name, "error", err)
		s.rejectForm(form, userMessage(err))
		return err
	}

	s.turn.Lock()
	defer s.turn.Unlock()

	_, existed, err := s.store.FindByID(ctx, tx.ID)
	if err != nil {
		return fmt.Errorf("failed to look up created transaction: %w", err)
	}
	if err := s.store.Append(ctx, tx); err != nil {
		return fmt.Errorf("failed to store created transaction: %w", err)
	}
	if existed {
		s.view.ReplaceRow(tx.ID, s.renderer.Row(tx))
	} else {
		s.view.AppendRow(s.renderer.Row(tx))
	}

	s.logger.Info("Transaction created", "txID", tx.ID)
	return s.finishSubmit(ctx)
}

func (s *LedgerServiceImpl) update(
	ctx context.Context,
	form ui.FormValues,
	id, name string,
	amount decimal.Decimal,
) error {
	tx, err := s.client.Update(ctx, id, name, amount)
	if err != nil {
		s.logger.Error("Failed to update transaction", "txID", id, "error", err)
		s.rejectForm(form, userMessage(err))
		return err
	}

	s.turn.Lock()
	defer s.turn.Unlock()

	replaced, err := s.store.ReplaceByID(ctx, id, tx)
	if err != nil {
		return fmt.Errorf("failed to store updated transaction: %w", err)
	}
	if replaced {
		s.view.ReplaceRow(id, s.renderer.Row(tx))
	} else {
		s.logger.Debug("Updated transaction not present locally", "txID", id)
	}

	s.logger.Info("Transaction updated", "txID", id)
	return s.finishSubmit(ctx)
}

// finishSubmit must be called while holding turn.
func (s *LedgerServiceImpl) finishSubmit(ctx context.Context) error {
	s.view.ResetForm()
	s.view.SetError("")
	return s.updateBalance(ctx)
}

// Edit copies tx into the form, switching it to edit-mode.
// The amount uses a comma decimal separator so it parses back unambiguously.
func (s *LedgerServiceImpl) Edit(_ context.Context, tx domain.Transaction) error {
	s.turn.Lock()
	defer s.turn.Unlock()

	s.view.SetForm(ui.FormValues{
		ID:     tx.ID,
		Name:   tx.Name,
		Amount: strings.Replace(tx.Amount.String(), ".", ",", 1),
	})
	s.view.SetError("")
	return nil
}

// CancelEdit returns the form to create-mode.
func (s *LedgerServiceImpl) CancelEdit(_ context.Context) error {
	s.turn.Lock()
	defer s.turn.Unlock()

	s.view.ResetForm()
	return nil
}

// Delete removes the transaction remotely, then drops its store entry and row.
func (s *LedgerServiceImpl) Delete(ctx context.Context, id string) error {
	if err := s.client.Remove(ctx, id); err != nil {
		s.logger.Error("Failed to delete transaction", "txID", id, "error", err)
		s.showError(userMessage(err))
		return err
	}

	s.turn.Lock()
	defer s.turn.Unlock()

	removed, err := s.store.RemoveByID(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to remove transaction from store: %w", err)
	}
	if !removed {
		s.logger.Debug("Deleted transaction not present locally", "txID", id)
	}
	s.view.RemoveRow(id)
	s.view.SetError("")

	s.logger.Info("Transaction deleted", "txID", id)
	return s.updateBalance(ctx)
}

func userMessage(err error) string {
	switch {
	case errors.Is(err, client.ErrRemoteUnavailable):
		return "Servidor indisponível, tente novamente."
	case errors.Is(err, client.ErrUnexpectedStatus):
		return "O servidor recusou a operação."
	case errors.Is(err, client.ErrInvalidResponse):
		return "Resposta inválida do servidor."
	default:
		return "Não foi possível concluir a operação."
	}
}
