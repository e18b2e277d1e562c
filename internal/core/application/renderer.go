package application

import (
	"ledgerui/internal/core/domain"
	"ledgerui/internal/core/domain/ui"
)

// Renderer projects transactions into view rows and a balance line.
type Renderer struct {
	formatter *domain.MoneyFormatter
}

// NewRenderer creates a Renderer using formatter for every amount.
func NewRenderer(formatter *domain.MoneyFormatter) *Renderer {
	return &Renderer{formatter: formatter}
}

// Row builds the displayed row for tx.
func (r *Renderer) Row(tx domain.Transaction) ui.Row {
	return ui.Row{
		ID:         tx.ID,
		Title:      tx.Name,
		AmountText: r.formatter.FormatEntry(tx),
		Kind:       tx.Kind(),
		Tx:         tx,
	}
}

// Balance formats the sum of all amounts in txs.
func (r *Renderer) Balance(txs []domain.Transaction) string {
	return r.formatter.Format(domain.Balance(txs))
}

// Render clears view and rebuilds one row per transaction followed by the balance.
func (r *Renderer) Render(view ui.View, txs []domain.Transaction) {
	view.Clear()
	for _, tx := range txs {
		view.AppendRow(r.Row(tx))
	}
	view.SetBalance(r.Balance(txs))
}
