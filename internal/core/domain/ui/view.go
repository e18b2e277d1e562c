// Package ui defines the page surface the application renders into and receives events from.
package ui

import (
	"context"

	"ledgerui/internal/core/domain"
)

// Row is the displayed projection of a single transaction.
type Row struct {
	ID         string             `json:"id"`
	Title      string             `json:"title"`
	AmountText string             `json:"amount"`
	Kind       domain.Kind        `json:"kind"`
	Tx         domain.Transaction `json:"-"`
}

// FormValues mirrors the raw contents of the transaction form fields.
// An empty ID means create-mode; a populated ID means edit-mode.
type FormValues struct {
	ID     string `json:"id"`
	Name   string `json:"name"`
	Amount string `json:"amount"`
}

// Handlers are the callbacks a View invokes on user actions.
type Handlers struct {
	Submit     func(ctx context.Context, form FormValues) error
	Edit       func(ctx context.Context, tx domain.Transaction) error
	Delete     func(ctx context.Context, id string) error
	CancelEdit func(ctx context.Context) error
}

// View is the UI abstraction: a list container, a balance display and a form.
type View interface {
	// Clear removes every row.
	Clear()

	// AppendRow adds row at the end of the list.
	AppendRow(row Row)

	// ReplaceRow swaps the row with the given id for row. No-op if absent.
	ReplaceRow(id string, row Row)

	// RemoveRow deletes the row with the given id. No-op if absent.
	RemoveRow(id string)

	// SetBalance displays the formatted balance.
	SetBalance(text string)

	// SetForm fills the form fields.
	SetForm(form FormValues)

	// ResetForm empties the form fields, returning it to create-mode.
	ResetForm()

	// SetError displays a user-facing error message; an empty message clears it.
	SetError(msg string)

	// Bind registers the user action handlers.
	Bind(h Handlers)
}
