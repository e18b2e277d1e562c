// Package webui renders the ledger page over HTTP and turns form posts into view events.
package webui

import (
	"sync"

	"ledgerui/internal/core/domain/ui"
)

// Page is the in-memory page model: transaction rows, balance, form fields and an error line.
// There is exactly one Page per process and every browser session renders it,
// so its form (including edit-mode) and its error line are shared by all visitors.
type Page struct {
	mu       sync.RWMutex
	rows     []ui.Row
	balance  string
	form     ui.FormValues
	errMsg   string
	handlers ui.Handlers
}

// Compile-time check to ensure Page implements ui.View
var _ ui.View = (*Page)(nil)

// PageSnapshot is a copy of the page state, safe to read without locking.
type PageSnapshot struct {
	Rows     []ui.Row      `json:"rows"`
	Balance  string        `json:"balance"`
	Form     ui.FormValues `json:"form"`
	Error    string        `json:"error,omitempty"`
	EditMode bool          `json:"editMode"`
}

// NewPage creates an empty page in create-mode.
func NewPage() *Page {
	return &Page{rows: make([]ui.Row, 0)}
}

func (p *Page) Clear() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rows = make([]ui.Row, 0)
}

func (p *Page) AppendRow(row ui.Row) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.rows = append(p.rows, row)
}

func (p *Page) ReplaceRow(id string, row ui.Row) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i := p.indexOf(id); i >= 0 {
		p.rows[i] = row
	}
}

func (p *Page) RemoveRow(id string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	if i := p.indexOf(id); i >= 0 {
		p.rows = append(p.rows[:i], p.rows[i+1:]...)
	}
}

func (p *Page) SetBalance(text string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.balance = text
}

func (p *Page) SetForm(form ui.FormValues) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = form
}

func (p *Page) ResetForm() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.form = ui.FormValues{}
}

func (p *Page) SetError(msg string) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.errMsg = msg
}

// Bind registers the handlers invoked by the HTTP endpoints.
func (p *Page) Bind(h ui.Handlers) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.handlers = h
}

// Handlers returns the currently bound handlers.
func (p *Page) Handlers() ui.Handlers {
	p.mu.RLock()
	defer p.mu.RUnlock()
	return p.handlers
}

// Row returns the displayed row with the given id.
func (p *Page) Row(id string) (ui.Row, bool) {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if i := p.indexOf(id); i >= 0 {
		return p.rows[i], true
	}
	return ui.Row{}, false
}

// Snapshot copies the current page state.
func (p *Page) Snapshot() PageSnapshot {
	p.mu.RLock()
	defer p.mu.RUnlock()

	rows := make([]ui.Row, len(p.rows))
	copy(rows, p.rows)
	return PageSnapshot{
		Rows:     rows,
		Balance:  p.balance,
		Form:     p.form,
		Error:    p.errMsg,
		EditMode: p.form.ID != "",
	}
}

func (p *Page) indexOf(id string) int {
	for i, row := range p.rows {
		if row.ID == id {
			return i
		}
	}
	return -1
}
