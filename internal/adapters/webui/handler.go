package webui

import (
	"embed"
	"encoding/json"
	"errors"
	"fmt"
	"html/template"
	"net/http"

	"ledgerui/internal/core/domain/ui"
	"ledgerui/internal/logger"
	"ledgerui/pkg/ledger"

	"github.com/go-chi/chi/v5"
)

//go:embed templates/*.html
var templatesFS embed.FS

var templates = template.Must(template.ParseFS(templatesFS, "templates/*.html"))

// HTTPHandler turns browser requests into page renders and view events.
type HTTPHandler struct {
	page           *Page
	service        ledger.Ledger
	logger         logger.AppLogger
	refreshSeconds int
}

// NewHTTPHandler creates a new handler for page, backed by service for the JSON endpoint.
func NewHTTPHandler(
	page *Page,
	service ledger.Ledger,
	appLogger logger.AppLogger,
	refreshSeconds int,
) (*HTTPHandler, error) {
	if page == nil {
		return nil, errors.New("page cannot be nil for HTTPHandler")
	}
	if service == nil {
		return nil, errors.New("service cannot be nil for HTTPHandler")
	}
	if appLogger == nil {
		return nil, errors.New("logger cannot be nil for HTTPHandler")
	}
	return &HTTPHandler{
		page:           page,
		service:        service,
		logger:         appLogger,
		refreshSeconds: refreshSeconds,
	}, nil
}

// HandlePage handles requests to GET /
func (h *HTTPHandler) HandlePage(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "page.html")
}

// HandleList handles requests to GET /transactions/list, the self-refreshing rows and balance.
func (h *HTTPHandler) HandleList(w http.ResponseWriter, r *http.Request) {
	h.render(w, r, "list.html")
}

func (h *HTTPHandler) render(w http.ResponseWriter, r *http.Request, name string) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	data := pageData{Page: h.page.Snapshot(), RefreshSeconds: h.refreshSeconds}
	if err := templates.ExecuteTemplate(w, name, data); err != nil {
		requestLogger.Error("Failed to render page", "template", name, "error", err)
	}
}

// HandleSubmit handles the transaction form at POST /transactions
func (h *HTTPHandler) HandleSubmit(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	if err := r.ParseForm(); err != nil {
		requestLogger.Warn("Invalid form body", "error", err)
		http.Error(w, "Invalid form body", http.StatusBadRequest)
		return
	}

	submit := h.page.Handlers().Submit
	if submit == nil {
		respondUnbound(w, requestLogger)
		return
	}

	form := ui.FormValues{
		ID:     r.PostFormValue("id"),
		Name:   r.PostFormValue("name"),
		Amount: r.PostFormValue("amount"),
	}
	if err := submit(r.Context(), form); err != nil {
		requestLogger.Warn("Form submission failed", "error", err)
	}
	redirectHome(w, r)
}

// HandleEdit handles the row edit control at POST /transactions/{id}/edit
func (h *HTTPHandler) HandleEdit(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path, "txID", id)

	row, ok := h.page.Row(id)
	if !ok {
		requestLogger.Warn("Edit requested for a row that is not displayed")
		http.Error(w, "Transaction not found", http.StatusNotFound)
		return
	}

	edit := h.page.Handlers().Edit
	if edit == nil {
		respondUnbound(w, requestLogger)
		return
	}
	if err := edit(r.Context(), row.Tx); err != nil {
		requestLogger.Warn("Edit failed", "error", err)
	}
	redirectHome(w, r)
}

// HandleDelete handles the row delete control at POST /transactions/{id}/delete
func (h *HTTPHandler) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path, "txID", id)

	del := h.page.Handlers().Delete
	if del == nil {
		respondUnbound(w, requestLogger)
		return
	}
	if err := del(r.Context(), id); err != nil {
		requestLogger.Warn("Delete failed", "error", err)
	}
	redirectHome(w, r)
}

// HandleResetForm handles POST /form/reset
func (h *HTTPHandler) HandleResetForm(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	cancelEdit := h.page.Handlers().CancelEdit
	if cancelEdit == nil {
		respondUnbound(w, requestLogger)
		return
	}
	if err := cancelEdit(r.Context()); err != nil {
		requestLogger.Warn("Form reset failed", "error", err)
	}
	redirectHome(w, r)
}

// HandleGetTransactions handles requests to GET /api/transactions
func (h *HTTPHandler) HandleGetTransactions(w http.ResponseWriter, r *http.Request) {
	requestLogger := h.logger.With("method", r.Method, "path", r.URL.Path)

	summary, err := h.service.Summary(r.Context())
	if err != nil {
		requestLogger.Error("Error getting transactions summary", "error", err)
		respondWithError(w, http.StatusInternalServerError, "Failed to retrieve transactions", requestLogger)
		return
	}

	requestLogger.Debug("Successfully retrieved transactions", "count", len(summary.Transactions))
	respondWithJSON(w, http.StatusOK, summary, requestLogger)
}

// HandleHealth handles requests to GET /health
func (h *HTTPHandler) HandleHealth(w http.ResponseWriter, _ *http.Request) {
	_, _ = w.Write([]byte("ok"))
}

func redirectHome(w http.ResponseWriter, r *http.Request) {
	http.Redirect(w, r, "/", http.StatusSeeOther)
}

func respondUnbound(w http.ResponseWriter, l logger.AppLogger) {
	l.Error("No handler bound to the page")
	http.Error(w, "Service not ready", http.StatusServiceUnavailable)
}

// respondWithError logs a warning and sends a JSON error response with the given code and message.
func respondWithError(w http.ResponseWriter, code int, message string, l logger.AppLogger) {
	l.Warn("Responding with error", "http_code", code, "message", message)
	respondWithJSON(w, code, ErrorResponse{Error: message}, l)
}

// respondWithJSON marshals the given payload into JSON and writes it to the response writer.
func respondWithJSON(w http.ResponseWriter, code int, payload any, l logger.AppLogger) {
	response, err := json.Marshal(payload)
	if err != nil {
		l.Error("Error marshaling JSON response",
			"error", err.Error(),
			"payload_type", fmt.Sprintf("%T", payload),
		)
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(`{"error":"Failed to marshal response"}`))
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(code)

	if n, writeErr := w.Write(response); writeErr != nil {
		l.Error("Error writing response body", "error", writeErr, "bytes_written", n)
	}
}
