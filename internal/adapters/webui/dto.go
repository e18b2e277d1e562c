package webui

// ErrorResponse defines a standard structure for JSON error responses.
type ErrorResponse struct {
	Error string `json:"error"`
}

// pageData is the template input for the ledger page.
type pageData struct {
	Page           PageSnapshot
	RefreshSeconds int
}
