// Package handlers provides HTTP response helpers shared by handlers.
package handlers

import (
	"log/slog"
	"net/http"
)

// ContentTypeText is the content type for plain-text responses.
const ContentTypeText = "text/plain; charset=utf-8"

// RespondText writes body as a plain-text response with the given status code.
func RespondText(w http.ResponseWriter, status int, body string) {
	w.Header().Set("Content-Type", ContentTypeText)
	w.Header().Set("X-Content-Type-Options", "nosniff")
	w.WriteHeader(status)
	w.Write([]byte(body))
}

// RespondError logs err and writes the status text as a plain-text response.
// The error detail stays in the log.
func RespondError(w http.ResponseWriter, logger *slog.Logger, status int, err error) {
	logger.Error("handler error", "error", err, "status", status)
	RespondText(w, status, http.StatusText(status))
}
