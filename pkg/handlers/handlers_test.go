package handlers_test

import (
	"bytes"
	"errors"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/JaimeStill/mysite/pkg/handlers"
)

func TestRespondText(t *testing.T) {
	w := httptest.NewRecorder()

	handlers.RespondText(w, http.StatusAccepted, "queued")

	if w.Code != http.StatusAccepted {
		t.Errorf("status = %d, want %d", w.Code, http.StatusAccepted)
	}
	if ct := w.Header().Get("Content-Type"); ct != handlers.ContentTypeText {
		t.Errorf("Content-Type = %q, want %q", ct, handlers.ContentTypeText)
	}
	if w.Body.String() != "queued" {
		t.Errorf("body = %q, want %q", w.Body.String(), "queued")
	}
}

func TestRespondError(t *testing.T) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, nil))
	w := httptest.NewRecorder()

	handlers.RespondError(w, logger, http.StatusInternalServerError, errors.New("template exploded"))

	if w.Code != http.StatusInternalServerError {
		t.Errorf("status = %d, want %d", w.Code, http.StatusInternalServerError)
	}
	if strings.Contains(w.Body.String(), "exploded") {
		t.Error("error detail leaked into response body")
	}
	if !strings.Contains(buf.String(), "template exploded") {
		t.Error("error detail missing from log")
	}
}
