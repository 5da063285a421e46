package http

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter_RecordsStatusAndSize(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusNotFound)
	w.Write([]byte("not "))
	w.Write([]byte("found"))

	if w.status != http.StatusNotFound {
		t.Errorf("expected recorded status %d, got %d", http.StatusNotFound, w.status)
	}
	if w.size != len("not found") {
		t.Errorf("expected recorded size %d, got %d", len("not found"), w.size)
	}
	if rec.Code != http.StatusNotFound {
		t.Errorf("expected underlying status %d, got %d", http.StatusNotFound, rec.Code)
	}
}

func TestResponseWriter_ImplicitOK(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.Write([]byte("hello"))

	if w.status != http.StatusOK {
		t.Errorf("expected implicit status %d, got %d", http.StatusOK, w.status)
	}
}

func TestResponseWriter_SecondWriteHeaderIgnored(t *testing.T) {
	rec := httptest.NewRecorder()
	w := &responseWriter{ResponseWriter: rec}

	w.WriteHeader(http.StatusAccepted)
	w.WriteHeader(http.StatusInternalServerError)

	if w.status != http.StatusAccepted {
		t.Errorf("expected first status %d to stick, got %d", http.StatusAccepted, w.status)
	}
	if rec.Code != http.StatusAccepted {
		t.Errorf("expected underlying status %d, got %d", http.StatusAccepted, rec.Code)
	}
}
