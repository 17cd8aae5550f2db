package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestResponseWriter(t *testing.T) {
	t.Run("RecordsStatus", func(t *testing.T) {
		wrapped := wrapResponseWriter(httptest.NewRecorder())

		wrapped.WriteHeader(http.StatusNotFound)

		if wrapped.Status() != http.StatusNotFound {
			t.Errorf("Status() = %d, want %d", wrapped.Status(), http.StatusNotFound)
		}
	})

	t.Run("FirstWriteWins", func(t *testing.T) {
		wrapped := wrapResponseWriter(httptest.NewRecorder())

		wrapped.WriteHeader(http.StatusNotFound)
		wrapped.WriteHeader(http.StatusOK)

		if wrapped.Status() != http.StatusNotFound {
			t.Errorf("Status() = %d, want %d after repeated WriteHeader", wrapped.Status(), http.StatusNotFound)
		}
	})

	t.Run("ZeroBeforeWrite", func(t *testing.T) {
		wrapped := wrapResponseWriter(httptest.NewRecorder())

		if wrapped.Status() != 0 {
			t.Errorf("Status() = %d before any write, want 0", wrapped.Status())
		}
	})
}

func TestLogging_PassesStatusThrough(t *testing.T) {
	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusCreated)
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/banks", nil))

	if rr.Code != http.StatusCreated {
		t.Errorf("expected status 201, got %d", rr.Code)
	}
}

func TestLogging_ImplicitOK(t *testing.T) {
	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte("ok"))
	}))

	rr := httptest.NewRecorder()
	handler.ServeHTTP(rr, httptest.NewRequest(http.MethodGet, "/api/banks", nil))

	if rr.Code != http.StatusOK {
		t.Errorf("expected status 200, got %d", rr.Code)
	}
}
