package server

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"go.uber.org/zap"

	"github.com/srecha/invoice-core/internal/artefact"
	"github.com/srecha/invoice-core/internal/commands"
	"github.com/srecha/invoice-core/internal/store"
)

func setupServer(t *testing.T) *Server {
	t.Helper()
	dir := t.TempDir()
	st, err := store.Open(dir)
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() { st.Close() })
	d := commands.NewDispatcher(st, artefact.NewStore(dir), zap.NewNop())
	return New(d)
}

func TestHealth(t *testing.T) {
	e := setupServer(t).Router()

	req := httptest.NewRequest(http.MethodGet, "/health", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}

func TestCommandRoute(t *testing.T) {
	e := setupServer(t).Router()

	req := httptest.NewRequest(http.MethodPost, "/commands/get_countries", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d body=%s", w.Code, w.Body.String())
	}
	var countries []map[string]any
	if err := json.Unmarshal(w.Body.Bytes(), &countries); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if len(countries) != 193 {
		t.Fatalf("expected 193 countries, got %d", len(countries))
	}
}

func TestUnknownCommandIs404(t *testing.T) {
	e := setupServer(t).Router()

	req := httptest.NewRequest(http.MethodPost, "/commands/no_such_thing", strings.NewReader(`{}`))
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	if w.Code != http.StatusNotFound {
		t.Fatalf("expected 404, got %d", w.Code)
	}
	var body map[string]string
	if err := json.Unmarshal(w.Body.Bytes(), &body); err != nil {
		t.Fatalf("decode: %v", err)
	}
	if body["error"] == "" {
		t.Fatalf("missing error message: %s", w.Body.String())
	}
}

func TestBadCredentialsIs401(t *testing.T) {
	e := setupServer(t).Router()

	req := httptest.NewRequest(http.MethodPost, "/commands/login",
		strings.NewReader(`{"username":"BrankoFND","password":"wrong"}`))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	if w.Code != http.StatusUnauthorized {
		t.Fatalf("expected 401, got %d body=%s", w.Code, w.Body.String())
	}
}

func TestMetricsEndpoint(t *testing.T) {
	e := setupServer(t).Router()

	req := httptest.NewRequest(http.MethodGet, "/metrics", nil)
	w := httptest.NewRecorder()
	e.ServeHTTP(w, req)
	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", w.Code)
	}
}
