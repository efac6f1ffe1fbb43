package api

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
)

// CORS Tests

func TestCORS_AllowedOrigin(t *testing.T) {
	env := newTestEnv(t, `{"data":{}}`)

	req := httptest.NewRequest(http.MethodPost, "/create-item",
		strings.NewReader(`{"boardId": 1, "itemName": "x"}`))
	req.Header.Set("Origin", "http://allowed.example")
	rec := env.do(req)

	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := rec.Header().Get("Access-Control-Allow-Origin"); got != "http://allowed.example" {
		t.Errorf("expected allow-origin header, got %q", got)
	}
}

func TestCORS_DisallowedOrigin(t *testing.T) {
	env := newTestEnv(t, `{}`)

	req := httptest.NewRequest(http.MethodPost, "/create-item",
		strings.NewReader(`{"boardId": 1, "itemName": "x"}`))
	req.Header.Set("Origin", "http://evil.example")
	rec := env.do(req)

	if rec.Code != http.StatusForbidden {
		t.Fatalf("expected 403, got %d", rec.Code)
	}
	if rec.Header().Get("Access-Control-Allow-Origin") != "" {
		t.Error("disallowed origin must not get allow-origin header")
	}
	// Upstream не вызывался
	if env.upstreamHits.Load() != 0 {
		t.Errorf("expected no upstream calls, got %d", env.upstreamHits.Load())
	}
}

func TestCORS_NoOriginPasses(t *testing.T) {
	env := newTestEnv(t, `{"data":{}}`)

	// curl и health-чеки приходят без Origin
	req := httptest.NewRequest(http.MethodPost, "/create-item",
		strings.NewReader(`{"boardId": 1, "itemName": "x"}`))
	rec := env.do(req)

	if rec.Code != http.StatusOK {
		t.Errorf("expected 200 for no-origin client, got %d", rec.Code)
	}
}

func TestCORS_Preflight(t *testing.T) {
	env := newTestEnv(t, `{}`)

	req := httptest.NewRequest(http.MethodOptions, "/create-item", nil)
	req.Header.Set("Origin", "http://allowed.example")
	req.Header.Set("Access-Control-Request-Method", http.MethodPost)
	rec := env.do(req)

	if rec.Code != http.StatusNoContent {
		t.Fatalf("expected 204, got %d", rec.Code)
	}
	if !strings.Contains(rec.Header().Get("Access-Control-Allow-Methods"), "POST") {
		t.Errorf("expected POST in allow-methods, got %q", rec.Header().Get("Access-Control-Allow-Methods"))
	}
	if env.upstreamHits.Load() != 0 {
		t.Errorf("preflight should not call upstream")
	}
}

// Recovery Tests

func TestRecovery(t *testing.T) {
	logger := testDiscardLogger()

	panicking := http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		panic("boom")
	})

	rec := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodGet, "/", nil)

	Recovery(logger)(panicking).ServeHTTP(rec, req)

	if rec.Code != http.StatusInternalServerError {
		t.Errorf("expected 500 after panic, got %d", rec.Code)
	}
}

// Chain Tests

func TestChain_Order(t *testing.T) {
	var order []string
	mk := func(name string) Middleware {
		return func(next http.Handler) http.Handler {
			return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
				order = append(order, name)
				next.ServeHTTP(w, r)
			})
		}
	}

	h := Chain(mk("first"), mk("second"))(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {
		order = append(order, "handler")
	}))

	h.ServeHTTP(httptest.NewRecorder(), httptest.NewRequest(http.MethodGet, "/", nil))

	want := []string{"first", "second", "handler"}
	for i, name := range want {
		if i >= len(order) || order[i] != name {
			t.Fatalf("expected order %v, got %v", want, order)
		}
	}
}
