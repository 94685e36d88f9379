package middleware

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestClientKey(t *testing.T) {
	cases := []struct {
		addr string
		want string
	}{
		{"10.0.0.1:51234", "10.0.0.1"},
		{"10.0.0.1:51235", "10.0.0.1"},
		{"[::1]:8080", "::1"},
		{"no-port", "no-port"},
	}
	for _, tc := range cases {
		if got := clientKey(tc.addr); got != tc.want {
			t.Errorf("clientKey(%q) = %q, want %q", tc.addr, got, tc.want)
		}
	}
}

func TestRateLimitSharesBucketAcrossConnections(t *testing.T) {
	handler := RateLimitMiddleware(2, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	// same client, fresh ephemeral port per request
	do := func(port string) int {
		req := httptest.NewRequest(http.MethodGet, "/ideas", nil)
		req.RemoteAddr = "10.0.0.1:" + port
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		return rec.Code
	}

	if code := do("50001"); code != http.StatusOK {
		t.Fatalf("first request: %d", code)
	}
	if code := do("50002"); code != http.StatusOK {
		t.Fatalf("second request: %d", code)
	}
	if code := do("50003"); code != http.StatusTooManyRequests {
		t.Fatalf("third request must hit the shared bucket, got %d", code)
	}

	// a different client keeps its own bucket
	req := httptest.NewRequest(http.MethodGet, "/ideas", nil)
	req.RemoteAddr = "10.0.0.2:50001"
	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, req)
	if rec.Code != http.StatusOK {
		t.Fatalf("other client must not be limited, got %d", rec.Code)
	}
}

func TestRateLimitSkipsOperationalEndpoints(t *testing.T) {
	handler := RateLimitMiddleware(1, 0)(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))

	for i := 0; i < 5; i++ {
		req := httptest.NewRequest(http.MethodGet, "/health", nil)
		req.RemoteAddr = "10.0.0.1:50001"
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, req)
		if rec.Code != http.StatusOK {
			t.Fatalf("health check %d limited: %d", i, rec.Code)
		}
	}
}
