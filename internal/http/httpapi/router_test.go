package httpapi

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/rs/zerolog"

	"adcraft/internal/domain"
	"adcraft/internal/http/handlers"
)

type panicGenerator struct{}

func (panicGenerator) Generate(ctx context.Context, brief domain.Brief) (*domain.GenerationResult, error) {
	panic("boom")
}

func (panicGenerator) Providers() []domain.ProviderID { return nil }

func newTestRouter(gen handlers.Generator) http.Handler {
	metrics := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, "adcraft_up 1\n")
	})
	return NewRouter(handlers.NewApp(gen, nil, "test", nil), Options{
		Logger:         zerolog.New(io.Discard),
		AllowedOrigins: []string{"*"},
		Metrics:        metrics,
	})
}

func TestRouterRoutes(t *testing.T) {
	srv := httptest.NewServer(newTestRouter(panicGenerator{}))
	defer srv.Close()

	cases := []struct {
		method string
		path   string
		want   int
	}{
		{http.MethodGet, "/v1/healthz", http.StatusOK},
		{http.MethodGet, "/v1/openapi.json", http.StatusOK},
		{http.MethodGet, "/docs", http.StatusOK},
		{http.MethodGet, "/metrics", http.StatusOK},
		{http.MethodGet, "/api/generate", http.StatusMethodNotAllowed},
		{http.MethodGet, "/nope", http.StatusNotFound},
	}
	for _, tc := range cases {
		req, err := http.NewRequest(tc.method, srv.URL+tc.path, nil)
		if err != nil {
			t.Fatalf("build request: %v", err)
		}
		resp, err := srv.Client().Do(req)
		if err != nil {
			t.Fatalf("%s %s: %v", tc.method, tc.path, err)
		}
		_ = resp.Body.Close()
		if resp.StatusCode != tc.want {
			t.Fatalf("%s %s: status %d, want %d", tc.method, tc.path, resp.StatusCode, tc.want)
		}
		if resp.Header.Get("X-Request-ID") == "" {
			t.Fatalf("%s %s: missing X-Request-ID", tc.method, tc.path)
		}
	}
}

func TestRouterRecoversPanics(t *testing.T) {
	rr := httptest.NewRecorder()
	req := httptest.NewRequest(http.MethodPost, "/api/generate", strings.NewReader(`{"product":"Widget"}`))
	newTestRouter(panicGenerator{}).ServeHTTP(rr, req)
	if rr.Code != http.StatusInternalServerError {
		t.Fatalf("status = %d, want 500", rr.Code)
	}
	if !strings.Contains(rr.Body.String(), `"generation failed"`) {
		t.Fatalf("unexpected body: %s", rr.Body.String())
	}
}
