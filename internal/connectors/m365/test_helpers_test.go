package m365

import (
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
)

// newTestProvider builds a provider whose Graph client and webhook client both
// talk to the given test server.
func newTestProvider(t *testing.T, handler http.Handler) (*Provider, *httptest.Server) {
	t.Helper()

	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	cfg := &Config{
		TenantID:     "tenant",
		ClientID:     "client",
		ClientSecret: "secret",
		Webhooks:     make(map[string]string),
	}

	provider := &Provider{
		config: cfg,
		client: &Client{
			baseURL: srv.URL,
			http:    srv.Client(),
		},
		webhook: srv.Client(),
		log:     slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	return provider, srv
}

// jsonResponse writes a JSON body with status 200.
func jsonResponse(w http.ResponseWriter, body string) {
	w.Header().Set("Content-Type", "application/json")
	_, _ = w.Write([]byte(body))
}
