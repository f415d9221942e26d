//go:build e2e

package e2e_test

import (
	"bytes"
	"encoding/json"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/stretchr/testify/require"

	"github.com/heartmarshall/notes-backend/internal/adapter/notestore"
	"github.com/heartmarshall/notes-backend/internal/adapter/postgres/kvstore"
	"github.com/heartmarshall/notes-backend/internal/adapter/postgres/testhelper"
	"github.com/heartmarshall/notes-backend/internal/app"
	authpkg "github.com/heartmarshall/notes-backend/internal/auth"
	"github.com/heartmarshall/notes-backend/internal/config"
)

// ---------------------------------------------------------------------------
// testServer wraps the full-stack HTTP server for E2E tests.
// ---------------------------------------------------------------------------

type testServer struct {
	URL    string
	Client *http.Client
	Pool   *pgxpool.Pool
	jwt    *authpkg.JWTManager
}

// testLogWriter adapts testing.T to io.Writer for slog.
type testLogWriter struct{ t *testing.T }

func (w testLogWriter) Write(p []byte) (int, error) {
	w.t.Helper()
	w.t.Log(string(p))
	return len(p), nil
}

// setupTestServer runs the production handler over the PostgreSQL backend.
func setupTestServer(t *testing.T) *testServer {
	t.Helper()

	pool := testhelper.SetupTestDB(t)
	logger := slog.New(slog.NewTextHandler(testLogWriter{t}, nil))

	cfg := &config.Config{
		Server:  config.ServerConfig{MaxBodyBytes: 1 << 20},
		Storage: config.StorageConfig{Driver: config.DriverPostgres},
		Auth: config.AuthConfig{
			JWTSecret:      "test-secret-at-least-32-chars-long!!",
			JWTIssuer:      "test-issuer",
			AccessTokenTTL: 15 * time.Minute,
		},
		Notes: config.NotesConfig{DefaultPageSize: 20, MaxPageSize: 100},
		CORS: config.CORSConfig{
			AllowedOrigins: "*",
			AllowedMethods: "GET,POST,PUT,DELETE,OPTIONS",
			AllowedHeaders: "Authorization,Content-Type,If-Match",
		},
	}

	handler, stop := app.NewHandler(cfg, logger, notestore.New(kvstore.New(pool)))
	srv := httptest.NewServer(handler)
	t.Cleanup(func() {
		srv.Close()
		stop()
	})

	return &testServer{
		URL:    srv.URL,
		Client: srv.Client(),
		Pool:   pool,
		jwt:    authpkg.NewJWTManager(cfg.Auth.JWTSecret, cfg.Auth.JWTIssuer, cfg.Auth.AccessTokenTTL),
	}
}

// token mints a bearer token for owner.
func (ts *testServer) token(t *testing.T, owner string) string {
	t.Helper()
	token, err := ts.jwt.GenerateAccessToken(owner)
	require.NoError(t, err)
	return token
}

// do sends a request as owner (anonymous when owner is empty) and returns the
// status, headers and decoded JSON body (nil for empty bodies).
func (ts *testServer) do(t *testing.T, owner, method, path string, body any, headers map[string]string) (int, http.Header, map[string]any) {
	t.Helper()

	var r io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		r = bytes.NewReader(b)
	}

	req, err := http.NewRequest(method, ts.URL+path, r)
	require.NoError(t, err)
	if body != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	if owner != "" {
		req.Header.Set("Authorization", "Bearer "+ts.token(t, owner))
	}
	for k, v := range headers {
		req.Header.Set(k, v)
	}

	resp, err := ts.Client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	raw, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	var out map[string]any
	if len(raw) > 0 {
		require.NoError(t, json.Unmarshal(raw, &out), "body: %s", raw)
	}
	return resp.StatusCode, resp.Header, out
}

// createNote creates a note and returns its id.
func (ts *testServer) createNote(t *testing.T, owner, title, content string) string {
	t.Helper()
	status, _, body := ts.do(t, owner, http.MethodPost, "/notes", map[string]any{"title": title, "content": content}, nil)
	require.Equal(t, http.StatusCreated, status, "create: %v", body)
	id, ok := body["id"].(string)
	require.True(t, ok)
	return id
}
