// internal/api/router_test.go
package api

import (
	"context"
	"errors"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"exercise-tracker/internal/api/handler"
)

type pingerFunc func(ctx context.Context) error

func (f pingerFunc) PingContext(ctx context.Context) error { return f(ctx) }

func newTestRouter(t *testing.T, store Pinger, cfg RouterConfig) http.Handler {
	t.Helper()
	logger := slog.New(slog.NewJSONHandler(io.Discard, nil))
	if cfg.AllowedOrigins == nil {
		cfg.AllowedOrigins = []string{"*"}
	}
	return NewRouter(
		handler.NewUserHandler(nil, logger),
		handler.NewExerciseHandler(nil, logger),
		store,
		cfg,
		logger,
	)
}

func serve(h http.Handler, method, target string) *httptest.ResponseRecorder {
	rec := httptest.NewRecorder()
	h.ServeHTTP(rec, httptest.NewRequest(method, target, nil))
	return rec
}

func TestHealth(t *testing.T) {
	t.Run("StoreReachable", func(t *testing.T) {
		router := newTestRouter(t, pingerFunc(func(context.Context) error { return nil }), RouterConfig{})

		rec := serve(router, http.MethodGet, "/health")

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "OK", rec.Body.String())
	})

	t.Run("StoreUnreachable", func(t *testing.T) {
		router := newTestRouter(t, pingerFunc(func(context.Context) error { return errors.New("disk I/O error") }), RouterConfig{})

		rec := serve(router, http.MethodGet, "/health")

		assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
		assert.Contains(t, rec.Body.String(), "store unavailable")
	})
}

func TestFrontPageAndStaticFiles(t *testing.T) {
	root := t.TempDir()
	writeFile := func(rel, content string) {
		full := filepath.Join(root, rel)
		require.NoError(t, os.MkdirAll(filepath.Dir(full), 0o755))
		require.NoError(t, os.WriteFile(full, []byte(content), 0o644))
	}
	writeFile("views/index.html", "<h1>Exercise tracker</h1>")
	writeFile("public/style.css", "body { margin: 0 }")
	writeFile("public/assets/app.js", "console.log(1)")
	writeFile("public/docs/index.html", "<p>docs</p>")

	router := newTestRouter(t, pingerFunc(func(context.Context) error { return nil }), RouterConfig{
		PublicDir: filepath.Join(root, "public"),
		ViewsDir:  filepath.Join(root, "views"),
	})

	t.Run("IndexView", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "Exercise tracker")
	})

	t.Run("Asset", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/style.css")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "body { margin: 0 }", rec.Body.String())
		assert.True(t, strings.HasPrefix(rec.Header().Get("Content-Type"), "text/css"))
	})

	t.Run("NestedAsset", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/assets/app.js")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "console.log(1)", rec.Body.String())
	})

	t.Run("HeadAsset", func(t *testing.T) {
		rec := serve(router, http.MethodHead, "/style.css")
		assert.Equal(t, http.StatusOK, rec.Code)
	})

	t.Run("DirectoryWithIndex", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/docs/")
		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Contains(t, rec.Body.String(), "docs")
	})

	t.Run("DirectoryWithoutIndexIsNotListed", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/assets/")
		assert.Equal(t, http.StatusNotFound, rec.Code)
		assert.NotContains(t, rec.Body.String(), "app.js")
	})

	t.Run("WritesAreNotServed", func(t *testing.T) {
		for _, method := range []string{http.MethodPost, http.MethodPut, http.MethodDelete} {
			rec := serve(router, method, "/style.css")
			assert.Equal(t, http.StatusNotFound, rec.Code, method)
			assert.NotContains(t, rec.Body.String(), "margin", method)
		}
	})

	t.Run("MissingFile", func(t *testing.T) {
		rec := serve(router, http.MethodGet, "/missing.txt")
		assert.Equal(t, http.StatusNotFound, rec.Code)
	})
}

func TestFrontPageWithoutView(t *testing.T) {
	router := newTestRouter(t, pingerFunc(func(context.Context) error { return nil }), RouterConfig{
		ViewsDir: t.TempDir(),
	})

	rec := serve(router, http.MethodGet, "/")

	assert.Equal(t, http.StatusNotFound, rec.Code)
}
