package httpapi

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"

	"cardcrawl/internal/card"
	"cardcrawl/internal/session"
	"cardcrawl/internal/state"

	"github.com/gorilla/mux"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestServer(t *testing.T) (*mux.Router, *session.Handle) {
	t.Helper()
	store := session.NewStore()
	handle := store.Create("owner-1", state.ModeSolo)
	handle.Join("owner-1", "Owner", state.ClassWarrior)

	pool := card.NewPool(1, 4)
	pool.Start(context.Background())
	t.Cleanup(pool.Stop)

	render := card.NewService(pool, 1.0, 0.5, 3.0)
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	h := NewHandler(store, render, logger)

	router := mux.NewRouter()
	RegisterRoutes(router, h)
	return router, handle
}

func TestUnknownShortIDReturns404(t *testing.T) {
	router, _ := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/svg/game/deadbeef", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusNotFound, rec.Code)
}

func TestGameSVGRoute(t *testing.T) {
	router, handle := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/svg/game/svg/"+handle.Session.ShortID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml; charset=utf-8", rec.Header().Get("Content-Type"))
	assert.Contains(t, rec.Header().Get("Cache-Control"), "max-age=5")
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestGamePNGRoute(t *testing.T) {
	router, handle := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/svg/game/png/"+handle.Session.ShortID+"?scale=1.5", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
	assert.NotEmpty(t, rec.Body.Bytes())
}

func TestMapSVGRoute(t *testing.T) {
	router, handle := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/svg/map/svg/"+handle.Session.ShortID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestGameAutoDefaultsToPNG(t *testing.T) {
	router, handle := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/svg/game/"+handle.Session.ShortID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/png", rec.Header().Get("Content-Type"))
}

func TestGameAutoFormatSVG(t *testing.T) {
	router, handle := newTestServer(t)

	req := httptest.NewRequest(http.MethodGet, "/svg/game/"+handle.Session.ShortID+"?format=svg", nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	require.Equal(t, http.StatusOK, rec.Code)
	assert.Equal(t, "image/svg+xml; charset=utf-8", rec.Header().Get("Content-Type"))
}

func TestRenderContentionReturns503(t *testing.T) {
	router, handle := newTestServer(t)
	handle.Lock()
	defer handle.Unlock()

	req := httptest.NewRequest(http.MethodGet, "/svg/game/svg/"+handle.Session.ShortID, nil)
	rec := httptest.NewRecorder()
	router.ServeHTTP(rec, req)

	assert.Equal(t, http.StatusServiceUnavailable, rec.Code)
	assert.Equal(t, "1", rec.Header().Get("Retry-After"))
}
