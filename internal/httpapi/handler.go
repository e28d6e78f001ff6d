// Package httpapi exposes the snapshot-and-render HTTP surface (§6 C8):
// five GET routes that turn a session short ID into a rendered game or
// map card, never mutating session state. Generalized from the donor
// repo's mux-router handler/middleware split, trimmed of the steam-API
// rate-limit and API-key layers that belong to an external auth gateway,
// not this core (§1).
package httpapi

import (
	"errors"
	"log/slog"
	"net/http"
	"strconv"

	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/card"
	"cardcrawl/internal/session"

	"github.com/gorilla/mux"
)

const cacheControlValue = "public, max-age=5, stale-while-revalidate=10"

// Handler wires the session store and card render service into the route
// table. It holds no session-mutating logic of its own; every request is
// a read-only snapshot-and-render.
type Handler struct {
	store  *session.Store
	render *card.Service
	log    *slog.Logger
}

// NewHandler builds a Handler over an already-running session store and
// card render service.
func NewHandler(store *session.Store, render *card.Service, log *slog.Logger) *Handler {
	return &Handler{store: store, render: render, log: log}
}

// RegisterRoutes installs the five render routes plus global middleware
// on router, grounded on the donor's RegisterRoutes(router *mux.Router).
func RegisterRoutes(router *mux.Router, h *Handler) {
	router.Use(RequestIDMiddleware())
	router.Use(AccessLogMiddleware(h.log))

	router.HandleFunc("/svg/game/{id}", h.gameAuto).Methods(http.MethodGet)
	router.HandleFunc("/svg/game/png/{id}", h.gamePNG).Methods(http.MethodGet)
	router.HandleFunc("/svg/game/svg/{id}", h.gameSVG).Methods(http.MethodGet)
	router.HandleFunc("/svg/map/png/{id}", h.mapPNG).Methods(http.MethodGet)
	router.HandleFunc("/svg/map/svg/{id}", h.mapSVG).Methods(http.MethodGet)
}

func (h *Handler) gameAuto(w http.ResponseWriter, r *http.Request) {
	if r.URL.Query().Get("format") == "svg" {
		h.gameSVG(w, r)
		return
	}
	h.gamePNG(w, r)
}

func (h *Handler) gameSVG(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.lookup(w, r)
	if !ok {
		return
	}
	doc, err := card.RenderGameSVG(handle)
	h.writeSVG(w, r, doc, err, "game")
}

func (h *Handler) gamePNG(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.lookup(w, r)
	if !ok {
		return
	}
	scale := parseScale(r)
	png, err := h.render.RenderGamePNG(r.Context(), handle, scale)
	h.writePNG(w, r, png, err, "game")
}

func (h *Handler) mapSVG(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.lookup(w, r)
	if !ok {
		return
	}
	doc, err := card.RenderMapSVG(handle)
	h.writeSVG(w, r, doc, err, "map")
}

func (h *Handler) mapPNG(w http.ResponseWriter, r *http.Request) {
	handle, ok := h.lookup(w, r)
	if !ok {
		return
	}
	scale := parseScale(r)
	png, err := h.render.RenderMapPNG(r.Context(), handle, scale)
	h.writePNG(w, r, png, err, "map")
}

// lookup resolves the {id} path var to a session handle, writing a 404
// and returning ok=false if the short ID is unknown or expired (§7
// "Resource not found").
func (h *Handler) lookup(w http.ResponseWriter, r *http.Request) (*session.Handle, bool) {
	shortID := mux.Vars(r)["id"]
	handle, err := h.store.Get(shortID)
	if err != nil {
		http.Error(w, "no run with that id", http.StatusNotFound)
		return nil, false
	}
	return handle, true
}

func parseScale(r *http.Request) float64 {
	raw := r.URL.Query().Get("scale")
	if raw == "" {
		return 0
	}
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0
	}
	return v
}

func (h *Handler) writeSVG(w http.ResponseWriter, r *http.Request, doc []byte, err error, card string) {
	if !h.writeErrorIfAny(w, r, err, card, "template") {
		return
	}
	w.Header().Set("Content-Type", "image/svg+xml; charset=utf-8")
	w.Header().Set("Cache-Control", cacheControlValue)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(doc)
}

func (h *Handler) writePNG(w http.ResponseWriter, r *http.Request, data []byte, err error, card string) {
	if !h.writeErrorIfAny(w, r, err, card, "rasterize") {
		return
	}
	w.Header().Set("Content-Type", "image/png")
	w.Header().Set("Cache-Control", cacheControlValue)
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write(data)
}

// writeErrorIfAny maps a render-path error onto the §7 status codes: 503
// with Retry-After on lock contention, 500 (logged, stage-tagged, never
// echoed to the client) on template/rasterisation failure. Returns false
// if it wrote a response and the caller should stop.
func (h *Handler) writeErrorIfAny(w http.ResponseWriter, r *http.Request, err error, card, stage string) bool {
	if err == nil {
		return true
	}
	var contention *actionerr.ContentionError
	if errors.As(err, &contention) {
		w.Header().Set("Retry-After", "1")
		http.Error(w, "session is mid-turn, try again", http.StatusServiceUnavailable)
		return false
	}
	h.log.Error("render failed",
		"request_id", requestIDFrom(r.Context()),
		"short_id", mux.Vars(r)["id"],
		"card", card,
		"stage", stage,
		"error", err,
	)
	http.Error(w, "render failed", http.StatusInternalServerError)
	return false
}
