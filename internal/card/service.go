package card

import (
	"context"

	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/session"
)

// Service renders game/map cards for a session store's handles, offloading
// the CPU-bound SVG rasterisation step onto a bounded Pool (§4.7 steps 3-4).
type Service struct {
	pool         *Pool
	defaultScale float64
	minScale     float64
	maxScale     float64
}

// NewService wires a render Service onto an already-started Pool, with the
// scale bounds from §4.7 "Scaling".
func NewService(pool *Pool, defaultScale, minScale, maxScale float64) *Service {
	return &Service{pool: pool, defaultScale: defaultScale, minScale: minScale, maxScale: maxScale}
}

func (s *Service) clampScale(scale float64) float64 {
	if scale <= 0 {
		scale = s.defaultScale
	}
	if scale < s.minScale {
		return s.minScale
	}
	if scale > s.maxScale {
		return s.maxScale
	}
	return scale
}

// snapshotGameCard takes the session's lock non-blockingly, projects its
// game-card data, and releases the lock before any SVG/PNG work begins
// (§4.7 step 1-2, §5 "Session locking").
func snapshotGameCard(h *session.Handle) (GameCardData, error) {
	if !h.TryLock() {
		return GameCardData{}, actionerr.Contention("session is mid-turn, try again")
	}
	data := BuildGameCard(h.Session)
	h.Unlock()
	return data, nil
}

func snapshotMapCard(h *session.Handle) (MapCardData, error) {
	if !h.TryLock() {
		return MapCardData{}, actionerr.Contention("session is mid-turn, try again")
	}
	data := BuildMapCard(h.Session)
	h.Unlock()
	return data, nil
}

// RenderGameSVG snapshots h and returns the game card's SVG document. SVG
// string construction is cheap and runs inline, never on the pool.
func RenderGameSVG(h *session.Handle) ([]byte, error) {
	data, err := snapshotGameCard(h)
	if err != nil {
		return nil, err
	}
	return RenderGameSVGDoc(data), nil
}

// RenderMapSVG snapshots h and returns the map card's SVG document.
func RenderMapSVG(h *session.Handle) ([]byte, error) {
	data, err := snapshotMapCard(h)
	if err != nil {
		return nil, err
	}
	return RenderMapSVGDoc(data), nil
}

// RenderGamePNG snapshots h, builds its SVG, and rasterises to PNG on the
// service's worker pool, clamping scale to [minScale, maxScale].
func (s *Service) RenderGamePNG(ctx context.Context, h *session.Handle, scale float64) ([]byte, error) {
	data, err := snapshotGameCard(h)
	if err != nil {
		return nil, err
	}
	doc := RenderGameSVGDoc(data)
	scale = s.clampScale(scale)
	return s.pool.Submit(ctx, func() ([]byte, error) { return rasterize(doc, scale) })
}

// RenderMapPNG snapshots h, builds its SVG, and rasterises to PNG on the pool.
func (s *Service) RenderMapPNG(ctx context.Context, h *session.Handle, scale float64) ([]byte, error) {
	data, err := snapshotMapCard(h)
	if err != nil {
		return nil, err
	}
	doc := RenderMapSVGDoc(data)
	scale = s.clampScale(scale)
	return s.pool.Submit(ctx, func() ([]byte, error) { return rasterize(doc, scale) })
}
