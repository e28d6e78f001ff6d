// Package session owns the process-wide table of live game sessions: short
// ID allocation, per-session locking, and idle expiry. It generalizes the
// session bookkeeping a tick-based server used to do inline (one shared
// mutex guarding a session slice) into a keyed store sized for many
// independently-locked runs (§4.6).
package session

import (
	"encoding/hex"
	"sync"
	"time"

	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/catalogue"
	"cardcrawl/internal/state"
	"cardcrawl/internal/worldmap"

	"github.com/google/uuid"
)

// Handle is one session's entry in the store: the authoritative state plus
// the mutex that serializes dispatch and render access to it, and the
// session's own long-lived map RNG. The RNG is derived once from the
// session's UUID and reused for every tile/encounter roll for the life of
// the run — recreating it per call would replay the same sequence (§4.3).
type Handle struct {
	mu      sync.Mutex
	Session *state.Session
	MapRNG  *worldmap.RNG
}

// Join adds a new party member to the session, building their starting
// PlayerState from the catalogue's class stats and starting inventory.
// Caller must hold the handle's lock.
func (h *Handle) Join(userID, name string, class state.Class) *state.PlayerState {
	p := catalogue.NewPlayer(userID, name, class)
	h.Session.Players[userID] = p
	for _, uid := range h.Session.Party {
		if uid == userID {
			return p
		}
	}
	h.Session.Party = append(h.Session.Party, userID)
	return p
}

// Lock blocks until the session is available.
func (h *Handle) Lock() { h.mu.Lock() }

// Unlock releases the session lock.
func (h *Handle) Unlock() { h.mu.Unlock() }

// TryLock attempts to acquire the session lock without blocking, for the
// render path: a session mid-dispatch should fail fast with a 503 rather
// than stall the HTTP handler (§4.7 "Contention").
func (h *Handle) TryLock() bool { return h.mu.TryLock() }

// Store is the process-wide table of live sessions, keyed by short ID.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Handle
}

// NewStore creates an empty session store.
func NewStore() *Store {
	return &Store{sessions: make(map[string]*Handle)}
}

// Create allocates a fresh session in PhaseExploring, owned by ownerID,
// seeds its origin map tile, derives its long-lived map RNG from the
// freshly-minted session UUID, and registers it under a freshly-minted
// short ID.
func (s *Store) Create(ownerID string, mode state.Mode) *Handle {
	sess := state.NewSession(ownerID, mode)
	worldmap.GenerateInitialMap(sess.Map)

	s.mu.Lock()
	defer s.mu.Unlock()
	sess.ShortID = s.freshShortIDLocked()
	h := &Handle{
		Session: sess,
		MapRNG:  worldmap.NewRNG(sess.ID, "map"),
	}
	s.sessions[sess.ShortID] = h
	return h
}

// Get looks up a session handle by short ID.
func (s *Store) Get(shortID string) (*Handle, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	h, ok := s.sessions[shortID]
	if !ok {
		return nil, actionerr.NotFound("no run with that id")
	}
	return h, nil
}

// Remove drops a session from the store, e.g. once a run reaches a
// GameOver phase and its final card has been rendered.
func (s *Store) Remove(shortID string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.sessions, shortID)
}

// IdleSweep removes every session whose LastActionAt is older than
// maxIdle, returning the short IDs it dropped. Intended to run on a
// ticker in cmd/server's main loop (§4.6 "Idle expiry").
func (s *Store) IdleSweep(maxIdle time.Duration, now time.Time) []string {
	s.mu.Lock()
	defer s.mu.Unlock()

	var dropped []string
	for id, h := range s.sessions {
		h.mu.Lock()
		idle := now.Sub(h.Session.LastActionAt) > maxIdle
		if idle && !h.Session.Phase.IsGameOver() {
			h.Session.Phase = state.PhaseGameOverExpired
		}
		h.mu.Unlock()
		if idle {
			delete(s.sessions, id)
			dropped = append(dropped, id)
		}
	}
	return dropped
}

// Len reports how many sessions are currently tracked.
func (s *Store) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.sessions)
}

// shortIDBytes is half of an 8-hex-character short ID.
const shortIDBytes = 4

// freshShortIDLocked mints an 8-hex-character ID derived from a fresh
// google/uuid, retrying on the astronomically rare collision. Caller must
// hold s.mu.
func (s *Store) freshShortIDLocked() string {
	for {
		id := uuid.New()
		short := hex.EncodeToString(id[:shortIDBytes])
		if _, exists := s.sessions[short]; !exists {
			return short
		}
	}
}
