package worldmap

import (
	"crypto/sha256"
	"encoding/binary"
	"math/rand"

	"github.com/google/uuid"
)

// RNG is a deterministic, per-session random source, derived from the
// session's UUID and a stream name so that the same UUID and name always
// produce the same sequence. The session store derives a single "map"
// stream per session, which tile generation, room rolls, encounter rolls
// and story outcomes all draw from.
//
// The derivation follows sessionSeed = H(sessionID, streamName); H is
// SHA-256 and the first 8 bytes become the PRNG seed.
type RNG struct {
	seed   uint64
	stream string
	source *rand.Rand
}

// NewRNG derives a stream-specific RNG from a session's UUID.
func NewRNG(sessionID uuid.UUID, stream string) *RNG {
	h := sha256.New()
	idBytes := sessionID
	h.Write(idBytes[:])
	h.Write([]byte(stream))
	sum := h.Sum(nil)
	seed := binary.BigEndian.Uint64(sum[:8])
	return &RNG{
		seed:   seed,
		stream: stream,
		source: rand.New(rand.NewSource(int64(seed))),
	}
}

// Intn returns a pseudo-random integer in [0, n). Panics if n <= 0.
func (r *RNG) Intn(n int) int { return r.source.Intn(n) }

// Float64 returns a pseudo-random float64 in [0, 1).
func (r *RNG) Float64() float64 { return r.source.Float64() }

// IntRange returns a pseudo-random integer in [min, max].
func (r *RNG) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + r.source.Intn(max-min+1)
}

// Bool returns a pseudo-random boolean with 50/50 odds.
func (r *RNG) Bool() bool { return r.source.Intn(2) == 1 }

// Chance reports true with probability p (0..1).
func (r *RNG) Chance(p float64) bool { return r.source.Float64() < p }

// WeightedChoice selects an index from weights, or -1 if all weights are
// zero/empty.
func (r *RNG) WeightedChoice(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	roll := r.source.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if roll < cum {
			return i
		}
	}
	return len(weights) - 1
}

// Seed returns the derived seed, useful for logging.
func (r *RNG) Seed() uint64 { return r.seed }
