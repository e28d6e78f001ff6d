package action

import (
	"math/rand"
	"sync/atomic"
	"time"
)

var rngCounter int64

// newRand returns a fresh, unshared *rand.Rand for one Dispatch call.
// The engine has no deterministic-replay requirement (§5), so each
// dispatch simply draws its own thread-local-equivalent source rather
// than contending on one shared generator.
func newRand() *rand.Rand {
	seed := time.Now().UnixNano() + atomic.AddInt64(&rngCounter, 1)
	return rand.New(rand.NewSource(seed))
}
