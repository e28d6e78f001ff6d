package session

import (
	"testing"
	"time"

	"cardcrawl/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCreateSeedsOriginAndRNG(t *testing.T) {
	store := NewStore()
	h := store.Create("owner-1", state.ModeSolo)

	require.NotEmpty(t, h.Session.ShortID)
	require.Len(t, h.Session.ShortID, 8)
	require.NotNil(t, h.MapRNG)

	origin := h.Session.Map.TileAt(state.Position{})
	require.NotNil(t, origin)
	assert.True(t, origin.Visited)
	assert.Equal(t, state.RoomHallway, origin.RoomType)
}

func TestGetUnknownShortIDReturnsNotFound(t *testing.T) {
	store := NewStore()
	_, err := store.Get("deadbeef")
	require.Error(t, err)
}

func TestJoinAddsPartyMemberOnce(t *testing.T) {
	store := NewStore()
	h := store.Create("owner-1", state.ModeParty)

	h.Join("owner-1", "Owner", state.ClassWarrior)
	h.Join("owner-1", "Owner", state.ClassWarrior)
	h.Join("bob", "Bob", state.ClassCleric)

	assert.Equal(t, []string{"owner-1", "bob"}, h.Session.Party)
	assert.Len(t, h.Session.Players, 2)
	assert.True(t, h.Session.Players["bob"].Alive)
}

func TestIdleSweepDropsExpiredSessions(t *testing.T) {
	store := NewStore()
	h := store.Create("owner-1", state.ModeSolo)
	h.Session.LastActionAt = time.Now().Add(-time.Hour)

	dropped := store.IdleSweep(30*time.Minute, time.Now())

	require.Len(t, dropped, 1)
	assert.Equal(t, 0, store.Len())
	_, err := store.Get(h.Session.ShortID)
	assert.Error(t, err)
}

func TestTryLockFailsWhileHeld(t *testing.T) {
	store := NewStore()
	h := store.Create("owner-1", state.ModeSolo)

	h.Lock()
	defer h.Unlock()

	assert.False(t, h.TryLock())
}
