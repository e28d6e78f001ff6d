package worldmap

import (
	"testing"

	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/state"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG(stream string) *RNG {
	return NewRNG(uuid.MustParse("00000000-0000-0000-0000-000000000002"), stream)
}

func TestGenerateInitialMapOriginIsVisitedAndOpen(t *testing.T) {
	m := state.NewMap()
	GenerateInitialMap(m)

	origin := m.TileAt(state.Position{})
	require.NotNil(t, origin)
	assert.True(t, origin.Visited)
	assert.True(t, origin.Generated)
	for _, d := range []state.Direction{state.DirNorth, state.DirSouth, state.DirEast, state.DirWest} {
		assert.True(t, origin.Exits[d])
	}
}

func TestRevealTileIsIdempotent(t *testing.T) {
	m := state.NewMap()
	rng := testRNG("reveal")
	pos := state.Position{X: 1, Y: 0}

	first := RevealTile(m, pos, CatalogueGenerator{}, rng)
	firstRoomType := first.RoomType

	second := RevealTile(m, pos, CatalogueGenerator{}, rng)
	assert.Equal(t, firstRoomType, second.RoomType, "re-revealing an existing tile is a no-op")
	assert.Same(t, first, second)
}

func TestEnsureReciprocalExitLinksBothTiles(t *testing.T) {
	m := state.NewMap()
	from := state.Position{}
	m.EnsureTile(from)

	EnsureReciprocalExit(m, from, state.DirEast)

	fromTile := m.TileAt(from)
	assert.True(t, fromTile.Exits[state.DirEast])

	to := from.Neighbor(state.DirEast)
	toTile := m.TileAt(to)
	require.NotNil(t, toTile)
	assert.True(t, toTile.Exits[state.DirWest], "destination always has an exit back the way the party came")
}

func TestTravelMoveWithoutExitFailsWithoutMutation(t *testing.T) {
	sess := state.NewSession("owner-1", state.ModeSolo)
	GenerateInitialMap(sess.Map)
	sess.Pos = state.Position{}
	sess.Phase = state.PhaseExploring

	origin := sess.Map.TileAt(sess.Pos)
	origin.Exits[state.DirNorth] = false

	lines, err := TravelMove(sess, state.DirNorth, CatalogueGenerator{}, testRNG("travel"))

	require.Error(t, err)
	assert.Nil(t, lines)
	var ve *actionerr.ValidationError
	assert.ErrorAs(t, err, &ve)
	assert.Equal(t, "There is no exit to the North.", err.Error())

	assert.Equal(t, state.Position{}, sess.Pos, "position is unchanged on a rejected move")
	assert.Len(t, sess.Map.Tiles, 1, "no new tile is generated on a rejected move")
}

func TestTravelMoveSucceedsThroughOpenExit(t *testing.T) {
	sess := state.NewSession("owner-1", state.ModeSolo)
	GenerateInitialMap(sess.Map)
	sess.Pos = state.Position{}
	sess.Phase = state.PhaseExploring

	_, err := TravelMove(sess, state.DirEast, CatalogueGenerator{}, testRNG("open-travel"))
	require.NoError(t, err)
}

func TestDiscoveryIsMonotonic(t *testing.T) {
	m := state.NewMap()
	rng := testRNG("monotonic")
	pos := state.Position{X: 2, Y: 2}

	tile := RevealTile(m, pos, CatalogueGenerator{}, rng)
	tile.Visited = true

	RevealTile(m, pos, CatalogueGenerator{}, rng)
	assert.True(t, tile.Visited, "revealing an already-visited tile again never clears Visited")
}

func TestTilesVisitedCountsEachTileOnceAndNeverDecreases(t *testing.T) {
	m := state.NewMap()
	GenerateInitialMap(m)
	assert.Equal(t, 1, m.TilesVisited, "the origin tile's visit counts once at session creation")

	pos := state.Position{X: 1, Y: 0}
	tile := RevealTile(m, pos, CatalogueGenerator{}, testRNG("visit-count"))
	m.MarkVisited(tile)
	assert.Equal(t, 2, m.TilesVisited)

	m.MarkVisited(tile)
	assert.Equal(t, 2, m.TilesVisited, "re-visiting an already-visited tile does not double count")

	origin := m.TileAt(state.Position{})
	m.MarkVisited(origin)
	assert.Equal(t, 2, m.TilesVisited, "re-marking the already-visited origin is a no-op")
}

func TestEncounterRollNeverTriggersOnVisitedOrSafeTile(t *testing.T) {
	rng := testRNG("encounter")

	visited := &state.Tile{Visited: true, RoomType: state.RoomCombat}
	assert.False(t, EncounterRoll(visited, rng))

	safe := &state.Tile{Visited: false, RoomType: state.RoomRestShrine}
	assert.False(t, EncounterRoll(safe, rng))
}

func TestCompletePendingTravelResumesInterruptedMove(t *testing.T) {
	sess := state.NewSession("owner-1", state.ModeSolo)
	GenerateInitialMap(sess.Map)
	sess.Pos = state.Position{}
	dest := state.Position{X: 5, Y: 5}
	sess.PendingDest = state.PendingDestination{Pos: dest, Valid: true}
	sess.Players["owner-1"] = &state.PlayerState{UserID: "owner-1", HP: 10, MaxHP: 10, Alive: true}
	sess.Party = []string{"owner-1"}

	CompletePendingTravel(sess, CatalogueGenerator{}, testRNG("resume"))

	assert.Equal(t, dest, sess.Pos, "resumes to the interrupted destination")
	assert.False(t, sess.PendingDest.Valid, "pending destination is cleared once resumed")
}

func TestCompletePendingTravelReturnsToExploringWithNoPendingDest(t *testing.T) {
	sess := state.NewSession("owner-1", state.ModeSolo)
	GenerateInitialMap(sess.Map)
	sess.Pos = state.Position{}
	sess.Phase = state.PhaseCombat

	CompletePendingTravel(sess, CatalogueGenerator{}, testRNG("clear"))

	assert.Equal(t, state.PhaseExploring, sess.Phase)
	assert.True(t, sess.Map.TileAt(sess.Pos).Cleared)
}
