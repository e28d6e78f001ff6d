// Package worldmap implements lazy tile generation and travel resolution
// for a single dungeon run: tiles are generated on first reveal rather
// than up front, and the four cardinal directions are the only form of
// movement offered to a party.
package worldmap

import (
	"cardcrawl/internal/catalogue"
	"cardcrawl/internal/state"
)

// Generator picks the room type of newly-revealed tiles. Production wiring
// uses CatalogueGenerator (catalogue.RollRoomType); tests can substitute a
// fixed sequence.
type Generator interface {
	RoomTypeFor(pos state.Position, rng *RNG) state.RoomType
}

// CatalogueGenerator is the production Generator, grounded on the room
// tables in internal/catalogue.
type CatalogueGenerator struct{}

// RoomTypeFor rolls a room type for a freshly-discovered tile.
func (CatalogueGenerator) RoomTypeFor(pos state.Position, rng *RNG) state.RoomType {
	return catalogue.RollRoomType(pos.Depth, rng)
}

// RevealTile ensures pos exists in m, generating its room type and exit
// set the first time it's revealed. It is idempotent: revealing an
// already-generated tile is a no-op.
func RevealTile(m *state.Map, pos state.Position, gen Generator, rng *RNG) *state.Tile {
	t := m.EnsureTile(pos)
	if t.Generated {
		return t
	}
	t.RoomType = gen.RoomTypeFor(pos, rng)
	t.Generated = true

	for _, d := range []state.Direction{state.DirNorth, state.DirSouth, state.DirEast, state.DirWest} {
		// Each side gets an independent 65% exit roll, so dead ends are
		// rare but possible; the exit back the way the party came is added
		// by EnsureReciprocalExit when the party moves in.
		t.Exits[d] = rng.Chance(0.65)
	}
	return t
}

// EnsureReciprocalExit guarantees that moving from `from` in direction d
// leaves an exit back to `from` on the destination tile, so the party is
// never stranded after a forward move.
func EnsureReciprocalExit(m *state.Map, from state.Position, d state.Direction) {
	to := from.Neighbor(d)
	t := m.EnsureTile(to)
	t.Exits[d.Opposite()] = true
	fromTile := m.EnsureTile(from)
	fromTile.Exits[d] = true
}

// AvailableExits returns the directions a party may travel from pos,
// generating pos first if necessary.
func AvailableExits(m *state.Map, pos state.Position, gen Generator, rng *RNG) []state.Direction {
	t := RevealTile(m, pos, gen, rng)
	out := make([]state.Direction, 0, 4)
	for _, d := range []state.Direction{state.DirNorth, state.DirSouth, state.DirEast, state.DirWest} {
		if t.Exits[d] {
			out = append(out, d)
		}
	}
	return out
}

// ApplyMove computes the destination of a move in direction d from pos,
// ensuring the reciprocal exit, and returns the destination position and
// its (possibly freshly-revealed) tile.
func ApplyMove(m *state.Map, pos state.Position, d state.Direction, gen Generator, rng *RNG) (state.Position, *state.Tile) {
	dest := pos.Neighbor(d)
	tile := RevealTile(m, dest, gen, rng)
	EnsureReciprocalExit(m, pos, d)
	return dest, tile
}

// GenerateInitialMap seeds a brand new session's map with a visited
// Hallway origin tile open on every side, per §3's map invariant ("the
// origin tile exists and is visited at session creation").
func GenerateInitialMap(m *state.Map) {
	origin := state.Position{}
	t := m.EnsureTile(origin)
	t.RoomType = state.RoomHallway
	t.Generated = true
	m.MarkVisited(t)
	for _, d := range []state.Direction{state.DirNorth, state.DirSouth, state.DirEast, state.DirWest} {
		t.Exits[d] = true
	}
}

// EncounterRoll decides whether arriving at a freshly-discovered,
// non-safe tile triggers a combat encounter (§4.3 Travel).
func EncounterRoll(tile *state.Tile, rng *RNG) bool {
	if tile.Visited {
		return false
	}
	if tile.RoomType.Safe() {
		return false
	}
	return rng.Chance(0.25)
}
