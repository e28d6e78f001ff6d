package worldmap

import (
	"cardcrawl/internal/catalogue"
	"cardcrawl/internal/state"
)

// phaseForRoomType maps an arrival room type to its resulting phase
// (§4.3 Arrival table).
func phaseForRoomType(rt state.RoomType) state.Phase {
	switch rt {
	case state.RoomCombat, state.RoomBoss:
		return state.PhaseCombat
	case state.RoomTreasure:
		return state.PhaseTreasure
	case state.RoomRestShrine:
		return state.PhaseRest
	case state.RoomTrap:
		return state.PhaseTrap
	case state.RoomMerchant:
		return state.PhaseMerchant
	case state.RoomStory:
		return state.PhaseEvent
	case state.RoomUndergroundCity:
		return state.PhaseCity
	default:
		return state.PhaseHallway
	}
}

// ArriveAtTile marks pos visited, reveals its neighbors, builds the
// RoomState, applies hazards, and transitions phase (§4.3 Arrival).
func ArriveAtTile(sess *state.Session, pos state.Position, gen Generator, rng *RNG) []string {
	var lines []string

	tile := RevealTile(sess.Map, pos, gen, rng)
	sess.Map.MarkVisited(tile)
	sess.Pos = pos

	for _, d := range []state.Direction{state.DirNorth, state.DirSouth, state.DirEast, state.DirWest} {
		RevealTile(sess.Map, pos.Neighbor(d), gen, rng)
	}

	isBoss := tile.RoomType == state.RoomBoss
	room := catalogue.GenerateRoom(tile.RoomType, pos.Depth, rng)
	sess.Room = room

	for _, hz := range room.Hazards {
		for _, p := range sess.LivingPlayers() {
			switch hz.Kind {
			case state.HazardSpikes:
				p.ApplyDamage(hz.Damage)
				lines = append(lines, p.Name+" is struck by spikes.")
			case state.HazardGas:
				p.Effects = append(p.Effects, state.EffectInstance{Kind: hz.EffectKind, Stacks: hz.Stacks, TurnsLeft: hz.Turns})
				lines = append(lines, p.Name+" breathes in noxious gas.")
			}
		}
	}

	if !sess.AnyLiving() {
		sess.Phase = state.PhaseGameOverDefeated
		return lines
	}

	switch tile.RoomType {
	case state.RoomCombat, state.RoomBoss:
		sess.Enemies = catalogue.SpawnEnemies(pos.Depth, isBoss, rng)
		// per-combat reset happens in combat.StartCombat, invoked by the
		// action dispatcher right after this call.
	}
	sess.Phase = phaseForRoomType(tile.RoomType)

	return lines
}

// CompletePendingTravel is invoked once the last enemy in an encounter
// dies. If a travel move was interrupted it resumes to the destination;
// otherwise the current tile is cleared and the party returns to
// Exploring (§4.3 "Pending travel").
func CompletePendingTravel(sess *state.Session, gen Generator, rng *RNG) []string {
	current := sess.Map.TileAt(sess.Pos)
	if current != nil {
		current.Cleared = true
	}

	if sess.PendingDest.Valid {
		dest := sess.PendingDest.Pos
		sess.PendingDest = state.PendingDestination{}
		return ArriveAtTile(sess, dest, gen, rng)
	}

	sess.Phase = state.PhaseExploring
	return nil
}

// TravelMove resolves apply_move (§4.3 Travel): validates the exit,
// generates the destination tile, and either starts a travel encounter
// or arrives directly.
func TravelMove(sess *state.Session, dir state.Direction, gen Generator, rng *RNG) ([]string, error) {
	current := sess.Map.TileAt(sess.Pos)
	if current == nil || !current.Exits[dir] {
		return nil, errNoExit(dir)
	}

	dest, tile := ApplyMove(sess.Map, sess.Pos, dir, gen, rng)

	if EncounterRoll(tile, rng) {
		isBoss := false
		encounterRoom := catalogue.GenerateEncounterRoom(dest.Depth, isBoss, rng)
		sess.Room = encounterRoom
		sess.Enemies = catalogue.SpawnEnemies(dest.Depth, isBoss, rng)
		sess.Phase = state.PhaseCombat
		sess.PendingDest = state.PendingDestination{Pos: dest, Valid: true}
		return []string{"An encounter blocks the path forward!"}, nil
	}

	return ArriveAtTile(sess, dest, gen, rng), nil
}
