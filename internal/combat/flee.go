package combat

import (
	"fmt"
	"math/rand"

	"cardcrawl/internal/state"
)

// AttemptFlee resolves a player's flee attempt (§4.4 Flee). On success it
// clears the encounter and returns the party to Exploring in a fresh
// Hallway; on failure it reports the failure so the caller can run a
// normal enemy-turn pass as punishment.
func AttemptFlee(sess *state.Session, actorID string, rng *rand.Rand) (lines []string, succeeded bool) {
	actor, ok := sess.Players[actorID]
	if !ok {
		return []string{"unknown actor"}, false
	}

	chance := 0.6 - 0.05*float64(sess.Room.Depth)
	if chance < 0.3 {
		chance = 0.3
	}
	if actor.Class == state.ClassRogue {
		chance += 0.15
		if chance > 1.0 {
			chance = 1.0
		}
	}

	if rng.Float64() < chance {
		fleeToHallway(sess)
		return []string{fmt.Sprintf("%s escapes the fight!", actor.Name)}, true
	}

	return []string{fmt.Sprintf("%s fails to escape!", actor.Name)}, false
}

// ForceFlee is the GuaranteedFlee item effect (§4.1): identical to a
// successful AttemptFlee, but without the roll.
func ForceFlee(sess *state.Session, actorID string) []string {
	actor, ok := sess.Players[actorID]
	name := "The party"
	if ok {
		name = actor.Name
	}
	fleeToHallway(sess)
	return []string{fmt.Sprintf("%s slips away from the fight!", name)}
}

func fleeToHallway(sess *state.Session) {
	sess.Enemies = nil
	sess.Room = state.RoomState{
		Depth:       sess.Room.Depth,
		RoomType:    state.RoomHallway,
		DisplayName: "Narrow Hallway",
		Description: "The corridor stretches on, unremarkable.",
	}
	sess.Phase = state.PhaseExploring
	sess.PendingDest = state.PendingDestination{}
}
