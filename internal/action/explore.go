package action

import (
	"fmt"

	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/catalogue"
	"cardcrawl/internal/combat"
	"cardcrawl/internal/state"
	"cardcrawl/internal/worldmap"
)

// handleMove resolves a cardinal move (§4.3 Travel/Arrival). A travel
// encounter or a direct arrival into a Combat/Boss tile both need the
// per-combat reset applied once the new encounter is in place.
func handleMove(sess *state.Session, deps Deps, act Action) ([]string, error) {
	lines, err := worldmap.TravelMove(sess, act.Direction, deps.Gen, deps.Map)
	if err != nil {
		return nil, err
	}
	if sess.Phase == state.PhaseCombat {
		combat.StartCombat(sess)
	}
	return lines, nil
}

// handleRoomChoice resolves a RoomChoice(idx) pick for the room types
// that offer one: Trap (proceed carefully vs push through), Treasure
// (take vs leave), RestShrine-driven Rest (rest here vs move on), and
// Hallway (continue). Every branch concludes the room, returning the
// party to Exploring. The exact menu semantics are an Open Question the
// spec leaves unspecified beyond the phase table.
func handleRoomChoice(sess *state.Session, act Action, actorID string) ([]string, error) {
	var lines []string

	switch sess.Room.RoomType {
	case state.RoomTreasure:
		if act.TargetIdx == 0 {
			actor := sess.Players[actorID]
			gold := 10 + sess.Room.Depth*3
			actor.Gold += gold
			actor.LifetimeGoldEarned += gold
			lines = append(lines, fmt.Sprintf("%s claims %d gold from the alcove.", actor.Name, gold))
		} else {
			lines = append(lines, "The party leaves the treasure undisturbed.")
		}
	case state.RoomTrap:
		if act.TargetIdx == 0 {
			lines = append(lines, "The party edges past the broken floor.")
		} else {
			for _, p := range sess.LivingPlayers() {
				p.ApplyDamage(1 + sess.Room.Depth)
			}
			lines = append(lines, "Rushing through costs the party a few bruises.")
		}
	case state.RoomRestShrine:
		if act.TargetIdx == 0 {
			for _, p := range sess.LivingPlayers() {
				p.HealUp(15 + sess.Room.HealBonus())
			}
			lines = append(lines, "The party rests a moment at the shrine.")
		} else {
			lines = append(lines, "The party moves on without resting.")
		}
	default:
		lines = append(lines, "The party continues onward.")
	}

	if tile := sess.Map.TileAt(sess.Pos); tile != nil {
		tile.Cleared = true
	}
	sess.Phase = state.PhaseExploring
	return lines, nil
}

// handleStoryChoice resolves a picked Event-room option against the
// catalogue's story tables (§4.1 ResolveStoryChoice).
func handleStoryChoice(sess *state.Session, deps Deps, act Action, actorID string) ([]string, error) {
	if sess.Room.StoryEvent == nil || act.ChoiceIdx < 0 || act.ChoiceIdx >= len(sess.Room.StoryEvent.Choices) {
		return nil, actionerr.Validation("That choice isn't available.")
	}
	actor := sess.Players[actorID]
	outcome := catalogue.ResolveStoryChoice(sess.Room.StoryEvent.Prompt, act.ChoiceIdx, actor.Class, deps.Map)

	if outcome.GoldDelta != 0 {
		actor.Gold += outcome.GoldDelta
		if outcome.GoldDelta > 0 {
			actor.LifetimeGoldEarned += outcome.GoldDelta
		}
	}
	if outcome.HealAmount > 0 {
		actor.HealUp(outcome.HealAmount)
	} else if outcome.HealAmount < 0 {
		actor.ApplyDamage(-outcome.HealAmount)
	}
	if outcome.Accuracy != 0 {
		actor.BaseAccuracy = actor.Accuracy() + outcome.Accuracy
	}

	if tile := sess.Map.TileAt(sess.Pos); tile != nil {
		tile.Cleared = true
	}
	sess.Phase = state.PhaseExploring
	return []string{outcome.Message}, nil
}
