package combat

import (
	"fmt"
	"math/rand"

	"cardcrawl/internal/effect"
	"cardcrawl/internal/state"
)

// PlayerTurn is one party member's submitted action for this combat
// round, generalized so Solo and Party share one resolver (§9
// "Turn-resolver decomposition").
type PlayerTurn struct {
	ActorID      string
	Kind         PlayerTurnKind
	TargetIdx    int    // AttackTarget only; 0 means "default target"
	TargetUserID string // HealAlly only

	// Lines is pre-computed log output for TurnNoop (a UseItem effect
	// already applied by the dispatcher before the round runs); the
	// round still consumes the actor's turn and runs enemy replies.
	Lines []string
}

// PlayerTurnKind enumerates the turn-consuming combat actions.
type PlayerTurnKind uint8

const (
	TurnAttack PlayerTurnKind = iota
	TurnDefend
	TurnHealAlly
	TurnFlee
	TurnNoop
)

// ResolveTurns runs the shared combat inner loop: player actions in
// submission order, enemy death handling, remaining enemy turns (each
// targeting via PickEnemyTarget), per-actor and per-enemy effect ticks, a
// final death pass, and clearing defending flags. Solo calls this with a
// single-element turns slice; Party calls it with the full drained
// pending-actions batch (§4.4, §9).
func ResolveTurns(sess *state.Session, turns []PlayerTurn, rng *rand.Rand) []string {
	var lines []string
	actorID := firstActor(turns)

	for _, t := range turns {
		actor, ok := sess.Players[t.ActorID]
		if !ok || !actor.Alive {
			continue
		}
		switch t.Kind {
		case TurnAttack:
			if len(sess.Enemies) == 0 {
				continue
			}
			target := pickTarget(sess, t.TargetIdx)
			lns, _ := ResolvePlayerAttack(sess, t.ActorID, target, rng)
			lines = append(lines, lns...)
		case TurnDefend:
			actor.Defending = true
			lines = append(lines, actor.Name+" braces for the next attack.")
		case TurnHealAlly:
			ally, ok := sess.Players[t.TargetUserID]
			if !ok {
				continue
			}
			amount := clericHealAmount(actor, &sess.Room)
			healed := ally.HealUp(amount)
			actor.HealsUsedThisCombat++
			lines = append(lines, fmt.Sprintf("%s channels healing into %s for %d HP.", actor.Name, ally.Name, healed))
		case TurnFlee:
			fleeLines, succeeded := AttemptFlee(sess, t.ActorID, rng)
			lines = append(lines, fleeLines...)
			if succeeded {
				return lines
			}
		case TurnNoop:
			lines = append(lines, t.Lines...)
		}
	}

	lines = append(lines, HandleEnemyDeaths(sess, actorID, rng)...)

	if !sess.AllEnemiesDead() {
		for _, enemy := range append([]state.EnemyState{}, sess.Enemies...) {
			if !sess.AnyLiving() {
				break
			}
			targetID := PickEnemyTarget(sess, actorID, rng)
			lns, ended := SingleEnemyTurn(sess, int(enemy.Index), targetID, rng)
			lines = append(lines, lns...)
			if ended {
				break
			}
		}
		lines = append(lines, HandleEnemyDeaths(sess, actorID, rng)...)
	}

	lines = append(lines, tickCombatEffects(sess, turns, rng)...)

	for _, t := range turns {
		if p, ok := sess.Players[t.ActorID]; ok {
			p.Defending = false
		}
	}

	resolvePostCombatPhase(sess)

	return lines
}

// clericHealAmount is the flat heal a Cleric's HealAlly channels, before
// any Blessing room bonus.
func clericHealAmount(actor *state.PlayerState, room *state.RoomState) int {
	return 15 + room.HealBonus()
}

func pickTarget(sess *state.Session, targetIdx int) int {
	if targetIdx != 0 {
		return targetIdx
	}
	living := sess.LivingEnemies()
	if len(living) == 0 {
		return 0
	}
	return int(living[0].Index)
}

func firstActor(turns []PlayerTurn) string {
	if len(turns) == 0 {
		return ""
	}
	return turns[0].ActorID
}

// tickCombatEffects ticks each acting player's effects, then every
// enemy's effects, then runs a final death pass (§4.4 turn orchestration).
func tickCombatEffects(sess *state.Session, turns []PlayerTurn, rng *rand.Rand) []string {
	for _, t := range turns {
		p, ok := sess.Players[t.ActorID]
		if !ok {
			continue
		}
		kept, ticks := effect.Tick(p.Effects)
		p.Effects = kept
		for _, tk := range ticks {
			p.ApplyDamage(tk.Damage)
		}
	}
	for i := range sess.Enemies {
		kept, ticks := effect.Tick(sess.Enemies[i].Effects)
		sess.Enemies[i].Effects = kept
		for _, tk := range ticks {
			sess.Enemies[i].ApplyDamage(tk.Damage)
		}
	}
	return HandleEnemyDeaths(sess, firstActor(turns), rng)
}

// resolvePostCombatPhase applies the death-cascade and phase-settling
// rules after a combat round: defeat ends the run, otherwise Party stays
// in Combat (Solo's caller decides Exploring/Combat based on pending
// travel via CompletePendingTravel).
func resolvePostCombatPhase(sess *state.Session) {
	if !sess.AnyLiving() {
		sess.Phase = state.PhaseGameOverDefeated
		return
	}
	if sess.Phase.IsGameOver() {
		return
	}
	if !sess.AllEnemiesDead() && sess.Mode == state.ModeParty {
		sess.Phase = state.PhaseCombat
	}
}
