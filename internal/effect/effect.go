// Package effect implements timed status-effect bookkeeping: applying,
// stacking, ticking, and querying the damage-over-time and stat-bonus
// effects defined in internal/state.
package effect

import "cardcrawl/internal/state"

// TickResult carries the damage a tick-based effect (Poison, Burning,
// Bleed) deals this turn, so the caller can apply it and log it.
type TickResult struct {
	Kind   state.EffectKind
	Damage int
}

// Tick returns the damage owed this turn by every damage-over-time effect
// (including one on its last turn), then decrements every effect's
// remaining turns by one and drops the ones that reach zero.
func Tick(effects []state.EffectInstance) ([]state.EffectInstance, []TickResult) {
	kept := effects[:0]
	var results []TickResult
	for _, e := range effects {
		if dmg := tickDamage(e); dmg > 0 {
			results = append(results, TickResult{Kind: e.Kind, Damage: dmg})
		}
		e.TurnsLeft--
		if e.TurnsLeft > 0 {
			kept = append(kept, e)
		}
	}
	return kept, results
}

func tickDamage(e state.EffectInstance) int {
	switch e.Kind {
	case state.EffectPoison:
		return 2 * int(e.Stacks)
	case state.EffectBurning:
		return 3 * int(e.Stacks)
	case state.EffectBleed:
		return 1 * int(e.Stacks)
	default:
		return 0
	}
}

// Apply adds eff to effects, stacking with an existing instance of the
// same kind: stacks add, and the longer of the two durations is kept.
func Apply(effects []state.EffectInstance, eff state.EffectInstance) []state.EffectInstance {
	for i, e := range effects {
		if e.Kind != eff.Kind {
			continue
		}
		e.Stacks += eff.Stacks
		if eff.TurnsLeft > e.TurnsLeft {
			e.TurnsLeft = eff.TurnsLeft
		}
		effects[i] = e
		return effects
	}
	return append(effects, eff)
}

// Has reports whether effects contains an instance of kind.
func Has(effects []state.EffectInstance, kind state.EffectKind) bool {
	for _, e := range effects {
		if e.Kind == kind {
			return true
		}
	}
	return false
}

// Remove drops every instance of kind from effects.
func Remove(effects []state.EffectInstance, kind state.EffectKind) []state.EffectInstance {
	out := effects[:0]
	for _, e := range effects {
		if e.Kind != kind {
			out = append(out, e)
		}
	}
	return out
}

// SharpenedBonus returns the flat damage bonus granted by Sharpened
// stacks: 3 per stack (§4.4 step 3), 0 if absent.
func SharpenedBonus(effects []state.EffectInstance) int {
	for _, e := range effects {
		if e.Kind == state.EffectSharpened {
			return 3 * int(e.Stacks)
		}
	}
	return 0
}

// ShieldedHalves reports whether Shielded is active; the caller halves
// incoming damage once per the rules in §4.4 (and again if Defending, per
// the resolved double-halving question).
func ShieldedHalves(effects []state.EffectInstance) bool {
	return Has(effects, state.EffectShielded)
}
