// Package combat implements the intent/armour/effect combat pipeline:
// player attack resolution, enemy turns, flee attempts, and the
// solo/party turn orchestration that ties them together (§4.4).
package combat

import (
	"math/rand"

	"cardcrawl/internal/catalogue"
	"cardcrawl/internal/state"
)

// StartCombat applies the per-combat reset: every player's
// first_attack_in_combat is set and heals_used_this_combat clears.
func StartCombat(sess *state.Session) {
	for _, p := range sess.Players {
		p.FirstAttackInCombat = true
		p.HealsUsedThisCombat = 0
	}
}

// PickEnemyTarget resolves which player an attacking enemy aims at. In
// Solo it is always the acting player; in Party, 50% of the time the
// player who just acted, otherwise a uniformly random alive player.
func PickEnemyTarget(sess *state.Session, actorID string, rng *rand.Rand) string {
	if sess.Mode == state.ModeSolo {
		return actorID
	}
	if rng.Intn(2) == 0 {
		return actorID
	}
	living := sess.LivingPlayers()
	if len(living) == 0 {
		return actorID
	}
	return living[rng.Intn(len(living))].UserID
}

// ResolveTarget finds the enemy slot matching targetIdx, falling back to
// the first remaining enemy if the index has been removed by an earlier
// death in the same pass (§9 "Enemy targeting after reorders").
func ResolveTarget(sess *state.Session, targetIdx int) *state.EnemyState {
	return resolveTargetSlot(sess, targetIdx)
}

// resolveTargetSlot finds the enemy slot matching target_idx, falling
// back to the first remaining enemy if the index has been removed by an
// earlier death in the same pass (§9 "Enemy targeting after reorders").
func resolveTargetSlot(sess *state.Session, targetIdx int) *state.EnemyState {
	for i := range sess.Enemies {
		if int(sess.Enemies[i].Index) == targetIdx && !sess.Enemies[i].Dead() {
			return &sess.Enemies[i]
		}
	}
	for i := range sess.Enemies {
		if !sess.Enemies[i].Dead() {
			return &sess.Enemies[i]
		}
	}
	return nil
}

// equippedWeaponBonus looks up a player's equipped weapon damage bonus
// and optional special.
func equippedWeaponBonus(p *state.PlayerState) (dmgBonus int, special catalogue.GearSpecial) {
	if p.EquippedWeapon == "" {
		return 0, catalogue.GearSpecial{}
	}
	g, ok := catalogue.FindGear(p.EquippedWeapon)
	if !ok {
		return 0, catalogue.GearSpecial{}
	}
	return g.DamageBonus, g.Special
}

func cappedAccuracy(p *state.PlayerState, room *state.RoomState) float64 {
	acc := p.Accuracy() - room.FogPenalty()
	if acc < 0.1 {
		acc = 0.1
	}
	return acc
}

// clampMinArmourReduced subtracts armour from dmg, clamping to a minimum
// of 1 (§4.4 step 6).
func clampMinArmourReduced(dmg, armour int) int {
	out := dmg - armour
	if out < 1 {
		out = 1
	}
	return out
}
