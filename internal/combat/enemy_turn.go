package combat

import (
	"fmt"
	"math/rand"

	"cardcrawl/internal/catalogue"
	"cardcrawl/internal/effect"
	"cardcrawl/internal/state"
)

// SingleEnemyTurn resolves one enemy's turn against targetID (§4.4). It
// mutates sess in place and returns the log lines produced. A return of
// phaseEnded=true means the encounter just ended mid-resolution (a Flee
// intent emptied the enemy list) and the caller must stop iterating
// enemies for this pass.
func SingleEnemyTurn(sess *state.Session, enemyIdx int, targetID string, rng *rand.Rand) (lines []string, phaseEnded bool) {
	enemy := resolveTargetSlot(sess, enemyIdx)
	if enemy == nil {
		return nil, false
	}

	if effect.Has(enemy.Effects, state.EffectStunned) {
		return []string{fmt.Sprintf("%s is stunned and cannot act.", enemy.Name)}, false
	}

	cursedMult := sess.Room.CursedMultiplier()
	intent := enemy.Intent

	switch intent.Kind {
	case state.IntentAttack, state.IntentHeavyAttack:
		target, ok := sess.Players[targetID]
		if !ok {
			break
		}
		dealt := resolveEnemyDamageAgainst(intent.Damage, enemy.Enraged, cursedMult, target)
		dealt = applyWeakened(enemy, dealt)
		target.ApplyDamage(dealt)
		lines = append(lines, fmt.Sprintf("%s hits %s for %d damage.", enemy.Name, target.Name, dealt))
		lines = append(lines, thornsReflect(enemy, target)...)

	case state.IntentDefend:
		enemy.Armour += intent.ArmourValue
		lines = append(lines, fmt.Sprintf("%s braces, gaining armour.", enemy.Name))

	case state.IntentCharge:
		enemy.Charged = true
		lines = append(lines, fmt.Sprintf("%s is charging a heavy attack.", enemy.Name))

	case state.IntentFlee:
		removeEnemy(sess, enemy.Index)
		lines = append(lines, fmt.Sprintf("%s flees the fight.", enemy.Name))
		if sess.AllEnemiesDead() {
			sess.Phase = state.PhaseExploring
			return lines, true
		}
		return lines, false

	case state.IntentDebuff:
		target, ok := sess.Players[targetID]
		if ok {
			target.Effects = effect.Apply(target.Effects, intent.Debuff)
			lines = append(lines, fmt.Sprintf("%s afflicts %s.", enemy.Name, target.Name))
		}

	case state.IntentAoeAttack:
		for _, p := range sess.LivingPlayers() {
			dealt := resolveEnemyDamageAgainst(intent.Damage, enemy.Enraged, cursedMult, p)
			p.ApplyDamage(dealt)
			lines = append(lines, fmt.Sprintf("%s is caught in the blast for %d damage.", p.Name, dealt))
		}

	case state.IntentHealSelf:
		healed := enemy.HP + intent.Damage
		if healed > enemy.MaxHP {
			healed = enemy.MaxHP
		}
		enemy.HP = healed
		lines = append(lines, fmt.Sprintf("%s recovers some health.", enemy.Name))
	}

	lines = append(lines, rollNextIntent(enemy, rng)...)
	return lines, false
}

// resolveEnemyDamageAgainst implements the damage formula common to
// Attack/HeavyAttack/AoeAttack: armour reduction, enrage, cursed
// multiplier, then the Shielded/defending double-halving.
func resolveEnemyDamageAgainst(base int, enraged bool, cursedMult float64, target *state.PlayerState) int {
	dmg := base - target.Armour
	if dmg < 1 {
		dmg = 1
	}
	if enraged {
		dmg = int(float64(dmg) * 1.5)
	}
	dmg = int(float64(dmg) * cursedMult)

	// Shielded and defending are applied as two independent truncating
	// halvings, not a combined multiplier: per the specified behavior,
	// having both active quarters the damage rather than halving it once.
	if effect.ShieldedHalves(target.Effects) {
		dmg = dmg / 2
	}
	if target.Defending {
		dmg = dmg / 2
	}
	if dmg < 0 {
		dmg = 0
	}
	return dmg
}

func applyWeakened(enemy *state.EnemyState, dmg int) int {
	if effect.Has(enemy.Effects, state.EffectWeakened) {
		return (dmg * 7) / 10
	}
	return dmg
}

func thornsReflect(enemy *state.EnemyState, target *state.PlayerState) []string {
	reflected := thornsEffectStacks(target.Effects) + thornsGearDamage(target)
	if reflected <= 0 {
		return nil
	}
	enemy.ApplyDamage(reflected)
	return []string{fmt.Sprintf("Thorns deals %d damage back to %s.", reflected, enemy.Name)}
}

func thornsEffectStacks(effects []state.EffectInstance) int {
	for _, e := range effects {
		if e.Kind == state.EffectThorns {
			return int(e.Stacks)
		}
	}
	return 0
}

func thornsGearDamage(p *state.PlayerState) int {
	if p.EquippedArmour == "" {
		return 0
	}
	g, ok := catalogue.FindGear(p.EquippedArmour)
	if !ok || g.Special.Kind != "thorns" {
		return 0
	}
	return int(g.Special.Value * 10)
}

func removeEnemy(sess *state.Session, index uint8) {
	out := sess.Enemies[:0]
	for _, e := range sess.Enemies {
		if e.Index != index {
			out = append(out, e)
		}
	}
	sess.Enemies = out
}
