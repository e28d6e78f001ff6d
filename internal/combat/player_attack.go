package combat

import (
	"fmt"
	"math/rand"

	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/effect"
	"cardcrawl/internal/state"
)

// ResolvePlayerAttack runs the ten-step player attack pipeline against
// the enemy at targetIdx (§4.4). It mutates sess in place and returns the
// log lines produced.
func ResolvePlayerAttack(sess *state.Session, actorID string, targetIdx int, rng *rand.Rand) ([]string, error) {
	actor, ok := sess.Players[actorID]
	if !ok {
		return nil, actionerr.Validation("unknown actor")
	}

	accuracy := cappedAccuracy(actor, &sess.Room)
	if rng.Float64() >= accuracy {
		return []string{fmt.Sprintf("%s's attack misses.", actor.Name)}, nil
	}

	dmgBonus, special := equippedWeaponBonus(actor)
	base := 6 + rng.Intn(7) // 6..=12
	base += actor.BaseDamageBonus
	base += dmgBonus
	base += effect.SharpenedBonus(actor.Effects)
	if effect.Has(actor.Effects, state.EffectWeakened) {
		base = (base * 7) / 10
	}

	target := resolveTargetSlot(sess, targetIdx)
	if target == nil {
		return []string{fmt.Sprintf("%s's attack finds no target.", actor.Name)}, nil
	}

	critChance := actor.CritChance
	if special.Kind == "critBonus" {
		critChance += special.Value
	}
	guaranteedCrit := actor.Class == state.ClassRogue && actor.FirstAttackInCombat
	crit := guaranteedCrit || rng.Float64() < critChance
	dmg := base
	if crit {
		dmg *= 2
	}

	dealt := clampMinArmourReduced(dmg, target.Armour)
	target.ApplyDamage(dealt)

	lines := []string{fmt.Sprintf("%s hits %s for %d damage.", actor.Name, target.Name, dealt)}
	if crit {
		lines = append(lines, "Critical hit!")
	}

	if actor.Class == state.ClassWarrior && rng.Float64() < 0.2 && !target.Dead() {
		target.Effects = effect.Apply(target.Effects, state.EffectInstance{Kind: state.EffectStunned, Stacks: 1, TurnsLeft: 1})
		lines = append(lines, fmt.Sprintf("%s is stunned!", target.Name))
	}

	target.MaybeEnrage(sess.Room.RoomType == state.RoomBoss)

	if special.Kind == "lifesteal" && !target.Dead() {
		healed := int(float64(dealt) * special.Value)
		if healed > 0 {
			actor.HealUp(healed)
			lines = append(lines, fmt.Sprintf("%s drains %d health.", actor.Name, healed))
		}
	}

	actor.FirstAttackInCombat = false

	return lines, nil
}
