package combat

import (
	"fmt"
	"math/rand"

	"cardcrawl/internal/catalogue"
	"cardcrawl/internal/state"
)

// rollNextIntent picks the enemy's intent for its next turn (§4.4 step 6)
// and returns the log line announcing it.
func rollNextIntent(enemy *state.EnemyState, rng *rand.Rand) []string {
	if enemy.Charged {
		enemy.Charged = false
		dmg := 12 + enemy.Level*3
		if enemy.Enraged {
			dmg = int(float64(dmg) * 1.5)
		}
		enemy.Intent = state.Intent{Kind: state.IntentHeavyAttack, Damage: dmg}
		return []string{fmt.Sprintf("%s telegraphs a heavy attack.", enemy.Name)}
	}

	intent := sampleIntent(enemy, rng)
	if enemy.Enraged {
		switch intent.Kind {
		case state.IntentAttack, state.IntentHeavyAttack, state.IntentAoeAttack:
			intent.Damage = int(float64(intent.Damage) * 1.5)
		}
	}
	enemy.Intent = intent
	return []string{fmt.Sprintf("%s prepares to %s.", enemy.Name, intent.Kind.String())}
}

// sampleIntent draws from the tiered intent pool matching the enemy's
// level (§4.4 step 6).
func sampleIntent(enemy *state.EnemyState, rng *rand.Rand) state.Intent {
	baseDmg := catalogue.EnemyBaseDamage(enemy.Name) + enemy.Level*2

	basic := []state.Intent{
		{Kind: state.IntentAttack, Damage: baseDmg},
		{Kind: state.IntentAttack, Damage: baseDmg},
		{Kind: state.IntentHeavyAttack, Damage: baseDmg + 4},
		{Kind: state.IntentDefend, ArmourValue: 3},
		{Kind: state.IntentCharge},
	}

	if enemy.Level <= 1 {
		return basic[rng.Intn(len(basic))]
	}

	midTier := append(append([]state.Intent{}, basic...),
		state.Intent{Kind: state.IntentDebuff, Debuff: state.EffectInstance{Kind: state.EffectWeakened, Stacks: 1, TurnsLeft: 3}},
		state.Intent{Kind: state.IntentDebuff, Debuff: state.EffectInstance{Kind: state.EffectBleed, Stacks: 1, TurnsLeft: 3}},
	)

	if enemy.Level <= 3 {
		return midTier[rng.Intn(len(midTier))]
	}

	bossTier := append(append([]state.Intent{}, midTier...),
		state.Intent{Kind: state.IntentAoeAttack, Damage: baseDmg},
		state.Intent{Kind: state.IntentHealSelf, Damage: 10 + enemy.Level*2},
		state.Intent{Kind: state.IntentDebuff, Debuff: state.EffectInstance{Kind: state.EffectStunned, Stacks: 1, TurnsLeft: 1}},
	)
	return bossTier[rng.Intn(len(bossTier))]
}
