package state

// IntentKind is the telegraphed action an enemy will take on its next turn
// (§4.4, GLOSSARY "Intent").
type IntentKind uint8

const (
	IntentAttack IntentKind = iota
	IntentHeavyAttack
	IntentDefend
	IntentCharge
	IntentFlee
	IntentDebuff
	IntentAoeAttack
	IntentHealSelf
)

func (k IntentKind) String() string {
	switch k {
	case IntentAttack:
		return "Attack"
	case IntentHeavyAttack:
		return "HeavyAttack"
	case IntentDefend:
		return "Defend"
	case IntentCharge:
		return "Charge"
	case IntentFlee:
		return "Flee"
	case IntentDebuff:
		return "Debuff"
	case IntentAoeAttack:
		return "AoeAttack"
	case IntentHealSelf:
		return "HealSelf"
	default:
		return "Unknown"
	}
}

// Intent fully describes an enemy's next action, including any parameters
// the kind needs at resolution time.
type Intent struct {
	Kind IntentKind

	// Damage/Amount is the damage (Attack/HeavyAttack/AoeAttack) or heal
	// amount (HealSelf) before armour/cursed modifiers and the
	// resolution-time enrage multiplier; a damage intent rolled while the
	// enemy is Enraged already carries the selection-time 1.5x.
	Damage int

	// ArmourValue is added to the enemy's armour on a Defend intent.
	ArmourValue int

	// Debuff is the effect applied to the target on a Debuff intent.
	Debuff EffectInstance
}

// EnemyState is one combatant on the enemy side of an encounter (§3).
//
// Invariant: HP <= MaxHP. Invariant: Index is unique within the enemy list
// for the lifetime of the encounter (it is the external target handle).
type EnemyState struct {
	Name string

	Level int // 1..5

	HP    int
	MaxHP int

	Armour int

	Effects []EffectInstance

	Intent Intent

	// Charged is a one-shot primer: set by a Charge intent, consumed on the
	// following turn to force a HeavyAttack (§4.4 step 6).
	Charged bool

	LootTableID string

	// Enraged is boss-only: set once when HP first crosses 50% of MaxHP,
	// and multiplies damage intents by 1.5 thereafter.
	Enraged bool

	// Index is the stable external target handle (AttackTarget(index)).
	// It never changes after the enemy is spawned, even as other enemies
	// in the same encounter die and are removed from the slice.
	Index uint8
}

// ApplyDamage subtracts damage, floors HP at 0.
func (e *EnemyState) ApplyDamage(amount int) {
	if amount <= 0 {
		return
	}
	e.HP -= amount
	if e.HP < 0 {
		e.HP = 0
	}
}

// Dead reports whether the enemy's HP has reached zero.
func (e *EnemyState) Dead() bool { return e.HP <= 0 }

// MaybeEnrage sets Enraged the first time HP crosses half of MaxHP, for
// Boss-room enemies (§4.4 step 8).
func (e *EnemyState) MaybeEnrage(isBossRoom bool) {
	if isBossRoom && !e.Enraged && e.HP > 0 && e.HP <= e.MaxHP/2 {
		e.Enraged = true
	}
}
