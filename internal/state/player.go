package state

// ItemStack is one slot of a player's inventory: a stack of a single item ID.
type ItemStack struct {
	ItemID   string
	Quantity int
}

// PlayerState is one party member's authoritative state (§3).
//
// Invariant: 0 <= HP <= MaxHP after any mutation.
// Invariant: if HP <= 0 then Alive == false by the end of any resolver pass.
type PlayerState struct {
	UserID string
	Name   string

	HP    int
	MaxHP int

	Armour int
	Gold   int

	Inventory []ItemStack

	Class Class
	Level int
	XP    int
	XPToNext int

	CritChance      float64
	BaseDamageBonus int

	EquippedWeapon string // ItemID, "" if none
	EquippedArmour string // ItemID, "" if none

	Effects []EffectInstance

	Alive     bool
	Defending bool

	StunnedTurns int

	// FirstAttackInCombat gates the Rogue guaranteed-crit passive (§4.4).
	FirstAttackInCombat bool

	// HealsUsedThisCombat enforces the Cleric one-heal-per-combat cap (§4.5).
	HealsUsedThisCombat int

	// Lifetime aggregate counters; the rendered card does not draw them.
	LifetimeKills          int
	LifetimeGoldEarned     int
	LifetimeRoomsCleared   int
	LifetimeBossesDefeated int

	// BaseAccuracy is the player's hit chance before room-modifier
	// penalties (Fog) are applied (§4.4 step 1). Defaults to 1.0 (perfect)
	// at creation; story outcomes may adjust it permanently.
	BaseAccuracy float64
}

// Accuracy returns the player's base hit chance before room-modifier
// penalties are applied.
func (p *PlayerState) Accuracy() float64 {
	if p.BaseAccuracy == 0 {
		return 1.0
	}
	return p.BaseAccuracy
}

// HealUp heals the player, clamping to MaxHP (the HP-cap law in §8).
func (p *PlayerState) HealUp(amount int) int {
	if amount <= 0 {
		return 0
	}
	before := p.HP
	p.HP += amount
	if p.HP > p.MaxHP {
		p.HP = p.MaxHP
	}
	return p.HP - before
}

// ApplyDamage subtracts damage from HP, floors at 0, and flips Alive off
// when HP reaches 0.
func (p *PlayerState) ApplyDamage(amount int) {
	if amount <= 0 {
		return
	}
	p.HP -= amount
	if p.HP < 0 {
		p.HP = 0
	}
	if p.HP <= 0 {
		p.Alive = false
	}
}
