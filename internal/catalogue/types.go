// Package catalogue holds the static game-content tables — items, gear,
// enemy templates, room flavour, and loot tables — and the functions that
// roll concrete instances from them. All tables are embedded YAML data
// loaded once at package init.
package catalogue

import "cardcrawl/internal/state"

// Rarity gates both loot weighting and the sell-price schedule (§4.1,
// §8 "Sell round-trip").
type Rarity string

const (
	RarityCommon   Rarity = "common"
	RarityUncommon Rarity = "uncommon"
	RarityRare     Rarity = "rare"
	RarityEpic     Rarity = "epic"
)

// sellFraction is the fixed schedule §8's sell round-trip law refers to:
// Common sells for exactly half of buy price, rarer gear retains
// proportionally less since its buy price already carries the premium.
func (r Rarity) sellFraction() float64 {
	switch r {
	case RarityUncommon:
		return 0.4
	case RarityRare:
		return 0.35
	case RarityEpic:
		return 0.3
	default:
		return 0.5
	}
}

// sellPrice floors buyPrice*sellFraction per the schedule.
func (r Rarity) sellPrice(buyPrice int) int {
	return int(float64(buyPrice) * r.sellFraction())
}

// ItemDef is a consumable's static definition.
type ItemDef struct {
	ID          string    `yaml:"id"`
	Name        string    `yaml:"name"`
	Description string    `yaml:"description"`
	Rarity      Rarity    `yaml:"rarity"`
	BuyPrice    int       `yaml:"buyPrice"`
	Use         UseEffect `yaml:"use"`
}

// SellPrice returns what a merchant pays for one unit, per the rarity
// sell schedule.
func (d ItemDef) SellPrice() int { return d.Rarity.sellPrice(d.BuyPrice) }

// UseEffect describes what consuming an item does, covering the full
// §4.1 UseEffect variant set. Exactly one field (besides RevivePct, which
// is Revive's own action) is expected to be set per item.
type UseEffect struct {
	Heal                     int             `yaml:"heal,omitempty"`
	FullHeal                 bool            `yaml:"fullHeal,omitempty"`
	DamageEnemy              int             `yaml:"damageEnemy,omitempty"`
	ApplyEffect              *EffectTemplate `yaml:"applyEffect,omitempty"`
	RemoveEffect             string          `yaml:"removeEffect,omitempty"`
	RemoveAllNegativeEffects bool            `yaml:"removeAllNegativeEffects,omitempty"`
	GuaranteedFlee           bool            `yaml:"guaranteedFlee,omitempty"`
	RevivePct                float64         `yaml:"revivePct,omitempty"`
}

// EffectTemplate is the YAML-facing shape of an EffectInstance, minus the
// runtime-only invariant (TurnsLeft > 0 once applied).
type EffectTemplate struct {
	Kind      string `yaml:"kind"`
	Stacks    uint8  `yaml:"stacks"`
	TurnsLeft uint8  `yaml:"turnsLeft"`
}

// Instance materializes the template as a state.EffectInstance.
func (t EffectTemplate) Instance() state.EffectInstance {
	return state.EffectInstance{
		Kind:      effectKindByName[t.Kind],
		Stacks:    t.Stacks,
		TurnsLeft: t.TurnsLeft,
	}
}

// GearSlot mirrors the equip slots the teacher's item templates used,
// generalized from the numeric enum to a named one.
type GearSlot uint8

const (
	SlotWeapon GearSlot = iota
	SlotArmour
)

// GearSpecial is an optional passive a piece of gear grants.
type GearSpecial struct {
	Kind string `yaml:"kind"` // "thorns", "lifesteal", "critBonus", ""
	// Value is the magnitude, depending on Kind: for thorns, Value*10 is
	// the flat damage reflected; for lifesteal, the fraction of damage
	// dealt that heals; for critBonus, the added crit chance.
	Value float64 `yaml:"value,omitempty"`
}

// GearDef is an equippable weapon or armour piece's static definition.
type GearDef struct {
	ID          string      `yaml:"id"`
	Name        string      `yaml:"name"`
	Slot        GearSlot    `yaml:"slot"`
	Rarity      Rarity      `yaml:"rarity"`
	MinDepth    int         `yaml:"minDepth"`
	DamageBonus int         `yaml:"damageBonus"`
	ArmourBonus int         `yaml:"armourBonus"`
	BuyPrice    int         `yaml:"buyPrice"`
	Special     GearSpecial `yaml:"special"`
}

// SellPrice returns what a merchant pays for this gear piece, per the
// rarity sell schedule.
func (d GearDef) SellPrice() int { return d.Rarity.sellPrice(d.BuyPrice) }

// EnemyTemplate is a spawnable enemy's static definition.
type EnemyTemplate struct {
	ID          string `yaml:"id"`
	Name        string `yaml:"name"`
	MinDepth    int    `yaml:"minDepth"`
	MaxDepth    int    `yaml:"maxDepth"`
	BaseHP      int    `yaml:"baseHP"`
	HPPerDepth  int    `yaml:"hpPerDepth"`
	BaseDamage  int    `yaml:"baseDamage"`
	BaseArmour  int    `yaml:"baseArmour"`
	IsBoss      bool   `yaml:"isBoss"`
	LootTableID string `yaml:"lootTableId"`
}

// LootEntry is one weighted line of a loot table.
type LootEntry struct {
	ItemID string  `yaml:"itemId"`
	IsGear bool    `yaml:"isGear"`
	Weight float64 `yaml:"weight"`
}

// LootTable is a named, weighted set of drop candidates plus a gold range.
type LootTable struct {
	ID        string      `yaml:"id"`
	GoldMin   int         `yaml:"goldMin"`
	GoldMax   int         `yaml:"goldMax"`
	DropCount int         `yaml:"dropCount"`
	Entries   []LootEntry `yaml:"entries"`
}

// RoomFlavour is the display text bound to a room type; the same text is
// used at every depth.
type RoomFlavour struct {
	RoomType    string `yaml:"roomType"`
	DisplayName string `yaml:"displayName"`
	Description string `yaml:"description"`
}

var effectKindByName = map[string]state.EffectKind{
	"poison":    state.EffectPoison,
	"burning":   state.EffectBurning,
	"bleed":     state.EffectBleed,
	"shielded":  state.EffectShielded,
	"weakened":  state.EffectWeakened,
	"stunned":   state.EffectStunned,
	"sharpened": state.EffectSharpened,
	"thorns":    state.EffectThorns,
}

// EffectKindByName resolves a YAML-facing effect name ("poison", "stunned",
// ...) to its state.EffectKind, for the RemoveEffect UseEffect variant.
func EffectKindByName(name string) (state.EffectKind, bool) {
	k, ok := effectKindByName[name]
	return k, ok
}

// NegativeEffectKinds lists the effect kinds a cleansing/rest action
// strips; the "good" buffs (Shielded, Sharpened, Thorns) are left alone.
func NegativeEffectKinds() []state.EffectKind {
	return []state.EffectKind{
		state.EffectPoison,
		state.EffectBurning,
		state.EffectBleed,
		state.EffectWeakened,
		state.EffectStunned,
	}
}
