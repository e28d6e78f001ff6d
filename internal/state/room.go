package state

// RoomType identifies the kind of room/tile the party currently occupies.
type RoomType uint8

const (
	RoomCombat RoomType = iota
	RoomBoss
	RoomTreasure
	RoomTrap
	RoomRestShrine
	RoomMerchant
	RoomUndergroundCity
	RoomStory
	RoomHallway
)

func (t RoomType) String() string {
	switch t {
	case RoomCombat:
		return "Combat"
	case RoomBoss:
		return "Boss"
	case RoomTreasure:
		return "Treasure"
	case RoomTrap:
		return "Trap"
	case RoomRestShrine:
		return "RestShrine"
	case RoomMerchant:
		return "Merchant"
	case RoomUndergroundCity:
		return "UndergroundCity"
	case RoomStory:
		return "Story"
	case RoomHallway:
		return "Hallway"
	default:
		return "Unknown"
	}
}

// Safe reports whether arriving at an unvisited tile of this type should
// skip the travel-encounter roll (§4.3 Travel).
func (t RoomType) Safe() bool {
	return t == RoomUndergroundCity || t == RoomRestShrine
}

// ModifierKind identifies a room-wide combat modifier.
type ModifierKind uint8

const (
	ModifierFog ModifierKind = iota
	ModifierBlessing
	ModifierCursed
)

// RoomModifier is one active room-wide modifier.
type RoomModifier struct {
	Kind ModifierKind

	// AccuracyPenalty applies to Fog: subtracted from effective accuracy.
	AccuracyPenalty float64

	// HealBonus applies to Blessing: added to heal amounts.
	HealBonus int

	// DamageMultiplier applies to Cursed: multiplies enemy damage intents.
	DamageMultiplier float64
}

// HazardKind identifies a one-time-on-arrival room hazard.
type HazardKind uint8

const (
	HazardSpikes HazardKind = iota
	HazardGas
)

// RoomHazard is applied to every alive player on arrival (§4.3 Arrival).
type RoomHazard struct {
	Kind HazardKind

	// Damage applies to Spikes.
	Damage int

	// EffectKind/Stacks/Turns apply to Gas: the effect appended to each
	// alive player.
	EffectKind EffectKind
	Stacks     uint8
	Turns      uint8
}

// MerchantEntry is one line of merchant/underground-city stock.
type MerchantEntry struct {
	ItemID string
	Price  int
	IsGear bool
}

// StoryChoice is one option a player may pick in a Story room.
type StoryChoice struct {
	Text string
}

// StoryEvent is the prompt and choice list for an Event-phase room.
type StoryEvent struct {
	Prompt  string
	Choices []StoryChoice
}

// RoomState is the current room/tile's gameplay content (§3).
type RoomState struct {
	Depth       int
	RoomType    RoomType
	DisplayName string
	Description string

	Modifiers []RoomModifier
	Hazards   []RoomHazard

	MerchantStock []MerchantEntry

	StoryEvent *StoryEvent
}

// FogPenalty sums every Fog modifier's accuracy penalty.
func (r *RoomState) FogPenalty() float64 {
	total := 0.0
	for _, m := range r.Modifiers {
		if m.Kind == ModifierFog {
			total += m.AccuracyPenalty
		}
	}
	return total
}

// HealBonus sums every Blessing modifier's heal bonus.
func (r *RoomState) HealBonus() int {
	total := 0
	for _, m := range r.Modifiers {
		if m.Kind == ModifierBlessing {
			total += m.HealBonus
		}
	}
	return total
}

// CursedMultiplier multiplies every Cursed modifier's damage multiplier
// together, defaulting to 1 when there are none (§4.4 step 2).
func (r *RoomState) CursedMultiplier() float64 {
	mult := 1.0
	for _, m := range r.Modifiers {
		if m.Kind == ModifierCursed {
			mult *= m.DamageMultiplier
		}
	}
	return mult
}
