package state

// EffectKind identifies a timed status effect (§3, §4.2).
type EffectKind uint8

const (
	EffectPoison EffectKind = iota
	EffectBurning
	EffectBleed
	EffectShielded
	EffectWeakened
	EffectStunned
	EffectSharpened
	EffectThorns
)

func (k EffectKind) String() string {
	switch k {
	case EffectPoison:
		return "Poison"
	case EffectBurning:
		return "Burning"
	case EffectBleed:
		return "Bleed"
	case EffectShielded:
		return "Shielded"
	case EffectWeakened:
		return "Weakened"
	case EffectStunned:
		return "Stunned"
	case EffectSharpened:
		return "Sharpened"
	case EffectThorns:
		return "Thorns"
	default:
		return "Unknown"
	}
}

// EffectInstance is a timed status applied to a player or enemy.
//
// Invariant: TurnsLeft > 0 while the instance lives in a collection; an
// instance whose TurnsLeft reaches 0 after a tick is dropped by effect.Tick.
type EffectInstance struct {
	Kind      EffectKind
	Stacks    uint8
	TurnsLeft uint8
}
