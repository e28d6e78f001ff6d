package effect

import (
	"testing"

	"cardcrawl/internal/state"

	"github.com/stretchr/testify/assert"
)

func TestTickDamageLaw(t *testing.T) {
	cases := []struct {
		name string
		kind state.EffectKind
		want int
	}{
		{"poison 2 per stack", state.EffectPoison, 6},
		{"burning 3 per stack", state.EffectBurning, 9},
		{"bleed 1 per stack", state.EffectBleed, 3},
		{"shielded deals no damage", state.EffectShielded, 0},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			effects := []state.EffectInstance{{Kind: tc.kind, Stacks: 3, TurnsLeft: 2}}
			_, results := Tick(effects)
			if tc.want == 0 {
				assert.Empty(t, results)
				return
			}
			assert.Len(t, results, 1)
			assert.Equal(t, tc.want, results[0].Damage)
		})
	}
}

func TestTickDecrementsAndExpires(t *testing.T) {
	effects := []state.EffectInstance{
		{Kind: state.EffectPoison, Stacks: 1, TurnsLeft: 1},
		{Kind: state.EffectSharpened, Stacks: 1, TurnsLeft: 2},
	}
	kept, ticks := Tick(effects)

	assert.Len(t, ticks, 1, "poison still ticked on its last turn")
	assert.Equal(t, 2, ticks[0].Damage)

	assert.Len(t, kept, 1, "expired poison instance is dropped")
	assert.Equal(t, state.EffectSharpened, kept[0].Kind)
	assert.Equal(t, uint8(1), kept[0].TurnsLeft)
}

func TestApplyStacksSameKindAndKeepsLongerDuration(t *testing.T) {
	effects := []state.EffectInstance{{Kind: state.EffectPoison, Stacks: 2, TurnsLeft: 1}}
	effects = Apply(effects, state.EffectInstance{Kind: state.EffectPoison, Stacks: 1, TurnsLeft: 3})

	assert.Len(t, effects, 1)
	assert.Equal(t, uint8(3), effects[0].Stacks)
	assert.Equal(t, uint8(3), effects[0].TurnsLeft)
}

func TestApplyAppendsNewKind(t *testing.T) {
	effects := []state.EffectInstance{{Kind: state.EffectPoison, Stacks: 1, TurnsLeft: 2}}
	effects = Apply(effects, state.EffectInstance{Kind: state.EffectShielded, Stacks: 1, TurnsLeft: 1})

	assert.Len(t, effects, 2)
	assert.True(t, Has(effects, state.EffectShielded))
}

func TestHasAndRemove(t *testing.T) {
	effects := []state.EffectInstance{
		{Kind: state.EffectWeakened, Stacks: 1, TurnsLeft: 2},
		{Kind: state.EffectThorns, Stacks: 1, TurnsLeft: 2},
	}
	assert.True(t, Has(effects, state.EffectWeakened))

	effects = Remove(effects, state.EffectWeakened)
	assert.False(t, Has(effects, state.EffectWeakened))
	assert.True(t, Has(effects, state.EffectThorns))
}

func TestSharpenedBonusIsThreePerStack(t *testing.T) {
	effects := []state.EffectInstance{{Kind: state.EffectSharpened, Stacks: 2, TurnsLeft: 1}}
	assert.Equal(t, 6, SharpenedBonus(effects))
}

func TestSharpenedBonusAbsentIsZero(t *testing.T) {
	assert.Equal(t, 0, SharpenedBonus(nil))
}

func TestShieldedHalves(t *testing.T) {
	assert.False(t, ShieldedHalves(nil))
	effects := []state.EffectInstance{{Kind: state.EffectShielded, Stacks: 1, TurnsLeft: 1}}
	assert.True(t, ShieldedHalves(effects))
}
