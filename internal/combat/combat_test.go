package combat

import (
	"math/rand"
	"testing"

	"cardcrawl/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newPlayer(id string, class state.Class) *state.PlayerState {
	return &state.PlayerState{
		UserID: id,
		Name:   id,
		HP:     30,
		MaxHP:  30,
		Class:  class,
		Alive:  true,
	}
}

func newSoloSession(actor *state.PlayerState, enemy state.EnemyState) *state.Session {
	sess := state.NewSession(actor.UserID, state.ModeSolo)
	sess.Players[actor.UserID] = actor
	sess.Enemies = []state.EnemyState{enemy}
	sess.Phase = state.PhaseCombat
	return sess
}

func TestCappedAccuracyFloorsAtZeroPointOneUnderHeavyFog(t *testing.T) {
	p := newPlayer("p1", state.ClassWarrior)
	room := &state.RoomState{Modifiers: []state.RoomModifier{
		{Kind: state.ModifierFog, AccuracyPenalty: 5},
	}}
	assert.Equal(t, 0.1, cappedAccuracy(p, room))
}

func TestCappedAccuracyNoFogIsPerfect(t *testing.T) {
	p := newPlayer("p1", state.ClassWarrior)
	assert.Equal(t, 1.0, cappedAccuracy(p, &state.RoomState{}))
}

func TestRogueFirstAttackIsGuaranteedCrit(t *testing.T) {
	actor := newPlayer("rogue1", state.ClassRogue)
	actor.FirstAttackInCombat = true
	enemy := state.EnemyState{Name: "Goblin", HP: 40, MaxHP: 40, Index: 0}
	sess := newSoloSession(actor, enemy)

	// Seed chosen arbitrarily; the guaranteed-crit branch never consults
	// rng.Float64() for the crit roll itself, only for the hit check.
	rng := rand.New(rand.NewSource(1))
	lines, err := ResolvePlayerAttack(sess, "rogue1", 0, rng)
	require.NoError(t, err)

	assert.Contains(t, lines, "Critical hit!")
	assert.False(t, actor.FirstAttackInCombat, "guaranteed-crit flag is consumed after the first attack")
}

func TestRogueSecondAttackIsNotGuaranteed(t *testing.T) {
	actor := newPlayer("rogue1", state.ClassRogue)
	actor.FirstAttackInCombat = false
	actor.CritChance = 0
	enemy := state.EnemyState{Name: "Goblin", HP: 40, MaxHP: 40, Index: 0}
	sess := newSoloSession(actor, enemy)

	rng := rand.New(rand.NewSource(1))
	lines, err := ResolvePlayerAttack(sess, "rogue1", 0, rng)
	require.NoError(t, err)
	assert.NotContains(t, lines, "Critical hit!")
}

func TestSoloAttackKillsWeakEnemy(t *testing.T) {
	actor := newPlayer("p1", state.ClassWarrior)
	enemy := state.EnemyState{Name: "Rat", HP: 1, MaxHP: 1, Index: 0}
	sess := newSoloSession(actor, enemy)

	rng := rand.New(rand.NewSource(7))
	_, err := ResolvePlayerAttack(sess, "p1", 0, rng)
	require.NoError(t, err)

	assert.True(t, sess.Enemies[0].Dead())
}

func TestResolvePlayerAttackUnknownActorIsValidationError(t *testing.T) {
	sess := state.NewSession("owner", state.ModeSolo)
	sess.Enemies = []state.EnemyState{{Index: 0, HP: 10, MaxHP: 10}}
	rng := rand.New(rand.NewSource(1))

	_, err := ResolvePlayerAttack(sess, "ghost", 0, rng)
	assert.Error(t, err)
}

func TestDoubleHalvingAppliesShieldedThenDefendingSequentially(t *testing.T) {
	target := newPlayer("p1", state.ClassWarrior)
	target.Effects = []state.EffectInstance{{Kind: state.EffectShielded, Stacks: 1, TurnsLeft: 1}}
	target.Defending = true
	target.Armour = 0

	dealt := resolveEnemyDamageAgainst(20, false, 1.0, target)
	// 20 -> /2 (shielded) -> 10 -> /2 (defending) -> 5, not 20/4 via a
	// single combined multiplier that happens to agree here but would
	// diverge on an odd intermediate value.
	assert.Equal(t, 5, dealt)
}

func TestDoubleHalvingTruncatesEachStepIndependently(t *testing.T) {
	target := newPlayer("p1", state.ClassWarrior)
	target.Effects = []state.EffectInstance{{Kind: state.EffectShielded, Stacks: 1, TurnsLeft: 1}}
	target.Defending = true

	dealt := resolveEnemyDamageAgainst(11, false, 1.0, target)
	assert.Equal(t, 2, dealt, "11/2=5 truncated, then 5/2=2 truncated")
}

func TestPickEnemyTargetSoloAlwaysTargetsActor(t *testing.T) {
	sess := state.NewSession("p1", state.ModeSolo)
	rng := rand.New(rand.NewSource(1))
	assert.Equal(t, "p1", PickEnemyTarget(sess, "p1", rng))
}

func TestResolveTargetFallsBackWhenIndexRemoved(t *testing.T) {
	sess := state.NewSession("p1", state.ModeSolo)
	sess.Enemies = []state.EnemyState{
		{Index: 0, HP: 0, MaxHP: 10},
		{Index: 1, HP: 10, MaxHP: 10},
	}
	target := ResolveTarget(sess, 0)
	require.NotNil(t, target)
	assert.Equal(t, uint8(1), target.Index, "falls back to the first living enemy when the requested index is dead")
}

func TestClampMinArmourReducedNeverGoesBelowOne(t *testing.T) {
	assert.Equal(t, 1, clampMinArmourReduced(5, 20))
	assert.Equal(t, 3, clampMinArmourReduced(5, 2))
}
