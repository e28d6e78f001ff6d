package card

import (
	"testing"

	"cardcrawl/internal/state"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestPlayer(id string) *state.PlayerState {
	return &state.PlayerState{
		UserID: id, Name: id, HP: 30, MaxHP: 40,
		XP: 10, XPToNext: 50, Alive: true, Class: state.ClassWarrior,
		Level: 2,
	}
}

func TestBarWidthClampsAndScales(t *testing.T) {
	assert.Equal(t, barMaxWidth, barWidth(100, 100))
	assert.Equal(t, 0, barWidth(-5, 100))
	assert.Equal(t, barMaxWidth/2, barWidth(50, 100))
	assert.Equal(t, 5*barMaxWidth, barWidth(5, 0))
}

func TestHPColorThresholds(t *testing.T) {
	assert.Equal(t, hpColorHealthy, hpColorFor(61, 100))
	assert.Equal(t, hpColorHurt, hpColorFor(31, 100))
	assert.Equal(t, hpColorCrit, hpColorFor(30, 100))
	assert.Equal(t, hpColorCrit, hpColorFor(0, 100))
}

func TestBuildGameCardSoloUsesFullLayout(t *testing.T) {
	sess := state.NewSession("p1", state.ModeSolo)
	sess.Players["p1"] = newTestPlayer("p1")
	sess.Room.DisplayName = "The Antechamber"

	data := BuildGameCard(sess)

	require.Len(t, data.Players, 1)
	assert.True(t, data.Players[0].Full)
	assert.Equal(t, 20, data.Players[0].Y)
}

func TestBuildGameCardPartyUsesCompactYOffsets(t *testing.T) {
	sess := state.NewSession("p1", state.ModeParty)
	sess.Party = []string{"p1", "p2", "p3"}
	sess.Players["p1"] = newTestPlayer("p1")
	sess.Players["p2"] = newTestPlayer("p2")
	sess.Players["p3"] = newTestPlayer("p3")

	data := BuildGameCard(sess)

	require.Len(t, data.Players, 3)
	assert.Equal(t, []int{62, 152, 242}, []int{data.Players[0].Y, data.Players[1].Y, data.Players[2].Y})
	assert.False(t, data.Players[0].Full)
}

func TestBuildGameCardCombatCriticalOwnerSwapsPhaseColors(t *testing.T) {
	sess := state.NewSession("p1", state.ModeSolo)
	owner := newTestPlayer("p1")
	owner.HP, owner.MaxHP = 10, 100
	sess.Players["p1"] = owner
	sess.Phase = state.PhaseCombat

	data := BuildGameCard(sess)
	assert.Equal(t, "#4a1015", data.PhaseBG)
}
