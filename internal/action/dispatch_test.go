package action

import (
	"testing"
	"time"

	"cardcrawl/internal/config"
	"cardcrawl/internal/state"
	"cardcrawl/internal/worldmap"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testDeps() Deps {
	return Deps{
		Cfg: config.Default(),
		Gen: worldmap.CatalogueGenerator{},
		Map: worldmap.NewRNG(uuid.MustParse("00000000-0000-0000-0000-000000000003"), "dispatch-test"),
	}
}

func soloSessionInExploring(ownerID string) *state.Session {
	sess := state.NewSession(ownerID, state.ModeSolo)
	worldmap.GenerateInitialMap(sess.Map)
	sess.Players[ownerID] = &state.PlayerState{UserID: ownerID, Name: ownerID, HP: 30, MaxHP: 30, Alive: true, Class: state.ClassWarrior}
	return sess
}

func TestAttackRejectedOutsideCombat(t *testing.T) {
	sess := soloSessionInExploring("p1")
	before := *sess

	_, err := Dispatch(sess, testDeps(), Action{Kind: Attack}, "p1", time.Now())

	require.Error(t, err)
	assert.Equal(t, "You can only fight during combat.", err.Error())
	assert.Equal(t, before.Phase, sess.Phase)
	assert.Equal(t, before.Turn, sess.Turn)
}

func TestSoloAttackKillsWeakEnemyAdvancesToExploring(t *testing.T) {
	sess := soloSessionInExploring("p1")
	sess.Phase = state.PhaseCombat
	sess.Room = state.RoomState{RoomType: state.RoomCombat}
	sess.Enemies = []state.EnemyState{{Name: "Rat", HP: 1, MaxHP: 1, Index: 0}}

	lines, err := Dispatch(sess, testDeps(), Action{Kind: Attack}, "p1", time.Now())

	require.NoError(t, err)
	assert.NotEmpty(t, lines)
	assert.Equal(t, state.PhaseExploring, sess.Phase)
	assert.Equal(t, 1, sess.Turn)
}

func TestPartyCombatRequiresBothSubmissionsBeforeResolving(t *testing.T) {
	sess := state.NewSession("p1", state.ModeParty)
	worldmap.GenerateInitialMap(sess.Map)
	sess.Party = []string{"p1", "p2"}
	sess.Players["p1"] = &state.PlayerState{UserID: "p1", Name: "p1", HP: 30, MaxHP: 30, Alive: true}
	sess.Players["p2"] = &state.PlayerState{UserID: "p2", Name: "p2", HP: 30, MaxHP: 30, Alive: true}
	sess.Phase = state.PhaseCombat
	sess.Room = state.RoomState{RoomType: state.RoomCombat}
	sess.Enemies = []state.EnemyState{{Name: "Ogre", HP: 50, MaxHP: 50, Index: 0}}

	lines, err := Dispatch(sess, testDeps(), Action{Kind: Defend}, "p1", time.Now())
	require.NoError(t, err)
	assert.Equal(t, state.PhaseWaitingForActions, sess.Phase)
	assert.Contains(t, lines, "Waiting for other players...")
	assert.Equal(t, 0, len(sess.Enemies[0].Effects), "no enemy turn has resolved yet")

	lines, err = Dispatch(sess, testDeps(), Action{Kind: Defend}, "p2", time.Now())
	require.NoError(t, err)
	assert.NotContains(t, lines, "Waiting for other players...")
	assert.Empty(t, sess.PendingActions, "pending actions are cleared once the round resolves")
}

func TestMoveWithoutExitFailsWithoutMutation(t *testing.T) {
	sess := soloSessionInExploring("p1")
	sess.Map.TileAt(state.Position{}).Exits[state.DirNorth] = false

	_, err := Dispatch(sess, testDeps(), Action{Kind: Move, Direction: state.DirNorth}, "p1", time.Now())

	require.Error(t, err)
	assert.Equal(t, "There is no exit to the North.", err.Error())
	assert.Equal(t, state.Position{}, sess.Pos)
	assert.Equal(t, 0, sess.Turn)
}

func TestDispatchRejectsActorNotInParty(t *testing.T) {
	sess := soloSessionInExploring("p1")
	_, err := Dispatch(sess, testDeps(), Action{Kind: Move, Direction: state.DirEast}, "intruder", time.Now())
	require.Error(t, err)
	assert.Equal(t, "You are not part of this run.", err.Error())
}

func TestDispatchRejectsFallenActor(t *testing.T) {
	sess := soloSessionInExploring("p1")
	sess.Players["p1"].Alive = false

	_, err := Dispatch(sess, testDeps(), Action{Kind: Move, Direction: state.DirEast}, "p1", time.Now())
	require.Error(t, err)
	assert.Equal(t, "You have fallen and cannot act.", err.Error())
}

func TestDispatchRejectsAnyActionOnceGameOver(t *testing.T) {
	sess := soloSessionInExploring("p1")
	sess.Phase = state.PhaseGameOverDefeated

	_, err := Dispatch(sess, testDeps(), Action{Kind: ViewMap}, "p1", time.Now())
	require.Error(t, err)
	assert.Equal(t, "This run has ended.", err.Error())
}

func TestPartyTimeoutAutoDefendsStragglers(t *testing.T) {
	sess := state.NewSession("p1", state.ModeParty)
	worldmap.GenerateInitialMap(sess.Map)
	sess.Party = []string{"p1", "p2"}
	sess.Players["p1"] = &state.PlayerState{UserID: "p1", Name: "p1", HP: 30, MaxHP: 30, Alive: true}
	sess.Players["p2"] = &state.PlayerState{UserID: "p2", Name: "p2", HP: 30, MaxHP: 30, Alive: true}
	sess.Phase = state.PhaseWaitingForActions
	sess.Room = state.RoomState{RoomType: state.RoomCombat}
	sess.Enemies = []state.EnemyState{{Name: "Ogre", HP: 50, MaxHP: 50, Index: 0}}
	sess.LastActionAt = time.Now().Add(-time.Hour)

	deps := testDeps()
	deps.Cfg.PartyActionTimeout = time.Second

	_, err := Dispatch(sess, deps, Action{Kind: Attack}, "p1", time.Now())
	require.NoError(t, err)
	assert.Empty(t, sess.PendingActions, "p2 was auto-defaulted to Defend and the round already resolved")
}
