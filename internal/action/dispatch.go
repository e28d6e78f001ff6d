package action

import (
	"time"

	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/combat"
	"cardcrawl/internal/config"
	"cardcrawl/internal/state"
	"cardcrawl/internal/worldmap"
)

// Deps bundles the long-lived, per-session collaborators a dispatch call
// needs beyond the session itself: the dungeon generator and its
// session-seeded RNG (§4.3) and the engine-wide tunables (§4.5 step 4's
// party timeout, among others). The combat resolver's own randomness is
// not session-seeded (§5 "no deterministic replay is required") so it is
// drawn fresh per call via newRand.
type Deps struct {
	Cfg config.Config
	Gen worldmap.Generator
	Map *worldmap.RNG
}

// Dispatch validates the (actor, phase, action) tuple and routes to the
// component handler that mutates sess, per the full §4.5 pipeline. On a
// validation error sess is left completely unchanged (§7 atomicity
// guarantee).
func Dispatch(sess *state.Session, deps Deps, act Action, actorID string, now time.Time) ([]string, error) {
	if err := validateActor(sess, actorID); err != nil {
		return nil, err
	}
	if sess.Phase.IsGameOver() {
		return nil, errGameOver
	}
	if err := checkPhase(act.Kind, sess.Phase); err != nil {
		return nil, err
	}

	applyPartyTimeout(sess, deps.Cfg, now)

	lines, err := route(sess, deps, act, actorID)
	if err != nil {
		return nil, err
	}

	if act.Kind == ToggleItems || act.Kind == ViewMap {
		return lines, nil
	}

	sess.Turn++
	sess.LastActionAt = now
	for _, l := range lines {
		sess.PushLog(l)
	}
	return lines, nil
}

func validateActor(sess *state.Session, actorID string) error {
	member := false
	for _, uid := range sess.Party {
		if uid == actorID {
			member = true
			break
		}
	}
	if !member {
		return actionerr.Validation("You are not part of this run.")
	}
	p, ok := sess.Players[actorID]
	if !ok || !p.Alive {
		return actionerr.Validation("You have fallen and cannot act.")
	}
	return nil
}

// applyPartyTimeout auto-defaults stragglers to Defend once the party
// timeout elapses while WaitingForActions, so a stalled room can still
// resolve (§4.4 "Party timeout", §4.5 step 4).
func applyPartyTimeout(sess *state.Session, cfg config.Config, now time.Time) {
	if sess.Phase != state.PhaseWaitingForActions {
		return
	}
	if now.Sub(sess.LastActionAt) <= cfg.PartyActionTimeout {
		return
	}
	for _, p := range sess.LivingPlayers() {
		if _, submitted := sess.PendingActions[p.UserID]; !submitted {
			sess.SubmitPendingActionFull(state.PendingAction{UserID: p.UserID, Action: Defend.String()})
		}
	}
}

func route(sess *state.Session, deps Deps, act Action, actorID string) ([]string, error) {
	switch act.Kind {
	case Attack, AttackTarget, Defend, HealAlly, Flee:
		return dispatchCombatAction(sess, deps, act, actorID)
	case Equip:
		return handleEquip(sess, act, actorID)
	case UseItem:
		return handleUseItem(sess, deps, act, actorID)
	case ToggleItems:
		return handleToggleItems(sess, actorID)
	case ViewMap:
		return handleViewMap(sess)
	case Explore:
		return handleExplore(sess)
	case Move:
		return handleMove(sess, deps, act)
	case RoomChoice:
		return handleRoomChoice(sess, act, actorID)
	case StoryChoice:
		return handleStoryChoice(sess, deps, act, actorID)
	case Buy:
		return handleBuy(sess, act, actorID)
	case Sell:
		return handleSell(sess, act, actorID)
	case Rest:
		return handleRest(sess, actorID)
	case Revive:
		return handleRevive(sess, act, actorID)
	default:
		return nil, actionerr.Validation("Unrecognized action.")
	}
}

// dispatchCombatAction implements §4.4's Solo/Party turn orchestration
// split: Solo resolves the single submitted turn immediately; Party
// queues it and only resolves once every living member has submitted
// (or the timeout defaulted them to Defend).
func dispatchCombatAction(sess *state.Session, deps Deps, act Action, actorID string) ([]string, error) {
	turn, err := buildTurn(sess, act, actorID)
	if err != nil {
		return nil, err
	}

	if sess.Mode == state.ModeSolo {
		lines := combat.ResolveTurns(sess, []combat.PlayerTurn{turn}, newRand())
		lines = append(lines, settleAfterCombatRound(sess, deps)...)
		return lines, nil
	}

	sess.SubmitPendingActionFull(state.PendingAction{
		UserID:   actorID,
		Action:   act.Kind.String(),
		Target:   act.TargetIdx,
		TargetID: act.UserID,
	})
	sess.Phase = state.PhaseWaitingForActions

	if !sess.AllLivingSubmitted() {
		return []string{"Waiting for other players..."}, nil
	}

	turns := make([]combat.PlayerTurn, 0, len(sess.PendingActions))
	for _, pa := range sess.OrderedPendingActions() {
		t, err := buildTurnFromPending(sess, pa)
		if err != nil {
			continue
		}
		turns = append(turns, t)
	}
	sess.ClearPendingActions()

	lines := combat.ResolveTurns(sess, turns, newRand())
	lines = append(lines, settleAfterCombatRound(sess, deps)...)
	return lines, nil
}

func buildTurn(sess *state.Session, act Action, actorID string) (combat.PlayerTurn, error) {
	switch act.Kind {
	case Attack:
		return combat.PlayerTurn{ActorID: actorID, Kind: combat.TurnAttack}, nil
	case AttackTarget:
		return combat.PlayerTurn{ActorID: actorID, Kind: combat.TurnAttack, TargetIdx: act.TargetIdx}, nil
	case Defend:
		return combat.PlayerTurn{ActorID: actorID, Kind: combat.TurnDefend}, nil
	case Flee:
		return combat.PlayerTurn{ActorID: actorID, Kind: combat.TurnFlee}, nil
	case HealAlly:
		if err := validateHealAlly(sess, actorID); err != nil {
			return combat.PlayerTurn{}, err
		}
		return combat.PlayerTurn{ActorID: actorID, Kind: combat.TurnHealAlly, TargetUserID: act.UserID}, nil
	default:
		return combat.PlayerTurn{}, actionerr.Validation("Unrecognized combat action.")
	}
}

func buildTurnFromPending(sess *state.Session, pa state.PendingAction) (combat.PlayerTurn, error) {
	switch pa.Action {
	case "Attack":
		return combat.PlayerTurn{ActorID: pa.UserID, Kind: combat.TurnAttack}, nil
	case "AttackTarget":
		return combat.PlayerTurn{ActorID: pa.UserID, Kind: combat.TurnAttack, TargetIdx: pa.Target}, nil
	case "Defend":
		return combat.PlayerTurn{ActorID: pa.UserID, Kind: combat.TurnDefend}, nil
	case "Flee":
		return combat.PlayerTurn{ActorID: pa.UserID, Kind: combat.TurnFlee}, nil
	case "HealAlly":
		return combat.PlayerTurn{ActorID: pa.UserID, Kind: combat.TurnHealAlly, TargetUserID: pa.TargetID}, nil
	default:
		return combat.PlayerTurn{}, actionerr.Validation("unrecognized pending action")
	}
}

func validateHealAlly(sess *state.Session, actorID string) error {
	actor, ok := sess.Players[actorID]
	if !ok {
		return actionerr.Validation("unknown actor")
	}
	if actor.Class != state.ClassCleric {
		return actionerr.Validation("Only a Cleric can channel healing.")
	}
	if actor.HealsUsedThisCombat >= 1 {
		return actionerr.Validation("You have already used your healing this fight.")
	}
	return nil
}

// settleAfterCombatRound closes out the room once every enemy is dead:
// boss clears already set Exploring inside combat.HandleEnemyDeaths, so
// only a non-boss clear needs the pending-travel resumption wired in
// (§4.3 "Pending travel", §4.4 "Enemy death handling").
func settleAfterCombatRound(sess *state.Session, deps Deps) []string {
	if sess.Phase.IsGameOver() {
		return nil
	}
	if !sess.AllEnemiesDead() {
		return nil
	}
	if sess.Room.RoomType == state.RoomBoss {
		return nil
	}
	lines := worldmap.CompletePendingTravel(sess, deps.Gen, deps.Map)
	if sess.Phase == state.PhaseCombat {
		combat.StartCombat(sess)
	}
	return lines
}
