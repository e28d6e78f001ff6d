package action

import (
	"fmt"

	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/catalogue"
	"cardcrawl/internal/combat"
	"cardcrawl/internal/effect"
	"cardcrawl/internal/state"
)

// handleEquip swaps a weapon or armour piece into the matching slot.
// Equipping does not consume the inventory stack: gear can be swapped
// freely between fights (an Open Question the spec leaves to the
// implementation).
func handleEquip(sess *state.Session, act Action, actorID string) ([]string, error) {
	actor := sess.Players[actorID]
	if findStack(actor, act.ItemID) < 0 {
		return nil, actionerr.Validation("You don't have that.")
	}
	gear, ok := catalogue.FindGear(act.ItemID)
	if !ok {
		return nil, actionerr.Validation("You don't have that.")
	}
	switch gear.Slot {
	case catalogue.SlotWeapon:
		actor.EquippedWeapon = gear.ID
	case catalogue.SlotArmour:
		actor.EquippedArmour = gear.ID
	}
	return []string{fmt.Sprintf("%s equips the %s.", actor.Name, gear.Name)}, nil
}

// handleToggleItems flips the inventory-panel card toggle. It does not
// consume a turn (§4.5 "ToggleItems and ViewMap return early").
func handleToggleItems(sess *state.Session, actorID string) ([]string, error) {
	sess.ShowItems = !sess.ShowItems
	if sess.ShowItems {
		return []string{"Inventory panel shown on the card."}, nil
	}
	return []string{"Inventory panel hidden."}, nil
}

// handleViewMap acknowledges a map request; the rendered image itself is
// produced by the HTTP surface from the same session snapshot. It does
// not consume a turn.
func handleViewMap(sess *state.Session) ([]string, error) {
	return []string{"Displaying the map."}, nil
}

// handleExplore describes the current room without moving the party; it
// is only legal outside Combat/WaitingForActions (§4.5 guard table).
func handleExplore(sess *state.Session) ([]string, error) {
	if sess.Room.Description == "" {
		return []string{"There is nothing more to see here."}, nil
	}
	return []string{sess.Room.Description}, nil
}

// handleUseItem consumes one unit of act.ItemID and applies its
// UseEffect (§4.1's full variant set). In Combat/WaitingForActions this
// is a turn-consuming action like Attack/Defend; everywhere else it
// applies immediately with no enemy reply.
func handleUseItem(sess *state.Session, deps Deps, act Action, actorID string) ([]string, error) {
	actor := sess.Players[actorID]
	if findStack(actor, act.ItemID) < 0 {
		return nil, actionerr.Validation("You don't have that.")
	}
	def, ok := catalogue.FindItem(act.ItemID)
	if !ok {
		return nil, actionerr.Validation("You don't have that.")
	}
	if def.Use.RevivePct > 0 {
		return nil, actionerr.Validation("That can only be used to revive a fallen ally.")
	}

	lines, err := applyUseEffect(sess, deps, actor, def, act)
	if err != nil {
		return nil, err
	}
	removeOne(actor, act.ItemID)

	inCombat := sess.Phase == state.PhaseCombat || sess.Phase == state.PhaseWaitingForActions
	if !inCombat {
		return lines, nil
	}

	if sess.Mode == state.ModeSolo {
		lines = combat.ResolveTurns(sess, []combat.PlayerTurn{{ActorID: actorID, Kind: combat.TurnNoop, Lines: lines}}, newRand())
		lines = append(lines, settleAfterCombatRound(sess, deps)...)
		return lines, nil
	}

	sess.SubmitPendingActionFull(state.PendingAction{UserID: actorID, Action: "UseItem", ItemID: act.ItemID})
	sess.Phase = state.PhaseWaitingForActions
	if !sess.AllLivingSubmitted() {
		return append(lines, "Waiting for other players..."), nil
	}
	// Every member has now submitted; the queued UseItem turns must be
	// re-applied in order since their effects are stored as pre-computed
	// Lines, not replayed from ItemID (only one player's item applies
	// here — the rest already hold their own turn kinds).
	turns := make([]combat.PlayerTurn, 0, len(sess.PendingActions))
	for _, pa := range sess.OrderedPendingActions() {
		if pa.Action == "UseItem" && pa.UserID == actorID {
			turns = append(turns, combat.PlayerTurn{ActorID: actorID, Kind: combat.TurnNoop, Lines: lines})
			continue
		}
		t, err := buildTurnFromPending(sess, pa)
		if err != nil {
			continue
		}
		turns = append(turns, t)
	}
	sess.ClearPendingActions()
	resolved := combat.ResolveTurns(sess, turns, newRand())
	resolved = append(resolved, settleAfterCombatRound(sess, deps)...)
	return resolved, nil
}

func applyUseEffect(sess *state.Session, deps Deps, actor *state.PlayerState, def catalogue.ItemDef, act Action) ([]string, error) {
	use := def.Use
	switch {
	case use.FullHeal:
		actor.HP = actor.MaxHP
		return []string{fmt.Sprintf("%s is fully restored.", actor.Name)}, nil

	case use.Heal > 0:
		healed := actor.HealUp(use.Heal + sess.Room.HealBonus())
		return []string{fmt.Sprintf("%s recovers %d HP.", actor.Name, healed)}, nil

	case use.DamageEnemy > 0:
		if !act.HasTarget {
			return nil, actionerr.Validation("Choose a target first.")
		}
		target := combat.ResolveTarget(sess, act.TargetIdx)
		if target == nil {
			return nil, actionerr.Validation("There's nothing to hit.")
		}
		target.ApplyDamage(use.DamageEnemy)
		return []string{fmt.Sprintf("%s hurls the %s at %s for %d damage.", actor.Name, def.Name, target.Name, use.DamageEnemy)}, nil

	case use.ApplyEffect != nil:
		actor.Effects = effect.Apply(actor.Effects, use.ApplyEffect.Instance())
		return []string{fmt.Sprintf("%s is %s.", actor.Name, use.ApplyEffect.Kind)}, nil

	case use.RemoveEffect != "":
		kind, ok := catalogue.EffectKindByName(use.RemoveEffect)
		if ok {
			actor.Effects = effect.Remove(actor.Effects, kind)
		}
		return []string{fmt.Sprintf("%s shakes off the affliction.", actor.Name)}, nil

	case use.RemoveAllNegativeEffects:
		for _, kind := range catalogue.NegativeEffectKinds() {
			actor.Effects = effect.Remove(actor.Effects, kind)
		}
		return []string{fmt.Sprintf("%s is cleansed of every affliction.", actor.Name)}, nil

	case use.GuaranteedFlee:
		if sess.Phase != state.PhaseCombat && sess.Phase != state.PhaseWaitingForActions {
			return nil, actionerr.Validation("There's nothing to flee from.")
		}
		return combat.ForceFlee(sess, actor.UserID), nil

	default:
		return []string{fmt.Sprintf("%s uses the %s.", actor.Name, def.Name)}, nil
	}
}
