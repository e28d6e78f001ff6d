package action

import (
	"fmt"

	"cardcrawl/internal/actionerr"
	"cardcrawl/internal/catalogue"
	"cardcrawl/internal/state"
)

// findMerchantEntry looks up a stocked item/gear id in the room's current
// merchant listing.
func findMerchantEntry(sess *state.Session, itemID string) (state.MerchantEntry, bool) {
	for _, e := range sess.Room.MerchantStock {
		if e.ItemID == itemID {
			return e, true
		}
	}
	return state.MerchantEntry{}, false
}

// handleBuy spends gold on a stocked merchant/city entry (§4.1 Buy).
func handleBuy(sess *state.Session, act Action, actorID string) ([]string, error) {
	actor := sess.Players[actorID]
	entry, ok := findMerchantEntry(sess, act.ItemID)
	if !ok {
		return nil, actionerr.Validation("That isn't for sale here.")
	}
	if actor.Gold < entry.Price {
		return nil, actionerr.Validation("You can't afford that.")
	}

	name := act.ItemID
	if entry.IsGear {
		gear, ok := catalogue.FindGear(act.ItemID)
		if !ok {
			return nil, actionerr.Validation("That isn't for sale here.")
		}
		name = gear.Name
	} else {
		item, ok := catalogue.FindItem(act.ItemID)
		if !ok {
			return nil, actionerr.Validation("That isn't for sale here.")
		}
		name = item.Name
	}

	actor.Gold -= entry.Price
	addStack(actor, act.ItemID, 1)
	return []string{fmt.Sprintf("%s buys %s for %d gold.", actor.Name, name, entry.Price)}, nil
}

// handleSell converts one unit of a carried item or an equipped/carried
// gear piece back into gold at its rarity-scaled sell price (§8 "Sell
// round-trip law").
func handleSell(sess *state.Session, act Action, actorID string) ([]string, error) {
	actor := sess.Players[actorID]

	if item, ok := catalogue.FindItem(act.ItemID); ok {
		if findStack(actor, act.ItemID) < 0 {
			return nil, actionerr.Validation("You don't have that.")
		}
		price := catalogue.SellPriceForItem(item.ID)
		removeOne(actor, act.ItemID)
		actor.Gold += price
		return []string{fmt.Sprintf("%s sells the %s for %d gold.", actor.Name, item.Name, price)}, nil
	}

	if gear, ok := catalogue.FindGear(act.ItemID); ok {
		if findStack(actor, act.ItemID) < 0 {
			return nil, actionerr.Validation("You don't have that.")
		}
		price := catalogue.SellPriceForGear(gear.ID)
		removeOne(actor, act.ItemID)
		if actor.EquippedWeapon == gear.ID {
			actor.EquippedWeapon = ""
		}
		if actor.EquippedArmour == gear.ID {
			actor.EquippedArmour = ""
		}
		actor.Gold += price
		return []string{fmt.Sprintf("%s sells the %s for %d gold.", actor.Name, gear.Name, price)}, nil
	}

	return nil, actionerr.Validation("You don't have that.")
}

const restCost = 20

// handleRest pays restCost gold for a full heal at the underground city
// (§4.1 Rest). The spec leaves the exact price to the implementation.
func handleRest(sess *state.Session, actorID string) ([]string, error) {
	actor := sess.Players[actorID]
	if actor.Gold < restCost {
		return nil, actionerr.Validation("You can't afford to rest.")
	}
	actor.Gold -= restCost
	actor.HP = actor.MaxHP
	actor.Effects = nil
	return []string{fmt.Sprintf("%s rests and recovers fully.", actor.Name)}, nil
}

// handleRevive consumes a RevivePct item to bring a fallen ally back with
// a fraction of their max HP (§4.1 Revive). Only legal in the city, and
// only against a dead party member.
func handleRevive(sess *state.Session, act Action, actorID string) ([]string, error) {
	actor := sess.Players[actorID]
	target, ok := sess.Players[act.UserID]
	if !ok {
		return nil, actionerr.Validation("There's no one by that name in this run.")
	}
	if target.Alive {
		return nil, actionerr.Validation("That ally is still standing.")
	}
	if findStack(actor, act.ItemID) < 0 {
		return nil, actionerr.Validation("You don't have that.")
	}
	def, ok := catalogue.FindItem(act.ItemID)
	if !ok || def.Use.RevivePct <= 0 {
		return nil, actionerr.Validation("That can't revive anyone.")
	}

	removeOne(actor, act.ItemID)
	target.HP = int(float64(target.MaxHP) * def.Use.RevivePct)
	if target.HP < 1 {
		target.HP = 1
	}
	target.Alive = true
	return []string{fmt.Sprintf("%s revives %s.", actor.Name, target.Name)}, nil
}
