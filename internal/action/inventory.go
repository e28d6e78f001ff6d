package action

import "cardcrawl/internal/state"

// findStack returns the inventory slot index holding itemID, or -1.
func findStack(p *state.PlayerState, itemID string) int {
	for i, s := range p.Inventory {
		if s.ItemID == itemID {
			return i
		}
	}
	return -1
}

// addStack increments (or creates) the stack for itemID.
func addStack(p *state.PlayerState, itemID string, qty int) {
	if i := findStack(p, itemID); i >= 0 {
		p.Inventory[i].Quantity += qty
		return
	}
	p.Inventory = append(p.Inventory, state.ItemStack{ItemID: itemID, Quantity: qty})
}

// removeOne decrements itemID's stack by one, dropping the slot entirely
// once it reaches zero.
func removeOne(p *state.PlayerState, itemID string) {
	i := findStack(p, itemID)
	if i < 0 {
		return
	}
	p.Inventory[i].Quantity--
	if p.Inventory[i].Quantity <= 0 {
		p.Inventory = append(p.Inventory[:i], p.Inventory[i+1:]...)
	}
}
