package catalogue

import "cardcrawl/internal/state"

// ClassStats is a class's starting PlayerState stat block (§3 PlayerState).
type ClassStats struct {
	MaxHP           int
	Armour          int
	CritChance      float64
	BaseDamageBonus int
}

var classStats = map[state.Class]ClassStats{
	state.ClassWarrior: {MaxHP: 45, Armour: 3, CritChance: 0.05, BaseDamageBonus: 1},
	state.ClassRogue:   {MaxHP: 30, Armour: 0, CritChance: 0.2, BaseDamageBonus: 0},
	state.ClassCleric:  {MaxHP: 35, Armour: 1, CritChance: 0.05, BaseDamageBonus: 0},
}

// StatsForClass returns the starting stat block for a class, defaulting to
// the Warrior block for an unrecognized value.
func StatsForClass(c state.Class) ClassStats {
	if s, ok := classStats[c]; ok {
		return s
	}
	return classStats[state.ClassWarrior]
}

// NewPlayer builds a fresh PlayerState for userID/name/class, seeded with
// the class's starting stats and the standard starting inventory (§4.1
// starting_inventory).
func NewPlayer(userID, name string, class state.Class) *state.PlayerState {
	stats := StatsForClass(class)
	p := &state.PlayerState{
		UserID:          userID,
		Name:            name,
		HP:              stats.MaxHP,
		MaxHP:           stats.MaxHP,
		Armour:          stats.Armour,
		Class:           class,
		Level:           1,
		XPToNext:        XPToLevel(1),
		CritChance:      stats.CritChance,
		BaseDamageBonus: stats.BaseDamageBonus,
		BaseAccuracy:    1.0,
		Alive:           true,
	}
	for _, id := range StartingInventory() {
		addStartingStack(p, id)
	}
	return p
}

func addStartingStack(p *state.PlayerState, itemID string) {
	for i, s := range p.Inventory {
		if s.ItemID == itemID {
			p.Inventory[i].Quantity++
			return
		}
	}
	p.Inventory = append(p.Inventory, state.ItemStack{ItemID: itemID, Quantity: 1})
}
