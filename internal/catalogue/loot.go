package catalogue

// RolledLoot is one concrete drop from a loot table roll.
type RolledLoot struct {
	Gold    int
	ItemIDs []string
	GearIDs []string
}

// RollLoot resolves a loot table ID into gold plus item/gear drops.
func RollLoot(lootTableID string, rng roomRNG) RolledLoot {
	table, ok := lootByID[lootTableID]
	if !ok {
		return RolledLoot{}
	}

	result := RolledLoot{Gold: rng.IntRange(table.GoldMin, table.GoldMax)}

	weights := make([]float64, len(table.Entries))
	for i, e := range table.Entries {
		weights[i] = e.Weight
	}

	drops := table.DropCount
	if drops <= 0 {
		drops = 1
	}
	for i := 0; i < drops; i++ {
		idx := rng.WeightedChoice(weights)
		if idx < 0 {
			continue
		}
		entry := table.Entries[idx]
		if entry.IsGear {
			result.GearIDs = append(result.GearIDs, entry.ItemID)
		} else {
			result.ItemIDs = append(result.ItemIDs, entry.ItemID)
		}
	}
	return result
}

// RollGearLoot is a convenience wrapper for contexts that only want the
// gear drops from a table (e.g. a boss's guaranteed-gear clause).
func RollGearLoot(lootTableID string, rng roomRNG) []string {
	return RollLoot(lootTableID, rng).GearIDs
}

// SellPriceForItem returns what a merchant pays for one unit of item id.
func SellPriceForItem(id string) int {
	if it, ok := itemsByID[id]; ok {
		return it.SellPrice()
	}
	return 0
}

// SellPriceForGear returns what a merchant pays for a gear piece.
func SellPriceForGear(id string) int {
	if g, ok := gearByID[id]; ok {
		return g.SellPrice()
	}
	return 0
}
