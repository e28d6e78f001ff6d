package catalogue

import (
	"sort"

	"cardcrawl/internal/state"
)

// roomRNG is the minimal randomness surface catalogue needs; satisfied by
// *worldmap.RNG without creating an import cycle.
type roomRNG interface {
	Intn(n int) int
	Float64() float64
	Chance(p float64) bool
	IntRange(min, max int) int
	WeightedChoice(weights []float64) int
}

// roomWeights returns a room type's spawn weight at a given depth. Boss and
// UndergroundCity rooms are not in this table, and no other code places
// them on the map, so revealed tiles never have either type.
func roomWeights(depth int) ([]state.RoomType, []float64) {
	types := []state.RoomType{
		state.RoomCombat,
		state.RoomTreasure,
		state.RoomTrap,
		state.RoomRestShrine,
		state.RoomMerchant,
		state.RoomStory,
		state.RoomHallway,
	}
	weights := []float64{30, 10, 8, 6, 6, 8, 32}
	if depth >= 6 {
		// Deeper floors lean harder into combat and traps.
		weights[0] += 8
		weights[2] += 4
	}
	return types, weights
}

// RollRoomType picks a room type for a freshly-revealed tile at depth.
func RollRoomType(depth int, rng roomRNG) state.RoomType {
	types, weights := roomWeights(depth)
	idx := rng.WeightedChoice(weights)
	if idx < 0 {
		return state.RoomHallway
	}
	return types[idx]
}

// GenerateRoom builds a full RoomState for roomType at depth, filling in
// display text, modifiers, hazards, and merchant stock as appropriate.
func GenerateRoom(roomType state.RoomType, depth int, rng roomRNG) state.RoomState {
	flavour := flavourBy[roomType.String()]
	room := state.RoomState{
		Depth:       depth,
		RoomType:    roomType,
		DisplayName: flavour.DisplayName,
		Description: flavour.Description,
	}

	switch roomType {
	case state.RoomTrap:
		if rng.Chance(0.5) {
			room.Hazards = append(room.Hazards, state.RoomHazard{
				Kind:   state.HazardSpikes,
				Damage: 6 + depth,
			})
		} else {
			room.Hazards = append(room.Hazards, state.RoomHazard{
				Kind:       state.HazardGas,
				EffectKind: state.EffectPoison,
				Stacks:     1,
				Turns:      3,
			})
		}
	case state.RoomMerchant, state.RoomUndergroundCity:
		room.MerchantStock = GenerateMerchantStock(depth, rng)
	case state.RoomCombat:
		if rng.Chance(0.25) {
			room.Modifiers = append(room.Modifiers, state.RoomModifier{Kind: state.ModifierFog, AccuracyPenalty: 0.15})
		}
		if rng.Chance(0.15) {
			room.Modifiers = append(room.Modifiers, state.RoomModifier{Kind: state.ModifierCursed, DamageMultiplier: 1.25})
		}
	case state.RoomStory:
		room.StoryEvent = GenerateStoryEvent(rng)
	}

	return room
}

// GenerateHallwayRoom builds the plain pass-through room used for tiles
// that exist only to connect other rooms.
func GenerateHallwayRoom(depth int) state.RoomState {
	flavour := flavourBy[state.RoomHallway.String()]
	return state.RoomState{
		Depth:       depth,
		RoomType:    state.RoomHallway,
		DisplayName: flavour.DisplayName,
		Description: flavour.Description,
	}
}

// GenerateEncounterRoom builds a Combat RoomState for a fight, or a Boss
// RoomState when isBoss is set.
func GenerateEncounterRoom(depth int, isBoss bool, rng roomRNG) state.RoomState {
	rt := state.RoomCombat
	if isBoss {
		rt = state.RoomBoss
	}
	return GenerateRoom(rt, depth, rng)
}

// GenerateMerchantStock rolls a small set of items/gear for a merchant or
// underground-city tile to sell.
func GenerateMerchantStock(depth int, rng roomRNG) []state.MerchantEntry {
	stock := make([]state.MerchantEntry, 0, 4)

	for _, id := range sortedItemIDs() {
		it := itemsByID[id]
		if rng.Chance(0.5) {
			stock = append(stock, state.MerchantEntry{ItemID: it.ID, Price: it.BuyPrice, IsGear: false})
		}
		if len(stock) >= 2 {
			break
		}
	}
	for _, id := range sortedGearIDs() {
		g := gearByID[id]
		if g.MinDepth > depth+1 {
			continue
		}
		if rng.Chance(0.4) {
			stock = append(stock, state.MerchantEntry{ItemID: g.ID, Price: g.BuyPrice, IsGear: true})
		}
		if len(stock) >= 5 {
			break
		}
	}
	return stock
}

func sortedItemIDs() []string {
	ids := make([]string, 0, len(itemsByID))
	for id := range itemsByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}

func sortedGearIDs() []string {
	ids := make([]string, 0, len(gearByID))
	for id := range gearByID {
		ids = append(ids, id)
	}
	sort.Strings(ids)
	return ids
}
