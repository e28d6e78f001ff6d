package catalogue

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"
)

//go:embed data/items.yaml
var itemsYAML []byte

//go:embed data/gear.yaml
var gearYAML []byte

//go:embed data/enemies.yaml
var enemiesYAML []byte

//go:embed data/loot.yaml
var lootYAML []byte

//go:embed data/rooms.yaml
var roomsYAML []byte

type itemsFile struct {
	Items []ItemDef `yaml:"items"`
}

type gearFile struct {
	Gear []GearDef `yaml:"gear"`
}

type enemiesFile struct {
	Enemies []EnemyTemplate `yaml:"enemies"`
}

type lootFile struct {
	LootTables []LootTable `yaml:"lootTables"`
}

type roomsFile struct {
	Rooms []RoomFlavour `yaml:"rooms"`
}

var (
	itemsByID = map[string]ItemDef{}
	gearByID  = map[string]GearDef{}
	enemyDefs []EnemyTemplate
	lootByID  = map[string]LootTable{}
	flavourBy = map[string]RoomFlavour{}
)

func init() {
	var f itemsFile
	if err := yaml.Unmarshal(itemsYAML, &f); err != nil {
		panic(fmt.Errorf("catalogue: parsing items.yaml: %w", err))
	}
	for _, it := range f.Items {
		itemsByID[it.ID] = it
	}

	var g gearFile
	if err := yaml.Unmarshal(gearYAML, &g); err != nil {
		panic(fmt.Errorf("catalogue: parsing gear.yaml: %w", err))
	}
	for _, gd := range g.Gear {
		gearByID[gd.ID] = gd
	}

	var e enemiesFile
	if err := yaml.Unmarshal(enemiesYAML, &e); err != nil {
		panic(fmt.Errorf("catalogue: parsing enemies.yaml: %w", err))
	}
	enemyDefs = e.Enemies

	var l lootFile
	if err := yaml.Unmarshal(lootYAML, &l); err != nil {
		panic(fmt.Errorf("catalogue: parsing loot.yaml: %w", err))
	}
	for _, lt := range l.LootTables {
		lootByID[lt.ID] = lt
	}

	var r roomsFile
	if err := yaml.Unmarshal(roomsYAML, &r); err != nil {
		panic(fmt.Errorf("catalogue: parsing rooms.yaml: %w", err))
	}
	for _, rf := range r.Rooms {
		flavourBy[rf.RoomType] = rf
	}
}

// FindItem looks up a consumable by ID.
func FindItem(id string) (ItemDef, bool) {
	it, ok := itemsByID[id]
	return it, ok
}

// FindGear looks up a weapon or armour piece by ID.
func FindGear(id string) (GearDef, bool) {
	g, ok := gearByID[id]
	return g, ok
}

// FindLootTable looks up a loot table by ID.
func FindLootTable(id string) (LootTable, bool) {
	lt, ok := lootByID[id]
	return lt, ok
}

// StartingInventory returns the items a brand new character begins with.
func StartingInventory() []string {
	return []string{"minor_potion", "minor_potion"}
}
