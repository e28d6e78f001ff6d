package catalogue

import (
	"testing"

	"cardcrawl/internal/state"
	"cardcrawl/internal/worldmap"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRNG(stream string) *worldmap.RNG {
	return worldmap.NewRNG(uuid.MustParse("00000000-0000-0000-0000-000000000001"), stream)
}

func TestSellPriceScheduleByRarity(t *testing.T) {
	cases := []struct {
		rarity Rarity
		buy    int
		want   int
	}{
		{RarityCommon, 100, 50},
		{RarityUncommon, 100, 40},
		{RarityRare, 100, 35},
		{RarityEpic, 100, 30},
	}
	for _, tc := range cases {
		t.Run(string(tc.rarity), func(t *testing.T) {
			assert.Equal(t, tc.want, tc.rarity.sellPrice(tc.buy))
		})
	}
}

func TestSellPriceForItemKnownAndUnknown(t *testing.T) {
	price := SellPriceForItem("minor_potion")
	assert.Equal(t, 7, price, "common potion: floor(15*0.5)")

	assert.Equal(t, 0, SellPriceForItem("no-such-item"))
}

func TestSellPriceForGearUnknownIsZero(t *testing.T) {
	assert.Equal(t, 0, SellPriceForGear("no-such-gear"))
}

func TestXPForEnemyScalesWithLevelAndBossBonus(t *testing.T) {
	weak := &state.EnemyState{Level: 1}
	assert.Equal(t, 14, XPForEnemy(weak))

	boss := &state.EnemyState{Level: 4}
	assert.Equal(t, 8+4*6+10, XPForEnemy(boss))
}

func TestXPToLevelIncreasesWithLevel(t *testing.T) {
	assert.Less(t, XPToLevel(1), XPToLevel(2))
	assert.Equal(t, 40+3*25, XPToLevel(3))
}

func TestRollLootUnknownTableReturnsEmpty(t *testing.T) {
	loot := RollLoot("no-such-table", testRNG("loot"))
	assert.Zero(t, loot.Gold)
	assert.Empty(t, loot.ItemIDs)
	assert.Empty(t, loot.GearIDs)
}

func TestSpawnEnemyRespectsDepthGate(t *testing.T) {
	e := SpawnEnemy(1, false, 0, testRNG("spawn"))
	require.NotEmpty(t, e.Name)
	assert.Contains(t, []string{"Cave Rat", "Goblin Raider"}, e.Name, "only templates with minDepth 1 can spawn at depth 1")
	assert.Equal(t, uint8(0), e.Index)
	assert.Equal(t, e.HP, e.MaxHP, "freshly spawned enemy starts at full HP")
}

func TestSpawnEnemiesBossRoomYieldsSingleBoss(t *testing.T) {
	enemies := SpawnEnemies(5, true, testRNG("boss"))
	require.Len(t, enemies, 1)
}

func TestSpawnEnemiesRegularRoomYieldsOneToThree(t *testing.T) {
	enemies := SpawnEnemies(1, false, testRNG("pack"))
	assert.GreaterOrEqual(t, len(enemies), 1)
	assert.LessOrEqual(t, len(enemies), 3)
}

func TestRollRoomTypeIsDeterministicForSameStream(t *testing.T) {
	a := RollRoomType(2, testRNG("room-a"))
	b := RollRoomType(2, testRNG("room-a"))
	assert.Equal(t, a, b, "same session/stream derivation always rolls the same sequence")
}
