package catalogue

import "cardcrawl/internal/state"

// candidatesForDepth returns every enemy template eligible at depth,
// optionally restricted to bosses.
func candidatesForDepth(depth int, bossOnly bool) []EnemyTemplate {
	out := make([]EnemyTemplate, 0, len(enemyDefs))
	for _, e := range enemyDefs {
		if e.IsBoss != bossOnly {
			continue
		}
		if depth < e.MinDepth || depth > e.MaxDepth {
			continue
		}
		out = append(out, e)
	}
	return out
}

// SpawnEnemy rolls a single non-boss enemy for depth, or a boss when
// isBoss is set.
func SpawnEnemy(depth int, isBoss bool, index uint8, rng roomRNG) state.EnemyState {
	candidates := candidatesForDepth(depth, isBoss)
	if len(candidates) == 0 {
		candidates = candidatesForDepth(depth, false)
	}
	tmpl := candidates[rng.Intn(len(candidates))]
	return instantiate(tmpl, depth, index)
}

// SpawnEnemies rolls a full encounter party: a single boss for boss
// rooms, or 1-3 regular enemies for combat rooms.
func SpawnEnemies(depth int, isBoss bool, rng roomRNG) []state.EnemyState {
	if isBoss {
		return []state.EnemyState{SpawnEnemy(depth, true, 0, rng)}
	}
	count := rng.IntRange(1, 3)
	enemies := make([]state.EnemyState, 0, count)
	for i := 0; i < count; i++ {
		enemies = append(enemies, SpawnEnemy(depth, false, uint8(i), rng))
	}
	return enemies
}

func instantiate(tmpl EnemyTemplate, depth int, index uint8) state.EnemyState {
	hp := tmpl.BaseHP + tmpl.HPPerDepth*depth
	return state.EnemyState{
		Name:        tmpl.Name,
		Level:       depthToLevel(depth),
		HP:          hp,
		MaxHP:       hp,
		Armour:      tmpl.BaseArmour,
		LootTableID: tmpl.LootTableID,
		Index:       index,
	}
}

func depthToLevel(depth int) int {
	lvl := 1 + depth/2
	if lvl > 5 {
		lvl = 5
	}
	return lvl
}

// EnemyBaseDamage returns a template's base attack damage by display
// name (falling back to 3 for an unknown name), used by internal/combat
// to roll Attack/HeavyAttack intents without duplicating the table.
func EnemyBaseDamage(name string) int {
	for _, e := range enemyDefs {
		if e.Name == name {
			return e.BaseDamage
		}
	}
	return 3
}
