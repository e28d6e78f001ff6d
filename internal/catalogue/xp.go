package catalogue

import "cardcrawl/internal/state"

// XPForEnemy returns the XP a party earns for killing this enemy.
func XPForEnemy(e *state.EnemyState) int {
	base := 8 + e.Level*6
	if e.Level >= 4 {
		base += 10 // boss-tier kills pay out extra
	}
	return base
}

// XPToLevel returns the XP threshold required to advance from level to
// level+1.
func XPToLevel(level int) int {
	return 40 + level*25
}
