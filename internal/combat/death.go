package combat

import (
	"fmt"
	"math/rand"

	"cardcrawl/internal/catalogue"
	"cardcrawl/internal/state"
)

// HandleEnemyDeaths collects dead enemies, distributes gold/xp/loot
// across the living party, removes the dead, and resolves what happens
// next once the encounter clears (§4.4 "Enemy death handling").
func HandleEnemyDeaths(sess *state.Session, actorID string, rng *rand.Rand) []string {
	var lines []string

	dead := make([]state.EnemyState, 0)
	alive := sess.Enemies[:0]
	for _, e := range sess.Enemies {
		if e.Dead() {
			dead = append(dead, e)
		} else {
			alive = append(alive, e)
		}
	}
	sess.Enemies = alive

	if len(dead) == 0 {
		return lines
	}

	living := sess.LivingPlayers()
	killCount := len(dead)

	for _, e := range dead {
		gold := 5 + rng.Intn(11) // 5..=15
		lines = append(lines, distributeGold(sess, living, gold)...)

		if len(living) > 0 {
			xpShare := catalogue.XPForEnemy(&e) / len(living)
			for _, p := range living {
				grantXP(p, xpShare, &lines)
			}
		}

		loot := catalogue.RollLoot(e.LootTableID, adaptRNG(rng))
		lines = append(lines, distributeLoot(sess, living, loot)...)
	}

	if actor, ok := sess.Players[actorID]; ok {
		actor.LifetimeKills += killCount
	}

	if sess.AllEnemiesDead() {
		for _, p := range sess.LivingPlayers() {
			p.LifetimeRoomsCleared++
		}
		if sess.Room.RoomType == state.RoomBoss {
			tile := sess.Map.TileAt(sess.Pos)
			if tile != nil {
				tile.Cleared = true
			}
			sess.Phase = state.PhaseExploring
			for _, p := range sess.LivingPlayers() {
				p.LifetimeBossesDefeated++
			}
			lines = append(lines, "The boss falls. The chamber grows quiet.")
		}
		// Non-boss clears resume any pending travel; see CompletePendingTravel,
		// invoked by the caller once it has map access.
	}

	return lines
}

func grantXP(p *state.PlayerState, amount int, lines *[]string) {
	p.XP += amount
	for p.XP >= p.XPToNext {
		p.XP -= p.XPToNext
		p.Level++
		p.MaxHP += 5
		p.HP = p.MaxHP
		p.XPToNext = catalogue.XPToLevel(p.Level)
		*lines = append(*lines, fmt.Sprintf("%s reaches level %d!", p.Name, p.Level))
	}
}

func distributeGold(sess *state.Session, living []*state.PlayerState, total int) []string {
	if len(living) == 0 {
		return nil
	}
	share := (total + len(living) - 1) / len(living) // ceiling division
	var lines []string
	for _, p := range living {
		p.Gold += share
		p.LifetimeGoldEarned += share
	}
	lines = append(lines, fmt.Sprintf("The party finds %d gold.", total))
	_ = sess
	return lines
}

func distributeLoot(sess *state.Session, living []*state.PlayerState, loot catalogue.RolledLoot) []string {
	if len(living) == 0 {
		return nil
	}
	var lines []string
	for i, id := range loot.ItemIDs {
		p := living[i%len(living)]
		p.Inventory = append(p.Inventory, state.ItemStack{ItemID: id, Quantity: 1})
		if def, ok := catalogue.FindItem(id); ok {
			lines = append(lines, fmt.Sprintf("%s finds a %s.", p.Name, def.Name))
		}
	}
	for i, id := range loot.GearIDs {
		p := living[i%len(living)]
		p.Inventory = append(p.Inventory, state.ItemStack{ItemID: id, Quantity: 1})
		if def, ok := catalogue.FindGear(id); ok {
			lines = append(lines, fmt.Sprintf("%s finds a %s.", p.Name, def.Name))
		}
	}
	_ = sess
	return lines
}

// adaptRNG wraps a *rand.Rand as the minimal roomRNG-shaped interface
// catalogue's roll functions expect.
func adaptRNG(rng *rand.Rand) randAdapter { return randAdapter{rng} }

type randAdapter struct{ r *rand.Rand }

func (a randAdapter) Intn(n int) int      { return a.r.Intn(n) }
func (a randAdapter) Float64() float64    { return a.r.Float64() }
func (a randAdapter) Chance(p float64) bool {
	return a.r.Float64() < p
}
func (a randAdapter) IntRange(min, max int) int {
	if min >= max {
		return min
	}
	return min + a.r.Intn(max-min+1)
}
func (a randAdapter) WeightedChoice(weights []float64) int {
	total := 0.0
	for _, w := range weights {
		total += w
	}
	if total <= 0 {
		return -1
	}
	roll := a.r.Float64() * total
	cum := 0.0
	for i, w := range weights {
		cum += w
		if roll < cum {
			return i
		}
	}
	return len(weights) - 1
}
