// Package card projects session snapshots into the game-card and map-card
// template data the SVG builder consumes (§4.7). Projection is pure: it
// takes a *state.Session and returns plain structs, with no knowledge of
// SVG, PNG, or the worker pool that rasterises them.
package card

import (
	"fmt"
	"math"

	"cardcrawl/internal/state"
)

// hpColor thresholds, in fraction of max HP (§4.7).
const (
	hpColorHealthy = "#2ecc71"
	hpColorHurt    = "#f1c40f"
	hpColorCrit    = "#e74c3c"

	barMaxWidth = 340
)

// barWidth implements the shared HP/XP bar formula: round(max(0,cur)/max(1,max)*340).
func barWidth(current, max int) int {
	if current < 0 {
		current = 0
	}
	if max < 1 {
		max = 1
	}
	return int(math.Round(float64(current) / float64(max) * barMaxWidth))
}

func hpColorFor(current, max int) string {
	if max <= 0 {
		return hpColorCrit
	}
	frac := float64(current) / float64(max)
	switch {
	case frac > 0.6:
		return hpColorHealthy
	case frac > 0.3:
		return hpColorHurt
	default:
		return hpColorCrit
	}
}

// playerPanelYOffsets is the fixed compact-layout Y-offset table keyed by
// roster size (§4.7). Solo sessions use the full layout instead (y=20).
var playerPanelYOffsets = map[int][]int{
	1: {85},
	2: {62, 192},
	3: {62, 152, 242},
	4: {62, 130, 198, 266},
}

// PlayerPanel is one roster member's pre-computed card layout.
type PlayerPanel struct {
	Name  string
	Class string
	Level int

	HP, MaxHP       int
	HPBarWidth      int
	HPColor         string
	XP, XPToNext    int
	XPBarWidth      int
	Gold            int
	Alive           bool
	Defending       bool
	EffectSummaries []string

	Y      int
	Full   bool // Solo layout
	Index  int
}

// EnemyPanel is one active enemy's pre-computed card layout.
type EnemyPanel struct {
	Name       string
	Level      int
	HP, MaxHP  int
	HPBarWidth int
	HPColor    string
	Intent     string
	Enraged    bool
	Index      uint8

	Y int
}

// GameCardData is the full game card's template data.
type GameCardData struct {
	ShortID   string
	Phase     string
	PhaseBG   string
	PhaseFG   string
	RoomName  string
	RoomDesc  string
	Depth     int

	Players []PlayerPanel
	Enemies []EnemyPanel

	RoomBadges []string
	Log        []string
	ShowItems  bool
}

// phaseColors maps a phase to its background/foreground hex pair. Combat
// with a critical owner HP (<=30%) swaps to the alarm pair.
func phaseColors(phase state.Phase, ownerCritical bool) (bg, fg string) {
	if phase == state.PhaseCombat && ownerCritical {
		return "#4a1015", "#e74c3c"
	}
	switch phase {
	case state.PhaseCombat:
		return "#2a1520", "#e74c3c"
	case state.PhaseMerchant, state.PhaseCity:
		return "#1a2a3a", "#f1c40f"
	case state.PhaseLooting, state.PhaseTreasure:
		return "#2a2410", "#f1c40f"
	default:
		if phase.IsGameOver() {
			return "#101010", "#888888"
		}
		return "#14202a", "#2ecc71"
	}
}

func classForIndex(i int) string {
	switch i {
	case 0:
		return "player-one"
	default:
		return "player-other"
	}
}

// BuildGameCard projects a session snapshot into game-card template data.
// Callers must have already cloned or locked sess; this function performs
// no locking of its own.
func BuildGameCard(sess *state.Session) GameCardData {
	owner := sess.Players[sess.OwnerID]
	ownerCritical := owner != nil && owner.MaxHP > 0 && float64(owner.HP)/float64(owner.MaxHP) <= 0.3
	bg, fg := phaseColors(sess.Phase, ownerCritical)

	data := GameCardData{
		ShortID:  sess.ShortID,
		Phase:    sess.Phase.String(),
		PhaseBG:  bg,
		PhaseFG:  fg,
		RoomName: sess.Room.DisplayName,
		RoomDesc: sess.Room.Description,
		Depth:    sess.Room.Depth,
		Log:      append([]string(nil), sess.Log...),
		ShowItems: sess.ShowItems,
	}

	full := len(sess.Party) == 1
	offsets := playerPanelYOffsets[len(sess.Party)]
	for i, uid := range sess.Party {
		p, ok := sess.Players[uid]
		if !ok {
			continue
		}
		y := 20
		if !full && i < len(offsets) {
			y = offsets[i]
		}
		panel := PlayerPanel{
			Name:            p.Name,
			Class:           p.Class.String(),
			Level:           p.Level,
			HP:              p.HP,
			MaxHP:           p.MaxHP,
			HPBarWidth:      barWidth(p.HP, p.MaxHP),
			HPColor:         hpColorFor(p.HP, p.MaxHP),
			XP:              p.XP,
			XPToNext:        p.XPToNext,
			XPBarWidth:      barWidth(p.XP, p.XPToNext),
			Gold:            p.Gold,
			Alive:           p.Alive,
			Defending:       p.Defending,
			EffectSummaries: summarizeEffects(p.Effects),
			Y:               y,
			Full:            full,
			Index:           i,
		}
		data.Players = append(data.Players, panel)
	}

	for _, e := range sess.Enemies {
		data.Enemies = append(data.Enemies, EnemyPanel{
			Name:       e.Name,
			Level:      e.Level,
			HP:         e.HP,
			MaxHP:      e.MaxHP,
			HPBarWidth: barWidth(e.HP, e.MaxHP),
			HPColor:    hpColorFor(e.HP, e.MaxHP),
			Intent:     e.Intent.Kind.String(),
			Enraged:    e.Enraged,
			Index:      e.Index,
		})
	}

	data.RoomBadges = roomBadges(sess)
	return data
}

func summarizeEffects(effects []state.EffectInstance) []string {
	out := make([]string, 0, len(effects))
	for _, e := range effects {
		out = append(out, fmt.Sprintf("%s x%d (%dt)", e.Kind.String(), e.Stacks, e.TurnsLeft))
	}
	return out
}

func roomBadges(sess *state.Session) []string {
	badges := []string{sess.Room.RoomType.String()}
	for _, m := range sess.Room.Modifiers {
		switch m.Kind {
		case state.ModifierFog:
			badges = append(badges, "Fog")
		case state.ModifierBlessing:
			badges = append(badges, "Blessing")
		case state.ModifierCursed:
			badges = append(badges, "Cursed")
		}
	}
	return badges
}
