package card

import (
	"bytes"
	"fmt"

	svg "github.com/ajstarks/svgo"
)

const (
	gameCardWidth  = 400
	gameCardHeight = 320

	mapCardWidth  = 20 + mapGridSize*52
	mapCardHeight = 44 + mapGridSize*52
)

// RenderGameSVGDoc builds the game card's SVG document for a single
// projected snapshot. Construction follows the canvas.Start/Rect/Text/End
// sequence used throughout the pack's svgo consumers.
func RenderGameSVGDoc(data GameCardData) []byte {
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)

	canvas.Start(gameCardWidth, gameCardHeight)
	canvas.Rect(0, 0, gameCardWidth, gameCardHeight, fmt.Sprintf("fill:%s", data.PhaseBG))

	canvas.Text(20, 24, fmt.Sprintf("%s - %s", data.RoomName, data.Phase),
		fmt.Sprintf("fill:%s;font-size:16px;font-weight:bold", data.PhaseFG))
	if data.RoomDesc != "" {
		canvas.Text(20, 40, data.RoomDesc, "fill:#cccccc;font-size:11px")
	}

	x := 20
	for _, badge := range data.RoomBadges {
		w := 16 + len(badge)*7
		canvas.Roundrect(x, 46, w, 18, 4, 4, "fill:#333344")
		canvas.Text(x+8, 59, badge, "fill:#ffffff;font-size:10px")
		x += w + 8
	}

	for _, p := range data.Players {
		drawPlayerPanel(canvas, p)
	}
	for i, e := range data.Enemies {
		drawEnemyPanel(canvas, e, i)
	}

	if len(data.Log) > 0 {
		logY := gameCardHeight - 14*len(data.Log) - 10
		for i, line := range data.Log {
			canvas.Text(20, logY+i*14, line, "fill:#aaaaaa;font-size:10px")
		}
	}

	canvas.End()
	return buf.Bytes()
}

func drawPlayerPanel(canvas *svg.SVG, p PlayerPanel) {
	nameColor := "#ffffff"
	if !p.Alive {
		nameColor = "#777777"
	}
	label := fmt.Sprintf("%s (%s Lv%d)", p.Name, p.Class, p.Level)
	if p.Defending {
		label += " [Defending]"
	}
	canvas.Text(20, p.Y, label, fmt.Sprintf("fill:%s;font-size:12px", nameColor))

	barY := p.Y + 6
	canvas.Rect(20, barY, barMaxWidth, 10, "fill:#222222")
	if p.HPBarWidth > 0 {
		canvas.Rect(20, barY, p.HPBarWidth, 10, fmt.Sprintf("fill:%s", p.HPColor))
	}
	canvas.Text(20+barMaxWidth+8, barY+9, fmt.Sprintf("%d/%d", p.HP, p.MaxHP), "fill:#ffffff;font-size:10px")

	if p.Full {
		xpY := barY + 16
		canvas.Rect(20, xpY, barMaxWidth, 6, "fill:#222222")
		if p.XPBarWidth > 0 {
			canvas.Rect(20, xpY, p.XPBarWidth, 6, "fill:#3498db")
		}
		canvas.Text(20+barMaxWidth+8, xpY+6, fmt.Sprintf("XP %d/%d", p.XP, p.XPToNext), "fill:#3498db;font-size:9px")
		canvas.Text(20, xpY+20, fmt.Sprintf("Gold: %d", p.Gold), "fill:#f1c40f;font-size:10px")
	}

	if len(p.EffectSummaries) > 0 {
		ey := barY + 22
		if p.Full {
			ey += 24
		}
		canvas.Text(20, ey, fmt.Sprintf("%v", p.EffectSummaries), "fill:#bb88ff;font-size:9px")
	}
}

func drawEnemyPanel(canvas *svg.SVG, e EnemyPanel, slot int) {
	y := 200 + slot*36
	name := e.Name
	if e.Enraged {
		name += " (Enraged)"
	}
	canvas.Text(20, y, fmt.Sprintf("%s Lv%d", name, e.Level), "fill:#ff8888;font-size:11px")
	canvas.Rect(20, y+6, barMaxWidth, 8, "fill:#222222")
	if e.HPBarWidth > 0 {
		canvas.Rect(20, y+6, e.HPBarWidth, 8, fmt.Sprintf("fill:%s", e.HPColor))
	}
	canvas.Text(20+barMaxWidth+8, y+13, fmt.Sprintf("%d/%d", e.HP, e.MaxHP), "fill:#ffffff;font-size:9px")
	canvas.Text(20, y+22, fmt.Sprintf("Intent: %s", e.Intent), "fill:#ffaa55;font-size:9px")
}

// RenderMapSVGDoc builds the map card's SVG document: a 7x7 grid of tiles
// at the fixed pixel offsets from §4.7.
func RenderMapSVGDoc(data MapCardData) []byte {
	buf := new(bytes.Buffer)
	canvas := svg.New(buf)

	canvas.Start(mapCardWidth, mapCardHeight)
	canvas.Rect(0, 0, mapCardWidth, mapCardHeight, "fill:#101014")
	canvas.Text(20, 24, fmt.Sprintf("Depth %d", data.Depth), "fill:#ffffff;font-size:14px")

	for _, cell := range data.Cells {
		if !cell.Present {
			continue
		}
		style := fmt.Sprintf("fill:%s;stroke:#000000;stroke-width:1", cell.Fill)
		canvas.Rect(cell.TX, cell.TY, 48, 48, style)

		if cell.HasExitNorth {
			canvas.Line(cell.CX, cell.TY, cell.CX, cell.TY-6, "stroke:#888888;stroke-width:2")
		}
		if cell.HasExitSouth {
			canvas.Line(cell.CX, cell.TY+48, cell.CX, cell.TY+54, "stroke:#888888;stroke-width:2")
		}
		if cell.HasExitEast {
			canvas.Line(cell.TX+48, cell.CY, cell.TX+54, cell.CY, "stroke:#888888;stroke-width:2")
		}
		if cell.HasExitWest {
			canvas.Line(cell.TX, cell.CY, cell.TX-6, cell.CY, "stroke:#888888;stroke-width:2")
		}

		if cell.IsCurrent {
			canvas.Circle(cell.CX, cell.CY, 10, "fill:#2ecc71;stroke:#ffffff;stroke-width:2")
		} else if cell.Cleared {
			canvas.Circle(cell.CX, cell.CY, 4, "fill:#666666")
		}
	}

	canvas.End()
	return buf.Bytes()
}
