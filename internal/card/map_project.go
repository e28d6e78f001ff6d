package card

import "cardcrawl/internal/state"

// mapGridSize is the side length of the 7x7 grid around the player (§4.7).
const mapGridSize = 7

// unvisitedDiscoveredFill is the fill for a tile that has been generated
// but never entered.
const unvisitedDiscoveredFill = "#333344"

// MapCell is one of the 49 projected grid cells.
type MapCell struct {
	GX, GY int
	TX, TY int
	CX, CY int

	Present bool // tile exists and is visited or discovered

	Fill string

	HasExitNorth, HasExitSouth, HasExitEast, HasExitWest bool

	IsCurrent    bool
	IsVisited    bool
	IsDiscovered bool
	Cleared      bool
}

// MapCardData is the full map card's template data.
type MapCardData struct {
	ShortID string
	Depth   int
	Cells   []MapCell
}

// roomFill maps a room type to its map-card fill colour.
func roomFill(t state.RoomType) string {
	switch t {
	case state.RoomCombat:
		return "#5a2020"
	case state.RoomBoss:
		return "#701818"
	case state.RoomTreasure:
		return "#5a4a10"
	case state.RoomTrap:
		return "#402050"
	case state.RoomRestShrine:
		return "#205a3a"
	case state.RoomMerchant:
		return "#20405a"
	case state.RoomUndergroundCity:
		return "#404060"
	case state.RoomStory:
		return "#4a3a60"
	case state.RoomHallway:
		return "#303030"
	default:
		return "#202020"
	}
}

// BuildMapCard projects a session snapshot into map-card template data, per
// the grid formulas in §4.7: world = player_pos + (gx-3, gy-3),
// tx = 20 + gx*52, ty = 44 + gy*52, centre at (tx+24, ty+24).
func BuildMapCard(sess *state.Session) MapCardData {
	data := MapCardData{ShortID: sess.ShortID, Depth: sess.Pos.Depth}

	for gy := 0; gy < mapGridSize; gy++ {
		for gx := 0; gx < mapGridSize; gx++ {
			world := state.Position{
				X:     sess.Pos.X + (gx - 3),
				Y:     sess.Pos.Y + (gy - 3),
				Depth: sess.Pos.Depth,
			}
			tx := 20 + gx*52
			ty := 44 + gy*52

			cell := MapCell{
				GX: gx, GY: gy,
				TX: tx, TY: ty,
				CX: tx + 24, CY: ty + 24,
			}

			tile := sess.Map.TileAt(world)
			if tile == nil || !(tile.Visited || tile.Generated) {
				data.Cells = append(data.Cells, cell)
				continue
			}

			cell.Present = true
			cell.IsVisited = tile.Visited
			cell.IsDiscovered = tile.Generated && !tile.Visited
			cell.Cleared = tile.Cleared
			cell.IsCurrent = world == sess.Pos
			cell.HasExitNorth = tile.Exits[state.DirNorth]
			cell.HasExitSouth = tile.Exits[state.DirSouth]
			cell.HasExitEast = tile.Exits[state.DirEast]
			cell.HasExitWest = tile.Exits[state.DirWest]

			if cell.IsDiscovered {
				cell.Fill = unvisitedDiscoveredFill
			} else {
				cell.Fill = roomFill(tile.RoomType)
			}

			data.Cells = append(data.Cells, cell)
		}
	}
	return data
}
