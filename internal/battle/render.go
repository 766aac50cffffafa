package battle

import (
	"fmt"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

// Visual characters for rendering, matching the classic text notation.
const (
	WaterChar = '~'
	ShipChar  = 'S'
	HitChar   = 'X'
	MissChar  = 'o'
)

// Minimum screen size for the two-board layout.
const (
	minScreenW = 58
	minScreenH = 22
)

// Board layout metrics: 3 columns of row label plus 10 cells at 2-char pitch.
const (
	boardCellPitch = 2
	boardLabelW    = 3
	boardW         = boardLabelW + GridSize*boardCellPitch
	boardGap       = 5
	leftBoardX     = 2
	rightBoardX    = leftBoardX + boardW + boardGap
	boardTitleY    = 2
	boardHeaderY   = 3
	boardTopY      = 4
	statusListY    = boardTopY + GridSize + 1
)

// Render draws the game to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	g.renderHUD(dst)

	if g.tooSmall {
		g.renderOverlay(dst, "Window too small", "Resize to continue")
		return
	}

	switch g.phase {
	case PhasePlacement:
		g.renderPlacement(dst)
	default:
		g.renderBattle(dst)
	}

	g.renderShipStatus(dst)
	g.renderMessage(dst)

	switch {
	case g.won:
		g.renderOverlay(dst, "Victory!", fmt.Sprintf("Score: %d  |  Press R to play again", g.score))
	case g.lost:
		g.renderOverlay(dst, "Defeat", "Press R to play again")
	case g.paused:
		g.renderOverlay(dst, "Paused", "Press P to continue")
	}
}

// renderHUD draws the top status bar.
func (g *Game) renderHUD(dst *core.Screen) {
	var hud string
	if g.phase == PhasePlacement {
		hud = fmt.Sprintf(" Battleship - Deployment  Ships placed: %d/%d", g.placer.next, len(Classes))
	} else {
		hud = fmt.Sprintf(" Battleship - Shots: %d  Enemy ships sunk: %d/%d  Score: %d",
			g.playerShots.Count(), g.enemyBoard.Fleet().SunkCount(), len(Classes), g.score)
	}
	dst.DrawText(0, 0, hud)
	for x := range dst.Width() {
		dst.Set(x, 1, '─')
	}
}

// renderPlacement draws the player board with a ghost preview of the current
// ship, plus the key hints for the deployment phase.
func (g *Game) renderPlacement(dst *core.Screen) {
	dst.DrawText(leftBoardX+boardLabelW, boardTitleY, "YOUR FLEET")
	g.renderBoard(dst, leftBoardX, g.playerBoard, g.enemyShots, true)

	if ship := g.placer.Current(); ship != nil {
		span := Span(g.cursor, g.orient, ship.Length)
		legal := g.spanLegal(span)
		for _, c := range span {
			if !c.InBounds() {
				continue
			}
			color := core.ColorGreen
			if !legal {
				color = core.ColorBrightRed
			}
			g.setBoardCell(dst, leftBoardX, c, ShipChar, color)
		}
	}

	hints := []string{
		"arrows/wasd  move",
		"o/tab        rotate",
		"enter/space  place",
		"g            auto-deploy",
	}
	for i, h := range hints {
		dst.DrawTextColored(rightBoardX, boardTopY+i, h, core.ColorGray)
	}
	dst.DrawText(rightBoardX, boardTitleY, fmt.Sprintf("Placing: %s (%s)", g.currentShipLabel(), g.orient))
}

func (g *Game) currentShipLabel() string {
	ship := g.placer.Current()
	if ship == nil {
		return "done"
	}
	return fmt.Sprintf("%s, length %d", ship.Name, ship.Length)
}

// renderBattle draws both boards side by side. The enemy board hides un-shot
// ship cells unless the game is lost and reveal-on-defeat is enabled.
func (g *Game) renderBattle(dst *core.Screen) {
	dst.DrawText(leftBoardX+boardLabelW, boardTitleY, "YOUR FLEET")
	dst.DrawText(rightBoardX+boardLabelW, boardTitleY, "ENEMY WATERS")

	g.renderBoard(dst, leftBoardX, g.playerBoard, g.enemyShots, true)
	reveal := g.lost && g.cfg.Display.RevealOnDefeat
	g.renderBoard(dst, rightBoardX, g.enemyBoard, g.playerShots, reveal)

	// Targeting cursor on the enemy board.
	if g.phase == PhaseBattle && g.playerTurn {
		cell := dst.GetCell(g.cellX(rightBoardX, g.cursor), boardTopY+g.cursor.Row)
		g.setBoardCell(dst, rightBoardX, g.cursor, cell.Rune, core.ColorBrightYellow)
	}
}

// renderBoard draws one board's labels and cells at the given origin column.
func (g *Game) renderBoard(dst *core.Screen, originX int, board *Board, shots *ShotLog, reveal bool) {
	if g.cfg.Display.ShowCoordinates {
		for col := 0; col < GridSize; col++ {
			dst.SetCell(g.cellX(originX, Coord{Col: col}), boardHeaderY, rune(columnLetters[col]), core.ColorGray)
		}
	}
	for row := 0; row < GridSize; row++ {
		if g.cfg.Display.ShowCoordinates {
			dst.DrawTextColored(originX, boardTopY+row, fmt.Sprintf("%2d", row+1), core.ColorGray)
		}
		for col := 0; col < GridSize; col++ {
			c := Coord{Row: row, Col: col}
			glyph, color := cellGlyph(board.CellState(c, shots, reveal))
			g.setBoardCell(dst, originX, c, glyph, color)
		}
	}
}

// cellX maps a board column to a screen column.
func (g *Game) cellX(originX int, c Coord) int {
	return originX + boardLabelW + c.Col*boardCellPitch
}

func (g *Game) setBoardCell(dst *core.Screen, originX int, c Coord, r rune, color core.Color) {
	dst.SetCell(g.cellX(originX, c), boardTopY+c.Row, r, color)
}

// cellGlyph maps a cell view state to its glyph and color.
func cellGlyph(state CellState) (rune, core.Color) {
	switch state {
	case CellShip:
		return ShipChar, core.ColorWhite
	case CellMiss:
		return MissChar, core.ColorCyan
	case CellHit:
		return HitChar, core.ColorBrightRed
	case CellSunk:
		return HitChar, core.ColorRed
	default:
		return WaterChar, core.ColorBlue
	}
}

// renderShipStatus lists each fleet's ships and their condition.
func (g *Game) renderShipStatus(dst *core.Screen) {
	for i, ship := range g.playerBoard.Fleet() {
		g.renderShipLine(dst, leftBoardX, statusListY+i, ship)
	}
	if g.phase == PhasePlacement {
		return
	}
	for i, ship := range g.enemyBoard.Fleet() {
		g.renderShipLine(dst, rightBoardX, statusListY+i, ship)
	}
}

func (g *Game) renderShipLine(dst *core.Screen, x, y int, ship *Ship) {
	var color core.Color
	switch ship.Status() {
	case ShipSunk:
		color = core.ColorRed
	case ShipDamaged:
		color = core.ColorBrightYellow
	case ShipPlaced:
		color = core.ColorGreen
	default:
		color = core.ColorGray
	}
	dst.DrawTextColored(x, y, fmt.Sprintf("%-10s %s", ship.Name, ship.Status()), color)
}

// renderMessage draws the outcome/status line near the bottom.
func (g *Game) renderMessage(dst *core.Screen) {
	y := dst.Height() - 2
	if y <= statusListY+len(Classes) {
		y = statusListY + len(Classes) + 1
	}
	dst.DrawText(leftBoardX, y, g.message)
}

// renderOverlay draws a centered overlay message box.
func (g *Game) renderOverlay(dst *core.Screen, line1, line2 string) {
	boxW := core.Max(len(line1), len(line2)) + 4
	boxH := 5
	box := core.NewRect((dst.Width()-boxW)/2, (dst.Height()-boxH)/2, boxW, boxH)

	dst.DrawRect(box, ' ')
	dst.DrawBox(box)

	dst.DrawText(box.X+(boxW-len(line1))/2, box.Y+1, line1)
	dst.DrawText(box.X+(boxW-len(line2))/2, box.Y+3, line2)
}
