// Package battle implements the Battleship game logic: the board and ship
// model, fleet placement, shot resolution, and the computer opponent. It
// contains no external dependencies (especially no Bubble Tea) to keep the
// game logic pure and testable.
package battle

// GridSize is the side length of both boards.
const GridSize = 10

// Coord is a 0-indexed (row, column) board position.
type Coord struct {
	Row, Col int
}

// InBounds reports whether the coordinate lies on the grid.
func (c Coord) InBounds() bool {
	return c.Row >= 0 && c.Row < GridSize && c.Col >= 0 && c.Col < GridSize
}

// Neighbors returns the four orthogonal neighbors, including any that fall
// outside the grid. Callers filter with InBounds.
func (c Coord) Neighbors() [4]Coord {
	return [4]Coord{
		{Row: c.Row - 1, Col: c.Col},
		{Row: c.Row + 1, Col: c.Col},
		{Row: c.Row, Col: c.Col - 1},
		{Row: c.Row, Col: c.Col + 1},
	}
}

// Orientation is the axis a ship extends along from its anchor.
type Orientation uint8

const (
	Horizontal Orientation = iota
	Vertical
)

// String returns a human-readable name for the orientation.
func (o Orientation) String() string {
	if o == Vertical {
		return "vertical"
	}
	return "horizontal"
}

// Toggle returns the other orientation.
func (o Orientation) Toggle() Orientation {
	if o == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Span returns the length contiguous cells a ship occupies from the anchor,
// extending in the positive row or column direction only. Cells may fall
// outside the grid; PlaceShip rejects those.
func Span(anchor Coord, o Orientation, length int) []Coord {
	cells := make([]Coord, length)
	for i := range cells {
		if o == Horizontal {
			cells[i] = Coord{Row: anchor.Row, Col: anchor.Col + i}
		} else {
			cells[i] = Coord{Row: anchor.Row + i, Col: anchor.Col}
		}
	}
	return cells
}

// CellState is the per-cell view exposed to the presentation layer.
type CellState uint8

const (
	CellEmpty CellState = iota
	CellShip            // un-hit ship cell (own board only)
	CellMiss
	CellHit
	CellSunk // hit cell of a fully sunk ship
)

// Board is one side's 10x10 grid. Cells hold the index of the occupying ship
// in the board's fleet, or -1 when empty. Ships are referenced by index only;
// no back-references exist.
type Board struct {
	cells [GridSize][GridSize]int8
	fleet Fleet
}

// NewBoard creates an empty board for the given fleet. None of the fleet's
// ships are placed yet.
func NewBoard(fleet Fleet) *Board {
	b := &Board{fleet: fleet}
	for r := range b.cells {
		for c := range b.cells[r] {
			b.cells[r][c] = -1
		}
	}
	return b
}

// Fleet returns the board's fleet.
func (b *Board) Fleet() Fleet {
	return b.fleet
}

// Occupant returns the ship occupying the cell, or nil when the cell is empty
// or out of bounds.
func (b *Board) Occupant(c Coord) *Ship {
	if !c.InBounds() {
		return nil
	}
	idx := b.cells[c.Row][c.Col]
	if idx < 0 {
		return nil
	}
	return b.fleet[idx]
}

// PlaceShip commits the ship to the given cells. It fails with ErrOutOfBounds
// when any cell lies outside the grid and with ErrOverlap when any cell is
// already occupied; on failure neither the board nor the ship is mutated.
func (b *Board) PlaceShip(s *Ship, cells []Coord) error {
	idx := b.fleet.indexOf(s)
	if idx < 0 {
		return ErrUnknownShip
	}
	for _, c := range cells {
		if !c.InBounds() {
			return ErrOutOfBounds
		}
		if b.cells[c.Row][c.Col] >= 0 {
			return ErrOverlap
		}
	}
	for _, c := range cells {
		b.cells[c.Row][c.Col] = int8(idx)
	}
	s.cells = append([]Coord(nil), cells...)
	return nil
}

// AllSunk reports whether every placed ship on the board is sunk.
// A board with no placed ships has not lost.
func (b *Board) AllSunk() bool {
	return b.fleet.Defeated()
}

// CellState classifies a cell for rendering. The shot record is the opponent's
// shots against this board; reveal controls whether un-hit ship cells show
// (own board) or hide (enemy board).
func (b *Board) CellState(c Coord, shots *ShotLog, reveal bool) CellState {
	ship := b.Occupant(c)
	if shots.Fired(c) {
		if ship == nil {
			return CellMiss
		}
		if ship.Sunk() {
			return CellSunk
		}
		return CellHit
	}
	if ship != nil && reveal {
		return CellShip
	}
	return CellEmpty
}
