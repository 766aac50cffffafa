package battle

// ShipClass names a ship type and its length.
type ShipClass struct {
	Name   string
	Length int
}

// Classes is the classic five-ship fleet, in placement order.
var Classes = []ShipClass{
	{Name: "Carrier", Length: 5},
	{Name: "Battleship", Length: 4},
	{Name: "Cruiser", Length: 3},
	{Name: "Submarine", Length: 3},
	{Name: "Destroyer", Length: 2},
}

// ShipStatus describes a ship's lifecycle for the presentation layer.
type ShipStatus uint8

const (
	ShipUnplaced ShipStatus = iota
	ShipPlaced
	ShipDamaged
	ShipSunk
)

// String returns a human-readable name for the status.
func (s ShipStatus) String() string {
	switch s {
	case ShipPlaced:
		return "placed"
	case ShipDamaged:
		return "damaged"
	case ShipSunk:
		return "sunk"
	default:
		return "unplaced"
	}
}

// Ship is one vessel. Its cell set is fixed at placement; only the hit set
// grows afterwards.
type Ship struct {
	Name   string
	Length int
	cells  []Coord
	hits   map[Coord]bool
}

// NewShip creates an unplaced ship of the given class.
func NewShip(class ShipClass) *Ship {
	return &Ship{
		Name:   class.Name,
		Length: class.Length,
		hits:   make(map[Coord]bool, class.Length),
	}
}

// Placed reports whether the ship has been committed to a board.
func (s *Ship) Placed() bool {
	return len(s.cells) > 0
}

// Cells returns the ship's occupied coordinates, empty until placed.
func (s *Ship) Cells() []Coord {
	return s.cells
}

// Occupies reports whether the ship occupies the coordinate.
func (s *Ship) Occupies(c Coord) bool {
	for _, cell := range s.cells {
		if cell == c {
			return true
		}
	}
	return false
}

// RegisterHit records a hit on one of the ship's cells. Hits on coordinates
// the ship does not occupy are ignored.
func (s *Ship) RegisterHit(c Coord) {
	if s.Occupies(c) {
		s.hits[c] = true
	}
}

// HitAt reports whether the given cell of the ship has been hit.
func (s *Ship) HitAt(c Coord) bool {
	return s.hits[c]
}

// Hits returns the number of distinct cells hit.
func (s *Ship) Hits() int {
	return len(s.hits)
}

// Sunk reports whether every cell of the ship has been hit.
func (s *Ship) Sunk() bool {
	return s.Placed() && len(s.hits) == s.Length
}

// Status classifies the ship for display.
func (s *Ship) Status() ShipStatus {
	switch {
	case !s.Placed():
		return ShipUnplaced
	case s.Sunk():
		return ShipSunk
	case len(s.hits) > 0:
		return ShipDamaged
	default:
		return ShipPlaced
	}
}

// Fleet is one side's ordered list of ships.
type Fleet []*Ship

// NewFleet creates the classic five-ship fleet, unplaced.
func NewFleet() Fleet {
	fleet := make(Fleet, len(Classes))
	for i, class := range Classes {
		fleet[i] = NewShip(class)
	}
	return fleet
}

// indexOf returns the position of the ship in the fleet, or -1.
func (f Fleet) indexOf(s *Ship) int {
	for i, ship := range f {
		if ship == s {
			return i
		}
	}
	return -1
}

// Placed reports whether every ship in the fleet has been placed.
func (f Fleet) Placed() bool {
	for _, s := range f {
		if !s.Placed() {
			return false
		}
	}
	return len(f) > 0
}

// Defeated reports whether every ship in the fleet is sunk. An unplaced
// fleet is not defeated.
func (f Fleet) Defeated() bool {
	if !f.Placed() {
		return false
	}
	for _, s := range f {
		if !s.Sunk() {
			return false
		}
	}
	return true
}

// SunkCount returns the number of sunk ships.
func (f Fleet) SunkCount() int {
	n := 0
	for _, s := range f {
		if s.Sunk() {
			n++
		}
	}
	return n
}
