package battle

import "math/rand"

// Placer walks a board's fleet in fixed order (Carrier first, Destroyer
// last), committing one ship at a time. A rejected placement leaves all
// state unchanged and keeps the same ship current.
type Placer struct {
	board *Board
	next  int
}

// NewPlacer creates a placer for the board's fleet.
func NewPlacer(board *Board) *Placer {
	p := &Placer{board: board}
	p.advance()
	return p
}

// advance skips past already-placed ships.
func (p *Placer) advance() {
	for p.next < len(p.board.fleet) && p.board.fleet[p.next].Placed() {
		p.next++
	}
}

// Current returns the ship awaiting placement, or nil when the fleet is
// complete.
func (p *Placer) Current() *Ship {
	if p.Complete() {
		return nil
	}
	return p.board.fleet[p.next]
}

// Complete reports whether all ships are placed and battle may start.
func (p *Placer) Complete() bool {
	return p.next >= len(p.board.fleet)
}

// Place commits the current ship at the anchor with the given orientation.
// On success the placer advances to the next ship; on failure
// (ErrOutOfBounds, ErrOverlap) nothing changes.
func (p *Placer) Place(anchor Coord, o Orientation) error {
	ship := p.Current()
	if ship == nil {
		return ErrFleetComplete
	}
	if err := p.board.PlaceShip(ship, Span(anchor, o, ship.Length)); err != nil {
		return err
	}
	p.advance()
	return nil
}

// AutoPlace deploys every remaining ship by rejection sampling: uniformly
// random anchor and orientation, retried until legal. The board is sparse
// relative to ship sizes, so the loop terminates quickly; only legality is
// guaranteed, not a uniform distribution over full-fleet layouts.
func (p *Placer) AutoPlace(rng *rand.Rand) {
	for !p.Complete() {
		anchor := Coord{Row: rng.Intn(GridSize), Col: rng.Intn(GridSize)}
		o := Horizontal
		if rng.Intn(2) == 1 {
			o = Vertical
		}
		// Both failure modes just mean resample.
		_ = p.Place(anchor, o)
	}
}
