package battle

import (
	"errors"
	"testing"
)

// boardWithDestroyerAt builds a board whose only placed ship is the
// destroyer, laid horizontally from the anchor.
func boardWithDestroyerAt(t *testing.T, anchor Coord) (*Board, *Ship) {
	t.Helper()
	board := NewBoard(NewFleet())
	destroyer := board.Fleet()[4]
	if err := board.PlaceShip(destroyer, Span(anchor, Horizontal, destroyer.Length)); err != nil {
		t.Fatalf("PlaceShip() failed: %v", err)
	}
	return board, destroyer
}

func TestFireMiss(t *testing.T) {
	board, _ := boardWithDestroyerAt(t, Coord{Row: 0, Col: 0})
	shots := NewShotLog()

	out, err := Fire(board, shots, Coord{Row: 5, Col: 5})
	if err != nil {
		t.Fatalf("Fire() failed: %v", err)
	}
	if out.Result != Miss {
		t.Errorf("Result = %v, want Miss", out.Result)
	}
	if out.Ship != nil {
		t.Errorf("Ship = %v on a miss, want nil", out.Ship)
	}
	if out.FleetDefeated {
		t.Error("FleetDefeated true after a miss")
	}
	if !shots.Fired(Coord{Row: 5, Col: 5}) {
		t.Error("miss not recorded in the shot log")
	}
}

func TestFireHitThenSunk(t *testing.T) {
	board, destroyer := boardWithDestroyerAt(t, Coord{Row: 0, Col: 0})
	shots := NewShotLog()

	out, err := Fire(board, shots, Coord{Row: 0, Col: 0})
	if err != nil {
		t.Fatalf("Fire() failed: %v", err)
	}
	if out.Result != Hit {
		t.Errorf("first shot Result = %v, want Hit", out.Result)
	}
	if out.Ship != destroyer {
		t.Errorf("Ship = %v, want the destroyer", out.Ship)
	}

	out, err = Fire(board, shots, Coord{Row: 0, Col: 1})
	if err != nil {
		t.Fatalf("Fire() failed: %v", err)
	}
	if out.Result != Sunk {
		t.Errorf("final shot Result = %v, want Sunk", out.Result)
	}
	if !destroyer.Sunk() {
		t.Error("destroyer not sunk after both cells hit")
	}
}

func TestFireAlreadyFiredMutatesNothing(t *testing.T) {
	board, destroyer := boardWithDestroyerAt(t, Coord{Row: 0, Col: 0})
	shots := NewShotLog()

	if _, err := Fire(board, shots, Coord{Row: 0, Col: 0}); err != nil {
		t.Fatalf("Fire() failed: %v", err)
	}
	hitsBefore := destroyer.Hits()
	countBefore := shots.Count()

	_, err := Fire(board, shots, Coord{Row: 0, Col: 0})
	if !errors.Is(err, ErrAlreadyFired) {
		t.Fatalf("repeat Fire() = %v, want ErrAlreadyFired", err)
	}
	if destroyer.Hits() != hitsBefore {
		t.Error("repeat shot changed the ship's hit count")
	}
	if shots.Count() != countBefore {
		t.Error("repeat shot changed the shot log")
	}
}

func TestFireOutOfBounds(t *testing.T) {
	board := NewBoard(NewFleet())
	shots := NewShotLog()

	_, err := Fire(board, shots, Coord{Row: -1, Col: 0})
	if !errors.Is(err, ErrOutOfBounds) {
		t.Fatalf("Fire() out of bounds = %v, want ErrOutOfBounds", err)
	}
	if shots.Count() != 0 {
		t.Error("out-of-bounds shot was recorded")
	}
}

func TestFireReportsFleetDefeat(t *testing.T) {
	// Full fleet, stacked on even rows
	board := NewBoard(NewFleet())
	for i, ship := range board.Fleet() {
		if err := board.PlaceShip(ship, Span(Coord{Row: i * 2, Col: 0}, Horizontal, ship.Length)); err != nil {
			t.Fatalf("PlaceShip(%s) failed: %v", ship.Name, err)
		}
	}

	shots := NewShotLog()
	var cells []Coord
	for _, ship := range board.Fleet() {
		cells = append(cells, ship.Cells()...)
	}

	for i, c := range cells {
		out, err := Fire(board, shots, c)
		if err != nil {
			t.Fatalf("Fire(%v) failed: %v", c, err)
		}
		last := i == len(cells)-1
		if out.FleetDefeated != last {
			t.Fatalf("shot %d: FleetDefeated = %v, want %v", i, out.FleetDefeated, last)
		}
	}
	if !board.AllSunk() {
		t.Error("board not AllSunk() after every ship cell was hit")
	}
}

// A fleet with undeployed ships is never defeated, even when every placed
// ship is at the bottom of the sea.
func TestPartialFleetNeverDefeated(t *testing.T) {
	board, destroyer := boardWithDestroyerAt(t, Coord{Row: 0, Col: 0})
	shots := NewShotLog()

	seq := []struct {
		c    Coord
		want Result
	}{
		{Coord{Row: 9, Col: 9}, Miss},
		{Coord{Row: 0, Col: 0}, Hit},
		{Coord{Row: 9, Col: 8}, Miss},
		{Coord{Row: 0, Col: 1}, Sunk},
	}
	for i, step := range seq {
		out, err := Fire(board, shots, step.c)
		if err != nil {
			t.Fatalf("Fire(%v) failed: %v", step.c, err)
		}
		if out.Result != step.want {
			t.Fatalf("shot %d Result = %v, want %v", i, out.Result, step.want)
		}
		if out.FleetDefeated {
			t.Fatalf("shot %d: FleetDefeated despite four ships undeployed", i)
		}
	}
	if !destroyer.Sunk() {
		t.Error("destroyer not sunk")
	}
	if board.AllSunk() {
		t.Error("AllSunk() true with four ships undeployed")
	}
}
