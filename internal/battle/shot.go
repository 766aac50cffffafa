package battle

// ShotLog records every coordinate one side has fired upon. No coordinate is
// ever recorded twice.
type ShotLog struct {
	fired map[Coord]bool
}

// NewShotLog creates an empty shot record.
func NewShotLog() *ShotLog {
	return &ShotLog{fired: make(map[Coord]bool)}
}

// Fired reports whether the coordinate has been fired upon.
func (l *ShotLog) Fired(c Coord) bool {
	return l.fired[c]
}

// Count returns the number of shots taken.
func (l *ShotLog) Count() int {
	return len(l.fired)
}

// record marks the coordinate as fired upon. Only Fire calls this.
func (l *ShotLog) record(c Coord) {
	l.fired[c] = true
}

// Result classifies a resolved shot.
type Result uint8

const (
	Miss Result = iota
	Hit
	Sunk
)

// String returns a human-readable name for the result.
func (r Result) String() string {
	switch r {
	case Hit:
		return "hit"
	case Sunk:
		return "sunk"
	default:
		return "miss"
	}
}

// Outcome is the result of resolving one shot.
type Outcome struct {
	Coord  Coord
	Result Result
	Ship   *Ship // struck ship, nil on a miss

	// FleetDefeated reports whether the fired-upon fleet is fully sunk.
	// It is evaluated after every shot, not only on a Sunk result.
	FleetDefeated bool
}

// Fire resolves one shot by the side owning the shot log against the board.
// It fails with ErrAlreadyFired, mutating nothing, when the coordinate was
// already targeted; otherwise it records the shot, registers any ship damage,
// and reports Miss, Hit, or Sunk.
func Fire(board *Board, shots *ShotLog, c Coord) (Outcome, error) {
	if !c.InBounds() {
		return Outcome{}, ErrOutOfBounds
	}
	if shots.Fired(c) {
		return Outcome{}, ErrAlreadyFired
	}
	shots.record(c)

	out := Outcome{Coord: c}
	if ship := board.Occupant(c); ship != nil {
		ship.RegisterHit(c)
		out.Ship = ship
		if ship.Sunk() {
			out.Result = Sunk
		} else {
			out.Result = Hit
		}
	}
	out.FleetDefeated = board.AllSunk()
	return out, nil
}
