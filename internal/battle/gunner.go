package battle

import "math/rand"

// Gunner is the computer opponent's targeting strategy: random search that
// degrades into a directed hunt around a confirmed hit. Pending leads live in
// a FIFO queue with a membership set for duplicate suppression. The heuristic
// is intentionally not optimal (no probability density, no parity restriction)
// so the opponent stays beatable.
type Gunner struct {
	rng    *rand.Rand
	queue  []Coord
	queued map[Coord]bool
}

// NewGunner creates a gunner in search mode.
func NewGunner(rng *rand.Rand) *Gunner {
	return &Gunner{
		rng:    rng,
		queued: make(map[Coord]bool),
	}
}

// Hunting reports whether the gunner has pending leads.
func (g *Gunner) Hunting() bool {
	return len(g.queue) > 0
}

// PickTarget selects the next coordinate to fire upon. Queued leads are
// popped front-first; entries independently fired upon since being queued are
// discarded. With no usable lead it samples uniformly among all unfired
// coordinates. ErrNoTargets means full-board exhaustion.
func (g *Gunner) PickTarget(shots *ShotLog) (Coord, error) {
	for len(g.queue) > 0 {
		c := g.queue[0]
		g.queue = g.queue[1:]
		delete(g.queued, c)
		if !shots.Fired(c) {
			return c, nil
		}
	}

	candidates := make([]Coord, 0, GridSize*GridSize-shots.Count())
	for r := 0; r < GridSize; r++ {
		for col := 0; col < GridSize; col++ {
			c := Coord{Row: r, Col: col}
			if !shots.Fired(c) {
				candidates = append(candidates, c)
			}
		}
	}
	if len(candidates) == 0 {
		return Coord{}, ErrNoTargets
	}
	return candidates[g.rng.Intn(len(candidates))], nil
}

// Observe updates the hunt state from a resolved shot. A non-sinking hit
// enqueues the in-bounds, unfired, unqueued orthogonal neighbors. A sink
// purges every queued lead on the sunk ship's cells; if that empties the
// queue the gunner reverts to search mode.
func (g *Gunner) Observe(out Outcome, shots *ShotLog) {
	switch out.Result {
	case Hit:
		for _, n := range out.Coord.Neighbors() {
			if !n.InBounds() || shots.Fired(n) || g.queued[n] {
				continue
			}
			g.queue = append(g.queue, n)
			g.queued[n] = true
		}
	case Sunk:
		if out.Ship != nil {
			g.purge(out.Ship)
		}
	}
}

// purge drops every queued coordinate belonging to the ship, removing from
// the queue and the membership set in lockstep.
func (g *Gunner) purge(ship *Ship) {
	kept := g.queue[:0]
	for _, c := range g.queue {
		if ship.Occupies(c) {
			delete(g.queued, c)
			continue
		}
		kept = append(kept, c)
	}
	g.queue = kept
}
