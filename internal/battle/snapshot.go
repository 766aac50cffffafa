package battle

// Snapshot contains the observable game state in primitive types, for
// determinism tests and the platform's battle reports.
type Snapshot struct {
	Tick        uint64
	Phase       string
	CursorRow   int
	CursorCol   int
	PlayerTurn  bool
	PlayerShots int
	EnemyShots  int
	PlayerSunk  int // player ships lost
	EnemySunk   int // enemy ships sunk
	HuntQueue   int // pending gunner leads
	Score       int
	Won         bool
	Lost        bool
}

// Snapshot returns the current game state as a Snapshot.
func (g *Game) Snapshot() Snapshot {
	return Snapshot{
		Tick:        g.tick,
		Phase:       g.phase.String(),
		CursorRow:   g.cursor.Row,
		CursorCol:   g.cursor.Col,
		PlayerTurn:  g.playerTurn,
		PlayerShots: g.playerShots.Count(),
		EnemyShots:  g.enemyShots.Count(),
		PlayerSunk:  g.playerBoard.Fleet().SunkCount(),
		EnemySunk:   g.enemyBoard.Fleet().SunkCount(),
		HuntQueue:   len(g.gunner.queue),
		Score:       g.score,
		Won:         g.won,
		Lost:        g.lost,
	}
}
