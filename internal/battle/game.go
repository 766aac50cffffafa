package battle

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/vovakirdan/tui-battleship/internal/config"
	"github.com/vovakirdan/tui-battleship/internal/core"
	"github.com/vovakirdan/tui-battleship/internal/registry"
)

// Phase is the game's lifecycle stage.
type Phase uint8

const (
	PhasePlacement Phase = iota
	PhaseBattle
	PhaseOver
)

// String returns a human-readable name for the phase.
func (p Phase) String() string {
	switch p {
	case PhaseBattle:
		return "battle"
	case PhaseOver:
		return "over"
	default:
		return "placement"
	}
}

// sunkShipBonus is added to the score for each enemy ship sunk, on top of
// the per-hit point.
const sunkShipBonus = 10

// Game implements the human-vs-computer Battleship game. Exactly one side
// acts at a time: the computer's reply is delayed a few ticks purely for
// presentation pacing and has no effect on game-state ordering.
type Game struct {
	cfg  config.BattleshipConfig
	rng  *rand.Rand
	tick uint64

	playerBoard *Board // player's fleet, fired at by the computer
	enemyBoard  *Board // computer's fleet, fired at by the player
	placer      *Placer
	playerShots *ShotLog
	enemyShots  *ShotLog
	gunner      *Gunner

	phase      Phase
	cursor     Coord
	orient     Orientation
	message    string
	playerTurn bool
	enemyDelay int // ticks until the computer's reply lands
	won        bool
	lost       bool
	paused     bool
	tooSmall   bool
	score      int

	screenW int
	screenH int
}

// Package-level config path, set by the CLI before game creation.
var configPath string

// SetConfigPath sets the config file path for subsequent games.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new Battleship game.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("battleship", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "battleship"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Battleship"
}

// Reset initializes/restarts the game. All boards, fleets, shot records, and
// the gunner are recreated from scratch.
func (g *Game) Reset(cfg core.RuntimeConfig) {
	gameCfg, err := config.LoadBattleship(configPath)
	if err != nil {
		gameCfg = config.DefaultBattleshipConfig()
	}
	if gameCfg.Pacing.EnemyDelayTicks < 0 {
		gameCfg.Pacing.EnemyDelayTicks = 0
	}
	g.cfg = gameCfg
	g.rng = rand.New(rand.NewSource(cfg.Seed))
	g.tick = 0
	g.screenW = cfg.ScreenW
	g.screenH = cfg.ScreenH
	g.tooSmall = cfg.ScreenW < minScreenW || cfg.ScreenH < minScreenH

	g.playerBoard = NewBoard(NewFleet())
	g.enemyBoard = NewBoard(NewFleet())
	g.placer = NewPlacer(g.playerBoard)
	g.playerShots = NewShotLog()
	g.enemyShots = NewShotLog()
	g.gunner = NewGunner(g.rng)

	g.phase = PhasePlacement
	g.cursor = Coord{Row: GridSize / 2, Col: GridSize / 2}
	g.orient = Horizontal
	g.playerTurn = true
	g.enemyDelay = 0
	g.won = false
	g.lost = false
	g.paused = false
	g.score = 0
	g.message = fmt.Sprintf("Deploy your %s (length %d).", g.placer.Current().Name, g.placer.Current().Length)
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	g.tick++

	if input.Has(core.ActionRestart) && g.phase == PhaseOver {
		g.Reset(core.RuntimeConfig{
			Seed:    g.rng.Int63(),
			ScreenW: g.screenW,
			ScreenH: g.screenH,
		})
		return core.StepResult{State: g.State()}
	}

	if input.Has(core.ActionPause) && g.phase != PhaseOver {
		g.paused = !g.paused
	}

	if g.phase == PhaseOver || g.paused || g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	g.moveCursor(input)

	switch g.phase {
	case PhasePlacement:
		g.stepPlacement(input)
	case PhaseBattle:
		g.stepBattle(input)
	}

	return core.StepResult{State: g.State()}
}

// moveCursor applies directional input, clamped to the grid.
func (g *Game) moveCursor(input core.InputFrame) {
	switch {
	case input.Has(core.ActionUp):
		g.cursor.Row = core.Clamp(g.cursor.Row-1, 0, GridSize-1)
	case input.Has(core.ActionDown):
		g.cursor.Row = core.Clamp(g.cursor.Row+1, 0, GridSize-1)
	case input.Has(core.ActionLeft):
		g.cursor.Col = core.Clamp(g.cursor.Col-1, 0, GridSize-1)
	case input.Has(core.ActionRight):
		g.cursor.Col = core.Clamp(g.cursor.Col+1, 0, GridSize-1)
	}
}

// stepPlacement handles one tick of the fleet deployment phase.
func (g *Game) stepPlacement(input core.InputFrame) {
	if input.Has(core.ActionRotate) {
		g.orient = g.orient.Toggle()
	}

	if input.Has(core.ActionAuto) {
		g.placer.AutoPlace(g.rng)
		g.startBattle()
		return
	}

	if !input.Has(core.ActionConfirm) {
		return
	}

	ship := g.placer.Current()
	if err := g.placer.Place(g.cursor, g.orient); err != nil {
		g.message = placementError(ship, err)
		return
	}
	if g.placer.Complete() {
		g.startBattle()
		return
	}
	next := g.placer.Current()
	g.message = fmt.Sprintf("%s deployed. Next: %s (length %d).", ship.Name, next.Name, next.Length)
}

// placementError turns a placement failure into a status line.
func placementError(ship *Ship, err error) string {
	switch {
	case errors.Is(err, ErrOutOfBounds):
		return fmt.Sprintf("Your %s would run off the board.", ship.Name)
	case errors.Is(err, ErrOverlap):
		return "Ships cannot overlap."
	default:
		return err.Error()
	}
}

// startBattle deploys the enemy fleet and opens fire.
func (g *Game) startBattle() {
	NewPlacer(g.enemyBoard).AutoPlace(g.rng)
	g.phase = PhaseBattle
	g.playerTurn = true
	g.cursor = Coord{Row: GridSize / 2, Col: GridSize / 2}
	g.message = "Enemy fleet deployed. Fire at will!"
}

// stepBattle handles one tick of the firing phase.
func (g *Game) stepBattle(input core.InputFrame) {
	if g.playerTurn {
		if input.Has(core.ActionConfirm) {
			g.playerFire()
		}
		return
	}

	// Computer's reply, delayed for pacing only.
	if g.enemyDelay > 0 {
		g.enemyDelay--
		return
	}
	g.enemyFire()
}

// playerFire resolves the player's shot at the cursor.
func (g *Game) playerFire() {
	out, err := Fire(g.enemyBoard, g.playerShots, g.cursor)
	if err != nil {
		// Re-prompt: only ErrAlreadyFired can happen for an on-grid cursor.
		g.message = fmt.Sprintf("You already fired at %s. Pick another target.", FormatCoord(g.cursor))
		return
	}

	switch out.Result {
	case Miss:
		g.message = fmt.Sprintf("%s... Miss.", FormatCoord(out.Coord))
	case Hit:
		g.score++
		g.message = fmt.Sprintf("%s... Hit! Enemy %s was struck.", FormatCoord(out.Coord), out.Ship.Name)
	case Sunk:
		g.score += 1 + sunkShipBonus
		g.message = fmt.Sprintf("%s... You sank the enemy %s!", FormatCoord(out.Coord), out.Ship.Name)
	}

	if out.FleetDefeated {
		g.won = true
		g.phase = PhaseOver
		// Reward efficient play: one point per coordinate never fired upon.
		g.score += GridSize*GridSize - g.playerShots.Count()
		g.message = "All enemy ships have been sunk. Victory!"
		return
	}

	g.playerTurn = false
	g.enemyDelay = g.cfg.Pacing.EnemyDelayTicks
}

// enemyFire runs the computer's turn: pick a target, fire, update the hunt.
func (g *Game) enemyFire() {
	target, err := g.gunner.PickTarget(g.enemyShots)
	if err != nil {
		// Full-board exhaustion; the game should already be decided.
		g.playerTurn = true
		return
	}

	out, err := Fire(g.playerBoard, g.enemyShots, target)
	if err != nil {
		// The gunner filters fired coordinates, so this cannot happen;
		// retry next tick rather than corrupt the turn order.
		return
	}
	g.gunner.Observe(out, g.enemyShots)

	switch out.Result {
	case Miss:
		g.message = fmt.Sprintf("Enemy fires at %s... it splashes into the sea.", FormatCoord(out.Coord))
	case Hit:
		g.message = fmt.Sprintf("Enemy fires at %s... your %s is hit!", FormatCoord(out.Coord), out.Ship.Name)
	case Sunk:
		g.message = fmt.Sprintf("Enemy fires at %s... your %s went down!", FormatCoord(out.Coord), out.Ship.Name)
	}

	if out.FleetDefeated {
		g.lost = true
		g.phase = PhaseOver
		g.message = "Your fleet has been destroyed. Defeat."
		return
	}

	g.playerTurn = true
}

// spanLegal reports whether the span could be committed to the player board
// as-is. Used for the placement ghost preview.
func (g *Game) spanLegal(span []Coord) bool {
	for _, c := range span {
		if !c.InBounds() || g.playerBoard.Occupant(c) != nil {
			return false
		}
	}
	return true
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseOver,
		Paused:   g.paused,
	}
}
