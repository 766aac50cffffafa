package battle

import (
	"strings"
	"testing"

	"github.com/vovakirdan/tui-battleship/internal/core"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{
		Seed:     seed,
		ScreenW:  80,
		ScreenH:  24,
		TickRate: 30,
	}
}

// stepAction runs one tick with a single action set.
func stepAction(g *Game, a core.Action) {
	input := core.NewInputFrame()
	if a != core.ActionNone {
		input.Set(a)
	}
	g.Step(input)
}

// waitForPlayerTurn runs empty ticks until the computer has replied. The
// bound covers any configured reply delay.
func waitForPlayerTurn(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; i < 200; i++ {
		if g.playerTurn || g.phase == PhaseOver {
			return
		}
		stepAction(g, core.ActionNone)
	}
	t.Fatal("computer never replied")
}

func TestDeterminism(t *testing.T) {
	// Two games with the same seed and input script must stay identical
	cfg := testConfig(12345)

	g1 := New()
	g1.Reset(cfg)
	g2 := New()
	g2.Reset(cfg)

	script := func(i int) core.Action {
		switch {
		case i == 0:
			return core.ActionAuto // deploy both fleets
		case i%30 == 5:
			return core.ActionConfirm // fire
		case i%30 == 10:
			return core.ActionRight // walk the cursor
		case i%30 == 15:
			return core.ActionDown
		default:
			return core.ActionNone
		}
	}

	input := core.NewInputFrame()
	for i := 0; i < 600; i++ {
		input.Clear()
		if a := script(i); a != core.ActionNone {
			input.Set(a)
		}
		g1.Step(input)
		g2.Step(input)
	}

	snap1 := g1.Snapshot()
	snap2 := g2.Snapshot()
	if snap1 != snap2 {
		t.Errorf("snapshots diverged:\n%+v\n%+v", snap1, snap2)
	}
	if snap1.PlayerShots == 0 {
		t.Error("script fired no shots; test exercises nothing")
	}
}

func TestResetState(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	if g.phase != PhasePlacement {
		t.Errorf("phase after Reset = %v, want placement", g.phase)
	}
	if g.placer.Current() == nil || g.placer.Current().Name != "Carrier" {
		t.Error("placement does not start with the Carrier")
	}
	if !strings.Contains(g.message, "Carrier") {
		t.Errorf("initial message %q does not prompt for the Carrier", g.message)
	}
	if g.score != 0 || g.won || g.lost {
		t.Error("fresh game carries stale outcome state")
	}
	if g.State().GameOver {
		t.Error("fresh game reports GameOver")
	}
}

func TestManualPlacementFlow(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	// Place all five ships on even rows, anchored at column 0
	for i := 0; i < len(Classes); i++ {
		g.cursor = Coord{Row: i * 2, Col: 0}
		stepAction(g, core.ActionConfirm)
	}

	if g.phase != PhaseBattle {
		t.Fatalf("phase after five placements = %v, want battle", g.phase)
	}
	if !g.playerBoard.Fleet().Placed() {
		t.Error("player fleet not fully placed")
	}
	if !g.enemyBoard.Fleet().Placed() {
		t.Error("enemy fleet not auto-deployed at battle start")
	}
	if !g.playerTurn {
		t.Error("battle does not open on the player's turn")
	}
}

func TestPlacementRejectionMessages(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	// Carrier at column 8 runs off the board
	g.cursor = Coord{Row: 0, Col: 8}
	stepAction(g, core.ActionConfirm)
	if g.phase != PhasePlacement {
		t.Fatal("rejected placement advanced the phase")
	}
	if !strings.Contains(g.message, "off the board") {
		t.Errorf("out-of-bounds message = %q", g.message)
	}

	// Legal Carrier placement, then overlap it with the Battleship
	g.cursor = Coord{Row: 0, Col: 0}
	stepAction(g, core.ActionConfirm)
	if !strings.Contains(g.message, "Battleship") {
		t.Errorf("next-ship prompt = %q, want Battleship", g.message)
	}

	g.cursor = Coord{Row: 0, Col: 2}
	stepAction(g, core.ActionConfirm)
	if !strings.Contains(g.message, "overlap") {
		t.Errorf("overlap message = %q", g.message)
	}
	if g.placer.Current().Name != "Battleship" {
		t.Error("rejected placement advanced to the next ship")
	}
}

func TestRotateTogglesOrientation(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	if g.orient != Horizontal {
		t.Fatalf("initial orientation = %v, want horizontal", g.orient)
	}
	stepAction(g, core.ActionRotate)
	if g.orient != Vertical {
		t.Errorf("orientation after rotate = %v, want vertical", g.orient)
	}
	stepAction(g, core.ActionRotate)
	if g.orient != Horizontal {
		t.Errorf("orientation after second rotate = %v, want horizontal", g.orient)
	}
}

func TestAutoDeployStartsBattle(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))

	stepAction(g, core.ActionAuto)

	if g.phase != PhaseBattle {
		t.Fatalf("phase after auto-deploy = %v, want battle", g.phase)
	}
	if !g.playerBoard.Fleet().Placed() || !g.enemyBoard.Fleet().Placed() {
		t.Error("auto-deploy left a fleet incomplete")
	}
}

func TestRepeatShotReprompts(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	stepAction(g, core.ActionAuto)

	g.cursor = Coord{Row: 0, Col: 0}
	stepAction(g, core.ActionConfirm)
	if g.playerShots.Count() != 1 {
		t.Fatalf("shot count = %d, want 1", g.playerShots.Count())
	}
	waitForPlayerTurn(t, g)
	if g.phase == PhaseOver {
		t.Skip("game ended on the opening exchange")
	}

	// Same coordinate again: re-prompt, no shot spent, turn kept
	g.cursor = Coord{Row: 0, Col: 0}
	stepAction(g, core.ActionConfirm)
	if g.playerShots.Count() != 1 {
		t.Error("repeat shot was recorded")
	}
	if !strings.Contains(g.message, "already fired") {
		t.Errorf("repeat-shot message = %q", g.message)
	}
	if !g.playerTurn {
		t.Error("repeat shot ceded the turn to the computer")
	}
}

func TestTurnAlternation(t *testing.T) {
	g := New()
	g.Reset(testConfig(7))
	stepAction(g, core.ActionAuto)

	g.cursor = Coord{Row: 4, Col: 4}
	stepAction(g, core.ActionConfirm)
	if g.phase == PhaseOver {
		t.Skip("game ended on the opening exchange")
	}
	if g.playerTurn {
		t.Fatal("player kept the turn after a resolved shot")
	}
	if g.enemyShots.Count() != 0 {
		t.Fatal("computer fired during its pacing delay")
	}

	waitForPlayerTurn(t, g)
	if g.enemyShots.Count() != 1 {
		t.Errorf("computer shot count = %d, want 1", g.enemyShots.Count())
	}
}

func TestPauseFreezesPlay(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	stepAction(g, core.ActionAuto)

	stepAction(g, core.ActionPause)
	if !g.paused {
		t.Fatal("pause action did not pause")
	}
	if !g.State().Paused {
		t.Error("State() does not report paused")
	}

	// Fire while paused: nothing happens
	g.cursor = Coord{Row: 0, Col: 0}
	stepAction(g, core.ActionConfirm)
	if g.playerShots.Count() != 0 {
		t.Error("shot resolved while paused")
	}

	stepAction(g, core.ActionPause)
	if g.paused {
		t.Error("second pause action did not resume")
	}
}

func TestRestartAfterGameOver(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	stepAction(g, core.ActionAuto)

	g.phase = PhaseOver
	g.won = true
	g.score = 99

	stepAction(g, core.ActionRestart)
	if g.phase != PhasePlacement {
		t.Errorf("phase after restart = %v, want placement", g.phase)
	}
	if g.score != 0 || g.won {
		t.Error("restart carried over the previous outcome")
	}

	// Restart is ignored mid-game
	stepAction(g, core.ActionAuto)
	stepAction(g, core.ActionRestart)
	if g.phase != PhaseBattle {
		t.Error("restart action interrupted a running game")
	}
}

// Plays a full match by sweeping the cursor across every coordinate. The
// sweep covers the whole board, so one side must lose within 100 exchanges.
func TestFullMatchEnds(t *testing.T) {
	g := New()
	g.Reset(testConfig(2024))
	stepAction(g, core.ActionAuto)

sweep:
	for row := 0; row < GridSize; row++ {
		for col := 0; col < GridSize; col++ {
			g.cursor = Coord{Row: row, Col: col}
			stepAction(g, core.ActionConfirm)
			waitForPlayerTurn(t, g)
			if g.phase == PhaseOver {
				break sweep
			}
		}
	}

	if g.phase != PhaseOver {
		t.Fatal("match did not end after sweeping the full board")
	}
	if g.won == g.lost {
		t.Fatalf("won=%v lost=%v, want exactly one", g.won, g.lost)
	}
	if !g.State().GameOver {
		t.Error("State() does not report game over")
	}
	if g.won {
		if g.enemyBoard.Fleet().SunkCount() != len(Classes) {
			t.Error("victory without the full enemy fleet sunk")
		}
		if g.score <= 0 {
			t.Error("victory with a non-positive score")
		}
	} else {
		if g.playerBoard.Fleet().SunkCount() != len(Classes) {
			t.Error("defeat without the full player fleet sunk")
		}
	}
}

func TestRenderSmoke(t *testing.T) {
	g := New()
	g.Reset(testConfig(42))
	screen := core.NewScreen(80, 24)

	g.Render(screen)
	out := screen.String()
	if !strings.Contains(out, "YOUR FLEET") {
		t.Error("placement render missing the player board title")
	}
	if !strings.Contains(out, "Carrier") {
		t.Error("placement render missing the ship prompt")
	}

	stepAction(g, core.ActionAuto)
	g.Render(screen)
	out = screen.String()
	if !strings.Contains(out, "ENEMY WATERS") {
		t.Error("battle render missing the enemy board title")
	}
	if !strings.Contains(out, "Destroyer") {
		t.Error("battle render missing the ship status list")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{Seed: 1, ScreenW: 40, ScreenH: 12, TickRate: 30})

	if !g.tooSmall {
		t.Fatal("40x12 screen not flagged too small")
	}

	// Input is ignored until the window grows
	stepAction(g, core.ActionConfirm)
	if g.playerBoard.Fleet()[0].Placed() {
		t.Error("placement resolved on a too-small screen")
	}

	screen := core.NewScreen(40, 12)
	g.Render(screen)
	if !strings.Contains(screen.String(), "too small") {
		t.Error("too-small overlay not rendered")
	}
}
