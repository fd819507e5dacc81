package match3

import (
	"reflect"
	"strings"
	"testing"
	"time"

	"github.com/vovakirdan/tui-match3/internal/config"
	"github.com/vovakirdan/tui-match3/internal/core"
	engine "github.com/vovakirdan/tui-match3/internal/match3"
)

func testConfig(seed int64) core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 24, TickRate: 60, Seed: seed}
}

func press(actions ...core.Action) core.InputFrame {
	in := core.NewInputFrame()
	for _, a := range actions {
		in.Set(a)
	}
	return in
}

// settle steps until the current playback has finished.
func settle(t *testing.T, g *Game) {
	t.Helper()
	for i := 0; g.playback.active(); i++ {
		if i > 10000 {
			t.Fatal("playback never finished")
		}
		g.Step(core.NewInputFrame())
	}
}

func TestResetBuildsStableBoard(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	snap := g.Snapshot()
	if snap.Size != 7 || snap.Palette != 6 {
		t.Errorf("size/palette = %d/%d, want 7/6", snap.Size, snap.Palette)
	}
	if len(snap.Rows) != 7 || len(snap.Rows[0]) != 7 {
		t.Fatalf("rows = %q", snap.Rows)
	}
	if snap.TimeLeft != 60*time.Second {
		t.Errorf("time left = %v, want 60s", snap.TimeLeft)
	}
	if len(g.board.ValidGroups()) != 0 {
		t.Error("fresh board has matches")
	}
	if _, ok := g.board.FindAPlay(); !ok {
		t.Error("fresh board has no legal move")
	}
}

func TestDeterministicGame(t *testing.T) {
	inputs := []core.InputFrame{
		press(core.ActionLeft),
		press(core.ActionUp),
		press(core.ActionHint),
		press(core.ActionSelect),
		press(core.ActionRight),
	}

	run := func() Snapshot {
		g := New()
		g.Reset(testConfig(42))
		for _, in := range inputs {
			g.Step(in)
		}
		for range 200 {
			g.Step(core.NewInputFrame())
		}
		return g.Snapshot()
	}

	a, b := run(), run()
	if !reflect.DeepEqual(a, b) {
		t.Errorf("same seed and input diverged:\n%+v\n%+v", a, b)
	}
}

func TestCursorStaysOnBoard(t *testing.T) {
	g := NewZen()
	g.Reset(testConfig(3))

	for range 20 {
		g.Step(press(core.ActionLeft))
		g.Step(press(core.ActionUp))
	}
	if g.cursor != engine.P(0, 0) {
		t.Errorf("cursor = %v, want (0,0)", g.cursor)
	}
	for range 20 {
		g.Step(press(core.ActionRight))
		g.Step(press(core.ActionDown))
	}
	if g.cursor != engine.P(6, 6) {
		t.Errorf("cursor = %v, want (6,6)", g.cursor)
	}
}

func TestSelectAndSwapScores(t *testing.T) {
	g := NewZen()
	g.Reset(testConfig(5))

	m, ok := g.resolver.Hint()
	if !ok {
		t.Fatal("no legal move")
	}
	g.cursor = m.A
	g.Step(press(core.ActionSelect))
	if !g.selected || g.selection != m.A {
		t.Fatalf("selection = %v (%v), want %v", g.selection, g.selected, m.A)
	}

	var dir core.Action
	switch d := m.B.Add(engine.P(-m.A.Col, -m.A.Row)); d {
	case engine.P(-1, 0):
		dir = core.ActionLeft
	case engine.P(1, 0):
		dir = core.ActionRight
	case engine.P(0, -1):
		dir = core.ActionUp
	default:
		dir = core.ActionDown
	}
	res := g.Step(press(dir))
	if res.Scored < m.Score() {
		t.Errorf("scored %d, want at least %d", res.Scored, m.Score())
	}
	if g.Snapshot().State != StateAnimating {
		t.Errorf("state = %v, want animating", g.Snapshot().State)
	}

	settle(t, g)
	if g.moves != 1 || g.score != res.Scored {
		t.Errorf("moves/score = %d/%d, want 1/%d", g.moves, g.score, res.Scored)
	}
}

func TestInvalidSwapCostsNothing(t *testing.T) {
	g := NewZen()
	g.Reset(testConfig(9))
	before := g.Snapshot().Rows

	var a, b engine.Point
	found := false
	for row := 0; row < 7 && !found; row++ {
		for col := 0; col < 6 && !found; col++ {
			a, b = engine.P(col, row), engine.P(col+1, row)
			found = !g.board.IsSwapValid(a, b)
		}
	}
	if !found {
		t.Skip("every horizontal swap matches on this board")
	}

	g.cursor = a
	g.Step(press(core.ActionSelect))
	res := g.Step(press(core.ActionRight))
	if res.Scored != 0 || g.moves != 0 {
		t.Errorf("invalid swap scored %d (moves %d)", res.Scored, g.moves)
	}
	settle(t, g)
	if after := g.Snapshot().Rows; !reflect.DeepEqual(before, after) {
		t.Errorf("invalid swap changed the board:\n%q\n%q", before, after)
	}
}

func TestHintHalvesNextMove(t *testing.T) {
	plain := NewZen()
	plain.Reset(testConfig(11))
	hinted := NewZen()
	hinted.Reset(testConfig(11))

	hinted.Step(press(core.ActionHint))
	if hinted.hint == nil || !hinted.hintPending {
		t.Fatal("hint not shown")
	}

	m, _ := plain.resolver.Hint()
	full := plain.play(m.A, m.B)
	half := hinted.play(m.A, m.B)

	turnDiff := full - half
	if want := m.Score() - m.Score()/2; turnDiff != want {
		t.Errorf("hint penalty = %d, want %d (full %d, hinted %d)", turnDiff, want, full, half)
	}
	if hinted.hintPending {
		t.Error("penalty should apply only once")
	}
}

func TestTimeAttackRunsOut(t *testing.T) {
	g := New()
	cfg := config.DefaultMatch3Config()
	cfg.Timer.InitialSeconds = 1
	g.SetConfig(cfg)
	g.Reset(testConfig(2))

	for range 59 {
		g.Step(core.NewInputFrame())
	}
	if g.State().GameOver {
		t.Fatal("game ended early")
	}
	g.Step(core.NewInputFrame())
	if !g.State().GameOver {
		t.Error("game should end when the clock reaches zero")
	}
	if g.TimeLeft() != 0 {
		t.Errorf("time left = %v, want 0", g.TimeLeft())
	}
}

func TestTimeBonus(t *testing.T) {
	g := New()
	g.Reset(testConfig(4))

	m, _ := g.resolver.Hint()
	before := g.TimeLeft()
	gained := g.play(m.A, m.B)
	if want := before + time.Duration(gained)*100*time.Millisecond; g.TimeLeft() != want {
		t.Errorf("time left = %v, want %v", g.TimeLeft(), want)
	}
}

func TestZenHasNoClock(t *testing.T) {
	g := NewZen()
	g.Reset(testConfig(2))
	for range 600 {
		g.Step(core.NewInputFrame())
	}
	if g.State().GameOver || g.TimeLeft() != 60*time.Second {
		t.Error("zen mode should not run a clock")
	}
}

func TestAutoplayScores(t *testing.T) {
	g := NewZen()
	g.Reset(testConfig(8))

	g.Step(press(core.ActionAuto))
	for range 2000 {
		g.Step(core.NewInputFrame())
	}
	if g.moves == 0 || g.score == 0 {
		t.Errorf("autoplay made %d moves for %d points", g.moves, g.score)
	}

	settle(t, g)
	g.Step(press(core.ActionAuto))
	settle(t, g)
	moves := g.moves
	for range 200 {
		g.Step(core.NewInputFrame())
	}
	if g.moves != moves {
		t.Error("autoplay kept going after being turned off")
	}
}

func TestConfigureBoardSize(t *testing.T) {
	g := New()
	if err := g.Configure(9, "hard"); err != nil {
		t.Fatalf("Configure: %v", err)
	}
	if err := g.SetBoardSize(4); err == nil {
		t.Error("size 4 is not offered and should be rejected")
	}
	g.Reset(testConfig(1))

	snap := g.Snapshot()
	if snap.Size != 9 || snap.Palette != 8 {
		t.Errorf("size/palette = %d/%d, want 9/8", snap.Size, snap.Palette)
	}
	if g.ScoreKey() != "9x9" {
		t.Errorf("ScoreKey() = %q", g.ScoreKey())
	}
	if g.TimeLeft() != 45*time.Second {
		t.Errorf("hard preset time = %v, want 45s", g.TimeLeft())
	}
}

func TestPauseFreezesClock(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.Step(press(core.ActionPause))
	left := g.TimeLeft()
	for range 120 {
		g.Step(core.NewInputFrame())
	}
	if g.TimeLeft() != left {
		t.Error("clock ran while paused")
	}
	if g.Snapshot().State != StatePaused {
		t.Errorf("state = %v, want paused", g.Snapshot().State)
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))

	s := core.NewScreen(80, 24)
	g.Render(s)
	out := s.String()
	if !strings.Contains(out, "Time Attack") || !strings.Contains(out, "Score: 0") {
		t.Errorf("HUD missing from render:\n%s", out)
	}
	if !strings.Contains(out, "[") {
		t.Error("cursor not drawn")
	}
}

func TestGameOverShowsHighScore(t *testing.T) {
	g := New()
	g.Reset(testConfig(1))
	g.gameOver = true

	s := core.NewScreen(80, 24)
	g.Render(s)
	if strings.Contains(s.String(), "New high score") {
		t.Error("high score shown before one was reported")
	}

	g.SetHighScore(2)
	g.Render(s)
	out := s.String()
	if !strings.Contains(out, "New high score, rank 2 on 7x7") {
		t.Errorf("high score missing from game over:\n%s", out)
	}
	if !strings.Contains(out, "R restart") {
		t.Error("restart hint pushed off the overlay")
	}

	g.Reset(testConfig(2))
	if g.highRank != 0 {
		t.Error("Reset should forget the last round's rank")
	}
}

func TestTooSmallScreen(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 8, TickRate: 60, Seed: 1})

	if g.Snapshot().State != StatePausedSmall {
		t.Errorf("state = %v, want paused_small_window", g.Snapshot().State)
	}
	s := core.NewScreen(20, 8)
	g.Render(s)
	if !strings.Contains(s.String(), "too small") {
		t.Error("too small message missing")
	}
}
