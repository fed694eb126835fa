package platformer

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/google/uuid"

	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

const pitLevel = `
id: "0-pit"
name: "Pit"
background: level_1
maps:
  - { start_x: 0, end_x: 1000, player_x: 110, player_y: 538 }
ground:
  - { x: 600, y: 538, width: 400, height: 62 }
`

const goalLevel = `
id: "0-goal"
name: "Goal"
background: level_1
maps:
  - { start_x: 0, end_x: 1000, player_x: 110, player_y: 538 }
ground:
  - { x: 0, y: 538, width: 1000, height: 62 }
checkpoint:
  - { x: 100, y: 0, width: 50, height: 600, type: 1 }
`

func testRuntime() core.RuntimeConfig {
	return core.RuntimeConfig{ScreenW: 80, ScreenH: 31, TickRate: 60, Seed: 1}
}

// withLevels points the package at a directory holding the given level
// files. Settings are restored after the test.
func withLevels(t *testing.T, files map[string]string) {
	t.Helper()
	dir := t.TempDir()
	for name, body := range files {
		if err := os.WriteFile(filepath.Join(dir, name), []byte(body), 0o644); err != nil {
			t.Fatalf("WriteFile failed: %v", err)
		}
	}
	SetLevelsDir(dir)
	t.Cleanup(func() {
		SetLevelsDir("")
		SetDifficultyPreset("")
	})
}

func newAt(levelID string) *Game {
	g := New()
	g.SetStart(levelID)
	return g
}

// stepUntil steps g with empty input until cond holds or n ticks pass.
func stepUntil(g *Game, n int, cond func() bool) bool {
	for i := 0; i < n; i++ {
		if cond() {
			return true
		}
		g.Step(core.NewInputFrame())
	}
	return cond()
}

func TestReset(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if g.Phase() != StateLoading {
		t.Errorf("Phase() = %s, expected %s", g.Phase(), StateLoading)
	}
	if g.Info().Lives != 3 {
		t.Errorf("Lives = %d, expected 3", g.Info().Lives)
	}
	if _, err := uuid.Parse(g.RunID()); err != nil {
		t.Errorf("RunID %q is not a UUID: %v", g.RunID(), err)
	}
	d, ok := g.CurrentLevel()
	if !ok || d.ID != "1-1" {
		t.Errorf("CurrentLevel() = %q, expected 1-1", d.ID)
	}
	if g.Level() != nil {
		t.Error("no level should run during the intro card")
	}
}

func TestResetFailsOnBadLevelsDir(t *testing.T) {
	withLevels(t, map[string]string{"broken.yaml": "id: [unclosed\n"})
	g := New()
	g.Reset(testRuntime())

	if g.Phase() != StateGameOver {
		t.Errorf("Phase() = %s, expected %s", g.Phase(), StateGameOver)
	}
	if _, ok := g.CurrentLevel(); ok {
		t.Error("no level should be selected after a failed load")
	}
	if g.Step(core.NewInputFrame()); g.Level() != nil {
		t.Error("no level should start after a failed load")
	}

	screen := core.NewScreen(80, 31)
	g.Render(screen)
	if !strings.Contains(screen.String(), "NO LEVELS") {
		t.Error("a failed load should show the error box")
	}
}

func TestLoadingStartsLevel(t *testing.T) {
	g := New()
	g.Reset(testRuntime())

	if !stepUntil(g, 200, func() bool { return g.Phase() == StatePlaying }) {
		t.Fatalf("Phase() = %s, expected playing", g.Phase())
	}
	if g.Level() == nil || g.Level().ID() != "1-1" {
		t.Fatal("level 1-1 should be running")
	}
}

func TestLevelClockFollowsTicks(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	stepUntil(g, 200, func() bool { return g.Phase() == StatePlaying })

	for i := 0; i < 60; i++ {
		g.Step(core.NewInputFrame())
	}
	if got := g.Level().Now(); got != 1000 {
		t.Errorf("Now() after 60 ticks = %d, expected 1000", got)
	}
}

func TestPauseToggle(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	stepUntil(g, 200, func() bool { return g.Phase() == StatePlaying })

	g.Step(core.InputOf(core.ActionPause))
	if !g.State().Paused {
		t.Fatal("game should be paused")
	}
	now := g.Level().Now()
	g.Step(core.InputOf(core.ActionRight))
	if g.Level().Now() != now {
		t.Error("paused game should not advance")
	}

	g.Step(core.InputOf(core.ActionPause))
	if g.State().Paused {
		t.Error("game should resume")
	}
}

func TestDeathReportsRunAndReloads(t *testing.T) {
	withLevels(t, map[string]string{"pit.yaml": pitLevel})

	var runs []RunResult
	g := newAt("0-pit")
	g.SetReporter(func(r RunResult) { runs = append(runs, r) })
	g.Reset(testRuntime())

	stepUntil(g, 200, func() bool { return g.Phase() == StatePlaying })
	if !stepUntil(g, 400, func() bool { return len(runs) > 0 }) {
		t.Fatal("death should report a run")
	}

	r := runs[0]
	if r.LevelID != "0-pit" || r.Outcome != string(sim.NextLoadScreen) || r.Lives != 2 {
		t.Errorf("run = %+v, expected 0-pit load_screen with 2 lives", r)
	}
	if r.RunID != g.RunID() {
		t.Errorf("RunID = %q, expected %q", r.RunID, g.RunID())
	}
	if g.Phase() != StateLoading {
		t.Errorf("Phase() = %s, expected loading", g.Phase())
	}
	if d, _ := g.CurrentLevel(); d.ID != "0-pit" {
		t.Errorf("CurrentLevel() = %q, expected the same level", d.ID)
	}
}

func TestGameOverAndRestart(t *testing.T) {
	withLevels(t, map[string]string{"pit.yaml": pitLevel})
	SetDifficultyPreset("hard")

	g := newAt("0-pit")
	g.Reset(testRuntime())
	firstRun := g.RunID()
	if g.Info().Lives != 1 {
		t.Fatalf("Lives = %d, expected 1 on hard", g.Info().Lives)
	}

	if !stepUntil(g, 600, func() bool { return g.State().GameOver }) {
		t.Fatalf("Phase() = %s, expected game over", g.Phase())
	}
	if g.Phase() != StateGameOver {
		t.Errorf("Phase() = %s, expected %s", g.Phase(), StateGameOver)
	}

	g.Step(core.InputOf(core.ActionRestart))
	if g.Phase() != StateLoading {
		t.Errorf("Phase() after restart = %s, expected loading", g.Phase())
	}
	if g.RunID() == firstRun {
		t.Error("restart should start a new run")
	}
}

func TestGoalAdvancesLevel(t *testing.T) {
	withLevels(t, map[string]string{"goal.yaml": goalLevel})

	var runs []RunResult
	g := newAt("0-goal")
	g.SetReporter(func(r RunResult) { runs = append(runs, r) })
	g.Reset(testRuntime())

	stepUntil(g, 200, func() bool { return g.Phase() == StatePlaying })
	g.Step(core.NewInputFrame())

	if len(runs) != 1 || runs[0].Outcome != string(sim.NextLevelClear) {
		t.Fatalf("runs = %+v, expected one level_clear", runs)
	}
	if g.Phase() != StateLoading {
		t.Errorf("Phase() = %s, expected loading", g.Phase())
	}
	if d, _ := g.CurrentLevel(); d.ID != "1-1" {
		t.Errorf("CurrentLevel() = %q, expected 1-1", d.ID)
	}
}

func TestDeterminism(t *testing.T) {
	inputs := make([]core.InputFrame, 900)
	for i := range inputs {
		inputs[i] = core.NewInputFrame()
		if i%150 < 120 {
			inputs[i].Set(core.ActionRight)
		}
		if i%45 < 20 {
			inputs[i].Set(core.ActionJump)
		}
		if i%100 < 30 {
			inputs[i].Set(core.ActionRun)
		}
	}

	run := func() []uint64 {
		g := New()
		g.Reset(testRuntime())
		var hashes []uint64
		for _, in := range inputs {
			g.Step(in)
			if g.Level() == nil {
				continue
			}
			h, err := g.Hash()
			if err != nil {
				t.Fatalf("Hash failed: %v", err)
			}
			hashes = append(hashes, h)
		}
		return hashes
	}

	h1, h2 := run(), run()
	if len(h1) == 0 || len(h1) != len(h2) {
		t.Fatalf("hash counts = %d and %d", len(h1), len(h2))
	}
	for i := range h1 {
		if h1[i] != h2[i] {
			t.Fatalf("tick %d: hashes differ %x != %x", i, h1[i], h2[i])
		}
	}
}

func TestRender(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	screen := core.NewScreen(80, 31)

	g.Render(screen)
	if !strings.Contains(screen.Row(0), "SCORE 000000") {
		t.Errorf("HUD = %q, expected score", screen.Row(0))
	}
	if !strings.Contains(screen.Row(0), "LIVES 3") {
		t.Errorf("HUD = %q, expected lives", screen.Row(0))
	}
	if !strings.Contains(screen.String(), "World 1-1") {
		t.Error("intro card should show the level name")
	}

	stepUntil(g, 200, func() bool { return g.Phase() == StatePlaying })
	g.Render(screen)
	// Ground fills the bottom row of the 600px world.
	if !strings.ContainsRune(screen.Row(30), GroundChar) {
		t.Errorf("row 30 = %q, expected ground", screen.Row(30))
	}
	if !strings.ContainsRune(screen.String(), PlayerHeadR) {
		t.Error("player should be drawn facing right")
	}
}

func TestGlyph(t *testing.T) {
	tests := []struct {
		item     sim.DrawItem
		expected rune
	}{
		{sim.DrawItem{Kind: sim.ItemGround}, GroundChar},
		{sim.DrawItem{Kind: sim.ItemBox}, BoxChar},
		{sim.DrawItem{Kind: sim.ItemBox, State: "open"}, UsedBlockChar},
		{sim.DrawItem{Kind: sim.ItemKoopa, State: "slide"}, ShellChar},
		{sim.DrawItem{Kind: sim.ItemFireball, State: "boom"}, BoomChar},
		{sim.DrawItem{Kind: sim.ItemCheckpoint}, ' '},
	}

	for _, tt := range tests {
		if got, _ := glyph(tt.item); got != tt.expected {
			t.Errorf("glyph(%s/%q) = %q, expected %q", tt.item.Kind, tt.item.State, got, tt.expected)
		}
	}
}

func TestRenderTooSmall(t *testing.T) {
	g := New()
	g.Reset(core.RuntimeConfig{ScreenW: 20, ScreenH: 10, TickRate: 60})
	screen := core.NewScreen(20, 10)
	g.Render(screen)

	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("small screen should show a warning")
	}
	res := g.Step(core.InputOf(core.ActionRight))
	if res.State.GameOver {
		t.Error("small screen should not end the game")
	}
}

func TestRegistered(t *testing.T) {
	g, err := registry.CreateAt(GameID, "1-2")
	if err != nil {
		t.Fatalf("CreateAt() failed: %v", err)
	}
	if g.ID() != GameID {
		t.Errorf("ID() = %q, expected %q", g.ID(), GameID)
	}

	g.Reset(testRuntime())
	d, ok := g.(*Game).CurrentLevel()
	if !ok || d.ID != "1-2" {
		t.Errorf("CurrentLevel() = %q, expected 1-2", d.ID)
	}
	if _, ok := g.(registry.Resizer); !ok {
		t.Error("platformer should follow resizes in place")
	}
}

func TestResizeKeepsRun(t *testing.T) {
	g := New()
	g.Reset(testRuntime())
	runID := g.RunID()

	g.Resize(20, 10)
	screen := core.NewScreen(20, 10)
	g.Render(screen)
	if !strings.Contains(screen.String(), "Window too small") {
		t.Error("shrunk screen should show a warning")
	}

	g.Resize(80, 31)
	if g.RunID() != runID {
		t.Errorf("RunID() = %q after resize, expected %q", g.RunID(), runID)
	}
	if g.Phase() != StateLoading {
		t.Errorf("Phase() = %s, expected %s", g.Phase(), StateLoading)
	}
}

func TestSetStart(t *testing.T) {
	tests := []struct {
		start    string
		expected string
	}{
		{"", "1-1"},
		{"1-2", "1-2"},
		{"9-9", "1-1"},
	}

	for _, tt := range tests {
		g := newAt(tt.start)
		g.Reset(testRuntime())

		if d, ok := g.CurrentLevel(); !ok || d.ID != tt.expected {
			t.Errorf("start %q: CurrentLevel() = %q, expected %q", tt.start, d.ID, tt.expected)
		}
	}
}
