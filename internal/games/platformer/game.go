// Package platformer adapts the platformer simulation to the arcade game
// interface. It owns the info record carried across levels, level
// progression and the projection of the draw list onto a character screen.
package platformer

import (
	"fmt"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-platformer/internal/config"
	"github.com/vovakirdan/tui-platformer/internal/core"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/levels"
	"github.com/vovakirdan/tui-platformer/internal/games/platformer/sim"
	"github.com/vovakirdan/tui-platformer/internal/registry"
)

// GameID is the registry identifier of the platformer.
const GameID = "platformer"

// Game states
const (
	StateLoading  = "loading"  // Level intro card
	StatePlaying  = "playing"  // Level running
	StatePaused   = "paused"   // Game paused
	StateGameOver = "gameover" // No lives left
	StateWin      = "win"      // Every level cleared
)

// loadScreenMs is how long the level intro card stays up.
const loadScreenMs = 2000

// Minimum screen size in cells
const (
	minScreenW = 40
	minScreenH = 16
)

// Package-level settings applied by the CLI before games are created.
var (
	configPath       string
	difficultyPreset config.DifficultyPreset
	levelsDir        string
	logger           *log.Logger
	runReporter      func(RunResult)
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	difficultyPreset = config.ParsePreset(preset)
}

// SetLevelsDir sets a directory of extra level files.
func SetLevelsDir(dir string) {
	levelsDir = dir
}

// SetLogger sets the logger used for level transitions. Nil disables logging.
func SetLogger(l *log.Logger) {
	logger = l
}

// SetRunReporter sets the callback invoked whenever a level finishes.
func SetRunReporter(fn func(RunResult)) {
	runReporter = fn
}

// RunResult describes one finished level attempt.
type RunResult struct {
	RunID   string
	LevelID string
	Score   int
	Coins   int
	Lives   int
	Outcome string
}

// Game implements the platformer for the arcade platform.
type Game struct {
	runtime core.RuntimeConfig
	cfg     config.PlatformerConfig
	levels  []levels.Description

	log      *log.Logger
	reporter func(RunResult)
	start    string

	runID      string
	info       sim.Info
	levelIndex int
	level      *sim.Level
	levelTick  int64
	loadTicks  int
	state      string
	loadErr    error

	tooSmall bool
}

// New creates a platformer game using the package-level settings.
func New() *Game {
	return &Game{log: logger, reporter: runReporter}
}

// SetReporter overrides the run reporter for this game only.
func (g *Game) SetReporter(fn func(RunResult)) {
	g.reporter = fn
}

// SetStart selects the level to start from by ID; empty starts from the
// first level. It takes effect on the next Reset.
func (g *Game) SetStart(id string) {
	g.start = id
}

// Resize adapts to a new terminal size without restarting the run.
func (g *Game) Resize(w, h int) {
	g.runtime.ScreenW, g.runtime.ScreenH = w, h
	g.tooSmall = w < minScreenW || h < minScreenH
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return GameID
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Platformer"
}

// Reset loads config and levels and starts a new run.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime
	g.tooSmall = runtime.ScreenW < minScreenW || runtime.ScreenH < minScreenH

	cfg, err := config.LoadPlatformer(configPath)
	if err != nil {
		g.warn("config unavailable, using defaults", "err", err)
		cfg = config.DefaultPlatformerConfig()
	}
	if difficultyPreset != "" {
		config.ApplyPlatformerPreset(&cfg, difficultyPreset)
	}
	g.cfg = cfg

	g.levels, g.loadErr = levels.NewLoader(levelsDir).LoadAll()
	if g.loadErr != nil {
		g.warn("levels unavailable", "dir", levelsDir, "err", g.loadErr)
		g.levels = nil
	}

	g.runID = uuid.NewString()
	g.info = sim.Info{Lives: cfg.Gameplay.Lives}
	g.levelIndex = g.indexOf(g.start)
	g.level = nil
	g.enterLoading()
	if g.loadErr != nil || len(g.levels) == 0 {
		g.state = StateGameOver
	}
}

func (g *Game) indexOf(id string) int {
	for i, d := range g.levels {
		if d.ID == id {
			return i
		}
	}
	return 0
}

func (g *Game) enterLoading() {
	g.state = StateLoading
	g.loadTicks = int(loadScreenMs / g.runtime.FrameMillis())
}

func (g *Game) startLevel() {
	g.level = sim.Start(g.levels[g.levelIndex], g.cfg, &g.info)
	g.levelTick = 0
	g.state = StatePlaying
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.tooSmall {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) && (g.state == StateGameOver || g.state == StateWin) {
		g.Reset(g.runtime)
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		switch g.state {
		case StatePlaying:
			g.state = StatePaused
		case StatePaused:
			g.state = StatePlaying
		}
	}

	switch g.state {
	case StateLoading:
		g.loadTicks--
		if g.loadTicks <= 0 {
			g.startLevel()
		}
	case StatePlaying:
		g.levelTick++
		g.level.Update(sim.KeysFrom(in), g.now())
		if out := g.level.Outcome(); out.Finished {
			g.finishLevel(out)
		}
	}

	return core.StepResult{State: g.State()}
}

// now derives the level clock from the tick count.
func (g *Game) now() int64 {
	rate := int64(g.runtime.TickRate)
	if rate <= 0 {
		rate = 60
	}
	return g.levelTick * 1000 / rate
}

func (g *Game) finishLevel(out sim.Outcome) {
	id := g.level.ID()
	g.report(id, out.Next)
	g.debug("level finished", "level", id, "next", out.Next, "score", g.info.Score, "lives", g.info.Lives)

	switch out.Next {
	case sim.NextLevelClear:
		g.levelIndex++
		if g.levelIndex >= len(g.levels) {
			g.levelIndex = len(g.levels) - 1
			g.state = StateWin
			g.debug("run complete", "run", g.runID, "score", g.info.Score)
			return
		}
		g.enterLoading()
	case sim.NextLoadScreen:
		g.enterLoading()
	default:
		g.state = StateGameOver
		g.debug("game over", "run", g.runID, "score", g.info.Score)
	}
}

func (g *Game) report(levelID string, next sim.Next) {
	if g.reporter == nil {
		return
	}
	g.reporter(RunResult{
		RunID:   g.runID,
		LevelID: levelID,
		Score:   g.info.Score,
		Coins:   g.info.Coins,
		Lives:   g.info.Lives,
		Outcome: string(next),
	})
}

func (g *Game) debug(msg string, kv ...any) {
	if g.log != nil {
		g.log.Debug(msg, kv...)
	}
}

func (g *Game) warn(msg string, kv ...any) {
	if g.log != nil {
		g.log.Warn(msg, kv...)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.info.Score,
		GameOver: g.state == StateGameOver || g.state == StateWin,
		Paused:   g.state == StatePaused,
	}
}

// Phase returns the current game state name.
func (g *Game) Phase() string {
	return g.state
}

// Info returns the record carried across levels.
func (g *Game) Info() sim.Info {
	return g.info
}

// RunID returns the identifier of the current run.
func (g *Game) RunID() string {
	return g.runID
}

// Level returns the running level, or nil before the first level starts.
func (g *Game) Level() *sim.Level {
	return g.level
}

// CurrentLevel returns the description of the current or upcoming level.
func (g *Game) CurrentLevel() (levels.Description, bool) {
	if g.levelIndex < 0 || g.levelIndex >= len(g.levels) {
		return levels.Description{}, false
	}
	return g.levels[g.levelIndex], true
}

// Hash digests the run state for determinism checks.
func (g *Game) Hash() (uint64, error) {
	if g.level == nil {
		return 0, fmt.Errorf("platformer: no level running")
	}
	return g.level.Hash()
}

// Register the game with the registry
func init() {
	registry.Register(GameID, func() registry.Game {
		return New()
	})
}
