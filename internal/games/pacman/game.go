package pacman

import (
	"io"
	"math/rand"

	"github.com/charmbracelet/log"
	"github.com/google/uuid"

	"github.com/vovakirdan/tui-pacman/internal/agent"
	"github.com/vovakirdan/tui-pacman/internal/audio"
	"github.com/vovakirdan/tui-pacman/internal/config"
	"github.com/vovakirdan/tui-pacman/internal/core"
	"github.com/vovakirdan/tui-pacman/internal/maze"
	"github.com/vovakirdan/tui-pacman/internal/registry"
	"github.com/vovakirdan/tui-pacman/internal/round"
	"github.com/vovakirdan/tui-pacman/internal/steer"
)

// configPath stores the custom config path set via CLI
var configPath string

// difficultyPreset stores the difficulty preset set via CLI
var difficultyPreset config.DifficultyPreset

// logger and sink are shared by every game created after they are set.
var (
	logger = log.New(io.Discard)
	sink   audio.Sink = audio.Nop{}
)

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// SetDifficultyPreset sets the difficulty preset. Unknown names clear it.
func SetDifficultyPreset(preset string) {
	p, err := config.ParsePreset(preset)
	if err != nil {
		p = ""
	}
	difficultyPreset = p
}

// SetLogger sets the logger used by new games.
func SetLogger(l *log.Logger) {
	logger = l
}

// SetAudio sets where new games send their sound cues.
func SetAudio(s audio.Sink) {
	sink = s
}

// hudHeight is the status line above the maze.
const hudHeight = 1

// Game implements the maze chase.
type Game struct {
	log  *log.Logger
	sink audio.Sink

	// fixed replaces config loading when set.
	fixed *config.PacmanConfig

	cfg        config.PacmanConfig
	difficulty *config.DifficultyManager
	scene      *Scene

	rng     *rand.Rand
	seed    int64
	roundID uuid.UUID
	tick    uint64
	frame   float64

	screenW int
	screenH int
	offsetX int
	offsetY int

	paused   bool
	tooSmall bool
}

// New creates a game that loads its config from the CLI-selected path.
func New() *Game {
	return &Game{log: logger, sink: sink}
}

// NewWithConfig creates a game with a fixed config, logger and audio sink.
// Nil logger and sink mean discard.
func NewWithConfig(cfg config.PacmanConfig, l *log.Logger, s audio.Sink) *Game {
	if l == nil {
		l = log.New(io.Discard)
	}
	if s == nil {
		s = audio.Nop{}
	}
	return &Game{log: l, sink: s, fixed: &cfg}
}

const (
	gameID    = "pacman"
	gameTitle = "Pac-Man"
)

func init() {
	registry.Register(gameID, gameTitle, func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return gameID
}

// Title returns the display name.
func (g *Game) Title() string {
	return gameTitle
}

// Reset starts a new round.
func (g *Game) Reset(rc core.RuntimeConfig) {
	g.cfg = g.loadConfig()
	g.difficulty = config.NewDifficultyManager(g.cfg.Difficulty)

	g.seed = rc.Seed
	g.rng = rand.New(rand.NewSource(rc.Seed))
	g.roundID = uuid.Must(uuid.NewRandomFromReader(g.rng))
	g.tick = 0
	g.frame = rc.FrameTime()
	g.paused = false
	g.screenW = rc.ScreenW
	g.screenH = rc.ScreenH

	// The config is validated by loadConfig, so only a broken embedded maze
	// can fail here.
	layout := maze.Classic()
	scene, err := NewScene(layout, g.sceneOptions())
	if err != nil {
		g.log.Fatal("cannot build the maze", "layout", layout.Name, "error", err)
	}
	g.scene = scene
	g.layoutScreen()

	g.log.Info("round started",
		"round", g.roundID,
		"layout", layout.Name,
		"pickups", scene.Total(),
		"seed", g.seed,
		"difficulty", g.difficulty.Level(0, 0))
}

// loadConfig returns the config for the next round. A config the game
// cannot run with, including one a preset pushed out of range, is replaced
// by the defaults.
func (g *Game) loadConfig() config.PacmanConfig {
	var cfg config.PacmanConfig
	if g.fixed != nil {
		cfg = *g.fixed
	} else {
		var err error
		cfg, err = config.LoadPacman(configPath)
		if err != nil {
			g.log.Warn("falling back to default config", "error", err)
			cfg = config.DefaultPacmanConfig()
		}
		if difficultyPreset != "" {
			config.ApplyPacmanPreset(&cfg, difficultyPreset)
		}
	}

	if err := cfg.Validate(); err != nil {
		g.log.Warn("config rejected, using defaults", "error", err)
		cfg = config.DefaultPacmanConfig()
		if g.fixed == nil && difficultyPreset != "" {
			config.ApplyPacmanPreset(&cfg, difficultyPreset)
		}
	}
	return cfg
}

func (g *Game) sceneOptions() SceneOptions {
	m := g.cfg.Movement
	return SceneOptions{
		CellSize:     m.CellSize,
		AgentSize:    m.AgentSize,
		PlayerSpeed:  m.PlayerSpeed,
		PursuerSpeed: g.difficulty.Speed(m.PursuerSpeed, 0, 0),
		ChompPeriod:  g.cfg.Animation.ChompPeriod,
		Steering: func(id agent.PursuerID, grid *maze.Grid) agent.Steering {
			return steer.NewChaser(id, grid, g.rng)
		},
		Events: g,
	}
}

// layoutScreen centres the maze below the HUD and flags a screen too small for it.
func (g *Game) layoutScreen() {
	grid := g.scene.Grid()
	w, h := grid.Width()*2, grid.Height()
	g.tooSmall = g.screenW < w || g.screenH < h+hudHeight
	g.offsetX = max(0, (g.screenW-w)/2)
	g.offsetY = hudHeight
}

// Step advances the game by one tick.
func (g *Game) Step(input core.InputFrame) core.StepResult {
	// Handle restart
	if input.Has(core.ActionRestart) && g.scene.Terminal() {
		g.Reset(core.RuntimeConfig{
			Seed:     g.rng.Int63(),
			ScreenW:  g.screenW,
			ScreenH:  g.screenH,
			TickRate: g.tickRate(),
		})
		return core.StepResult{State: g.State()}
	}

	// Handle pause toggle
	if input.Has(core.ActionPause) && !g.scene.Terminal() {
		g.paused = !g.paused
	}

	if g.paused || g.tooSmall || g.scene.Terminal() {
		return core.StepResult{State: g.State()}
	}

	g.tick++
	elapsed := min(g.frame, g.cfg.Movement.MaxFrameTime)
	g.scene.SetPursuerSpeed(g.difficulty.Speed(g.cfg.Movement.PursuerSpeed, g.scene.Eaten(), int(g.tick)))
	g.scene.Update(elapsed, input.Direction())

	return core.StepResult{State: g.State()}
}

func (g *Game) tickRate() int {
	if g.frame <= 0 {
		return 0
	}
	return int(1/g.frame + 0.5)
}

// Resize adapts the layout to a new terminal size.
func (g *Game) Resize(w, h int) {
	g.screenW, g.screenH = w, h
	g.layoutScreen()
}

// PickupsConsumed implements Events.
func (g *Game) PickupsConsumed(n, bonus int) {
	cue := audio.CuePickup
	if bonus > 0 {
		cue = audio.CueBonus
		g.log.Debug("bonus pickup", "round", g.roundID, "tick", g.tick, "remaining", g.scene.Remaining())
	}
	g.play(cue)
}

// RoundEnded implements Events.
func (g *Game) RoundEnded(outcome round.Outcome) {
	g.log.Info("round ended",
		"round", g.roundID,
		"outcome", outcome,
		"ticks", g.tick,
		"eaten", g.scene.Eaten(),
		"remaining", g.scene.Remaining())

	if outcome == round.Won {
		g.play(audio.CueWin)
	} else {
		g.play(audio.CueLose)
	}
}

func (g *Game) play(c audio.Cue) {
	if err := g.sink.Play(c); err != nil {
		g.log.Debug("sound cue dropped", "cue", c, "error", err)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.scene.Eaten(),
		GameOver: g.scene.Terminal(),
		Paused:   g.paused,
	}
}

// RoundID identifies the current round in logs and on the HUD.
func (g *Game) RoundID() uuid.UUID {
	return g.roundID
}
