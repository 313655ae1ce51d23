// Package rockfall implements a falling-rock dodging game.
// The player slides left and right along a fixed row while rocks spawn on the
// top row and fall; touching a rock ends the game. The score counts frames
// survived and also paces the rocks.
package rockfall

import (
	"fmt"

	"github.com/vovakirdan/tui-rockfall/internal/config"
	"github.com/vovakirdan/tui-rockfall/internal/core"
)

// Visual colors for entities.
const (
	PlayerColor   = core.ColorBrightCyan
	ObstacleColor = core.ColorOrange
	ScoreColor    = core.ColorBrightWhite
)

// Phase is the state of the game's state machine.
type Phase int

const (
	PhaseRunning  Phase = iota
	PhaseGameOver       // terminal
)

// Game implements the rockfall frame loop.
type Game struct {
	cfg       config.RockfallConfig
	runtime   core.RuntimeConfig
	surface   core.Surface
	boundary  core.Boundary
	player    *Player
	obstacles *ObstacleManager
	score     int
	phase     Phase
	reason    core.EndReason
	tickCount int // Number of obstacle ticks since start
}

// New creates a game with the given configuration.
// The configuration must already be validated.
func New(cfg config.RockfallConfig) *Game {
	return &Game{cfg: cfg}
}

// ID returns the unique identifier for this game.
func (g *Game) ID() string {
	return "rockfall"
}

// Title returns the display name for this game.
func (g *Game) Title() string {
	return "Rockfall"
}

// Reset starts a new game drawing onto surface.
// The play area is derived once from the runtime screen size.
func (g *Game) Reset(runtime core.RuntimeConfig, surface core.Surface) error {
	playerShape, err := NewShape(g.cfg.Player.Shape...)
	if err != nil {
		return fmt.Errorf("rockfall: player shape: %w", err)
	}
	rockShape, err := NewShape(g.cfg.Obstacles.Shape...)
	if err != nil {
		return fmt.Errorf("rockfall: obstacle shape: %w", err)
	}

	g.runtime = runtime
	g.surface = surface
	g.boundary = core.NewBoundary(runtime.ScreenW, runtime.ScreenH)
	g.score = 0
	g.phase = PhaseRunning
	g.reason = core.EndNone
	g.tickCount = 0

	start := core.Pos(g.boundary.Right/2, core.Max(g.boundary.Top, g.boundary.Bottom-g.cfg.Player.BottomOffset))
	g.player = NewPlayer(playerShape, start)
	g.obstacles = NewObstacleManager(runtime.Seed, g.boundary, rockShape, g.cfg.Obstacles.DescendStep)
	return nil
}

// Step runs one frame with the action polled for it.
// Once the game is over Step does nothing: the terminal state never resumes.
func (g *Game) Step(in core.Action) core.StepResult {
	if g.phase == PhaseGameOver {
		return core.StepResult{State: g.State()}
	}

	ended := core.EndNone
	if in == core.ActionQuit {
		ended = core.EndQuit
	}

	ticked := g.score%g.cfg.Frame.Cadence == 0
	if ticked {
		g.obstacles.Tick(g.surface)
		g.tickCount++
		g.drawScore()
	}

	g.player.Clear(g.surface)
	switch in {
	case core.ActionLeft:
		g.player.MoveLeft(g.cfg.Player.Step)
	case core.ActionRight:
		g.player.MoveRight(g.cfg.Player.Step)
	}
	g.player.Draw(g.surface)

	if Collides(g.player, g.obstacles.List()) {
		ended = core.EndCollision
	}

	g.surface.Commit()

	if ended != core.EndNone {
		g.finish(ended)
	} else {
		g.score++
	}

	return core.StepResult{State: g.State(), Ticked: ticked}
}

// finish enters the terminal state and shows the final score.
func (g *Game) finish(reason core.EndReason) {
	g.phase = PhaseGameOver
	g.reason = reason

	for y := g.boundary.Top; y < g.boundary.Bottom; y++ {
		for x := g.boundary.Left; x < g.boundary.Right; x++ {
			g.surface.SetCell(x, y, ' ', core.ColorDefault)
		}
	}

	text := scoreText(g.score)
	x := g.boundary.Left + (g.boundary.Width()-len(text))/2
	y := g.boundary.Top + g.boundary.Height()/2
	drawText(g.surface, x, y, text, ScoreColor)
	g.surface.Commit()
}

// drawScore redraws the in-game score readout.
func (g *Game) drawScore() {
	drawText(g.surface, g.cfg.HUD.ScoreX, g.cfg.HUD.ScoreY, scoreText(g.score), ScoreColor)
}

func scoreText(score int) string {
	return fmt.Sprintf("SCORE: %d", score)
}

func drawText(dst core.Surface, x, y int, text string, c core.Color) {
	for i, r := range text {
		dst.SetCell(x+i, y, r, c)
	}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:    g.score,
		GameOver: g.phase == PhaseGameOver,
		Reason:   g.reason,
	}
}

// Phase returns the state machine phase.
func (g *Game) Phase() Phase {
	return g.phase
}

// Score returns the number of completed frames.
func (g *Game) Score() int {
	return g.score
}

// Player returns the player entity.
func (g *Game) Player() *Player {
	return g.player
}

// Obstacles returns the obstacle manager.
func (g *Game) Obstacles() *ObstacleManager {
	return g.obstacles
}

// Boundary returns the play area.
func (g *Game) Boundary() core.Boundary {
	return g.boundary
}
