// Package boxfield implements the boxfield game: a colored box steered
// with the arrow keys through a field of static obstacles inside a fixed
// rectangular world. Movement is clamped to the world boundary; there is
// no losing condition, the score counts steps taken.
package boxfield

import (
	"fmt"
	"math/rand"

	"github.com/dkotenko/boxfield/internal/config"
	"github.com/dkotenko/boxfield/internal/core"
	"github.com/dkotenko/boxfield/internal/registry"
)

// Visual characters for rendering
const (
	PlayerChar   = '█'
	ObstacleChar = '▓'
)

// Game implements the boxfield game logic.
type Game struct {
	cfg     config.BoxfieldConfig
	runtime core.RuntimeConfig
	rng     *rand.Rand

	player     *core.Entity
	controller *Controller
	field      Field
	bounds     core.Bounds

	playerSprite   BoxSprite
	obstacleSprite BlockSprite
	borderColor    core.Color

	tick   uint64
	steps  int
	paused bool

	// Screen layout
	worldW, worldH   int
	offsetX, offsetY int
	hudHeight        int
	tooSmall         bool
	spawnErr         error
}

// configPath stores the custom config path set via CLI.
var configPath string

// SetConfigPath sets the custom config path for loading.
func SetConfigPath(path string) {
	configPath = path
}

// New creates a new boxfield game instance.
func New() *Game {
	return &Game{}
}

func init() {
	registry.Register("boxfield", func() registry.Game {
		return New()
	})
}

// ID returns the game identifier.
func (g *Game) ID() string {
	return "boxfield"
}

// Title returns the display name.
func (g *Game) Title() string {
	return "Boxfield"
}

// Reset initializes or restarts the game.
func (g *Game) Reset(runtime core.RuntimeConfig) {
	g.runtime = runtime

	cfg, err := config.LoadBoxfield(configPath)
	if err != nil {
		cfg = config.DefaultBoxfieldConfig()
	}
	g.cfg = cfg

	g.bounds = core.Bounds{W: cfg.World.Width, H: cfg.World.Height}
	g.playerSprite = BoxSprite{
		Fill:        PlayerChar,
		Stroke:      PlayerChar,
		FillColor:   core.ParseColor(cfg.Colors.Fill),
		StrokeColor: core.ParseColor(cfg.Colors.Stroke),
	}
	g.obstacleSprite = BlockSprite{
		Fill:  ObstacleChar,
		Color: core.ParseColor(cfg.Colors.Obstacle),
	}
	g.borderColor = core.ParseColor(cfg.Colors.Border)

	g.hudHeight = 2
	g.worldW = int(cfg.World.Width)
	g.worldH = int(cfg.World.Height)
	g.layout()

	g.initSession()
}

// layout centers the world on the screen and checks that it fits.
func (g *Game) layout() {
	requiredW := g.worldW + 2
	requiredH := g.worldH + g.hudHeight + 2
	g.tooSmall = g.runtime.ScreenW < requiredW || g.runtime.ScreenH < requiredH

	g.offsetX = (g.runtime.ScreenW - g.worldW) / 2
	g.offsetY = g.hudHeight + 1
}

// initSession spawns the player and regenerates the obstacle field from
// the runtime seed. Called from Reset and on in-game restart.
func (g *Game) initSession() {
	g.rng = rand.New(rand.NewSource(g.runtime.Seed))
	g.tick = 0
	g.steps = 0
	g.paused = false

	start := core.NewPosition(g.cfg.Player.StartX, g.cfg.Player.StartY)
	player, err := core.NewEntity(start, g.cfg.Player.Width, g.cfg.Player.Height, g.bounds)
	if err != nil {
		// Unreachable after config validation; surfaced instead of drawn over.
		g.spawnErr = err
		return
	}
	g.spawnErr = nil
	g.player = player
	g.controller = NewController(player, g.cfg.Player.Step)
	g.field = GenerateField(g.rng, g.cfg.Obstacles, g.bounds, player.Rect())
}

// Step advances the game by one tick.
func (g *Game) Step(in core.InputFrame) core.StepResult {
	if g.spawnErr != nil {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionPause) {
		g.paused = !g.paused
	}
	if g.paused {
		return core.StepResult{State: g.State()}
	}

	if in.Has(core.ActionRestart) {
		g.initSession()
		return core.StepResult{State: g.State()}
	}

	g.tick++
	g.steps += g.controller.Apply(in)

	return core.StepResult{State: g.State()}
}

// State returns the current game state.
func (g *Game) State() core.GameState {
	return core.GameState{
		Score:  g.steps,
		Paused: g.paused,
	}
}

// Render draws the current game state to the screen.
func (g *Game) Render(dst *core.Screen) {
	dst.Clear()

	if g.spawnErr != nil {
		dst.DrawTextCentered(dst.Height()/2, fmt.Sprintf("configuration error: %v", g.spawnErr))
		return
	}
	if g.tooSmall {
		dst.DrawTextCentered(dst.Height()/2, "Terminal too small")
		dst.DrawTextCentered(dst.Height()/2+1,
			fmt.Sprintf("Need at least %dx%d", g.worldW+2, g.worldH+g.hudHeight+2))
		return
	}

	// World border
	dst.DrawBox(core.NewRect(g.offsetX-1, g.offsetY-1, g.worldW+2, g.worldH+2), g.borderColor)

	// Static obstacles, then the player on top
	for _, r := range g.field.Obstacles() {
		g.obstacleSprite.Draw(dst, g.toScreen(r))
	}
	g.playerSprite.Draw(dst, g.toScreen(g.player.Rect()))

	g.drawHUD(dst)

	if g.paused {
		g.drawCenteredMessage(dst, "PAUSED", "Press P to resume")
	}
}

// toScreen translates a world rectangle into screen cells.
func (g *Game) toScreen(r core.Rect) core.Rect {
	return core.NewRect(r.X+g.offsetX, r.Y+g.offsetY, r.W, r.H)
}

func (g *Game) drawHUD(dst *core.Screen) {
	stepsText := fmt.Sprintf(" Steps: %d ", g.steps)
	dst.DrawText(2, 0, stepsText)

	posText := fmt.Sprintf(" Pos: (%d, %d) ", int(g.player.Pos.X), int(g.player.Pos.Y))
	dst.DrawText(dst.Width()-len(posText)-2, 0, posText)

	dst.DrawText(2, 1, " Arrows: move | P: pause | R: restart | Q: quit ")
}

// drawCenteredMessage draws a message box in the center of the screen.
func (g *Game) drawCenteredMessage(dst *core.Screen, title, subtitle string) {
	w := dst.Width()
	h := dst.Height()

	boxW := max(len(title), len(subtitle)) + 4
	boxH := 5
	boxX := (w - boxW) / 2
	boxY := (h - boxH) / 2

	dst.FillRect(core.NewRect(boxX, boxY, boxW, boxH), ' ', core.ColorDefault)
	dst.DrawBox(core.NewRect(boxX, boxY, boxW, boxH), core.ColorDefault)

	dst.DrawText(boxX+(boxW-len(title))/2, boxY+1, title)
	dst.DrawText(boxX+(boxW-len(subtitle))/2, boxY+3, subtitle)
}
