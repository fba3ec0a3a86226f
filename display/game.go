package display

import (
	"time"

	"boxshooter/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
	"github.com/rs/zerolog"
)

// Game runs a game.Controller inside ebiten
type Game struct {
	ctrl    *game.Controller
	monitor *game.FrameMonitor
	log     zerolog.Logger
	surface *Surface

	keys      []ebiten.Key
	showDebug bool
	lastTick  time.Time
}

// NewGame creates an ebiten host for ctrl
func NewGame(ctrl *game.Controller, monitor *game.FrameMonitor, log zerolog.Logger) *Game {
	return &Game{
		ctrl:     ctrl,
		monitor:  monitor,
		log:      log,
		surface:  NewSurface(),
		keys:     make([]ebiten.Key, 0, 8),
		lastTick: time.Now(),
	}
}

// Update handles input and advances the simulation by one tick
func (g *Game) Update() error {
	now := time.Now()
	elapsed := now.Sub(g.lastTick).Seconds()
	g.lastTick = now

	// Clamp so a stalled window does not read as a long FPS drop
	if elapsed > 0.1 {
		elapsed = 0.1
	}
	g.monitor.Tick(elapsed)

	g.keys = inpututil.AppendJustPressedKeys(g.keys[:0])
	for _, k := range g.keys {
		switch k {
		case ebiten.KeyEscape:
			return ebiten.Termination
		case ebiten.KeyF1:
			g.showDebug = !g.showDebug
			g.log.Debug().Bool("debug", g.showDebug).Msg("debug overlay toggled")
		case ebiten.KeyEnter:
			if g.ctrl.State() == game.StateIdle {
				g.ctrl.Start()
			}
		case ebiten.KeyR:
			if g.ctrl.State() == game.StateTerminal {
				g.ctrl.Restart()
			}
		}
		g.ctrl.KeyDown(KeyName(k))
	}

	g.keys = inpututil.AppendJustReleasedKeys(g.keys[:0])
	for _, k := range g.keys {
		g.ctrl.KeyUp(KeyName(k))
	}

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		x, y := ebiten.CursorPosition()
		g.ctrl.Click(float64(x), float64(y))
	}

	g.ctrl.Tick(time.Second / time.Duration(ebiten.TPS()))
	return nil
}

// Draw paints the last simulated frame and the visible controls
func (g *Game) Draw(screen *ebiten.Image) {
	g.surface.SetTarget(screen)
	g.surface.Clear()
	g.ctrl.Canvas.Replay(g.surface)
	g.ctrl.Controls.Draw(g.surface)

	if g.showDebug {
		g.drawDebug(screen)
	}
}

// Layout makes the play-field follow the window size
func (g *Game) Layout(outsideWidth, outsideHeight int) (int, int) {
	g.ctrl.Resize(outsideWidth, outsideHeight)
	return outsideWidth, outsideHeight
}
