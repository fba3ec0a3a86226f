package display

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	debugEnemyBox      = color.RGBA{R: 255, G: 80, B: 80, A: 255}
	debugProjectileBox = color.RGBA{R: 80, G: 200, B: 255, A: 255}
	debugPlayerBox     = color.RGBA{R: 255, G: 255, B: 0, A: 255}
)

// drawDebug shows frame stats and the collision boxes (F1)
func (g *Game) drawDebug(screen *ebiten.Image) {
	w := g.ctrl.World

	for _, e := range w.Enemies {
		strokeBounds(screen, e.X, e.Y, e.Width, e.Height, debugEnemyBox)
	}
	for _, p := range w.Projectiles {
		strokeBounds(screen, p.X, p.Y, p.Width, p.Height, debugProjectileBox)
	}
	strokeBounds(screen, w.Player.X, w.Player.Y, w.Player.Width, w.Player.Height, debugPlayerBox)

	stats := fmt.Sprintf("FPS: %0.1f TPS: %0.1f\nstate: %s frame: %d\nenemies: %d projectiles: %d\nsession: %s",
		ebiten.ActualFPS(), ebiten.ActualTPS(),
		g.ctrl.State(), w.Frame,
		len(w.Enemies), len(w.Projectiles),
		g.ctrl.Session())
	if g.monitor.Drops() > 0 {
		stats += fmt.Sprintf("\nfps drops: %d", g.monitor.Drops())
	}
	ebitenutil.DebugPrintAt(screen, stats, 8, 28)
}

func strokeBounds(screen *ebiten.Image, x, y, w, h float64, clr color.Color) {
	vector.StrokeRect(screen, float32(x), float32(y), float32(w), float32(h), 1, clr, false)
}
