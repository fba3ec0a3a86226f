package game

import (
	"fmt"
	"image/color"
)

// DriverState is the frame driver's state
type DriverState int

const (
	// StateIdle is before the first start
	StateIdle DriverState = iota
	StateRunning
	// StateTerminal is absorbing until the world is reset and Run is called again
	StateTerminal
)

func (s DriverState) String() string {
	switch s {
	case StateIdle:
		return "idle"
	case StateRunning:
		return "running"
	case StateTerminal:
		return "terminal"
	default:
		return "unknown"
	}
}

const (
	gameOverText     = "GAME OVER"
	gameOverTextSize = 48.0
	hudTextSize      = 13.0
	hudMargin        = 8.0
)

var (
	colorGameOver = color.RGBA{R: 255, G: 255, B: 255, A: 255}
	colorHUD      = color.RGBA{R: 200, G: 200, B: 200, A: 255}
)

// FrameDriver runs the per-frame update/draw/cull/collide/spawn cycle and
// reschedules itself through the scheduler until the world turns terminal.
type FrameDriver struct {
	world      *World
	collisions *CollisionSystem
	spawner    *Spawner
	keys       *KeyState
	bindings   KeyBindings
	scheduler  *Scheduler
	canvas     *Canvas
	controls   *Controls
	emit       func(Event)

	state   DriverState
	pending *FrameRequest
}

// NewFrameDriver wires a driver to its collaborators
func NewFrameDriver(world *World, spawner *Spawner, keys *KeyState, bindings KeyBindings,
	scheduler *Scheduler, canvas *Canvas, controls *Controls, emit func(Event)) *FrameDriver {
	if emit == nil {
		emit = func(Event) {}
	}
	return &FrameDriver{
		world:      world,
		collisions: NewCollisionSystem(world),
		spawner:    spawner,
		keys:       keys,
		bindings:   bindings,
		scheduler:  scheduler,
		canvas:     canvas,
		controls:   controls,
		emit:       emit,
	}
}

// State returns the current driver state
func (d *FrameDriver) State() DriverState {
	return d.state
}

// Run enters Running and requests the first frame. Any frame already
// pending is replaced so a restart never runs two frame chains.
func (d *FrameDriver) Run() {
	d.state = StateRunning
	d.schedule()
}

// Stop cancels the pending frame and leaves the state unchanged
func (d *FrameDriver) Stop() {
	if d.pending != nil {
		d.pending.Cancel()
		d.pending = nil
	}
}

func (d *FrameDriver) schedule() {
	d.Stop()
	d.pending = d.scheduler.RequestFrame(d.frame)
}

// frame is the scheduled callback
func (d *FrameDriver) frame() {
	d.pending = nil
	if d.state != StateRunning {
		return
	}
	if d.world.Terminal {
		d.enterTerminal()
		return
	}

	d.step()

	if d.world.Terminal {
		d.enterTerminal()
		return
	}
	d.schedule()
}

// step simulates and draws one Running frame
func (d *FrameDriver) step() {
	w := d.world
	c := d.canvas

	c.Clear()

	w.Player.Move(d.keys, d.bindings, w.Field)
	w.Player.Draw(c)

	w.advanceProjectiles(c)
	w.advanceEnemies(c)

	report := d.collisions.Resolve()
	w.Score += len(report.Destroyed)
	for _, e := range report.Destroyed {
		d.emit(Event{Kind: EventEnemyDestroyed, X: e.X, Y: e.Y, Score: w.Score, Frame: w.Frame})
	}

	d.spawner.Spawn(w)
	w.Frame++

	c.Text(fmt.Sprintf("SCORE %d", w.Score), hudMargin, hudMargin, hudTextSize, colorHUD)
}

func (d *FrameDriver) enterTerminal() {
	d.state = StateTerminal
	w := d.world

	d.canvas.Clear()
	tw := TextWidth(gameOverText, gameOverTextSize)
	d.canvas.Text(gameOverText,
		(w.Field.Width-tw)/2,
		w.Field.Height/2-gameOverTextSize,
		gameOverTextSize, colorGameOver)

	d.controls.Restart.Visible = true
	d.emit(Event{
		Kind:  EventGameOver,
		X:     w.Player.X,
		Y:     w.Player.Y,
		Score: w.Score,
		Frame: w.Frame,
	})
}
