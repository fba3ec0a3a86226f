package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Controller owns one game: world, input, scheduler, canvas and controls.
// Start and Restart (re)initialise the world, launch the frame driver and
// replace the fire timer. Every method must be called from the host's loop.
type Controller struct {
	config Config
	log    zerolog.Logger

	World     *World
	Keys      *KeyState
	Scheduler *Scheduler
	Canvas    *Canvas
	Controls  *Controls

	driver  *FrameDriver
	spawner *Spawner

	fireTimer *Timer
	session   string
	sinks     []EventSink
}

// NewController builds a controller from a validated config
func NewController(config Config, log zerolog.Logger) (*Controller, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	palette, err := config.Palette()
	if err != nil {
		return nil, err
	}

	seed := config.Spawn.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	c := &Controller{
		config:    config,
		log:       log,
		Keys:      NewKeyState(),
		Scheduler: NewScheduler(),
		Canvas:    NewCanvas(),
		spawner:   NewSpawner(config.Spawn, rand.New(rand.NewSource(seed)), log),
	}

	if config.Spawn.Script != "" {
		policy, err := LoadScriptPolicy(config.Spawn.Script)
		if err != nil {
			return nil, fmt.Errorf("failed to load spawn script: %w", err)
		}
		c.spawner.SetPolicy(policy)
	}

	field := Size{Width: float64(config.Field.Width), Height: float64(config.Field.Height)}
	c.World = NewWorld(config, palette, field)
	c.Controls = NewControls(c.Start, c.Restart)
	c.Controls.Layout(field)
	c.driver = NewFrameDriver(c.World, c.spawner, c.Keys, config.Keys,
		c.Scheduler, c.Canvas, c.Controls, c.emit)

	return c, nil
}

// AddSink registers an event sink
func (c *Controller) AddSink(s EventSink) {
	c.sinks = append(c.sinks, s)
}

// SetSpawnPolicy replaces the spawner's policy; nil restores the chance policy
func (c *Controller) SetSpawnPolicy(p SpawnPolicy) {
	c.spawner.SetPolicy(p)
}

// State returns the frame driver's state
func (c *Controller) State() DriverState {
	return c.driver.State()
}

// Session returns the id of the current run, empty before the first start
func (c *Controller) Session() string {
	return c.session
}

// Start hides the start control and begins a new run
func (c *Controller) Start() {
	c.Controls.Start.Visible = false
	c.reset("start")
}

// Restart begins a new run from any state
func (c *Controller) Restart() {
	c.reset("restart")
}

func (c *Controller) reset(reason string) {
	if c.fireTimer != nil {
		c.fireTimer.Stop()
	}

	c.World.Reset()
	c.Controls.Restart.Visible = false
	c.session = uuid.NewString()

	c.driver.Run()
	c.fireTimer = c.Scheduler.Every(c.config.FireInterval, c.fire)

	c.log.Info().
		Str("session", c.session).
		Str("reason", reason).
		Float64("field_width", c.World.Field.Width).
		Float64("field_height", c.World.Field.Height).
		Msg("run started")
	c.emit(Event{Kind: EventStarted, X: c.World.Player.X, Y: c.World.Player.Y})
}

// fire is the fire timer's callback
func (c *Controller) fire() {
	if c.World.Terminal {
		return
	}
	p := c.World.Fire()
	c.emit(Event{Kind: EventFired, X: p.X, Y: p.Y, Score: c.World.Score, Frame: c.World.Frame})
}

// Tick advances the scheduler by dt and runs one display frame
func (c *Controller) Tick(dt time.Duration) {
	c.Scheduler.Advance(dt)
	c.Scheduler.RunFrames()
}

// Resize sets the play-field to the viewport size
func (c *Controller) Resize(width, height int) {
	field := Size{Width: float64(width), Height: float64(height)}
	if field == c.World.Field {
		return
	}
	c.World.Resize(field)
	c.Controls.Layout(field)
	c.log.Debug().Int("width", width).Int("height", height).Msg("field resized")
}

// KeyDown forwards a key press to the input state
func (c *Controller) KeyDown(name string) {
	c.Keys.KeyDown(name)
}

// KeyUp forwards a key release to the input state
func (c *Controller) KeyUp(name string) {
	c.Keys.KeyUp(name)
}

// Click activates the control under (x, y)
func (c *Controller) Click(x, y float64) bool {
	return c.Controls.Click(x, y)
}

// Close stops the fire timer and any pending frame
func (c *Controller) Close() {
	if c.fireTimer != nil {
		c.fireTimer.Stop()
	}
	c.driver.Stop()
}

func (c *Controller) emit(ev Event) {
	ev.Session = c.session
	if ev.Kind == EventGameOver {
		c.log.Info().
			Str("session", c.session).
			Int("score", ev.Score).
			Int("frames", ev.Frame).
			Msg("game over")
	}
	for _, s := range c.sinks {
		s.HandleEvent(ev)
	}
}
