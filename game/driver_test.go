package game

import (
	"math"
	"testing"
	"time"
)

func runUntilStopped(c *Controller, limit int) int {
	ticks := 0
	for ticks < limit && c.State() == StateRunning {
		c.Tick(tick)
		ticks++
	}
	return ticks
}

func TestEnemyReachesPlayer(t *testing.T) {
	cfg := testConfig()
	cfg.FireInterval = time.Hour
	c := testController(t, cfg)
	events := eventCounter{}
	c.AddSink(events)

	c.Start()
	w := c.World
	w.Player.X, w.Player.Y = 100, 500
	enemy := w.AddEnemy(100)
	if enemy.Y != -50 {
		t.Fatalf("enemy spawned at y=%v, want -50", enemy.Y)
	}

	ticks := runUntilStopped(c, 400)

	if c.State() != StateTerminal {
		t.Fatalf("state = %v after %d ticks, want terminal", c.State(), ticks)
	}
	if w.Frame != 251 || ticks != 251 {
		t.Fatalf("terminal at frame %d after %d ticks, want 251", w.Frame, ticks)
	}
	if enemy.Y != 452 {
		t.Fatalf("enemy y = %v, want 452", enemy.Y)
	}
	if events[EventGameOver] != 1 {
		t.Fatalf("game over events = %d, want 1", events[EventGameOver])
	}
}

func TestTerminalStateIsAbsorbing(t *testing.T) {
	cfg := testConfig()
	c := testController(t, cfg)
	events := eventCounter{}
	c.AddSink(events)

	c.Start()
	w := c.World
	w.Player.X, w.Player.Y = 100, 500
	w.Enemies = append(w.Enemies, NewEnemy(100, 455, cfg.Enemy, colorHUD))

	c.Tick(tick)
	if c.State() != StateTerminal {
		t.Fatalf("state = %v, want terminal", c.State())
	}

	frame := w.Frame
	fired := events[EventFired]
	enemyY := w.Enemies[0].Y
	for i := 0; i < 100; i++ {
		c.Tick(tick)
	}

	if c.State() != StateTerminal || !w.Terminal {
		t.Fatal("terminal state must persist")
	}
	if w.Frame != frame || w.Enemies[0].Y != enemyY {
		t.Fatal("world kept simulating after game over")
	}
	if events[EventFired] != fired {
		t.Fatalf("fired %d shots after game over", events[EventFired]-fired)
	}
	if events[EventGameOver] != 1 {
		t.Fatalf("game over events = %d, want 1", events[EventGameOver])
	}
	if c.Scheduler.PendingFrames() != 0 {
		t.Fatal("no frame should be pending in the terminal state")
	}

	ops := c.Canvas.Ops()
	if len(ops) != 2 || ops[0].Kind != OpClear || !hasText(ops, "GAME OVER") {
		t.Fatalf("terminal canvas = %+v, want clear and GAME OVER", ops)
	}
	if !c.Controls.Restart.Visible {
		t.Fatal("restart control should be visible")
	}
}

func TestGameOverTextIsCentred(t *testing.T) {
	cfg := testConfig()
	c := testController(t, cfg)
	c.Start()
	c.World.Terminal = true
	c.Tick(tick)

	var op DrawOp
	for _, o := range c.Canvas.Ops() {
		if o.Kind == OpText {
			op = o
		}
	}
	if op.Text != "GAME OVER" || op.Size != 48 {
		t.Fatalf("text op = %+v", op)
	}
	center := op.Rect.X + TextWidth(op.Text, op.Size)/2
	if math.Abs(center-400) > 1e-9 {
		t.Fatalf("text centre = %v, want 400", center)
	}
	if op.Rect.Y != 300-48 {
		t.Fatalf("text y = %v, want %v", op.Rect.Y, 300-48)
	}
}

func TestFrameCullsLeavingEntities(t *testing.T) {
	cfg := testConfig()
	cfg.FireInterval = time.Hour
	c := testController(t, cfg)
	c.Start()
	w := c.World

	gone := NewProjectile(700, 3, 3, 7, colorHUD)
	atTop := NewProjectile(700, 7, 3, 7, colorHUD)
	atBottom := NewEnemy(0, 598, cfg.Enemy, colorHUD)
	below := NewEnemy(0, 599, cfg.Enemy, colorHUD)
	w.Projectiles = append(w.Projectiles, gone, atTop)
	w.Enemies = append(w.Enemies, atBottom, below)

	c.Tick(tick)

	if len(w.Projectiles) != 1 || w.Projectiles[0] != atTop || atTop.Y != 0 {
		t.Fatalf("projectiles = %v, want only the one at y=0", w.Projectiles)
	}
	if len(w.Enemies) != 1 || w.Enemies[0] != atBottom || atBottom.Y != 600 {
		t.Fatalf("enemies = %v, want only the one at y=600", w.Enemies)
	}
}

func TestFrameDrawsEveryEntityOnce(t *testing.T) {
	cfg := testConfig()
	cfg.FireInterval = time.Hour
	c := testController(t, cfg)
	c.Start()
	w := c.World
	w.Projectiles = append(w.Projectiles, NewProjectile(10, 300, 3, 7, colorHUD))
	w.Enemies = append(w.Enemies, NewEnemy(600, 0, cfg.Enemy, colorHUD))

	c.Tick(tick)

	ops := c.Canvas.Ops()
	if ops[0].Kind != OpClear {
		t.Fatalf("first op = %v, want clear", ops[0].Kind)
	}
	rects := 0
	for _, op := range ops {
		if op.Kind == OpFillRect {
			rects++
		}
	}
	if rects != 3 {
		t.Fatalf("filled %d rects, want 3", rects)
	}
	if !hasText(ops, "SCORE 0") {
		t.Fatal("missing score line")
	}
}

func TestProjectileKillScores(t *testing.T) {
	cfg := testConfig()
	cfg.FireInterval = time.Hour
	c := testController(t, cfg)
	events := eventCounter{}
	c.AddSink(events)
	c.Start()
	w := c.World

	w.Enemies = append(w.Enemies, NewEnemy(100, 100, cfg.Enemy, colorHUD))
	w.Projectiles = append(w.Projectiles, NewProjectile(110, 150, 3, 7, colorHUD))

	c.Tick(tick)

	if w.Score != 1 || events[EventEnemyDestroyed] != 1 {
		t.Fatalf("score = %d, destroyed events = %d, want 1 and 1", w.Score, events[EventEnemyDestroyed])
	}
	if len(w.Enemies) != 0 || len(w.Projectiles) != 0 {
		t.Fatal("both entities should be removed")
	}
	if !hasText(c.Canvas.Ops(), "SCORE 1") {
		t.Fatal("score line not updated")
	}
}

func TestIdleUntilStarted(t *testing.T) {
	c := testController(t, testConfig())

	for i := 0; i < 50; i++ {
		c.Tick(tick)
	}
	if c.State() != StateIdle {
		t.Fatalf("state = %v, want idle", c.State())
	}
	if c.World.Frame != 0 || len(c.World.Projectiles) != 0 {
		t.Fatal("nothing should run before start")
	}
	if !c.Controls.Start.Visible || c.Controls.Restart.Visible {
		t.Fatal("only the start control should be visible")
	}
}

func TestDriverStateString(t *testing.T) {
	for state, want := range map[DriverState]string{
		StateIdle:       "idle",
		StateRunning:    "running",
		StateTerminal:   "terminal",
		DriverState(42): "unknown",
	} {
		if got := state.String(); got != want {
			t.Errorf("%d.String() = %q, want %q", int(state), got, want)
		}
	}
}
