package game

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

// tick is one 20ms display frame, so 10 ticks make one default fire interval
const tick = 20 * time.Millisecond

func testConfig() Config {
	cfg := DefaultConfig()
	cfg.Field = FieldConfig{Width: 800, Height: 600}
	cfg.Spawn.Chance = 0
	cfg.Spawn.Seed = 1
	return cfg
}

func testLogger() zerolog.Logger {
	return zerolog.Nop()
}

func testWorld(t *testing.T, cfg Config) *World {
	t.Helper()
	palette, err := cfg.Palette()
	if err != nil {
		t.Fatalf("palette: %v", err)
	}
	return NewWorld(cfg, palette, Size{Width: float64(cfg.Field.Width), Height: float64(cfg.Field.Height)})
}

func testController(t *testing.T, cfg Config) *Controller {
	t.Helper()
	c, err := NewController(cfg, testLogger())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	t.Cleanup(c.Close)
	return c
}

// eventCounter counts events by kind
type eventCounter map[EventKind]int

func (c eventCounter) HandleEvent(ev Event) {
	c[ev.Kind]++
}

func hasText(ops []DrawOp, text string) bool {
	for _, op := range ops {
		if op.Kind == OpText && op.Text == text {
			return true
		}
	}
	return false
}
