package term

import (
	"testing"
	"time"

	"boxshooter/game"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

func newTestHost(t *testing.T) *Host {
	t.Helper()
	screen := tcell.NewSimulationScreen("UTF-8")
	if err := screen.Init(); err != nil {
		t.Fatalf("screen init: %v", err)
	}
	t.Cleanup(screen.Fini)
	screen.SetSize(80, 24)

	cfg := game.DefaultConfig()
	cfg.Spawn.Chance = 0
	cfg.Spawn.Seed = 1
	ctrl, err := game.NewController(cfg, zerolog.Nop())
	if err != nil {
		t.Fatalf("NewController: %v", err)
	}
	t.Cleanup(ctrl.Close)

	h := NewHost(screen, ctrl, zerolog.Nop())
	h.resize()
	return h
}

func TestHostResizeSetsField(t *testing.T) {
	h := newTestHost(t)
	if h.ctrl.World.Field != (game.Size{Width: 640, Height: 384}) {
		t.Fatalf("field = %+v, want 640x384", h.ctrl.World.Field)
	}
}

func TestHostReleasesKeysAfterTimeout(t *testing.T) {
	h := newTestHost(t)
	now := time.Now()

	h.handleKey(tcell.KeyLeft, 0, now)
	h.handleKey(tcell.KeyRune, 'W', now)
	if !h.ctrl.Keys.Pressed("arrowleft") || !h.ctrl.Keys.Pressed("w") {
		t.Fatal("keys should be held after a press")
	}

	h.handleKey(tcell.KeyLeft, 0, now.Add(100*time.Millisecond))
	h.releaseStale(now.Add(200 * time.Millisecond))
	if !h.ctrl.Keys.Pressed("arrowleft") {
		t.Fatal("a repeating key must stay held")
	}
	if h.ctrl.Keys.Pressed("w") {
		t.Fatal("a key without repeats must be released")
	}

	h.releaseStale(now.Add(time.Second))
	if h.ctrl.Keys.Pressed("arrowleft") {
		t.Fatal("arrowleft should be released")
	}
}

func TestHostQuitKeys(t *testing.T) {
	h := newTestHost(t)
	now := time.Now()

	if h.handleKey(tcell.KeyEscape, 0, now) {
		t.Error("escape should quit")
	}
	if h.handleKey(tcell.KeyCtrlC, 0, now) {
		t.Error("ctrl-c should quit")
	}
	if h.handleKey(tcell.KeyRune, 'q', now) {
		t.Error("q should quit")
	}
	if !h.handleKey(tcell.KeyRune, 'a', now) {
		t.Error("a must not quit")
	}
}

func TestHostEnterStartsAndRRestarts(t *testing.T) {
	h := newTestHost(t)
	now := time.Now()

	h.handleKey(tcell.KeyRune, 'r', now)
	if h.ctrl.State() != game.StateIdle {
		t.Fatal("r must not start a game")
	}

	h.handleKey(tcell.KeyEnter, 0, now)
	if h.ctrl.State() != game.StateRunning {
		t.Fatalf("state = %v after enter, want running", h.ctrl.State())
	}

	h.ctrl.World.Terminal = true
	h.ctrl.Tick(FrameDuration)
	if h.ctrl.State() != game.StateTerminal {
		t.Fatalf("state = %v, want terminal", h.ctrl.State())
	}

	h.handleKey(tcell.KeyRune, 'r', now)
	if h.ctrl.State() != game.StateRunning || h.ctrl.World.Terminal {
		t.Fatal("r should restart after game over")
	}
}

func TestHostDrawDoesNotPanic(t *testing.T) {
	h := newTestHost(t)
	h.draw()
	h.ctrl.Start()
	for i := 0; i < 30; i++ {
		h.ctrl.Tick(FrameDuration)
		h.draw()
	}
}

func TestKeyName(t *testing.T) {
	tests := []struct {
		key  tcell.Key
		r    rune
		want string
	}{
		{tcell.KeyLeft, 0, "arrowleft"},
		{tcell.KeyDown, 0, "arrowdown"},
		{tcell.KeyRune, 'D', "d"},
		{tcell.KeyEnter, 0, "enter"},
		{tcell.KeyTab, 0, ""},
	}
	for _, tt := range tests {
		if got := keyName(tt.key, tt.r); got != tt.want {
			t.Errorf("keyName(%v, %q) = %q, want %q", tt.key, tt.r, got, tt.want)
		}
	}
}
