package term

import (
	"context"
	"strings"
	"time"

	"boxshooter/game"

	"github.com/gdamore/tcell/v2"
	"github.com/rs/zerolog"
)

// FrameDuration is the terminal host's tick
const FrameDuration = 16 * time.Millisecond

// Terminals report key presses only, so a key counts as held until no
// repeat has arrived for keyTimeout.
const keyTimeout = 150 * time.Millisecond

// Host runs a game.Controller on a tcell screen
type Host struct {
	screen  tcell.Screen
	ctrl    *game.Controller
	log     zerolog.Logger
	surface *Surface

	held      map[string]time.Time
	mouseDown bool
}

// NewHost creates a terminal host. The screen must already be initialised.
func NewHost(screen tcell.Screen, ctrl *game.Controller, log zerolog.Logger) *Host {
	return &Host{
		screen:  screen,
		ctrl:    ctrl,
		log:     log,
		surface: NewSurface(screen),
		held:    make(map[string]time.Time),
	}
}

// Run polls terminal events and ticks the game until the player quits or
// ctx is done. The caller owns the screen and must Fini it afterwards.
func (h *Host) Run(ctx context.Context) error {
	h.screen.EnableMouse()
	h.resize()

	events := make(chan tcell.Event, 100)
	go func() {
		for {
			ev := h.screen.PollEvent()
			if ev == nil {
				return
			}
			select {
			case events <- ev:
			case <-ctx.Done():
				return
			}
		}
	}()

	ticker := time.NewTicker(FrameDuration)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()

		case ev := <-events:
			if !h.handleEvent(ev, time.Now()) {
				h.log.Info().Msg("quit requested")
				return nil
			}

		case now := <-ticker.C:
			h.releaseStale(now)
			h.ctrl.Tick(FrameDuration)
			h.draw()
		}
	}
}

func (h *Host) handleEvent(ev tcell.Event, now time.Time) bool {
	switch ev := ev.(type) {
	case *tcell.EventKey:
		return h.handleKey(ev.Key(), ev.Rune(), now)

	case *tcell.EventMouse:
		pressed := ev.Buttons()&tcell.Button1 != 0
		if pressed && !h.mouseDown {
			col, row := ev.Position()
			h.ctrl.Click(CellCenter(col, row))
		}
		h.mouseDown = pressed

	case *tcell.EventResize:
		h.resize()
		h.screen.Sync()
	}
	return true
}

// handleKey returns false when the key asks to quit
func (h *Host) handleKey(key tcell.Key, r rune, now time.Time) bool {
	if key == tcell.KeyEscape || key == tcell.KeyCtrlC || (key == tcell.KeyRune && r == 'q') {
		return false
	}

	name := keyName(key, r)
	switch {
	case key == tcell.KeyEnter && h.ctrl.State() == game.StateIdle:
		h.ctrl.Start()
	case name == "r" && h.ctrl.State() == game.StateTerminal:
		h.ctrl.Restart()
	}

	if name == "" {
		return true
	}
	h.ctrl.KeyDown(name)
	h.held[name] = now
	return true
}

// releaseStale releases keys that stopped repeating
func (h *Host) releaseStale(now time.Time) {
	for name, last := range h.held {
		if now.Sub(last) >= keyTimeout {
			h.ctrl.KeyUp(name)
			delete(h.held, name)
		}
	}
}

func (h *Host) resize() {
	cols, rows := h.screen.Size()
	h.ctrl.Resize(FieldSize(cols, rows))
}

func (h *Host) draw() {
	h.surface.Clear()
	h.ctrl.Canvas.Replay(h.surface)
	h.ctrl.Controls.Draw(h.surface)
	h.screen.Show()
}

func keyName(key tcell.Key, r rune) string {
	switch key {
	case tcell.KeyLeft:
		return "arrowleft"
	case tcell.KeyRight:
		return "arrowright"
	case tcell.KeyUp:
		return "arrowup"
	case tcell.KeyDown:
		return "arrowdown"
	case tcell.KeyEnter:
		return "enter"
	case tcell.KeyRune:
		return strings.ToLower(string(r))
	}
	return ""
}
