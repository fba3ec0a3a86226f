package game

import "github.com/rs/zerolog"

// EventKind identifies a gameplay event
type EventKind int

const (
	EventStarted EventKind = iota
	EventFired
	EventEnemyDestroyed
	EventGameOver
)

func (k EventKind) String() string {
	switch k {
	case EventStarted:
		return "started"
	case EventFired:
		return "fired"
	case EventEnemyDestroyed:
		return "enemy_destroyed"
	case EventGameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

// Event is emitted by the lifecycle and the frame driver
type Event struct {
	Kind EventKind

	// Position of the entity involved, if any
	X, Y float64

	Session string
	Score   int
	Frame   int
}

// EventSink receives gameplay events on the simulation goroutine
type EventSink interface {
	HandleEvent(ev Event)
}

// EventSinkFunc adapts a function to EventSink
type EventSinkFunc func(ev Event)

// HandleEvent calls f(ev)
func (f EventSinkFunc) HandleEvent(ev Event) {
	f(ev)
}

// LogSink writes events to a logger. Shots are logged at trace level.
type LogSink struct {
	Log zerolog.Logger
}

// HandleEvent logs the event
func (s LogSink) HandleEvent(ev Event) {
	var e *zerolog.Event
	switch ev.Kind {
	case EventFired:
		e = s.Log.Trace()
	case EventEnemyDestroyed:
		e = s.Log.Debug()
	default:
		e = s.Log.Info()
	}
	e.Str("session", ev.Session).
		Int("score", ev.Score).
		Int("frame", ev.Frame).
		Float64("x", ev.X).
		Float64("y", ev.Y).
		Msg(ev.Kind.String())
}
