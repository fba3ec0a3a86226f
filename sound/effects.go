package sound

import (
	"time"

	"boxshooter/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/generators"
)

// note is one sine tone
type note struct {
	freq float64
	dur  time.Duration
}

// notesFor returns the notes played for an event kind. Shots are only
// voiced when withFire is set since they come five times a second.
func notesFor(kind game.EventKind, withFire bool) []note {
	switch kind {
	case game.EventStarted:
		return []note{{523.25, 60 * time.Millisecond}, {783.99, 90 * time.Millisecond}}
	case game.EventFired:
		if withFire {
			return []note{{1318.51, 15 * time.Millisecond}}
		}
	case game.EventEnemyDestroyed:
		return []note{{880, 50 * time.Millisecond}}
	case game.EventGameOver:
		return []note{
			{392, 150 * time.Millisecond},
			{311.13, 150 * time.Millisecond},
			{196, 300 * time.Millisecond},
		}
	}
	return nil
}

// Effect builds the streamer for an event, or nil when the event is silent.
// volume is a base-2 gain, 0 leaves the tones unchanged.
func Effect(kind game.EventKind, rate beep.SampleRate, volume float64, withFire bool) (beep.Streamer, error) {
	notes := notesFor(kind, withFire)
	if len(notes) == 0 {
		return nil, nil
	}

	parts := make([]beep.Streamer, 0, len(notes))
	for _, n := range notes {
		sine, err := generators.SineTone(rate, n.freq)
		if err != nil {
			return nil, err
		}
		parts = append(parts, beep.Take(rate.N(n.dur), sine))
	}

	return &effects.Volume{Streamer: beep.Seq(parts...), Base: 2, Volume: volume}, nil
}
