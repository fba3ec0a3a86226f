package sound

import (
	"testing"
	"time"

	"boxshooter/game"

	"github.com/gopxl/beep"
	"github.com/rs/zerolog"
)

func drain(t *testing.T, s beep.Streamer) int {
	t.Helper()
	buf := make([][2]float64, 512)
	total := 0
	for {
		n, ok := s.Stream(buf)
		for i := 0; i < n; i++ {
			if buf[i][0] < -1 || buf[i][0] > 1 {
				t.Fatalf("sample %d out of range: %f", total+i, buf[i][0])
			}
		}
		total += n
		if !ok {
			return total
		}
	}
}

func TestEffectLength(t *testing.T) {
	rate := beep.SampleRate(44100)
	tests := []struct {
		kind game.EventKind
		dur  time.Duration
	}{
		{game.EventStarted, 150 * time.Millisecond},
		{game.EventEnemyDestroyed, 50 * time.Millisecond},
		{game.EventGameOver, 600 * time.Millisecond},
	}
	for _, tt := range tests {
		t.Run(tt.kind.String(), func(t *testing.T) {
			s, err := Effect(tt.kind, rate, -1, false)
			if err != nil {
				t.Fatalf("Effect: %v", err)
			}
			var want int
			for _, n := range notesFor(tt.kind, false) {
				want += rate.N(n.dur)
			}
			if got := drain(t, s); got != want {
				t.Fatalf("streamed %d samples, want %d", got, want)
			}
			if d := rate.D(want); d < tt.dur-time.Millisecond || d > tt.dur+time.Millisecond {
				t.Fatalf("duration = %v, want about %v", d, tt.dur)
			}
		})
	}
}

func TestShotsAreSilentUnlessEnabled(t *testing.T) {
	rate := beep.SampleRate(44100)

	s, err := Effect(game.EventFired, rate, 0, false)
	if err != nil || s != nil {
		t.Fatalf("Effect = %v, %v; want no sound", s, err)
	}

	s, err = Effect(game.EventFired, rate, 0, true)
	if err != nil || s == nil {
		t.Fatalf("Effect = %v, %v; want a sound", s, err)
	}
}

func TestDisabledPlayerIgnoresEvents(t *testing.T) {
	p := NewPlayer(game.SoundConfig{Enabled: false}, zerolog.Nop())
	if p.Enabled() {
		t.Fatal("player should be disabled")
	}
	p.HandleEvent(game.Event{Kind: game.EventGameOver})
	p.Close()
}
