package sound

import (
	"sync"
	"time"

	"boxshooter/game"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"
	"github.com/rs/zerolog"
)

const sampleRate = beep.SampleRate(44100)

// Player voices game events through the speaker. It implements game.EventSink.
// Without an audio device it stays silent and the game runs on.
type Player struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	cfg         game.SoundConfig
	log         zerolog.Logger
	initialized bool
}

// NewPlayer opens the speaker when sound is enabled
func NewPlayer(cfg game.SoundConfig, log zerolog.Logger) *Player {
	p := &Player{
		mixer: &beep.Mixer{},
		cfg:   cfg,
		log:   log,
	}
	if !cfg.Enabled {
		return p
	}

	if err := speaker.Init(sampleRate, sampleRate.N(time.Second/10)); err != nil {
		log.Warn().Err(err).Msg("audio initialization failed, continuing without sound")
		return p
	}
	speaker.Play(p.mixer)
	p.initialized = true
	return p
}

// Enabled reports whether sounds reach the speaker
func (p *Player) Enabled() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.initialized
}

// HandleEvent plays the event's sound, if it has one
func (p *Player) HandleEvent(ev game.Event) {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}

	s, err := Effect(ev.Kind, sampleRate, p.cfg.Volume, p.cfg.Fire)
	if err != nil {
		p.log.Warn().Err(err).Str("event", ev.Kind.String()).Msg("failed to build sound")
		return
	}
	if s == nil {
		return
	}

	speaker.Lock()
	p.mixer.Add(s)
	speaker.Unlock()
}

// Close stops playback and releases the audio device
func (p *Player) Close() {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.initialized {
		return
	}
	speaker.Lock()
	p.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	p.initialized = false
}
