package game

import (
	"math/rand"

	"github.com/rs/zerolog"
)

// SpawnContext is what a spawn policy sees each frame
type SpawnContext struct {
	Frame       int
	Enemies     int
	Projectiles int
	FieldWidth  float64
	FieldHeight float64

	// Random is a fresh uniform sample in [0, 1)
	Random float64
}

// SpawnPolicy decides whether an enemy appears this frame
type SpawnPolicy interface {
	ShouldSpawn(ctx SpawnContext) (bool, error)
}

// ChancePolicy spawns with a fixed per-frame probability
type ChancePolicy struct {
	Chance float64
}

// ShouldSpawn returns true when the frame's random sample falls under the chance
func (p ChancePolicy) ShouldSpawn(ctx SpawnContext) (bool, error) {
	return ctx.Random < p.Chance, nil
}

// Spawner creates enemies at random columns above the field
type Spawner struct {
	rng        *rand.Rand
	policy     SpawnPolicy
	fallback   ChancePolicy
	maxEnemies int
	log        zerolog.Logger
}

// NewSpawner creates a spawner driven by the configured chance
func NewSpawner(cfg SpawnConfig, rng *rand.Rand, log zerolog.Logger) *Spawner {
	fallback := ChancePolicy{Chance: cfg.Chance}
	return &Spawner{
		rng:        rng,
		policy:     fallback,
		fallback:   fallback,
		maxEnemies: cfg.MaxEnemies,
		log:        log,
	}
}

// SetPolicy replaces the spawn policy. A nil policy restores the chance policy.
func (s *Spawner) SetPolicy(p SpawnPolicy) {
	if p == nil {
		p = s.fallback
	}
	s.policy = p
}

// Spawn runs the policy for one frame and returns the new enemy, if any
func (s *Spawner) Spawn(w *World) *Enemy {
	if s.maxEnemies > 0 && len(w.Enemies) >= s.maxEnemies {
		return nil
	}

	ctx := SpawnContext{
		Frame:       w.Frame,
		Enemies:     len(w.Enemies),
		Projectiles: len(w.Projectiles),
		FieldWidth:  w.Field.Width,
		FieldHeight: w.Field.Height,
		Random:      s.rng.Float64(),
	}

	spawn, err := s.policy.ShouldSpawn(ctx)
	if err != nil {
		s.log.Warn().Err(err).Int("frame", ctx.Frame).Msg("spawn policy failed, using chance policy")
		spawn, _ = s.fallback.ShouldSpawn(ctx)
	}
	if !spawn {
		return nil
	}

	span := w.Field.Width - w.config.Enemy.Width
	x := 0.0
	if span > 0 {
		x = s.rng.Float64() * span
	}
	return w.AddEnemy(x)
}
