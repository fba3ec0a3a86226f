package game

import (
	"errors"
	"math/rand"
	"testing"
)

type failingPolicy struct{}

func (failingPolicy) ShouldSpawn(SpawnContext) (bool, error) {
	return false, errors.New("policy unavailable")
}

type recordingPolicy struct {
	seen []SpawnContext
}

func (p *recordingPolicy) ShouldSpawn(ctx SpawnContext) (bool, error) {
	p.seen = append(p.seen, ctx)
	return false, nil
}

func newTestSpawner(cfg SpawnConfig) *Spawner {
	return NewSpawner(cfg, rand.New(rand.NewSource(1)), testLogger())
}

func TestSpawnChance(t *testing.T) {
	tests := []struct {
		name   string
		chance float64
		frames int
		want   int
	}{
		{"never", 0, 1000, 0},
		{"always", 1, 100, 100},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := testConfig()
			w := testWorld(t, cfg)
			s := newTestSpawner(SpawnConfig{Chance: tt.chance})
			for i := 0; i < tt.frames; i++ {
				s.Spawn(w)
			}
			if len(w.Enemies) != tt.want {
				t.Fatalf("spawned %d enemies, want %d", len(w.Enemies), tt.want)
			}
		})
	}
}

func TestSpawnedEnemiesStartAboveFieldWithinColumns(t *testing.T) {
	cfg := testConfig()
	w := testWorld(t, cfg)
	s := newTestSpawner(SpawnConfig{Chance: 1})

	for i := 0; i < 500; i++ {
		e := s.Spawn(w)
		if e == nil {
			t.Fatal("chance 1 must always spawn")
		}
		if e.Y != -cfg.Enemy.Height {
			t.Fatalf("enemy y = %v, want %v", e.Y, -cfg.Enemy.Height)
		}
		if e.X < 0 || e.X >= w.Field.Width-e.Width {
			t.Fatalf("enemy x = %v outside [0, %v)", e.X, w.Field.Width-e.Width)
		}
	}
}

func TestSpawnInFieldNarrowerThanEnemy(t *testing.T) {
	cfg := testConfig()
	w := testWorld(t, cfg)
	w.Resize(Size{Width: 30, Height: 600})
	s := newTestSpawner(SpawnConfig{Chance: 1})

	if e := s.Spawn(w); e == nil || e.X != 0 {
		t.Fatalf("enemy = %+v, want one at x=0", e)
	}
}

func TestSpawnRespectsMaxEnemies(t *testing.T) {
	cfg := testConfig()
	w := testWorld(t, cfg)
	s := newTestSpawner(SpawnConfig{Chance: 1, MaxEnemies: 3})

	for i := 0; i < 10; i++ {
		s.Spawn(w)
	}
	if len(w.Enemies) != 3 {
		t.Fatalf("enemies = %d, want 3", len(w.Enemies))
	}
}

func TestSpawnPolicyErrorFallsBackToChance(t *testing.T) {
	cfg := testConfig()
	w := testWorld(t, cfg)
	s := newTestSpawner(SpawnConfig{Chance: 1})
	s.SetPolicy(failingPolicy{})

	if s.Spawn(w) == nil {
		t.Fatal("expected the chance policy to take over")
	}
}

func TestSpawnPolicySeesWorld(t *testing.T) {
	cfg := testConfig()
	w := testWorld(t, cfg)
	w.Frame = 12
	w.AddEnemy(10)
	w.Fire()
	w.Fire()

	policy := &recordingPolicy{}
	s := newTestSpawner(SpawnConfig{Chance: 1})
	s.SetPolicy(policy)
	if s.Spawn(w) != nil {
		t.Fatal("policy said no")
	}

	if len(policy.seen) != 1 {
		t.Fatalf("policy called %d times, want 1", len(policy.seen))
	}
	ctx := policy.seen[0]
	if ctx.Frame != 12 || ctx.Enemies != 1 || ctx.Projectiles != 2 || ctx.FieldWidth != 800 || ctx.FieldHeight != 600 {
		t.Fatalf("context = %+v", ctx)
	}
	if ctx.Random < 0 || ctx.Random >= 1 {
		t.Fatalf("random sample %v outside [0, 1)", ctx.Random)
	}

	s.SetPolicy(nil)
	if s.Spawn(w) == nil {
		t.Fatal("nil policy should restore the chance policy")
	}
}

func TestSeededSpawnerIsDeterministic(t *testing.T) {
	cfg := testConfig()
	a, b := testWorld(t, cfg), testWorld(t, cfg)
	sa := newTestSpawner(SpawnConfig{Chance: 0.3})
	sb := newTestSpawner(SpawnConfig{Chance: 0.3})

	for i := 0; i < 200; i++ {
		sa.Spawn(a)
		sb.Spawn(b)
	}
	if len(a.Enemies) != len(b.Enemies) {
		t.Fatalf("spawned %d and %d enemies from the same seed", len(a.Enemies), len(b.Enemies))
	}
	for i := range a.Enemies {
		if a.Enemies[i].X != b.Enemies[i].X {
			t.Fatalf("enemy %d at x=%v and x=%v", i, a.Enemies[i].X, b.Enemies[i].X)
		}
	}
}
