package game

// playerBottomMargin is the gap between the player's start position and the field bottom
const playerBottomMargin = 10.0

// World owns the live entities of one run
type World struct {
	// Field is the visible play-field size
	Field Size

	Player      *Player
	Projectiles []*Projectile
	Enemies     []*Enemy

	// Terminal is set when an enemy reaches the player. Only a reset clears it.
	Terminal bool

	// Score counts enemies destroyed by projectiles in this run
	Score int

	// Frame counts simulated frames in this run
	Frame int

	config  Config
	palette Palette
}

// NewWorld creates a world with a player at the start position
func NewWorld(config Config, palette Palette, field Size) *World {
	w := &World{
		Field:   field,
		config:  config,
		palette: palette,
	}
	w.Reset()
	return w
}

// StartPosition returns where a fresh player craft is placed
func (w *World) StartPosition() (float64, float64) {
	x := w.Field.Width/2 - w.config.Player.Width/2
	y := w.Field.Height - w.config.Player.Height - playerBottomMargin
	return x, y
}

// Reset discards every entity and starts a new run
func (w *World) Reset() {
	x, y := w.StartPosition()
	w.Player = NewPlayer(x, y, w.config.Player, w.palette.Player, ProjectileTemplate{
		Size:  w.config.ProjectileSize(),
		Speed: w.config.Projectile.Speed,
		Color: w.palette.Projectile,
	})
	w.Projectiles = make([]*Projectile, 0, 64)
	w.Enemies = make([]*Enemy, 0, 32)
	w.Terminal = false
	w.Score = 0
	w.Frame = 0
}

// Resize changes the field size and pulls the player back inside it
func (w *World) Resize(field Size) {
	w.Field = field
	if w.Player != nil {
		w.Player.X = clamp(w.Player.X, 0, field.Width-w.Player.Width)
		w.Player.Y = clamp(w.Player.Y, 0, field.Height-w.Player.Height)
	}
}

// Fire adds one projectile from the player craft
func (w *World) Fire() *Projectile {
	p := w.Player.Fire()
	w.Projectiles = append(w.Projectiles, p)
	return p
}

// AddEnemy adds an enemy at x just above the visible field
func (w *World) AddEnemy(x float64) *Enemy {
	e := NewEnemy(x, -w.config.Enemy.Height, w.config.Enemy, w.palette.Enemy)
	w.Enemies = append(w.Enemies, e)
	return e
}

// advanceProjectiles moves and draws every projectile, dropping those above the field
func (w *World) advanceProjectiles(s Surface) {
	kept := w.Projectiles[:0]
	for _, p := range w.Projectiles {
		p.Move()
		p.Draw(s)
		if p.Y >= 0 {
			kept = append(kept, p)
		}
	}
	w.Projectiles = truncate(w.Projectiles, kept)
}

// advanceEnemies moves and draws every enemy, dropping those below the field
func (w *World) advanceEnemies(s Surface) {
	kept := w.Enemies[:0]
	for _, e := range w.Enemies {
		e.Move()
		e.Draw(s)
		if e.Y <= w.Field.Height {
			kept = append(kept, e)
		}
	}
	w.Enemies = truncate(w.Enemies, kept)
}

// truncate nils the tail of all that kept no longer covers so dropped
// entities can be collected, and returns kept.
func truncate[T any](all, kept []T) []T {
	var zero T
	for i := len(kept); i < len(all); i++ {
		all[i] = zero
	}
	return kept
}
