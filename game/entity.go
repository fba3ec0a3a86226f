package game

import "image/color"

// EntityType identifies the type of entity
type EntityType int

const (
	EntityTypePlayer EntityType = iota
	EntityTypeProjectile
	EntityTypeEnemy
)

func (t EntityType) String() string {
	switch t {
	case EntityTypePlayer:
		return "player"
	case EntityTypeProjectile:
		return "projectile"
	case EntityTypeEnemy:
		return "enemy"
	default:
		return "unknown"
	}
}

// Entity is a movable rectangle
type Entity struct {
	// Position of the top-left corner in field coordinates
	X, Y float64

	// Size in pixels
	Width, Height float64

	// Pixels travelled per frame
	Speed float64

	Color color.RGBA

	Type EntityType
}

// Bounds returns the entity's bounding box
func (e *Entity) Bounds() Rect {
	return Rect{X: e.X, Y: e.Y, W: e.Width, H: e.Height}
}

// Draw renders the entity as a filled rectangle
func (e *Entity) Draw(s Surface) {
	s.FillRect(e.Bounds(), e.Color)
}

// Actor is anything the frame driver can draw and test for overlap
type Actor interface {
	Bounds() Rect
	Draw(s Surface)
}

// ProjectileTemplate describes the shots the player fires
type ProjectileTemplate struct {
	Size  float64
	Speed float64
	Color color.RGBA
}

// Player is the craft controlled by the keyboard
type Player struct {
	Entity
	shot ProjectileTemplate
}

// NewPlayer creates a player craft at the given position
func NewPlayer(x, y float64, craft CraftConfig, clr color.RGBA, shot ProjectileTemplate) *Player {
	return &Player{
		Entity: Entity{
			X:      x,
			Y:      y,
			Width:  craft.Width,
			Height: craft.Height,
			Speed:  craft.Speed,
			Color:  clr,
			Type:   EntityTypePlayer,
		},
		shot: shot,
	}
}

// Move shifts the craft by one speed step along every held direction.
// Each axis is clamped so the craft stays inside the field.
func (p *Player) Move(keys *KeyState, bindings KeyBindings, field Size) {
	maxX := field.Width - p.Width
	maxY := field.Height - p.Height

	if keys.Any(bindings.Left) {
		p.X = clamp(p.X-p.Speed, 0, maxX)
	}
	if keys.Any(bindings.Right) {
		p.X = clamp(p.X+p.Speed, 0, maxX)
	}
	if keys.Any(bindings.Up) {
		p.Y = clamp(p.Y-p.Speed, 0, maxY)
	}
	if keys.Any(bindings.Down) {
		p.Y = clamp(p.Y+p.Speed, 0, maxY)
	}
}

// Fire creates a projectile centred on the craft's top edge
func (p *Player) Fire() *Projectile {
	x := p.X + p.Width/2 - p.shot.Size/2
	return NewProjectile(x, p.Y, p.shot.Size, p.shot.Speed, p.shot.Color)
}

// Projectile is a square shot travelling up the field
type Projectile struct {
	Entity
}

// NewProjectile creates a square projectile
func NewProjectile(x, y, size, speed float64, clr color.RGBA) *Projectile {
	return &Projectile{Entity{
		X:      x,
		Y:      y,
		Width:  size,
		Height: size,
		Speed:  speed,
		Color:  clr,
		Type:   EntityTypeProjectile,
	}}
}

// Move moves the projectile up by its speed
func (p *Projectile) Move() {
	p.Y -= p.Speed
}

// Enemy is a craft falling down the field
type Enemy struct {
	Entity
}

// NewEnemy creates an enemy craft
func NewEnemy(x, y float64, craft CraftConfig, clr color.RGBA) *Enemy {
	return &Enemy{Entity{
		X:      x,
		Y:      y,
		Width:  craft.Width,
		Height: craft.Height,
		Speed:  craft.Speed,
		Color:  clr,
		Type:   EntityTypeEnemy,
	}}
}

// Move moves the enemy down by its speed
func (e *Enemy) Move() {
	e.Y += e.Speed
}
