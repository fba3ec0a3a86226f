package game

// CollisionReport describes what one collision sweep changed
type CollisionReport struct {
	// Destroyed holds the enemies removed by projectiles, in sweep order
	Destroyed []*Enemy

	// PlayerHit is true when an enemy overlapped the player craft
	PlayerHit bool
}

// CollisionSystem resolves box overlaps between the world's entities
type CollisionSystem struct {
	world *World

	deadShots   []bool
	deadEnemies []bool
}

// NewCollisionSystem creates a new collision system
func NewCollisionSystem(world *World) *CollisionSystem {
	return &CollisionSystem{world: world}
}

// Resolve runs one sweep. Every projectile removes at most the first live
// enemy it overlaps, in enumeration order. Removal happens after the sweep
// so indices stay stable while scanning. Any surviving enemy overlapping the
// player sets the world's terminal flag.
func (c *CollisionSystem) Resolve() CollisionReport {
	w := c.world
	var report CollisionReport

	c.deadShots = resetMarks(c.deadShots, len(w.Projectiles))
	c.deadEnemies = resetMarks(c.deadEnemies, len(w.Enemies))

	for i, p := range w.Projectiles {
		shot := p.Bounds()
		for j, e := range w.Enemies {
			if c.deadEnemies[j] {
				continue
			}
			if shot.Overlaps(e.Bounds()) {
				c.deadShots[i] = true
				c.deadEnemies[j] = true
				report.Destroyed = append(report.Destroyed, e)
				break
			}
		}
	}

	if len(report.Destroyed) > 0 {
		w.Projectiles = compact(w.Projectiles, c.deadShots)
		w.Enemies = compact(w.Enemies, c.deadEnemies)
	}

	player := w.Player.Bounds()
	for _, e := range w.Enemies {
		if e.Bounds().Overlaps(player) {
			w.Terminal = true
			report.PlayerHit = true
			break
		}
	}

	return report
}

func resetMarks(marks []bool, n int) []bool {
	if cap(marks) < n {
		return make([]bool, n)
	}
	marks = marks[:n]
	for i := range marks {
		marks[i] = false
	}
	return marks
}

// compact keeps the items whose mark is false, preserving order
func compact[T any](items []T, dead []bool) []T {
	kept := items[:0]
	for i, item := range items {
		if !dead[i] {
			kept = append(kept, item)
		}
	}
	return truncate(items, kept)
}
