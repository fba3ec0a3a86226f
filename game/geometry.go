package game

import "math"

// Size is a width/height pair in pixels
type Size struct {
	Width, Height float64
}

// Rect is an axis-aligned bounding box with its origin at the top-left corner
type Rect struct {
	X, Y float64
	W, H float64
}

// Right returns the x-coordinate of the right edge
func (r Rect) Right() float64 {
	return r.X + r.W
}

// Bottom returns the y-coordinate of the bottom edge
func (r Rect) Bottom() float64 {
	return r.Y + r.H
}

// Overlaps reports whether two boxes share interior area. Touching edges do not count.
func (r Rect) Overlaps(other Rect) bool {
	return r.X < other.Right() &&
		r.Right() > other.X &&
		r.Y < other.Bottom() &&
		r.Bottom() > other.Y
}

// Contains reports whether the point lies inside the box
func (r Rect) Contains(x, y float64) bool {
	return x >= r.X && x < r.Right() && y >= r.Y && y < r.Bottom()
}

// clamp restricts v to [lo, hi]. An empty range collapses to lo.
func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}

// roundHalfUp rounds like a browser's Math.round: halves go towards +Inf
func roundHalfUp(v float64) float64 {
	return math.Floor(v + 0.5)
}
