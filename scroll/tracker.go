package scroll

import "math"

// Defaults for the draw-on-scroll effect
const (
	// DefaultLead is how much of the path stays visible before any scrolling
	DefaultLead = 160.0

	// DefaultSpeed scales scroll progress to drawn length; at 2 the path is
	// complete half way down the document.
	DefaultSpeed = 2.0
)

// Direction is the direction of the last scroll
type Direction int

const (
	DirectionNone Direction = iota
	DirectionDown
	DirectionUp
)

func (d Direction) String() string {
	switch d {
	case DirectionDown:
		return "down"
	case DirectionUp:
		return "up"
	default:
		return "none"
	}
}

// Progress returns how far pos is through a scrollable document, in [0, 1].
// A document that fits in the viewport has no scroll range and reports 0.
func Progress(pos, docHeight, viewHeight float64) float64 {
	scrollable := docHeight - viewHeight
	if scrollable <= 0 {
		return 0
	}
	return clamp(pos/scrollable, 0, 1)
}

// Tracker maps scroll positions to a stroke dash offset. The dash pattern is
// one dash as long as the path, so the visible prefix is Length - Offset.
type Tracker struct {
	Length float64
	Lead   float64
	Speed  float64

	offset    float64
	last      float64
	direction Direction
}

// NewTracker creates a tracker for a path of the given length, showing the
// first DefaultLead units before any scrolling.
func NewTracker(length float64) *Tracker {
	t := &Tracker{Length: length, Lead: DefaultLead, Speed: DefaultSpeed}
	t.offset = t.offsetFor(0)
	return t
}

// DashArray returns the dash length of the stroke pattern
func (t *Tracker) DashArray() float64 {
	return t.Length
}

// Offset returns the current dash offset
func (t *Tracker) Offset() float64 {
	return t.offset
}

// Visible returns the length of the drawn prefix
func (t *Tracker) Visible() float64 {
	return t.Length - t.offset
}

// Direction returns the direction of the last scroll
func (t *Tracker) Direction() Direction {
	return t.direction
}

// Scroll updates the offset for a new scroll position and returns it.
// Scrolling down draws more of the path and scrolling up erases it again.
func (t *Tracker) Scroll(pos, docHeight, viewHeight float64) float64 {
	switch {
	case pos > t.last:
		t.direction = DirectionDown
	case pos < t.last:
		t.direction = DirectionUp
	default:
		t.direction = DirectionNone
	}
	t.last = pos

	t.offset = t.offsetFor(Progress(pos, docHeight, viewHeight))
	return t.offset
}

func (t *Tracker) offsetFor(progress float64) float64 {
	drawn := t.Length * progress * t.Speed
	return clamp(t.Length-drawn-t.Lead, 0, t.Length)
}

func clamp(v, lo, hi float64) float64 {
	if hi < lo {
		return lo
	}
	return math.Max(lo, math.Min(v, hi))
}
