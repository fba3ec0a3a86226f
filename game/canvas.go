package game

import "image/color"

// Surface is a 2D drawing target in play-field pixels
type Surface interface {
	// Clear wipes the whole surface
	Clear()

	// FillRect draws a filled rectangle
	FillRect(r Rect, clr color.RGBA)

	// Text draws a single line with its top-left corner at (x, y).
	// size is the line height in pixels.
	Text(s string, x, y, size float64, clr color.RGBA)
}

// OpKind identifies a recorded drawing operation
type OpKind int

const (
	OpClear OpKind = iota
	OpFillRect
	OpText
)

// DrawOp is one recorded drawing operation. Text ops use Rect.X/Rect.Y as origin.
type DrawOp struct {
	Kind  OpKind
	Rect  Rect
	Color color.RGBA
	Text  string
	Size  float64
}

// Canvas records drawing operations so a host can replay them on its own
// surface. The frame driver draws during the simulation tick; hosts paint later.
type Canvas struct {
	ops []DrawOp
}

// NewCanvas creates an empty canvas
func NewCanvas() *Canvas {
	return &Canvas{ops: make([]DrawOp, 0, 256)}
}

// Clear drops everything recorded so far and records a clear
func (c *Canvas) Clear() {
	c.ops = append(c.ops[:0], DrawOp{Kind: OpClear})
}

// FillRect records a filled rectangle
func (c *Canvas) FillRect(r Rect, clr color.RGBA) {
	c.ops = append(c.ops, DrawOp{Kind: OpFillRect, Rect: r, Color: clr})
}

// Text records a line of text
func (c *Canvas) Text(s string, x, y, size float64, clr color.RGBA) {
	c.ops = append(c.ops, DrawOp{Kind: OpText, Rect: Rect{X: x, Y: y}, Color: clr, Text: s, Size: size})
}

// Ops returns the recorded operations. The slice is reused by the next Clear.
func (c *Canvas) Ops() []DrawOp {
	return c.ops
}

// Replay draws every recorded operation onto dst in order
func (c *Canvas) Replay(dst Surface) {
	for _, op := range c.ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpFillRect:
			dst.FillRect(op.Rect, op.Color)
		case OpText:
			dst.Text(op.Text, op.Rect.X, op.Rect.Y, op.Size, op.Color)
		}
	}
}

// TextWidth estimates the rendered width of s at the given line height,
// using the 7x13 bitmap font metrics every host shares.
func TextWidth(s string, size float64) float64 {
	return float64(len([]rune(s))) * size * 7 / 13
}
