package display

import (
	"image/color"

	"boxshooter/game"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font/basicfont"
)

// fontHeight is the line height of the 7x13 face that game.TextWidth assumes
const fontHeight = 13.0

var background = color.RGBA{A: 255}

// Surface paints game drawing operations onto an ebiten image
type Surface struct {
	dst  *ebiten.Image
	face *text.GoXFace
}

// NewSurface creates a surface; call SetTarget before drawing
func NewSurface() *Surface {
	return &Surface{face: text.NewGoXFace(basicfont.Face7x13)}
}

// SetTarget points the surface at the image for this frame
func (s *Surface) SetTarget(dst *ebiten.Image) {
	s.dst = dst
}

// Clear fills the target with the background color
func (s *Surface) Clear() {
	s.dst.Fill(background)
}

// FillRect draws a filled rectangle
func (s *Surface) FillRect(r game.Rect, clr color.RGBA) {
	vector.DrawFilledRect(s.dst, float32(r.X), float32(r.Y), float32(r.W), float32(r.H), clr, false)
}

// Text draws a line of text scaled to size pixels high
func (s *Surface) Text(str string, x, y, size float64, clr color.RGBA) {
	op := &text.DrawOptions{}
	scale := size / fontHeight
	op.GeoM.Scale(scale, scale)
	op.GeoM.Translate(x, y)
	op.ColorScale.ScaleWithColor(clr)
	text.Draw(s.dst, str, s.face, op)
}
