package term

import (
	"image/color"
	"math"

	"boxshooter/game"

	"github.com/gdamore/tcell/v2"
)

// Each terminal cell covers CellWidth x CellHeight play-field pixels
const (
	CellWidth  = 8.0
	CellHeight = 16.0
)

const blockRune = '█'

// Screen is the part of tcell.Screen the surface draws on
type Screen interface {
	SetContent(x, y int, primary rune, combining []rune, style tcell.Style)
	Size() (width, height int)
	Clear()
}

// Surface paints game drawing operations as terminal cells
type Surface struct {
	screen Screen
}

// NewSurface creates a surface drawing on screen
func NewSurface(screen Screen) *Surface {
	return &Surface{screen: screen}
}

// FieldSize returns the play-field size in pixels for a cols x rows terminal
func FieldSize(cols, rows int) (int, int) {
	return cols * CellWidth, rows * CellHeight
}

// CellCenter returns the field position at the centre of a cell
func CellCenter(col, row int) (float64, float64) {
	return (float64(col) + 0.5) * CellWidth, (float64(row) + 0.5) * CellHeight
}

// Clear blanks the screen
func (s *Surface) Clear() {
	s.screen.Clear()
}

// FillRect fills every cell the rectangle touches
func (s *Surface) FillRect(r game.Rect, clr color.RGBA) {
	cols, rows := s.screen.Size()
	x0 := max(int(math.Floor(r.X/CellWidth)), 0)
	y0 := max(int(math.Floor(r.Y/CellHeight)), 0)
	x1 := min(int(math.Ceil(r.Right()/CellWidth)), cols)
	y1 := min(int(math.Ceil(r.Bottom()/CellHeight)), rows)

	style := styleFor(clr)
	for y := y0; y < y1; y++ {
		for x := x0; x < x1; x++ {
			s.screen.SetContent(x, y, blockRune, nil, style)
		}
	}
}

// Text writes one line of cells. Cells cannot scale, so the line is
// centred on the box the text would cover at its requested size.
func (s *Surface) Text(str string, x, y, size float64, clr color.RGBA) {
	cols, rows := s.screen.Size()
	runes := []rune(str)

	center := (x + game.TextWidth(str, size)/2) / CellWidth
	col := int(math.Round(center - float64(len(runes))/2))
	row := int((y + size/2) / CellHeight)
	if row < 0 || row >= rows {
		return
	}

	style := styleFor(clr)
	for i, r := range runes {
		if c := col + i; c >= 0 && c < cols {
			s.screen.SetContent(c, row, r, nil, style)
		}
	}
}

func styleFor(clr color.RGBA) tcell.Style {
	return tcell.StyleDefault.Foreground(tcell.NewRGBColor(int32(clr.R), int32(clr.G), int32(clr.B)))
}
