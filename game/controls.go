package game

import "image/color"

// Button geometry in field pixels
const (
	buttonWidth    = 200.0
	buttonHeight   = 50.0
	buttonTextSize = 26.0
)

var (
	colorButton     = color.RGBA{R: 40, G: 40, B: 70, A: 255}
	colorButtonText = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

// Control is an on-screen button with binary visibility
type Control struct {
	Name    string
	Label   string
	Visible bool
	Bounds  Rect

	onActivate func()
}

// Activate runs the control's action if it is visible
func (c *Control) Activate() bool {
	if !c.Visible || c.onActivate == nil {
		return false
	}
	c.onActivate()
	return true
}

// Draw renders a visible control
func (c *Control) Draw(s Surface) {
	if !c.Visible {
		return
	}
	s.FillRect(c.Bounds, colorButton)
	tw := TextWidth(c.Label, buttonTextSize)
	s.Text(c.Label,
		c.Bounds.X+(c.Bounds.W-tw)/2,
		c.Bounds.Y+(c.Bounds.H-buttonTextSize)/2,
		buttonTextSize, colorButtonText)
}

// Controls holds the start and restart buttons
type Controls struct {
	Start   *Control
	Restart *Control
}

// NewControls creates a visible start button and a hidden restart button
func NewControls(onStart, onRestart func()) *Controls {
	return &Controls{
		Start:   &Control{Name: "start", Label: "START", Visible: true, onActivate: onStart},
		Restart: &Control{Name: "restart", Label: "RESTART", onActivate: onRestart},
	}
}

// Layout centres both buttons; restart sits below the game-over line
func (cs *Controls) Layout(field Size) {
	x := (field.Width - buttonWidth) / 2
	cs.Start.Bounds = Rect{X: x, Y: (field.Height - buttonHeight) / 2, W: buttonWidth, H: buttonHeight}
	cs.Restart.Bounds = Rect{X: x, Y: field.Height/2 + buttonHeight, W: buttonWidth, H: buttonHeight}
}

// Click activates the visible control under (x, y)
func (cs *Controls) Click(x, y float64) bool {
	for _, c := range cs.All() {
		if c.Visible && c.Bounds.Contains(x, y) {
			return c.Activate()
		}
	}
	return false
}

// Draw renders every visible control
func (cs *Controls) Draw(s Surface) {
	for _, c := range cs.All() {
		c.Draw(s)
	}
}

// All returns the controls in draw order
func (cs *Controls) All() []*Control {
	return []*Control{cs.Start, cs.Restart}
}
