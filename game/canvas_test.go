package game

import (
	"image/color"
	"testing"
)

func TestCanvasClearDropsPreviousOps(t *testing.T) {
	c := NewCanvas()
	c.FillRect(Rect{W: 1, H: 1}, colorHUD)
	c.Text("hi", 1, 2, 13, colorHUD)
	c.Clear()
	c.FillRect(Rect{X: 5, W: 1, H: 1}, colorHUD)

	ops := c.Ops()
	if len(ops) != 2 || ops[0].Kind != OpClear || ops[1].Rect.X != 5 {
		t.Fatalf("ops = %+v", ops)
	}
}

func TestCanvasReplay(t *testing.T) {
	src := NewCanvas()
	src.Clear()
	src.FillRect(Rect{X: 1, Y: 2, W: 3, H: 4}, color.RGBA{R: 9, A: 255})
	src.Text("SCORE 3", 8, 8, 13, colorHUD)

	dst := NewCanvas()
	src.Replay(dst)

	a, b := src.Ops(), dst.Ops()
	if len(a) != len(b) {
		t.Fatalf("replayed %d ops, want %d", len(b), len(a))
	}
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("op %d = %+v, want %+v", i, b[i], a[i])
		}
	}
}

func TestTextWidth(t *testing.T) {
	if got := TextWidth("ABC", 13); got != 21 {
		t.Fatalf("TextWidth = %v, want 21", got)
	}
	if got := TextWidth("", 48); got != 0 {
		t.Fatalf("TextWidth of empty string = %v", got)
	}
}

func TestControlsClick(t *testing.T) {
	started, restarted := 0, 0
	cs := NewControls(func() { started++ }, func() { restarted++ })
	cs.Layout(Size{Width: 800, Height: 600})

	if cs.Click(10, 10) {
		t.Fatal("click outside every control was handled")
	}
	if !cs.Click(400, 300) || started != 1 {
		t.Fatal("start control not activated")
	}

	// restart is hidden until the game ends
	r := cs.Restart.Bounds
	if cs.Click(r.X+1, r.Y+1) || restarted != 0 {
		t.Fatal("hidden restart control was activated")
	}
	cs.Restart.Visible = true
	if !cs.Click(r.X+1, r.Y+1) || restarted != 1 {
		t.Fatal("visible restart control not activated")
	}
}

func TestControlsDrawOnlyVisible(t *testing.T) {
	cs := NewControls(nil, nil)
	cs.Layout(Size{Width: 800, Height: 600})
	c := NewCanvas()
	cs.Draw(c)

	if !hasText(c.Ops(), "START") || hasText(c.Ops(), "RESTART") {
		t.Fatalf("ops = %+v, want only the start control", c.Ops())
	}
	if cs.Start.Activate() {
		t.Fatal("a control without an action must not report activation")
	}
}
