package display

import (
	"strings"

	"github.com/hajimehoshi/ebiten/v2"
)

// KeyName returns the lowercase name the game's key bindings use,
// e.g. "a" for ebiten.KeyA and "arrowleft" for ebiten.KeyArrowLeft.
func KeyName(k ebiten.Key) string {
	return strings.ToLower(k.String())
}
