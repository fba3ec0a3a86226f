package game

import "strings"

// KeyState maps lowercase key names to their pressed state.
// Only key event handlers write to it; the simulation reads it.
type KeyState struct {
	pressed map[string]bool
}

// NewKeyState creates an empty key state
func NewKeyState() *KeyState {
	return &KeyState{pressed: make(map[string]bool)}
}

// KeyDown records a key press
func (k *KeyState) KeyDown(name string) {
	k.pressed[strings.ToLower(name)] = true
}

// KeyUp records a key release
func (k *KeyState) KeyUp(name string) {
	k.pressed[strings.ToLower(name)] = false
}

// Pressed reports whether a key is currently held
func (k *KeyState) Pressed(name string) bool {
	return k.pressed[strings.ToLower(name)]
}

// Any reports whether any of the named keys is held
func (k *KeyState) Any(names []string) bool {
	for _, name := range names {
		if k.Pressed(name) {
			return true
		}
	}
	return false
}

// Held returns the names of all currently held keys
func (k *KeyState) Held() []string {
	held := make([]string, 0, len(k.pressed))
	for name, down := range k.pressed {
		if down {
			held = append(held, name)
		}
	}
	return held
}

// KeyBindings maps the four movement directions to key names
type KeyBindings struct {
	Left  []string `yaml:"left"`
	Right []string `yaml:"right"`
	Up    []string `yaml:"up"`
	Down  []string `yaml:"down"`
}

// DefaultKeyBindings returns WASD plus the arrow keys
func DefaultKeyBindings() KeyBindings {
	return KeyBindings{
		Left:  []string{"a", "arrowleft"},
		Right: []string{"d", "arrowright"},
		Up:    []string{"w", "arrowup"},
		Down:  []string{"s", "arrowdown"},
	}
}
