package core

// Key names a physical key in the browser-style naming the game logic uses.
type Key string

const (
	KeyArrowRight Key = "ArrowRight" // start running
	KeyArrowDown  Key = "ArrowDown"  // slide
	KeySpace      Key = "Space"      // jump
)

// KeyState is the read-only snapshot of pressed keys for a single tick.
// The platform fills it from terminal input and clears it after each step.
type KeyState struct {
	pressed map[Key]bool
}

// NewKeyState creates an empty key snapshot.
func NewKeyState() KeyState {
	return KeyState{
		pressed: make(map[Key]bool),
	}
}

// Press marks a key as held for this tick.
func (k *KeyState) Press(key Key) {
	if k.pressed == nil {
		k.pressed = make(map[Key]bool)
	}
	k.pressed[key] = true
}

// Release marks a key as no longer held.
func (k *KeyState) Release(key Key) {
	delete(k.pressed, key)
}

// IsPressed returns true if the key is held in this snapshot.
func (k KeyState) IsPressed(key Key) bool {
	if k.pressed == nil {
		return false
	}
	return k.pressed[key]
}

// Clear releases all keys for the next tick.
func (k *KeyState) Clear() {
	for key := range k.pressed {
		delete(k.pressed, key)
	}
}

// Clone creates an independent copy of this snapshot.
func (k KeyState) Clone() KeyState {
	clone := NewKeyState()
	for key, v := range k.pressed {
		clone.pressed[key] = v
	}
	return clone
}
