package core

import "testing"

func TestKeyState(t *testing.T) {
	var zero KeyState
	if zero.IsPressed(KeySpace) {
		t.Error("zero KeyState should report nothing pressed")
	}

	keys := NewKeyState()
	keys.Press(KeyArrowRight)
	keys.Press(KeySpace)

	if !keys.IsPressed(KeyArrowRight) || !keys.IsPressed(KeySpace) {
		t.Error("pressed keys should be reported")
	}
	if keys.IsPressed(KeyArrowDown) {
		t.Error("ArrowDown was never pressed")
	}

	clone := keys.Clone()
	keys.Release(KeySpace)
	if keys.IsPressed(KeySpace) {
		t.Error("Release should clear the key")
	}
	if !clone.IsPressed(KeySpace) {
		t.Error("Clone should not share state with the original")
	}

	keys.Clear()
	if keys.IsPressed(KeyArrowRight) {
		t.Error("Clear should release every key")
	}
}

func TestKeyStatePressOnZeroValue(t *testing.T) {
	var keys KeyState
	keys.Press(KeyArrowDown)
	if !keys.IsPressed(KeyArrowDown) {
		t.Error("Press on zero value should allocate and record the key")
	}
}
