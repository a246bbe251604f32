package core

import "testing"

func TestInputFrame(t *testing.T) {
	f := NewInputFrame()
	if f.Pressed(ActionFire) {
		t.Error("empty frame reports a pressed action")
	}

	f.Set(ActionFire)
	f.Set(ActionLeft)
	if !f.Pressed(ActionFire) || !f.Pressed(ActionLeft) {
		t.Error("set actions not reported as pressed")
	}
	if f.Pressed(ActionRight) {
		t.Error("unset action reported as pressed")
	}

	f.Clear()
	if f.Pressed(ActionFire) || f.Pressed(ActionLeft) {
		t.Error("actions survived Clear")
	}
}

func TestInputFrameWith(t *testing.T) {
	base := NewInputFrame().With(ActionLeft)
	derived := base.With(ActionFire)

	if !derived.Pressed(ActionLeft) || !derived.Pressed(ActionFire) {
		t.Error("With dropped an action")
	}
	if base.Pressed(ActionFire) {
		t.Error("With mutated the original frame")
	}
}

func TestInputFrameSetOnNilMap(t *testing.T) {
	var f InputFrame
	f.Set(ActionPause) // must not panic
	if !f.Pressed(ActionPause) {
		t.Error("Set on zero-value frame did not register")
	}
}
