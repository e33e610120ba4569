package core

import "testing"

func TestInputFrameKeepsOrderAndRepeats(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionMoveLeft)
	f.Set(ActionRotate)
	f.Set(ActionMoveLeft)
	f.Set(ActionNone)

	got := f.Actions()
	want := []Action{ActionMoveLeft, ActionRotate, ActionMoveLeft}
	if len(got) != len(want) {
		t.Fatalf("Actions() = %v, expected %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("Actions()[%d] = %v, expected %v", i, got[i], want[i])
		}
	}

	if !f.Has(ActionRotate) || f.Has(ActionSoftDrop) {
		t.Error("Has() reports wrong membership")
	}
}

func TestInputFrameClearAndClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionSoftDrop)

	clone := f.Clone()
	f.Clear()

	if f.Len() != 0 {
		t.Errorf("Len() after Clear = %d, expected 0", f.Len())
	}
	if !clone.Has(ActionSoftDrop) {
		t.Error("clone should be independent of the original")
	}
}

func TestActionString(t *testing.T) {
	if ActionRotate.String() != "Rotate" {
		t.Errorf("ActionRotate.String() = %q", ActionRotate.String())
	}
	if Action(99).String() != "Unknown" {
		t.Errorf("Action(99).String() = %q", Action(99).String())
	}
}
