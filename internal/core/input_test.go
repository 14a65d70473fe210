package core

import "testing"

func TestInputFrameDirection(t *testing.T) {
	tests := []struct {
		name     string
		actions  []Action
		expected Direction
	}{
		{"no input", nil, None},
		{"pause only", []Action{ActionPause}, None},
		{"left", []Action{ActionLeft}, Left},
		{"right", []Action{ActionRight}, Right},
		{"up beats right", []Action{ActionRight, ActionUp}, Up},
		{"down beats left", []Action{ActionLeft, ActionDown}, Down},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			f := NewInputFrame()
			for _, a := range tc.actions {
				f.Set(a)
			}
			if got := f.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestInputFrameCloneIsIndependent(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)

	clone := f.Clone()
	f.Clear()

	if f.Has(ActionUp) {
		t.Error("Clear should remove actions")
	}
	if !clone.Has(ActionUp) {
		t.Error("clone should keep actions after the original is cleared")
	}

	var zero InputFrame
	if zero.Has(ActionQuit) {
		t.Error("zero frame should have no actions")
	}
	zero.Set(ActionQuit)
	if !zero.Has(ActionQuit) {
		t.Error("Set on a zero frame should allocate")
	}
}
