package input

import (
	"strings"
	"testing"
)

func TestOverlayText(t *testing.T) {
	c := newTestContext()
	c.RegisterSubscriber()
	c.Dispatch(MouseButtonDownEvent{Button: MouseButtonRight, X: 12, Y: 34})
	c.Dispatch(KeyDownEvent{Key: KeyW})
	c.Dispatch(KeyDownEvent{Key: KeyShiftLeft})

	got := overlayText(c)
	for _, want := range []string{
		"Mouse: 12,34 Right",
		"Keys: W ShiftLeft",
		"Touches: 0",
		"Subscribers: 1",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("overlay text missing %q:\n%s", want, got)
		}
	}
}

func TestOverlayTextDoesNotAdvanceMouseTouch(t *testing.T) {
	c := newTestContext()
	c.SetSimulateTouchWithMouse(true)
	c.Dispatch(MouseButtonDownEvent{Button: MouseButtonLeft, X: 1, Y: 1})
	c.Touches()
	c.BeginFrame()
	c.Dispatch(MouseButtonUpEvent{Button: MouseButtonLeft, X: 1, Y: 1})

	overlayText(c)
	if tc, ok := mouseTouch(t, c); !ok || tc.Phase != TouchEnded {
		t.Errorf("game should still observe the Ended contact, got %v (present=%v)", tc.Phase, ok)
	}
}
