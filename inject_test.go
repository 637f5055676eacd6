package input

import (
	"testing"

	"github.com/tanema/gween/ease"
)

func TestInjectClick(t *testing.T) {
	c := newTestContext()
	c.InjectClick(100, 200)

	if c.PendingInjections() != 2 {
		t.Fatalf("expected 2 queued frames, got %d", c.PendingInjections())
	}

	c.Update(nil)
	if !c.IsMouseButtonPressed(MouseButtonLeft) {
		t.Error("first frame should press the left button")
	}
	if x, y := c.MousePosition(); x != 100 || y != 200 {
		t.Errorf("MousePosition = (%v,%v), want (100,200)", x, y)
	}

	c.Update(nil)
	if !c.IsMouseButtonReleased(MouseButtonLeft) {
		t.Error("second frame should release the left button")
	}
	if c.PendingInjections() != 0 {
		t.Errorf("queue should be drained, has %d", c.PendingInjections())
	}
}

func TestInjectScaledToPhysical(t *testing.T) {
	c := NewContext()
	c.SetDisplay(testDisplay{w: 400, h: 300, scale: 2})
	id := c.RegisterSubscriber()
	c.InjectMove(50, 60)
	c.Update(nil)

	if x, y := c.MousePosition(); x != 50 || y != 60 {
		t.Errorf("MousePosition = (%v,%v), want (50,60)", x, y)
	}
	var rec recorder
	c.Replay(id, &rec)
	if len(rec.events) != 1 || rec.events[0] != Event(MouseMoveEvent{X: 100, Y: 120}) {
		t.Errorf("recorded %v, want a move at physical (100,120)", rec.events)
	}
}

func TestInjectDrag(t *testing.T) {
	c := newTestContext()
	c.InjectDrag(0, 0, 100, 50, 6)

	if c.PendingInjections() != 6 {
		t.Fatalf("expected 6 frames, got %d", c.PendingInjections())
	}

	c.Update(nil)
	if !c.IsMouseButtonPressed(MouseButtonLeft) {
		t.Fatal("drag should start with a press")
	}

	wantX := []float64{20, 40, 60, 80}
	for i, want := range wantX {
		c.Update(nil)
		x, _ := c.MousePosition()
		if !approxEqual(x, want) {
			t.Errorf("move %d: x = %v, want %v", i, x, want)
		}
		if !c.IsMouseButtonDown(MouseButtonLeft) {
			t.Errorf("move %d: button should stay down", i)
		}
	}

	c.Update(nil)
	if !c.IsMouseButtonReleased(MouseButtonLeft) {
		t.Error("drag should end with a release")
	}
	if x, y := c.MousePosition(); x != 100 || y != 50 {
		t.Errorf("release position = (%v,%v), want (100,50)", x, y)
	}
}

func TestInjectDragMinimumFrames(t *testing.T) {
	c := newTestContext()
	c.InjectDrag(0, 0, 10, 10, 0)
	if c.PendingInjections() != 2 {
		t.Errorf("expected press and release only, got %d frames", c.PendingInjections())
	}
}

func TestInjectDragEased(t *testing.T) {
	c := newTestContext()
	c.InjectDragEased(0, 0, 100, 0, 4, ease.InQuad)

	c.Update(nil) // press
	c.Update(nil)
	first, _ := c.MousePosition()
	c.Update(nil)
	second, _ := c.MousePosition()

	// InQuad over 3 steps: 100*(1/3)^2 then 100*(2/3)^2.
	if first >= second {
		t.Errorf("eased moves should advance, got %v then %v", first, second)
	}
	if first > 100.0/3 {
		t.Errorf("InQuad should start slower than linear, got %v", first)
	}
}

func TestInjectKeyPress(t *testing.T) {
	c := newTestContext()
	c.InjectKeyPress(KeyEnter, ModCtrl)

	c.Update(nil)
	if !c.IsKeyPressed(KeyEnter) {
		t.Error("first frame should press the key")
	}
	if c.Modifiers() != ModCtrl {
		t.Errorf("Modifiers = %v, want ctrl", c.Modifiers())
	}
	c.Update(nil)
	if !c.IsKeyReleased(KeyEnter) || c.IsKeyDown(KeyEnter) {
		t.Error("second frame should release the key")
	}
}

func TestInjectText(t *testing.T) {
	c := newTestContext()
	c.InjectText("ok")
	if c.PendingInjections() != 1 {
		t.Fatalf("text should fit in one frame, got %d", c.PendingInjections())
	}
	c.Update(nil)

	if r, _ := c.CharPressed(); r != 'k' {
		t.Errorf("first CharPressed = %q, want 'k'", r)
	}
	if r, _ := c.CharPressed(); r != 'o' {
		t.Errorf("second CharPressed = %q, want 'o'", r)
	}
}

func TestInjectTextEmpty(t *testing.T) {
	c := newTestContext()
	c.InjectText("")
	if c.PendingInjections() != 0 {
		t.Error("empty text should not queue a frame")
	}
}

func TestInjectWheelAndQuit(t *testing.T) {
	c := newTestContext()
	c.InjectEvents(MouseWheelEvent{DY: 2}, QuitRequestedEvent{})
	c.Update(nil)

	if _, dy := c.MouseWheel(); dy != 2 {
		t.Errorf("wheel dy = %v, want 2", dy)
	}
	if !c.ShouldQuit() {
		t.Error("quit should be requested")
	}
	c.Update(nil)
	if c.IsQuitRequested() {
		t.Error("quit request should last one frame")
	}
}

func TestInjectTouch(t *testing.T) {
	c := newTestContext()
	c.InjectTouch(5, RawTouchStarted, 30, 40)
	c.InjectTouch(5, RawTouchEnded, 30, 40)

	c.Update(nil)
	touches := c.Touches()
	if len(touches) != 1 || touches[0].ID != 5 || touches[0].Phase != TouchStarted {
		t.Fatalf("Touches = %v, want id 5 started", touches)
	}
	c.Update(nil)
	if touches := c.Touches(); len(touches) != 1 || touches[0].Phase != TouchEnded {
		t.Errorf("Touches = %v, want id 5 ended", touches)
	}
	c.Update(nil)
	if len(c.Touches()) != 0 {
		t.Error("ended touch should be gone")
	}
}

func TestInjectedBeforePlatformEvents(t *testing.T) {
	c := newTestContext()
	id := c.RegisterSubscriber()
	c.InjectEvents(KeyDownEvent{Key: KeyA})
	c.Update(&sliceSource{frames: [][]Event{{KeyDownEvent{Key: KeyB}}}})

	var rec recorder
	c.Replay(id, &rec)
	if len(rec.events) != 2 {
		t.Fatalf("expected 2 events, got %v", rec.events)
	}
	if rec.events[0].(KeyDownEvent).Key != KeyA {
		t.Errorf("injected event should be dispatched first, got %v", rec.events)
	}
}
