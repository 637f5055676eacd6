package input

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"
)

// Injected input is queued as frames. Update dispatches one queued frame per
// tick, after BeginFrame and before platform events, through the same path as
// platform input, so subscribers record injected events too.
//
// Coordinates passed to the Inject methods are logical pixels (what
// MousePosition reports) and are scaled to physical pixels when queued.

// InjectEvents queues raw events to be dispatched together in one frame.
func (c *Context) InjectEvents(events ...Event) {
	if len(events) == 0 {
		return
	}
	frame := make([]Event, len(events))
	copy(frame, events)
	c.injectQueue = append(c.injectQueue, frame)
}

// InjectPress queues a left button press at the given position.
func (c *Context) InjectPress(x, y float64) {
	px, py := c.toPhysical(x, y)
	c.InjectEvents(MouseButtonDownEvent{Button: MouseButtonLeft, X: px, Y: py})
}

// InjectMove queues a cursor move to the given position. Use it between
// InjectPress and InjectRelease to simulate a drag.
func (c *Context) InjectMove(x, y float64) {
	px, py := c.toPhysical(x, y)
	c.InjectEvents(MouseMoveEvent{X: px, Y: py})
}

// InjectRelease queues a left button release at the given position.
func (c *Context) InjectRelease(x, y float64) {
	px, py := c.toPhysical(x, y)
	c.InjectEvents(MouseButtonUpEvent{Button: MouseButtonLeft, X: px, Y: py})
}

// InjectClick is a convenience that queues a press followed by a release
// at the same position. Consumes two frames.
func (c *Context) InjectClick(x, y float64) {
	c.InjectPress(x, y)
	c.InjectRelease(x, y)
}

// InjectDrag queues a linear drag: press at (fromX, fromY), frames-2
// intermediate moves and a release at (toX, toY). The sequence consumes
// frames frames; the minimum is 2 (press + release).
func (c *Context) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	c.InjectDragEased(fromX, fromY, toX, toY, frames, ease.Linear)
}

// InjectDragEased is InjectDrag with the intermediate positions following the
// easing function fn.
func (c *Context) InjectDragEased(fromX, fromY, toX, toY float64, frames int, fn ease.TweenFunc) {
	if frames < 2 {
		frames = 2
	}
	if fn == nil {
		fn = ease.Linear
	}
	c.InjectPress(fromX, fromY)
	steps := frames - 2
	tx := gween.New(float32(fromX), float32(toX), float32(steps+1), fn)
	ty := gween.New(float32(fromY), float32(toY), float32(steps+1), fn)
	for i := 0; i < steps; i++ {
		x, _ := tx.Update(1)
		y, _ := ty.Update(1)
		c.InjectMove(float64(x), float64(y))
	}
	c.InjectRelease(toX, toY)
}

// InjectWheel queues a wheel delta.
func (c *Context) InjectWheel(dx, dy float64) {
	c.InjectEvents(MouseWheelEvent{DX: dx, DY: dy})
}

// InjectKeyPress queues key down in one frame and key up in the next.
func (c *Context) InjectKeyPress(key Key, mods KeyModifiers) {
	c.InjectEvents(KeyDownEvent{Key: key, Modifiers: mods})
	c.InjectEvents(KeyUpEvent{Key: key, Modifiers: mods})
}

// InjectText queues one character event per rune of s, all in one frame.
func (c *Context) InjectText(s string) {
	var frame []Event
	for _, r := range s {
		frame = append(frame, CharEvent{Char: r})
	}
	c.InjectEvents(frame...)
}

// InjectTouch queues a single touch update.
func (c *Context) InjectTouch(id uint64, phase RawTouchPhase, x, y float64) {
	px, py := c.toPhysical(x, y)
	c.InjectEvents(TouchEvent{ID: id, Phase: phase, X: px, Y: py})
}

// InjectQuit queues a quit request.
func (c *Context) InjectQuit() {
	c.InjectEvents(QuitRequestedEvent{})
}

// PendingInjections returns the number of queued injected frames.
func (c *Context) PendingInjections() int {
	return len(c.injectQueue)
}

// processInjectedInput pops one frame from the inject queue and dispatches it.
// Returns true if a frame was consumed.
func (c *Context) processInjectedInput() bool {
	if len(c.injectQueue) == 0 {
		return false
	}
	frame := c.injectQueue[0]
	copy(c.injectQueue, c.injectQueue[1:])
	c.injectQueue[len(c.injectQueue)-1] = nil
	c.injectQueue = c.injectQueue[:len(c.injectQueue)-1]

	for _, ev := range frame {
		c.Dispatch(ev)
	}
	c.stats.injected += len(frame)
	return true
}

func (c *Context) toPhysical(x, y float64) (float64, float64) {
	s := c.scale()
	return x * s, y * s
}
