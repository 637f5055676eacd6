package input

import (
	"cmp"
	"slices"
)

// applyTouch stores a platform touch and, when enabled, mirrors the first
// active contact onto the left mouse button.
func (c *Context) applyTouch(e TouchEvent) {
	phase := TouchPhaseFromRaw(e.Phase)
	if c.simulateMouseWithTouch {
		c.touchToMouse(e, phase)
	}
	scale := c.scale()
	c.touches[e.ID] = Touch{
		ID:       e.ID,
		Phase:    phase,
		Position: Vec2{e.X / scale, e.Y / scale},
	}
}

// touchToMouse raises mouse state from a touch. Only one contact drives the
// mouse at a time; further fingers are ignored until it lifts.
func (c *Context) touchToMouse(e TouchEvent, phase TouchPhase) {
	pos := Vec2{e.X, e.Y}
	switch phase {
	case TouchStarted:
		if c.mouseFromTouch || c.mouse.isDown(MouseButtonLeft) {
			return
		}
		c.mouseFromTouch = true
		c.mouseTouchID = e.ID
		c.touchRaisedPress = true
		c.mousePos = pos
		c.mouse.press(MouseButtonLeft, false)
	case TouchMoved, TouchStationary:
		if c.mouseFromTouch && c.mouseTouchID == e.ID {
			c.mousePos = pos
		}
	case TouchEnded, TouchCancelled:
		if c.mouseFromTouch && c.mouseTouchID == e.ID {
			c.mousePos = pos
			c.mouse.release(MouseButtonLeft)
			c.mouseFromTouch = false
		}
	}
}

// updateMouseTouch reconciles the synthetic mouse touch with the current
// mouse state. It runs on every touch query, so its result does not depend on
// how many times per frame touches are polled.
//
// An Ended contact is reported by exactly one query; the next query removes it.
func (c *Context) updateMouseTouch() {
	if !c.simulateTouchWithMouse {
		return
	}
	mx, my := c.MousePosition()
	pos := Vec2{mx, my}

	t, ok := c.touches[MouseTouchID]
	if !ok {
		// A press raised by a real touch already has its own contact, and a
		// press already reported as Ended this frame is not started again.
		if c.mouse.isPressed(MouseButtonLeft) && !c.touchRaisedPress && !c.mouseTouchEnded {
			c.touches[MouseTouchID] = Touch{ID: MouseTouchID, Phase: TouchStarted, Position: pos}
		}
		return
	}

	remove := false
	switch {
	case t.Phase == TouchEnded:
		remove = true
	case c.mouse.isReleased(MouseButtonLeft):
		t.Phase = TouchEnded
	case !c.mouse.isDown(MouseButtonLeft):
		// The release was missed or already consumed.
		remove = true
	case t.Position != pos:
		t.Phase = TouchMoved
	default:
		t.Phase = TouchStationary
	}
	t.Position = pos

	if remove {
		delete(c.touches, MouseTouchID)
		c.mouseTouchEnded = true
		return
	}
	c.touches[MouseTouchID] = t
}

// Touches returns all touch contacts in logical pixels, ordered by id.
func (c *Context) Touches() []Touch {
	c.updateMouseTouch()
	out := make([]Touch, 0, len(c.touches))
	for _, t := range c.touches {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b Touch) int { return cmp.Compare(a.ID, b.ID) })
	return out
}

// TouchesLocal returns Touches with positions in the range [-1, 1].
func (c *Context) TouchesLocal() []Touch {
	out := c.Touches()
	for i := range out {
		out[i].Position = c.toLocal(out[i].Position)
	}
	return out
}

func (c *Context) scale() float64 {
	s := c.display.DeviceScaleFactor()
	if s <= 0 {
		return 1
	}
	return s
}
