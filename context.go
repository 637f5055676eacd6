package input

// Context owns all input state for one window: frame state, touches,
// subscriber logs and injected input. Create one with NewContext at startup
// and drive it from the game loop goroutine; it is not safe for concurrent use.
type Context struct {
	keys  buttonSet[Key]
	mouse buttonSet[MouseButton]
	mods  KeyModifiers

	// keys that transitioned to down this frame, in arrival order
	pressOrder []Key

	mousePos       Vec2 // physical pixels
	wheel          Vec2
	lastMouseLocal Vec2
	hasLastMouse   bool

	chars   charStack
	charsUI charStack

	touches                map[uint64]Touch
	simulateMouseWithTouch bool
	simulateTouchWithMouse bool
	// mouseTouchID is the real touch currently driving the left button when
	// simulateMouseWithTouch is on; mouseFromTouch reports whether one does.
	mouseTouchID   uint64
	mouseFromTouch bool
	// set for the frame in which a touch raised the left button press
	touchRaisedPress bool
	// set once the synthetic touch reported Ended and was removed this frame
	mouseTouchEnded bool

	quitRequested bool
	preventQuit   bool
	cursorGrabbed bool
	cursorShown   bool

	display Display
	window  Window

	subscribers [][]Event
	replaying   bool

	injectQueue [][]Event
	testRunner  *TestRunner

	debug bool
	frame uint64
	stats frameStats
}

// Default screen used until SetDisplay is called.
const (
	defaultScreenW = 800
	defaultScreenH = 600
)

// NewContext creates a Context with touch-raises-mouse simulation enabled and
// mouse-raises-touch simulation disabled.
func NewContext() *Context {
	return &Context{
		keys:                   newButtonSet[Key](),
		mouse:                  newButtonSet[MouseButton](),
		touches:                make(map[uint64]Touch),
		simulateMouseWithTouch: true,
		cursorShown:            true,
		display:                staticDisplay{width: defaultScreenW, height: defaultScreenH, scale: 1},
		window:                 nopWindow{},
	}
}

// SetDisplay sets the collaborator used for screen size and scale queries.
func (c *Context) SetDisplay(d Display) {
	if d == nil {
		d = staticDisplay{width: defaultScreenW, height: defaultScreenH, scale: 1}
	}
	c.display = d
}

// SetWindow sets the collaborator that receives cursor grab and visibility
// requests.
func (c *Context) SetWindow(w Window) {
	if w == nil {
		w = nopWindow{}
	}
	c.window = w
}

// SetDebugMode enables or disables debug mode. When enabled, rejected events
// and per-frame stats are logged to stderr.
func (c *Context) SetDebugMode(enabled bool) {
	c.debug = enabled
}

// SetSimulateMouseWithTouch controls whether real touches also raise mouse
// button and motion state. Enabled by default. Disabling it while a touch
// holds the left button releases the button.
func (c *Context) SetSimulateMouseWithTouch(enabled bool) {
	c.simulateMouseWithTouch = enabled
	if !enabled && c.mouseFromTouch {
		c.mouse.release(MouseButtonLeft)
		c.mouseFromTouch = false
	}
}

// IsSimulatingMouseWithTouch reports whether touches raise mouse state.
func (c *Context) IsSimulatingMouseWithTouch() bool {
	return c.simulateMouseWithTouch
}

// SetSimulateTouchWithMouse controls whether the left mouse button raises a
// synthetic touch with id MouseTouchID. Disabled by default.
func (c *Context) SetSimulateTouchWithMouse(enabled bool) {
	c.simulateTouchWithMouse = enabled
	if !enabled {
		delete(c.touches, MouseTouchID)
	}
}

// IsSimulatingTouchWithMouse reports whether the mouse raises a synthetic touch.
func (c *Context) IsSimulatingTouchWithMouse() bool {
	return c.simulateTouchWithMouse
}

// Dispatch records ev for every subscriber and applies it to the frame state.
// Events must be dispatched in arrival order.
func (c *Context) Dispatch(ev Event) {
	if t, ok := ev.(TouchEvent); ok && t.ID == MouseTouchID {
		c.stats.rejected++
		c.debugf("rejected touch event using reserved id %d", t.ID)
		return
	}
	c.record(ev)
	c.apply(ev)
	c.stats.events++
}

func (c *Context) apply(ev Event) {
	switch e := ev.(type) {
	case KeyDownEvent:
		c.mods = e.Modifiers
		if c.keys.press(e.Key, e.Repeat) {
			c.pressOrder = append(c.pressOrder, e.Key)
		}
	case KeyUpEvent:
		c.mods = e.Modifiers
		c.keys.release(e.Key)
	case CharEvent:
		c.chars.push(e.Char)
		c.charsUI.push(e.Char)
	case MouseMoveEvent:
		c.mousePos = Vec2{e.X, e.Y}
	case RawMouseMotionEvent:
		// Recorded for subscribers only; the absolute position is authoritative.
	case MouseButtonDownEvent:
		c.mousePos = Vec2{e.X, e.Y}
		c.mouse.press(e.Button, false)
	case MouseButtonUpEvent:
		c.mousePos = Vec2{e.X, e.Y}
		c.mouse.release(e.Button)
	case MouseWheelEvent:
		c.wheel.X += e.DX
		c.wheel.Y += e.DY
	case TouchEvent:
		c.applyTouch(e)
	case ResizeEvent:
		// Screen geometry comes from the Display.
	case QuitRequestedEvent:
		c.quitRequested = true
	}
}

// BeginFrame marks a frame boundary: pressed and released sets, the wheel
// delta, both character stacks and the quit request are cleared, touches
// that ended or were cancelled are dropped and the remaining platform touches
// become Stationary until their next event. Down sets are kept.
func (c *Context) BeginFrame() {
	c.keys.endFrame()
	c.mouse.endFrame()
	c.pressOrder = c.pressOrder[:0]
	c.wheel = Vec2{}
	c.chars.clear()
	c.charsUI.clear()
	c.quitRequested = false
	c.touchRaisedPress = false
	c.mouseTouchEnded = false
	for id, t := range c.touches {
		switch {
		case t.Phase == TouchEnded || t.Phase == TouchCancelled:
			delete(c.touches, id)
		case id == MouseTouchID:
			// Reconciled on the next query.
		case t.Phase == TouchStarted || t.Phase == TouchMoved:
			t.Phase = TouchStationary
			c.touches[id] = t
		}
	}
	c.frame++
}

// Update runs one frame tick: it begins a new frame, advances the attached
// TestRunner, dispatches the next injected frame and then every event from
// src. src may be nil.
func (c *Context) Update(src Source) {
	c.debugLog()
	c.stats = frameStats{}
	c.BeginFrame()

	if c.testRunner != nil {
		c.testRunner.step(c)
	}
	c.processInjectedInput()

	if src == nil {
		return
	}
	var events []Event
	events = src.AppendEvents(events)
	for _, ev := range events {
		c.Dispatch(ev)
	}
}

// Frame returns the number of frame boundaries seen so far.
func (c *Context) Frame() uint64 {
	return c.frame
}

// --- Keyboard ---

// IsKeyDown reports whether key is currently held.
func (c *Context) IsKeyDown(key Key) bool {
	return c.keys.isDown(key)
}

// IsKeyPressed reports whether key went down this frame.
func (c *Context) IsKeyPressed(key Key) bool {
	return c.keys.isPressed(key)
}

// IsKeyReleased reports whether key was released this frame.
func (c *Context) IsKeyReleased(key Key) bool {
	return c.keys.isReleased(key)
}

// KeysDown returns the held keys in ascending order.
func (c *Context) KeysDown() []Key {
	return sortedKeys(c.keys.down)
}

// KeysPressed returns the keys that went down this frame in ascending order.
func (c *Context) KeysPressed() []Key {
	return sortedKeys(c.keys.pressed)
}

// LastKeyPressed returns the key that most recently went down this frame.
func (c *Context) LastKeyPressed() (Key, bool) {
	if len(c.pressOrder) == 0 {
		return KeyUnknown, false
	}
	return c.pressOrder[len(c.pressOrder)-1], true
}

// Modifiers returns the modifier state carried by the latest key event.
func (c *Context) Modifiers() KeyModifiers {
	return c.mods
}

// CharPressed pops the most recently typed character. Each call consumes one
// character; ok is false once the frame's characters are exhausted.
func (c *Context) CharPressed() (r rune, ok bool) {
	return c.chars.pop()
}

// CharPressedUI is CharPressed for the queue reserved for UI layers. The two
// queues are filled from the same events and consumed independently.
func (c *Context) CharPressedUI() (r rune, ok bool) {
	return c.charsUI.pop()
}

// --- Mouse ---

// IsMouseButtonDown reports whether btn is currently held.
func (c *Context) IsMouseButtonDown(btn MouseButton) bool {
	return c.mouse.isDown(btn)
}

// IsMouseButtonPressed reports whether btn went down this frame.
func (c *Context) IsMouseButtonPressed(btn MouseButton) bool {
	return c.mouse.isPressed(btn)
}

// IsMouseButtonReleased reports whether btn was released this frame.
func (c *Context) IsMouseButtonReleased(btn MouseButton) bool {
	return c.mouse.isReleased(btn)
}

// MousePosition returns the cursor position in logical pixels.
func (c *Context) MousePosition() (x, y float64) {
	scale := c.scale()
	return c.mousePos.X / scale, c.mousePos.Y / scale
}

// MousePositionLocal returns the cursor position in the range [-1, 1].
func (c *Context) MousePositionLocal() Vec2 {
	x, y := c.MousePosition()
	return c.toLocal(Vec2{x, y})
}

// MouseDeltaPosition returns the local-space position from the previous call
// minus the current one. The first call returns the zero vector.
func (c *Context) MouseDeltaPosition() Vec2 {
	current := c.MousePositionLocal()
	last := current
	if c.hasLastMouse {
		last = c.lastMouseLocal
	}
	c.lastMouseLocal = current
	c.hasLastMouse = true
	return last.Sub(current)
}

// MouseWheel returns the wheel delta accumulated this frame.
func (c *Context) MouseWheel() (dx, dy float64) {
	return c.wheel.X, c.wheel.Y
}

func (c *Context) toLocal(p Vec2) Vec2 {
	w, h := c.display.ScreenSize()
	return ToLocal(p, w, h)
}

// --- Window ---

// SetCursorGrab constrains the cursor to the window.
func (c *Context) SetCursorGrab(grab bool) {
	c.cursorGrabbed = grab
	c.window.SetCursorGrab(grab)
}

// IsCursorGrabbed reports the value of the last SetCursorGrab call.
func (c *Context) IsCursorGrabbed() bool {
	return c.cursorGrabbed
}

// ShowMouse sets cursor visibility.
func (c *Context) ShowMouse(shown bool) {
	c.cursorShown = shown
	c.window.ShowCursor(shown)
}

// IsMouseShown reports the value of the last ShowMouse call.
func (c *Context) IsMouseShown() bool {
	return c.cursorShown
}

// SetPreventQuit controls whether a quit request closes the window. When
// prevented, IsQuitRequested still reports the request for one frame.
func (c *Context) SetPreventQuit(prevent bool) {
	c.preventQuit = prevent
}

// IsQuitPrevented reports the value of the last SetPreventQuit call.
func (c *Context) IsQuitPrevented() bool {
	return c.preventQuit
}

// IsQuitRequested reports whether a quit was requested this frame.
func (c *Context) IsQuitRequested() bool {
	return c.quitRequested
}

// ShouldQuit reports whether the host should close the window now.
func (c *Context) ShouldQuit() bool {
	return c.quitRequested && !c.preventQuit
}
