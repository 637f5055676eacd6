package input

import "math"

// Vec2 is a 2D vector used for positions and deltas throughout the API.
type Vec2 struct {
	X, Y float64
}

// Sub returns v - o.
func (v Vec2) Sub(o Vec2) Vec2 {
	return Vec2{v.X - o.X, v.Y - o.Y}
}

// MouseButton identifies a mouse button.
type MouseButton uint8

const (
	MouseButtonLeft    MouseButton = iota // primary (left) mouse button
	MouseButtonRight                      // secondary (right) mouse button
	MouseButtonMiddle                     // middle mouse button (scroll wheel click)
	MouseButtonBack                       // fourth button, usually "back"
	MouseButtonForward                    // fifth button, usually "forward"
)

var mouseButtonNames = [...]string{"Left", "Right", "Middle", "Back", "Forward"}

func (b MouseButton) String() string {
	if int(b) < len(mouseButtonNames) {
		return mouseButtonNames[b]
	}
	return "Unknown"
}

// KeyModifiers is a bitmask of keyboard modifier keys.
// Values can be combined with bitwise OR (e.g. ModShift | ModCtrl).
type KeyModifiers uint8

const (
	ModShift KeyModifiers = 1 << iota // Shift key
	ModCtrl                           // Control key
	ModAlt                            // Alt / Option key
	ModMeta                           // Meta / Command / Windows key
)

// TouchPhase is the lifecycle stage of a touch contact.
type TouchPhase uint8

const (
	TouchStarted    TouchPhase = iota // contact began this frame
	TouchStationary                   // contact persists without moving
	TouchMoved                        // contact persists and moved
	TouchEnded                        // contact lifted
	TouchCancelled                    // contact aborted by the platform
)

var touchPhaseNames = [...]string{"Started", "Stationary", "Moved", "Ended", "Cancelled"}

func (p TouchPhase) String() string {
	if int(p) < len(touchPhaseNames) {
		return touchPhaseNames[p]
	}
	return "Unknown"
}

// RawTouchPhase is the phase reported by a platform source. Platforms have no
// notion of a stationary contact; that phase only exists after reconciliation.
type RawTouchPhase uint8

const (
	RawTouchStarted RawTouchPhase = iota
	RawTouchMoved
	RawTouchEnded
	RawTouchCancelled
)

// TouchPhaseFromRaw maps a platform phase to a TouchPhase. Values outside the
// known range map to TouchCancelled.
func TouchPhaseFromRaw(p RawTouchPhase) TouchPhase {
	switch p {
	case RawTouchStarted:
		return TouchStarted
	case RawTouchMoved:
		return TouchMoved
	case RawTouchEnded:
		return TouchEnded
	case RawTouchCancelled:
		return TouchCancelled
	default:
		return TouchCancelled
	}
}

// MouseTouchID is the touch id reserved for the contact synthesized from the
// left mouse button. Platform touches carrying this id are rejected.
const MouseTouchID uint64 = math.MaxUint64

// Touch is a single touch contact. Position is in pixels unless obtained from
// TouchesLocal.
type Touch struct {
	ID       uint64
	Phase    TouchPhase
	Position Vec2
}

// ToLocal converts a pixel position to the range [-1, 1] on each axis for a
// screen of the given size.
func ToLocal(p Vec2, screenW, screenH float64) Vec2 {
	return Vec2{
		X: 2*(p.X/screenW) - 1,
		Y: 2*(p.Y/screenH) - 1,
	}
}

// Display reports the screen geometry needed for coordinate conversion.
type Display interface {
	// ScreenSize returns the screen width and height in pixels.
	ScreenSize() (width, height float64)
	// DeviceScaleFactor returns the ratio of physical to logical pixels.
	DeviceScaleFactor() float64
}

// Window receives cursor requests.
type Window interface {
	SetCursorGrab(grab bool)
	ShowCursor(shown bool)
}

// Source produces raw events from a platform. AppendEvents appends the events
// that arrived since the previous call to events and returns the extended
// slice, in arrival order.
type Source interface {
	AppendEvents(events []Event) []Event
}

// staticDisplay is the fallback Display used until SetDisplay is called.
type staticDisplay struct {
	width, height, scale float64
}

func (d staticDisplay) ScreenSize() (float64, float64) { return d.width, d.height }
func (d staticDisplay) DeviceScaleFactor() float64      { return d.scale }

// nopWindow ignores cursor requests.
type nopWindow struct{}

func (nopWindow) SetCursorGrab(bool) {}
func (nopWindow) ShowCursor(bool)    {}
