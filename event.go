package input

// EventKind identifies the variant of an Event.
type EventKind uint8

const (
	EventKeyDown         EventKind = iota // a key went down (or auto-repeated)
	EventKeyUp                            // a key was released
	EventChar                             // a character was decoded from the keyboard
	EventMouseMove                        // the cursor moved to an absolute position
	EventRawMouseMotion                   // relative motion, reported while the cursor is grabbed
	EventMouseButtonDown                  // a mouse button was pressed
	EventMouseButtonUp                    // a mouse button was released
	EventMouseWheel                       // the wheel scrolled
	EventTouch                            // a touch contact changed
	EventResize                           // the window was resized
	EventQuitRequested                    // the user asked to close the window
)

var eventKindNames = [...]string{
	"key_down", "key_up", "char", "mouse_move", "raw_mouse_motion",
	"mouse_button_down", "mouse_button_up", "mouse_wheel", "touch",
	"resize", "quit_requested",
}

func (k EventKind) String() string {
	if int(k) < len(eventKindNames) {
		return eventKindNames[k]
	}
	return "unknown"
}

// Event is a raw input event. The set of implementations is closed; switch on
// the concrete type to read its fields.
type Event interface {
	Kind() EventKind
	isEvent()
}

// KeyDownEvent reports a key going down. Repeat is set for auto-repeat events
// generated while the key is held.
type KeyDownEvent struct {
	Key       Key
	Modifiers KeyModifiers
	Repeat    bool
}

// KeyUpEvent reports a key release.
type KeyUpEvent struct {
	Key       Key
	Modifiers KeyModifiers
}

// CharEvent carries a decoded character.
type CharEvent struct {
	Char      rune
	Modifiers KeyModifiers
	Repeat    bool
}

// MouseMoveEvent carries the absolute cursor position in physical pixels.
type MouseMoveEvent struct {
	X, Y float64
}

// RawMouseMotionEvent carries unaccelerated relative motion.
type RawMouseMotionEvent struct {
	DX, DY float64
}

// MouseButtonDownEvent reports a button press at a physical pixel position.
type MouseButtonDownEvent struct {
	Button MouseButton
	X, Y   float64
}

// MouseButtonUpEvent reports a button release at a physical pixel position.
type MouseButtonUpEvent struct {
	Button MouseButton
	X, Y   float64
}

// MouseWheelEvent carries a wheel delta.
type MouseWheelEvent struct {
	DX, DY float64
}

// TouchEvent reports a change to a platform touch contact. X and Y are in
// physical pixels.
type TouchEvent struct {
	ID    uint64
	Phase RawTouchPhase
	X, Y  float64
}

// ResizeEvent reports a new window size in pixels.
type ResizeEvent struct {
	Width, Height float64
}

// QuitRequestedEvent reports that the user asked to close the window.
type QuitRequestedEvent struct{}

func (KeyDownEvent) Kind() EventKind         { return EventKeyDown }
func (KeyUpEvent) Kind() EventKind           { return EventKeyUp }
func (CharEvent) Kind() EventKind            { return EventChar }
func (MouseMoveEvent) Kind() EventKind       { return EventMouseMove }
func (RawMouseMotionEvent) Kind() EventKind  { return EventRawMouseMotion }
func (MouseButtonDownEvent) Kind() EventKind { return EventMouseButtonDown }
func (MouseButtonUpEvent) Kind() EventKind   { return EventMouseButtonUp }
func (MouseWheelEvent) Kind() EventKind      { return EventMouseWheel }
func (TouchEvent) Kind() EventKind           { return EventTouch }
func (ResizeEvent) Kind() EventKind          { return EventResize }
func (QuitRequestedEvent) Kind() EventKind   { return EventQuitRequested }

func (KeyDownEvent) isEvent()         {}
func (KeyUpEvent) isEvent()           {}
func (CharEvent) isEvent()            {}
func (MouseMoveEvent) isEvent()       {}
func (RawMouseMotionEvent) isEvent()  {}
func (MouseButtonDownEvent) isEvent() {}
func (MouseButtonUpEvent) isEvent()   {}
func (MouseWheelEvent) isEvent()      {}
func (TouchEvent) isEvent()           {}
func (ResizeEvent) isEvent()          {}
func (QuitRequestedEvent) isEvent()   {}

// Handler consumes replayed raw events.
type Handler interface {
	HandleEvent(ev Event)
}

// HandlerFunc adapts an ordinary function to the Handler interface.
type HandlerFunc func(ev Event)

// HandleEvent calls f(ev).
func (f HandlerFunc) HandleEvent(ev Event) {
	f(ev)
}
