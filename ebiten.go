package input

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// EbitenSource polls Ebitengine's input state once per tick and converts it
// into raw events. It must be used from ebiten.Game.Update.
type EbitenSource struct {
	keys     []ebiten.Key
	chars    []rune
	touchIDs []ebiten.TouchID

	cursorX, cursorY int
	hasCursor        bool
	winW, winH       int
}

// NewEbitenSource creates a source reading from Ebitengine.
func NewEbitenSource() *EbitenSource {
	return &EbitenSource{}
}

var ebitenButtons = [...]struct {
	eb  ebiten.MouseButton
	btn MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
	{ebiten.MouseButton3, MouseButtonBack},
	{ebiten.MouseButton4, MouseButtonForward},
}

// AppendEvents appends the events observed since the previous tick. Positions
// are reported in physical pixels.
func (s *EbitenSource) AppendEvents(events []Event) []Event {
	scale := ebiten.Monitor().DeviceScaleFactor()
	mods := readModifiers()

	if w, h := ebiten.WindowSize(); w != s.winW || h != s.winH {
		if s.winW != 0 || s.winH != 0 {
			events = append(events, ResizeEvent{Width: float64(w), Height: float64(h)})
		}
		s.winW, s.winH = w, h
	}

	s.keys = inpututil.AppendJustPressedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := ebitenKeys[k]; ok {
			events = append(events, KeyDownEvent{Key: key, Modifiers: mods})
		}
	}
	s.keys = inpututil.AppendJustReleasedKeys(s.keys[:0])
	for _, k := range s.keys {
		if key, ok := ebitenKeys[k]; ok {
			events = append(events, KeyUpEvent{Key: key, Modifiers: mods})
		}
	}

	s.chars = ebiten.AppendInputChars(s.chars[:0])
	for _, r := range s.chars {
		events = append(events, CharEvent{Char: r, Modifiers: mods})
	}

	cx, cy := ebiten.CursorPosition()
	px, py := float64(cx)*scale, float64(cy)*scale
	if !s.hasCursor || cx != s.cursorX || cy != s.cursorY {
		if s.hasCursor && ebiten.CursorMode() == ebiten.CursorModeCaptured {
			events = append(events, RawMouseMotionEvent{
				DX: float64(cx-s.cursorX) * scale,
				DY: float64(cy-s.cursorY) * scale,
			})
		}
		events = append(events, MouseMoveEvent{X: px, Y: py})
		s.cursorX, s.cursorY = cx, cy
		s.hasCursor = true
	}

	for _, b := range ebitenButtons {
		if inpututil.IsMouseButtonJustPressed(b.eb) {
			events = append(events, MouseButtonDownEvent{Button: b.btn, X: px, Y: py})
		}
		if inpututil.IsMouseButtonJustReleased(b.eb) {
			events = append(events, MouseButtonUpEvent{Button: b.btn, X: px, Y: py})
		}
	}

	if dx, dy := ebiten.Wheel(); dx != 0 || dy != 0 {
		events = append(events, MouseWheelEvent{DX: dx, DY: dy})
	}

	events = s.appendTouchEvents(events, scale)

	if ebiten.IsWindowBeingClosed() {
		events = append(events, QuitRequestedEvent{})
	}
	return events
}

// appendTouchEvents derives touch phases from the current and previous tick.
// Ebitengine reports contacts, not phases: new ids are started, vanished ids
// ended, and the rest moved when their position changed.
func (s *EbitenSource) appendTouchEvents(events []Event, scale float64) []Event {
	s.touchIDs = inpututil.AppendJustPressedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := ebiten.TouchPosition(id)
		events = append(events, TouchEvent{
			ID: uint64(id), Phase: RawTouchStarted,
			X: float64(x) * scale, Y: float64(y) * scale,
		})
	}

	s.touchIDs = ebiten.AppendTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		if inpututil.TouchPressDuration(id) <= 1 {
			continue
		}
		x, y := ebiten.TouchPosition(id)
		px, py := inpututil.TouchPositionInPreviousTick(id)
		if x == px && y == py {
			continue
		}
		events = append(events, TouchEvent{
			ID: uint64(id), Phase: RawTouchMoved,
			X: float64(x) * scale, Y: float64(y) * scale,
		})
	}

	s.touchIDs = inpututil.AppendJustReleasedTouchIDs(s.touchIDs[:0])
	for _, id := range s.touchIDs {
		x, y := inpututil.TouchPositionInPreviousTick(id)
		events = append(events, TouchEvent{
			ID: uint64(id), Phase: RawTouchEnded,
			X: float64(x) * scale, Y: float64(y) * scale,
		})
	}
	return events
}

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) {
		mods |= ModMeta
	}
	return mods
}

// EbitenDisplay reports the game screen size and the monitor scale factor.
// The size is the one last passed to SetLayout, or the window size before
// the first layout.
type EbitenDisplay struct {
	width, height int
}

// SetLayout records the outside size given to ebiten.Game.Layout.
func (d *EbitenDisplay) SetLayout(width, height int) {
	d.width, d.height = width, height
}

// ScreenSize implements Display.
func (d *EbitenDisplay) ScreenSize() (float64, float64) {
	if d.width > 0 && d.height > 0 {
		return float64(d.width), float64(d.height)
	}
	w, h := ebiten.WindowSize()
	return float64(w), float64(h)
}

// DeviceScaleFactor implements Display.
func (d *EbitenDisplay) DeviceScaleFactor() float64 {
	return ebiten.Monitor().DeviceScaleFactor()
}

// EbitenWindow applies cursor requests through ebiten.SetCursorMode. A
// grabbed cursor is captured (and therefore hidden) regardless of visibility.
type EbitenWindow struct {
	grabbed bool
	hidden  bool
}

// SetCursorGrab implements Window.
func (w *EbitenWindow) SetCursorGrab(grab bool) {
	w.grabbed = grab
	w.apply()
}

// ShowCursor implements Window.
func (w *EbitenWindow) ShowCursor(shown bool) {
	w.hidden = !shown
	w.apply()
}

func (w *EbitenWindow) apply() {
	ebiten.SetCursorMode(w.cursorMode())
}

func (w *EbitenWindow) cursorMode() ebiten.CursorModeType {
	switch {
	case w.grabbed:
		return ebiten.CursorModeCaptured
	case w.hidden:
		return ebiten.CursorModeHidden
	default:
		return ebiten.CursorModeVisible
	}
}

// ebitenKeys maps Ebitengine keys to Key. Keys missing from the table are
// not reported.
var ebitenKeys = map[ebiten.Key]Key{
	ebiten.KeyA:            KeyA,
	ebiten.KeyB:            KeyB,
	ebiten.KeyC:            KeyC,
	ebiten.KeyD:            KeyD,
	ebiten.KeyE:            KeyE,
	ebiten.KeyF:            KeyF,
	ebiten.KeyG:            KeyG,
	ebiten.KeyH:            KeyH,
	ebiten.KeyI:            KeyI,
	ebiten.KeyJ:            KeyJ,
	ebiten.KeyK:            KeyK,
	ebiten.KeyL:            KeyL,
	ebiten.KeyM:            KeyM,
	ebiten.KeyN:            KeyN,
	ebiten.KeyO:            KeyO,
	ebiten.KeyP:            KeyP,
	ebiten.KeyQ:            KeyQ,
	ebiten.KeyR:            KeyR,
	ebiten.KeyS:            KeyS,
	ebiten.KeyT:            KeyT,
	ebiten.KeyU:            KeyU,
	ebiten.KeyV:            KeyV,
	ebiten.KeyW:            KeyW,
	ebiten.KeyX:            KeyX,
	ebiten.KeyY:            KeyY,
	ebiten.KeyZ:            KeyZ,
	ebiten.KeyDigit0:       KeyDigit0,
	ebiten.KeyDigit1:       KeyDigit1,
	ebiten.KeyDigit2:       KeyDigit2,
	ebiten.KeyDigit3:       KeyDigit3,
	ebiten.KeyDigit4:       KeyDigit4,
	ebiten.KeyDigit5:       KeyDigit5,
	ebiten.KeyDigit6:       KeyDigit6,
	ebiten.KeyDigit7:       KeyDigit7,
	ebiten.KeyDigit8:       KeyDigit8,
	ebiten.KeyDigit9:       KeyDigit9,
	ebiten.KeyF1:           KeyF1,
	ebiten.KeyF2:           KeyF2,
	ebiten.KeyF3:           KeyF3,
	ebiten.KeyF4:           KeyF4,
	ebiten.KeyF5:           KeyF5,
	ebiten.KeyF6:           KeyF6,
	ebiten.KeyF7:           KeyF7,
	ebiten.KeyF8:           KeyF8,
	ebiten.KeyF9:           KeyF9,
	ebiten.KeyF10:          KeyF10,
	ebiten.KeyF11:          KeyF11,
	ebiten.KeyF12:          KeyF12,
	ebiten.KeyArrowUp:      KeyArrowUp,
	ebiten.KeyArrowDown:    KeyArrowDown,
	ebiten.KeyArrowLeft:    KeyArrowLeft,
	ebiten.KeyArrowRight:   KeyArrowRight,
	ebiten.KeySpace:        KeySpace,
	ebiten.KeyEnter:        KeyEnter,
	ebiten.KeyEscape:       KeyEscape,
	ebiten.KeyTab:          KeyTab,
	ebiten.KeyBackspace:    KeyBackspace,
	ebiten.KeyDelete:       KeyDelete,
	ebiten.KeyInsert:       KeyInsert,
	ebiten.KeyHome:         KeyHome,
	ebiten.KeyEnd:          KeyEnd,
	ebiten.KeyPageUp:       KeyPageUp,
	ebiten.KeyPageDown:     KeyPageDown,
	ebiten.KeyMinus:        KeyMinus,
	ebiten.KeyEqual:        KeyEqual,
	ebiten.KeyComma:        KeyComma,
	ebiten.KeyPeriod:       KeyPeriod,
	ebiten.KeySlash:        KeySlash,
	ebiten.KeyBackslash:    KeyBackslash,
	ebiten.KeySemicolon:    KeySemicolon,
	ebiten.KeyQuote:        KeyQuote,
	ebiten.KeyBackquote:    KeyBackquote,
	ebiten.KeyBracketLeft:  KeyBracketLeft,
	ebiten.KeyBracketRight: KeyBracketRight,
	ebiten.KeyCapsLock:     KeyCapsLock,
	ebiten.KeyShiftLeft:    KeyShiftLeft,
	ebiten.KeyShiftRight:   KeyShiftRight,
	ebiten.KeyControlLeft:  KeyControlLeft,
	ebiten.KeyControlRight: KeyControlRight,
	ebiten.KeyAltLeft:      KeyAltLeft,
	ebiten.KeyAltRight:     KeyAltRight,
	ebiten.KeyMetaLeft:     KeyMetaLeft,
	ebiten.KeyMetaRight:    KeyMetaRight,
}
