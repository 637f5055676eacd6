package input

// Key identifies a keyboard key independently of the platform.
type Key uint8

const (
	KeyUnknown Key = iota // key not known to this package
	KeyA
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ

	KeyDigit0
	KeyDigit1
	KeyDigit2
	KeyDigit3
	KeyDigit4
	KeyDigit5
	KeyDigit6
	KeyDigit7
	KeyDigit8
	KeyDigit9

	KeyF1
	KeyF2
	KeyF3
	KeyF4
	KeyF5
	KeyF6
	KeyF7
	KeyF8
	KeyF9
	KeyF10
	KeyF11
	KeyF12

	KeyArrowUp
	KeyArrowDown
	KeyArrowLeft
	KeyArrowRight

	KeySpace
	KeyEnter
	KeyEscape
	KeyTab
	KeyBackspace
	KeyDelete
	KeyInsert
	KeyHome
	KeyEnd
	KeyPageUp
	KeyPageDown

	KeyMinus
	KeyEqual
	KeyComma
	KeyPeriod
	KeySlash
	KeyBackslash
	KeySemicolon
	KeyQuote
	KeyBackquote
	KeyBracketLeft
	KeyBracketRight

	KeyCapsLock
	KeyShiftLeft
	KeyShiftRight
	KeyControlLeft
	KeyControlRight
	KeyAltLeft
	KeyAltRight
	KeyMetaLeft
	KeyMetaRight

	keyCount // number of keys, not a key
)

// keyNames is indexed by Key.
var keyNames = [keyCount]string{
	"Unknown", "A", "B", "C", "D", "E", "F", "G", "H", "I", "J", "K", "L", "M",
	"N", "O", "P", "Q", "R", "S", "T", "U", "V", "W", "X", "Y", "Z", "Digit0",
	"Digit1", "Digit2", "Digit3", "Digit4", "Digit5", "Digit6", "Digit7", "Digit8",
	"Digit9", "F1", "F2", "F3", "F4", "F5", "F6", "F7", "F8", "F9", "F10", "F11",
	"F12", "ArrowUp", "ArrowDown", "ArrowLeft", "ArrowRight", "Space", "Enter",
	"Escape", "Tab", "Backspace", "Delete", "Insert", "Home", "End", "PageUp",
	"PageDown", "Minus", "Equal", "Comma", "Period", "Slash", "Backslash", "Semicolon",
	"Quote", "Backquote", "BracketLeft", "BracketRight", "CapsLock", "ShiftLeft",
	"ShiftRight", "ControlLeft", "ControlRight", "AltLeft", "AltRight", "MetaLeft",
	"MetaRight",
}

func (k Key) String() string {
	if k < keyCount {
		return keyNames[k]
	}
	return "Unknown"
}

// ParseKey returns the Key whose String form is name.
func ParseKey(name string) (Key, bool) {
	for k := KeyA; k < keyCount; k++ {
		if keyNames[k] == name {
			return k, true
		}
	}
	return KeyUnknown, false
}
