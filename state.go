package input

import (
	"cmp"
	"slices"
)

// buttonSet tracks held, just-pressed and just-released members of a small
// closed enumeration (keys or mouse buttons).
//
// down persists across frames. pressed and released only hold transitions
// since the last frame boundary.
type buttonSet[K cmp.Ordered] struct {
	down     map[K]struct{}
	pressed  map[K]struct{}
	released map[K]struct{}
}

func newButtonSet[K cmp.Ordered]() buttonSet[K] {
	return buttonSet[K]{
		down:     make(map[K]struct{}),
		pressed:  make(map[K]struct{}),
		released: make(map[K]struct{}),
	}
}

// press marks k as held. It reports whether this was a transition to down; a
// repeat or a second press of a held key is not.
func (s *buttonSet[K]) press(k K, repeat bool) bool {
	_, held := s.down[k]
	s.down[k] = struct{}{}
	if held || repeat {
		return false
	}
	s.pressed[k] = struct{}{}
	return true
}

// release marks k as up and records the release for this frame.
func (s *buttonSet[K]) release(k K) {
	delete(s.down, k)
	s.released[k] = struct{}{}
}

func (s *buttonSet[K]) isDown(k K) bool {
	_, ok := s.down[k]
	return ok
}

func (s *buttonSet[K]) isPressed(k K) bool {
	_, ok := s.pressed[k]
	return ok
}

func (s *buttonSet[K]) isReleased(k K) bool {
	_, ok := s.released[k]
	return ok
}

// endFrame clears the frame-scoped sets.
func (s *buttonSet[K]) endFrame() {
	clear(s.pressed)
	clear(s.released)
}

// sortedKeys returns the members of m in ascending order.
func sortedKeys[K cmp.Ordered](m map[K]struct{}) []K {
	out := make([]K, 0, len(m))
	for k := range m {
		out = append(out, k)
	}
	slices.Sort(out)
	return out
}

// charStack is a consumable character queue that yields the most recently
// pushed character first.
type charStack struct {
	chars []rune
}

func (q *charStack) push(r rune) {
	q.chars = append(q.chars, r)
}

// pop removes and returns the most recent character. ok is false when the
// stack is empty.
func (q *charStack) pop() (r rune, ok bool) {
	n := len(q.chars)
	if n == 0 {
		return 0, false
	}
	r = q.chars[n-1]
	q.chars = q.chars[:n-1]
	return r, true
}

func (q *charStack) len() int {
	return len(q.chars)
}

func (q *charStack) clear() {
	q.chars = q.chars[:0]
}
