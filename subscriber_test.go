package input

import (
	"errors"
	"testing"
)

// recorder collects replayed events.
type recorder struct {
	events []Event
}

func (r *recorder) HandleEvent(ev Event) { r.events = append(r.events, ev) }

func TestReplayDeliversInOrder(t *testing.T) {
	c := newTestContext()
	a := c.RegisterSubscriber()
	b := c.RegisterSubscriber()

	e1 := KeyDownEvent{Key: KeyA}
	e2 := MouseMoveEvent{X: 1, Y: 2}
	c.Dispatch(e1)
	c.Dispatch(e2)

	var rec recorder
	if err := c.Replay(a, &rec); err != nil {
		t.Fatalf("Replay(a): %v", err)
	}
	if len(rec.events) != 2 || rec.events[0] != Event(e1) || rec.events[1] != Event(e2) {
		t.Errorf("replayed %v, want [%v %v]", rec.events, e1, e2)
	}

	if n, _ := c.Pending(a); n != 0 {
		t.Errorf("a should be empty after replay, has %d", n)
	}
	if n, _ := c.Pending(b); n != 2 {
		t.Errorf("b should still hold 2 events, has %d", n)
	}

	rec = recorder{}
	if err := c.Replay(a, &rec); err != nil {
		t.Fatalf("second Replay(a): %v", err)
	}
	if len(rec.events) != 0 {
		t.Errorf("second replay delivered %d events, want 0", len(rec.events))
	}
}

func TestReplayOnlyAfterRegistration(t *testing.T) {
	c := newTestContext()
	c.Dispatch(KeyDownEvent{Key: KeyA})
	id := c.RegisterSubscriber()
	c.Dispatch(KeyUpEvent{Key: KeyA})

	var rec recorder
	if err := c.Replay(id, &rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.events) != 1 || rec.events[0].Kind() != EventKeyUp {
		t.Errorf("replayed %v, want only the key up", rec.events)
	}
}

func TestReplayAcrossFrames(t *testing.T) {
	c := newTestContext()
	id := c.RegisterSubscriber()
	c.Dispatch(CharEvent{Char: 'a'})
	c.BeginFrame()
	c.Dispatch(CharEvent{Char: 'b'})

	var rec recorder
	if err := c.Replay(id, &rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.events) != 2 {
		t.Errorf("frame boundaries should not drop recorded events, got %d", len(rec.events))
	}
}

func TestReplayUnknownSubscriber(t *testing.T) {
	c := newTestContext()
	c.RegisterSubscriber()

	for _, id := range []SubscriberID{-1, 1, 99} {
		err := c.Replay(id, HandlerFunc(func(Event) {}))
		if !errors.Is(err, ErrUnknownSubscriber) {
			t.Errorf("Replay(%d) = %v, want ErrUnknownSubscriber", id, err)
		}
		if _, err := c.Pending(id); !errors.Is(err, ErrUnknownSubscriber) {
			t.Errorf("Pending(%d) = %v, want ErrUnknownSubscriber", id, err)
		}
	}
}

func TestReplayReentrant(t *testing.T) {
	c := newTestContext()
	a := c.RegisterSubscriber()
	b := c.RegisterSubscriber()
	c.Dispatch(KeyDownEvent{Key: KeyA})

	var inner error
	err := c.Replay(a, HandlerFunc(func(Event) {
		inner = c.Replay(b, HandlerFunc(func(Event) {}))
	}))
	if err != nil {
		t.Fatalf("outer Replay: %v", err)
	}
	if !errors.Is(inner, ErrReentrantReplay) {
		t.Errorf("inner Replay = %v, want ErrReentrantReplay", inner)
	}
	if n, _ := c.Pending(b); n != 1 {
		t.Errorf("b should be untouched, has %d pending", n)
	}
}

func TestReplayKeepsEventsDispatchedByHandler(t *testing.T) {
	c := newTestContext()
	id := c.RegisterSubscriber()
	c.Dispatch(KeyDownEvent{Key: KeyA})

	err := c.Replay(id, HandlerFunc(func(ev Event) {
		if ev.Kind() == EventKeyDown {
			c.Dispatch(KeyUpEvent{Key: KeyA})
		}
	}))
	if err != nil {
		t.Fatal(err)
	}

	var rec recorder
	if err := c.Replay(id, &rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.events) != 1 || rec.events[0].Kind() != EventKeyUp {
		t.Errorf("replayed %v, want the key up dispatched during the first replay", rec.events)
	}
}

func TestReplayClearsLogWhenHandlerPanics(t *testing.T) {
	c := newTestContext()
	id := c.RegisterSubscriber()
	c.Dispatch(KeyDownEvent{Key: KeyA})
	c.Dispatch(KeyDownEvent{Key: KeyB})

	func() {
		defer func() {
			if recover() == nil {
				t.Error("expected handler panic to propagate")
			}
		}()
		_ = c.Replay(id, HandlerFunc(func(Event) { panic("boom") }))
	}()

	if n, _ := c.Pending(id); n != 0 {
		t.Errorf("log should be cleared after a panic, has %d", n)
	}
	// Replay is usable again.
	if err := c.Replay(id, HandlerFunc(func(Event) {})); err != nil {
		t.Errorf("Replay after panic: %v", err)
	}
}

func TestReplayRecordsInjectedInput(t *testing.T) {
	c := newTestContext()
	id := c.RegisterSubscriber()
	c.InjectClick(10, 20)
	c.Update(nil)
	c.Update(nil)

	var rec recorder
	if err := c.Replay(id, &rec); err != nil {
		t.Fatal(err)
	}
	if len(rec.events) != 2 {
		t.Fatalf("expected press and release, got %v", rec.events)
	}
	if rec.events[0].Kind() != EventMouseButtonDown || rec.events[1].Kind() != EventMouseButtonUp {
		t.Errorf("got kinds %v, %v", rec.events[0].Kind(), rec.events[1].Kind())
	}
}

func TestSubscribers(t *testing.T) {
	c := newTestContext()
	if c.Subscribers() != 0 {
		t.Fatalf("fresh context has %d subscribers", c.Subscribers())
	}
	first := c.RegisterSubscriber()
	second := c.RegisterSubscriber()
	if first != 0 || second != 1 {
		t.Errorf("ids = %d, %d; want 0, 1", first, second)
	}
	if c.Subscribers() != 2 {
		t.Errorf("Subscribers = %d, want 2", c.Subscribers())
	}
}
