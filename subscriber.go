package input

import (
	"errors"
	"fmt"
)

var (
	// ErrUnknownSubscriber is returned when replaying an id that was never
	// returned by RegisterSubscriber.
	ErrUnknownSubscriber = errors.New("unknown input subscriber")

	// ErrReentrantReplay is returned when Replay is called from a handler that
	// is itself being driven by Replay on the same Context.
	ErrReentrantReplay = errors.New("replay called during replay")
)

// SubscriberID identifies a raw event subscriber. Ids are dense and start at 0.
type SubscriberID int

// backlogWarnThreshold is the log length above which debug mode warns that a
// subscriber is not being replayed.
const backlogWarnThreshold = 4096

// RegisterSubscriber allocates a subscriber with an empty log. Events
// dispatched from now on are recorded for it until they are replayed; events
// dispatched before registration are not.
func (c *Context) RegisterSubscriber() SubscriberID {
	c.subscribers = append(c.subscribers, nil)
	return SubscriberID(len(c.subscribers) - 1)
}

// Subscribers returns the number of registered subscribers.
func (c *Context) Subscribers() int {
	return len(c.subscribers)
}

// Pending returns the number of events recorded for id and not yet replayed.
func (c *Context) Pending(id SubscriberID) (int, error) {
	if !c.validSubscriber(id) {
		return 0, fmt.Errorf("pending %d: %w", id, ErrUnknownSubscriber)
	}
	return len(c.subscribers[id]), nil
}

// Replay hands every event recorded for id since its last replay to h, in
// arrival order, then drops them from the log, even if h panics. Events that h
// itself dispatches stay queued for the next replay. Call it once per frame.
func (c *Context) Replay(id SubscriberID, h Handler) error {
	if !c.validSubscriber(id) {
		return fmt.Errorf("replay %d: %w", id, ErrUnknownSubscriber)
	}
	if c.replaying {
		return fmt.Errorf("replay %d: %w", id, ErrReentrantReplay)
	}

	events := c.subscribers[id]
	c.replaying = true
	defer func() {
		c.replaying = false
		log := c.subscribers[id]
		n := copy(log, log[len(events):])
		clear(log[n:])
		c.subscribers[id] = log[:n]
	}()

	for _, ev := range events {
		h.HandleEvent(ev)
	}
	return nil
}

// record appends ev to every subscriber log.
func (c *Context) record(ev Event) {
	for i := range c.subscribers {
		c.subscribers[i] = append(c.subscribers[i], ev)
		if c.debug && len(c.subscribers[i]) == backlogWarnThreshold {
			c.debugf("warning: subscriber %d has %d unreplayed events", i, backlogWarnThreshold)
		}
	}
}

func (c *Context) validSubscriber(id SubscriberID) bool {
	return id >= 0 && int(id) < len(c.subscribers)
}
