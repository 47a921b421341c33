package notifications

import (
	"context"
	"sync"
)

// EventType identifies the mutation that produced an Event.
type EventType string

const (
	EventAdded   EventType = "added"
	EventRemoved EventType = "removed"
	EventExpired EventType = "expired"
	EventCleared EventType = "cleared"
)

// Event describes a single mutation of the notification list.
// Snapshot is the full list right after the mutation, in insertion order.
// Notification is the zero value for EventCleared.
type Event struct {
	Type         EventType
	Notification Notification
	Snapshot     []Notification
}

// Subscription receives events from a Center.
type Subscription struct {
	ch   chan Event
	done chan struct{}
	once sync.Once
	feed *feed
}

// Events returns the receive channel. It is closed when the subscription ends.
func (s *Subscription) Events() <-chan Event {
	return s.ch
}

// Close ends the subscription. It is safe to call multiple times.
func (s *Subscription) Close() error {
	s.feed.unsubscribe(s)
	return nil
}

// shutdown must be called with feed.mu held.
func (s *Subscription) shutdown() {
	s.once.Do(func() {
		close(s.ch)
		close(s.done)
	})
}

// feed fans events out to subscribers without ever blocking the publisher.
// A subscriber whose buffer is full loses its oldest queued event, so the
// most recent state always gets through.
type feed struct {
	mu     sync.Mutex
	subs   map[*Subscription]struct{}
	buffer int
	closed bool
}

func newFeed(buffer int) *feed {
	return &feed{
		subs:   make(map[*Subscription]struct{}),
		buffer: max(buffer, 1),
	}
}

func (f *feed) subscribe(ctx context.Context) *Subscription {
	sub := &Subscription{
		ch:   make(chan Event, f.buffer),
		done: make(chan struct{}),
		feed: f,
	}

	f.mu.Lock()
	if f.closed {
		sub.shutdown()
		f.mu.Unlock()
		return sub
	}
	f.subs[sub] = struct{}{}
	f.mu.Unlock()

	if ctx.Done() != nil {
		go func() {
			select {
			case <-ctx.Done():
				f.unsubscribe(sub)
			case <-sub.done:
			}
		}()
	}

	return sub
}

// publish builds the event only when someone is listening.
func (f *feed) publish(build func() Event) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed || len(f.subs) == 0 {
		return
	}

	ev := build()

	for sub := range f.subs {
		select {
		case sub.ch <- ev:
			continue
		default:
		}
		// Full: drop the oldest queued event and retry once. The publisher
		// is the only sender and holds f.mu, so the retry cannot lose a race.
		select {
		case <-sub.ch:
		default:
		}
		select {
		case sub.ch <- ev:
		default:
		}
	}
}

func (f *feed) unsubscribe(sub *Subscription) {
	f.mu.Lock()
	defer f.mu.Unlock()

	delete(f.subs, sub)
	sub.shutdown()
}

func (f *feed) size() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return len(f.subs)
}

func (f *feed) close() {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.closed {
		return
	}
	f.closed = true
	for sub := range f.subs {
		sub.shutdown()
	}
	clear(f.subs)
}
