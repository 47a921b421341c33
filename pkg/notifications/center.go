package notifications

import (
	"context"
	"log/slog"
	"slices"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/dmitrymomot/orderdesk/pkg/logger"
)

// Center owns the ordered list of active notifications.
// The list is mutated only through Add, Remove and ClearAll, plus automatic
// expiry which re-enters Remove. All methods are safe for concurrent use.
type Center struct {
	mu     sync.Mutex
	items  []Notification
	timers map[string]Timer

	scheduler      Scheduler
	feed           *feed
	defaultTimeout time.Duration
	errorTimeout   time.Duration
	feedBuffer     int
	logger         *slog.Logger
}

// CenterOption configures a Center.
type CenterOption func(*Center)

// WithScheduler replaces the time-based scheduler. Nil is ignored.
func WithScheduler(s Scheduler) CenterOption {
	return func(c *Center) {
		if s != nil {
			c.scheduler = s
		}
	}
}

// WithDefaultTimeout sets the timeout applied to non-error notifications
// added without one. Non-positive values are ignored.
func WithDefaultTimeout(d time.Duration) CenterOption {
	return func(c *Center) {
		if d > 0 {
			c.defaultTimeout = d
		}
	}
}

// WithErrorTimeout sets the timeout applied to error notifications added
// without one. Non-positive values are ignored.
func WithErrorTimeout(d time.Duration) CenterOption {
	return func(c *Center) {
		if d > 0 {
			c.errorTimeout = d
		}
	}
}

// WithFeedBuffer sets the per-subscriber event buffer size.
func WithFeedBuffer(size int) CenterOption {
	return func(c *Center) {
		if size > 0 {
			c.feedBuffer = size
		}
	}
}

// WithLogger sets the logger for the Center.
func WithLogger(l *slog.Logger) CenterOption {
	return func(c *Center) {
		if l != nil {
			c.logger = l
		}
	}
}

// New creates an empty notification center.
func New(opts ...CenterOption) *Center {
	c := &Center{
		timers:         make(map[string]Timer),
		scheduler:      systemScheduler{},
		defaultTimeout: DefaultTimeout,
		errorTimeout:   DefaultErrorTimeout,
		feedBuffer:     16,
		logger:         slog.Default(),
	}

	for _, opt := range opts {
		opt(c)
	}

	c.feed = newFeed(c.feedBuffer)
	return c
}

// Add appends a notification built from spec and returns its id.
// If the effective timeout is positive, the notification is removed
// automatically once that much time has passed since insertion.
// Title is not validated.
func (c *Center) Add(spec Spec) string {
	timeout := c.effectiveTimeout(spec)

	c.mu.Lock()
	defer c.mu.Unlock()

	n := Notification{
		ID:        c.newIDLocked(),
		Kind:      spec.Kind,
		Title:     spec.Title,
		Message:   spec.Message,
		Timeout:   timeout,
		CreatedAt: c.scheduler.Now(),
	}
	c.items = append(c.items, n)

	if timeout > 0 {
		id := n.ID
		c.timers[id] = c.scheduler.AfterFunc(timeout, func() {
			c.remove(id, EventExpired)
		})
	}

	c.feed.publish(func() Event {
		return Event{Type: EventAdded, Notification: n, Snapshot: slices.Clone(c.items)}
	})

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification added",
		logger.NotificationID(n.ID),
		logger.Kind(string(n.Kind)),
		logger.Duration(timeout),
	)

	return n.ID
}

// Remove deletes the notification with the given id, keeping the relative
// order of the others. Unknown ids are ignored.
func (c *Center) Remove(id string) {
	c.remove(id, EventRemoved)
}

// ClearAll removes every notification and cancels pending expiry timers.
func (c *Center) ClearAll() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if len(c.items) == 0 {
		return
	}

	count := len(c.items)
	c.stopTimersLocked()
	c.items = nil

	c.feed.publish(func() Event {
		return Event{Type: EventCleared, Snapshot: []Notification{}}
	})

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "notifications cleared",
		slog.Int("count", count),
	)
}

// Notifications returns a copy of the current list, oldest first.
func (c *Center) Notifications() []Notification {
	c.mu.Lock()
	defer c.mu.Unlock()
	return slices.Clone(c.items)
}

// Get returns the live notification with the given id.
func (c *Center) Get(id string) (Notification, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if i := c.indexLocked(id); i >= 0 {
		return c.items[i], true
	}
	return Notification{}, false
}

// Len returns the number of live notifications.
func (c *Center) Len() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.items)
}

// Subscribe returns a subscription receiving an Event for every mutation.
// It ends when ctx is cancelled, when Close is called on it, or when the
// Center is closed.
func (c *Center) Subscribe(ctx context.Context) *Subscription {
	return c.feed.subscribe(ctx)
}

// Close cancels pending timers, drops every notification and ends all
// subscriptions. The Center should not be used afterwards.
func (c *Center) Close() error {
	c.mu.Lock()
	c.stopTimersLocked()
	c.items = nil
	c.mu.Unlock()

	c.feed.close()
	return nil
}

func (c *Center) remove(id string, typ EventType) {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := c.indexLocked(id)
	if i < 0 {
		return
	}

	n := c.items[i]
	c.items = slices.Delete(c.items, i, i+1)

	if t, ok := c.timers[id]; ok {
		t.Stop()
		delete(c.timers, id)
	}

	c.feed.publish(func() Event {
		return Event{Type: typ, Notification: n, Snapshot: slices.Clone(c.items)}
	})

	c.logger.LogAttrs(context.Background(), slog.LevelDebug, "notification "+string(typ),
		logger.NotificationID(id),
		logger.Kind(string(n.Kind)),
	)
}

func (c *Center) effectiveTimeout(spec Spec) time.Duration {
	switch {
	case spec.Timeout < 0:
		return 0
	case spec.Timeout > 0:
		return spec.Timeout
	case spec.Kind == KindError:
		return c.errorTimeout
	default:
		return c.defaultTimeout
	}
}

func (c *Center) indexLocked(id string) int {
	return slices.IndexFunc(c.items, func(n Notification) bool { return n.ID == id })
}

func (c *Center) stopTimersLocked() {
	for id, t := range c.timers {
		t.Stop()
		delete(c.timers, id)
	}
}

// newIDLocked returns a UUIDv7 (millisecond timestamp followed by random
// bits) that does not collide with any live notification.
func (c *Center) newIDLocked() string {
	for {
		id := newID()
		if c.indexLocked(id) < 0 {
			return id
		}
	}
}

func newID() string {
	id, err := uuid.NewV7()
	if err != nil {
		return uuid.NewString()
	}
	return id.String()
}
