package notifications_test

import (
	"context"
	"encoding/json"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/dmitrymomot/orderdesk/pkg/notifications"
)

func newTestCenter(t *testing.T, opts ...notifications.CenterOption) (*notifications.Center, *fakeScheduler) {
	t.Helper()

	sched := newFakeScheduler()
	c := notifications.New(append([]notifications.CenterOption{notifications.WithScheduler(sched)}, opts...)...)
	t.Cleanup(func() { _ = c.Close() })
	return c, sched
}

func ids(list []notifications.Notification) []string {
	out := make([]string, len(list))
	for i, n := range list {
		out[i] = n.ID
	}
	return out
}

func TestCenter_Add_UniqueIDs(t *testing.T) {
	t.Parallel()

	c, _ := newTestCenter(t)

	const total = 10000
	seen := make(map[string]struct{}, total)
	for i := 0; i < total; i++ {
		id := c.Add(notifications.Spec{Kind: notifications.KindInfo, Title: "x", Timeout: notifications.NoExpiry})
		require.NotEmpty(t, id)
		_, dup := seen[id]
		require.False(t, dup, "duplicate id %s at insertion %d", id, i)
		seen[id] = struct{}{}
	}

	assert.Equal(t, total, c.Len())
}

func TestCenter_Add_AppliesDefaults(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		spec notifications.Spec
		want time.Duration
	}{
		{
			name: "info uses default timeout",
			spec: notifications.Spec{Kind: notifications.KindInfo, Title: "Info"},
			want: 5 * time.Second,
		},
		{
			name: "success uses default timeout",
			spec: notifications.Spec{Kind: notifications.KindSuccess, Title: "Saved", Message: "Produto criado"},
			want: 5 * time.Second,
		},
		{
			name: "warning uses default timeout",
			spec: notifications.Spec{Kind: notifications.KindWarning, Title: "Careful"},
			want: 5 * time.Second,
		},
		{
			name: "error uses error timeout",
			spec: notifications.Spec{Kind: notifications.KindError, Title: "Fail"},
			want: 8 * time.Second,
		},
		{
			name: "explicit timeout wins",
			spec: notifications.Spec{Kind: notifications.KindError, Title: "Fail", Timeout: 2 * time.Second},
			want: 2 * time.Second,
		},
		{
			name: "no expiry is stored as zero",
			spec: notifications.Spec{Kind: notifications.KindInfo, Title: "Sticky", Timeout: notifications.NoExpiry},
			want: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			c, sched := newTestCenter(t)
			c.ShowInfo("first")

			id := c.Add(tt.spec)

			list := c.Notifications()
			require.Len(t, list, 2)
			last := list[len(list)-1]
			assert.Equal(t, notifications.Notification{
				ID:        id,
				Kind:      tt.spec.Kind,
				Title:     tt.spec.Title,
				Message:   tt.spec.Message,
				Timeout:   tt.want,
				CreatedAt: sched.Now(),
			}, last)
			assert.Equal(t, tt.want > 0, last.Expires())
		})
	}
}

func TestCenter_Add_CustomDefaults(t *testing.T) {
	t.Parallel()

	c, _ := newTestCenter(t,
		notifications.WithDefaultTimeout(time.Second),
		notifications.WithErrorTimeout(3*time.Second),
	)

	info, _ := c.Get(c.ShowInfo("info"))
	fail, _ := c.Get(c.ShowError("error"))

	assert.Equal(t, time.Second, info.Timeout)
	assert.Equal(t, 3*time.Second, fail.Timeout)
}

func TestCenter_Remove(t *testing.T) {
	t.Parallel()

	t.Run("removes exactly the matching element", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCenter(t)
		a := c.ShowInfo("A")
		b := c.ShowInfo("B")
		d := c.ShowInfo("C")

		c.Remove(b)

		assert.Equal(t, []string{a, d}, ids(c.Notifications()))
	})

	t.Run("second removal is a no-op", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCenter(t)
		a := c.ShowInfo("A")
		b := c.ShowInfo("B")

		c.Remove(a)
		first := c.Notifications()
		c.Remove(a)
		second := c.Notifications()

		assert.Equal(t, first, second)
		assert.Equal(t, []string{b}, ids(second))
	})

	t.Run("unknown id is ignored", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCenter(t)
		a := c.ShowInfo("A")

		c.Remove("does-not-exist")
		c.Remove("")

		assert.Equal(t, []string{a}, ids(c.Notifications()))
	})

	t.Run("cancels the pending timer", func(t *testing.T) {
		t.Parallel()

		c, sched := newTestCenter(t)
		a := c.ShowInfo("A")
		require.Equal(t, 1, sched.Pending())

		c.Remove(a)

		assert.Equal(t, 0, sched.Pending())
	})

	t.Run("A then B, remove A leaves B", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCenter(t)
		a := c.ShowInfo("A")
		b := c.ShowInfo("B")

		c.Remove(a)

		assert.Equal(t, []string{b}, ids(c.Notifications()))
	})
}

func TestCenter_ClearAll(t *testing.T) {
	t.Parallel()

	c, sched := newTestCenter(t)
	c.ShowInfo("A", notifications.WithTimeout(100*time.Millisecond))
	c.ShowError("B")
	c.ShowWarning("C", notifications.WithoutExpiry())

	c.ClearAll()

	assert.Empty(t, c.Notifications())
	assert.Equal(t, 0, sched.Pending())

	sched.Advance(time.Minute)
	assert.Empty(t, c.Notifications())

	// clearing an empty list is a no-op
	c.ClearAll()
	assert.Equal(t, 0, c.Len())
}

func TestCenter_Expiry(t *testing.T) {
	t.Parallel()

	t.Run("removes after exactly the timeout", func(t *testing.T) {
		t.Parallel()

		c, sched := newTestCenter(t)
		id := c.Add(notifications.Spec{Kind: notifications.KindInfo, Title: "X", Timeout: 100 * time.Millisecond})

		sched.Advance(99 * time.Millisecond)
		_, ok := c.Get(id)
		require.True(t, ok)

		sched.Advance(time.Millisecond)
		_, ok = c.Get(id)
		assert.False(t, ok)
	})

	t.Run("shorter timeout expires first regardless of insertion order", func(t *testing.T) {
		t.Parallel()

		c, sched := newTestCenter(t)
		a := c.ShowInfo("A", notifications.WithTimeout(5*time.Second))
		c.ShowInfo("B", notifications.WithTimeout(time.Second))

		sched.Advance(time.Second)

		assert.Equal(t, []string{a}, ids(c.Notifications()))
	})

	t.Run("no expiry stays", func(t *testing.T) {
		t.Parallel()

		c, sched := newTestCenter(t)
		id := c.ShowInfo("sticky", notifications.WithTimeout(0))

		sched.Advance(time.Hour)

		_, ok := c.Get(id)
		assert.True(t, ok)
		assert.Equal(t, 0, sched.Pending())
	})

	t.Run("real timers", func(t *testing.T) {
		t.Parallel()

		c := notifications.New()
		t.Cleanup(func() { _ = c.Close() })

		id := c.Add(notifications.Spec{Kind: notifications.KindInfo, Title: "X", Timeout: 100 * time.Millisecond})
		keep := c.ShowInfo("Y")

		require.Eventually(t, func() bool {
			_, ok := c.Get(id)
			return !ok
		}, 2*time.Second, 10*time.Millisecond)

		assert.Equal(t, []string{keep}, ids(c.Notifications()))
	})
}

func TestCenter_ShowHelpers(t *testing.T) {
	t.Parallel()

	c, _ := newTestCenter(t)

	tests := []struct {
		name    string
		show    func(string, ...notifications.Option) string
		kind    notifications.Kind
		timeout time.Duration
	}{
		{name: "success", show: c.ShowSuccess, kind: notifications.KindSuccess, timeout: 5 * time.Second},
		{name: "error", show: c.ShowError, kind: notifications.KindError, timeout: 8 * time.Second},
		{name: "warning", show: c.ShowWarning, kind: notifications.KindWarning, timeout: 5 * time.Second},
		{name: "info", show: c.ShowInfo, kind: notifications.KindInfo, timeout: 5 * time.Second},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			id := tt.show("Title", notifications.WithMessage("details"))

			n, ok := c.Get(id)
			require.True(t, ok)
			assert.Equal(t, tt.kind, n.Kind)
			assert.Equal(t, "Title", n.Title)
			assert.Equal(t, "details", n.Message)
			assert.Equal(t, tt.timeout, n.Timeout)
		})
	}

	t.Run("explicit timeout overrides error default", func(t *testing.T) {
		n, _ := c.Get(c.ShowError("Fail", notifications.WithTimeout(time.Second)))
		assert.Equal(t, time.Second, n.Timeout)
	})
}

func TestCenter_Subscribe(t *testing.T) {
	t.Parallel()

	t.Run("receives every mutation", func(t *testing.T) {
		t.Parallel()

		c, sched := newTestCenter(t)
		sub := c.Subscribe(context.Background())
		defer sub.Close()

		a := c.ShowInfo("A", notifications.WithTimeout(time.Second))
		b := c.ShowInfo("B", notifications.WithoutExpiry())
		c.Remove(b)
		sched.Advance(time.Second)
		c.ShowInfo("C")
		c.ClearAll()

		want := []struct {
			typ      notifications.EventType
			id       string
			snapshot int
		}{
			{notifications.EventAdded, a, 1},
			{notifications.EventAdded, b, 2},
			{notifications.EventRemoved, b, 1},
			{notifications.EventExpired, a, 0},
			{notifications.EventAdded, "", 1},
			{notifications.EventCleared, "", 0},
		}

		for i, w := range want {
			select {
			case ev := <-sub.Events():
				assert.Equal(t, w.typ, ev.Type, "event %d", i)
				if w.id != "" {
					assert.Equal(t, w.id, ev.Notification.ID, "event %d", i)
				}
				assert.Len(t, ev.Snapshot, w.snapshot, "event %d", i)
			case <-time.After(time.Second):
				t.Fatalf("timed out waiting for event %d", i)
			}
		}
	})

	t.Run("slow subscriber still gets the latest state", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCenter(t, notifications.WithFeedBuffer(1))
		sub := c.Subscribe(context.Background())
		defer sub.Close()

		c.ShowInfo("A")
		c.ShowInfo("B")
		last := c.ShowInfo("C")

		ev := <-sub.Events()
		assert.Equal(t, last, ev.Notification.ID)
		assert.Len(t, ev.Snapshot, 3)
	})

	t.Run("ends on context cancellation", func(t *testing.T) {
		t.Parallel()

		c, _ := newTestCenter(t)
		ctx, cancel := context.WithCancel(context.Background())
		sub := c.Subscribe(ctx)

		cancel()

		require.Eventually(t, func() bool {
			select {
			case _, ok := <-sub.Events():
				return !ok
			default:
				return false
			}
		}, time.Second, 5*time.Millisecond)
	})

	t.Run("ends on center close", func(t *testing.T) {
		t.Parallel()

		c := notifications.New(notifications.WithScheduler(newFakeScheduler()))
		sub := c.Subscribe(context.Background())

		require.NoError(t, c.Close())

		_, ok := <-sub.Events()
		assert.False(t, ok)
		assert.NoError(t, sub.Close())

		late := c.Subscribe(context.Background())
		_, ok = <-late.Events()
		assert.False(t, ok)
	})
}

func TestCenter_ConcurrentUse(t *testing.T) {
	t.Parallel()

	c := notifications.New(notifications.WithDefaultTimeout(time.Millisecond))
	t.Cleanup(func() { _ = c.Close() })

	var wg sync.WaitGroup
	for i := 0; i < 8; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for j := 0; j < 200; j++ {
				id := c.ShowInfo("x")
				if j%2 == 0 {
					c.Remove(id)
				}
				_ = c.Notifications()
			}
		}()
	}
	wg.Wait()

	require.Eventually(t, func() bool { return c.Len() == 0 }, 2*time.Second, 10*time.Millisecond)
}

func TestParseKind(t *testing.T) {
	t.Parallel()

	tests := []struct {
		in      string
		want    notifications.Kind
		wantErr bool
	}{
		{in: "success", want: notifications.KindSuccess},
		{in: "ERROR", want: notifications.KindError},
		{in: " warning ", want: notifications.KindWarning},
		{in: "info", want: notifications.KindInfo},
		{in: "debug", wantErr: true},
		{in: "", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := notifications.ParseKind(tt.in)
			if tt.wantErr {
				assert.ErrorIs(t, err, notifications.ErrUnknownKind)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestNotification_MarshalJSON(t *testing.T) {
	t.Parallel()

	created := time.Date(2025, 1, 1, 0, 0, 0, 0, time.UTC)
	n := notifications.Notification{
		ID:        "abc",
		Kind:      notifications.KindError,
		Title:     "Fail",
		Timeout:   8 * time.Second,
		CreatedAt: created,
	}

	data, err := json.Marshal(n)
	require.NoError(t, err)

	var got map[string]any
	require.NoError(t, json.Unmarshal(data, &got))
	assert.Equal(t, "abc", got["id"])
	assert.Equal(t, "error", got["kind"])
	assert.Equal(t, float64(8000), got["timeout_ms"])
	assert.NotContains(t, got, "message")
	assert.Equal(t, created.Add(8*time.Second), n.ExpiresAt())
}

func TestDefault(t *testing.T) {
	first := notifications.Default()
	second := notifications.Default(notifications.WithDefaultTimeout(time.Hour))

	assert.Same(t, first, second)
}
