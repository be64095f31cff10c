package sync

import (
	"context"
	"sync"
)

// Value is a mutable cell that publishes every accepted change to its subscribers.
// Subscribers always see the latest value: a slow subscriber has older pending
// values replaced rather than blocking the writer.
//
// Example usage:
//
//	flags := sync.NewValue(Flags{}, func(a, b Flags) bool { return a == b })
//	ch := flags.Subscribe(ctx)
//	flags.Set(Flags{Locked: true}) // published
//	flags.Set(Flags{Locked: true}) // equal to current, dropped
type Value[T any] struct {
	mu    sync.Mutex
	v     T
	equal func(a, b T) bool
	subs  map[chan T]struct{}
}

// NewValue creates a Value holding initial. When equal is nil every Set publishes.
func NewValue[T any](initial T, equal func(a, b T) bool) *Value[T] {
	return &Value[T]{
		v:     initial,
		equal: equal,
		subs:  make(map[chan T]struct{}),
	}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.v
}

// Set stores x and publishes it. It returns false when x equals the current value
// and nothing was published.
func (v *Value[T]) Set(x T) bool {
	v.mu.Lock()
	defer v.mu.Unlock()

	if v.equal != nil && v.equal(v.v, x) {
		return false
	}
	v.v = x
	for ch := range v.subs {
		// drop the stale pending value, if any, then hand over the new one
		select {
		case <-ch:
		default:
		}
		ch <- x
	}
	return true
}

// Subscribe returns a channel receiving values published after the call.
// The channel is closed once ctx is done.
func (v *Value[T]) Subscribe(ctx context.Context) <-chan T {
	ch := make(chan T, 1)

	v.mu.Lock()
	v.subs[ch] = struct{}{}
	v.mu.Unlock()

	context.AfterFunc(ctx, func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		delete(v.subs, ch)
		close(ch)
	})
	return ch
}
