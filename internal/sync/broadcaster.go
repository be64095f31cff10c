package sync

import (
	"context"
	"sync"
)

// Broadcaster delivers every published item, in order, to every subscriber.
// Delivery blocks until each subscriber accepts the item, unsubscribes, or the
// publish context ends. There is no dropping.
//
// Subscribe and unsubscribe never wait for a blocked Publish.
type Broadcaster[T any] struct {
	publishMu sync.Mutex // keeps per-subscriber order across publishers

	mu     sync.Mutex
	subs   map[*subscription[T]]struct{}
	closed bool
}

type subscription[T any] struct {
	ch       chan T
	done     chan struct{}
	doneOnce sync.Once

	// held for reading while sending on ch, for writing while closing it
	sendMu sync.RWMutex
	closed bool
}

func (s *subscription[T]) stop() {
	s.doneOnce.Do(func() { close(s.done) })
}

func (s *subscription[T]) send(ctx context.Context, v T) error {
	s.sendMu.RLock()
	defer s.sendMu.RUnlock()
	if s.closed {
		return nil
	}
	select {
	case s.ch <- v:
	case <-s.done:
	case <-ctx.Done():
		return ctx.Err()
	}
	return nil
}

func (s *subscription[T]) close() {
	s.stop()
	s.sendMu.Lock()
	defer s.sendMu.Unlock()
	if !s.closed {
		s.closed = true
		close(s.ch)
	}
}

func NewBroadcaster[T any]() *Broadcaster[T] {
	return &Broadcaster[T]{
		subs: make(map[*subscription[T]]struct{}),
	}
}

// Subscribe registers a new subscriber with the given channel buffer. The returned
// cancel func unsubscribes; the channel is closed only by Close.
func (b *Broadcaster[T]) Subscribe(buffer int) (<-chan T, func()) {
	sub := &subscription[T]{
		ch:   make(chan T, buffer),
		done: make(chan struct{}),
	}

	b.mu.Lock()
	defer b.mu.Unlock()
	if b.closed {
		close(sub.ch)
		return sub.ch, func() {}
	}
	b.subs[sub] = struct{}{}

	return sub.ch, func() {
		sub.stop()
		b.mu.Lock()
		defer b.mu.Unlock()
		delete(b.subs, sub)
	}
}

// Publish hands v to every current subscriber.
func (b *Broadcaster[T]) Publish(ctx context.Context, v T) error {
	b.publishMu.Lock()
	defer b.publishMu.Unlock()

	for _, sub := range b.snapshot() {
		if err := sub.send(ctx, v); err != nil {
			return err
		}
	}
	return nil
}

func (b *Broadcaster[T]) snapshot() []*subscription[T] {
	b.mu.Lock()
	defer b.mu.Unlock()
	subs := make([]*subscription[T], 0, len(b.subs))
	for sub := range b.subs {
		subs = append(subs, sub)
	}
	return subs
}

// Close closes every subscriber channel. Subscribe after Close returns a closed
// channel and Publish becomes a no-op.
func (b *Broadcaster[T]) Close() {
	b.mu.Lock()
	if b.closed {
		b.mu.Unlock()
		return
	}
	b.closed = true
	subs := b.subs
	b.subs = nil
	b.mu.Unlock()

	for sub := range subs {
		sub.close()
	}
}
