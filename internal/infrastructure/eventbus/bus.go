// Package eventbus provides a synchronous, topic-based event bus.
//
// Handlers run on the publisher's goroutine in subscription order, so a
// published event has been fully handled when Publish returns.
package eventbus

import (
	"context"
	"runtime/debug"
	"strings"
	"sync"
	"sync/atomic"

	"github.com/bnema/dumbed/internal/application/port"
	"github.com/bnema/dumbed/internal/logging"
)

// Bus is the default port.EventBus implementation.
type Bus struct {
	mu     sync.Mutex
	subs   []*subscription
	nextID uint64

	published atomic.Uint64
	delivered atomic.Uint64
	panics    atomic.Uint64
}

// Stats reports delivery counters.
type Stats struct {
	Published     uint64
	Delivered     uint64
	HandlerPanics uint64
	Subscribers   int
}

type subscription struct {
	id      uint64
	pattern string
	handler port.EventHandler
	bus     *Bus
	once    sync.Once
}

// New creates an empty bus.
func New() *Bus {
	return &Bus{}
}

// Subscribe registers handler for topics matching pattern.
// A pattern is an exact topic, a prefix ending in ".*", or "*" for everything.
func (b *Bus) Subscribe(pattern string, handler port.EventHandler) port.Subscription {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.nextID++
	sub := &subscription{
		id:      b.nextID,
		pattern: pattern,
		handler: handler,
		bus:     b,
	}
	b.subs = append(b.subs, sub)
	return sub
}

// Publish delivers payload to every matching handler.
// A panicking handler is logged and skipped; the others still run.
func (b *Bus) Publish(ctx context.Context, topic string, payload any) {
	b.published.Add(1)

	// Handlers may subscribe or unsubscribe while we deliver.
	b.mu.Lock()
	targets := make([]*subscription, 0, len(b.subs))
	for _, sub := range b.subs {
		if matchTopic(sub.pattern, topic) {
			targets = append(targets, sub)
		}
	}
	b.mu.Unlock()

	log := logging.FromContext(ctx)
	log.Trace().Str("topic", topic).Int("handlers", len(targets)).Msg("publishing event")

	for _, sub := range targets {
		if !b.isSubscribed(sub) {
			continue
		}
		b.deliver(ctx, topic, sub, payload)
	}
}

func (b *Bus) deliver(ctx context.Context, topic string, sub *subscription, payload any) {
	defer func() {
		if r := recover(); r != nil {
			b.panics.Add(1)
			logging.FromContext(ctx).Error().
				Str("topic", topic).
				Uint64("subscription_id", sub.id).
				Interface("panic", r).
				Bytes("stack", debug.Stack()).
				Msg("event handler panicked")
		}
	}()
	sub.handler(ctx, payload)
	b.delivered.Add(1)
}

// Stats returns a snapshot of the bus counters.
func (b *Bus) Stats() Stats {
	b.mu.Lock()
	n := len(b.subs)
	b.mu.Unlock()

	return Stats{
		Published:     b.published.Load(),
		Delivered:     b.delivered.Load(),
		HandlerPanics: b.panics.Load(),
		Subscribers:   n,
	}
}

func (b *Bus) isSubscribed(sub *subscription) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	for _, s := range b.subs {
		if s == sub {
			return true
		}
	}
	return false
}

func (b *Bus) remove(sub *subscription) {
	b.mu.Lock()
	defer b.mu.Unlock()
	for i, s := range b.subs {
		if s == sub {
			b.subs = append(b.subs[:i], b.subs[i+1:]...)
			return
		}
	}
}

// Unsubscribe stops delivery to the handler.
func (s *subscription) Unsubscribe() {
	s.once.Do(func() { s.bus.remove(s) })
}

func matchTopic(pattern, topic string) bool {
	switch {
	case pattern == "*":
		return true
	case strings.HasSuffix(pattern, ".*"):
		return strings.HasPrefix(topic, strings.TrimSuffix(pattern, "*"))
	default:
		return pattern == topic
	}
}
