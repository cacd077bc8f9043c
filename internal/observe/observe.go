// Package observe provides a small publish/subscribe value holder. Each
// Value carries one immutable snapshot; Set replaces the snapshot and fans
// it out to subscribers. Holders are scoped to whatever owns them (the
// tracker creates one per piece of screen state) rather than being
// process-wide globals.
package observe

import "sync"

// Value holds the latest snapshot of type T and notifies subscribers on
// every replacement. Safe for concurrent use.
type Value[T any] struct {
	mu   sync.Mutex
	cur  T
	subs map[int]chan T
	next int
}

// NewValue creates a holder seeded with an initial snapshot.
func NewValue[T any](initial T) *Value[T] {
	return &Value[T]{cur: initial, subs: make(map[int]chan T)}
}

// Get returns the current snapshot.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.cur
}

// Set replaces the snapshot and notifies all subscribers. A subscriber that
// has fallen behind loses its oldest pending notification rather than
// blocking the publisher.
func (v *Value[T]) Set(val T) {
	v.mu.Lock()
	defer v.mu.Unlock()
	v.cur = val
	for _, ch := range v.subs {
		select {
		case ch <- val:
		default:
			select {
			case <-ch:
			default:
			}
			select {
			case ch <- val:
			default:
			}
		}
	}
}

// Subscribe registers a new observer. The returned channel immediately
// carries the current snapshot, then one value per subsequent Set. The
// cancel function must be called to release the subscription.
func (v *Value[T]) Subscribe() (<-chan T, func()) {
	v.mu.Lock()
	defer v.mu.Unlock()

	id := v.next
	v.next++
	ch := make(chan T, 8)
	ch <- v.cur
	v.subs[id] = ch

	cancel := func() {
		v.mu.Lock()
		defer v.mu.Unlock()
		if sub, ok := v.subs[id]; ok {
			delete(v.subs, id)
			close(sub)
		}
	}
	return ch, cancel
}
