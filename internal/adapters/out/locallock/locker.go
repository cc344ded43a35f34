// Package locallock provides an in-process OrderLocker for single-instance
// deployments and tests. Locks on different order ids never contend.
package locallock

import (
	"context"
	"sync"

	"shiptrack/internal/core/domain/model/kernel"
	"shiptrack/internal/core/ports"
)

type entry struct {
	// ch holds one token while the lock is free.
	ch   chan struct{}
	refs int
}

// Locker hands out one channel-backed mutex per order id. Entries are
// dropped once nobody holds or waits for them.
type Locker struct {
	mu      sync.Mutex
	entries map[kernel.UUID]*entry
}

func New() *Locker {
	return &Locker{entries: make(map[kernel.UUID]*entry)}
}

// Lock waits for the order's lock or until ctx is done.
func (l *Locker) Lock(ctx context.Context, orderID kernel.UUID) (ports.Unlock, error) {
	e := l.acquire(orderID)

	select {
	case <-e.ch:
	case <-ctx.Done():
		l.release(orderID)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func() {
		once.Do(func() {
			e.ch <- struct{}{}
			l.release(orderID)
		})
	}, nil
}

func (l *Locker) acquire(orderID kernel.UUID) *entry {
	l.mu.Lock()
	defer l.mu.Unlock()

	e, ok := l.entries[orderID]
	if !ok {
		e = &entry{ch: make(chan struct{}, 1)}
		e.ch <- struct{}{}
		l.entries[orderID] = e
	}
	e.refs++
	return e
}

func (l *Locker) release(orderID kernel.UUID) {
	l.mu.Lock()
	defer l.mu.Unlock()

	e := l.entries[orderID]
	e.refs--
	if e.refs == 0 {
		delete(l.entries, orderID)
	}
}

// size reports the number of live entries.
func (l *Locker) size() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}
