package locking

import (
	"context"
	"log"
	"mecanica_workflow/internal/usecase/interfaces"
	"sync"
	"time"
)

type keyEntry struct {
	sem  chan struct{}
	refs int
}

// KeyedMutex serialises work per key inside one process. Entries are
// dropped once nobody holds or waits for them.
type KeyedMutex struct {
	mu      sync.Mutex
	entries map[string]*keyEntry
	wait    time.Duration
}

var _ interfaces.ILocker = (*KeyedMutex)(nil)

// NewKeyedMutex builds the single replica locker. wait <= 0 means callers
// wait until their context is done.
func NewKeyedMutex(wait time.Duration) *KeyedMutex {
	return &KeyedMutex{entries: make(map[string]*keyEntry), wait: wait}
}

func (m *KeyedMutex) WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error {
	if isHeld(ctx, key) {
		return fn(ctx)
	}

	e := m.ref(key)
	defer m.unref(key)

	var timeout <-chan time.Time
	if m.wait > 0 {
		timer := time.NewTimer(m.wait)
		defer timer.Stop()
		timeout = timer.C
	}

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		return ctx.Err()
	case <-timeout:
		log.Printf("[lock][memory] wait timeout key=%s wait=%s", key, m.wait)
		return ErrLockTimeout
	}
	defer func() { <-e.sem }()

	return fn(withHeld(ctx, key))
}

func (m *KeyedMutex) ref(key string) *keyEntry {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		e = &keyEntry{sem: make(chan struct{}, 1)}
		m.entries[key] = e
	}
	e.refs++
	return e
}

func (m *KeyedMutex) unref(key string) {
	m.mu.Lock()
	defer m.mu.Unlock()
	e, ok := m.entries[key]
	if !ok {
		return
	}
	e.refs--
	if e.refs == 0 {
		delete(m.entries, key)
	}
}
