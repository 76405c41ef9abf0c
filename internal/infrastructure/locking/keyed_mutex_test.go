package locking

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"testing"
	"time"
)

func TestKeyedMutex_SerialisesSameKey(t *testing.T) {
	m := NewKeyedMutex(0)
	var (
		inside  int32
		maxSeen int32
		wg      sync.WaitGroup
	)
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_ = m.WithLock(context.Background(), "invoice:1", func(context.Context) error {
				n := atomic.AddInt32(&inside, 1)
				if n > atomic.LoadInt32(&maxSeen) {
					atomic.StoreInt32(&maxSeen, n)
				}
				time.Sleep(time.Millisecond)
				atomic.AddInt32(&inside, -1)
				return nil
			})
		}()
	}
	wg.Wait()

	if maxSeen != 1 {
		t.Fatalf("expected at most one holder, saw %d", maxSeen)
	}
	if len(m.entries) != 0 {
		t.Fatalf("expected entries to be dropped, got %d", len(m.entries))
	}
}

func TestKeyedMutex_Reentrant(t *testing.T) {
	m := NewKeyedMutex(100 * time.Millisecond)
	calls := 0
	err := m.WithLock(context.Background(), "work_order:1", func(ctx context.Context) error {
		return m.WithLock(ctx, "work_order:1", func(context.Context) error {
			calls++
			return nil
		})
	})
	if err != nil || calls != 1 {
		t.Fatalf("expected nested call to run, calls=%d err=%v", calls, err)
	}
}

func TestKeyedMutex_DifferentKeysDoNotBlock(t *testing.T) {
	m := NewKeyedMutex(50 * time.Millisecond)
	err := m.WithLock(context.Background(), "invoice:1", func(ctx context.Context) error {
		return m.WithLock(context.Background(), "invoice:2", func(context.Context) error { return nil })
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestKeyedMutex_WaitTimeoutAndCancel(t *testing.T) {
	m := NewKeyedMutex(20 * time.Millisecond)
	release := make(chan struct{})
	acquired := make(chan struct{})
	go func() {
		_ = m.WithLock(context.Background(), "quotation:1", func(context.Context) error {
			close(acquired)
			<-release
			return nil
		})
	}()
	<-acquired
	defer close(release)

	t.Run("timeout", func(t *testing.T) {
		err := m.WithLock(context.Background(), "quotation:1", func(context.Context) error { return nil })
		if !errors.Is(err, ErrLockTimeout) {
			t.Fatalf("expected ErrLockTimeout, got %v", err)
		}
	})

	t.Run("context cancelled", func(t *testing.T) {
		ctx, cancel := context.WithCancel(context.Background())
		cancel()
		err := m.WithLock(ctx, "quotation:1", func(context.Context) error { return nil })
		if !errors.Is(err, context.Canceled) {
			t.Fatalf("expected context.Canceled, got %v", err)
		}
	})

	t.Run("error from fn is returned", func(t *testing.T) {
		boom := errors.New("boom")
		err := m.WithLock(context.Background(), "quotation:2", func(context.Context) error { return boom })
		if !errors.Is(err, boom) {
			t.Fatalf("expected fn error, got %v", err)
		}
	})
}
