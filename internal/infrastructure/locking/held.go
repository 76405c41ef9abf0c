package locking

import (
	"context"
	"mecanica_workflow/internal/usecase/interfaces"
)

// ErrLockTimeout is returned when a key could not be acquired in time.
var ErrLockTimeout = interfaces.ErrLockTimeout

type heldKey struct{}

// held is the immutable set of keys a call chain already owns. A nested
// WithLock on one of them runs directly instead of deadlocking.
type held map[string]struct{}

func isHeld(ctx context.Context, key string) bool {
	h, _ := ctx.Value(heldKey{}).(held)
	_, ok := h[key]
	return ok
}

func withHeld(ctx context.Context, key string) context.Context {
	parent, _ := ctx.Value(heldKey{}).(held)
	next := make(held, len(parent)+1)
	for k := range parent {
		next[k] = struct{}{}
	}
	next[key] = struct{}{}
	return context.WithValue(ctx, heldKey{}, next)
}
