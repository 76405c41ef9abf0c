package interfaces

import (
	"context"
	"errors"
)

// ErrLockTimeout is returned when a key could not be acquired in time.
var ErrLockTimeout = errors.New("timed out waiting for lock")

// ILocker serialises work on one entity across requests.
//
// WithLock runs fn while holding key. The context handed to fn carries the
// lock, so nested WithLock calls on the same key from inside fn do not block.
type ILocker interface {
	WithLock(ctx context.Context, key string, fn func(ctx context.Context) error) error
}
