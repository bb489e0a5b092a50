package core

import "context"

// UnlockFunc releases a previously acquired lock.
type UnlockFunc func(context.Context)

// Locker provides best-effort mutual exclusion keyed by aggregate id. It
// supplements, not replaces, the repository's version checks: callers must
// still handle ErrConflict.
type Locker interface {
	Lock(ctx context.Context, key string) (UnlockFunc, error)
}
