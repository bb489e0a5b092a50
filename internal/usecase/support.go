package usecase

import (
	"context"
	"errors"
	"strings"

	"go.uber.org/zap"

	"github.com/muhammed-shafeeque-th/Edulearn-course-srv-sub001/internal/core"
)

const (
	defaultPageSize = 20
	maxPageSize     = 100

	// conflictRetries bounds how often a load-mutate-save cycle is replayed
	// after the repository signals a version conflict.
	conflictRetries = 3
)

// retryOnConflict re-runs the whole load-mutate-save cycle while the
// repository reports a concurrent write. Domain errors pass through
// untouched.
func retryOnConflict(ctx context.Context, fn func(context.Context) error) error {
	var err error
	for attempt := 0; attempt < conflictRetries; attempt++ {
		if err = fn(ctx); !errors.Is(err, core.ErrConflict) {
			return err
		}
	}
	return err
}

// emitEvent publishes a domain event fire-and-forget. Producer failures are
// logged and swallowed: the primary mutation already committed.
func emitEvent(ctx context.Context, producer core.EventProducer, logger *zap.Logger, topic, key string, event core.Event) {
	if producer == nil {
		return
	}
	if err := producer.Produce(ctx, topic, key, event); err != nil {
		logger.Warn("event publish failed",
			zap.String("topic", topic),
			zap.String("event_type", event.EventType),
			zap.String("key", key),
			zap.Error(err))
	}
}

// lockBestEffort acquires a per-aggregate lock when the locker is healthy
// and degrades to version-conflict protection alone when it is not.
func lockBestEffort(ctx context.Context, locker core.Locker, logger *zap.Logger, key string) core.UnlockFunc {
	if locker == nil {
		return func(context.Context) {}
	}
	unlock, err := locker.Lock(ctx, key)
	if err != nil {
		logger.Warn("aggregate lock unavailable", zap.String("key", key), zap.Error(err))
		return func(context.Context) {}
	}
	return unlock
}

// slugify derives a URL-safe slug from a course title.
func slugify(title string) string {
	var b strings.Builder
	lastDash := true
	for _, r := range strings.ToLower(strings.TrimSpace(title)) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9':
			b.WriteRune(r)
			lastDash = false
		default:
			if !lastDash {
				b.WriteByte('-')
				lastDash = true
			}
		}
	}
	return strings.TrimSuffix(b.String(), "-")
}
