package event

import (
	"context"
	"crypto/sha256"
	"fmt"
	"time"

	"github.com/roadassist/dispatch/pkg/logger"
)

type IdempotencyStore interface {
	SetNX(ctx context.Context, key string, value interface{}, expiration time.Duration) (bool, error)
	Del(ctx context.Context, key string) error
}

// WrapIdempotency drops deliveries already seen within ttl, keyed on the
// publisher's x-event-id header (hash of the body when absent). Fails
// closed when the store is unavailable.
func WrapIdempotency(
	log logger.Logger,
	store IdempotencyStore,
	handlerName string,
	ttl time.Duration,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		var eventID string
		if v, ok := headers["x-event-id"]; ok {
			eventID = fmt.Sprintf("%v", v)
		}
		if eventID == "" {
			hash := sha256.Sum256(msg)
			eventID = fmt.Sprintf("hash:%x", hash)
		}

		key := fmt.Sprintf("dedup:%s:%s", handlerName, eventID)

		fresh, err := store.SetNX(ctx, key, "processing", ttl)
		if err != nil {
			log.Error(ctx, "idempotency store unavailable", logger.WithError(err))
			return fmt.Errorf("idempotency store unavailable: %w", err)
		}
		if !fresh {
			log.Debug(ctx, "duplicate event skipped",
				logger.String("handler", handlerName),
				logger.String("event_id", eventID),
			)
			return nil
		}

		if err := next(ctx, msg, headers); err != nil {
			// Release the key so a redelivery can retry.
			if delErr := store.Del(ctx, key); delErr != nil {
				log.Warn(ctx, "failed to release idempotency key", logger.WithError(delErr))
			}
			return err
		}
		return nil
	}
}
