package event

import "context"

const (
	Exchange = "dispatch.events"

	// NotificationQueue receives every request lifecycle event.
	NotificationQueue = "dispatch.notifications"
)

type MessageHandler func(ctx context.Context, msg []byte, headers map[string]interface{}) error
