package event

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/roadassist/dispatch/internal/application/port/outbound"
)

type lifecyclePayload struct {
	ID      string `json:"id"`
	Status  string `json:"status"`
	Contact string `json:"contact"`
}

// NewNotificationHandler turns a lifecycle event into a message to the
// request's contact.
func NewNotificationHandler(notifier outbound.Notifier) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		var payload lifecyclePayload
		if err := json.Unmarshal(msg, &payload); err != nil {
			return fmt.Errorf("decode lifecycle payload: %w", err)
		}
		if payload.Contact == "" {
			return nil
		}

		subject := fmt.Sprintf("Service request %s", payload.Status)
		body := fmt.Sprintf("Your breakdown request %s is now %s.", payload.ID, payload.Status)
		return notifier.SendMessage(ctx, payload.Contact, subject, body)
	}
}
