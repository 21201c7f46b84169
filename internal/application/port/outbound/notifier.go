package outbound

import "context"

type Notifier interface {
	SendMessage(ctx context.Context, to, subject, body string) error
}
