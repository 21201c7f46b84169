package notify

import (
	"context"

	"github.com/roadassist/dispatch/pkg/logger"
)

// LogNotifier is the development delivery channel. It records the message
// instead of handing it to an SMS or push gateway.
type LogNotifier struct {
	logger logger.Logger
}

func NewLogNotifier(log logger.Logger) *LogNotifier {
	return &LogNotifier{logger: log}
}

func (n *LogNotifier) SendMessage(ctx context.Context, to, subject, body string) error {
	n.logger.Info(ctx, "notification dispatched",
		logger.String("to", to),
		logger.String("subject", subject),
		logger.String("body", body),
	)
	return nil
}
