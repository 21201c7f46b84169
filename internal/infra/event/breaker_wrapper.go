package event

import (
	"context"
	"errors"
	"time"

	"github.com/sony/gobreaker"

	"github.com/roadassist/dispatch/pkg/metrics"
)

// WrapResilient bounds each handler run with a timeout and a circuit
// breaker so a dead downstream does not stall the whole queue.
func WrapResilient(
	m metrics.Metrics,
	handlerName string,
	timeout time.Duration,
	cb *gobreaker.CircuitBreaker,
	next MessageHandler,
) MessageHandler {
	return func(ctx context.Context, msg []byte, headers map[string]interface{}) error {
		ctx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()

		_, err := cb.Execute(func() (interface{}, error) {
			return nil, next(ctx, msg, headers)
		})

		if errors.Is(err, gobreaker.ErrOpenState) {
			m.IncEventsProcessed("rejected")
			return err
		}

		if err == nil {
			m.IncEventsProcessed("success")
		} else {
			m.IncEventsProcessed("failure")
		}
		return err
	}
}
