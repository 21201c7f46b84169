package event

import (
	"context"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"

	"github.com/roadassist/dispatch/pkg/events"
	carrier "github.com/roadassist/dispatch/pkg/otel"
)

// Publisher sends lifecycle events to the dispatch exchange with the event
// name as routing key. It implements events.EventDispatcher.
type Publisher struct {
	channel *amqp.Channel
}

func NewPublisher(ch *amqp.Channel) (*Publisher, error) {
	if err := ch.ExchangeDeclare(
		Exchange,
		"topic",
		true,
		false,
		false,
		false,
		nil,
	); err != nil {
		return nil, err
	}
	return &Publisher{channel: ch}, nil
}

func (p *Publisher) Dispatch(ctx context.Context, event events.Event) error {
	headers := make(amqp.Table)
	headers["x-event-id"] = uuid.New().String()
	otel.GetTextMapPropagator().Inject(ctx, carrier.AMQPHeadersCarrier(headers))

	payload, err := json.Marshal(event.GetPayload())
	if err != nil {
		return err
	}

	return p.channel.PublishWithContext(
		ctx,
		Exchange,
		event.GetName(),
		false,
		false,
		amqp.Publishing{
			Headers:     headers,
			ContentType: "application/json",
			Timestamp:   time.Now(),
			Body:        payload,
		})
}
