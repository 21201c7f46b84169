package event

import (
	"context"
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"

	"github.com/roadassist/dispatch/pkg/logger"
	carrier "github.com/roadassist/dispatch/pkg/otel"
)

// Consumer drains the notification queue and runs each delivery through a
// wrapped MessageHandler. A handler error nacks without requeue; the retry
// wrapper has already exhausted its attempts by then.
type Consumer struct {
	conn    *amqp.Connection
	handler MessageHandler
	logger  logger.Logger
}

func NewConsumer(conn *amqp.Connection, handler MessageHandler, log logger.Logger) *Consumer {
	return &Consumer{conn: conn, handler: handler, logger: log}
}

func (c *Consumer) Start(ctx context.Context, queueName string) error {
	ch, err := c.conn.Channel()
	if err != nil {
		return err
	}
	defer ch.Close()

	if err := c.setupTopology(ch, queueName); err != nil {
		return fmt.Errorf("configure topology: %w", err)
	}

	msgs, err := ch.Consume(
		queueName,
		"",
		false,
		false,
		false,
		false,
		nil,
	)
	if err != nil {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case d, ok := <-msgs:
			if !ok {
				return fmt.Errorf("delivery channel closed")
			}
			c.process(ctx, queueName, d)
		}
	}
}

func (c *Consumer) process(ctx context.Context, queueName string, d amqp.Delivery) {
	msgCtx := otel.GetTextMapPropagator().Extract(ctx, carrier.AMQPHeadersCarrier(d.Headers))

	tracer := otel.GetTracerProvider().Tracer("notifier")
	msgCtx, span := tracer.Start(msgCtx, "ProcessLifecycleEvent")
	span.SetAttributes(
		attribute.String("queue.name", queueName),
		attribute.String("messaging.routing_key", d.RoutingKey),
	)
	defer span.End()

	c.logger.Debug(msgCtx, "received lifecycle event",
		logger.String("routing_key", d.RoutingKey),
	)

	if err := c.handler(msgCtx, d.Body, d.Headers); err != nil {
		span.RecordError(err)
		c.logger.Error(msgCtx, "event handling failed",
			logger.String("routing_key", d.RoutingKey),
			logger.WithError(err),
		)
		_ = d.Nack(false, false)
		return
	}
	_ = d.Ack(false)
}

func (c *Consumer) setupTopology(ch *amqp.Channel, queueName string) error {
	if err := ch.ExchangeDeclare(Exchange, "topic", true, false, false, false, nil); err != nil {
		return err
	}
	if _, err := ch.QueueDeclare(queueName, true, false, false, false, nil); err != nil {
		return err
	}
	// One queue, every request lifecycle event.
	return ch.QueueBind(queueName, "request.*", Exchange, false, nil)
}
