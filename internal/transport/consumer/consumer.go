package consumer

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/jyothi044/ShopEase-ecommerce/internal/rabbitmq"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/confirmation"
	"github.com/spf13/viper"
	"github.com/streadway/amqp"
	"go.opentelemetry.io/otel"
	"golang.org/x/sync/errgroup"
)

// service represents the service layer interface.
type service interface {
	SendConfirmation(ctx context.Context, c confirmation.OrderConfirmation) error
}

// Consumer reads order confirmations from RabbitMQ and hands them to the mailer.
type Consumer struct {
	client   *rabbitmq.Client
	service  service
	queue    string
	workers  int
	stop     chan struct{}
	done     chan struct{}
	stopOnce sync.Once
}

// NewConsumer creates a new Consumer and declares the confirmation queue.
func NewConsumer(client *rabbitmq.Client, service service) *Consumer {
	queue, err := client.ConfirmationQueue()
	if err != nil {
		panic(err)
	}

	return newConsumer(client, service, queue.Name, viper.GetInt("rabbitmq.workers"))
}

func newConsumer(client *rabbitmq.Client, service service, queue string, workers int) *Consumer {
	if workers <= 0 {
		workers = 10
	}

	return &Consumer{
		client:  client,
		service: service,
		queue:   queue,
		workers: workers,
		stop:    make(chan struct{}),
		done:    make(chan struct{}),
	}
}

// Run starts consuming messages from RabbitMQ and blocks until Shutdown or the channel closes.
func (c *Consumer) Run(ctx context.Context) error {
	consumerTag := viper.GetString("rabbitmq.consumer_tag")
	if consumerTag == "" {
		consumerTag = "mailer"
	}

	msgs, err := c.client.Consume(rabbitmq.ConsumeConfig{
		Queue:    c.queue,
		Consumer: consumerTag,
	})
	if err != nil {
		return fmt.Errorf("consume %s: %w", c.queue, err)
	}

	slog.Info("Consumer started", "queue", c.queue, "consumer_tag", consumerTag, "workers", c.workers)

	return c.consume(ctx, msgs)
}

func (c *Consumer) consume(ctx context.Context, msgs <-chan amqp.Delivery) error {
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(c.workers)

	func() {
		for {
			select {
			case <-c.stop:
				slog.Info("Stopping consumer")

				return
			case <-ctx.Done():
				return
			case msg, ok := <-msgs:
				if !ok {
					slog.Info("Message channel closed")

					return
				}

				g.Go(func() error {
					c.processMessage(gctx, msg)

					return nil
				})
			}
		}
	}()

	// done is closed only once in-flight deliveries are acked or nacked.
	err := g.Wait()
	close(c.done)

	return err
}

// processMessage handles one delivery. Anything that cannot be sent is nacked without requeue.
func (c *Consumer) processMessage(ctx context.Context, msg amqp.Delivery) {
	ctx, span := otel.Tracer("consumer").Start(ctx, "Consumer.processMessage")
	defer span.End()

	var conf confirmation.OrderConfirmation
	if err := json.Unmarshal(msg.Body, &conf); err != nil {
		slog.ErrorContext(ctx, "Failed to unmarshal order confirmation", "error", err, "delivery_tag", msg.DeliveryTag)
		if err := msg.Nack(false, false); err != nil {
			slog.ErrorContext(ctx, "Failed to nack message", "error", err)
		}

		return
	}

	if err := c.service.SendConfirmation(ctx, conf); err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "Failed to send order confirmation",
			"error", err,
			"order_id", conf.OrderID)
		if err := msg.Nack(false, false); err != nil {
			slog.ErrorContext(ctx, "Failed to nack message", "error", err)
		}

		return
	}

	if err := msg.Ack(false); err != nil {
		slog.ErrorContext(ctx, "Failed to ack message", "error", err)

		return
	}

	slog.InfoContext(ctx, "Message processed successfully", "order_id", conf.OrderID)
}

// Shutdown stops taking new deliveries and waits until in-flight ones are settled.
func (c *Consumer) Shutdown() error {
	slog.Info("Shutting down consumer")
	c.stopOnce.Do(func() { close(c.stop) })

	select {
	case <-c.done:
		slog.Info("Consumer stopped successfully")
	case <-time.After(10 * time.Second):
		slog.Warn("Consumer shutdown timeout")
	}

	return nil
}
