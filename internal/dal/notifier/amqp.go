package notifier

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/confirmation"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
	"github.com/sony/gobreaker/v2"
	"github.com/streadway/amqp"
	"go.opentelemetry.io/otel"
)

type publisher interface {
	Publish(exchange, key string, mandatory, immediate bool, msg amqp.Publishing) error
}

// BreakerConfig tunes the circuit breaker in front of the broker.
type BreakerConfig struct {
	// MaxRequests allowed through while half-open.
	MaxRequests uint32
	// Interval after which closed-state counts reset. Zero never resets.
	Interval time.Duration
	// Timeout spent open before probing again.
	Timeout time.Duration
	// ConsecutiveFailures that trip the breaker.
	ConsecutiveFailures uint32
}

// DefaultBreakerConfig is used when no config is supplied.
var DefaultBreakerConfig = BreakerConfig{
	MaxRequests:         1,
	Interval:            time.Minute,
	Timeout:             30 * time.Second,
	ConsecutiveFailures: 5,
}

// AMQPNotifier publishes confirmations to a queue for the mailer.
type AMQPNotifier struct {
	publisher publisher
	queue     string
	breaker   *gobreaker.CircuitBreaker[struct{}]
}

// NewAMQPNotifier creates an AMQPNotifier publishing to queue via the default exchange.
func NewAMQPNotifier(p publisher, queue string, cfg BreakerConfig) *AMQPNotifier {
	if cfg.ConsecutiveFailures == 0 {
		cfg.ConsecutiveFailures = DefaultBreakerConfig.ConsecutiveFailures
	}

	settings := gobreaker.Settings{
		Name:        "amqp-notifier",
		MaxRequests: cfg.MaxRequests,
		Interval:    cfg.Interval,
		Timeout:     cfg.Timeout,
		ReadyToTrip: func(counts gobreaker.Counts) bool {
			return counts.ConsecutiveFailures >= cfg.ConsecutiveFailures
		},
		OnStateChange: func(name string, from, to gobreaker.State) {
			slog.Warn("Circuit breaker state changed", "name", name, "from", from.String(), "to", to.String())
		},
	}

	return &AMQPNotifier{
		publisher: p,
		queue:     queue,
		breaker:   gobreaker.NewCircuitBreaker[struct{}](settings),
	}
}

// Notify publishes the order confirmation. While the breaker is open it fails fast
// with gobreaker.ErrOpenState.
func (n *AMQPNotifier) Notify(ctx context.Context, o order.Order) error {
	ctx, span := otel.Tracer("notifier").Start(ctx, "AMQPNotifier.Notify")
	defer span.End()

	if err := ctx.Err(); err != nil {
		return err
	}

	body, err := json.Marshal(confirmation.FromOrder(o))
	if err != nil {
		return fmt.Errorf("encode confirmation: %w", err)
	}

	_, err = n.breaker.Execute(func() (struct{}, error) {
		return struct{}{}, n.publisher.Publish("", n.queue, false, false, amqp.Publishing{
			ContentType:  confirmation.ContentType,
			DeliveryMode: amqp.Persistent,
			MessageId:    o.ID,
			Timestamp:    time.Now(),
			Body:         body,
		})
	})
	if err != nil {
		span.RecordError(err)

		return fmt.Errorf("publish confirmation for order %s: %w", o.OrderNumber, err)
	}

	slog.InfoContext(ctx, "Order confirmation queued", "order_id", o.ID, "queue", n.queue)

	return nil
}

// State reports the breaker state.
func (n *AMQPNotifier) State() gobreaker.State {
	return n.breaker.State()
}
