// Package notifier delivers order confirmations either straight to the log or through RabbitMQ.
package notifier

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
)

// LogNotifier stands in for an email provider by logging what would be sent.
type LogNotifier struct {
	logger *slog.Logger
}

// NewLogNotifier creates a LogNotifier. A nil logger means slog.Default.
func NewLogNotifier(logger *slog.Logger) *LogNotifier {
	if logger == nil {
		logger = slog.Default()
	}

	return &LogNotifier{logger: logger}
}

// Notify logs the confirmation.
func (n *LogNotifier) Notify(ctx context.Context, o order.Order) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	n.logger.InfoContext(ctx,
		fmt.Sprintf("Sending %s email to %s for order %s", o.Status, o.Customer.Email, o.OrderNumber),
		"order_id", o.ID,
	)
	n.logger.InfoContext(ctx, "Email sent successfully", "order_id", o.ID)

	return nil
}
