package ordersvc

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"math/rand/v2"
	"strconv"
	"time"

	"github.com/google/uuid"
	"github.com/jyothi044/ShopEase-ecommerce/internal/dal/interfaces/iorderrepo"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/cart"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/validation"
	"github.com/shopspring/decimal"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type paymentGateway interface {
	Authorize(ctx context.Context, payment order.PaymentInfo) (order.Status, error)
}

type notifier interface {
	Notify(ctx context.Context, o order.Order) error
}

// Latency is the simulated round-trip time of each operation.
type Latency struct {
	CreateOrder time.Duration
	GetOrder    time.Duration
	SendEmail   time.Duration
}

// DefaultLatency mimics a remote order API.
var DefaultLatency = Latency{
	CreateOrder: 1500 * time.Millisecond,
	GetOrder:    500 * time.Millisecond,
	SendEmail:   1000 * time.Millisecond,
}

// OrderService is a service for placing and looking up orders.
type OrderService struct {
	orderRepo iorderrepo.IOrderRepository
	gateway   paymentGateway
	notifier  notifier
	latency   Latency
	now       func() time.Time
	intn      func(n int) int
}

// option is a function that configures the OrderService.
type option func(*OrderService)

// MustNewOrderService creates a new OrderService. The repository, gateway and notifier are required.
func MustNewOrderService(opts ...option) *OrderService {
	s := &OrderService{
		latency: DefaultLatency,
		now:     time.Now,
		intn:    rand.IntN,
	}
	for _, opt := range opts {
		opt(s)
	}

	switch {
	case s.orderRepo == nil:
		panic("ordersvc: order repository is required")
	case s.gateway == nil:
		panic("ordersvc: payment gateway is required")
	case s.notifier == nil:
		panic("ordersvc: notifier is required")
	}

	return s
}

// WithOrderRepository sets the order store for the OrderService.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderRepository(orderRepo iorderrepo.IOrderRepository) option {
	return func(s *OrderService) {
		s.orderRepo = orderRepo
	}
}

// WithPaymentGateway sets the gateway that decides the transaction outcome.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithPaymentGateway(gateway paymentGateway) option {
	return func(s *OrderService) {
		s.gateway = gateway
	}
}

// WithNotifier sets where confirmation emails are handed off.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithNotifier(n notifier) option {
	return func(s *OrderService) {
		s.notifier = n
	}
}

// WithLatency overrides the simulated delays. Tests pass the zero value.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithLatency(latency Latency) option {
	return func(s *OrderService) {
		s.latency = latency
	}
}

// WithClock overrides the time source used for timestamps and order numbers.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithClock(now func() time.Time) option {
	return func(s *OrderService) {
		s.now = now
	}
}

// WithRandom overrides the source of the order number suffix; intn(n) must return a value in [0, n).
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithRandom(intn func(n int) int) option {
	return func(s *OrderService) {
		s.intn = intn
	}
}

// CreateOrder places an order for items. Declined and error outcomes are still created;
// only an unexpected fault returns an error, and nothing is stored in that case.
func (s *OrderService) CreateOrder(
	ctx context.Context,
	customer order.CustomerInfo,
	payment order.PaymentInfo,
	items []cart.Item,
) (*order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.CreateOrder")
	defer span.End()

	if err := wait(ctx, s.latency.CreateOrder); err != nil {
		return nil, err
	}

	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineTotal())
	}

	status, err := s.gateway.Authorize(ctx, payment)
	if err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("authorize payment: %w", err)
	}

	now := s.now()
	stored := make([]cart.Item, len(items))
	copy(stored, items)

	o := order.Order{
		ID:          uuid.NewString(),
		OrderNumber: s.orderNumber(now),
		Customer:    customer,
		Payment: order.PaymentInfo{
			CardNumber: validation.RedactCardNumber(payment.CardNumber),
			ExpiryDate: payment.ExpiryDate,
		},
		Items:     stored,
		Subtotal:  subtotal,
		Total:     subtotal,
		Status:    status,
		CreatedAt: now,
	}

	if err := s.orderRepo.Append(ctx, o); err != nil {
		span.RecordError(err)

		return nil, fmt.Errorf("store order: %w", err)
	}

	span.SetAttributes(
		attribute.String("order.id", o.ID),
		attribute.String("order.status", o.Status.String()),
	)
	slog.InfoContext(ctx, "Order created",
		"order_id", o.ID,
		"order_number", o.OrderNumber,
		"status", o.Status,
		"total", o.Total.StringFixed(2))

	return &o, nil
}

// GetOrder returns the order with the given id, or nil when there is none.
func (s *OrderService) GetOrder(ctx context.Context, id string) (*order.Order, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.GetOrder")
	defer span.End()

	if err := wait(ctx, s.latency.GetOrder); err != nil {
		return nil, err
	}

	o, err := s.orderRepo.GetByID(ctx, id)
	if errors.Is(err, iorderrepo.ErrOrderNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("get order %s: %w", id, err)
	}

	return &o, nil
}

// SendOrderConfirmationEmail hands the order to the notifier after the simulated delay.
func (s *OrderService) SendOrderConfirmationEmail(ctx context.Context, o *order.Order) error {
	ctx, span := otel.Tracer("service").Start(ctx, "OrderService.SendOrderConfirmationEmail")
	defer span.End()

	if o == nil {
		return errors.New("send confirmation: nil order")
	}

	if err := wait(ctx, s.latency.SendEmail); err != nil {
		return err
	}

	if err := s.notifier.Notify(ctx, o.Clone()); err != nil {
		span.RecordError(err)

		return fmt.Errorf("send confirmation for order %s: %w", o.OrderNumber, err)
	}

	return nil
}

// orderNumber renders ORD-<last 8 digits of the unix millis>-<4 random digits>.
func (s *OrderService) orderNumber(now time.Time) string {
	millis := strconv.FormatInt(now.UnixMilli(), 10)
	if len(millis) > 8 {
		millis = millis[len(millis)-8:]
	}

	return fmt.Sprintf("ORD-%s-%04d", millis, s.intn(10000))
}

// wait blocks for d or until ctx is done. It holds no locks.
func wait(ctx context.Context, d time.Duration) error {
	if d <= 0 {
		return ctx.Err()
	}

	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-timer.C:
		return nil
	}
}
