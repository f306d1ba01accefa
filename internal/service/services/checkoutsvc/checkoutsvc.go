package checkoutsvc

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/cart"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/validation"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
)

type orderService interface {
	CreateOrder(
		ctx context.Context,
		customer order.CustomerInfo,
		payment order.PaymentInfo,
		items []cart.Item,
	) (*order.Order, error)
	SendOrderConfirmationEmail(ctx context.Context, o *order.Order) error
}

type cartStore interface {
	GetItem(sessionID string) (cart.Item, bool)
	ClearIf(sessionID string, item cart.Item) bool
}

// DefaultSubmitTimeout bounds a single checkout attempt.
const DefaultSubmitTimeout = 30 * time.Second

// Result is the outcome of Submit.
type Result struct {
	// Redirect is set when the cart was empty and the shopper should go back to the store.
	Redirect bool
	// OrderID of the placed order, for the confirmation view.
	OrderID string
	Order   *order.Order
	// Errors holds per-field messages when validation failed.
	Errors validation.FieldErrors
	// FormError is set when the order could not be placed.
	FormError string
}

// CheckoutService drives the checkout form of every session.
type CheckoutService struct {
	mu            sync.Mutex
	forms         map[string]*Form
	orderSvc      orderService
	carts         cartStore
	validator     *validation.Validator
	submitTimeout time.Duration
}

// option is a function that configures the CheckoutService.
type option func(*CheckoutService)

// MustNewCheckoutService creates a new CheckoutService.
func MustNewCheckoutService(opts ...option) *CheckoutService {
	s := &CheckoutService{
		forms:         make(map[string]*Form),
		submitTimeout: DefaultSubmitTimeout,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.orderSvc == nil || s.carts == nil {
		panic("checkoutsvc: order service and cart store are required")
	}
	if s.validator == nil {
		s.validator = validation.New()
	}

	return s
}

// WithOrderService sets the service that places orders.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithOrderService(orderSvc orderService) option {
	return func(s *CheckoutService) {
		s.orderSvc = orderSvc
	}
}

// WithCartStore sets where the session carts live.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithCartStore(carts cartStore) option {
	return func(s *CheckoutService) {
		s.carts = carts
	}
}

// WithValidator overrides the field validator.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithValidator(v *validation.Validator) option {
	return func(s *CheckoutService) {
		s.validator = v
	}
}

// WithSubmitTimeout bounds each checkout attempt.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithSubmitTimeout(d time.Duration) option {
	return func(s *CheckoutService) {
		if d > 0 {
			s.submitTimeout = d
		}
	}
}

// form returns the session's form, creating it. Callers hold s.mu and are about to mutate it.
func (s *CheckoutService) form(sessionID string) *Form {
	f, ok := s.forms[sessionID]
	if !ok {
		f = NewForm()
		s.forms[sessionID] = f
	}

	return f
}

// Form returns a snapshot of the session's form. Reading does not create one.
func (s *CheckoutService) Form(sessionID string) Form {
	s.mu.Lock()
	defer s.mu.Unlock()

	if f, ok := s.forms[sessionID]; ok {
		return f.Snapshot()
	}

	return NewForm().Snapshot()
}

// SetField edits one field of the session's form.
func (s *CheckoutService) SetField(sessionID, field, value string) (Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.form(sessionID)
	if err := f.Set(field, value); err != nil {
		return f.Snapshot(), err
	}

	return f.Snapshot(), nil
}

// BlurField validates one field of the session's form.
func (s *CheckoutService) BlurField(sessionID, field string) (Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.form(sessionID)
	if _, err := f.Blur(field, s.validator); err != nil {
		return f.Snapshot(), err
	}

	return f.Snapshot(), nil
}

// Fill sets every field at once, as if each had been typed.
func (s *CheckoutService) Fill(sessionID string, customer order.CustomerInfo, payment order.PaymentInfo) (Form, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	f := s.form(sessionID)
	values := map[string]string{
		"fullName":   customer.FullName,
		"email":      customer.Email,
		"phone":      customer.Phone,
		"address":    customer.Address,
		"city":       customer.City,
		"state":      customer.State,
		"zipCode":    customer.ZipCode,
		"cardNumber": payment.CardNumber,
		"expiryDate": payment.ExpiryDate,
		"cvv":        payment.CVV,
	}
	for _, fld := range Fields {
		if err := f.Set(fld.Name, values[fld.Name]); err != nil {
			return f.Snapshot(), err
		}
	}

	return f.Snapshot(), nil
}

// Submit validates the form and places the order for the session's cart item.
//
// The attempt is detached from ctx cancellation and bounded by the submit timeout, so a
// dropped connection does not abandon an order halfway. A failed confirmation email is
// logged and does not fail the attempt.
func (s *CheckoutService) Submit(ctx context.Context, sessionID string) (Result, error) {
	s.mu.Lock()
	if f, ok := s.forms[sessionID]; ok && f.State == StateSubmitting {
		s.mu.Unlock()

		return Result{}, ErrSubmissionInProgress
	}

	item, ok := s.carts.GetItem(sessionID)
	if !ok {
		s.mu.Unlock()

		return Result{Redirect: true}, nil
	}

	f := s.form(sessionID)

	f.FormError = ""
	f.State = StateValidating
	if !f.Validate(s.validator) {
		f.State = StateEditing
		errs := f.Snapshot().Errors
		s.mu.Unlock()

		return Result{Errors: errs}, nil
	}

	f.State = StateSubmitting
	customer, payment := f.Customer, f.Payment
	s.mu.Unlock()

	ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), s.submitTimeout)
	defer cancel()

	ctx, span := otel.Tracer("service").Start(ctx, "CheckoutService.Submit")
	defer span.End()

	o, err := s.orderSvc.CreateOrder(ctx, customer, payment, []cart.Item{item})
	if err == nil {
		if mailErr := s.orderSvc.SendOrderConfirmationEmail(ctx, o); mailErr != nil {
			slog.ErrorContext(ctx, "Failed to send order confirmation", "order_id", o.ID, "error", mailErr)
		}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		span.RecordError(err)
		slog.ErrorContext(ctx, "Error processing order", "error", err)

		f.State = StateFailed
		f.FormError = FormErrorMessage

		return Result{FormError: FormErrorMessage}, nil
	}

	if !s.carts.ClearIf(sessionID, item) {
		slog.InfoContext(ctx, "Cart changed during checkout, keeping it", "order_id", o.ID)
	}

	done := NewForm()
	done.State = StateSucceeded
	done.OrderID = o.ID
	s.forms[sessionID] = done

	span.SetAttributes(attribute.String("order.id", o.ID))

	return Result{OrderID: o.ID, Order: o}, nil
}
