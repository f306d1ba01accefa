package contactsvc

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/contact"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/validation"
	"go.opentelemetry.io/otel"
)

// FormErrorMessage is shown when the message could not be sent.
const FormErrorMessage = "Failed to send message. Please try again."

// DefaultLatency is the simulated send time.
const DefaultLatency = 1500 * time.Millisecond

var requiredMessages = map[string]string{
	"name":    "Name is required",
	"email":   "Email is required",
	"subject": "Subject is required",
	"message": "Message is required",
}

// messages maps contact form failures: a per-field "is required" text, the checkout wording otherwise.
func messages(field, tag string) string {
	if tag == validation.TagRequired {
		if msg, ok := requiredMessages[field]; ok {
			return msg
		}
	}

	return validation.DefaultMessages(field, tag)
}

// ContactService accepts contact form submissions.
type ContactService struct {
	validator *validation.Validator
	latency   time.Duration
	logger    *slog.Logger
}

// option is a function that configures the ContactService.
type option func(*ContactService)

// MustNewContactService creates a new ContactService.
func MustNewContactService(opts ...option) *ContactService {
	s := &ContactService{
		latency: DefaultLatency,
	}
	for _, opt := range opts {
		opt(s)
	}

	if s.validator == nil {
		s.validator = validation.New()
	}
	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// WithLatency overrides the simulated send time.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithLatency(d time.Duration) option {
	return func(s *ContactService) {
		s.latency = d
	}
}

// WithLogger sets the logger messages are delivered to.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithLogger(logger *slog.Logger) option {
	return func(s *ContactService) {
		s.logger = logger
	}
}

// WithValidator overrides the field validator.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithValidator(v *validation.Validator) option {
	return func(s *ContactService) {
		s.validator = v
	}
}

// Submit validates msg and delivers it. Field errors are returned without sending;
// an error return means delivery failed and the form should show FormErrorMessage.
func (s *ContactService) Submit(ctx context.Context, msg contact.Message) (validation.FieldErrors, error) {
	ctx, span := otel.Tracer("service").Start(ctx, "ContactService.Submit")
	defer span.End()

	if errs := s.validator.Struct(msg, messages); errs != nil {
		return errs, nil
	}

	if s.latency > 0 {
		timer := time.NewTimer(s.latency)
		defer timer.Stop()

		select {
		case <-ctx.Done():
			return nil, fmt.Errorf("send contact message: %w", ctx.Err())
		case <-timer.C:
		}
	}

	s.logger.InfoContext(ctx, "Contact message received",
		"name", msg.Name,
		"email", msg.Email,
		"subject", msg.Subject,
		"length", len(msg.Message))

	return nil, nil
}
