package mailersvc

import (
	"bytes"
	"context"
	"fmt"
	"log/slog"
	"text/template"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/confirmation"
	"go.opentelemetry.io/otel"
)

var bodyTemplate = template.Must(template.New("confirmation").Parse(
	`Hi {{.FullName}},

{{.Status.Message}}

Order number: {{.OrderNumber}}
{{range .Items}}  {{.Quantity}} x {{.Title}}{{if .VariantValue}} ({{.VariantName}}: {{.VariantValue}}){{end}}  ${{.Price.StringFixed 2}}
{{end}}Total: ${{.Total.StringFixed 2}}

Thank you for shopping with ShopEase.
`))

// Email is a rendered confirmation email.
type Email struct {
	To      string
	Subject string
	Body    string
}

// Render builds the email for a confirmation event.
func Render(c confirmation.OrderConfirmation) (Email, error) {
	var body bytes.Buffer
	if err := bodyTemplate.Execute(&body, c); err != nil {
		return Email{}, fmt.Errorf("render confirmation %s: %w", c.OrderNumber, err)
	}

	return Email{
		To:      c.Email,
		Subject: fmt.Sprintf("%s: order %s", c.Status.Title(), c.OrderNumber),
		Body:    body.String(),
	}, nil
}

// MailerService delivers order confirmation emails.
type MailerService struct {
	logger *slog.Logger
}

// option is a function that configures the MailerService.
type option func(*MailerService)

// MustNewMailerService creates a new MailerService.
func MustNewMailerService(opts ...option) *MailerService {
	s := &MailerService{}
	for _, opt := range opts {
		opt(s)
	}

	if s.logger == nil {
		s.logger = slog.Default()
	}

	return s
}

// WithLogger sets the logger emails are written to.
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithLogger(logger *slog.Logger) option {
	return func(s *MailerService) {
		s.logger = logger
	}
}

// SendConfirmation renders the email and logs it in place of an SMTP hand-off.
func (s *MailerService) SendConfirmation(ctx context.Context, c confirmation.OrderConfirmation) error {
	ctx, span := otel.Tracer("service").Start(ctx, "MailerService.SendConfirmation")
	defer span.End()

	if !c.Status.Valid() {
		return fmt.Errorf("confirmation %s has unknown status %q", c.OrderID, c.Status)
	}
	if c.Email == "" {
		return fmt.Errorf("confirmation %s has no recipient", c.OrderID)
	}

	email, err := Render(c)
	if err != nil {
		return err
	}

	s.logger.InfoContext(ctx,
		fmt.Sprintf("Sending %s email to %s for order %s", c.Status, c.Email, c.OrderNumber),
		"order_id", c.OrderID,
		"subject", email.Subject,
		"body", email.Body)
	s.logger.InfoContext(ctx, "Email sent successfully", "order_id", c.OrderID)

	return nil
}
