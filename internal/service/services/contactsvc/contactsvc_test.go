package contactsvc

import (
	"bytes"
	"context"
	"log/slog"
	"testing"
	"time"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/contact"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/validation"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestContactService_Submit_Valid(t *testing.T) {
	var buf bytes.Buffer
	s := MustNewContactService(
		WithLatency(0),
		WithLogger(slog.New(slog.NewJSONHandler(&buf, nil))),
	)

	errs, err := s.Submit(context.Background(), contact.Message{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Order question",
		Message: "Where is my parcel?",
	})
	require.NoError(t, err)
	assert.Nil(t, errs)
	assert.Contains(t, buf.String(), "Contact message received")
	assert.Contains(t, buf.String(), "Order question")
}

func TestContactService_Submit_FieldErrors(t *testing.T) {
	s := MustNewContactService(WithLatency(0))

	errs, err := s.Submit(context.Background(), contact.Message{Email: "  "})
	require.NoError(t, err)
	assert.Equal(t, validation.FieldErrors{
		"name":    "Name is required",
		"email":   "Email is required",
		"subject": "Subject is required",
		"message": "Message is required",
	}, errs)

	errs, err = s.Submit(context.Background(), contact.Message{
		Name:    "Jane",
		Email:   "not-an-email",
		Subject: "Hi",
		Message: "Hello",
	})
	require.NoError(t, err)
	assert.Equal(t, validation.FieldErrors{"email": "Please enter a valid email address"}, errs)
}

func TestContactService_Submit_CancelledWhileSending(t *testing.T) {
	s := MustNewContactService(WithLatency(time.Hour))

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Millisecond)
	defer cancel()

	errs, err := s.Submit(ctx, contact.Message{
		Name:    "Jane",
		Email:   "jane@x.com",
		Subject: "Hi",
		Message: "Hello",
	})
	assert.Nil(t, errs)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}
