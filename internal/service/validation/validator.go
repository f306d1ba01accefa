package validation

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
)

// Custom validator tags backed by the predicates in this package.
const (
	TagRequired = "notblank"
	TagEmail    = "emailaddr"
	TagPhone    = "phone10"
	TagCard     = "card16"
	TagExpiry   = "mmyy"
	TagCVV      = "cvv3"
	TagZip      = "zipcode"
)

// FieldErrors maps a JSON field name to a user-facing message.
type FieldErrors map[string]string

// Messages resolves the message for a field that failed the given tag.
type Messages func(field, tag string) string

var tagMessages = map[string]string{
	TagEmail:  "Please enter a valid email address",
	TagPhone:  "Please enter a valid 10-digit phone number",
	TagZip:    "Please enter a valid zip code (e.g., 12345 or 12345-6789)",
	TagCard:   "Please enter a valid 16-digit card number",
	TagExpiry: "Please enter a valid expiry date (MM/YY) in the future",
	TagCVV:    "Please enter a valid 3-digit CVV",
}

// DefaultMessages is the checkout wording: a dedicated message per rule, a generic one otherwise.
func DefaultMessages(_, tag string) string {
	if msg, ok := tagMessages[tag]; ok {
		return msg
	}

	return "This field is required"
}

// Validator runs struct and single-value checks through go-playground/validator.
type Validator struct {
	validate *validator.Validate
	now      func() time.Time
}

// Option configures a Validator.
type Option func(*Validator)

// WithClock overrides the clock used for expiry checks.
func WithClock(now func() time.Time) Option {
	return func(v *Validator) {
		v.now = now
	}
}

// New creates a Validator with the storefront rules registered.
func New(opts ...Option) *Validator {
	v := &Validator{
		validate: validator.New(validator.WithRequiredStructEnabled()),
		now:      time.Now,
	}
	for _, opt := range opts {
		opt(v)
	}

	v.validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}

		return name
	})

	// Whitespace-only input counts as missing.
	_ = v.validate.RegisterValidation(TagRequired, validators.NotBlank)

	rules := map[string]func(string) bool{
		TagEmail: ValidateEmail,
		TagPhone: ValidatePhone,
		TagCard:  ValidateCardNumber,
		TagExpiry: func(s string) bool {
			return ValidateExpiryDateAt(s, v.now())
		},
		TagCVV: ValidateCVV,
		TagZip: ValidateZipCode,
	}
	for tag, rule := range rules {
		// Registration only fails on an empty tag or nil func.
		_ = v.validate.RegisterValidation(tag, func(fl validator.FieldLevel) bool {
			return rule(fl.Field().String())
		})
	}

	return v
}

// Struct validates every field of s and returns the failures keyed by JSON name.
// A nil result means s is valid.
func (v *Validator) Struct(s any, messages Messages) FieldErrors {
	return v.collect(v.validate.Struct(s), messages)
}

// Var validates a single value against a tag list and returns the message, or "" when valid.
func (v *Validator) Var(field, value, tags string, messages Messages) string {
	err := v.validate.Var(value, tags)
	if err == nil {
		return ""
	}
	if messages == nil {
		messages = DefaultMessages
	}

	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return messages(field, verrs[0].Tag())
	}

	return err.Error()
}

func (v *Validator) collect(err error, messages Messages) FieldErrors {
	if err == nil {
		return nil
	}
	if messages == nil {
		messages = DefaultMessages
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return FieldErrors{"": err.Error()}
	}

	out := make(FieldErrors, len(verrs))
	for _, fe := range verrs {
		out[fe.Field()] = messages(fe.Field(), fe.Tag())
	}

	return out
}
