package checkoutsvc

import (
	"errors"
	"fmt"
	"maps"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/validation"
)

// State is the lifecycle position of a checkout form.
type State int

const (
	StateEditing State = iota
	StateValidating
	StateSubmitting
	StateSucceeded
	StateFailed
)

var stateNames = map[State]string{
	StateEditing:    "editing",
	StateValidating: "validating",
	StateSubmitting: "submitting",
	StateSucceeded:  "succeeded",
	StateFailed:     "failed",
}

func (s State) String() string {
	if name, ok := stateNames[s]; ok {
		return name
	}

	return fmt.Sprintf("State(%d)", int(s))
}

// MarshalText renders the state by name.
func (s State) MarshalText() ([]byte, error) {
	return []byte(s.String()), nil
}

var (
	// ErrSubmissionInProgress is returned for edits, blurs or submits while an order is being placed.
	ErrSubmissionInProgress = errors.New("submission already in progress")
	// ErrUnknownField is returned for a field name the form does not have.
	ErrUnknownField = errors.New("unknown checkout field")
)

// FormErrorMessage is shown when placing the order fails unexpectedly.
const FormErrorMessage = "An error occurred while processing your order. Please try again."

// Fields lists the form fields in display order with the rule each must pass.
var Fields = []struct {
	Name string
	Tag  string
}{
	{"fullName", validation.TagRequired},
	{"email", validation.TagEmail},
	{"phone", validation.TagPhone},
	{"address", validation.TagRequired},
	{"city", validation.TagRequired},
	{"state", validation.TagRequired},
	{"zipCode", validation.TagZip},
	{"cardNumber", validation.TagCard},
	{"expiryDate", validation.TagExpiry},
	{"cvv", validation.TagCVV},
}

// Form is the checkout form of one session.
type Form struct {
	Customer  order.CustomerInfo     `json:"customer"`
	Payment   order.PaymentInfo      `json:"payment"`
	Errors    validation.FieldErrors `json:"errors"`
	FormError string                 `json:"formError,omitempty"`
	State     State                  `json:"state"`
	// OrderID is the order placed by the last successful submit.
	OrderID string `json:"orderId,omitempty"`
}

// NewForm returns an empty form ready for editing.
func NewForm() *Form {
	return &Form{
		Errors: validation.FieldErrors{},
		State:  StateEditing,
	}
}

func (f *Form) ref(field string) *string {
	switch field {
	case "fullName":
		return &f.Customer.FullName
	case "email":
		return &f.Customer.Email
	case "phone":
		return &f.Customer.Phone
	case "address":
		return &f.Customer.Address
	case "city":
		return &f.Customer.City
	case "state":
		return &f.Customer.State
	case "zipCode":
		return &f.Customer.ZipCode
	case "cardNumber":
		return &f.Payment.CardNumber
	case "expiryDate":
		return &f.Payment.ExpiryDate
	case "cvv":
		return &f.Payment.CVV
	default:
		return nil
	}
}

func fieldTag(field string) string {
	for _, fld := range Fields {
		if fld.Name == field {
			return fld.Tag
		}
	}

	return ""
}

// Set stores a field value and clears that field's error. Card number and expiry are
// reformatted on every edit. The value is not validated.
func (f *Form) Set(field, value string) error {
	if f.State == StateSubmitting {
		return ErrSubmissionInProgress
	}

	ptr := f.ref(field)
	if ptr == nil {
		return fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	switch field {
	case "cardNumber":
		value = validation.FormatCardNumber(value)
	case "expiryDate":
		value = validation.FormatExpiryDate(value)
	}

	*ptr = value
	delete(f.Errors, field)
	if f.State != StateEditing {
		f.State = StateEditing
	}

	return nil
}

// Blur validates a single field as the user leaves it and returns its message, "" when valid.
func (f *Form) Blur(field string, v *validation.Validator) (string, error) {
	if f.State == StateSubmitting {
		return "", ErrSubmissionInProgress
	}

	ptr := f.ref(field)
	if ptr == nil {
		return "", fmt.Errorf("%w: %q", ErrUnknownField, field)
	}

	msg := v.Var(field, *ptr, fieldTag(field), validation.DefaultMessages)
	if msg == "" {
		delete(f.Errors, field)
	} else {
		f.Errors[field] = msg
	}

	return msg, nil
}

// Validate checks every field, replaces Errors with the failures and reports whether there were none.
func (f *Form) Validate(v *validation.Validator) bool {
	errs := validation.FieldErrors{}
	maps.Copy(errs, v.Struct(f.Customer, validation.DefaultMessages))
	maps.Copy(errs, v.Struct(f.Payment, validation.DefaultMessages))
	f.Errors = errs

	return len(errs) == 0
}

// Snapshot returns a copy safe to hand out while the form keeps changing.
func (f *Form) Snapshot() Form {
	out := *f
	out.Errors = maps.Clone(f.Errors)
	if out.Errors == nil {
		out.Errors = validation.FieldErrors{}
	}

	return out
}
