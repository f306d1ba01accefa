package order

import (
	"time"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/cart"
	"github.com/shopspring/decimal"
)

// Status is the transaction outcome assigned when the order is created.
type Status string

const (
	StatusApproved Status = "approved"
	StatusDeclined Status = "declined"
	StatusError    Status = "error"
)

// Statuses lists every transaction outcome.
var Statuses = []Status{StatusApproved, StatusDeclined, StatusError}

func (s Status) String() string {
	return string(s)
}

// Valid reports whether s is one of the known outcomes.
func (s Status) Valid() bool {
	switch s {
	case StatusApproved, StatusDeclined, StatusError:
		return true
	default:
		return false
	}
}

type statusText struct {
	title   string
	message string
}

var statusTexts = map[Status]statusText{
	StatusApproved: {"Payment Approved", "Your payment has been approved and your order is being processed."},
	StatusDeclined: {"Payment Declined", "Your payment was declined. Please try a different payment method."},
	StatusError:    {"Payment Error", "There was an error processing your payment. Please try again later."},
}

// Title is the headline shown to the shopper for this outcome.
func (s Status) Title() string {
	return statusTexts[s].title
}

// Message explains the outcome to the shopper.
func (s Status) Message() string {
	return statusTexts[s].message
}

// CustomerInfo holds the shipping and contact details entered at checkout.
type CustomerInfo struct {
	FullName string `json:"fullName" validate:"notblank"`
	Email    string `json:"email"    validate:"emailaddr"`
	Phone    string `json:"phone"    validate:"phone10"`
	Address  string `json:"address"  validate:"notblank"`
	City     string `json:"city"     validate:"notblank"`
	State    string `json:"state"    validate:"notblank"`
	ZipCode  string `json:"zipCode"  validate:"zipcode"`
}

// PaymentInfo holds card details. Only the redacted form is ever stored.
type PaymentInfo struct {
	CardNumber string `json:"cardNumber" validate:"card16"`
	ExpiryDate string `json:"expiryDate" validate:"mmyy"`
	CVV        string `json:"cvv"        validate:"cvv3"`
}

// Order represents a placed order. It is never modified after creation.
type Order struct {
	ID          string          `json:"id"`
	OrderNumber string          `json:"orderNumber"`
	Customer    CustomerInfo    `json:"customer"`
	Payment     PaymentInfo     `json:"payment"`
	Items       []cart.Item     `json:"items"`
	Subtotal    decimal.Decimal `json:"subtotal"`
	Total       decimal.Decimal `json:"total"`
	Status      Status          `json:"status"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// Clone returns a deep copy so callers cannot alias the stored items.
func (o Order) Clone() Order {
	items := make([]cart.Item, len(o.Items))
	copy(items, o.Items)
	o.Items = items

	return o
}
