package confirmation

import (
	"time"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
	"github.com/shopspring/decimal"
)

// ContentType of a serialized OrderConfirmation.
const ContentType = "application/json"

// Item is one line of the confirmation email.
type Item struct {
	Title        string          `json:"title"`
	Quantity     int             `json:"quantity"`
	Price        decimal.Decimal `json:"price"`
	VariantName  string          `json:"variantName,omitempty"`
	VariantValue string          `json:"variantValue,omitempty"`
}

// OrderConfirmation is the event handed to the mailer once an order is placed.
type OrderConfirmation struct {
	OrderID     string          `json:"orderId"`
	OrderNumber string          `json:"orderNumber"`
	Status      order.Status    `json:"status"`
	Email       string          `json:"email"`
	FullName    string          `json:"fullName"`
	Total       decimal.Decimal `json:"total"`
	Items       []Item          `json:"items"`
	CreatedAt   time.Time       `json:"createdAt"`
}

// FromOrder builds the event for o. Payment details are never included.
func FromOrder(o order.Order) OrderConfirmation {
	items := make([]Item, 0, len(o.Items))
	for _, it := range o.Items {
		items = append(items, Item{
			Title:        it.Title,
			Quantity:     it.Quantity,
			Price:        it.Price,
			VariantName:  it.SelectedVariant.Name,
			VariantValue: it.SelectedVariant.Value,
		})
	}

	return OrderConfirmation{
		OrderID:     o.ID,
		OrderNumber: o.OrderNumber,
		Status:      o.Status,
		Email:       o.Customer.Email,
		FullName:    o.Customer.FullName,
		Total:       o.Total,
		Items:       items,
		CreatedAt:   o.CreatedAt,
	}
}
