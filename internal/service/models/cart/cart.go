package cart

import "github.com/shopspring/decimal"

// SelectedVariant is the variant option chosen when the item was added.
type SelectedVariant struct {
	Name  string `json:"name"`
	Value string `json:"value"`
}

// Item is a snapshot of a product taken at add-to-cart time.
type Item struct {
	ProductID       string          `json:"productId"`
	Title           string          `json:"title"`
	Price           decimal.Decimal `json:"price"`
	Image           string          `json:"image"`
	Quantity        int             `json:"quantity"`
	SelectedVariant SelectedVariant `json:"selectedVariant"`
}

// LineTotal is price times quantity.
func (i Item) LineTotal() decimal.Decimal {
	return i.Price.Mul(decimal.NewFromInt(int64(i.Quantity)))
}

// Equal reports whether both items describe the same cart line.
func (i Item) Equal(other Item) bool {
	return i.ProductID == other.ProductID &&
		i.Title == other.Title &&
		i.Price.Equal(other.Price) &&
		i.Image == other.Image &&
		i.Quantity == other.Quantity &&
		i.SelectedVariant == other.SelectedVariant
}
