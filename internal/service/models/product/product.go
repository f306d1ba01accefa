package product

import "github.com/shopspring/decimal"

// Variant is a selectable product dimension such as size or color.
type Variant struct {
	ID      string   `json:"id"      yaml:"id"`
	Name    string   `json:"name"    yaml:"name"`
	Options []string `json:"options" yaml:"options"`
}

// Product represents a catalog entry. Products are reference data and never change at runtime.
type Product struct {
	ID          string          `json:"id"          yaml:"id"`
	Title       string          `json:"title"       yaml:"title"`
	Description string          `json:"description" yaml:"description"`
	Price       decimal.Decimal `json:"price"       yaml:"price"`
	Image       string          `json:"image"       yaml:"image"`
	Category    string          `json:"category"    yaml:"category"`
	Rating      float64         `json:"rating"      yaml:"rating"`
	Reviews     int             `json:"reviews"     yaml:"reviews"`
	Variants    []Variant       `json:"variants"    yaml:"variants"`
	Inventory   int             `json:"inventory"   yaml:"inventory"`
}

// HasOption reports whether value is one of the options of the named variant.
func (p Product) HasOption(variantName, value string) bool {
	for _, v := range p.Variants {
		if v.Name != variantName {
			continue
		}
		for _, opt := range v.Options {
			if opt == value {
				return true
			}
		}
	}

	return false
}

// DefaultVariant returns the first option of the first variant, the preselection the storefront shows.
func (p Product) DefaultVariant() (name, value string) {
	if len(p.Variants) == 0 || len(p.Variants[0].Options) == 0 {
		return "", ""
	}

	return p.Variants[0].Name, p.Variants[0].Options[0]
}

// ClampQuantity bounds quantity to the orderable range [1, Inventory].
func (p Product) ClampQuantity(quantity int) int {
	if quantity > p.Inventory {
		quantity = p.Inventory
	}
	if quantity < 1 {
		quantity = 1
	}

	return quantity
}
