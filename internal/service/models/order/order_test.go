package order

import (
	"testing"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/cart"
	"github.com/stretchr/testify/assert"
)

func TestStatus_Texts(t *testing.T) {
	for _, s := range Statuses {
		assert.True(t, s.Valid())
		assert.NotEmpty(t, s.Title(), s)
		assert.NotEmpty(t, s.Message(), s)
	}

	assert.False(t, Status("pending").Valid())
	assert.Empty(t, Status("pending").Title())
	assert.Equal(t, "Payment Declined", StatusDeclined.Title())
}

func TestOrder_Clone(t *testing.T) {
	o := Order{ID: "a", Items: []cart.Item{{ProductID: "1", Quantity: 1}}}

	c := o.Clone()
	c.Items[0].Quantity = 5

	assert.Equal(t, 1, o.Items[0].Quantity)
}
