// Package payment simulates the card processor. No real gateway is contacted.
package payment

import (
	"context"
	"math/rand/v2"

	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
)

// RandomGateway assigns approved, declined or error with equal probability.
type RandomGateway struct {
	intn func(n int) int
}

// option is a function that configures the RandomGateway.
type option func(*RandomGateway)

// NewRandomGateway creates a gateway backed by math/rand.
func NewRandomGateway(opts ...option) *RandomGateway {
	g := &RandomGateway{intn: rand.IntN}
	for _, opt := range opts {
		opt(g)
	}

	return g
}

// WithIntn replaces the random source; intn(n) must return a value in [0, n).
//
//goland:noinspection GoExportedFuncWithUnexportedType
func WithIntn(intn func(n int) int) option {
	return func(g *RandomGateway) {
		g.intn = intn
	}
}

// Authorize picks the transaction outcome. The card details are not inspected.
func (g *RandomGateway) Authorize(ctx context.Context, _ order.PaymentInfo) (order.Status, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	return order.Statuses[g.intn(len(order.Statuses))], nil
}
