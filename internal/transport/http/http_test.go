package httptransport

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/cookiejar"
	"net/http/httptest"
	"testing"

	memoryrepo "github.com/jyothi044/ShopEase-ecommerce/internal/dal/repositories/order/memory"
	staticrepo "github.com/jyothi044/ShopEase-ecommerce/internal/dal/repositories/product/static"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/cartsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/catalogsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/checkoutsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/contactsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/ordersvc"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type stubGateway struct {
	status order.Status
	err    error
}

func (g *stubGateway) Authorize(context.Context, order.PaymentInfo) (order.Status, error) {
	return g.status, g.err
}

type nopNotifier struct{}

func (nopNotifier) Notify(context.Context, order.Order) error { return nil }

type testServer struct {
	*httptest.Server
	client  *http.Client
	gateway *stubGateway
}

func setupServer(t *testing.T) *testServer {
	t.Helper()

	products := staticrepo.MustNewProductRepository()
	gateway := &stubGateway{status: order.StatusApproved}

	orders := ordersvc.MustNewOrderService(
		ordersvc.WithOrderRepository(memoryrepo.NewOrderRepository()),
		ordersvc.WithPaymentGateway(gateway),
		ordersvc.WithNotifier(nopNotifier{}),
		ordersvc.WithLatency(ordersvc.Latency{}),
	)
	carts := cartsvc.MustNewCartService(cartsvc.WithProductRepository(products))

	transport := NewHTTPTransport(Services{
		Catalog:  catalogsvc.MustNewCatalogService(catalogsvc.WithProductRepository(products)),
		Cart:     carts,
		Checkout: checkoutsvc.MustNewCheckoutService(checkoutsvc.WithOrderService(orders), checkoutsvc.WithCartStore(carts)),
		Orders:   orders,
		Contact:  contactsvc.MustNewContactService(contactsvc.WithLatency(0)),
	})
	transport.RegisterRoutes()

	srv := httptest.NewServer(transport.Handler())
	t.Cleanup(srv.Close)

	jar, err := cookiejar.New(nil)
	require.NoError(t, err)

	return &testServer{
		Server:  srv,
		client:  &http.Client{Jar: jar},
		gateway: gateway,
	}
}

func (s *testServer) do(t *testing.T, method, path string, body any) (*http.Response, map[string]any) {
	t.Helper()

	var reader *bytes.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		reader = bytes.NewReader(b)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequest(method, s.URL+path, reader)
	require.NoError(t, err)
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	require.NoError(t, err)
	defer resp.Body.Close()

	out := map[string]any{}
	if resp.StatusCode != http.StatusNoContent {
		require.NoError(t, json.NewDecoder(resp.Body).Decode(&out))
	}

	return resp, out
}

func janeDoeForm() map[string]any {
	return map[string]any{
		"customer": map[string]string{
			"fullName": "Jane Doe",
			"email":    "jane@x.com",
			"phone":    "5551234567",
			"address":  "1 Main St",
			"city":     "Springfield",
			"state":    "IL",
			"zipCode":  "62704",
		},
		"payment": map[string]string{
			"cardNumber": "4111111111111111",
			"expiryDate": "12/99",
			"cvv":        "123",
		},
	}
}

func TestHealth(t *testing.T) {
	s := setupServer(t)

	resp, body := s.do(t, http.MethodGet, "/health", nil)
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", body["status"])
}

func TestCatalogRoutes(t *testing.T) {
	s := setupServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/categories", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, []any{"Electronics", "Shoes", "Clothing", "Accessories"}, body["categories"])

	_, body = s.do(t, http.MethodGet, "/api/products", nil)
	assert.Len(t, body["products"], 15)

	_, body = s.do(t, http.MethodGet, "/api/products?category=Shoes", nil)
	assert.Len(t, body["products"], 3)

	resp, body = s.do(t, http.MethodGet, "/api/products/2", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Classic Leather Sneakers", body["title"])
	assert.Equal(t, "159.99", body["price"])

	resp, body = s.do(t, http.MethodGet, "/api/products/404", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "product_not_found", body["code"])
}

func TestCartRoutes(t *testing.T) {
	s := setupServer(t)

	_, body := s.do(t, http.MethodGet, "/api/cart", nil)
	assert.Nil(t, body["item"])

	resp, body := s.do(t, http.MethodPost, "/api/cart", map[string]any{"productId": "11", "quantity": 100})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	item := body["item"].(map[string]any)
	assert.EqualValues(t, 25, item["quantity"])
	assert.Equal(t, `55"`, item["selectedVariant"].(map[string]any)["value"])

	resp, body = s.do(t, http.MethodPost, "/api/cart", map[string]any{
		"productId": "2", "quantity": 2, "variantName": "Size", "variantValue": "10",
	})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	_, body = s.do(t, http.MethodGet, "/api/cart", nil)
	item = body["item"].(map[string]any)
	assert.Equal(t, "2", item["productId"])
	assert.EqualValues(t, 2, item["quantity"])

	resp, body = s.do(t, http.MethodPost, "/api/cart", map[string]any{
		"productId": "2", "variantName": "Size", "variantValue": "15",
	})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	assert.Equal(t, "unknown_variant", body["code"])

	resp, _ = s.do(t, http.MethodPost, "/api/cart", map[string]any{"quantity": 1})
	assert.Equal(t, http.StatusBadRequest, resp.StatusCode)

	resp, _ = s.do(t, http.MethodDelete, "/api/cart", nil)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	_, body = s.do(t, http.MethodGet, "/api/cart", nil)
	assert.Nil(t, body["item"])
}

func TestCheckout_EmptyCartRedirects(t *testing.T) {
	s := setupServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/checkout", janeDoeForm())
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "/", body["redirect"])
}

func TestCheckout_HappyPath(t *testing.T) {
	s := setupServer(t)

	resp, _ := s.do(t, http.MethodPost, "/api/cart", map[string]any{"productId": "5", "quantity": 2})
	require.Equal(t, http.StatusOK, resp.StatusCode)

	resp, body := s.do(t, http.MethodPost, "/api/checkout", janeDoeForm())
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	orderID, _ := body["orderId"].(string)
	require.NotEmpty(t, orderID)

	_, body = s.do(t, http.MethodGet, "/api/cart", nil)
	assert.Nil(t, body["item"])

	resp, body = s.do(t, http.MethodGet, "/api/orders/"+orderID, nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "159.98", body["total"])
	assert.Equal(t, "159.98", body["subtotal"])
	assert.Equal(t, "**** **** **** 1111", body["cardNumber"])
	assert.Equal(t, "approved", body["status"])
	assert.Equal(t, "Payment Approved", body["statusTitle"])
	assert.Regexp(t, `^ORD-\d{8}-\d{4}$`, body["orderNumber"])

	_, body = s.do(t, http.MethodGet, "/api/checkout", nil)
	assert.Equal(t, "succeeded", body["state"])
}

func TestCheckout_FieldFlow(t *testing.T) {
	s := setupServer(t)

	resp, body := s.do(t, http.MethodPatch, "/api/checkout/fields/cardNumber", map[string]string{"value": "41111111"})
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "4111 1111", body["payment"].(map[string]any)["cardNumber"])

	resp, body = s.do(t, http.MethodPost, "/api/checkout/fields/cardNumber/blur", nil)
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "Please enter a valid 16-digit card number", body["errors"].(map[string]any)["cardNumber"])

	resp, body = s.do(t, http.MethodPatch, "/api/checkout/fields/nickname", map[string]string{"value": "x"})
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "unknown_field", body["code"])
}

func TestCheckout_ValidationErrors(t *testing.T) {
	s := setupServer(t)
	s.do(t, http.MethodPost, "/api/cart", map[string]any{"productId": "1", "quantity": 1})

	form := janeDoeForm()
	form["customer"].(map[string]string)["email"] = "not-an-email"

	resp, body := s.do(t, http.MethodPost, "/api/checkout", form)
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	assert.Equal(t, map[string]any{"email": "Please enter a valid email address"}, body["fields"])

	_, body = s.do(t, http.MethodGet, "/api/cart", nil)
	assert.NotNil(t, body["item"])
}

func TestCheckout_OrderFault(t *testing.T) {
	s := setupServer(t)
	s.gateway.err = errors.New("processor unreachable")
	s.do(t, http.MethodPost, "/api/cart", map[string]any{"productId": "1", "quantity": 1})

	resp, body := s.do(t, http.MethodPost, "/api/checkout", janeDoeForm())
	assert.Equal(t, http.StatusBadGateway, resp.StatusCode)
	assert.Equal(t, checkoutsvc.FormErrorMessage, body["error"])

	_, body = s.do(t, http.MethodGet, "/api/checkout", nil)
	assert.Equal(t, "failed", body["state"])
	assert.Equal(t, "Jane Doe", body["customer"].(map[string]any)["fullName"])
}

func TestGetOrder_NotFound(t *testing.T) {
	s := setupServer(t)

	resp, body := s.do(t, http.MethodGet, "/api/orders/unknown", nil)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	assert.Equal(t, "order_not_found", body["code"])
}

func TestContact(t *testing.T) {
	s := setupServer(t)

	resp, body := s.do(t, http.MethodPost, "/api/contact", map[string]string{
		"name": "Jane", "email": "jane@x.com", "subject": "Hi", "message": "Hello",
	})
	assert.Equal(t, http.StatusAccepted, resp.StatusCode)
	assert.Equal(t, "sent", body["status"])

	resp, body = s.do(t, http.MethodPost, "/api/contact", map[string]string{"email": "nope"})
	assert.Equal(t, http.StatusUnprocessableEntity, resp.StatusCode)
	fields := body["fields"].(map[string]any)
	assert.Equal(t, "Name is required", fields["name"])
	assert.Equal(t, "Please enter a valid email address", fields["email"])
}

func TestSessionsAreIsolated(t *testing.T) {
	s := setupServer(t)
	s.do(t, http.MethodPost, "/api/cart", map[string]any{"productId": "1", "quantity": 1})

	other, err := cookiejar.New(nil)
	require.NoError(t, err)
	stranger := &testServer{Server: s.Server, client: &http.Client{Jar: other}}

	_, body := stranger.do(t, http.MethodGet, "/api/cart", nil)
	assert.Nil(t, body["item"])
}
