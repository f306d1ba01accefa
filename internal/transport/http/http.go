package httptransport

import (
	"context"
	"log/slog"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	cartmodel "github.com/jyothi044/ShopEase-ecommerce/internal/service/models/cart"
	contactmodel "github.com/jyothi044/ShopEase-ecommerce/internal/service/models/contact"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/product"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/checkoutsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/validation"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/cart"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/catalog"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/checkout"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/contact"
	_ "github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/docs"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/getorder"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/http/response"
	"github.com/jyothi044/ShopEase-ecommerce/pkg/http/middleware/session"
	"github.com/jyothi044/ShopEase-ecommerce/pkg/http/middleware/trace"
	"github.com/jyothi044/ShopEase-ecommerce/pkg/logger"
	"github.com/spf13/viper"
	httpSwagger "github.com/swaggo/http-swagger/v2"
)

type catalogService interface {
	GetAllProducts() []product.Product
	GetProductsByCategory(category string) []product.Product
	GetProduct(id string) (*product.Product, bool)
	GetAllCategories() []string
}

type cartService interface {
	GetItem(sessionID string) (cartmodel.Item, bool)
	AddProduct(
		ctx context.Context,
		sessionID string,
		productID string,
		quantity int,
		variantName string,
		variantValue string,
	) (cartmodel.Item, error)
	Clear(sessionID string)
}

type checkoutService interface {
	Form(sessionID string) checkoutsvc.Form
	SetField(sessionID, field, value string) (checkoutsvc.Form, error)
	BlurField(sessionID, field string) (checkoutsvc.Form, error)
	Fill(sessionID string, customer order.CustomerInfo, payment order.PaymentInfo) (checkoutsvc.Form, error)
	Submit(ctx context.Context, sessionID string) (checkoutsvc.Result, error)
}

type orderService interface {
	GetOrder(ctx context.Context, id string) (*order.Order, error)
}

type contactService interface {
	Submit(ctx context.Context, msg contactmodel.Message) (validation.FieldErrors, error)
}

// Services groups what the storefront routes call into.
type Services struct {
	Catalog  catalogService
	Cart     cartService
	Checkout checkoutService
	Orders   orderService
	Contact  contactService
}

type HTTPTransport struct {
	server   *http.Server
	router   *chi.Mux
	services Services
}

func NewHTTPTransport(services Services) *HTTPTransport {
	router := newRouter()
	server := newServer(router)

	return &HTTPTransport{
		server:   server,
		router:   router,
		services: services,
	}
}

func (h *HTTPTransport) Run() error {
	return h.server.ListenAndServe()
}

// Shutdown stops accepting connections and waits for in-flight requests.
func (h *HTTPTransport) Shutdown(ctx context.Context) error {
	return h.server.Shutdown(ctx)
}

// Handler exposes the router, mainly for tests.
func (h *HTTPTransport) Handler() http.Handler {
	return h.router
}

// RegisterRoutes registers the routes for the HTTPTransport.
func (h *HTTPTransport) RegisterRoutes() {
	h.router.Get("/health", h.health)
	h.router.Get("/swagger/*", httpSwagger.Handler(httpSwagger.URL("/swagger/doc.json")))

	h.router.Route("/api", func(r chi.Router) {
		r.Use(session.NewSessionMiddleware(viper.GetBool("server.http.secure_cookies")))

		r.Get("/categories", h.listCategories)
		r.Get("/products", h.listProducts)
		r.Get("/products/{id}", h.getProduct)

		r.Get("/cart", h.getCart)
		r.Post("/cart", h.addToCart)
		r.Delete("/cart", h.clearCart)

		r.Get("/checkout", h.getCheckoutForm)
		r.Post("/checkout", h.submitCheckout)
		r.Patch("/checkout/fields/{field}", h.setCheckoutField)
		r.Post("/checkout/fields/{field}/blur", h.blurCheckoutField)

		r.Get("/orders/{id}", h.getOrder)

		r.Post("/contact", h.submitContact)
	})
}

func (h *HTTPTransport) health(w http.ResponseWriter, _ *http.Request) {
	response.JSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (h *HTTPTransport) listCategories(w http.ResponseWriter, r *http.Request) {
	catalog.ListCategories(w, r, h.services.Catalog)
}

func (h *HTTPTransport) listProducts(w http.ResponseWriter, r *http.Request) {
	catalog.ListProducts(w, r, h.services.Catalog)
}

func (h *HTTPTransport) getProduct(w http.ResponseWriter, r *http.Request) {
	catalog.GetProduct(w, r, h.services.Catalog)
}

func (h *HTTPTransport) getCart(w http.ResponseWriter, r *http.Request) {
	cart.GetCart(w, r, h.services.Cart)
}

func (h *HTTPTransport) addToCart(w http.ResponseWriter, r *http.Request) {
	cart.AddToCart(w, r, h.services.Cart)
}

func (h *HTTPTransport) clearCart(w http.ResponseWriter, r *http.Request) {
	cart.ClearCart(w, r, h.services.Cart)
}

func (h *HTTPTransport) getCheckoutForm(w http.ResponseWriter, r *http.Request) {
	checkout.GetForm(w, r, h.services.Checkout)
}

func (h *HTTPTransport) submitCheckout(w http.ResponseWriter, r *http.Request) {
	checkout.Submit(w, r, h.services.Checkout)
}

func (h *HTTPTransport) setCheckoutField(w http.ResponseWriter, r *http.Request) {
	checkout.SetField(w, r, h.services.Checkout)
}

func (h *HTTPTransport) blurCheckoutField(w http.ResponseWriter, r *http.Request) {
	checkout.BlurField(w, r, h.services.Checkout)
}

func (h *HTTPTransport) getOrder(w http.ResponseWriter, r *http.Request) {
	getorder.GetOrder(w, r, h.services.Orders)
}

func (h *HTTPTransport) submitContact(w http.ResponseWriter, r *http.Request) {
	contact.Submit(w, r, h.services.Contact)
}

func newRouter() *chi.Mux {
	router := chi.NewMux()
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(trace.NewTraceMiddleware(viper.GetString("otel.service_name")))
	router.Use(logger.NewLoggerMiddleware(slog.Default()))

	allowedOrigins := viper.GetStringSlice("server.http.cors.allowed_origins")
	allowedMethods := viper.GetStringSlice("server.http.cors.allowed_methods")
	allowedHeaders := viper.GetStringSlice("server.http.cors.allowed_headers")
	exposedHeaders := viper.GetStringSlice("server.http.cors.exposed_headers")
	allowCredentials := viper.GetBool("server.http.cors.allow_credentials")
	maxAge := viper.GetInt("server.http.cors.max_age")

	c := cors.New(cors.Options{
		AllowedOrigins:   allowedOrigins,
		AllowedMethods:   allowedMethods,
		AllowedHeaders:   allowedHeaders,
		ExposedHeaders:   exposedHeaders,
		AllowCredentials: allowCredentials,
		MaxAge:           maxAge,
	})

	router.Use(c.Handler)

	return router
}

func newServer(router http.Handler) *http.Server {
	return &http.Server{
		Addr:              "0.0.0.0:" + viper.GetString("server.http.port"),
		Handler:           router,
		ReadHeaderTimeout: 5 * time.Second,
	}
}
