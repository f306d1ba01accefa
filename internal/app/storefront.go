package app

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jyothi044/ShopEase-ecommerce/internal/dal/notifier"
	"github.com/jyothi044/ShopEase-ecommerce/internal/dal/payment"
	memoryrepo "github.com/jyothi044/ShopEase-ecommerce/internal/dal/repositories/order/memory"
	staticrepo "github.com/jyothi044/ShopEase-ecommerce/internal/dal/repositories/product/static"
	"github.com/jyothi044/ShopEase-ecommerce/internal/otel"
	"github.com/jyothi044/ShopEase-ecommerce/internal/rabbitmq"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/models/order"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/cartsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/catalogsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/checkoutsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/contactsvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/ordersvc"
	httptransport "github.com/jyothi044/ShopEase-ecommerce/internal/transport/http"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"
)

// StorefrontApp serves the storefront HTTP API.
type StorefrontApp struct {
	transport      *httptransport.HTTPTransport
	rabbitMqClient *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewStorefrontApp creates the storefront application from viper configuration.
func MustNewStorefrontApp() *StorefrontApp {
	otelController := otel.MustInitOtel("storefront")

	productRepository := staticrepo.MustNewProductRepository()
	orderRepository := memoryrepo.NewOrderRepository()

	confirmationNotifier, rabbitMqClient := mustNewNotifier(viper.GetString("notifier.kind"))

	catalogSvc := catalogsvc.MustNewCatalogService(
		catalogsvc.WithProductRepository(productRepository),
	)
	cartSvc := cartsvc.MustNewCartService(
		cartsvc.WithProductRepository(productRepository),
	)
	orderSvc := ordersvc.MustNewOrderService(
		ordersvc.WithOrderRepository(orderRepository),
		ordersvc.WithPaymentGateway(payment.NewRandomGateway()),
		ordersvc.WithNotifier(confirmationNotifier),
		ordersvc.WithLatency(ordersvc.Latency{
			CreateOrder: viper.GetDuration("latency.create_order"),
			GetOrder:    viper.GetDuration("latency.get_order"),
			SendEmail:   viper.GetDuration("latency.send_email"),
		}),
	)
	checkoutSvc := checkoutsvc.MustNewCheckoutService(
		checkoutsvc.WithOrderService(orderSvc),
		checkoutsvc.WithCartStore(cartSvc),
		checkoutsvc.WithSubmitTimeout(viper.GetDuration("checkout.submit_timeout")),
	)
	contactSvc := contactsvc.MustNewContactService(
		contactsvc.WithLatency(viper.GetDuration("latency.contact")),
	)

	transport := httptransport.NewHTTPTransport(httptransport.Services{
		Catalog:  catalogSvc,
		Cart:     cartSvc,
		Checkout: checkoutSvc,
		Orders:   orderSvc,
		Contact:  contactSvc,
	})
	transport.RegisterRoutes()

	return &StorefrontApp{
		transport:      transport,
		rabbitMqClient: rabbitMqClient,
		otelController: otelController,
	}
}

type orderNotifier interface {
	Notify(ctx context.Context, o order.Order) error
}

// mustNewNotifier builds the confirmation notifier for kind. The RabbitMQ client is nil
// unless kind is amqp.
func mustNewNotifier(kind string) (orderNotifier, *rabbitmq.Client) {
	switch kind {
	case "", "log":
		return notifier.NewLogNotifier(slog.Default()), nil
	case "amqp":
		client := rabbitmq.MustNewClient()
		queue, err := client.ConfirmationQueue()
		if err != nil {
			panic(fmt.Errorf("declare confirmation queue: %w", err))
		}

		return notifier.NewAMQPNotifier(client, queue.Name, notifier.BreakerConfig{
			MaxRequests:         viper.GetUint32("breaker.max_requests"),
			Interval:            viper.GetDuration("breaker.interval"),
			Timeout:             viper.GetDuration("breaker.timeout"),
			ConsecutiveFailures: viper.GetUint32("breaker.consecutive_failures"),
		}), client
	default:
		panic("unknown notifier kind: " + kind)
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *StorefrontApp) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	var g errgroup.Group
	serverDone := make(chan struct{})

	g.Go(func() error {
		defer close(serverDone)

		slog.Info("Starting HTTP server", "port", viper.GetString("server.http.port"))
		if err := a.transport.Run(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("http server: %w", err)
		}

		return nil
	})

	select {
	case <-stop:
		slog.Info("Shutdown signal received")
	case <-serverDone:
	}

	a.gracefulShutdown()

	if err := g.Wait(); err != nil {
		slog.Error("HTTP server error", "error", err)
	}

	slog.Info("Application shutdown complete")
}

func (a *StorefrontApp) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if err := a.transport.Shutdown(ctx); err != nil {
		slog.Error("HTTP server shutdown error", "error", err)
	} else {
		slog.Info("HTTP server stopped gracefully")
	}

	if a.rabbitMqClient != nil {
		if err := a.rabbitMqClient.Close(); err != nil {
			slog.Error("RabbitMQ connection close error", "error", err)
		} else {
			slog.Info("RabbitMQ connection closed gracefully")
		}
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Otel trace provider connection close error", "error", err)
	} else {
		slog.Info("Otel trace provider connection closed gracefully")
	}
}
