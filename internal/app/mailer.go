package app

import (
	"context"
	"log/slog"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/jyothi044/ShopEase-ecommerce/internal/otel"
	"github.com/jyothi044/ShopEase-ecommerce/internal/rabbitmq"
	"github.com/jyothi044/ShopEase-ecommerce/internal/service/services/mailersvc"
	"github.com/jyothi044/ShopEase-ecommerce/internal/transport/consumer"
)

// MailerApp consumes order confirmations and sends the emails.
type MailerApp struct {
	consumerTransp *consumer.Consumer
	rabbitMqClient *rabbitmq.Client
	otelController *otel.OtelController
}

// MustNewMailerApp creates the mailer application.
func MustNewMailerApp() *MailerApp {
	otelController := otel.MustInitOtel("mailer")
	rabbitMqClient := rabbitmq.MustNewClient()

	mailerSvc := mailersvc.MustNewMailerService(
		mailersvc.WithLogger(slog.Default()),
	)

	consumerTransp := consumer.NewConsumer(rabbitMqClient, mailerSvc)

	return &MailerApp{
		consumerTransp: consumerTransp,
		rabbitMqClient: rabbitMqClient,
		otelController: otelController,
	}
}

// Run starts the application.
// Tracks interrupt signal to gracefully shut down the application.
func (a *MailerApp) Run() {
	stop := make(chan os.Signal, 1)
	signal.Notify(stop, os.Interrupt, syscall.SIGTERM)

	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	consumerDone := make(chan struct{})
	go func() {
		defer close(consumerDone)

		slog.Info("Starting consumer")
		if err := a.consumerTransp.Run(ctx); err != nil {
			slog.Error("Consumer error", "error", err)
		}
	}()

	select {
	case <-stop:
		slog.Info("Shutdown signal received")
	case <-consumerDone:
	}

	a.gracefulShutdown()
	cancel()
}

// gracefulShutdown stops the consumer first; Shutdown returns once in-flight messages
// are settled, so the connection closes after the last ack.
func (a *MailerApp) gracefulShutdown() {
	ctx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()

	if err := a.consumerTransp.Shutdown(); err != nil {
		slog.Error("Consumer shutdown error", "error", err)
	} else {
		slog.Info("Consumer stopped gracefully")
	}

	if err := a.rabbitMqClient.Close(); err != nil {
		slog.Error("RabbitMQ connection close error", "error", err)
	} else {
		slog.Info("RabbitMQ connection closed gracefully")
	}

	if err := a.otelController.Shutdown(); err != nil {
		slog.Error("Otel trace provider connection close error", "error", err)
	} else {
		slog.Info("Otel trace provider connection closed gracefully")
	}

	select {
	case <-ctx.Done():
		slog.Warn("Shutdown timeout exceeded")
	default:
		slog.Info("Application shutdown complete")
	}
}
