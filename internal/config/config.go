package config

import (
	"errors"
	"io/fs"
	"log/slog"
	"strings"

	"github.com/joho/godotenv"
	"github.com/jyothi044/ShopEase-ecommerce/pkg/logger"
	"github.com/spf13/viper"
)

// EnvPrefix is prepended to every environment override, e.g. SHOPEASE_SERVER_HTTP_PORT.
const EnvPrefix = "SHOPEASE"

// MustInit loads .env (if present), reads config.yaml and installs the default logger.
func MustInit() {
	if err := godotenv.Load("./.env"); err != nil && !errors.Is(err, fs.ErrNotExist) {
		panic("error while loading .env file: " + err.Error())
	}

	if err := Load("/etc/shopease", "."); err != nil {
		panic("error while reading config file: " + err.Error())
	}

	SetupLogger()
}

// Load sets defaults, binds the environment and reads config.yaml from the first path that has one.
// A missing config file is not an error.
func Load(paths ...string) error {
	SetDefaults()

	viper.SetEnvPrefix(EnvPrefix)
	viper.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	viper.AutomaticEnv()

	viper.SetConfigName("config")
	viper.SetConfigType("yaml")
	for _, p := range paths {
		viper.AddConfigPath(p)
	}

	if err := viper.ReadInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if errors.As(err, &notFound) {
			return nil
		}

		return err
	}

	return nil
}

// SetDefaults registers the fallback value of every key the services read.
func SetDefaults() {
	viper.SetDefault("server.http.port", "8080")
	viper.SetDefault("server.http.secure_cookies", false)
	viper.SetDefault("server.http.cors.allowed_origins", []string{"*"})
	viper.SetDefault("server.http.cors.allowed_methods", []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"})
	viper.SetDefault("server.http.cors.allowed_headers", []string{"Accept", "Content-Type", "X-Request-Id"})
	viper.SetDefault("server.http.cors.exposed_headers", []string{"X-Request-Id"})
	viper.SetDefault("server.http.cors.allow_credentials", true)
	viper.SetDefault("server.http.cors.max_age", 300)

	viper.SetDefault("checkout.submit_timeout", "30s")

	viper.SetDefault("latency.create_order", "1500ms")
	viper.SetDefault("latency.get_order", "500ms")
	viper.SetDefault("latency.send_email", "1000ms")
	viper.SetDefault("latency.contact", "1500ms")

	viper.SetDefault("notifier.kind", "log")

	viper.SetDefault("rabbitmq.host", "rabbitmq")
	viper.SetDefault("rabbitmq.port", 5672)
	viper.SetDefault("rabbitmq.user", "guest")
	viper.SetDefault("rabbitmq.password", "guest")
	viper.SetDefault("rabbitmq.queue", "order_confirmations")
	viper.SetDefault("rabbitmq.consumer_tag", "mailer")
	viper.SetDefault("rabbitmq.workers", 10)

	viper.SetDefault("breaker.max_requests", 1)
	viper.SetDefault("breaker.interval", "1m")
	viper.SetDefault("breaker.timeout", "30s")
	viper.SetDefault("breaker.consecutive_failures", 5)

	viper.SetDefault("otel.enabled", false)
	viper.SetDefault("otel.service_name", "storefront")
	viper.SetDefault("otel.jaeger_endpoint", "http://jaeger:14268/api/traces")
}

func SetupLogger() {
	handler := logger.NewHandler(nil)
	log := slog.New(handler)
	slog.SetDefault(log)
}
