package config

import (
	"os"
	"strings"
)

// Config is resolved once at startup and passed down. Handlers and usecases
// never read the environment themselves.

type Config struct {
	Port string

	// DemoMode serves the seeded in-memory catalog instead of DynamoDB,
	// mirroring the registry's behavior when no database is configured.
	DemoMode bool

	MercadoPago MercadoPagoConfig
	Database    DatabaseConfig
}

type MercadoPagoConfig struct {
	AccessToken string

	// WebhookSecret enables x-signature validation on inbound notifications
	// when set. Empty means notifications are accepted unsigned and the
	// authoritative re-fetch is the only defense.
	WebhookSecret string

	// BaseURL is the public URL of this service, used for checkout back
	// URLs and the webhook notification URL.
	BaseURL string

	// MockMode short-circuits the gateway with synthetic approved payments.
	MockMode bool
}

func (c MercadoPagoConfig) Configured() bool {
	return c.MockMode || c.AccessToken != ""
}

type DatabaseConfig struct {
	Region          string
	Endpoint        string
	AccessKeyID     string
	SecretAccessKey string

	GiftsTable         string
	ContributionsTable string
}

// Load reads the full configuration from the environment.
//
// Supported env vars (local-friendly defaults):
//   - SERVER_PORT (default 8080)
//   - DEMO_MODE (truthy => in-memory catalog)
//   - MERCADOPAGO_ACCESS_TOKEN, MERCADOPAGO_WEBHOOK_SECRET, BASE_URL
//   - PAYMENT_GATEWAY_MOCK / MERCADOPAGO_MOCK (truthy => mock gateway)
//   - AWS_REGION (default us-east-1), DYNAMODB_ENDPOINT,
//     AWS_ACCESS_KEY_ID / AWS_SECRET_ACCESS_KEY (default "local"),
//     GIFTS_TABLE (default gifts), CONTRIBUTIONS_TABLE (default contributions)
func Load() *Config {
	return &Config{
		Port:     getenvDefault("SERVER_PORT", "8080"),
		DemoMode: isTruthy(os.Getenv("DEMO_MODE")),
		MercadoPago: MercadoPagoConfig{
			AccessToken:   strings.TrimSpace(os.Getenv("MERCADOPAGO_ACCESS_TOKEN")),
			WebhookSecret: strings.TrimSpace(os.Getenv("MERCADOPAGO_WEBHOOK_SECRET")),
			BaseURL:       getenvDefault("BASE_URL", "http://localhost:8080"),
			MockMode:      isTruthy(os.Getenv("PAYMENT_GATEWAY_MOCK")) || isTruthy(os.Getenv("MERCADOPAGO_MOCK")),
		},
		Database: DatabaseConfig{
			Region:             getenvDefault("AWS_REGION", "us-east-1"),
			Endpoint:           os.Getenv("DYNAMODB_ENDPOINT"),
			AccessKeyID:        getenvDefault("AWS_ACCESS_KEY_ID", "local"),
			SecretAccessKey:    getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
			GiftsTable:         getenvDefault("GIFTS_TABLE", "gifts"),
			ContributionsTable: getenvDefault("CONTRIBUTIONS_TABLE", "contributions"),
		},
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func isTruthy(v string) bool {
	switch strings.ToLower(strings.TrimSpace(v)) {
	case "1", "true", "yes", "on", "mock":
		return true
	}
	return false
}
