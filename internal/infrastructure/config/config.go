package config

import (
	"os"
	"strconv"
)

// Config carries every external setting the service needs. It is loaded
// once in routes.Run and handed to the components that need it; nothing
// below the composition root reads the environment directly.
type Config struct {
	Port        int
	AdminSecret string

	// DynamoDB (local-friendly defaults, same as the docker-compose setup).
	AWSRegion          string
	AWSAccessKeyID     string
	AWSSecretAccessKey string
	DynamoDBEndpoint   string
	ClientsTable       string
	JobsTable          string

	// Mercado Pago payment gateway + inbound webhook verification.
	MercadoPagoAccessToken string
	PaymentWebhookSecret   string
	PaymentGatewayMock     bool

	// Twilio SMS.
	TwilioAccountSID string
	TwilioAuthToken  string
	TwilioFromNumber string

	// Google Calendar (service-account credentials JSON).
	GoogleCredentialsJSON string
	GoogleCalendarID      string

	// SMTP invoice mail.
	SMTPHost     string
	SMTPPort     int
	SMTPUsername string
	SMTPPassword string
	MailFrom     string

	// Public quote intake rate limit (requests per second / burst).
	QuoteRateLimit float64
	QuoteRateBurst int

	// When set, new clients get a fixed placeholder geocoordinate
	// instead of a real geocoder call.
	MockGeocoding bool
}

// Load reads the configuration from environment variables. Defaults are
// chosen so a local DynamoDB plus mock gateways is a working setup.
func Load() Config {
	return Config{
		Port:        getenvInt("PORT", 8080),
		AdminSecret: os.Getenv("ADMIN_SECRET"),

		AWSRegion:          getenvDefault("AWS_REGION", "us-east-1"),
		AWSAccessKeyID:     getenvDefault("AWS_ACCESS_KEY_ID", "local"),
		AWSSecretAccessKey: getenvDefault("AWS_SECRET_ACCESS_KEY", "local"),
		DynamoDBEndpoint:   os.Getenv("DYNAMODB_ENDPOINT"),
		ClientsTable:       getenvDefault("CLIENTS_TABLE", "clients"),
		JobsTable:          getenvDefault("JOBS_TABLE", "jobs"),

		MercadoPagoAccessToken: os.Getenv("MERCADOPAGO_ACCESS_TOKEN"),
		PaymentWebhookSecret:   os.Getenv("PAYMENT_WEBHOOK_SECRET"),
		PaymentGatewayMock:     getenvBool("PAYMENT_GATEWAY_MOCK"),

		TwilioAccountSID: os.Getenv("TWILIO_ACCOUNT_SID"),
		TwilioAuthToken:  os.Getenv("TWILIO_AUTH_TOKEN"),
		TwilioFromNumber: os.Getenv("TWILIO_PHONE_NUMBER"),

		GoogleCredentialsJSON: os.Getenv("GOOGLE_CREDENTIALS_JSON"),
		GoogleCalendarID:      os.Getenv("GOOGLE_CALENDAR_ID"),

		SMTPHost:     os.Getenv("SMTP_HOST"),
		SMTPPort:     getenvInt("SMTP_PORT", 587),
		SMTPUsername: os.Getenv("SMTP_USERNAME"),
		SMTPPassword: os.Getenv("SMTP_PASSWORD"),
		MailFrom:     getenvDefault("MAIL_FROM", "billing@doorwaydetail.example"),

		QuoteRateLimit: getenvFloat("QUOTE_RATE_LIMIT", 1),
		QuoteRateBurst: getenvInt("QUOTE_RATE_BURST", 5),

		MockGeocoding: getenvBool("MOCK_GEOCODING"),
	}
}

func getenvDefault(key, def string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return def
}

func getenvInt(key string, def int) int {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func getenvFloat(key string, def float64) float64 {
	v := os.Getenv(key)
	if v == "" {
		return def
	}
	f, err := strconv.ParseFloat(v, 64)
	if err != nil {
		return def
	}
	return f
}

func getenvBool(key string) bool {
	switch os.Getenv(key) {
	case "1", "true", "TRUE", "yes", "on", "mock":
		return true
	}
	return false
}
