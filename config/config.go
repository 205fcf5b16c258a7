package config

import (
	"log"
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

// Config holds every policy threshold and credential the app reads from the
// environment. It is loaded once at startup and passed around immutably
// instead of consulting os.Getenv ad hoc.
type Config struct {
	DatabaseURL string
	RedisAddr   string
	JWTSecret   string
	Port        string

	// Booking policy thresholds, in hours before the appointment start.
	MinRescheduleHours int
	MinCancelHours     int

	SMTPHost  string
	SMTPPort  int
	EmailUser string
	EmailPass string

	StripeSecretKey   string
	RazorpayKeyID     string
	RazorpayKeySecret string
	CashfreeAppID     string
	CashfreeSecretKey string
	TestMode          bool

	SMSGatewayURL string
	SMSGatewayKey string
	FrontendURL   string
	BackendURL    string
}

var C *Config

// Load reads .env (if present) and builds the global config. Safe to call
// more than once; later calls overwrite the global.
func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Warning: Error loading .env file. Using environment variables directly.")
	}

	cfg := &Config{
		DatabaseURL:        os.Getenv("DATABASE_URL"),
		RedisAddr:          getEnv("REDIS_ADDR", "localhost:6379"),
		JWTSecret:          getEnv("JWT_SECRET", "solid_secret_key"),
		Port:               getEnv("PORT", "8000"),
		MinRescheduleHours: getEnvInt("MIN_RESCHEDULE_HOURS", 24),
		MinCancelHours:     getEnvInt("MIN_CANCEL_HOURS", 24),
		SMTPHost:           getEnv("SMTP_HOST", "smtp.gmail.com"),
		SMTPPort:           getEnvInt("SMTP_PORT", 587),
		EmailUser:          os.Getenv("EMAIL_USER"),
		EmailPass:          os.Getenv("EMAIL_PASS"),
		StripeSecretKey:    os.Getenv("STRIPE_SECRET_KEY"),
		RazorpayKeyID:      os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret:  os.Getenv("RAZORPAY_KEY_SECRET"),
		CashfreeAppID:      os.Getenv("CASHFREE_APP_ID"),
		CashfreeSecretKey:  os.Getenv("CASHFREE_SECRET_KEY"),
		TestMode:           os.Getenv("TEST_MODE") == "true",
		SMSGatewayURL:      os.Getenv("SMS_GATEWAY_URL"),
		SMSGatewayKey:      os.Getenv("SMS_GATEWAY_KEY"),
		FrontendURL:        getEnv("FRONTEND_URL", "http://localhost:3000"),
		BackendURL:         getEnv("BACKEND_URL", "http://localhost:8000"),
	}

	C = cfg
	return cfg
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getEnvInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		log.Printf("Warning: invalid %s=%q, using default %d", key, v, fallback)
		return fallback
	}
	return n
}
