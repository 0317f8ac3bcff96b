package config

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

const (
	defaultPort           = "8080"
	defaultJWTSecret      = "change-me-jwt-secret"
	defaultJWTTTL         = "24h"
	defaultCommissionRate = "15"
	defaultProvider       = "mock"
	defaultCurrency       = "INR"
)

type Config struct {
	AppEnv      string
	Port        string
	DatabaseURL string
	RedisAddr   string

	JWTSecret string
	JWTTTL    time.Duration

	// PaymentProvider selects which gateway variant is wired in: "mock"
	// or "razorpay".
	PaymentProvider   string
	RazorpayKeyID     string
	RazorpayKeySecret string
	Currency          string

	CommissionRate float64
}

func Load() (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Println("no .env file found, using process environment")
	}

	cfg := &Config{
		AppEnv:            strings.ToLower(getEnv("APP_ENV", "dev")),
		Port:              getEnv("PORT", defaultPort),
		DatabaseURL:       getEnv("DATABASE_URL", "hostelhub.db"),
		RedisAddr:         os.Getenv("REDIS_ADDR"),
		JWTSecret:         getEnv("JWT_SECRET", defaultJWTSecret),
		PaymentProvider:   strings.ToLower(getEnv("PAYMENT_PROVIDER", defaultProvider)),
		RazorpayKeyID:     os.Getenv("RZP_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RZP_KEY_SECRET"),
		Currency:          getEnv("PAYMENT_CURRENCY", defaultCurrency),
	}

	var err error
	cfg.JWTTTL, err = parseDurationEnv("JWT_TTL", defaultJWTTTL)
	if err != nil {
		return nil, err
	}

	rateStr := strings.TrimSpace(getEnv("COMMISSION_RATE", defaultCommissionRate))
	cfg.CommissionRate, err = strconv.ParseFloat(rateStr, 64)
	if err != nil {
		return nil, fmt.Errorf("invalid COMMISSION_RATE value %q: %w", rateStr, err)
	}

	if err := validate(cfg); err != nil {
		return nil, err
	}
	return cfg, nil
}

func validate(cfg *Config) error {
	if cfg.CommissionRate < 0 || cfg.CommissionRate > 100 {
		return fmt.Errorf("COMMISSION_RATE must be between 0 and 100, got %v", cfg.CommissionRate)
	}
	if cfg.PaymentProvider != "mock" && cfg.PaymentProvider != "razorpay" {
		return fmt.Errorf("PAYMENT_PROVIDER must be mock or razorpay, got %q", cfg.PaymentProvider)
	}
	if cfg.PaymentProvider == "razorpay" && (cfg.RazorpayKeyID == "" || cfg.RazorpayKeySecret == "") {
		return fmt.Errorf("RZP_KEY_ID and RZP_KEY_SECRET must be set for the razorpay provider")
	}
	if isProdLike(cfg.AppEnv) && cfg.JWTSecret == defaultJWTSecret {
		return fmt.Errorf("in prod/release JWT_SECRET must be set and not default")
	}
	return nil
}

func isProdLike(env string) bool {
	return env == "prod" || env == "production" || env == "release"
}

func parseDurationEnv(name, fallback string) (time.Duration, error) {
	value := strings.TrimSpace(getEnv(name, fallback))
	d, err := time.ParseDuration(value)
	if err != nil {
		return 0, fmt.Errorf("invalid %s value %q: %w", name, value, err)
	}
	return d, nil
}

func getEnv(name, fallback string) string {
	if v := os.Getenv(name); v != "" {
		return v
	}
	return fallback
}
