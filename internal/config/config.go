package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/joho/godotenv"
)

// Config aggregates runtime configuration for the API server and its
// external collaborators.
type Config struct {
	ListenAddr string
	LogLevel   string
	AppBaseURL string

	MySQLDSN string

	// Identity provider (Supabase-compatible).
	AuthBaseURL   string
	AuthAnonKey   string
	AuthJWTSecret string

	// Remote text-generation service.
	GeminiAPIKey    string
	GeminiBaseURL   string
	GeminiModel     string
	GenerateTimeout time.Duration

	// Razorpay checkout flow.
	RazorpayKeyID     string
	RazorpayKeySecret string
	RazorpayBaseURL   string

	// PayPal redirect/capture flow.
	PayPalClientID     string
	PayPalClientSecret string
	PayPalBaseURL      string

	// Defaults applied when lazily creating an entitlement row.
	FreeCredits int

	// Optional Telegram channel sharing.
	TelegramBotToken  string
	TelegramChannelID int64

	// Optional S3-compatible history export.
	S3Endpoint      string
	S3Region        string
	S3AccessKey     string
	S3SecretKey     string
	S3Bucket        string
	S3PublicBaseURL string
	S3UsePathStyle  bool
	S3Prefix        string

	AdminUsername string
	AdminPassword string
}

// Load reads configuration from environment variables, applying sane defaults.
func Load() (Config, error) {
	loadEnvFile()

	cfg := Config{
		ListenAddr: getEnv("LISTEN_ADDR", ":8080"),
		LogLevel:   getEnv("LOG_LEVEL", "info"),
		AppBaseURL: strings.TrimRight(getEnv("APP_BASE_URL", "http://localhost:3000"), "/"),

		MySQLDSN: os.Getenv("MYSQL_DSN"),

		AuthBaseURL:   strings.TrimRight(os.Getenv("AUTH_BASE_URL"), "/"),
		AuthAnonKey:   os.Getenv("AUTH_ANON_KEY"),
		AuthJWTSecret: os.Getenv("AUTH_JWT_SECRET"),

		GeminiAPIKey:    os.Getenv("GEMINI_API_KEY"),
		GeminiBaseURL:   strings.TrimRight(getEnv("GEMINI_BASE_URL", "https://generativelanguage.googleapis.com"), "/"),
		GeminiModel:     getEnv("GEMINI_MODEL", "gemini-1.5-flash"),
		GenerateTimeout: time.Second * time.Duration(getInt("GENERATE_TIMEOUT_SECONDS", 8)),

		RazorpayKeyID:     os.Getenv("RAZORPAY_KEY_ID"),
		RazorpayKeySecret: os.Getenv("RAZORPAY_KEY_SECRET"),
		RazorpayBaseURL:   strings.TrimRight(getEnv("RAZORPAY_BASE_URL", "https://api.razorpay.com"), "/"),

		PayPalClientID:     os.Getenv("PAYPAL_CLIENT_ID"),
		PayPalClientSecret: os.Getenv("PAYPAL_CLIENT_SECRET"),
		PayPalBaseURL:      strings.TrimRight(getEnv("PAYPAL_API_URL", "https://api-m.sandbox.paypal.com"), "/"),

		FreeCredits: getInt("FREE_CREDITS", 2),

		TelegramBotToken:  os.Getenv("TELEGRAM_BOT_TOKEN"),
		TelegramChannelID: getInt64("TELEGRAM_CHANNEL_ID", 0),

		S3Endpoint:      os.Getenv("S3_ENDPOINT"),
		S3Region:        os.Getenv("S3_REGION"),
		S3AccessKey:     os.Getenv("S3_ACCESS_KEY"),
		S3SecretKey:     os.Getenv("S3_SECRET_KEY"),
		S3Bucket:        os.Getenv("S3_BUCKET"),
		S3PublicBaseURL: os.Getenv("S3_PUBLIC_BASE_URL"),
		S3UsePathStyle:  getBool("S3_USE_PATH_STYLE", false),
		S3Prefix:        getEnv("S3_PREFIX", "exports"),

		AdminUsername: getEnv("ADMIN_USERNAME", "admin"),
		AdminPassword: getEnv("ADMIN_PASSWORD", "change-me"),
	}

	var missing []string
	if cfg.MySQLDSN == "" {
		missing = append(missing, "MYSQL_DSN")
	}
	if cfg.AuthBaseURL == "" {
		missing = append(missing, "AUTH_BASE_URL")
	}
	if cfg.AuthAnonKey == "" {
		missing = append(missing, "AUTH_ANON_KEY")
	}
	if cfg.AuthJWTSecret == "" {
		missing = append(missing, "AUTH_JWT_SECRET")
	}
	if cfg.GeminiAPIKey == "" {
		missing = append(missing, "GEMINI_API_KEY")
	}
	if cfg.RazorpayKeyID == "" {
		missing = append(missing, "RAZORPAY_KEY_ID")
	}
	if cfg.RazorpayKeySecret == "" {
		missing = append(missing, "RAZORPAY_KEY_SECRET")
	}
	if cfg.PayPalClientID == "" {
		missing = append(missing, "PAYPAL_CLIENT_ID")
	}
	if cfg.PayPalClientSecret == "" {
		missing = append(missing, "PAYPAL_CLIENT_SECRET")
	}
	if len(missing) > 0 {
		return Config{}, fmt.Errorf("missing required environment variables: %v", missing)
	}

	return cfg, nil
}

// TelegramEnabled reports whether channel sharing is configured.
func (c Config) TelegramEnabled() bool {
	return c.TelegramBotToken != "" && c.TelegramChannelID != 0
}

// S3Enabled reports whether history export is configured.
func (c Config) S3Enabled() bool {
	return c.S3Bucket != "" && c.S3Region != "" && c.S3AccessKey != "" &&
		c.S3SecretKey != "" && c.S3PublicBaseURL != ""
}

func getEnv(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func getInt(key string, fallback int) int {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.Atoi(v)
	if err != nil {
		return fallback
	}
	return i
}

func getInt64(key string, fallback int64) int64 {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	i, err := strconv.ParseInt(v, 10, 64)
	if err != nil {
		return fallback
	}
	return i
}

func getBool(key string, fallback bool) bool {
	v := os.Getenv(key)
	if v == "" {
		return fallback
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return fallback
	}
	return b
}

func loadEnvFile() {
	candidates := []string{}
	if custom, ok := os.LookupEnv("CONFIG_ENV_PATH"); ok && custom != "" {
		candidates = append(candidates, custom)
	}
	candidates = append(candidates, filepath.Join("configs", ".env"), ".env")

	for _, path := range candidates {
		info, err := os.Stat(path)
		if err != nil {
			if errors.Is(err, os.ErrNotExist) {
				continue
			}
			continue
		}
		if info.IsDir() {
			continue
		}
		if err := godotenv.Overload(path); err == nil {
			return
		}
	}
}
