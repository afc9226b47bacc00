package config

import (
	"errors"
	"io/fs"
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	HTTPAddr        string
	InternalToken   string
	CORSAllowOrigin string
	DatabaseURL     string

	LogoURL     string
	LogoTimeout time.Duration

	BusinessName    string
	BusinessTagline string
	BusinessPhone   string
	CurrencySymbol  string
	QuotePrefix     string
	Location        *time.Location

	FontRegular string
	FontBold    string
	FontItalic  string

	TelegramBotToken     string
	TelegramBaseURL      string
	TelegramQuotesChatID string

	TwilioAccountSID     string
	TwilioAuthToken      string
	TwilioWhatsAppNumber string
}

func MustLoad() Config {
	if err := godotenv.Load(); err != nil && !errors.Is(err, fs.ErrNotExist) {
		log.Printf("config: .env not loaded: %v", err)
	}
	return Config{
		HTTPAddr:        env("HTTP_ADDR", ":8080"),
		InternalToken:   mustEnv("INTERNAL_TOKEN"),
		CORSAllowOrigin: env("CORS_ALLOW_ORIGIN", "*"),
		DatabaseURL:     env("DATABASE_URL", ""),

		LogoURL:     env("LOGO_URL", ""),
		LogoTimeout: time.Duration(envInt("LOGO_TIMEOUT_SECONDS", 5)) * time.Second,

		BusinessName:    env("BUSINESS_NAME", "Hardings Auto Garage"),
		BusinessTagline: env("BUSINESS_TAGLINE", ""),
		BusinessPhone:   env("BUSINESS_PHONE", ""),
		CurrencySymbol:  env("CURRENCY_SYMBOL", "R"),
		QuotePrefix:     env("QUOTE_NUMBER_PREFIX", "HAG-"),
		Location:        location(env("QUOTE_TIMEZONE", "Africa/Johannesburg")),

		FontRegular: env("PDF_FONT_REGULAR", ""),
		FontBold:    env("PDF_FONT_BOLD", ""),
		FontItalic:  env("PDF_FONT_ITALIC", ""),

		TelegramBotToken:     env("TELEGRAM_BOT_TOKEN", ""),
		TelegramBaseURL:      env("TELEGRAM_BASE_URL", "https://api.telegram.org"),
		TelegramQuotesChatID: env("TELEGRAM_QUOTES_CHAT_ID", ""),

		TwilioAccountSID:     env("TWILIO_ACCOUNT_SID", ""),
		TwilioAuthToken:      env("TWILIO_AUTH_TOKEN", ""),
		TwilioWhatsAppNumber: env("TWILIO_WHATSAPP_NUMBER", ""),
	}
}

func env(k, def string) string {
	if v := os.Getenv(k); v != "" {
		return v
	}
	return def
}

func envInt(k string, def int) int {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil || n <= 0 {
		log.Printf("config: invalid %s=%q, using %d", k, v, def)
		return def
	}
	return n
}

func mustEnv(k string) string {
	v := os.Getenv(k)
	if v == "" {
		log.Fatalf("missing env %s", k)
	}
	return v
}

// location falls back to UTC when the tz database lacks name.
func location(name string) *time.Location {
	loc, err := time.LoadLocation(name)
	if err != nil {
		log.Printf("config: unknown QUOTE_TIMEZONE=%q, using UTC: %v", name, err)
		return time.UTC
	}
	return loc
}
