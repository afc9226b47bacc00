package config

import (
	"testing"
	"time"
)

func TestMustLoadDefaults(t *testing.T) {
	t.Setenv("INTERNAL_TOKEN", "secret")
	t.Setenv("HTTP_ADDR", "")
	t.Setenv("CURRENCY_SYMBOL", "")
	t.Setenv("QUOTE_NUMBER_PREFIX", "")
	t.Setenv("LOGO_TIMEOUT_SECONDS", "")
	t.Setenv("QUOTE_TIMEZONE", "UTC")

	cfg := MustLoad()
	if cfg.HTTPAddr != ":8080" || cfg.InternalToken != "secret" || cfg.CurrencySymbol != "R" || cfg.QuotePrefix != "HAG-" {
		t.Fatalf("unexpected defaults %+v", cfg)
	}
	if cfg.LogoTimeout != 5*time.Second {
		t.Fatalf("LogoTimeout = %s", cfg.LogoTimeout)
	}
	if cfg.Location != time.UTC {
		t.Fatalf("Location = %s", cfg.Location)
	}
}

func TestEnvInt(t *testing.T) {
	t.Setenv("X_INT", "12")
	if got := envInt("X_INT", 5); got != 12 {
		t.Fatalf("envInt = %d", got)
	}
	t.Setenv("X_INT", "-3")
	if got := envInt("X_INT", 5); got != 5 {
		t.Fatalf("negative should fall back, got %d", got)
	}
	t.Setenv("X_INT", "abc")
	if got := envInt("X_INT", 5); got != 5 {
		t.Fatalf("garbage should fall back, got %d", got)
	}
}

func TestLocationFallback(t *testing.T) {
	if got := location("Mars/Olympus_Mons"); got != time.UTC {
		t.Fatalf("location = %s", got)
	}
}
