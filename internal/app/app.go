package app

import (
	"context"
	"log"
	"net/http"
	"time"

	"hardings-auto/go_backend/internal/app/config"
	apphttp "hardings-auto/go_backend/internal/app/http"
	"hardings-auto/go_backend/internal/app/http/handlers"
	"hardings-auto/go_backend/internal/domain/catalog"
	"hardings-auto/go_backend/internal/domain/quote"
	"hardings-auto/go_backend/internal/domain/quote/document"
	"hardings-auto/go_backend/internal/domain/quote/logo"
	"hardings-auto/go_backend/internal/domain/quote/pdf"
	"hardings-auto/go_backend/internal/domain/quote/pdf/gofpdf"
	"hardings-auto/go_backend/internal/domain/quote/share"
	"hardings-auto/go_backend/internal/infra/db/postgres"
	"hardings-auto/go_backend/internal/infra/telegram"
	"hardings-auto/go_backend/internal/infra/twilio"
)

func Run() {
	cfg := config.MustLoad()

	services, vehicles := catalog.DefaultServices(), catalog.DefaultVehicles()
	if cfg.DatabaseURL != "" {
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		db, err := postgres.New(ctx, cfg.DatabaseURL)
		if err != nil {
			cancel()
			log.Fatalf("db: %v", err)
		}
		services, vehicles, err = db.LoadCatalog(ctx)
		cancel()
		db.Close()
		if err != nil {
			log.Fatalf("catalog: %v", err)
		}
	}

	h := handlers.New(services, vehicles, quote.Builder{Prefix: cfg.QuotePrefix}, pipeline(cfg), senders(cfg), brand(cfg).Name, cfg.CurrencySymbol)
	router := apphttp.NewRouter(cfg, h)

	srv := &http.Server{
		Addr:              cfg.HTTPAddr,
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	log.Printf("listening on %s", cfg.HTTPAddr)
	log.Fatal(srv.ListenAndServe())
}

func brand(cfg config.Config) document.Brand {
	b := document.DefaultBrand()
	if cfg.BusinessName != "" {
		b.Name = cfg.BusinessName
	}
	if cfg.BusinessTagline != "" {
		b.Tagline = cfg.BusinessTagline
	}
	if cfg.BusinessPhone != "" {
		b.Contact = "Phone: " + cfg.BusinessPhone + " | WhatsApp Available"
	}
	return b
}

func pipeline(cfg config.Config) *pdf.Pipeline {
	gen := gofpdf.New(gofpdf.Fonts{
		Regular: cfg.FontRegular,
		Bold:    cfg.FontBold,
		Italic:  cfg.FontItalic,
	})
	p := &pdf.Pipeline{
		Renderer:  document.NewRenderer(brand(cfg), cfg.CurrencySymbol, cfg.Location),
		Generator: gen,
	}
	if cfg.LogoURL != "" {
		p.Logo = logo.New(cfg.LogoURL, cfg.LogoTimeout)
	}
	return p
}

func senders(cfg config.Config) map[share.Channel]share.Sender {
	out := map[share.Channel]share.Sender{}
	if tg := telegram.New(cfg.TelegramBaseURL, cfg.TelegramBotToken, cfg.TelegramQuotesChatID); tg.Configured() {
		out[share.ChannelTelegram] = tg
	} else {
		log.Printf("share: telegram not configured")
	}
	if wa := twilio.NewWhatsApp(cfg.TwilioAccountSID, cfg.TwilioAuthToken, cfg.TwilioWhatsAppNumber); wa != nil {
		out[share.ChannelWhatsApp] = wa
	} else {
		log.Printf("share: whatsapp not configured")
	}
	return out
}
