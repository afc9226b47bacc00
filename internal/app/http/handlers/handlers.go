package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"hardings-auto/go_backend/internal/app/http/middleware"
	"hardings-auto/go_backend/internal/domain/catalog"
	"hardings-auto/go_backend/internal/domain/quote"
	"hardings-auto/go_backend/internal/domain/quote/pdf"
	"hardings-auto/go_backend/internal/domain/quote/share"
)

const maxBodyBytes = 1 << 20

type Handlers struct {
	Services *catalog.Services
	Vehicles *catalog.Vehicles
	Builder  quote.Builder
	Pipeline *pdf.Pipeline
	Senders  map[share.Channel]share.Sender
	Business string
	Currency string
}

func New(services *catalog.Services, vehicles *catalog.Vehicles, builder quote.Builder, pipeline *pdf.Pipeline, senders map[share.Channel]share.Sender, business, currency string) *Handlers {
	if services == nil {
		services = catalog.DefaultServices()
	}
	if vehicles == nil {
		vehicles = catalog.DefaultVehicles()
	}
	if senders == nil {
		senders = map[share.Channel]share.Sender{}
	}
	return &Handlers{
		Services: services,
		Vehicles: vehicles,
		Builder:  builder,
		Pipeline: pipeline,
		Senders:  senders,
		Business: business,
		Currency: currency,
	}
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

type fieldError struct {
	Field   string `json:"field"`
	Service string `json:"service,omitempty"`
	Message string `json:"message"`
}

// fail maps domain errors onto status codes.
func fail(w http.ResponseWriter, r *http.Request, err error) {
	var (
		ve *quote.ValidationError
		rf *pdf.RenderingFailure
	)
	switch {
	case errors.As(err, &ve):
		writeJSON(w, http.StatusUnprocessableEntity, map[string]interface{}{
			"error": fieldError{Field: ve.Field, Service: ve.Service, Message: ve.Message},
		})
	case errors.Is(err, quote.ErrNoQuote):
		log.Printf("quote: payload rejected req=%s err=%v", middleware.RequestID(r.Context()), err)
		writeJSON(w, http.StatusUnprocessableEntity, map[string]string{"error": quote.ErrNoQuote.Error()})
	case errors.As(err, &rf):
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": rf.Error()})
	default:
		log.Printf("quote: unexpected error req=%s err=%v", middleware.RequestID(r.Context()), err)
		writeJSON(w, http.StatusInternalServerError, map[string]string{"error": "internal error"})
	}
}
