package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"
	"strings"

	"hardings-auto/go_backend/internal/app/http/middleware"
	"hardings-auto/go_backend/internal/domain/quote"
)

// QuoteForm is the quote screen's state. Services are listed in selection
// order.
type QuoteForm struct {
	Client struct {
		Name  string `json:"name"`
		Phone string `json:"phone"`
		Email string `json:"email"`
	} `json:"client"`
	Vehicle struct {
		Make  string `json:"make"`
		Model string `json:"model"`
		Year  string `json:"year"`
	} `json:"vehicle"`
	Services []struct {
		Name        string `json:"name"`
		Price       string `json:"price"`
		Description string `json:"description"`
	} `json:"services"`
}

// draft replays the form onto a fresh draft the way the screen would.
// Service names are free text; repeated names are taken once.
func (h *Handlers) draft(f QuoteForm) *quote.Draft {
	d := quote.NewDraft(h.Services)
	d.SetClient(quote.ClientPatch{Name: &f.Client.Name, Phone: &f.Client.Phone, Email: &f.Client.Email})
	d.SetVehicle(quote.VehiclePatch{Make: &f.Vehicle.Make, Model: &f.Vehicle.Model, Year: &f.Vehicle.Year})
	for _, s := range f.Services {
		name := strings.TrimSpace(s.Name)
		if name == "" || d.IsSelected(name) {
			continue
		}
		d.ToggleService(name)
		d.SetServicePrice(name, s.Price)
		if s.Description != "" {
			d.SetServiceDescription(name, s.Description)
		}
	}
	return d
}

func decodeForm(w http.ResponseWriter, r *http.Request) (QuoteForm, bool) {
	var f QuoteForm
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&f); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return f, false
	}
	return f, true
}

type checkResponse struct {
	Total string      `json:"total"`
	Valid bool        `json:"valid"`
	Error *fieldError `json:"error,omitempty"`
}

// CheckQuote returns the running total and the first validation problem.
func (h *Handlers) CheckQuote(w http.ResponseWriter, r *http.Request) {
	f, ok := decodeForm(w, r)
	if !ok {
		return
	}
	d := h.draft(f)
	err := d.Validate()
	resp := checkResponse{Valid: err == nil, Total: d.Total().StringFixed(2)}
	var ve *quote.ValidationError
	if errors.As(err, &ve) {
		resp.Error = &fieldError{Field: ve.Field, Service: ve.Service, Message: ve.Message}
	}
	writeJSON(w, http.StatusOK, resp)
}

type createResponse struct {
	Quote quote.Payload `json:"quote"`
	Total string        `json:"total"`
}

func (h *Handlers) CreateQuote(w http.ResponseWriter, r *http.Request) {
	f, ok := decodeForm(w, r)
	if !ok {
		return
	}
	q, err := h.Builder.Submit(h.draft(f))
	if err != nil {
		fail(w, r, err)
		return
	}
	log.Printf("quote: created number=%s items=%d total=%s req=%s", q.Number, len(q.Items), q.Total().StringFixed(2), middleware.RequestID(r.Context()))
	writeJSON(w, http.StatusCreated, createResponse{Quote: q.Payload(), Total: q.Total().StringFixed(2)})
}
