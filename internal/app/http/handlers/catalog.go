package handlers

import (
	"net/http"
	"net/url"

	"github.com/go-chi/chi/v5"

	"hardings-auto/go_backend/internal/domain/catalog"
)

func (h *Handlers) ListServices(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]catalog.Service{"services": h.Services.All()})
}

func (h *Handlers) ListVehicles(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string][]catalog.Make{"makes": h.Vehicles.All()})
}

type modelsResponse struct {
	Make     string   `json:"make"`
	Models   []string `json:"models"`
	FreeText bool     `json:"freeText"`
}

// ListModels answers the dependent model picker. A make without catalog
// models takes a free-text model.
func (h *Handlers) ListModels(w http.ResponseWriter, r *http.Request) {
	name := chi.URLParam(r, "make")
	if v, err := url.PathUnescape(name); err == nil {
		name = v
	}
	if !h.Vehicles.ContainsMake(name) {
		http.Error(w, "unknown make", http.StatusNotFound)
		return
	}
	models := h.Vehicles.Models(name)
	if models == nil {
		models = []string{}
	}
	writeJSON(w, http.StatusOK, modelsResponse{Make: name, Models: models, FreeText: len(models) == 0})
}
