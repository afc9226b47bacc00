package handlers

import (
	"fmt"
	"io"
	"log"
	"net/http"
	"strconv"

	"hardings-auto/go_backend/internal/app/http/middleware"
	"hardings-auto/go_backend/internal/domain/quote"
	"hardings-auto/go_backend/internal/domain/quote/share"
)

func readBody(w http.ResponseWriter, r *http.Request) ([]byte, bool) {
	raw, err := io.ReadAll(http.MaxBytesReader(w, r.Body, maxBodyBytes))
	if err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return nil, false
	}
	return raw, true
}

// QuotePDF renders a quote payload to a PDF download.
func (h *Handlers) QuotePDF(w http.ResponseWriter, r *http.Request) {
	raw, ok := readBody(w, r)
	if !ok {
		return
	}
	q, err := quote.ParsePayload(raw, h.Builder)
	if err != nil {
		fail(w, r, err)
		return
	}
	_, data, err := h.Pipeline.Render(r.Context(), q)
	if err != nil {
		fail(w, r, err)
		return
	}
	log.Printf("quote pdf: rendered number=%s bytes=%d req=%s", q.Number, len(data), middleware.RequestID(r.Context()))

	w.Header().Set("Content-Type", share.MimeTypePDF)
	w.Header().Set("Content-Disposition", fmt.Sprintf(`attachment; filename="%s"`, share.Filename(q.Number)))
	w.Header().Set("Content-Length", strconv.Itoa(len(data)))
	w.WriteHeader(http.StatusOK)
	w.Write(data)
}
