package handlers

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"hardings-auto/go_backend/internal/app/http/middleware"
	"hardings-auto/go_backend/internal/domain/quote"
	"hardings-auto/go_backend/internal/domain/quote/share"
)

type shareRequest struct {
	Quote   json.RawMessage `json:"quote"`
	Channel string          `json:"channel"`
}

type shareResponse struct {
	share.Message
	Channel   share.Channel `json:"channel"`
	AppURL    string        `json:"appUrl"`
	WebURL    string        `json:"webUrl"`
	Delivered bool          `json:"delivered"`
	Error     string        `json:"error,omitempty"`
	Notice    string        `json:"notice,omitempty"`
}

// ShareQuote composes the share descriptor and, for delivering channels,
// renders the PDF and sends it. A failed delivery still returns the
// descriptor so the client can open a deep-link instead.
func (h *Handlers) ShareQuote(w http.ResponseWriter, r *http.Request) {
	var req shareRequest
	if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(&req); err != nil {
		http.Error(w, "bad request", http.StatusBadRequest)
		return
	}
	channel, err := share.ParseChannel(req.Channel)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	q, err := quote.ParsePayload(req.Quote, h.Builder)
	if err != nil {
		fail(w, r, err)
		return
	}

	msg := share.Compose(q, h.Business, h.Currency)
	resp := shareResponse{Message: msg, Channel: channel, AppURL: msg.AppURL(), WebURL: msg.WebURL()}
	if !channel.Delivers() {
		writeJSON(w, http.StatusOK, resp)
		return
	}

	_, data, err := h.Pipeline.Render(r.Context(), q)
	if err != nil {
		fail(w, r, err)
		return
	}
	reqID := middleware.RequestID(r.Context())
	if err := share.Deliver(r.Context(), h.Senders, channel, msg, data); err != nil {
		var tf *share.TransportFailure
		if !errors.As(err, &tf) {
			fail(w, r, err)
			return
		}
		log.Printf("share: delivery failed channel=%s number=%s req=%s err=%v", channel, q.Number, reqID, err)
		resp.Error = tf.Error()
		resp.Notice = "Could not send the quote automatically. Open the link to share it manually."
		writeJSON(w, http.StatusBadGateway, resp)
		return
	}
	log.Printf("share: delivered channel=%s number=%s req=%s", channel, q.Number, reqID)
	resp.Delivered = true
	writeJSON(w, http.StatusOK, resp)
}
