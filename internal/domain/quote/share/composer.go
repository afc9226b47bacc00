package share

import (
	"fmt"
	"net/url"
	"strings"

	"hardings-auto/go_backend/internal/domain/quote"
)

const MimeTypePDF = "application/pdf"

// Message is what a transport needs to deliver a rendered quote.
type Message struct {
	Filename             string `json:"filename"`
	MimeType             string `json:"mimeType"`
	Text                 string `json:"messageText"`
	RecipientPhoneDigits string `json:"recipientPhoneDigits"`
}

func Filename(number string) string { return "Quote_" + number + ".pdf" }

func Compose(q quote.Quote, business, currency string) Message {
	vehicle := q.Vehicle.Make + " " + q.Vehicle.Model
	if q.Vehicle.Year != "" {
		vehicle += " (" + q.Vehicle.Year + ")"
	}
	text := fmt.Sprintf("Hi %s, here's your quote from %s.\n\nQuote #%s\nVehicle: %s\nTotal: %s %s\n\nPlease find the detailed quote attached.",
		q.Client.Name, business, q.Number, vehicle, currency, q.Total().StringFixed(2))
	return Message{
		Filename:             Filename(q.Number),
		MimeType:             MimeTypePDF,
		Text:                 text,
		RecipientPhoneDigits: DigitsOnly(q.Client.Phone),
	}
}

func DigitsOnly(phone string) string {
	var b strings.Builder
	for _, r := range phone {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
	}
	return b.String()
}

// AppURL opens the WhatsApp app with the text pre-filled.
func (m Message) AppURL() string {
	return "whatsapp://send?phone=" + m.RecipientPhoneDigits + "&text=" + encodeComponent(m.Text)
}

// WebURL is the browser fallback when the app is not installed.
func (m Message) WebURL() string {
	return "https://wa.me/" + m.RecipientPhoneDigits + "?text=" + encodeComponent(m.Text)
}

var componentUnescape = strings.NewReplacer(
	"+", "%20",
	"%21", "!",
	"%27", "'",
	"%28", "(",
	"%29", ")",
	"%2A", "*",
)

// encodeComponent escapes s the way browsers' encodeURIComponent does.
func encodeComponent(s string) string {
	return componentUnescape.Replace(url.QueryEscape(s))
}
