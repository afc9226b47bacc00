package twilio

import (
	"context"
	"errors"
	"log"
	"strings"

	"github.com/twilio/twilio-go"
	twilioApi "github.com/twilio/twilio-go/rest/api/v2010"

	"hardings-auto/go_backend/internal/domain/quote/share"
)

// DefaultCountryCode replaces the trunk "0" of local numbers.
const DefaultCountryCode = "27"

type messageCreator interface {
	CreateMessage(params *twilioApi.CreateMessageParams) (*twilioApi.ApiV2010Message, error)
}

// WhatsApp delivers the share text to the client's WhatsApp number. The PDF
// itself stays with the caller; Twilio only accepts media by public URL.
type WhatsApp struct {
	api         messageCreator
	from        string
	CountryCode string
}

func NewWhatsApp(accountSID, authToken, fromNumber string) *WhatsApp {
	if accountSID == "" || authToken == "" || fromNumber == "" {
		return nil
	}
	client := twilio.NewRestClientWithParams(twilio.ClientParams{
		Username: accountSID,
		Password: authToken,
	})
	return &WhatsApp{api: client.Api, from: fromNumber, CountryCode: DefaultCountryCode}
}

func (w *WhatsApp) Send(ctx context.Context, msg share.Message, _ []byte) error {
	if w == nil || w.api == nil {
		return share.ErrNotConfigured
	}
	if err := ctx.Err(); err != nil {
		return err
	}
	params, err := w.params(msg)
	if err != nil {
		return err
	}
	resp, err := w.api.CreateMessage(params)
	if err != nil {
		log.Printf("twilio: whatsapp send failed to=%s err=%v", *params.To, err)
		return err
	}
	sid := ""
	if resp != nil && resp.Sid != nil {
		sid = *resp.Sid
	}
	log.Printf("twilio: whatsapp sent to=%s file=%s sid=%s", *params.To, msg.Filename, sid)
	return nil
}

func (w *WhatsApp) params(msg share.Message) (*twilioApi.CreateMessageParams, error) {
	to := recipient(msg.RecipientPhoneDigits, w.CountryCode)
	if to == "" {
		return nil, errors.New("client phone has no digits")
	}
	params := &twilioApi.CreateMessageParams{}
	params.SetTo(to)
	params.SetFrom("whatsapp:" + withPlus(w.from))
	params.SetBody(msg.Text)
	return params, nil
}

func recipient(digits, countryCode string) string {
	digits = share.DigitsOnly(digits)
	if digits == "" {
		return ""
	}
	if countryCode != "" && strings.HasPrefix(digits, "0") {
		digits = countryCode + strings.TrimLeft(digits, "0")
	}
	return "whatsapp:+" + digits
}

func withPlus(number string) string {
	number = strings.TrimSpace(strings.TrimPrefix(strings.TrimSpace(number), "whatsapp:"))
	if strings.HasPrefix(number, "+") {
		return number
	}
	return "+" + number
}
