package quote

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

// Payload is the wire shape of a built quote, passed from quote creation to
// rendering and sharing.
type Payload struct {
	QuoteNumber  string        `json:"quoteNumber,omitempty"`
	IssuedAt     string        `json:"issuedAt,omitempty"`
	ClientName   string        `json:"clientName"`
	ClientPhone  string        `json:"clientPhone"`
	ClientEmail  string        `json:"clientEmail"`
	VehicleMake  string        `json:"vehicleMake"`
	VehicleModel string        `json:"vehicleModel"`
	VehicleYear  string        `json:"vehicleYear"`
	Services     []ServiceItem `json:"services"`
}

type ServiceItem struct {
	Name        string `json:"name"`
	Price       string `json:"price"`
	Description string `json:"description,omitempty"`
}

func (q Quote) Payload() Payload {
	p := Payload{
		QuoteNumber:  q.Number,
		ClientName:   q.Client.Name,
		ClientPhone:  q.Client.Phone,
		ClientEmail:  q.Client.Email,
		VehicleMake:  q.Vehicle.Make,
		VehicleModel: q.Vehicle.Model,
		VehicleYear:  q.Vehicle.Year,
		Services:     make([]ServiceItem, 0, len(q.Items)),
	}
	if !q.IssuedAt.IsZero() {
		p.IssuedAt = q.IssuedAt.Format(time.RFC3339Nano)
	}
	for _, it := range q.Items {
		p.Services = append(p.Services, ServiceItem{
			Name:        it.Name,
			Price:       it.UnitPrice.StringFixed(2),
			Description: it.Description,
		})
	}
	return p
}

// ParsePayload decodes raw into a Quote. Anything short of a complete quote
// yields a *MalformedPayloadError. A payload without number or issue time is
// numbered from b's clock.
func ParsePayload(raw []byte, b Builder) (Quote, error) {
	if len(strings.TrimSpace(string(raw))) == 0 {
		return Quote{}, malformed("empty payload")
	}
	var p Payload
	if err := json.Unmarshal(raw, &p); err != nil {
		return Quote{}, malformed(fmt.Sprintf("decode: %v", err))
	}
	return p.Quote(b)
}

func (p Payload) Quote(b Builder) (Quote, error) {
	required := []struct{ name, value string }{
		{"clientName", p.ClientName},
		{"clientPhone", p.ClientPhone},
		{"vehicleMake", p.VehicleMake},
		{"vehicleModel", p.VehicleModel},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return Quote{}, malformed("missing " + f.name)
		}
	}
	if len(p.Services) == 0 {
		return Quote{}, malformed("no services")
	}

	q := Quote{
		Number: strings.TrimSpace(p.QuoteNumber),
		Client: Client{
			Name:  p.ClientName,
			Phone: p.ClientPhone,
			Email: p.ClientEmail,
		},
		Vehicle: Vehicle{
			Make:  p.VehicleMake,
			Model: p.VehicleModel,
			Year:  strings.TrimSpace(p.VehicleYear),
		},
		Items: make([]LineItem, 0, len(p.Services)),
	}
	for i, s := range p.Services {
		if strings.TrimSpace(s.Name) == "" {
			return Quote{}, malformed(fmt.Sprintf("service %d has no name", i))
		}
		price, err := ParsePrice(s.Price)
		if err != nil || !price.IsPositive() {
			return Quote{}, malformed(fmt.Sprintf("service %q has invalid price %q", s.Name, s.Price))
		}
		q.Items = append(q.Items, LineItem{
			Name:        s.Name,
			UnitPrice:   price,
			Description: strings.TrimSpace(s.Description),
		})
	}

	if p.IssuedAt != "" {
		t, err := time.Parse(time.RFC3339Nano, p.IssuedAt)
		if err != nil {
			return Quote{}, malformed("invalid issuedAt")
		}
		q.IssuedAt = t
	}
	if q.Number == "" || q.IssuedAt.IsZero() {
		now := b.now()
		if q.Number == "" {
			q.Number = NumberAt(b.prefix(), now)
		}
		if q.IssuedAt.IsZero() {
			q.IssuedAt = now
		}
	}
	return q, nil
}
