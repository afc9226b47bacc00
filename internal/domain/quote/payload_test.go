package quote

import (
	"encoding/json"
	"errors"
	"testing"
	"time"
)

func TestPayloadRoundTrip(t *testing.T) {
	t.Parallel()

	b := Builder{Now: fixedClock(time.Date(2026, 10, 17, 9, 30, 0, 0, time.UTC))}
	d := validDraft()
	d.SetClient(ClientPatch{Email: strp("jane@example.com")})
	d.SetVehicle(VehiclePatch{Year: strp("2018")})
	d.ToggleService("Lexus V8 engine conversions")
	d.SetServicePrice("Lexus V8 engine conversions", "1234.5")
	d.SetServiceDescription("Lexus V8 engine conversions", "Includes gearbox adapter")
	q, err := b.Submit(d)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}

	raw, err := json.Marshal(q.Payload())
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	got, err := ParsePayload(raw, Builder{})
	if err != nil {
		t.Fatalf("ParsePayload() error = %v", err)
	}

	if got.Number != q.Number || !got.IssuedAt.Equal(q.IssuedAt) {
		t.Fatalf("number/date mismatch: %s %s", got.Number, got.IssuedAt)
	}
	if got.Client != q.Client || got.Vehicle != q.Vehicle {
		t.Fatalf("client/vehicle mismatch: %+v %+v", got.Client, got.Vehicle)
	}
	if len(got.Items) != len(q.Items) {
		t.Fatalf("items mismatch: %d vs %d", len(got.Items), len(q.Items))
	}
	for i := range q.Items {
		if got.Items[i].Name != q.Items[i].Name ||
			got.Items[i].Description != q.Items[i].Description ||
			got.Items[i].UnitPrice.StringFixed(2) != q.Items[i].UnitPrice.StringFixed(2) {
			t.Fatalf("item %d mismatch: %+v vs %+v", i, got.Items[i], q.Items[i])
		}
	}
	if q.Payload().Services[1].Price != "1234.50" {
		t.Fatalf("price must be written with two decimals, got %q", q.Payload().Services[1].Price)
	}
}

func TestParsePayloadMalformed(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		raw  string
	}{
		{"empty", ""},
		{"blank", "   "},
		{"not json", "{quote"},
		{"wrong shape", `["a"]`},
		{"no services", `{"clientName":"A","clientPhone":"1","vehicleMake":"Toyota","vehicleModel":"Hilux","services":[]}`},
		{"missing phone", `{"clientName":"A","vehicleMake":"Toyota","vehicleModel":"Hilux","services":[{"name":"x","price":"1"}]}`},
		{"bad price", `{"clientName":"A","clientPhone":"1","vehicleMake":"Toyota","vehicleModel":"Hilux","services":[{"name":"x","price":"abc"}]}`},
		{"zero price", `{"clientName":"A","clientPhone":"1","vehicleMake":"Toyota","vehicleModel":"Hilux","services":[{"name":"x","price":"0"}]}`},
		{"unnamed service", `{"clientName":"A","clientPhone":"1","vehicleMake":"Toyota","vehicleModel":"Hilux","services":[{"name":" ","price":"5"}]}`},
		{"bad date", `{"issuedAt":"yesterday","clientName":"A","clientPhone":"1","vehicleMake":"Toyota","vehicleModel":"Hilux","services":[{"name":"x","price":"5"}]}`},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := ParsePayload([]byte(tt.raw), Builder{})
			var merr *MalformedPayloadError
			if !errors.As(err, &merr) {
				t.Fatalf("expected MalformedPayloadError, got %v", err)
			}
			if !errors.Is(err, ErrNoQuote) {
				t.Fatal("expected errors.Is(err, ErrNoQuote)")
			}
		})
	}
}

func TestParsePayloadAssignsNumber(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1760695212345)
	raw := `{"clientName":"A","clientPhone":"1","vehicleMake":"Toyota","vehicleModel":"Hilux","services":[{"name":"x","price":"5"}]}`
	q, err := ParsePayload([]byte(raw), Builder{Now: fixedClock(now)})
	if err != nil {
		t.Fatalf("ParsePayload() error = %v", err)
	}
	if q.Number != "HAG-95212345" || !q.IssuedAt.Equal(now) {
		t.Fatalf("unexpected number/date: %s %s", q.Number, q.IssuedAt)
	}
}
