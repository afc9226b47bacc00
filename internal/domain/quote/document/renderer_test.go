package document

import (
	"strings"
	"testing"
	"time"

	"github.com/shopspring/decimal"

	"hardings-auto/go_backend/internal/domain/quote"
)

func sampleQuote() quote.Quote {
	return quote.Quote{
		Number:   "HAG-95212345",
		IssuedAt: time.Date(2026, 10, 16, 23, 30, 0, 0, time.UTC),
		Client:   quote.Client{Name: "Jane Doe", Phone: "0821234567"},
		Vehicle:  quote.Vehicle{Make: "Toyota", Model: "Corolla"},
		Items: []quote.LineItem{
			{Name: "Routine servicing (oil, filters, brakes)", UnitPrice: decimal.RequireFromString("450")},
			{Name: "Lexus V8 engine conversions", UnitPrice: decimal.RequireFromString("85000.005"), Description: "1UZ swap"},
			{Name: "Panel beating", UnitPrice: decimal.RequireFromString("0.1")},
		},
	}
}

func TestRenderSectionOrder(t *testing.T) {
	t.Parallel()

	doc := NewRenderer(DefaultBrand(), "", nil).Render(sampleQuote(), nil)
	want := []SectionKind{SectionHeader, SectionMeta, SectionClient, SectionVehicle, SectionServices, SectionTotal, SectionFooter}
	if len(doc.Sections) != len(want) {
		t.Fatalf("expected %d sections, got %d", len(want), len(doc.Sections))
	}
	for i, k := range want {
		if doc.Sections[i].Kind != k {
			t.Fatalf("section %d = %s, want %s", i, doc.Sections[i].Kind, k)
		}
	}
	if doc.Title != "Quote HAG-95212345" {
		t.Fatalf("unexpected title %q", doc.Title)
	}
}

func TestRenderServicesTable(t *testing.T) {
	t.Parallel()

	doc := NewRenderer(DefaultBrand(), "R", time.UTC).Render(sampleQuote(), nil)
	s, ok := doc.Section(SectionServices)
	if !ok || s.Table == nil {
		t.Fatal("missing services table")
	}
	if len(s.Table.Columns) != 2 || s.Table.Columns[0] != "Service Description" || s.Table.Columns[1] != "Amount" {
		t.Fatalf("unexpected columns %v", s.Table.Columns)
	}
	tests := []struct {
		amount string
		detail string
		shaded bool
	}{
		{"R 450.00", "", true},
		{"R 85000.01", "1UZ swap", false},
		{"R 0.10", "", true},
	}
	for i, tt := range tests {
		row := s.Table.Rows[i]
		if row.Amount != tt.amount || row.Detail != tt.detail || row.Shaded != tt.shaded {
			t.Errorf("row %d = %+v, want amount=%s detail=%q shaded=%v", i, row, tt.amount, tt.detail, tt.shaded)
		}
	}
}

func TestRenderTotalMatchesLineItems(t *testing.T) {
	t.Parallel()

	q := sampleQuote()
	doc := NewRenderer(DefaultBrand(), "R", nil).Render(q, nil)
	s, _ := doc.Section(SectionTotal)
	if len(s.Fields) != 1 || s.Fields[0].Label != "Total Amount" {
		t.Fatalf("unexpected total section %+v", s)
	}
	sum := decimal.Zero
	for _, it := range q.Items {
		sum = sum.Add(it.UnitPrice)
	}
	if want := "R " + sum.StringFixed(2); s.Fields[0].Value != want {
		t.Fatalf("total = %q, want %q", s.Fields[0].Value, want)
	}
	if s.Fields[0].Value != "R 85450.11" {
		t.Fatalf("total = %q", s.Fields[0].Value)
	}
}

func TestRenderDateUsesLocation(t *testing.T) {
	t.Parallel()

	sast := time.FixedZone("SAST", 2*60*60)
	doc := NewRenderer(DefaultBrand(), "R", sast).Render(sampleQuote(), nil)
	meta, _ := doc.Section(SectionMeta)
	if meta.Fields[1].Value != "17 October 2026" {
		t.Fatalf("date = %q", meta.Fields[1].Value)
	}
}

func TestRenderOptionalFields(t *testing.T) {
	t.Parallel()

	q := sampleQuote()
	r := NewRenderer(DefaultBrand(), "R", nil)

	client, _ := r.Render(q, nil).Section(SectionClient)
	if len(client.Fields) != 2 {
		t.Fatalf("email must be omitted when empty: %+v", client.Fields)
	}
	q.Client.Email = "jane@example.com"
	q.Vehicle.Year = "2015"
	doc := r.Render(q, nil)
	client, _ = doc.Section(SectionClient)
	vehicle, _ := doc.Section(SectionVehicle)
	if client.Fields[2].Value != "jane@example.com" || vehicle.Fields[2].Value != "2015" {
		t.Fatalf("optional fields missing: %+v %+v", client.Fields, vehicle.Fields)
	}
}

func TestRenderHeaderAndFooter(t *testing.T) {
	t.Parallel()

	r := NewRenderer(DefaultBrand(), "R", nil)
	doc := r.Render(sampleQuote(), nil)
	header, _ := doc.Section(SectionHeader)
	if header.Logo != nil || header.Title != "HARDINGS AUTO GARAGE" {
		t.Fatalf("unexpected text header %+v", header)
	}
	footer, _ := doc.Section(SectionFooter)
	if len(footer.Notes) != 2 || !strings.Contains(footer.Notes[0], "30 days") {
		t.Fatalf("unexpected footer notes %v", footer.Notes)
	}

	logo := &Image{Data: []byte{1, 2, 3}, MimeType: "image/png"}
	header, _ = r.Render(sampleQuote(), logo).Section(SectionHeader)
	if header.Logo != logo {
		t.Fatal("logo not attached to header")
	}
	if got := logo.DataURI(); got != "data:image/png;base64,AQID" {
		t.Fatalf("DataURI() = %q", got)
	}
}

func TestFormatMoney(t *testing.T) {
	t.Parallel()

	tests := []struct{ in, want string }{
		{"0", "R 0.00"},
		{"1.005", "R 1.01"},
		{"2.345", "R 2.35"},
		{"1234567.1", "R 1234567.10"},
	}
	for _, tt := range tests {
		if got := FormatMoney("R", decimal.RequireFromString(tt.in)); got != tt.want {
			t.Errorf("FormatMoney(%s) = %q, want %q", tt.in, got, tt.want)
		}
	}
}
