package document

import (
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"hardings-auto/go_backend/internal/domain/quote"
)

const (
	DefaultCurrency = "R"
	DateLayout      = "2 January 2006"
)

type Brand struct {
	Name    string
	Tagline string
	Contact string
	About   []string
	Notes   []string
}

func DefaultBrand() Brand {
	return Brand{
		Name:    "Hardings Auto Garage",
		Tagline: "Swartruggens' Trusted Destination for Expert Mechanical Work",
		Contact: "Phone: +27 76 268 3721 | WhatsApp Available",
		About: []string{
			"Expert mechanical work, performance upgrades, and reliable servicing",
			"From routine maintenance to full Lexus V8 engine conversions",
		},
		Notes: []string{
			"This quote is valid for 30 days from the date of issue.",
			"All prices are in South African Rand (ZAR) and include VAT where applicable.",
		},
	}
}

type Renderer struct {
	Brand    Brand
	Currency string
	Location *time.Location
}

func NewRenderer(brand Brand, currency string, loc *time.Location) *Renderer {
	if currency == "" {
		currency = DefaultCurrency
	}
	if loc == nil {
		loc = time.UTC
	}
	return &Renderer{Brand: brand, Currency: currency, Location: loc}
}

// FormatMoney prints amount with exactly two decimals, rounding half away
// from zero.
func FormatMoney(currency string, amount decimal.Decimal) string {
	return currency + " " + amount.StringFixed(2)
}

// Render lays out q. logo may be nil, in which case the header is text only.
func (r *Renderer) Render(q quote.Quote, logo *Image) Document {
	doc := Document{Title: "Quote " + q.Number}
	doc.Sections = append(doc.Sections,
		r.header(logo),
		Section{
			Kind: SectionMeta,
			Fields: []Field{
				{Label: "Quote Number", Value: q.Number},
				{Label: "Date", Value: r.date(q.IssuedAt)},
			},
		},
		clientSection(q.Client),
		vehicleSection(q.Vehicle),
		r.servicesSection(q.Items),
		Section{
			Kind:   SectionTotal,
			Fields: []Field{{Label: "Total Amount", Value: FormatMoney(r.Currency, q.Total())}},
		},
		Section{
			Kind:  SectionFooter,
			Title: r.Brand.Name,
			Lines: append([]string(nil), r.Brand.About...),
			Notes: append([]string(nil), r.Brand.Notes...),
		},
	)
	return doc
}

func (r *Renderer) header(logo *Image) Section {
	s := Section{Kind: SectionHeader, Title: strings.ToUpper(r.Brand.Name), Logo: logo}
	for _, l := range []string{r.Brand.Tagline, r.Brand.Contact} {
		if l != "" {
			s.Lines = append(s.Lines, l)
		}
	}
	return s
}

func (r *Renderer) date(t time.Time) string {
	if r.Location != nil {
		t = t.In(r.Location)
	}
	return t.Format(DateLayout)
}

func clientSection(c quote.Client) Section {
	s := Section{
		Kind:  SectionClient,
		Title: "Client Information",
		Fields: []Field{
			{Label: "Name", Value: c.Name},
			{Label: "Phone", Value: c.Phone},
		},
	}
	if c.Email != "" {
		s.Fields = append(s.Fields, Field{Label: "Email", Value: c.Email})
	}
	return s
}

func vehicleSection(v quote.Vehicle) Section {
	s := Section{
		Kind:  SectionVehicle,
		Title: "Vehicle Information",
		Fields: []Field{
			{Label: "Make", Value: v.Make},
			{Label: "Model", Value: v.Model},
		},
	}
	if v.Year != "" {
		s.Fields = append(s.Fields, Field{Label: "Year", Value: v.Year})
	}
	return s
}

func (r *Renderer) servicesSection(items []quote.LineItem) Section {
	t := &Table{
		Columns: []string{"Service Description", "Amount"},
		Rows:    make([]Row, 0, len(items)),
	}
	for i, it := range items {
		t.Rows = append(t.Rows, Row{
			Description: it.Name,
			Detail:      it.Description,
			Amount:      FormatMoney(r.Currency, it.UnitPrice),
			Shaded:      i%2 == 0,
		})
	}
	return Section{Kind: SectionServices, Title: "Services Quoted", Table: t}
}
