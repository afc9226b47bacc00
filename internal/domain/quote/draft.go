package quote

import (
	"strings"

	"github.com/shopspring/decimal"

	"hardings-auto/go_backend/internal/domain/catalog"
)

const maxYearDigits = 4

// Draft is the editable quote form of a single screen. It is not safe for
// concurrent use; one flow owns it until it is submitted or dropped.
type Draft struct {
	Client  Client
	Vehicle Vehicle

	services     *catalog.Services
	selected     []string
	prices       map[string]string
	descriptions map[string]string
}

type ClientPatch struct {
	Name  *string
	Phone *string
	Email *string
}

type VehiclePatch struct {
	Make  *string
	Model *string
	Year  *string
}

// NewDraft returns an empty draft. services decides which lines accept a
// description; nil accepts descriptions for every line.
func NewDraft(services *catalog.Services) *Draft {
	return &Draft{
		services:     services,
		prices:       map[string]string{},
		descriptions: map[string]string{},
	}
}

func (d *Draft) SetClient(p ClientPatch) {
	if p.Name != nil {
		d.Client.Name = *p.Name
	}
	if p.Phone != nil {
		d.Client.Phone = *p.Phone
	}
	if p.Email != nil {
		d.Client.Email = *p.Email
	}
}

// SetVehicle applies p. A make different from the current one clears the
// model before p.Model is applied.
func (d *Draft) SetVehicle(p VehiclePatch) {
	if p.Make != nil && *p.Make != d.Vehicle.Make {
		d.Vehicle.Make = *p.Make
		d.Vehicle.Model = ""
	}
	if p.Model != nil {
		d.Vehicle.Model = *p.Model
	}
	if p.Year != nil {
		d.Vehicle.Year = maskYear(*p.Year)
	}
}

func maskYear(raw string) string {
	var b strings.Builder
	for _, r := range raw {
		if r < '0' || r > '9' {
			continue
		}
		if b.Len() == maxYearDigits {
			break
		}
		b.WriteRune(r)
	}
	return b.String()
}

// ToggleService selects name with no price, or deselects it. Either way the
// price and description of name are forgotten. It reports whether name is
// selected afterwards.
func (d *Draft) ToggleService(name string) bool {
	for i, s := range d.selected {
		if s == name {
			d.selected = append(d.selected[:i], d.selected[i+1:]...)
			delete(d.prices, name)
			delete(d.descriptions, name)
			return false
		}
	}
	delete(d.prices, name)
	delete(d.descriptions, name)
	d.selected = append(d.selected, name)
	return true
}

func (d *Draft) SetServicePrice(name, raw string) {
	d.prices[name] = raw
}

func (d *Draft) SetServiceDescription(name, text string) {
	if d.services != nil && !d.services.SupportsDescription(name) {
		return
	}
	d.descriptions[name] = text
}

func (d *Draft) IsSelected(name string) bool {
	for _, s := range d.selected {
		if s == name {
			return true
		}
	}
	return false
}

// Selected returns the selected services in selection order.
func (d *Draft) Selected() []string {
	return append([]string(nil), d.selected...)
}

func (d *Draft) ServicePrice(name string) string { return d.prices[name] }

func (d *Draft) ServiceDescription(name string) string { return d.descriptions[name] }

// Total is the running total of the selected services. Prices that do not
// parse count as zero.
func (d *Draft) Total() decimal.Decimal {
	total := decimal.Zero
	for _, name := range d.selected {
		if p, err := ParsePrice(d.prices[name]); err == nil {
			total = total.Add(p)
		}
	}
	return total
}

// Validate reports the first failing rule, in form order.
func (d *Draft) Validate() error {
	switch {
	case strings.TrimSpace(d.Client.Name) == "":
		return &ValidationError{Field: FieldClientName, Message: "Please enter client name"}
	case strings.TrimSpace(d.Client.Phone) == "":
		return &ValidationError{Field: FieldClientPhone, Message: "Please enter client phone number"}
	case strings.TrimSpace(d.Vehicle.Make) == "":
		return &ValidationError{Field: FieldVehicleMake, Message: "Please select vehicle make"}
	case strings.TrimSpace(d.Vehicle.Model) == "":
		return &ValidationError{Field: FieldVehicleModel, Message: "Please select vehicle model"}
	case len(d.selected) == 0:
		return &ValidationError{Field: FieldServices, Message: "Please select at least one service"}
	}
	for _, name := range d.selected {
		p, err := ParsePrice(d.prices[name])
		if err != nil || !p.IsPositive() {
			return &ValidationError{
				Field:   FieldServicePrice,
				Service: name,
				Message: "Please enter a valid price for " + name,
			}
		}
	}
	return nil
}

// ParsePrice reads a price as typed on the form. A comma is accepted as the
// decimal separator. The whole trimmed input must be a number, so trailing
// text and digit grouping are rejected.
func ParsePrice(raw string) (decimal.Decimal, error) {
	s := strings.ReplaceAll(strings.TrimSpace(raw), ",", ".")
	return decimal.NewFromString(s)
}
