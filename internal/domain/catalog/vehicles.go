package catalog

import "strings"

type Make struct {
	Name   string   `json:"name"`
	Models []string `json:"models"`
}

// Vehicles maps a make to its known models. A make without models takes a
// free-text model on the quote form.
type Vehicles struct {
	makes []Make
	index map[string]int
}

func NewVehicles(makes []Make) *Vehicles {
	v := &Vehicles{index: make(map[string]int, len(makes))}
	for _, m := range makes {
		name := strings.TrimSpace(m.Name)
		if name == "" {
			continue
		}
		i, ok := v.index[name]
		if !ok {
			i = len(v.makes)
			v.index[name] = i
			v.makes = append(v.makes, Make{Name: name})
		}
		v.makes[i].Models = appendModels(v.makes[i].Models, m.Models)
	}
	return v
}

func appendModels(dst, src []string) []string {
	seen := make(map[string]bool, len(dst))
	for _, m := range dst {
		seen[m] = true
	}
	for _, m := range src {
		m = strings.TrimSpace(m)
		if m == "" || seen[m] {
			continue
		}
		seen[m] = true
		dst = append(dst, m)
	}
	return dst
}

func DefaultVehicles() *Vehicles {
	return NewVehicles([]Make{
		{Name: "Toyota", Models: []string{"Corolla", "Corolla Cross", "Hilux", "Fortuner", "Land Cruiser", "RAV4", "Yaris", "Quantum"}},
		{Name: "Lexus", Models: []string{"IS", "GS", "LS", "RX", "GX", "LX"}},
		{Name: "Volkswagen", Models: []string{"Polo", "Polo Vivo", "Golf", "Tiguan", "Amarok", "T-Cross"}},
		{Name: "Ford", Models: []string{"Ranger", "Everest", "Fiesta", "Focus", "EcoSport", "Mustang"}},
		{Name: "Nissan", Models: []string{"NP200", "Navara", "X-Trail", "Almera", "Patrol", "Qashqai"}},
		{Name: "Isuzu", Models: []string{"D-Max", "MU-X"}},
		{Name: "BMW", Models: []string{"1 Series", "3 Series", "5 Series", "X3", "X5", "M3"}},
		{Name: "Mercedes-Benz", Models: []string{"A-Class", "C-Class", "E-Class", "GLC", "Sprinter", "Vito"}},
		{Name: "Audi", Models: []string{"A3", "A4", "Q3", "Q5", "Q7"}},
		{Name: "Hyundai", Models: []string{"i20", "Tucson", "Creta", "H100"}},
		{Name: "Mazda", Models: []string{"Mazda2", "Mazda3", "CX-5", "BT-50"}},
		{Name: "Honda", Models: []string{"Jazz", "Civic", "CR-V", "Ballade"}},
		{Name: "Other"},
	})
}

func (v *Vehicles) All() []Make {
	out := make([]Make, 0, len(v.makes))
	for _, m := range v.makes {
		out = append(out, Make{Name: m.Name, Models: append([]string(nil), m.Models...)})
	}
	return out
}

func (v *Vehicles) Makes() []string {
	out := make([]string, 0, len(v.makes))
	for _, m := range v.makes {
		out = append(out, m.Name)
	}
	return out
}

// Models returns the catalog models of make, or nil when the make is unknown
// or has no models.
func (v *Vehicles) Models(make string) []string {
	i, ok := v.index[strings.TrimSpace(make)]
	if !ok || len(v.makes[i].Models) == 0 {
		return nil
	}
	return append([]string(nil), v.makes[i].Models...)
}

func (v *Vehicles) HasModels(make string) bool {
	return len(v.Models(make)) > 0
}

func (v *Vehicles) ContainsMake(make string) bool {
	_, ok := v.index[strings.TrimSpace(make)]
	return ok
}
