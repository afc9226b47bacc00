package catalog

import "strings"

type Service struct {
	Name                string `json:"name"`
	SupportsDescription bool   `json:"supportsDescription"`
}

// Services is the ordered list of offerable services. Order is the display
// order of the quote form.
type Services struct {
	list  []Service
	index map[string]int
}

func NewServices(list []Service) *Services {
	s := &Services{index: make(map[string]int, len(list))}
	for _, svc := range list {
		name := strings.TrimSpace(svc.Name)
		if name == "" {
			continue
		}
		if _, ok := s.index[name]; ok {
			continue
		}
		svc.Name = name
		s.index[name] = len(s.list)
		s.list = append(s.list, svc)
	}
	return s
}

func DefaultServices() *Services {
	return NewServices([]Service{
		{Name: "Full vehicle diagnostics & mechanical repairs"},
		{Name: "ECU / engine management upgrades & remapping"},
		{Name: "Suspension, exhaust & drivetrain work"},
		{Name: "Vehicle inspections & maintenance scheduling"},
		{Name: "Lexus V8 engine conversions", SupportsDescription: true},
		{Name: "Performance tuning & custom builds"},
		{Name: "Routine servicing (oil, filters, brakes)"},
		{Name: "Panel beating"},
		{Name: "Spray painting"},
	})
}

func (s *Services) All() []Service {
	out := make([]Service, len(s.list))
	copy(out, s.list)
	return out
}

func (s *Services) Names() []string {
	out := make([]string, 0, len(s.list))
	for _, svc := range s.list {
		out = append(out, svc.Name)
	}
	return out
}

func (s *Services) Lookup(name string) (Service, bool) {
	i, ok := s.index[strings.TrimSpace(name)]
	if !ok {
		return Service{}, false
	}
	return s.list[i], true
}

func (s *Services) Contains(name string) bool {
	_, ok := s.Lookup(name)
	return ok
}

// SupportsDescription reports whether the service takes a free-text
// description. Names outside the catalog never do.
func (s *Services) SupportsDescription(name string) bool {
	svc, ok := s.Lookup(name)
	return ok && svc.SupportsDescription
}

func (s *Services) Len() int { return len(s.list) }
