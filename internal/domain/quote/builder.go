package quote

import (
	"fmt"
	"strings"
	"time"
)

const DefaultNumberPrefix = "HAG-"

// Builder turns validated drafts into quotes. The zero value uses
// DefaultNumberPrefix and the wall clock.
type Builder struct {
	Prefix string
	Now    func() time.Time
}

func (b Builder) now() time.Time {
	if b.Now != nil {
		return b.Now()
	}
	return time.Now()
}

func (b Builder) prefix() string {
	if b.Prefix != "" {
		return b.Prefix
	}
	return DefaultNumberPrefix
}

// NumberAt is prefix followed by the last 8 digits of t in Unix
// milliseconds. Two quotes built within the same millisecond share a number.
func NumberAt(prefix string, t time.Time) string {
	return fmt.Sprintf("%s%08d", prefix, t.UnixMilli()%100000000)
}

// Build copies d into a Quote. d must have passed Validate; Build does not
// check it again.
func (b Builder) Build(d *Draft) Quote {
	now := b.now()
	q := Quote{
		Number:   NumberAt(b.prefix(), now),
		IssuedAt: now,
		Client:   d.Client,
		Vehicle:  d.Vehicle,
		Items:    make([]LineItem, 0, len(d.selected)),
	}
	for _, name := range d.selected {
		price, _ := ParsePrice(d.prices[name])
		q.Items = append(q.Items, LineItem{
			Name:        name,
			UnitPrice:   price,
			Description: strings.TrimSpace(d.descriptions[name]),
		})
	}
	return q
}

// Submit validates d and builds the quote. The draft is left untouched on
// failure.
func (b Builder) Submit(d *Draft) (Quote, error) {
	if err := d.Validate(); err != nil {
		return Quote{}, err
	}
	return b.Build(d), nil
}
