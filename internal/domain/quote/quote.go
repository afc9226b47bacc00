package quote

import (
	"time"

	"github.com/shopspring/decimal"
)

// Quote is the finalized record handed to rendering. Build a new one for any
// change; nothing mutates a Quote after Build.
type Quote struct {
	Number   string
	IssuedAt time.Time
	Client   Client
	Vehicle  Vehicle
	Items    []LineItem
}

type Client struct {
	Name  string
	Phone string
	Email string
}

type Vehicle struct {
	Make  string
	Model string
	Year  string
}

type LineItem struct {
	Name        string
	UnitPrice   decimal.Decimal
	Description string
}

// Total is always recomputed from the line items.
func (q Quote) Total() decimal.Decimal {
	total := decimal.Zero
	for _, it := range q.Items {
		total = total.Add(it.UnitPrice)
	}
	return total
}
