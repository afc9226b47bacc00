package quote

import (
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/shopspring/decimal"
)

func fixedClock(t time.Time) func() time.Time {
	return func() time.Time { return t }
}

func TestNumberAt(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name string
		ms   int64
		want string
	}{
		{"thirteen digits", 1760695212345, "HAG-95212345"},
		{"leading zeros kept", 1700000001234, "HAG-00001234"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := NumberAt("HAG-", time.UnixMilli(tt.ms)); got != tt.want {
				t.Fatalf("NumberAt() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestBuilderBuild(t *testing.T) {
	t.Parallel()

	now := time.UnixMilli(1760695212345)
	b := Builder{Now: fixedClock(now)}

	d := validDraft()
	d.ToggleService("Lexus V8 engine conversions")
	d.SetServicePrice("Lexus V8 engine conversions", " 85000 ")
	d.SetServiceDescription("Lexus V8 engine conversions", "  Full 1UZ conversion  ")
	d.SetServicePrice("Panel beating", "300")

	q, err := b.Submit(d)
	if err != nil {
		t.Fatalf("Submit() error = %v", err)
	}
	if q.Number != "HAG-95212345" || !q.IssuedAt.Equal(now) {
		t.Fatalf("unexpected number/date: %s %s", q.Number, q.IssuedAt)
	}
	if len(q.Items) != 2 {
		t.Fatalf("expected 2 items, got %d", len(q.Items))
	}
	if q.Items[0].Name != "Routine servicing (oil, filters, brakes)" || !q.Items[0].UnitPrice.Equal(decimal.NewFromInt(450)) {
		t.Fatalf("unexpected first item: %+v", q.Items[0])
	}
	if q.Items[1].Description != "Full 1UZ conversion" {
		t.Fatalf("description not trimmed: %q", q.Items[1].Description)
	}
	if !q.Total().Equal(decimal.NewFromInt(85450)) {
		t.Fatalf("Total() = %s", q.Total())
	}

	d.SetClient(ClientPatch{Name: strp("Someone else")})
	d.SetServicePrice("Routine servicing (oil, filters, brakes)", "1")
	if q.Client.Name != "Jane Doe" || !q.Items[0].UnitPrice.Equal(decimal.NewFromInt(450)) {
		t.Fatal("quote must not follow later draft edits")
	}
}

func TestBuilderDefaultPrefix(t *testing.T) {
	t.Parallel()

	q := Builder{}.Build(validDraft())
	if len(q.Number) != len("HAG-")+8 || q.Number[:4] != "HAG-" {
		t.Fatalf("unexpected number %q", q.Number)
	}
	q = Builder{Prefix: "Q-"}.Build(validDraft())
	if q.Number[:2] != "Q-" {
		t.Fatalf("custom prefix ignored: %q", q.Number)
	}
}

func TestSubmitNeverBuildsInvalidQuotes(t *testing.T) {
	t.Parallel()

	prices := []string{"", "0", "-1", "x", "0.01", "12", "3,5"}
	b := Builder{Now: fixedClock(time.UnixMilli(1))}
	for i := 0; i < 1<<len(prices); i++ {
		d := NewDraft(nil)
		d.SetClient(ClientPatch{Name: strp("A"), Phone: strp("1")})
		d.SetVehicle(VehiclePatch{Make: strp("Other"), Model: strp("Kit car")})
		for j, p := range prices {
			if i&(1<<j) == 0 {
				continue
			}
			name := fmt.Sprintf("svc-%d", j)
			d.ToggleService(name)
			d.SetServicePrice(name, p)
		}
		q, err := b.Submit(d)
		if err != nil {
			var verr *ValidationError
			if !errors.As(err, &verr) {
				t.Fatalf("mask %b: unexpected error type %T", i, err)
			}
			continue
		}
		if len(q.Items) == 0 {
			t.Fatalf("mask %b: quote without items", i)
		}
		for _, it := range q.Items {
			if !it.UnitPrice.IsPositive() {
				t.Fatalf("mask %b: non-positive price %s", i, it.UnitPrice)
			}
		}
	}
}
