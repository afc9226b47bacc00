package quote

import "errors"

// ErrNoQuote is matched by every MalformedPayloadError.
var ErrNoQuote = errors.New("no quote available")

const (
	FieldClientName   = "client.name"
	FieldClientPhone  = "client.phone"
	FieldVehicleMake  = "vehicle.make"
	FieldVehicleModel = "vehicle.model"
	FieldServices     = "services"
	FieldServicePrice = "services.price"
)

// ValidationError is the first failing rule of a draft. Service is set only
// for price failures.
type ValidationError struct {
	Field   string
	Service string
	Message string
}

func (e *ValidationError) Error() string { return e.Message }

type MalformedPayloadError struct {
	Reason string
}

func (e *MalformedPayloadError) Error() string {
	if e.Reason == "" {
		return ErrNoQuote.Error()
	}
	return ErrNoQuote.Error() + ": " + e.Reason
}

func (e *MalformedPayloadError) Is(target error) bool { return target == ErrNoQuote }

func malformed(reason string) error { return &MalformedPayloadError{Reason: reason} }
