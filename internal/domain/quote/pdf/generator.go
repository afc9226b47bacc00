package pdf

import "hardings-auto/go_backend/internal/domain/quote/document"

// Generator turns a rendered quote document into PDF bytes.
type Generator interface {
	Generate(doc document.Document) ([]byte, error)
}
