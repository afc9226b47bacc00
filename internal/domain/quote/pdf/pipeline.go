package pdf

import (
	"context"
	"errors"
	"log"

	"hardings-auto/go_backend/internal/domain/quote"
	"hardings-auto/go_backend/internal/domain/quote/document"
	"hardings-auto/go_backend/internal/domain/quote/logo"
)

// RenderingFailure is returned when the PDF backend cannot produce a file.
type RenderingFailure struct {
	Stage string
	Err   error
}

func (e *RenderingFailure) Error() string { return "render " + e.Stage + ": " + e.Err.Error() }
func (e *RenderingFailure) Unwrap() error { return e.Err }

type LogoSource interface {
	Fetch(ctx context.Context) (*document.Image, error)
}

// Pipeline runs quote -> logo -> document -> PDF bytes.
type Pipeline struct {
	Renderer  *document.Renderer
	Generator Generator
	Logo      LogoSource
}

func (p *Pipeline) Render(ctx context.Context, q quote.Quote) (document.Document, []byte, error) {
	var img *document.Image
	if p.Logo != nil {
		var err error
		img, err = p.Logo.Fetch(ctx)
		if err != nil {
			img = nil
			if !errors.Is(err, logo.ErrNoLogo) {
				log.Printf("quote render: logo unavailable quote=%s err=%v", q.Number, err)
			}
		}
	}
	doc := p.Renderer.Render(q, img)
	if p.Generator == nil {
		return doc, nil, &RenderingFailure{Stage: "pdf", Err: errors.New("no pdf backend configured")}
	}
	out, err := p.Generator.Generate(doc)
	if err != nil {
		log.Printf("quote render: pdf failed quote=%s err=%v", q.Number, err)
		return doc, nil, &RenderingFailure{Stage: "pdf", Err: err}
	}
	return doc, out, nil
}
