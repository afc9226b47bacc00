package logo

import (
	"context"
	"errors"
	"fmt"
	"io"
	"net/http"
	"strings"
	"time"

	"hardings-auto/go_backend/internal/domain/quote/document"
)

const maxLogoBytes = 2 << 20

var ErrNoLogo = errors.New("logo not configured")

// Fetcher downloads the brand logo for embedding. It keeps no cache: every
// render fetches once.
type Fetcher struct {
	URL  string
	HTTP *http.Client
}

func New(url string, timeout time.Duration) *Fetcher {
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Fetcher{URL: strings.TrimSpace(url), HTTP: &http.Client{Timeout: timeout}}
}

func (f *Fetcher) Fetch(ctx context.Context) (*document.Image, error) {
	if f == nil || f.URL == "" {
		return nil, ErrNoLogo
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, f.URL, nil)
	if err != nil {
		return nil, err
	}
	client := f.HTTP
	if client == nil {
		client = http.DefaultClient
	}
	resp, err := client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("logo status %d", resp.StatusCode)
	}
	data, err := io.ReadAll(io.LimitReader(resp.Body, maxLogoBytes+1))
	if err != nil {
		return nil, err
	}
	if len(data) > maxLogoBytes {
		return nil, fmt.Errorf("logo larger than %d bytes", maxLogoBytes)
	}
	ct := http.DetectContentType(data)
	switch ct {
	case "image/png", "image/jpeg", "image/gif":
	default:
		return nil, fmt.Errorf("unsupported logo type %s", ct)
	}
	return &document.Image{Data: data, MimeType: ct}, nil
}
