package logo

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"
)

func pngBytes(t *testing.T) []byte {
	t.Helper()
	img := image.NewRGBA(image.Rect(0, 0, 4, 2))
	img.Set(1, 1, color.RGBA{R: 230, G: 57, B: 70, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("png encode: %v", err)
	}
	return buf.Bytes()
}

func TestFetchPNG(t *testing.T) {
	t.Parallel()

	data := pngBytes(t)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write(data)
	}))
	defer srv.Close()

	img, err := New(srv.URL, time.Second).Fetch(context.Background())
	if err != nil {
		t.Fatalf("Fetch() error = %v", err)
	}
	if img.MimeType != "image/png" || !bytes.Equal(img.Data, data) {
		t.Fatalf("unexpected image %s (%d bytes)", img.MimeType, len(img.Data))
	}
}

func TestFetchFailures(t *testing.T) {
	t.Parallel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/missing":
			http.NotFound(w, r)
		case "/html":
			w.Write([]byte("<html><body>logo</body></html>"))
		}
	}))
	defer srv.Close()

	tests := []struct {
		name string
		url  string
	}{
		{"not found", srv.URL + "/missing"},
		{"not an image", srv.URL + "/html"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(tt.url, time.Second).Fetch(context.Background()); err == nil {
				t.Fatal("expected an error")
			}
		})
	}
}

func TestFetchNotConfigured(t *testing.T) {
	t.Parallel()

	if _, err := New("  ", 0).Fetch(context.Background()); !errors.Is(err, ErrNoLogo) {
		t.Fatalf("expected ErrNoLogo, got %v", err)
	}
	var f *Fetcher
	if _, err := f.Fetch(context.Background()); !errors.Is(err, ErrNoLogo) {
		t.Fatalf("nil fetcher: expected ErrNoLogo, got %v", err)
	}
}
