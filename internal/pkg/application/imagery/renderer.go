package imagery

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/disintegration/imaging"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const jpegQuality int = 80

//go:generate moq -rm -out renderer_mock.go . Renderer
type Renderer interface {
	Render(ctx context.Context, href string, maxSize int) ([]byte, error)
}

type previewRenderer struct {
	httpClient http.Client
}

func NewRenderer() Renderer {
	return &previewRenderer{
		// raster assets can be large, so this client gets a more
		// generous timeout than the catalog client
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   60 * time.Second,
		},
	}
}

// Render fetches the referenced raster and encodes a JPEG preview that is
// at most maxSize pixels on its longer side, preserving aspect ratio.
// Nothing is cached, every call re-fetches and re-encodes.
func (p *previewRenderer) Render(ctx context.Context, href string, maxSize int) ([]byte, error) {
	var err error
	ctx, span := tracer.Start(ctx, "render-preview")
	defer func() { recordError(err, span); span.End() }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, href, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return nil, err
	}

	resp, err := p.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrUpstream, err.Error())
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("%w: status code %d", ErrUpstream, resp.StatusCode)
		return nil, err
	}

	img, err := imaging.Decode(resp.Body)
	if err != nil {
		err = fmt.Errorf("%w: unreadable raster: %s", ErrUpstream, err.Error())
		return nil, err
	}

	bounds := img.Bounds()
	if bounds.Dx() > maxSize || bounds.Dy() > maxSize {
		img = imaging.Fit(img, maxSize, maxSize, imaging.Lanczos)
	}

	var buf bytes.Buffer
	err = imaging.Encode(&buf, img, imaging.JPEG, imaging.JPEGQuality(jpegQuality))
	if err != nil {
		err = fmt.Errorf("failed to encode preview: %w", err)
		return nil, err
	}

	return buf.Bytes(), nil
}
