package imagery

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/diwise/satellite-image-api/pkg/types"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
	"go.opentelemetry.io/otel"
)

var tracer = otel.Tracer("satellite-image-api/imagery")

var ErrUpstream = fmt.Errorf("imagery catalog request failed")
var ErrNoVisualAsset = fmt.Errorf("catalog item has no visual asset")

const DefaultCatalogURL string = "https://earth-search.aws.element84.com/v1/collections/sentinel-2-l2a/items"

// DefaultSearchLimit caps catalog searches when the caller does not need a
// single best match.
const DefaultSearchLimit int = 12

//go:generate moq -rm -out locator_mock.go . Locator
type Locator interface {
	Search(ctx context.Context, box types.Box, limit int) (SearchResult, error)
}

// SearchResult is the subset of a STAC item search response that we care
// about: the returned items and their assets.
type SearchResult struct {
	Features []Item `json:"features"`
}

type Item struct {
	ID     string           `json:"id"`
	Assets map[string]Asset `json:"assets"`
}

type Asset struct {
	Href  string `json:"href"`
	Type  string `json:"type"`
	Title string `json:"title"`
}

// VisualAssetHref returns the href of the visual asset of the first item,
// in catalog order. The first item is treated as the best match, no
// scoring or cloud cover filtering is applied.
func (r SearchResult) VisualAssetHref() (string, error) {
	if len(r.Features) == 0 {
		return "", fmt.Errorf("%w: empty search result", ErrNoVisualAsset)
	}

	asset, ok := r.Features[0].Assets["visual"]
	if !ok || asset.Href == "" {
		return "", ErrNoVisualAsset
	}

	return asset.Href, nil
}

type catalogLocator struct {
	catalogURL string
	httpClient http.Client
}

func NewLocator(catalogURL string) Locator {
	if catalogURL == "" {
		catalogURL = DefaultCatalogURL
	}

	return &catalogLocator{
		catalogURL: catalogURL,
		httpClient: http.Client{
			Transport: otelhttp.NewTransport(http.DefaultTransport),
			Timeout:   20 * time.Second,
		},
	}
}

func (c *catalogLocator) Search(ctx context.Context, box types.Box, limit int) (SearchResult, error) {
	var err error
	ctx, span := tracer.Start(ctx, "search-catalog")
	defer func() { recordError(err, span); span.End() }()

	if limit <= 0 {
		limit = DefaultSearchLimit
	}

	if err = box.Validate(); err != nil {
		return SearchResult{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.catalogURL, nil)
	if err != nil {
		err = fmt.Errorf("failed to create http request: %w", err)
		return SearchResult{}, err
	}

	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("bbox", box.String())
	req.URL.RawQuery = q.Encode()
	req.Header.Set("Accept", "application/json")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrUpstream, err.Error())
		return SearchResult{}, err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		err = fmt.Errorf("%w: status code %d", ErrUpstream, resp.StatusCode)
		return SearchResult{}, err
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		err = fmt.Errorf("failed to read response body: %w", err)
		return SearchResult{}, err
	}

	result := SearchResult{}

	err = json.Unmarshal(body, &result)
	if err != nil {
		err = fmt.Errorf("%w: %s", ErrUpstream, err.Error())
		return SearchResult{}, err
	}

	return result, nil
}
