package imagery

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/satellite-image-api/pkg/types"
	"github.com/matryer/is"
)

const searchResponse string = `{
	"type": "FeatureCollection",
	"features": [
		{
			"id": "S2B_54SUE_20230102_0_L2A",
			"assets": {
				"visual": {
					"href": "https://example.com/tiles/visual.tif",
					"type": "image/tiff; application=geotiff; profile=cloud-optimized",
					"title": "True color image"
				},
				"thumbnail": {
					"href": "https://example.com/tiles/thumb.jpg"
				}
			}
		}
	]
}`

func TestSearchEncodesBboxAndLimit(t *testing.T) {
	is := is.New(t)

	var query map[string][]string

	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		query = r.URL.Query()
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(searchResponse))
	}))
	defer catalog.Close()

	box := types.Box{MinLon: 139.25, MinLat: 35.0, MaxLon: 139.75, MaxLat: 35.5}

	result, err := NewLocator(catalog.URL).Search(context.Background(), box, 1)
	is.NoErr(err)

	is.Equal(query["bbox"], []string{"139.25,35,139.75,35.5"})
	is.Equal(query["limit"], []string{"1"})
	is.Equal(len(result.Features), 1)
	is.Equal(result.Features[0].ID, "S2B_54SUE_20230102_0_L2A")
}

func TestSearchDefaultsTheLimit(t *testing.T) {
	is := is.New(t)

	var limit []string

	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		limit = r.URL.Query()["limit"]
		w.Write([]byte(`{"features":[]}`))
	}))
	defer catalog.Close()

	_, err := NewLocator(catalog.URL).Search(context.Background(), types.Box{}, 0)
	is.NoErr(err)

	is.Equal(limit, []string{"12"})
}

func TestSearchMapsNonSuccessStatusToUpstreamError(t *testing.T) {
	is := is.New(t)

	catalog := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadGateway)
	}))
	defer catalog.Close()

	_, err := NewLocator(catalog.URL).Search(context.Background(), types.Box{}, 1)
	is.True(errors.Is(err, ErrUpstream))
}

func TestVisualAssetHref(t *testing.T) {
	is := is.New(t)

	result := SearchResult{
		Features: []Item{
			{
				ID: "first",
				Assets: map[string]Asset{
					"visual": {Href: "https://example.com/first.tif"},
				},
			},
			{
				ID: "second",
				Assets: map[string]Asset{
					"visual": {Href: "https://example.com/second.tif"},
				},
			},
		},
	}

	href, err := result.VisualAssetHref()
	is.NoErr(err)
	is.Equal(href, "https://example.com/first.tif")
}

func TestVisualAssetHrefOnEmptyResult(t *testing.T) {
	is := is.New(t)

	_, err := SearchResult{}.VisualAssetHref()
	is.True(errors.Is(err, ErrNoVisualAsset))
}

func TestVisualAssetHrefWhenAssetIsMissing(t *testing.T) {
	is := is.New(t)

	result := SearchResult{
		Features: []Item{
			{
				ID: "no-visual",
				Assets: map[string]Asset{
					"thumbnail": {Href: "https://example.com/thumb.jpg"},
				},
			},
		},
	}

	_, err := result.VisualAssetHref()
	is.True(errors.Is(err, ErrNoVisualAsset))
}
