package main

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/diwise/satellite-image-api/internal/pkg/application/imagery"
	"github.com/diwise/satellite-image-api/internal/pkg/application/points"
	"github.com/diwise/satellite-image-api/internal/pkg/infrastructure/router"
	"github.com/diwise/satellite-image-api/internal/pkg/presentation/api"
	"github.com/diwise/satellite-image-api/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/matryer/is"
	"github.com/rs/zerolog"
)

func TestHealthEndpointIsRegistered(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/health")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"status":"ok"}`)
}

func TestPointsEndpointIsRegistered(t *testing.T) {
	r, is := setupTest(t)
	server := httptest.NewServer(r)
	defer server.Close()

	resp, body := testRequest(is, server, http.MethodGet, "/points")

	is.Equal(resp.StatusCode, http.StatusOK)
	is.Equal(body, `{"type":"FeatureCollection","features":[]}`)
}

func TestCorsOriginDefaultsToWildcard(t *testing.T) {
	is := is.New(t)

	flags := defaultFlags()
	is.Equal(flags[corsOrigins], "*")
}

func TestOriginAllowListDropsEmptyEntries(t *testing.T) {
	is := is.New(t)

	is.Equal(len(originAllowList("")), 0)
	is.Equal(len(originAllowList(" , ,")), 0)
	is.Equal(originAllowList("https://a.example, https://b.example"), []string{"https://a.example", "https://b.example"})
}

func setupTest(t *testing.T) (*chi.Mux, *is.I) {
	is := is.New(t)

	registry := &points.RegistryMock{
		ListFunc: func(ctx context.Context) (types.FeatureCollection, error) {
			return types.NewFeatureCollection(nil), nil
		},
	}

	r := router.New("testService", []string{"*"})
	api.RegisterHandlers(zerolog.Nop(), r, registry, &imagery.LocatorMock{}, &imagery.RendererMock{})

	return r, is
}

func testRequest(is *is.I, ts *httptest.Server, method, path string) (*http.Response, string) {
	req, _ := http.NewRequest(method, ts.URL+path, nil)
	resp, err := http.DefaultClient.Do(req)
	is.NoErr(err)

	respBody, _ := io.ReadAll(resp.Body)
	defer resp.Body.Close()

	return resp, string(respBody)
}
