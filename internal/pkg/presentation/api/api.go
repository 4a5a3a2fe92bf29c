package api

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/diwise/satellite-image-api/internal/pkg/application/imagery"
	"github.com/diwise/satellite-image-api/internal/pkg/application/points"
	"github.com/diwise/satellite-image-api/pkg/types"
	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// nearbyBuffer is the fixed expansion, in degrees, applied around a point
// when searching the imagery catalog.
const nearbyBuffer float64 = 0.01

const defaultMaxSize int = 256
const maxAllowedSize int = 1024

func RegisterHandlers(log zerolog.Logger, router *chi.Mux, registry points.Registry, locator imagery.Locator, renderer imagery.Renderer) *chi.Mux {

	router.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	router.Route("/points", func(r chi.Router) {
		r.Get("/", listPointsHandler(log, registry))
		r.Post("/", createPointHandler(log, registry))
		r.Delete("/{id}", deletePointHandler(log, registry))
		r.Get("/{id}/satellite.jpg", satellitePreviewHandler(log, registry, locator, renderer))
	})

	return router
}

func listPointsHandler(log zerolog.Logger, registry points.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		collection, err := registry.List(r.Context())
		if err != nil {
			log.Error().Err(err).Msg("unable to list points")
			writeError(w, http.StatusInternalServerError, "unable to list points")
			return
		}

		writeJSON(w, http.StatusOK, collection)
	}
}

type createPointRequest struct {
	Longitude *float64 `json:"longitude"`
	Latitude  *float64 `json:"latitude"`
}

func createPointHandler(log zerolog.Logger, registry points.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		defer r.Body.Close()

		var body createPointRequest
		err := json.NewDecoder(r.Body).Decode(&body)
		if err != nil {
			writeError(w, http.StatusBadRequest, "request body is not valid json")
			return
		}

		if body.Longitude == nil || body.Latitude == nil {
			writeError(w, http.StatusBadRequest, "longitude and latitude are required")
			return
		}

		feature, err := registry.Create(r.Context(), *body.Longitude, *body.Latitude)
		if err != nil {
			if errors.Is(err, points.ErrInvalidCoordinates) {
				writeError(w, http.StatusBadRequest, err.Error())
				return
			}

			log.Error().Err(err).Msg("unable to create point")
			writeError(w, http.StatusInternalServerError, "unable to create point")
			return
		}

		writeJSON(w, http.StatusOK, feature)
	}
}

func deletePointHandler(log zerolog.Logger, registry points.Registry) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "point id must be an integer")
			return
		}

		err = registry.Delete(r.Context(), id)
		if err != nil {
			log.Error().Err(err).Int64("point_id", id).Msg("unable to delete point")
			writeError(w, http.StatusInternalServerError, "unable to delete point")
			return
		}

		w.WriteHeader(http.StatusNoContent)
	}
}

func satellitePreviewHandler(log zerolog.Logger, registry points.Registry, locator imagery.Locator, renderer imagery.Renderer) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, err := strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
		if err != nil {
			writeError(w, http.StatusBadRequest, "point id must be an integer")
			return
		}

		maxSize := defaultMaxSize
		if q := r.URL.Query().Get("max_size"); q != "" {
			maxSize, err = strconv.Atoi(q)
			if err != nil {
				writeError(w, http.StatusBadRequest, "max_size must be an integer")
				return
			}
		}

		// size is capped before any lookup or catalog search happens
		if maxSize > maxAllowedSize || maxSize <= 0 {
			writeError(w, http.StatusBadRequest, "max_size must be between 1 and 1024")
			return
		}

		feature, err := registry.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, points.ErrPointNotFound) {
				w.WriteHeader(http.StatusNotFound)
				return
			}

			log.Error().Err(err).Int64("point_id", id).Msg("unable to fetch point")
			w.WriteHeader(http.StatusInternalServerError)
			return
		}

		box := types.NewBoxAround(feature.Longitude(), feature.Latitude(), nearbyBuffer)

		result, err := locator.Search(r.Context(), box, 1)
		if err != nil {
			log.Error().Err(err).Int64("point_id", id).Msg("imagery search failed")
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		if len(result.Features) == 0 {
			w.WriteHeader(http.StatusNotFound)
			return
		}

		href, err := result.VisualAssetHref()
		if err != nil {
			log.Error().Err(err).Int64("point_id", id).Msg("catalog item is missing its visual asset")
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		jpg, err := renderer.Render(r.Context(), href, maxSize)
		if err != nil {
			log.Error().Err(err).Int64("point_id", id).Msg("unable to render preview")
			w.WriteHeader(http.StatusBadGateway)
			return
		}

		w.Header().Set("Content-Type", "image/jpeg")
		w.Header().Set("Content-Length", strconv.Itoa(len(jpg)))
		w.WriteHeader(http.StatusOK)
		w.Write(jpg)
	}
}

func writeJSON(w http.ResponseWriter, statusCode int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "unable to marshal response")
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	w.Write(b)
}

func writeError(w http.ResponseWriter, statusCode int, msg string) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	json.NewEncoder(w).Encode(map[string]string{"error": msg})
}
