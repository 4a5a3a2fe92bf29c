package points

import (
	"context"
	"errors"
	"fmt"

	"github.com/diwise/satellite-image-api/internal/pkg/infrastructure/storage"
	"github.com/diwise/satellite-image-api/pkg/types"
)

var ErrPointNotFound = fmt.Errorf("point not found")
var ErrInvalidCoordinates = fmt.Errorf("coordinates out of range")

//go:generate moq -rm -out registry_mock.go . Registry
type Registry interface {
	List(ctx context.Context) (types.FeatureCollection, error)
	Get(ctx context.Context, id int64) (types.Feature, error)
	Create(ctx context.Context, longitude, latitude float64) (types.Feature, error)
	Delete(ctx context.Context, id int64) error
}

//go:generate moq -rm -out pointstorage_mock.go . PointStorage
type PointStorage interface {
	GetPoints(ctx context.Context) ([]storage.Point, error)
	GetPoint(ctx context.Context, id int64) (storage.Point, error)
	AddPoint(ctx context.Context, longitude, latitude float64) (storage.Point, error)
	DeletePoint(ctx context.Context, id int64) error
}

type registry struct {
	storage PointStorage
}

func New(s PointStorage) Registry {
	return &registry{storage: s}
}

func (r *registry) List(ctx context.Context) (types.FeatureCollection, error) {
	points, err := r.storage.GetPoints(ctx)
	if err != nil {
		return types.FeatureCollection{}, err
	}

	features := make([]types.Feature, 0, len(points))
	for _, p := range points {
		features = append(features, types.NewFeature(p.ID, p.Longitude, p.Latitude))
	}

	return types.NewFeatureCollection(features), nil
}

func (r *registry) Get(ctx context.Context, id int64) (types.Feature, error) {
	p, err := r.storage.GetPoint(ctx, id)
	if err != nil {
		if errors.Is(err, storage.ErrNoRows) {
			return types.Feature{}, ErrPointNotFound
		}
		return types.Feature{}, err
	}

	return types.NewFeature(p.ID, p.Longitude, p.Latitude), nil
}

func (r *registry) Create(ctx context.Context, longitude, latitude float64) (types.Feature, error) {
	if longitude < -180 || longitude > 180 || latitude < -90 || latitude > 90 {
		return types.Feature{}, fmt.Errorf("%w: (%f, %f)", ErrInvalidCoordinates, longitude, latitude)
	}

	p, err := r.storage.AddPoint(ctx, longitude, latitude)
	if err != nil {
		return types.Feature{}, err
	}

	return types.NewFeature(p.ID, p.Longitude, p.Latitude), nil
}

func (r *registry) Delete(ctx context.Context, id int64) error {
	return r.storage.DeletePoint(ctx, id)
}
