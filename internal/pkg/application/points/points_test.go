package points

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"github.com/diwise/satellite-image-api/internal/pkg/infrastructure/storage"
	"github.com/matryer/is"
)

func TestListMapsStoredPointsToFeatures(t *testing.T) {
	is := is.New(t)

	mock := &PointStorageMock{
		GetPointsFunc: func(ctx context.Context) ([]storage.Point, error) {
			return []storage.Point{
				{ID: 1, Longitude: 139.767, Latitude: 35.681},
				{ID: 2, Longitude: 17.30723, Latitude: 62.3916},
			}, nil
		},
	}

	fc, err := New(mock).List(context.Background())
	is.NoErr(err)

	is.Equal(fc.Type, "FeatureCollection")
	is.Equal(len(fc.Features), 2)
	is.Equal(fc.Features[0].Properties.ID, int64(1))
	is.Equal(fc.Features[0].Longitude(), 139.767)
	is.Equal(fc.Features[0].Latitude(), 35.681)
}

func TestListOnEmptyStoreIsEmptyNotError(t *testing.T) {
	is := is.New(t)

	mock := &PointStorageMock{
		GetPointsFunc: func(ctx context.Context) ([]storage.Point, error) {
			return []storage.Point{}, nil
		},
	}

	fc, err := New(mock).List(context.Background())
	is.NoErr(err)

	is.True(fc.Features != nil)
	is.Equal(len(fc.Features), 0)
}

func TestCreateRejectsOutOfRangeCoordinates(t *testing.T) {
	is := is.New(t)

	mock := &PointStorageMock{}
	registry := New(mock)

	for _, coords := range [][2]float64{
		{181, 0},
		{-181, 0},
		{0, 91},
		{0, -91},
	} {
		_, err := registry.Create(context.Background(), coords[0], coords[1])
		is.True(errors.Is(err, ErrInvalidCoordinates))
	}

	is.Equal(len(mock.AddPointCalls()), 0)
}

func TestCreateReturnsStoredCoordinates(t *testing.T) {
	is := is.New(t)

	mock := &PointStorageMock{
		AddPointFunc: func(ctx context.Context, longitude, latitude float64) (storage.Point, error) {
			return storage.Point{ID: 42, Longitude: longitude, Latitude: latitude}, nil
		},
	}

	f, err := New(mock).Create(context.Background(), 139.767, 35.681)
	is.NoErr(err)

	is.Equal(f.Properties.ID, int64(42))
	is.Equal(f.Longitude(), 139.767)
	is.Equal(f.Latitude(), 35.681)
}

func TestGetUnknownPointReturnsNotFound(t *testing.T) {
	is := is.New(t)

	mock := &PointStorageMock{
		GetPointFunc: func(ctx context.Context, id int64) (storage.Point, error) {
			return storage.Point{}, storage.ErrNoRows
		},
	}

	_, err := New(mock).Get(context.Background(), 4711)
	is.True(errors.Is(err, ErrPointNotFound))
}

func TestGetPropagatesOtherStorageErrors(t *testing.T) {
	is := is.New(t)

	boom := fmt.Errorf("connection refused")
	mock := &PointStorageMock{
		GetPointFunc: func(ctx context.Context, id int64) (storage.Point, error) {
			return storage.Point{}, boom
		},
	}

	_, err := New(mock).Get(context.Background(), 1)
	is.Equal(err, boom)
}

func TestDeleteDelegatesToStorage(t *testing.T) {
	is := is.New(t)

	mock := &PointStorageMock{
		DeletePointFunc: func(ctx context.Context, id int64) error {
			return nil
		},
	}

	is.NoErr(New(mock).Delete(context.Background(), 9))
	is.Equal(len(mock.DeletePointCalls()), 1)
	is.Equal(mock.DeletePointCalls()[0].ID, int64(9))
}
