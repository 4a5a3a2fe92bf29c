package storage

import (
	"context"
	"testing"

	"github.com/matryer/is"
)

func testSetup(t *testing.T) (context.Context, *Storage) {
	ctx := context.Background()

	config := NewConfig("localhost", "postgres", "password", "5432", "postgres", "disable")

	s := &Storage{config: config}
	if err := s.Initialize(ctx); err != nil {
		t.SkipNow()
	}

	return ctx, s
}

func TestCreateThenListContainsTheCreatedPoint(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)
	defer s.Close()

	created, err := s.AddPoint(ctx, 139.767, 35.681)
	is.NoErr(err)
	defer s.DeletePoint(ctx, created.ID)

	points, err := s.GetPoints(ctx)
	is.NoErr(err)

	found := 0
	for _, p := range points {
		if p.ID == created.ID {
			found++
			is.Equal(p.Longitude, created.Longitude)
			is.Equal(p.Latitude, created.Latitude)
		}
	}

	is.Equal(found, 1)
}

func TestGetUnknownPointReturnsErrNoRows(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)
	defer s.Close()

	_, err := s.GetPoint(ctx, -1)
	is.Equal(err, ErrNoRows)
}

func TestDeleteIsIdempotent(t *testing.T) {
	is := is.New(t)
	ctx, s := testSetup(t)
	defer s.Close()

	created, err := s.AddPoint(ctx, 17.30723, 62.3916)
	is.NoErr(err)

	is.NoErr(s.DeletePoint(ctx, created.ID))
	is.NoErr(s.DeletePoint(ctx, created.ID))
}
