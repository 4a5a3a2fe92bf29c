package storage

import (
	"context"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5"
)

// Point is a stored point geometry. Coordinates are WGS84 (SRID 4326).
type Point struct {
	ID        int64
	Longitude float64
	Latitude  float64
}

func (s *Storage) GetPoints(ctx context.Context) ([]Point, error) {
	pool, err := s.db(ctx)
	if err != nil {
		return nil, err
	}

	rows, err := pool.Query(ctx, `
		SELECT id, ST_X(geom), ST_Y(geom)
		FROM points
	`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	points := []Point{}

	for rows.Next() {
		var p Point
		if err := rows.Scan(&p.ID, &p.Longitude, &p.Latitude); err != nil {
			return nil, err
		}
		points = append(points, p)
	}

	return points, rows.Err()
}

func (s *Storage) GetPoint(ctx context.Context, id int64) (Point, error) {
	pool, err := s.db(ctx)
	if err != nil {
		return Point{}, err
	}

	var p Point

	err = pool.QueryRow(ctx, `
		SELECT id, ST_X(geom), ST_Y(geom)
		FROM points
		WHERE id = @id
	`, pgx.NamedArgs{"id": id}).Scan(&p.ID, &p.Longitude, &p.Latitude)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return Point{}, ErrNoRows
		}
		return Point{}, err
	}

	return p, nil
}

// AddPoint inserts a new point and reads the stored geometry back, so any
// rounding performed by the database is reflected in the returned point.
func (s *Storage) AddPoint(ctx context.Context, longitude, latitude float64) (Point, error) {
	pool, err := s.db(ctx)
	if err != nil {
		return Point{}, err
	}

	args := pgx.NamedArgs{
		"lon": longitude,
		"lat": latitude,
	}

	var p Point

	err = pool.QueryRow(ctx, `
		INSERT INTO points (geom)
		VALUES (ST_SetSRID(ST_MakePoint(@lon, @lat), 4326))
		RETURNING id, ST_X(geom), ST_Y(geom)
	`, args).Scan(&p.ID, &p.Longitude, &p.Latitude)
	if err != nil {
		return Point{}, fmt.Errorf("%w: %s", ErrStoreFailed, err.Error())
	}

	return p, nil
}

// DeletePoint removes a point if it exists. Deleting an unknown id is not
// an error.
func (s *Storage) DeletePoint(ctx context.Context, id int64) error {
	pool, err := s.db(ctx)
	if err != nil {
		return err
	}

	_, err = pool.Exec(ctx, `
		DELETE FROM points
		WHERE id = @id
	`, pgx.NamedArgs{"id": id})

	return err
}
