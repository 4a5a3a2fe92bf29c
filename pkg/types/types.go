package types

import (
	"fmt"
	"strconv"
	"strings"
)

// Feature is the GeoJSON representation of a stored point. It is produced
// at the API boundary and never persisted.
type Feature struct {
	Type       string        `json:"type"`
	Geometry   PointGeometry `json:"geometry"`
	Properties Properties    `json:"properties"`
}

type PointGeometry struct {
	Type        string     `json:"type"`
	Coordinates [2]float64 `json:"coordinates"`
}

type Properties struct {
	ID int64 `json:"id"`
}

func NewFeature(id int64, longitude, latitude float64) Feature {
	return Feature{
		Type: "Feature",
		Geometry: PointGeometry{
			Type:        "Point",
			Coordinates: [2]float64{longitude, latitude},
		},
		Properties: Properties{ID: id},
	}
}

func (f Feature) Longitude() float64 {
	return f.Geometry.Coordinates[0]
}

func (f Feature) Latitude() float64 {
	return f.Geometry.Coordinates[1]
}

type FeatureCollection struct {
	Type     string    `json:"type"`
	Features []Feature `json:"features"`
}

// NewFeatureCollection wraps features in a collection. An empty collection
// marshals with an empty features array, not null.
func NewFeatureCollection(features []Feature) FeatureCollection {
	if features == nil {
		features = []Feature{}
	}

	return FeatureCollection{
		Type:     "FeatureCollection",
		Features: features,
	}
}

// Box is a lon/lat aligned bounding box in WGS84.
type Box struct {
	MinLon float64
	MinLat float64
	MaxLon float64
	MaxLat float64
}

// NewBoxAround expands a point by buffer degrees in each direction. The
// buffer is in degrees, not metres, so boxes degrade near the poles.
func NewBoxAround(longitude, latitude, buffer float64) Box {
	return Box{
		MinLon: longitude - buffer,
		MinLat: latitude - buffer,
		MaxLon: longitude + buffer,
		MaxLat: latitude + buffer,
	}
}

// String renders the box as "minLon,minLat,maxLon,maxLat" for use as a
// bbox query parameter.
func (b Box) String() string {
	parts := []string{
		strconv.FormatFloat(b.MinLon, 'f', -1, 64),
		strconv.FormatFloat(b.MinLat, 'f', -1, 64),
		strconv.FormatFloat(b.MaxLon, 'f', -1, 64),
		strconv.FormatFloat(b.MaxLat, 'f', -1, 64),
	}
	return strings.Join(parts, ",")
}

func (b Box) Validate() error {
	if b.MinLon > b.MaxLon || b.MinLat > b.MaxLat {
		return fmt.Errorf("degenerate bounding box %s", b.String())
	}
	return nil
}
