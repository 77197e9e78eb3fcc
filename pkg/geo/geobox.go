package geo

import (
	"errors"
	"fmt"
	"math"
)

var ErrInvalidBounds = errors.New("invalid bounding box: min must be strictly less than max")

// GeoBox is a lon/lat rectangle selecting the area to fetch and plot.
// All derived fields are computed once at construction; a GeoBox never
// changes after NewGeoBox returns.
type GeoBox struct {
	LonMin float64
	LonMax float64
	LatMin float64
	LatMax float64

	LonMid  float64
	LatMid  float64
	LonSpan float64
	LatSpan float64

	// LonScale compensates for longitude degrees shrinking away from the
	// equator: cos(latMid in radians). Approaches 0 near the poles, where
	// HeightToWidthRatio blows up. Not handled, boxes that close to a pole
	// are outside what this tool plots.
	LonScale float64

	HeightToWidthRatio float64

	id string
}

func NewGeoBox(lonMin, lonMax, latMin, latMax float64) (GeoBox, error) {
	if lonMin >= lonMax {
		return GeoBox{}, fmt.Errorf("%w: lon_min %f >= lon_max %f", ErrInvalidBounds, lonMin, lonMax)
	}
	if latMin >= latMax {
		return GeoBox{}, fmt.Errorf("%w: lat_min %f >= lat_max %f", ErrInvalidBounds, latMin, latMax)
	}

	b := GeoBox{
		LonMin: lonMin,
		LonMax: lonMax,
		LatMin: latMin,
		LatMax: latMax,
	}

	b.LonMid = (lonMin + lonMax) / 2
	b.LatMid = (latMin + latMax) / 2
	b.LonSpan = lonMax - lonMin
	b.LatSpan = latMax - latMin
	b.LonScale = math.Cos(b.LatMid * math.Pi / 180)
	b.HeightToWidthRatio = b.LatSpan / (b.LonSpan * b.LonScale)

	b.id = fmt.Sprintf("%.4f_%.4f_%.4f_%.4f", lonMin, lonMax, latMin, latMax)

	return b, nil
}

// ID is a deterministic, filesystem-safe key for this box. Two boxes with
// numerically equal bounds share an ID, so cached map data is reused.
func (b GeoBox) ID() string {
	return b.id
}

// BBoxParam formats the box the way the OSM map API expects it:
// lon_min,lat_min,lon_max,lat_max.
func (b GeoBox) BBoxParam() string {
	return fmt.Sprintf("%.4f,%.4f,%.4f,%.4f", b.LonMin, b.LatMin, b.LonMax, b.LatMax)
}

// CanvasHeight derives the pixel height that preserves the box's aspect
// ratio for a given pixel width.
func (b GeoBox) CanvasHeight(canvasWidth int) int {
	return int(math.Round(float64(canvasWidth) * b.HeightToWidthRatio))
}
