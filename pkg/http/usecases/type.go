package usecases

import (
	"context"

	"github.com/FraserParlane/road-names/pkg/geo"
	"github.com/FraserParlane/road-names/pkg/roadview"
)

// MapDataProvider is the fetch-or-read-cache collaborator.
type MapDataProvider interface {
	MapData(ctx context.Context, box geo.GeoBox) ([]byte, error)
}

// RenderCache stores projected view results keyed by render fingerprint.
type RenderCache interface {
	SaveRender(key string, results []roadview.ViewResult) error
	GetRender(key string) ([]roadview.ViewResult, error)
}

// RenderParams is one render request: the area, the canvas width, and an
// optional list of highway classes to split into per-class views. With no
// classes, a single view selects every way carrying a highway tag.
type RenderParams struct {
	Box            geo.GeoBox
	CanvasWidth    int
	HighwayClasses []string
}
