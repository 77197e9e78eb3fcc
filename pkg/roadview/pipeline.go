package roadview

import (
	"fmt"

	"github.com/FraserParlane/road-names/pkg/geo"
)

// Canvas is the target pixel surface for a processing run.
type Canvas struct {
	Width  int
	Height int
}

// Polyline is one matched way resolved to coordinates and projected to
// pixels. Coords and Points share the way's node order, so the line
// direction is stable across runs.
type Polyline struct {
	WayID  int64        `msgpack:"way_id"`
	Coords []Coordinate `msgpack:"coords"`
	Points []geo.Point  `msgpack:"points"`
}

// ViewResult is everything a run produced for one view: the matched ways
// in document order and one polyline per way.
type ViewResult struct {
	Name  string       `msgpack:"name"`
	Ways  []geo.OSMWay `msgpack:"-"`
	Lines []Polyline   `msgpack:"lines"`
}

// Run filters the document's ways through every view, resolves each
// matched way's node references, and projects them onto the canvas. Views
// produce results in registration order; within a view, ways keep
// document order. Any unresolvable node reference fails the whole run,
// there is no partial-result mode.
func Run(doc *geo.Document, views []View, box geo.GeoBox, canvas Canvas) ([]ViewResult, error) {
	index, err := BuildNodeIndex(doc)
	if err != nil {
		return nil, fmt.Errorf("error when building node index: %w", err)
	}

	results := make([]ViewResult, len(views))
	for i, view := range views {
		results[i] = ViewResult{Name: view.Name}
	}

	for _, way := range doc.Ways {
		for i, view := range views {
			if view.Evaluate(way) {
				results[i].Ways = append(results[i].Ways, way)
			}
		}
	}

	proj := geo.NewProjector(box, canvas.Width, canvas.Height)

	for i := range results {
		results[i].Lines = make([]Polyline, 0, len(results[i].Ways))
		for _, way := range results[i].Ways {
			line, err := resolveWay(index, proj, way)
			if err != nil {
				return nil, fmt.Errorf("error when resolving way %d: %w", way.ID, err)
			}
			results[i].Lines = append(results[i].Lines, line)
		}
	}

	return results, nil
}

func resolveWay(index *NodeIndex, proj geo.Projector, way geo.OSMWay) (Polyline, error) {
	line := Polyline{
		WayID:  way.ID,
		Coords: make([]Coordinate, 0, len(way.NodeIDs)),
		Points: make([]geo.Point, 0, len(way.NodeIDs)),
	}
	for _, id := range way.NodeIDs {
		c, err := index.Lookup(id)
		if err != nil {
			return Polyline{}, err
		}
		line.Coords = append(line.Coords, c)
		line.Points = append(line.Points, proj.Project(c.Lon, c.Lat))
	}
	return line, nil
}
