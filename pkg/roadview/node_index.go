package roadview

import (
	"errors"
	"fmt"

	"github.com/FraserParlane/road-names/pkg/geo"
)

var (
	ErrUnknownNodeID   = errors.New("way references a node the document does not define")
	ErrDuplicateNodeID = errors.New("node id defined twice with different coordinates")
)

// Coordinate is a resolved lon/lat pair.
type Coordinate struct {
	Lon float64
	Lat float64
}

// NodeIndex resolves node ids to coordinates. Built once per document and
// read-only afterwards.
type NodeIndex struct {
	coords map[int64]Coordinate
}

// BuildNodeIndex scans the document's nodes once. Redefining an id with
// identical coordinates is benign duplication; redefining it with
// different coordinates means the document is internally inconsistent and
// the whole load fails.
func BuildNodeIndex(doc *geo.Document) (*NodeIndex, error) {
	ix := &NodeIndex{
		coords: make(map[int64]Coordinate, len(doc.Nodes)),
	}
	for _, node := range doc.Nodes {
		c := Coordinate{Lon: node.Lon, Lat: node.Lat}
		if prev, ok := ix.coords[node.ID]; ok && prev != c {
			return nil, fmt.Errorf("%w: node %d is (%f, %f) and (%f, %f)",
				ErrDuplicateNodeID, node.ID, prev.Lon, prev.Lat, c.Lon, c.Lat)
		}
		ix.coords[node.ID] = c
	}
	return ix, nil
}

func (ix *NodeIndex) Lookup(id int64) (Coordinate, error) {
	c, ok := ix.coords[id]
	if !ok {
		return Coordinate{}, fmt.Errorf("%w: node %d", ErrUnknownNodeID, id)
	}
	return c, nil
}

func (ix *NodeIndex) Len() int {
	return len(ix.coords)
}
