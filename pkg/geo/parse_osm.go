package geo

import (
	"encoding/xml"
	"fmt"

	"github.com/paulmach/osm"
)

// ParseOSM decodes the XML returned by the OSM map API into a Document.
// Callers only ever walk the Document; the osm parse tree does not leak
// out of this function.
func ParseOSM(data []byte) (*Document, error) {
	var root osm.OSM
	if err := xml.Unmarshal(data, &root); err != nil {
		return nil, fmt.Errorf("error when decoding osm xml: %w", err)
	}

	doc := &Document{
		Nodes: make([]OSMNode, 0, len(root.Nodes)),
		Ways:  make([]OSMWay, 0, len(root.Ways)),
	}

	for _, node := range root.Nodes {
		doc.Nodes = append(doc.Nodes, NewOSMNode(int64(node.ID), node.Lat, node.Lon))
	}

	for _, way := range root.Ways {
		nodeIDs := make([]int64, 0, len(way.Nodes))
		for _, nd := range way.Nodes {
			nodeIDs = append(nodeIDs, int64(nd.ID))
		}
		doc.Ways = append(doc.Ways, NewOSMWay(int64(way.ID), nodeIDs, way.TagMap()))
	}

	return doc, nil
}
