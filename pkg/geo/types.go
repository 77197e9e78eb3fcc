package geo

// OSMWay is an ordered run of node references plus the way's tag map.
// Ways are owned by the Document; views hold references into its slice.
type OSMWay struct {
	ID      int64
	NodeIDs []int64
	TagMap  map[string]string
}

func NewOSMWay(id int64, nodeIDs []int64, tagMap map[string]string) OSMWay {
	return OSMWay{
		ID:      id,
		NodeIDs: nodeIDs,
		TagMap:  tagMap,
	}
}

type OSMNode struct {
	ID  int64
	Lat float64
	Lon float64
}

func NewOSMNode(id int64, lat float64, lon float64) OSMNode {
	return OSMNode{
		ID:  id,
		Lat: lat,
		Lon: lon,
	}
}

// Document is the parsed map data for one bounding box.
type Document struct {
	Nodes []OSMNode
	Ways  []OSMWay
}
