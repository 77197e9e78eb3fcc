package geo

// Point is a projected pixel coordinate. Y grows downward, so geographic
// north ends up at row 0.
type Point struct {
	X float64
	Y float64
}

// Projector maps lon/lat coordinates inside a GeoBox onto a pixel canvas.
// It is a pure function of the box and the canvas dimensions; points
// outside the box project outside [0,W]x[0,H] and are kept as-is, clipping
// is the renderer's problem.
type Projector struct {
	box          GeoBox
	canvasWidth  float64
	canvasHeight float64
}

func NewProjector(box GeoBox, canvasWidth, canvasHeight int) Projector {
	return Projector{
		box:          box,
		canvasWidth:  float64(canvasWidth),
		canvasHeight: float64(canvasHeight),
	}
}

func (p Projector) Project(lon, lat float64) Point {
	x := (lon - p.box.LonMin) / p.box.LonSpan * p.canvasWidth
	y := (lat - p.box.LatMin) / p.box.LatSpan * p.canvasHeight
	return Point{
		X: x,
		Y: p.canvasHeight - y,
	}
}
