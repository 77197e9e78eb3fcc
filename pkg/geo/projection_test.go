package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectorCorners(t *testing.T) {
	box, err := NewGeoBox(vancouver[0], vancouver[1], vancouver[2], vancouver[3])
	require.NoError(t, err)

	width := 1000
	height := box.CanvasHeight(width)
	proj := NewProjector(box, width, height)

	t.Run("south west corner maps to bottom left", func(t *testing.T) {
		p := proj.Project(box.LonMin, box.LatMin)
		assert.InDelta(t, 0, p.X, 1e-9)
		assert.InDelta(t, float64(height), p.Y, 1e-9)
	})

	t.Run("north east corner maps to top right", func(t *testing.T) {
		p := proj.Project(box.LonMax, box.LatMax)
		assert.InDelta(t, float64(width), p.X, 1e-9)
		assert.InDelta(t, 0, p.Y, 1e-9)
	})

	t.Run("midpoint maps to canvas center", func(t *testing.T) {
		p := proj.Project(box.LonMid, box.LatMid)
		assert.InDelta(t, float64(width)/2, p.X, 1e-9)
		assert.InDelta(t, float64(height)/2, p.Y, 1e-9)
	})
}

func TestProjectorKeepsOutOfCanvasPoints(t *testing.T) {
	box, err := NewGeoBox(0, 1, 0, 1)
	require.NoError(t, err)
	proj := NewProjector(box, 100, 100)

	// a point west and north of the box still projects, just outside
	// the canvas. clipping is the renderer's call.
	p := proj.Project(-0.5, 1.5)
	assert.Less(t, p.X, 0.0)
	assert.Less(t, p.Y, 0.0)
}
