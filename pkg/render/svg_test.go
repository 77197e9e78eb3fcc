package render

import (
	"bytes"
	"strings"
	"testing"

	"github.com/FraserParlane/road-names/pkg/geo"
	"github.com/FraserParlane/road-names/pkg/roadview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSVG(t *testing.T) {
	results := []roadview.ViewResult{
		{
			Name: "highway=residential",
			Lines: []roadview.Polyline{
				{
					WayID: 100,
					Points: []geo.Point{
						{X: 10, Y: 20},
						{X: 30, Y: 40},
						{X: 50, Y: 60},
					},
				},
			},
		},
		{
			Name: "highway=service",
			Lines: []roadview.Polyline{
				{
					WayID: 101,
					Points: []geo.Point{
						{X: 5, Y: 5},
						{X: 90, Y: 95},
					},
				},
			},
		},
	}

	var buf bytes.Buffer
	err := SVG(&buf, results, roadview.Canvas{Width: 100, Height: 100}, DefaultOptions())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.Contains(t, out, `id="highway=residential"`)
	assert.Contains(t, out, `id="highway=service"`)

	// one polyline element per matched way.
	assert.Equal(t, 2, strings.Count(out, "<polyline"))

	// views get distinct stroke colors from the palette.
	assert.Contains(t, out, defaultPalette[0])
	assert.Contains(t, out, defaultPalette[1])
}

func TestSVGEscapesViewNames(t *testing.T) {
	results := []roadview.ViewResult{
		{
			Name: `highway=residential"><script>alert(1)</script><g x="`,
			Lines: []roadview.Polyline{
				{WayID: 100, Points: []geo.Point{{X: 1, Y: 1}, {X: 2, Y: 2}}},
			},
		},
	}

	var buf bytes.Buffer
	err := SVG(&buf, results, roadview.Canvas{Width: 100, Height: 100}, DefaultOptions())
	require.NoError(t, err)

	out := buf.String()
	// the name must stay inside the quoted id attribute.
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "&#34;")
}

func TestSVGEmptyResults(t *testing.T) {
	var buf bytes.Buffer
	err := SVG(&buf, nil, roadview.Canvas{Width: 10, Height: 10}, DefaultOptions())
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, "<svg")
	assert.NotContains(t, out, "<polyline")
}
