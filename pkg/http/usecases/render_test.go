package usecases

import (
	"context"
	"strings"
	"testing"

	"github.com/FraserParlane/road-names/pkg/geo"
	"github.com/FraserParlane/road-names/pkg/kvdb"
	"github.com/FraserParlane/road-names/pkg/roadview"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

var sampleOSM = []byte(`<?xml version="1.0" encoding="UTF-8"?>
<osm version="0.6" generator="test">
 <node id="1" lat="49.2750" lon="-123.1500"/>
 <node id="2" lat="49.2760" lon="-123.1490"/>
 <node id="3" lat="49.2770" lon="-123.1480"/>
 <way id="100">
  <nd ref="1"/>
  <nd ref="2"/>
  <nd ref="3"/>
  <tag k="highway" v="residential"/>
 </way>
</osm>`)

type stubProvider struct {
	raw   []byte
	calls int
}

func (p *stubProvider) MapData(ctx context.Context, box geo.GeoBox) ([]byte, error) {
	p.calls++
	return p.raw, nil
}

type memCache struct {
	entries map[string][]roadview.ViewResult
}

func newMemCache() *memCache {
	return &memCache{entries: make(map[string][]roadview.ViewResult)}
}

func (c *memCache) SaveRender(key string, results []roadview.ViewResult) error {
	c.entries[key] = results
	return nil
}

func (c *memCache) GetRender(key string) ([]roadview.ViewResult, error) {
	results, ok := c.entries[key]
	if !ok {
		return nil, kvdb.ErrorsKeyNotExists
	}
	return results, nil
}

func TestRenderSVG(t *testing.T) {
	box, err := geo.NewGeoBox(-123.1565, -123.1381, 49.2721, 49.281)
	require.NoError(t, err)

	provider := &stubProvider{raw: sampleOSM}
	cache := newMemCache()
	service := New(zap.NewNop(), provider, cache)

	params := RenderParams{Box: box, CanvasWidth: 1000}

	t.Run("renders matched ways as polylines", func(t *testing.T) {
		svg, err := service.RenderSVG(context.Background(), params)
		require.NoError(t, err)

		out := string(svg)
		assert.Contains(t, out, "<svg")
		assert.Equal(t, 1, strings.Count(out, "<polyline"))
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("second render comes from the cache", func(t *testing.T) {
		first, err := service.RenderSVG(context.Background(), params)
		require.NoError(t, err)
		second, err := service.RenderSVG(context.Background(), params)
		require.NoError(t, err)

		assert.Equal(t, first, second)
		assert.Equal(t, 1, provider.calls)
	})

	t.Run("per class views render separately", func(t *testing.T) {
		svg, err := service.RenderSVG(context.Background(), RenderParams{
			Box:            box,
			CanvasWidth:    500,
			HighwayClasses: []string{"residential", "service"},
		})
		require.NoError(t, err)

		out := string(svg)
		assert.Contains(t, out, `id="highway=residential"`)
		assert.Contains(t, out, `id="highway=service"`)
		assert.Equal(t, 1, strings.Count(out, "<polyline"))
	})
}
