package geo

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// small vancouver test area, same box the plotting scripts use.
var vancouver = []float64{-123.1565, -123.1381, 49.2721, 49.281}

func TestNewGeoBox(t *testing.T) {
	t.Run("valid bounds", func(t *testing.T) {
		box, err := NewGeoBox(vancouver[0], vancouver[1], vancouver[2], vancouver[3])
		require.NoError(t, err)

		assert.Greater(t, box.LonSpan, 0.0)
		assert.Greater(t, box.LatSpan, 0.0)
		assert.Greater(t, box.HeightToWidthRatio, 0.0)
		assert.InDelta(t, -123.1473, box.LonMid, 1e-6)
		assert.InDelta(t, 49.27655, box.LatMid, 1e-6)
		assert.Greater(t, box.LonScale, 0.0)
		assert.LessOrEqual(t, box.LonScale, 1.0)
	})

	t.Run("lon min >= lon max", func(t *testing.T) {
		_, err := NewGeoBox(10, 10, 0, 1)
		assert.ErrorIs(t, err, ErrInvalidBounds)

		_, err = NewGeoBox(11, 10, 0, 1)
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})

	t.Run("lat min >= lat max", func(t *testing.T) {
		_, err := NewGeoBox(0, 1, 50, 49)
		assert.ErrorIs(t, err, ErrInvalidBounds)
	})
}

func TestGeoBoxID(t *testing.T) {
	t.Run("id is deterministic for equal bounds", func(t *testing.T) {
		a, err := NewGeoBox(vancouver[0], vancouver[1], vancouver[2], vancouver[3])
		require.NoError(t, err)
		b, err := NewGeoBox(vancouver[0], vancouver[1], vancouver[2], vancouver[3])
		require.NoError(t, err)

		assert.Equal(t, a.ID(), b.ID())
		assert.Equal(t, "-123.1565_-123.1381_49.2721_49.2810", a.ID())
	})

	t.Run("different bounds give different ids", func(t *testing.T) {
		a, err := NewGeoBox(-123.27, -123.13, 49.23, 49.28)
		require.NoError(t, err)
		b, err := NewGeoBox(-123.2901, -123.0007, 49.2296, 49.3692)
		require.NoError(t, err)

		assert.NotEqual(t, a.ID(), b.ID())
	})
}

func TestGeoBoxBBoxParam(t *testing.T) {
	box, err := NewGeoBox(vancouver[0], vancouver[1], vancouver[2], vancouver[3])
	require.NoError(t, err)
	assert.Equal(t, "-123.1565,49.2721,-123.1381,49.2810", box.BBoxParam())
}

func TestGeoBoxCanvasHeight(t *testing.T) {
	box, err := NewGeoBox(vancouver[0], vancouver[1], vancouver[2], vancouver[3])
	require.NoError(t, err)

	h := box.CanvasHeight(1000)
	assert.Greater(t, h, 0)
	assert.InDelta(t, 1000*box.HeightToWidthRatio, float64(h), 0.5)
}
