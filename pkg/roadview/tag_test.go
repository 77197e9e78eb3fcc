package roadview

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTagMatches(t *testing.T) {
	tags := map[string]string{
		"highway": "residential",
		"surface": "asphalt",
	}

	t.Run("key and value match", func(t *testing.T) {
		assert.True(t, NewTagValue("highway", "residential").Matches(tags))
	})

	t.Run("key only criterion matches any value", func(t *testing.T) {
		assert.True(t, NewTag("highway").Matches(tags))
		assert.True(t, NewTag("surface").Matches(tags))
	})

	t.Run("value mismatch", func(t *testing.T) {
		assert.False(t, NewTagValue("highway", "motorway").Matches(tags))
	})

	t.Run("missing key", func(t *testing.T) {
		assert.False(t, NewTag("railway").Matches(tags))
	})
}

func TestHasAllHasNone(t *testing.T) {
	tags := map[string]string{
		"highway": "residential",
		"surface": "asphalt",
	}

	t.Run("has all required", func(t *testing.T) {
		assert.True(t, HasAll(tags, []Tag{
			NewTagValue("highway", "residential"),
			NewTag("surface"),
		}))
		assert.False(t, HasAll(tags, []Tag{
			NewTagValue("highway", "residential"),
			NewTagValue("surface", "gravel"),
		}))
	})

	t.Run("has none forbidden", func(t *testing.T) {
		assert.True(t, HasNone(tags, []Tag{NewTagValue("surface", "gravel")}))
		assert.False(t, HasNone(tags, []Tag{NewTagValue("surface", "asphalt")}))
	})

	t.Run("empty criteria", func(t *testing.T) {
		assert.True(t, HasAll(tags, nil))
		assert.True(t, HasNone(tags, nil))
	})
}
