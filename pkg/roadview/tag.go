package roadview

// Tag is a single selection criterion against a way's tag map. An empty
// Value matches any value for the key.
type Tag struct {
	Key   string
	Value string
}

func NewTag(key string) Tag {
	return Tag{Key: key}
}

func NewTagValue(key, value string) Tag {
	return Tag{Key: key, Value: value}
}

func (t Tag) Matches(tags map[string]string) bool {
	value, ok := tags[t.Key]
	if !ok {
		return false
	}
	if t.Value == "" {
		return true
	}
	return value == t.Value
}

// HasAll reports whether every criterion matches the way's tags.
// Vacuously true for an empty criteria list.
func HasAll(tags map[string]string, criteria []Tag) bool {
	for _, c := range criteria {
		if !c.Matches(tags) {
			return false
		}
	}
	return true
}

// HasNone reports whether no criterion matches the way's tags.
func HasNone(tags map[string]string, criteria []Tag) bool {
	for _, c := range criteria {
		if c.Matches(tags) {
			return false
		}
	}
	return true
}
