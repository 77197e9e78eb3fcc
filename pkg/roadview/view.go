package roadview

import (
	"fmt"

	"github.com/FraserParlane/road-names/pkg/geo"
)

// View is a named way filter: a way matches when it carries every required
// tag and none of the forbidden ones. A view with no criteria matches
// every way in the document.
type View struct {
	Name      string
	Required  []Tag
	Forbidden []Tag
}

func NewView(name string, required, forbidden []Tag) View {
	return View{
		Name:      name,
		Required:  required,
		Forbidden: forbidden,
	}
}

func (v View) Evaluate(way geo.OSMWay) bool {
	return HasAll(way.TagMap, v.Required) && HasNone(way.TagMap, v.Forbidden)
}

// ViewsForKey builds one view per value of a fixed key, e.g. one view per
// highway class. A shortcut for classifying a document along one tag axis.
func ViewsForKey(key string, values []string) []View {
	views := make([]View, 0, len(values))
	for _, value := range values {
		views = append(views, NewView(
			fmt.Sprintf("%s=%s", key, value),
			[]Tag{NewTagValue(key, value)},
			nil,
		))
	}
	return views
}
