package gedcom

import "fmt"

// Map is a MAP element holding a latitude/longitude pair. Either component
// may be absent.
type Map struct {
	*Element
	Latitude  string
	Longitude string
}

// newMap wraps an already-built MAP element and derives its coordinates.
func newMap(el *Element) *Map {
	return &Map{
		Element:   el,
		Latitude:  el.firstValue("LATI"),
		Longitude: el.firstValue("LONG"),
	}
}

// String renders the coordinate pair for display.
func (m *Map) String() string {
	return fmt.Sprintf("Map: %s, %s", m.Latitude, m.Longitude)
}

// Data returns the coordinate fields. Absent components are nil.
func (m *Map) Data() map[string]any {
	return map[string]any{
		"latitude":  nilIfEmpty(m.Latitude),
		"longitude": nilIfEmpty(m.Longitude),
	}
}
