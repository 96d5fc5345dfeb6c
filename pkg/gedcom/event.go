package gedcom

// Event is a life event (birth, death, marriage) derived from a generic
// element: the occurrence date, the place value, and coordinates when the
// place carries a MAP subtree.
type Event struct {
	*Element
	Date        *Date
	Place       string
	Coordinates *Map
}

// newEvent wraps an already-built event element (BIRT, DEAT, MARR) and
// derives its fields from direct children. The element's children are reused
// as-is; nothing is re-parsed.
func newEvent(el *Element) *Event {
	ev := &Event{Element: el}
	if d := el.firstSub("DATE"); d != nil {
		ev.Date = newDate(d)
	}
	if plac := el.firstSub("PLAC"); plac != nil {
		ev.Place = plac.Value
		if m := plac.firstSub("MAP"); m != nil {
			ev.Coordinates = newMap(m)
		}
	}
	return ev
}

// Data returns the event's semantic fields. An absent date or map is the
// empty string, matching the exporter's placeholder convention.
func (e *Event) Data() map[string]any {
	data := map[string]any{
		"date":  emptyPlaceholder,
		"place": e.Place,
		"map":   emptyPlaceholder,
	}
	if e.Date != nil {
		data["date"] = e.Date.Data()
	}
	if e.Coordinates != nil {
		data["map"] = e.Coordinates.Data()
	}
	return data
}
