package gedcom

import "strings"

// Date is a DATE element decomposed into optional day, month and year
// components. Decomposition is positional: a 3-token value is day+month+year,
// a 2-token value is month+year, a single token is year only. Any other shape
// leaves all components empty and the raw value untouched.
type Date struct {
	*Element
	Day   string
	Month string
	Year  string
}

// newDate wraps an already-built DATE element and decomposes its value.
func newDate(el *Element) *Date {
	d := &Date{Element: el}
	tokens := strings.Fields(el.Value)
	switch len(tokens) {
	case 3:
		d.Day, d.Month, d.Year = tokens[0], tokens[1], tokens[2]
	case 2:
		d.Month, d.Year = tokens[0], tokens[1]
	case 1:
		d.Year = tokens[0]
	}
	return d
}

// String reconstitutes the textual form from the decomposed components.
// For the three recognized shapes this reproduces the exact input; values
// that did not decompose are returned verbatim.
func (d *Date) String() string {
	parts := make([]string, 0, 3)
	for _, p := range []string{d.Day, d.Month, d.Year} {
		if p != "" {
			parts = append(parts, p)
		}
	}
	if len(parts) == 0 {
		return d.Value
	}
	return strings.Join(parts, " ")
}

// Data returns the date's semantic fields. Absent components are nil.
func (d *Date) Data() map[string]any {
	return map[string]any{
		"day":   nilIfEmpty(d.Day),
		"month": nilIfEmpty(d.Month),
		"year":  nilIfEmpty(d.Year),
	}
}
