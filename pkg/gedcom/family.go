package gedcom

// Family is a top-level FAM record linking individuals by their
// cross-reference ids. The reference fields are string keys resolved through
// the parser's lookup functions, not ownership edges.
type Family struct {
	*Element
	Husband  string // xref of the first HUSB child, empty when absent
	Wife     string // xref of the first WIFE child, empty when absent
	Children []string
	Marriage *Event // nil when no MARR child is present
}

// NewFamily wraps an already-built top-level element as a family.
func NewFamily(el *Element) *Family {
	fam := &Family{
		Element: el,
		Husband: el.firstValue("HUSB"),
		Wife:    el.firstValue("WIFE"),
	}
	for _, c := range el.SubElements("CHIL") {
		fam.Children = append(fam.Children, c.Value)
	}
	if m := el.firstSub("MARR"); m != nil {
		fam.Marriage = newEvent(m)
	}
	return fam
}

// Parents returns the non-empty parent references of the family.
func (f *Family) Parents() []string {
	var out []string
	if f.Husband != "" {
		out = append(out, f.Husband)
	}
	if f.Wife != "" {
		out = append(out, f.Wife)
	}
	return out
}

// HasChild reports whether xref appears in the family's children references.
func (f *Family) HasChild(xref string) bool {
	for _, c := range f.Children {
		if c == xref {
			return true
		}
	}
	return false
}

// Data returns the family's semantic fields. An absent marriage is the empty
// string.
func (f *Family) Data() map[string]any {
	data := map[string]any{
		"husband":  f.Husband,
		"wife":     f.Wife,
		"children": stringList(f.Children),
		"marriage": emptyPlaceholder,
	}
	if f.Marriage != nil {
		data["marriage"] = f.Marriage.Data()
	}
	return data
}
