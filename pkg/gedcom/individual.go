package gedcom

import "strings"

// Individual is a top-level INDI record with its derived fields cached at
// construction time.
type Individual struct {
	*Element
	Name      string
	FirstName string
	LastName  string
	Sex       string // empty when no SEX child is present
	Birth     *Event // nil when no BIRT child is present
	Death     *Event // nil when no DEAT child is present
	Media     []string
}

// NewIndividual wraps an already-built top-level element as an individual.
// Derived fields are read once from direct children via SubElements and are
// immutable afterwards, except for removal bookkeeping on families.
func NewIndividual(el *Element) *Individual {
	ind := &Individual{Element: el}
	ind.Name = el.firstValue("NAME")
	ind.FirstName = firstNameOf(ind.Name)
	ind.LastName = lastNameOf(ind.Name)
	ind.Sex = el.firstValue("SEX")
	if b := el.firstSub("BIRT"); b != nil {
		ind.Birth = newEvent(b)
	}
	if d := el.firstSub("DEAT"); d != nil {
		ind.Death = newEvent(d)
	}
	for _, obj := range el.SubElements("OBJE") {
		ind.Media = append(ind.Media, obj.Value)
	}
	return ind
}

// firstNameOf takes the first space-separated token before the first '/'.
func firstNameOf(name string) string {
	return strings.TrimSpace(strings.SplitN(strings.Split(name, "/")[0], " ", 2)[0])
}

// lastNameOf takes the token immediately before the last '/'. A name without
// any '/' yields the empty string; a name with a single '/' yields whatever
// token occupies that position. This replicates the upstream surname policy,
// quirks included.
func lastNameOf(name string) string {
	parts := strings.Split(name, "/")
	if len(parts) < 2 {
		return ""
	}
	return strings.TrimSpace(parts[len(parts)-2])
}

// String renders the individual as "First Last".
func (i *Individual) String() string {
	return i.FirstName + " " + i.LastName
}

// Data returns the individual's semantic fields. Absent events are the empty
// string; an absent sex is nil.
func (i *Individual) Data() map[string]any {
	data := map[string]any{
		"name":       i.Name,
		"first_name": i.FirstName,
		"last_name":  i.LastName,
		"sex":        nilIfEmpty(i.Sex),
		"birth":      emptyPlaceholder,
		"death":      emptyPlaceholder,
		"media":      stringList(i.Media),
	}
	if i.Birth != nil {
		data["birth"] = i.Birth.Data()
	}
	if i.Death != nil {
		data["death"] = i.Death.Data()
	}
	return data
}
