package gedcom

import (
	"bytes"
	"encoding/json"
	"strings"

	"github.com/Kaper156/pygedcom/pkg/errors"
)

// Export formats accepted by [Parser.Export].
const (
	FormatJSON   = "json"
	FormatGedcom = "gedcom"
)

// emptyPlaceholder stands in for an absent nested record (event, date, map)
// in exported data.
const emptyPlaceholder = ""

// Export serializes the parsed tree to the requested format.
//
// FormatJSON produces a nested mapping keyed by collection name and
// cross-reference id, 4-space indented, non-ASCII preserved. FormatGedcom
// reconstitutes the original line format, terminated by "0 TRLR". When
// emptyFields is false, empty values and empty collections are omitted from
// the JSON output instead of being included as placeholders.
//
// Any other format value fails with an INVALID_FORMAT error.
func (p *Parser) Export(format string, emptyFields bool) (string, error) {
	switch format {
	case FormatJSON:
		return p.exportJSON(emptyFields)
	case FormatGedcom:
		return p.exportGedcom(), nil
	default:
		return "", errors.New(errors.ErrCodeInvalidFormat, "format %q is not supported", format)
	}
}

func (p *Parser) exportJSON(emptyFields bool) (string, error) {
	out := map[string]any{}

	if emptyFields || p.Head != nil {
		out["head"] = any(emptyPlaceholder)
		if p.Head != nil {
			out["head"] = recordData(p.Head.Data(), emptyFields)
		}
	}
	if emptyFields || len(p.Individuals) > 0 {
		col := map[string]any{}
		for _, ind := range p.Individuals {
			col[ind.XRef] = recordData(ind.Data(), emptyFields)
		}
		out["individuals"] = col
	}
	if emptyFields || len(p.Families) > 0 {
		col := map[string]any{}
		for _, fam := range p.Families {
			col[fam.XRef] = recordData(fam.Data(), emptyFields)
		}
		out["families"] = col
	}
	if emptyFields || len(p.Sources) > 0 {
		col := map[string]any{}
		for _, src := range p.Sources {
			col[src.XRef] = recordData(src.Data(), emptyFields)
		}
		out["sources"] = col
	}
	if emptyFields || len(p.Objects) > 0 {
		col := map[string]any{}
		for _, obj := range p.Objects {
			col[obj.XRef] = recordData(obj.Data(), emptyFields)
		}
		out["objects"] = col
	}
	if emptyFields || len(p.Repositories) > 0 {
		col := map[string]any{}
		for _, repo := range p.Repositories {
			col[repo.XRef] = recordData(repo.Data(), emptyFields)
		}
		out["repositories"] = col
	}

	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	enc.SetIndent("", "    ")
	if err := enc.Encode(out); err != nil {
		return "", errors.Wrap(errors.ErrCodeInternal, err, "encode export")
	}
	return strings.TrimSuffix(buf.String(), "\n"), nil
}

// exportGedcom walks every top-level record depth-first in collection order
// and reconstitutes the original line format.
func (p *Parser) exportGedcom() string {
	var sb strings.Builder
	if p.Head != nil {
		sb.WriteString(p.Head.Gedcom())
	}
	for _, ind := range p.Individuals {
		sb.WriteString(ind.Gedcom())
	}
	for _, fam := range p.Families {
		sb.WriteString(fam.Gedcom())
	}
	for _, src := range p.Sources {
		sb.WriteString(src.Gedcom())
	}
	for _, obj := range p.Objects {
		sb.WriteString(obj.Gedcom())
	}
	for _, repo := range p.Repositories {
		sb.WriteString(repo.Gedcom())
	}
	sb.WriteString("0 " + TagTrailer + "\n")
	return sb.String()
}

// recordData prepares a record's data mapping for export, stripping empty
// values recursively when emptyFields is false.
func recordData(data map[string]any, emptyFields bool) map[string]any {
	if emptyFields {
		return data
	}
	out := map[string]any{}
	for k, v := range data {
		if nested, ok := v.(map[string]any); ok {
			v = recordData(nested, false)
		}
		if isEmptyValue(v) {
			continue
		}
		out[k] = v
	}
	return out
}

func isEmptyValue(v any) bool {
	switch t := v.(type) {
	case nil:
		return true
	case string:
		return t == ""
	case []string:
		return len(t) == 0
	case map[string]any:
		return len(t) == 0
	}
	return false
}

// nilIfEmpty maps the empty string to nil so absent optional fields export
// as JSON null.
func nilIfEmpty(s string) any {
	if s == "" {
		return nil
	}
	return s
}

// stringList guarantees a non-nil slice so empty lists export as [] rather
// than null.
func stringList(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
