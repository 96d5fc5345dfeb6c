package gedcom

import (
	"encoding/json"
	"testing"

	"github.com/Kaper156/pygedcom/pkg/errors"
)

func TestExportGedcomRoundTrip(t *testing.T) {
	p := NewParser()
	if err := p.Parse(sampleFamily); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := p.Export(FormatGedcom, true)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	if out != sampleFamily {
		t.Errorf("round trip mismatch:\ngot:\n%s\nwant:\n%s", out, sampleFamily)
	}
}

func TestExportGedcomRoundTripBlankLines(t *testing.T) {
	p := NewParser()
	withBlanks := "0 HEAD\n\n1 SOUR pygedcom\n\n0 TRLR\n\n"
	if err := p.Parse(withBlanks); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	out, err := p.Export(FormatGedcom, true)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	want := "0 HEAD\n1 SOUR pygedcom\n0 TRLR\n"
	if out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func decodeExport(t *testing.T, p *Parser, emptyFields bool) map[string]any {
	t.Helper()
	out, err := p.Export(FormatJSON, emptyFields)
	if err != nil {
		t.Fatalf("Export: %v", err)
	}
	var result map[string]any
	if err := json.Unmarshal([]byte(out), &result); err != nil {
		t.Fatalf("unmarshal export: %v", err)
	}
	return result
}

func TestExportJSON(t *testing.T) {
	p := NewParser()
	if err := p.Parse(sampleFamily); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	result := decodeExport(t, p, true)

	individuals := result["individuals"].(map[string]any)
	john := individuals["@I1@"].(map[string]any)
	if john["name"] != "John /Travolta/" {
		t.Errorf("name = %v", john["name"])
	}
	if john["first_name"] != "John" || john["last_name"] != "Travolta" {
		t.Errorf("split = (%v, %v)", john["first_name"], john["last_name"])
	}
	if john["sex"] != "M" {
		t.Errorf("sex = %v", john["sex"])
	}

	birth := john["birth"].(map[string]any)
	date := birth["date"].(map[string]any)
	if date["day"] != "1" || date["month"] != "JAN" || date["year"] != "1900" {
		t.Errorf("birth date = %v", date)
	}
	if birth["place"] != "Paris, France" {
		t.Errorf("birth place = %v", birth["place"])
	}

	// Bobby has no events: placeholders are empty strings, sex is null.
	bobby := individuals["@I3@"].(map[string]any)
	if bobby["birth"] != "" || bobby["death"] != "" {
		t.Errorf("absent events should export as empty strings: %v, %v", bobby["birth"], bobby["death"])
	}
	if bobby["sex"] != nil {
		t.Errorf("absent sex should export as null, got %v", bobby["sex"])
	}

	families := result["families"].(map[string]any)
	fam := families["@F1@"].(map[string]any)
	if fam["husband"] != "@I1@" || fam["wife"] != "@I2@" {
		t.Errorf("family parents = (%v, %v)", fam["husband"], fam["wife"])
	}
	children := fam["children"].([]any)
	if len(children) != 1 || children[0] != "@I3@" {
		t.Errorf("family children = %v", children)
	}
	marriage := fam["marriage"].(map[string]any)
	mdate := marriage["date"].(map[string]any)
	if mdate["day"] != "01" || mdate["month"] != "JAN" || mdate["year"] != "1925" {
		t.Errorf("marriage date = %v", mdate)
	}

	// Empty collections are present as placeholders by default.
	for _, col := range []string{"sources", "objects", "repositories"} {
		if _, ok := result[col]; !ok {
			t.Errorf("collection %s missing with emptyFields=true", col)
		}
	}
}

func TestExportJSONOmitsEmptyFields(t *testing.T) {
	p := NewParser()
	if err := p.Parse(sampleFamily); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	result := decodeExport(t, p, false)

	for _, col := range []string{"sources", "objects", "repositories"} {
		if _, ok := result[col]; ok {
			t.Errorf("empty collection %s should be omitted", col)
		}
	}

	individuals := result["individuals"].(map[string]any)
	bobby := individuals["@I3@"].(map[string]any)
	for _, field := range []string{"birth", "death", "sex", "media"} {
		if _, ok := bobby[field]; ok {
			t.Errorf("empty field %s should be omitted", field)
		}
	}
	if bobby["name"] != "Bobby /Travolta/" {
		t.Errorf("non-empty field dropped: %v", bobby)
	}
}

func TestExportUnsupportedFormat(t *testing.T) {
	p := NewParser()
	if err := p.Parse(sampleFamily); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	_, err := p.Export("xml", true)
	if err == nil {
		t.Fatal("expected error for unsupported format")
	}
	if !errors.Is(err, errors.ErrCodeInvalidFormat) {
		t.Errorf("error code = %s, want INVALID_FORMAT", errors.GetCode(err))
	}
}

func TestRemoveIndividualExport(t *testing.T) {
	p := NewParser()
	if err := p.Parse(sampleFamily); err != nil {
		t.Fatalf("Parse: %v", err)
	}

	p.RemoveIndividual("@I1@")
	result := decodeExport(t, p, true)

	individuals := result["individuals"].(map[string]any)
	if len(individuals) != 2 {
		t.Errorf("individuals = %d, want 2", len(individuals))
	}
	if _, ok := individuals["@I1@"]; ok {
		t.Error("@I1@ still exported after removal")
	}

	fam := result["families"].(map[string]any)["@F1@"].(map[string]any)
	if fam["husband"] != "" {
		t.Errorf("husband = %v, want empty", fam["husband"])
	}
	if fam["wife"] != "@I2@" {
		t.Errorf("wife = %v, want @I2@", fam["wife"])
	}
	children := fam["children"].([]any)
	if len(children) != 1 || children[0] != "@I3@" {
		t.Errorf("children = %v", children)
	}
	mdate := fam["marriage"].(map[string]any)["date"].(map[string]any)
	if mdate["day"] != "01" || mdate["month"] != "JAN" || mdate["year"] != "1925" {
		t.Errorf("marriage date = %v", mdate)
	}
}
