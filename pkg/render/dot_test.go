package render

import (
	"strings"
	"testing"

	"github.com/Kaper156/pygedcom/pkg/gedcom"
)

const sample = `0 @I1@ INDI
1 NAME John /Doe/
1 BIRT
2 DATE 1 JAN 1900
0 @I2@ INDI
1 NAME Jane /Doe/
0 @I3@ INDI
1 NAME Junior /Doe/
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
1 CHIL @I3@
0 TRLR
`

func parseSample(t *testing.T) *gedcom.Parser {
	t.Helper()
	p := gedcom.NewParser()
	if err := p.Parse(sample); err != nil {
		t.Fatalf("Parse: %v", err)
	}
	return p
}

func TestToDOT(t *testing.T) {
	dot := ToDOT(parseSample(t), Options{})

	for _, want := range []string{
		`"@I1@" [label="John Doe"]`,
		`"@F1@" [shape=point`,
		`"@I1@" -> "@F1@" [dir=none]`,
		`"@I2@" -> "@F1@" [dir=none]`,
		`"@F1@" -> "@I3@"`,
	} {
		if !strings.Contains(dot, want) {
			t.Errorf("DOT missing %q:\n%s", want, dot)
		}
	}
}

func TestToDOTDetailed(t *testing.T) {
	dot := ToDOT(parseSample(t), Options{Detailed: true})

	if !strings.Contains(dot, "* 1 JAN 1900") {
		t.Errorf("detailed DOT missing birth date:\n%s", dot)
	}
	// Individuals without events keep plain name labels.
	if !strings.Contains(dot, `"@I2@" [label="Jane Doe"]`) {
		t.Errorf("plain label missing:\n%s", dot)
	}
}
