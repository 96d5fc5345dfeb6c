package cli

import (
	"strings"
	"testing"

	"github.com/Kaper156/pygedcom/pkg/gedcom"
)

const exportSample = `0 HEAD
0 @I1@ INDI
1 NAME John /Doe/
0 @I2@ INDI
1 NAME Jane /Doe/
0 @F1@ FAM
1 HUSB @I1@
1 WIFE @I2@
0 TRLR
`

func TestExportTextGedcomRoundTrip(t *testing.T) {
	c := newTestCLI(t)
	out, cached, err := c.exportText(exportSample, &exportOpts{format: gedcom.FormatGedcom, emptyFields: true})
	if err != nil {
		t.Fatalf("exportText: %v", err)
	}
	if cached {
		t.Error("first export should not be cached")
	}
	if out != exportSample {
		t.Errorf("round trip mismatch:\n%s", out)
	}
}

func TestExportTextJSON(t *testing.T) {
	c := newTestCLI(t)
	out, _, err := c.exportText(exportSample, &exportOpts{format: gedcom.FormatJSON, emptyFields: true})
	if err != nil {
		t.Fatalf("exportText: %v", err)
	}
	if !strings.Contains(out, `"@I1@"`) {
		t.Errorf("JSON export missing individual:\n%s", out)
	}
}

func TestExportTextDOT(t *testing.T) {
	c := newTestCLI(t)
	out, _, err := c.exportText(exportSample, &exportOpts{format: formatDOT})
	if err != nil {
		t.Fatalf("exportText: %v", err)
	}
	if !strings.Contains(out, "digraph") {
		t.Errorf("DOT export malformed:\n%s", out)
	}
}

func TestExportTextCacheHit(t *testing.T) {
	c := newTestCLI(t)
	c.Config.Cache.Backend = "file"
	c.Config.Cache.Dir = t.TempDir()

	opts := &exportOpts{format: gedcom.FormatJSON, emptyFields: true}
	if _, cached, err := c.exportText(exportSample, opts); err != nil || cached {
		t.Fatalf("first export: cached=%v err=%v", cached, err)
	}
	out, cached, err := c.exportText(exportSample, opts)
	if err != nil {
		t.Fatalf("second export: %v", err)
	}
	if !cached {
		t.Error("second export should be cached")
	}
	if !strings.Contains(out, `"@I1@"`) {
		t.Errorf("cached export malformed:\n%s", out)
	}
}

func TestRunExportUnknownFormat(t *testing.T) {
	c := newTestCLI(t)
	if err := c.runExport("whatever.ged", &exportOpts{format: "xml"}); err == nil {
		t.Fatal("unknown format should error")
	}
}
