// Package gedcom parses genealogical records stored in the line-oriented,
// level-indented GEDCOM text format into an in-memory tree and serializes
// that tree back out without losing any captured data.
//
// # Pipeline
//
// Raw text flows through three stages:
//
//	text → ParseLine (tokenizer) → Element tree (level grouping) → records
//
// Each non-blank line is tokenized into (level, optional xref, tag, value).
// Level numbers act as a nesting signal: a line at level N+1 is a child of
// the preceding line at level N. Level-0 lines open top-level records, which
// the [Parser] dispatches by tag into specialized record types (individual,
// family, source, ...). Specialization wraps an already-built [Element] and
// caches derived fields; children are never re-parsed.
//
// # Export
//
// [Parser.Export] supports two lossless targets: a nested JSON mapping keyed
// by collection and cross-reference id, and a byte-for-byte reconstitution of
// the original GEDCOM line format (modulo blank lines).
//
// # Validation
//
// [Verify] is a separate read-only structural pre-check. [Parser.Parse] does
// not enforce level consistency itself; callers wanting strict validation
// should verify first.
//
// # Example
//
//	p := gedcom.NewParser()
//	if res := gedcom.Verify(data); res.Status != gedcom.StatusOK {
//	    log.Fatal(res.Message)
//	}
//	if err := p.Parse(data); err != nil {
//	    log.Fatal(err)
//	}
//	out, err := p.Export(gedcom.FormatJSON, true)
package gedcom
