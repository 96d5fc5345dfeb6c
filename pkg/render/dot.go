// Package render draws family trees as node-link diagrams.
//
// Individuals become boxes, families become small junction nodes: each parent
// links to the family junction and the junction links to every child. The DOT
// output can be rasterized with [RenderSVG] and converted further with
// [ToPNG] or [ToPDF].
package render

import (
	"bytes"
	"context"
	"fmt"
	"strings"

	"github.com/goccy/go-graphviz"

	"github.com/Kaper156/pygedcom/pkg/gedcom"
)

// Options configures family tree rendering.
type Options struct {
	// Detailed includes birth and death dates in node labels.
	// When false, only the individual's name is shown.
	Detailed bool
}

// ToDOT converts parsed individuals and families to Graphviz DOT format.
// The resulting DOT string can be rendered with [RenderSVG].
func ToDOT(p *gedcom.Parser, opts Options) string {
	var buf bytes.Buffer
	buf.WriteString("digraph G {\n")
	buf.WriteString("  rankdir=TB;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fillcolor=white, fontsize=14, margin=\"0.2,0.1\"];\n")
	buf.WriteString("  ranksep=0.6;\n")
	buf.WriteString("  nodesep=0.3;\n")
	buf.WriteString("\n")

	for _, ind := range p.Individuals {
		fmt.Fprintf(&buf, "  %q [label=%q];\n", ind.XRef, fmtLabel(ind, opts.Detailed))
	}

	buf.WriteString("\n")
	for _, fam := range p.Families {
		// Family junction point; parents feed in, children hang off.
		fmt.Fprintf(&buf, "  %q [shape=point, width=0.1, fillcolor=black];\n", fam.XRef)
		for _, parent := range fam.Parents() {
			fmt.Fprintf(&buf, "  %q -> %q [dir=none];\n", parent, fam.XRef)
		}
		for _, child := range fam.Children {
			fmt.Fprintf(&buf, "  %q -> %q;\n", fam.XRef, child)
		}
	}

	buf.WriteString("}\n")
	return buf.String()
}

func fmtLabel(ind *gedcom.Individual, detailed bool) string {
	name := strings.TrimSpace(ind.String())
	if name == "" {
		name = ind.XRef
	}
	if !detailed {
		return name
	}

	var parts []string
	if ind.Birth != nil && ind.Birth.Date != nil {
		parts = append(parts, "* "+ind.Birth.Date.String())
	}
	if ind.Death != nil && ind.Death.Date != nil {
		parts = append(parts, "+ "+ind.Death.Date.String())
	}
	if len(parts) == 0 {
		return name
	}
	return name + "\n" + strings.Join(parts, "\n")
}

// RenderSVG renders a DOT graph to SVG using Graphviz.
func RenderSVG(dot string) ([]byte, error) {
	ctx := context.Background()
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
