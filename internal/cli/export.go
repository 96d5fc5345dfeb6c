package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kaper156/pygedcom/pkg/cache"
	"github.com/Kaper156/pygedcom/pkg/errors"
	"github.com/Kaper156/pygedcom/pkg/gedcom"
	"github.com/Kaper156/pygedcom/pkg/render"
)

// formatDOT is the Graphviz export format, on top of the parser's own formats.
const formatDOT = "dot"

// exportOpts holds the command-line flags for the export command.
type exportOpts struct {
	format      string // "json", "gedcom", or "dot"
	emptyFields bool   // include empty placeholders in JSON output
	output      string // output file path (stdout if empty)
	noCache     bool   // bypass the artifact cache
	detailed    bool   // include event details in DOT labels
}

// exportCommand creates the export command.
func (c *CLI) exportCommand() *cobra.Command {
	opts := exportOpts{format: c.Config.Export.Format, emptyFields: c.Config.Export.EmptyFields}

	cmd := &cobra.Command{
		Use:   "export <file>",
		Short: "Export a GEDCOM file as JSON, GEDCOM, or DOT",
		Long: `Export a parsed GEDCOM file in another representation.

Formats:
  json    structured export of all typed records
  gedcom  reconstituted GEDCOM text (round-trips the input)
  dot     Graphviz family tree graph

JSON and GEDCOM exports are cached by content hash; a changed file or
different options always produce a fresh export.

Examples:
  gedcom export family.ged
  gedcom export family.ged --format gedcom -o copy.ged
  gedcom export family.ged --format json --empty-fields=false`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExport(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: json, gedcom, dot")
	cmd.Flags().BoolVar(&opts.emptyFields, "empty-fields", opts.emptyFields, "include empty placeholders in JSON output")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (stdout if empty)")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "bypass the export cache")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include birth and death details in DOT labels")

	return cmd
}

func (c *CLI) runExport(input string, opts *exportOpts) error {
	switch opts.format {
	case gedcom.FormatJSON, gedcom.FormatGedcom, formatDOT:
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s (must be 'json', 'gedcom', or 'dot')", opts.format)
	}

	text, err := readSource(input)
	if err != nil {
		return err
	}

	out, cached, err := c.exportText(text, opts)
	if err != nil {
		return err
	}

	w, err := openOutput(opts.output)
	if err != nil {
		return err
	}
	defer w.Close()
	// JSON exports carry no trailing newline; GEDCOM and DOT already do.
	if opts.format == gedcom.FormatJSON {
		out += "\n"
	}
	if _, err := fmt.Fprint(w, out); err != nil {
		return err
	}

	if opts.output != "" {
		printSuccess("Exported %s", input)
		printFile(opts.output)
		printCacheStatus(cached)
	}
	return nil
}

// exportText produces the export for the given source text, consulting the
// artifact cache for the parser's own formats. DOT output is never cached
// since label detail is not part of the key.
func (c *CLI) exportText(text string, opts *exportOpts) (string, bool, error) {
	ctx := withLogger(context.Background(), c.Logger)

	if opts.format == formatDOT {
		p := gedcom.NewParser()
		if err := p.Parse(text); err != nil {
			return "", false, err
		}
		return render.ToDOT(p, render.Options{Detailed: opts.detailed}), false, nil
	}

	ac := c.newCache(opts.noCache)
	defer ac.Close()

	key := cache.ExportKey(cache.Hash([]byte(text)), opts.format, opts.emptyFields)
	if data, ok, err := ac.Get(ctx, key); err == nil && ok {
		return string(data), true, nil
	}

	p := gedcom.NewParser()
	if err := p.Parse(text); err != nil {
		return "", false, err
	}
	out, err := p.Export(opts.format, opts.emptyFields)
	if err != nil {
		return "", false, err
	}
	if err := ac.Set(ctx, key, []byte(out), c.cacheTTL()); err != nil {
		c.Logger.Warn("cache export", "err", err)
	}
	return out, false, nil
}
