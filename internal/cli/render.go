package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kaper156/pygedcom/pkg/errors"
	"github.com/Kaper156/pygedcom/pkg/render"
)

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output   string  // output file path (derived from input if empty)
	format   string  // "svg", "pdf", or "png"
	detailed bool    // include birth and death details in labels
	scale    float64 // raster scale factor for PNG
}

// renderCommand creates the render command for family tree visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	opts := renderOpts{format: "svg", scale: 2.0}

	cmd := &cobra.Command{
		Use:   "render <file>",
		Short: "Render a GEDCOM family tree as SVG, PDF, or PNG",
		Long: `Render a GEDCOM family tree as a Graphviz diagram.

Individuals are drawn as boxes, families as junction points between
parents and children.

PDF and PNG output require rsvg-convert (librsvg) on the PATH.

Examples:
  gedcom render family.ged
  gedcom render family.ged --format png -o tree.png
  gedcom render family.ged --detailed`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runRender(args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (derived from input if empty)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: svg, pdf, png")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "include birth and death details in labels")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "raster scale factor for PNG output")

	return cmd
}

func (c *CLI) runRender(input string, opts *renderOpts) error {
	p, _, err := loadParser(input)
	if err != nil {
		return err
	}

	prog := newProgress(c.Logger)
	dot := render.ToDOT(p, render.Options{Detailed: opts.detailed})
	svg, err := render.RenderSVG(dot)
	if err != nil {
		return err
	}

	var data []byte
	switch opts.format {
	case "svg":
		data = svg
	case "pdf":
		if data, err = render.ToPDF(svg); err != nil {
			return err
		}
	case "png":
		if data, err = render.ToPNG(svg, opts.scale); err != nil {
			return err
		}
	default:
		return errors.New(errors.ErrCodeInvalidFormat, "unknown format: %s (must be 'svg', 'pdf', or 'png')", opts.format)
	}
	prog.done(fmt.Sprintf("Rendered %d individuals and %d families", len(p.Individuals), len(p.Families)))

	path := outputPath(opts.output, input, opts.format)
	w, err := openOutput(path)
	if err != nil {
		return err
	}
	defer w.Close()
	if _, err := w.Write(data); err != nil {
		return err
	}

	printSuccess("Rendered %s", input)
	printFile(path)
	return nil
}
