package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Kaper156/pygedcom/pkg/errors"
	"github.com/Kaper156/pygedcom/pkg/gedcom"
)

// removeCommand creates the remove command for deleting individuals.
func (c *CLI) removeCommand() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "remove <file> <xref>",
		Short: "Remove an individual and clean up family references",
		Long: `Remove an individual from a GEDCOM file.

Families that referenced the individual as husband or wife have that
reference cleared. The result is written as GEDCOM text.

Examples:
  gedcom remove family.ged @I3@ -o pruned.ged`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			input, xref := args[0], args[1]
			if err := errors.ValidateXRef(xref); err != nil {
				return err
			}

			p, _, err := loadParser(input)
			if err != nil {
				return err
			}
			if p.FindIndividual(xref) == nil {
				return errors.New(errors.ErrCodeNotFound, "individual %s not found in %s", xref, input)
			}

			p.RemoveIndividual(xref)
			out, err := p.Export(gedcom.FormatGedcom, true)
			if err != nil {
				return err
			}

			w, err := openOutput(output)
			if err != nil {
				return err
			}
			defer w.Close()
			if _, err := fmt.Fprint(w, out); err != nil {
				return err
			}

			if output != "" {
				printSuccess("Removed %s", xref)
				printFile(output)
			}
			return nil
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (stdout if empty)")

	return cmd
}
