package cli

import (
	"github.com/spf13/cobra"

	"github.com/Kaper156/pygedcom/pkg/errors"
	"github.com/Kaper156/pygedcom/pkg/gedcom"
)

// verifyCommand creates the verify command for structural validation.
func (c *CLI) verifyCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "verify <file>",
		Short: "Check a GEDCOM file for structural errors",
		Long: `Check a GEDCOM file for structural errors without building a record tree.

A file is valid when every line parses and no line nests more than one
level deeper than the line before it.

Examples:
  gedcom verify family.ged`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			text, err := readSource(args[0])
			if err != nil {
				return err
			}

			result := gedcom.Verify(text)
			if result.Status != gedcom.StatusOK {
				printError("%s", result.Message)
				return errors.New(errors.ErrCodeInvalidStructure, "%s is not valid", args[0])
			}
			printSuccess("%s is valid", args[0])
			return nil
		},
	}
}
