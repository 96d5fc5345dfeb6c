package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// parseCommand creates the parse command showing collection statistics.
func (c *CLI) parseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "parse <file>",
		Short: "Parse a GEDCOM file and show record statistics",
		Long: `Parse a GEDCOM file into typed records and show what was found.

Records with unrecognized top-level tags are skipped.

Examples:
  gedcom parse family.ged`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			prog := newProgress(c.Logger)
			p, _, err := loadParser(args[0])
			if err != nil {
				return err
			}
			stats := p.Stats()
			prog.done(fmt.Sprintf("Parsed %d individuals and %d families", stats.Individuals, stats.Families))

			head := "None"
			if stats.Head {
				head = "OK"
			}
			printKeyValue("Header", head)
			printKeyValue("Individuals", fmt.Sprintf("%d", stats.Individuals))
			printKeyValue("Families", fmt.Sprintf("%d", stats.Families))
			printKeyValue("Sources", fmt.Sprintf("%d", stats.Sources))
			printKeyValue("Objects", fmt.Sprintf("%d", stats.Objects))
			printKeyValue("Repositories", fmt.Sprintf("%d", stats.Repositories))
			return nil
		},
	}
}
