package cli

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/Kaper156/pygedcom/pkg/errors"
)

// browseCommand creates the browse command for interactive exploration.
func (c *CLI) browseCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "browse <file>",
		Short: "Browse individuals interactively",
		Long: `Browse the individuals of a GEDCOM file in an interactive list.

The detail pane shows the selected individual's events, parents, and
children.

Examples:
  gedcom browse family.ged`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, _, err := loadParser(args[0])
			if err != nil {
				return err
			}
			if len(p.Individuals) == 0 {
				return errors.New(errors.ErrCodeNotFound, "%s contains no individuals", args[0])
			}

			model := NewBrowseModel(p)
			_, err = tea.NewProgram(model, tea.WithAltScreen()).Run()
			return err
		},
	}
}
