package cli

import (
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/Kaper156/pygedcom/pkg/store"
)

// storeCommand creates the store command group for the snapshot archive.
func (c *CLI) storeCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "store",
		Short: "Archive parsed snapshots in MongoDB",
	}

	cmd.AddCommand(c.storeSaveCommand())
	cmd.AddCommand(c.storeListCommand())
	cmd.AddCommand(c.storeShowCommand())

	return cmd
}

// connectStore opens the configured MongoDB archive.
func (c *CLI) connectStore(cmd *cobra.Command) (*store.Store, error) {
	return store.Connect(cmd.Context(), c.Config.Mongo.URI, c.Config.Mongo.Database)
}

// storeSaveCommand creates the "store save" subcommand.
func (c *CLI) storeSaveCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "save <file>",
		Short: "Parse a GEDCOM file and archive a snapshot",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			p, text, err := loadParser(args[0])
			if err != nil {
				return err
			}

			s, err := c.connectStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close(cmd.Context())

			snap, err := s.Save(cmd.Context(), filepath.Base(args[0]), text, p)
			if err != nil {
				return err
			}

			printSuccess("Archived %s", args[0])
			printKeyValue("Snapshot", snap.ID)
			printKeyValue("Hash", snap.SourceHash)
			printKeyValue("Individuals", fmt.Sprintf("%d", snap.Stats.Individuals))
			printKeyValue("Families", fmt.Sprintf("%d", snap.Stats.Families))
			return nil
		},
	}
}

// storeListCommand creates the "store list" subcommand.
func (c *CLI) storeListCommand() *cobra.Command {
	var limit int64

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List archived snapshots, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.connectStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close(cmd.Context())

			snaps, err := s.ListSnapshots(cmd.Context(), limit)
			if err != nil {
				return err
			}
			if len(snaps) == 0 {
				printInfo("No snapshots archived")
				return nil
			}

			for _, snap := range snaps {
				printInfo("%s  %s", snap.CreatedAt.Format("2006-01-02 15:04"), snap.SourceName)
				printDetail("%s  %d individuals, %d families", snap.ID, snap.Stats.Individuals, snap.Stats.Families)
			}
			return nil
		},
	}

	cmd.Flags().Int64Var(&limit, "limit", 20, "maximum snapshots to list")

	return cmd
}

// storeShowCommand creates the "store show" subcommand printing a snapshot's export.
func (c *CLI) storeShowCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "show <id>",
		Short: "Print an archived snapshot's JSON export",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := c.connectStore(cmd)
			if err != nil {
				return err
			}
			defer s.Close(cmd.Context())

			snap, err := s.FindSnapshot(cmd.Context(), args[0])
			if err != nil {
				return err
			}
			fmt.Println(snap.Export)
			return nil
		},
	}
}
