package main

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"

	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/archive"
	"github.com/toolsVendettaHispanos/AutoAuth-sub000/internal/models"
)

func cmdArchive() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "archive",
		Short: "Browse archived battle reports",
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			if err := cmd.Root().PersistentPreRunE(cmd, args); err != nil {
				return err
			}
			if archivePath == "" {
				return errors.New("--archive is required")
			}
			return nil
		},
	}

	var (
		kind  string
		limit int
	)
	list := &cobra.Command{
		Use:   "list",
		Short: "List archived reports, newest first",
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := archive.Open(archivePath, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			summaries, err := store.List(context.Background(), models.MissionKind(kind), limit)
			if err != nil {
				return err
			}
			printSummaries(os.Stdout, summaries)
			return nil
		},
	}
	list.Flags().StringVar(&kind, "mission", "", "Only list one mission kind (attack, espionage)")
	list.Flags().IntVarP(&limit, "limit", "n", 20, "Maximum number of reports, 0 for all")

	show := &cobra.Command{
		Use:   "show <id>",
		Short: "Show one archived report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := archive.Open(archivePath, logger)
			if err != nil {
				return err
			}
			defer store.Close()

			entry, err := store.Get(context.Background(), args[0])
			if err != nil {
				return err
			}
			if entry.Mission == models.MissionEspionage {
				printEspionage(os.Stdout, &models.EspionageReport{Battle: *entry.Report, Intel: entry.Intel}, false)
				return nil
			}
			printBattle(os.Stdout, entry.Report, false)
			return nil
		},
	}

	remove := &cobra.Command{
		Use:   "delete <id>",
		Short: "Delete one archived report",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			store, err := archive.Open(archivePath, logger)
			if err != nil {
				return err
			}
			defer store.Close()
			return store.Delete(context.Background(), args[0])
		},
	}

	cmd.AddCommand(list, show, remove)
	return cmd
}
