package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/jask/lexicon/internal/service"
)

var resetCmd = &cobra.Command{
	Use:   "reset-progress",
	Short: "Zero review counters for every word",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(ctx, true)
		if err != nil {
			return err
		}
		defer e.Close()

		m := &service.MaintenanceService{Repo: e.repo, Log: e.log}
		n, err := m.ResetProgress(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintf(cmd.OutOrStdout(), "reset progress for %d words\n", n)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(resetCmd)
}
