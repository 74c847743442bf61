package main

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/lexicon/internal/theme"
	"github.com/jask/lexicon/internal/tui"
	"github.com/jask/lexicon/internal/vocab"
)

var dashboardCmd = &cobra.Command{
	Use:   "dashboard",
	Short: "Show stats and cycle through flashcards",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		return runDashboard(cmd)
	},
}

func init() {
	rootCmd.AddCommand(dashboardCmd)
}

func runDashboard(cmd *cobra.Command) error {
	ctx := cmd.Context()
	e, err := setup(ctx, false)
	if err != nil {
		return err
	}
	defer e.Close()

	th, err := theme.ByName(e.cfg.UI.ThemeDashboard)
	if err != nil {
		return err
	}
	words, err := e.words(ctx)
	if err != nil {
		return err
	}
	d, err := tui.NewDashboard(tui.DashboardOptions{
		Theme:      th,
		Words:      words,
		Stats:      vocab.BuiltinStats(),
		Search:     e.cfg.UI.Search,
		Locale:     e.cfg.UI.Locale,
		DailyGoal:  e.cfg.UI.DailyGoal,
		StreakGoal: e.cfg.UI.StreakGoal,
		Log:        e.log,
	})
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(d, tea.WithAltScreen(), tea.WithContext(ctx)).Run()
	return err
}
