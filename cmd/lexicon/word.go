package main

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/jask/lexicon/internal/pronounce"
	"github.com/jask/lexicon/internal/theme"
	"github.com/jask/lexicon/internal/tui"
	"github.com/jask/lexicon/internal/vocab"
)

var wordCmd = &cobra.Command{
	Use:   "word [WORD]",
	Short: "Show the detail screen for a word",
	Args:  cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(ctx, false)
		if err != nil {
			return err
		}
		defer e.Close()

		th, err := theme.ByName(e.cfg.UI.ThemeDetail)
		if err != nil {
			return err
		}
		in, err := lookup(ctx, e, args)
		if err != nil {
			return err
		}

		opts := tui.DetailOptions{
			Theme:      th,
			Input:      in,
			Pronouncer: pronounce.NewSimulated(e.cfg.Audio.Delay),
			Log:        e.log,
		}
		// The default record is not a stored word, so it cannot be reviewed.
		if e.deck != nil && in != nil {
			opts.Reviewer = e.deck
		}
		var p *tea.Program
		opts.OnBack = func() { p.Quit() }
		p = tea.NewProgram(tui.NewWordDetail(ctx, opts), tea.WithAltScreen(), tea.WithContext(ctx))
		_, err = p.Run()
		return err
	},
}

func init() {
	rootCmd.AddCommand(wordCmd)
}

// lookup resolves the record to show. No argument yields nil, which the
// detail screen renders as the default word.
func lookup(ctx context.Context, e *env, args []string) (*vocab.DetailInput, error) {
	if len(args) == 0 {
		return nil, nil
	}
	if e.deck != nil {
		return e.deck.Detail(ctx, args[0])
	}
	if def := vocab.DefaultDetail(); strings.EqualFold(args[0], def.Word) {
		return &def, nil
	}
	for _, w := range vocab.BuiltinWords() {
		if strings.EqualFold(w.Word, args[0]) {
			return &vocab.DetailInput{Word: w.Word, Translation: w.Translation, Definition: w.Definition, Difficulty: w.Difficulty}, nil
		}
	}
	return nil, fmt.Errorf("%w: %q", vocab.ErrWordNotFound, args[0])
}
