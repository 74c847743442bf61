package main

import (
	"context"
	"fmt"

	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"

	"github.com/jask/lexicon/internal/database"
	"github.com/jask/lexicon/internal/database/repository"
	"github.com/jask/lexicon/internal/importer"
)

var (
	importSheet    string
	importNoHeader bool
)

var importCmd = &cobra.Command{
	Use:   "import FILE",
	Short: "Import words from an .xlsx or .csv file",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()
		e, err := setup(ctx, true)
		if err != nil {
			return err
		}
		defer e.Close()

		opts := importer.DefaultOptions()
		opts.Sheet = importSheet
		opts.SkipHeader = !importNoHeader
		res, err := importFile(ctx, e.db, args[0], opts)
		if err != nil {
			return fmt.Errorf("import %s: %w", args[0], err)
		}
		e.log.WithFields(logrus.Fields{
			"file":      args[0],
			"processed": res.Processed,
			"created":   res.Created,
			"updated":   res.Updated,
			"errors":    len(res.Errors),
		}).Info("import finished")

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "processed %d rows: %d created, %d updated\n", res.Processed, res.Created, res.Updated)
		for _, msg := range res.Errors {
			fmt.Fprintf(out, "  %s\n", msg)
		}
		return nil
	},
}

func init() {
	importCmd.Flags().StringVar(&importSheet, "sheet", "", "worksheet to read (xlsx only; default first sheet)")
	importCmd.Flags().BoolVar(&importNoHeader, "no-header", false, "the first row is data, not a header")
	rootCmd.AddCommand(importCmd)
}

// importFile runs one import in a single transaction; a fatal error leaves
// the deck as it was.
func importFile(ctx context.Context, db *sqlx.DB, path string, opts importer.Options) (*importer.Result, error) {
	var res *importer.Result
	err := database.WithTx(ctx, db, func(tx *sqlx.Tx) error {
		var err error
		res, err = importer.Import(ctx, path, repository.NewWordRepo(tx), opts)
		return err
	})
	if err != nil {
		return nil, err
	}
	return res, nil
}
