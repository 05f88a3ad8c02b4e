package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corpusdash/internal/metrics"
	"corpusdash/internal/textutil"
)

func newTermsCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags
	var source string
	var top int
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "terms",
		Short: "Most frequent terms in the filtered corpus text",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := runFiltered(ctx, cmd, &flags)
			if err != nil {
				return err
			}

			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			stop, err := textutil.LoadStopwords(cfg.Text.StopwordsPath)
			if err != nil {
				return err
			}

			terms := metrics.TermFrequencies(result.Table, metrics.ParseTermSource(source), stop)
			if top > 0 && len(terms) > top {
				terms = terms[:top]
			}

			if jsonOut {
				return writeJSON(cmd, terms)
			}

			out := cmd.OutOrStdout()
			if len(terms) == 0 {
				fmt.Fprintln(out, "No data matches the current filters")
				return nil
			}
			rows := make([][]string, 0, len(terms))
			for _, tc := range terms {
				rows = append(rows, []string{tc.Term, formatCount(int64(tc.Count))})
			}
			fmt.Fprintln(out, renderTable(
				[]string{"Term", "Count"}, rows, []columnAlignment{alignLeft, alignRight}))
			return nil
		},
	}

	addFilterFlags(cmd, &flags)
	cmd.Flags().StringVar(&source, "source", "transcripts", "Text column: transcripts, captions, titles, or comments")
	cmd.Flags().IntVar(&top, "top", 30, "Number of terms to show (0 = all)")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
