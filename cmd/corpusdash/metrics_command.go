package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corpusdash/internal/metrics"
)

func newMetricsCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "metrics",
		Short: "Per-identity per-platform engagement maxima and post counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := runFiltered(ctx, cmd, &flags)
			if err != nil {
				return err
			}

			groups := metrics.Summarize(result.Table)
			shares := metrics.PostShares(result.Table)
			commenters := metrics.UniqueCommenters(result.Table)

			if jsonOut {
				return writeJSON(cmd, struct {
					Groups     []metrics.GroupMetrics   `json:"groups"`
					Shares     []metrics.Share          `json:"shares"`
					Commenters []metrics.CommenterCount `json:"commenters"`
				}{groups, shares, commenters})
			}

			out := cmd.OutOrStdout()
			if len(groups) == 0 {
				fmt.Fprintln(out, "No data matches the current filters")
				return nil
			}

			rows := make([][]string, 0, len(groups))
			for _, g := range groups {
				rows = append(rows, []string{
					g.Identity,
					string(g.Platform),
					formatCount(int64(g.PostCount)),
					fmt.Sprintf("%s (%s)", formatCount(g.MaxViews), g.MaxViewsPost),
					fmt.Sprintf("%s (%s)", formatCount(g.MaxLikes), g.MaxLikesPost),
					fmt.Sprintf("%s (%s)", formatCount(g.MaxComments), g.MaxCommentsPost),
				})
			}
			fmt.Fprintln(out, renderTable(
				[]string{result.Identity.Label, "Platform", "Posts", "Max views", "Max likes", "Max comments"},
				rows,
				[]columnAlignment{alignLeft, alignLeft, alignRight, alignRight, alignRight, alignRight}))

			if len(shares) > 0 {
				shareRows := make([][]string, 0, len(shares))
				for _, s := range shares {
					shareRows = append(shareRows, []string{
						s.Identity,
						formatCount(int64(s.Posts)),
						fmt.Sprintf("%.1f%%", s.Fraction*100),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{result.Identity.Label, "Posts", "Share"},
					shareRows,
					[]columnAlignment{alignLeft, alignRight, alignRight}))
			}

			if len(commenters) > 0 {
				top := commenters
				if len(top) > 10 {
					top = top[:10]
				}
				commenterRows := make([][]string, 0, len(top))
				for _, c := range top {
					commenterRows = append(commenterRows, []string{
						c.VideoID, truncate(c.Title, 48), formatCount(int64(c.Commenters)),
					})
				}
				fmt.Fprintln(out, renderTable(
					[]string{"Video", "Title", "Unique commenters"},
					commenterRows,
					[]columnAlignment{alignLeft, alignLeft, alignRight}))
			}
			return nil
		},
	}

	addFilterFlags(cmd, &flags)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of tables")
	return cmd
}
