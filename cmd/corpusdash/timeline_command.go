package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corpusdash/internal/metrics"
)

func newTimelineCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags
	var granularity string
	var metric string
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "timeline",
		Short: "Post counts, subscribers, or engagement over time",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, _, err := runFiltered(ctx, cmd, &flags)
			if err != nil {
				return err
			}

			g := metrics.ParseGranularity(granularity)
			var tl metrics.Timeline
			var label string
			switch metric {
			case "posts":
				tl = metrics.PostTimeline(result.Table, g)
				label = result.Identity.Label
			case "subscribers":
				tl = metrics.SubscriberTimeline(result.Table, g)
				label = "Channel"
			case "engagement":
				tl = metrics.EngagementTimeline(result.Table, g)
				label = "Metric"
			default:
				return fmt.Errorf("unknown metric %q (expected posts, subscribers, or engagement)", metric)
			}

			if jsonOut {
				return writeJSON(cmd, tl)
			}

			out := cmd.OutOrStdout()
			if len(tl.Periods) == 0 {
				fmt.Fprintln(out, "No data matches the current filters")
				return nil
			}

			headers := append([]string{label}, tl.Periods...)
			aligns := make([]columnAlignment, len(headers))
			for i := 1; i < len(aligns); i++ {
				aligns[i] = alignRight
			}

			rows := make([][]string, 0, len(tl.Series))
			for _, series := range tl.Series {
				row := make([]string, 0, len(headers))
				row = append(row, series.Name)
				for _, count := range series.Counts {
					row = append(row, formatCount(int64(count)))
				}
				rows = append(rows, row)
			}
			fmt.Fprintln(out, renderTable(headers, rows, aligns))
			return nil
		},
	}

	addFilterFlags(cmd, &flags)
	cmd.Flags().StringVar(&granularity, "by", "month", "Bucket width: day, month, or year")
	cmd.Flags().StringVar(&metric, "metric", "posts", "What to track: posts, subscribers, or engagement")
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
