package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newFilterCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags
	var jsonOut bool
	var saveState string

	cmd := &cobra.Command{
		Use:   "filter",
		Short: "Run the filter pipeline and report stage counts",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, state, err := runFiltered(ctx, cmd, &flags)
			if err != nil {
				return err
			}

			if saveState != "" {
				if err := state.SaveFile(saveState); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved filter state to %s\n", saveState)
			}

			if jsonOut {
				type stageJSON struct {
					Stage string `json:"stage"`
					Rows  int    `json:"rows"`
				}
				payload := struct {
					Corpus   string      `json:"corpus"`
					RunID    string      `json:"run_id"`
					Identity string      `json:"identity"`
					Rows     int         `json:"rows"`
					Stages   []stageJSON `json:"stages"`
					Warnings []string    `json:"warnings"`
				}{
					Corpus:   state.Corpus,
					RunID:    result.RunID,
					Identity: result.Identity.Label,
					Rows:     result.Table.Len(),
					Warnings: result.Warnings,
				}
				for _, sc := range result.StageCounts {
					payload.Stages = append(payload.Stages, stageJSON{Stage: sc.Stage, Rows: sc.Rows})
				}
				return writeJSON(cmd, payload)
			}

			rows := make([][]string, 0, len(result.StageCounts))
			for _, sc := range result.StageCounts {
				rows = append(rows, []string{sc.Stage, formatCount(int64(sc.Rows))})
			}
			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderTable(
				[]string{"Stage", "Rows"}, rows, []columnAlignment{alignLeft, alignRight}))
			if result.Empty() {
				fmt.Fprintln(out, "No data matches the current filters")
			} else {
				fmt.Fprintf(out, "%d rows remain after filtering\n", result.Table.Len())
			}
			return nil
		},
	}

	addFilterFlags(cmd, &flags)
	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	cmd.Flags().StringVar(&saveState, "save-state", "", "Write the effective filter state to a snapshot file")
	return cmd
}
