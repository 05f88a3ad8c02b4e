package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"corpusdash/internal/filter"
)

// runFiltered materializes the filter state, loads its corpus, and runs the
// pipeline. Warnings are printed immediately; they never fail the command.
func runFiltered(ctx *commandContext, cmd *cobra.Command, f *filterFlags) (*filter.Result, filter.State, error) {
	state, err := f.state(ctx, cmd)
	if err != nil {
		return nil, filter.State{}, err
	}

	table, err := ctx.loadTable(state.Corpus)
	if err != nil {
		return nil, filter.State{}, err
	}
	state.Corpus = table.Name

	result := filter.Run(cmd.Context(), ctx.ensureLogger(), table, state)
	printWarnings(cmd, result.Warnings)
	return result, state, nil
}

func printWarnings(cmd *cobra.Command, warnings []string) {
	out := cmd.ErrOrStderr()
	colorize := shouldColorize(out)
	for _, warning := range warnings {
		fmt.Fprintln(out, renderStatusLine("warning", statusWarn, warning, colorize))
	}
}

func formatCount(v int64) string {
	return strconv.FormatInt(v, 10)
}

func truncate(s string, max int) string {
	if max <= 0 || len(s) <= max {
		return s
	}
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max-1]) + "…"
}
