package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"corpusdash/internal/presets"
)

func newPresetsCommand(ctx *commandContext) *cobra.Command {
	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "Manage stored filter presets",
	}

	presetsCmd.AddCommand(newPresetsSaveCommand(ctx))
	presetsCmd.AddCommand(newPresetsListCommand(ctx))
	presetsCmd.AddCommand(newPresetsShowCommand(ctx))
	presetsCmd.AddCommand(newPresetsDeleteCommand(ctx))
	presetsCmd.AddCommand(newPresetsExportCommand(ctx))
	presetsCmd.AddCommand(newPresetsImportCommand(ctx))

	return presetsCmd
}

func withPresetStore(ctx *commandContext, fn func(*presets.Store) error) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	store, err := presets.Open(cfg.Presets.DBPath)
	if err != nil {
		return err
	}
	defer store.Close()
	return fn(store)
}

func newPresetsSaveCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags

	cmd := &cobra.Command{
		Use:   "save <name>",
		Short: "Store the given filter flags as a named preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			state, err := flags.state(ctx, cmd)
			if err != nil {
				return err
			}
			return withPresetStore(ctx, func(store *presets.Store) error {
				preset, err := store.Save(cmd.Context(), args[0], state)
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Saved preset %q\n", preset.Name)
				return nil
			})
		},
	}

	addFilterFlags(cmd, &flags)
	return cmd
}

func newPresetsListCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "list",
		Short: "List stored presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPresetStore(ctx, func(store *presets.Store) error {
				all, err := store.List(cmd.Context())
				if err != nil {
					return err
				}
				if jsonOut {
					return writeJSON(cmd, all)
				}
				if len(all) == 0 {
					fmt.Fprintln(cmd.OutOrStdout(), "No presets stored")
					return nil
				}
				rows := make([][]string, 0, len(all))
				for _, preset := range all {
					rows = append(rows, []string{
						preset.Name,
						preset.Corpus,
						preset.UpdatedAt.Format("2006-01-02 15:04"),
					})
				}
				fmt.Fprintln(cmd.OutOrStdout(), renderTable(
					[]string{"Name", "Corpus", "Updated"}, rows, nil))
				return nil
			})
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}

func newPresetsShowCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "show <name>",
		Short: "Print a stored preset as JSON",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPresetStore(ctx, func(store *presets.Store) error {
				preset, err := store.Get(cmd.Context(), args[0])
				if err != nil {
					return err
				}
				return writeJSON(cmd, preset.State)
			})
		},
	}
}

func newPresetsDeleteCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "delete <name>",
		Short: "Remove a stored preset",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPresetStore(ctx, func(store *presets.Store) error {
				if err := store.Delete(cmd.Context(), args[0]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Deleted preset %q\n", args[0])
				return nil
			})
		},
	}
}

func newPresetsExportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "export <name> <file>",
		Short: "Write a stored preset to a JSON snapshot file",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPresetStore(ctx, func(store *presets.Store) error {
				if err := store.Export(cmd.Context(), args[0], args[1]); err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Exported preset %q to %s\n", args[0], args[1])
				return nil
			})
		},
	}
}

func newPresetsImportCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "import <name> <file>",
		Short: "Store a JSON snapshot file as a named preset",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return withPresetStore(ctx, func(store *presets.Store) error {
				preset, err := store.Import(cmd.Context(), args[0], args[1])
				if err != nil {
					return err
				}
				fmt.Fprintf(cmd.OutOrStdout(), "Imported preset %q\n", preset.Name)
				return nil
			})
		},
	}
}
