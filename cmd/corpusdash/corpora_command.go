package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newCorporaCommand(ctx *commandContext) *cobra.Command {
	var jsonOut bool

	cmd := &cobra.Command{
		Use:   "corpora",
		Short: "List registered corpora",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}

			type corpusInfo struct {
				Name     string `json:"name"`
				Path     string `json:"path"`
				Identity string `json:"identity"`
			}
			infos := make([]corpusInfo, 0, len(cfg.Corpora.Files))
			for _, name := range cfg.CorpusNames() {
				path, _ := cfg.CorpusPath(name)
				identity := "Hashtag"
				if cfg.IsInfluencerCorpus(name) {
					identity = "Profile"
				}
				infos = append(infos, corpusInfo{Name: name, Path: path, Identity: identity})
			}

			if jsonOut {
				return writeJSON(cmd, infos)
			}
			if len(infos) == 0 {
				fmt.Fprintln(cmd.OutOrStdout(), "No corpora registered; add entries under [corpora.files] in the config")
				return nil
			}

			rows := make([][]string, 0, len(infos))
			for _, info := range infos {
				rows = append(rows, []string{info.Name, info.Identity, info.Path})
			}
			fmt.Fprintln(cmd.OutOrStdout(), renderTable(
				[]string{"Name", "Identity", "Path"}, rows, nil))
			return nil
		},
	}

	cmd.Flags().BoolVar(&jsonOut, "json", false, "Emit JSON instead of a table")
	return cmd
}
