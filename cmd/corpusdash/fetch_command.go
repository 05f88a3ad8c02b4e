package main

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"corpusdash/internal/download"
)

func newFetchCommand(ctx *commandContext) *cobra.Command {
	var corpusName string

	cmd := &cobra.Command{
		Use:   "fetch <video-id>",
		Short: "Download one video into the staging directory",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			table, err := ctx.loadTable(corpusName)
			if err != nil {
				return err
			}

			video := table.ForVideo(strings.TrimSpace(args[0]))
			if video.Empty() {
				return fmt.Errorf("no video %q in corpus %s", args[0], table.Name)
			}
			row := &video.Rows[0]
			for _, i := range video.PostRows() {
				row = &video.Rows[i]
				break
			}

			url, err := download.VideoURL(row)
			if err != nil {
				return err
			}

			client := download.NewCLI(
				download.WithBinary(cfg.Downloader.Binary),
				download.WithFFmpeg(cfg.Downloader.FFmpegBinary),
			)

			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "Fetching %s\n", url)
			path, err := client.Fetch(cmd.Context(), url, cfg.Paths.StagingDir, func(u download.ProgressUpdate) {
				fmt.Fprintf(out, "\r%6.1f%%", u.Percent)
			})
			fmt.Fprintln(out)
			if err != nil {
				return err
			}
			fmt.Fprintf(out, "Saved to %s\n", path)
			return nil
		},
	}

	cmd.Flags().StringVar(&corpusName, "corpus", "", "Corpus name (defaults to the first registered corpus)")
	return cmd
}
