package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/spf13/cobra"

	"corpusdash/internal/comments"
	"corpusdash/internal/corpus"
	"corpusdash/internal/export"
	"corpusdash/internal/metrics"
)

func newShowCommand(ctx *commandContext) *cobra.Command {
	var flags filterFlags
	var limit int
	var exportCSV bool
	var anonymize bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Display the filtered posts, or one video's thread",
		RunE: func(cmd *cobra.Command, args []string) error {
			result, state, err := runFiltered(ctx, cmd, &flags)
			if err != nil {
				return err
			}

			if state.VideoID != "" {
				// Drill-down isolates the video against the full corpus, not
				// the filtered view.
				full, err := ctx.loadTable(state.Corpus)
				if err != nil {
					return err
				}
				video := full.ForVideo(state.VideoID)
				if video.Empty() {
					fmt.Fprintf(cmd.OutOrStdout(), "No video %q in corpus %s\n", state.VideoID, state.Corpus)
					return nil
				}
				if exportCSV {
					return exportVideo(ctx, cmd, video)
				}
				return renderVideo(cmd, video, anonymize)
			}

			if exportCSV {
				return exportFiltered(ctx, cmd, result.Table)
			}
			return renderPosts(cmd, result.Table, result.Identity, limit)
		},
	}

	addFilterFlags(cmd, &flags)
	cmd.Flags().IntVar(&limit, "limit", 25, "Maximum posts to display (0 = all)")
	cmd.Flags().BoolVar(&exportCSV, "export", false, "Write CSV to the export directory instead of rendering")
	cmd.Flags().BoolVar(&anonymize, "anonymize", false, "Replace comment author names with stable pseudonyms")
	return cmd
}

func renderPosts(cmd *cobra.Command, t *corpus.Table, identity corpus.Identity, limit int) error {
	out := cmd.OutOrStdout()
	postRows := t.PostRows()
	if len(postRows) == 0 {
		fmt.Fprintln(out, "No data matches the current filters")
		return nil
	}

	headers := []string{"Video", "Platform", identity.Label, "Channel", "Title", "Uploaded", "Views", "Likes", "Comments"}
	aligns := []columnAlignment{
		alignLeft, alignLeft, alignLeft, alignLeft, alignLeft, alignLeft,
		alignRight, alignRight, alignRight,
	}

	rows := make([][]string, 0, len(postRows))
	for _, i := range postRows {
		if limit > 0 && len(rows) >= limit {
			break
		}
		row := &t.Rows[i]
		uploaded := ""
		if !row.UploadDate.IsZero() {
			uploaded = row.UploadDate.Format("2006-01-02")
		}
		rows = append(rows, []string{
			row.VideoID,
			string(row.Platform),
			row.Identity,
			row.ChannelName,
			truncate(row.Title, 48),
			uploaded,
			formatCount(row.Views),
			formatCount(row.Likes),
			formatCount(row.Comments),
		})
	}

	fmt.Fprintln(out, renderTable(headers, rows, aligns))
	if limit > 0 && len(postRows) > limit {
		fmt.Fprintf(out, "Showing %d of %d posts (raise --limit to see more)\n", limit, len(postRows))
	}
	return nil
}

func renderVideo(cmd *cobra.Command, video *corpus.Table, anonymize bool) error {
	out := cmd.OutOrStdout()
	colorize := shouldColorize(out)

	post := &video.Rows[0]
	for _, i := range video.PostRows() {
		post = &video.Rows[i]
		break
	}

	fmt.Fprintln(out, renderSectionHeader(fmt.Sprintf("%s on %s", post.VideoID, post.Platform), colorize))
	fmt.Fprintf(out, "Title:    %s\n", post.Title)
	fmt.Fprintf(out, "Channel:  %s\n", post.ChannelName)
	if !post.UploadDate.IsZero() {
		fmt.Fprintf(out, "Uploaded: %s\n", post.UploadDate.Format("2006-01-02"))
	}
	fmt.Fprintf(out, "Views: %s  Likes: %s  Comments: %s\n",
		formatCount(post.Views), formatCount(post.Likes), formatCount(post.Comments))
	if post.Platform == corpus.PlatformYouTube {
		fmt.Fprintf(out, "Subscribers: %s\n", formatCount(post.Subscribers))
	}
	if post.Description != "" {
		fmt.Fprintf(out, "\nDescription: %s\n", post.Description)
	}

	tree := comments.BuildTree(video)
	if tree.Size() == 0 {
		fmt.Fprintln(out, "\nNo comments for this video")
	} else {
		anon := comments.NewAnonymizer()
		author := func(name string) string {
			if anonymize {
				return anon.Name(name)
			}
			return name
		}

		fmt.Fprintf(out, "\n%d comments:\n", tree.Size())
		tree.Walk(func(node *comments.Node, depth int) {
			indent := strings.Repeat("    ", depth)
			fmt.Fprintf(out, "%s- %s: %s\n", indent, author(node.Row.AuthorName),
				truncate(node.Row.CommentText, 100))
		})
		if counts := metrics.UniqueCommenters(video); len(counts) > 0 {
			fmt.Fprintf(out, "Unique commenters: %d\n", counts[0].Commenters)
		}
	}

	if post.Transcript != "" {
		fmt.Fprintf(out, "\nTranscript: %s\n", post.Transcript)
	}

	pos, neg, ok, err := comments.Extremes(video)
	if err != nil {
		return err
	}
	if ok {
		fmt.Fprintf(out, "\nMost positive (%.2f): %s\n", pos.Score, truncate(pos.Row.CommentText, 100))
		fmt.Fprintf(out, "Most negative (%.2f): %s\n", neg.Score, truncate(neg.Row.CommentText, 100))
	}
	return nil
}

func exportFiltered(ctx *commandContext, cmd *cobra.Command, t *corpus.Table) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	path, err := export.WriteFile(cfg.Paths.ExportDir, export.TableFilename(time.Now()), t)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", t.Len(), path)
	return nil
}

func exportVideo(ctx *commandContext, cmd *cobra.Command, video *corpus.Table) error {
	cfg, err := ctx.ensureConfig()
	if err != nil {
		return err
	}
	row := &video.Rows[0]
	path, err := export.WriteFile(cfg.Paths.ExportDir, export.PostFilename(row.Platform, row.VideoID), video)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Exported %d rows to %s\n", video.Len(), path)
	return nil
}
