// Package download fetches source videos for drill-down inspection via the
// yt-dlp command line tool.
package download

import (
	"bufio"
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/gofrs/flock"

	"corpusdash/internal/corpus"
	"corpusdash/internal/services"
)

var commandContext = exec.CommandContext

// ProgressUpdate captures yt-dlp progress events.
type ProgressUpdate struct {
	Percent float64
	Message string
}

// Client defines video fetch behaviour.
type Client interface {
	Fetch(ctx context.Context, url, outputDir string, progress func(ProgressUpdate)) (string, error)
}

// Option configures the CLI client.
type Option func(*CLI)

// WithBinary overrides the default yt-dlp binary name.
func WithBinary(binary string) Option {
	return func(c *CLI) {
		if binary != "" {
			c.binary = binary
		}
	}
}

// WithFFmpeg points yt-dlp at a specific ffmpeg binary for muxing.
func WithFFmpeg(binary string) Option {
	return func(c *CLI) {
		c.ffmpeg = binary
	}
}

// CLI wraps the yt-dlp command-line downloader.
type CLI struct {
	binary string
	ffmpeg string
}

// NewCLI constructs a CLI client using defaults.
func NewCLI(opts ...Option) *CLI {
	cli := &CLI{binary: "yt-dlp"}
	for _, opt := range opts {
		opt(cli)
	}
	return cli
}

// VideoURL resolves the fetchable URL for a post row. The scraped original
// URL wins when present; otherwise the URL is constructed per platform.
// Platforms without a construction rule and no original URL are
// unsupported.
func VideoURL(row *corpus.Row) (string, error) {
	if url := strings.TrimSpace(row.OriginalURL); url != "" {
		return url, nil
	}
	switch row.Platform {
	case corpus.PlatformYouTube:
		return "https://www.youtube.com/watch?v=" + row.VideoID, nil
	case corpus.PlatformTikTok:
		if row.ChannelName != "" {
			return fmt.Sprintf("https://www.tiktok.com/@%s/video/%s", row.ChannelName, row.VideoID), nil
		}
	}
	return "", services.Wrap(services.ErrExternalTool, "download", "resolve url",
		fmt.Sprintf("no source URL for %s video %s", row.Platform, row.VideoID), nil)
}

// Fetch downloads one video into outputDir and returns the local file path.
// A lock file in outputDir serializes fetches so one user action runs at
// most one download; a second concurrent call fails fast instead of
// queueing. Tool failures are wrapped, never fatal to the caller's render.
func (c *CLI) Fetch(ctx context.Context, url, outputDir string, progress func(ProgressUpdate)) (string, error) {
	url = strings.TrimSpace(url)
	if url == "" {
		return "", services.Wrap(services.ErrExternalTool, "download", "fetch", "url required", nil)
	}
	if outputDir == "" {
		return "", services.Wrap(services.ErrExternalTool, "download", "fetch", "output directory required", nil)
	}
	if err := os.MkdirAll(outputDir, 0o755); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "download", "prepare staging", outputDir, err)
	}

	lock := flock.New(filepath.Join(outputDir, ".fetch.lock"))
	locked, err := lock.TryLock()
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "download", "acquire lock", outputDir, err)
	}
	if !locked {
		return "", services.Wrap(services.ErrExternalTool, "download", "acquire lock",
			"another download is already running", nil)
	}
	defer func() {
		_ = lock.Unlock()
	}()

	template := filepath.Join(outputDir, "%(id)s.%(ext)s")
	args := []string{
		"--newline",
		"--no-playlist",
		"--output", template,
		"--print", "after_move:filepath",
	}
	if c.ffmpeg != "" {
		args = append(args, "--ffmpeg-location", c.ffmpeg)
	}
	args = append(args, url)

	cmd := commandContext(ctx, c.binary, args...)
	stdout, err := cmd.StdoutPipe()
	if err != nil {
		return "", services.Wrap(services.ErrExternalTool, "download", "fetch", "stdout pipe", err)
	}
	cmd.Stderr = cmd.Stdout
	if err := cmd.Start(); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "download", "fetch",
			fmt.Sprintf("start %s", c.binary), err)
	}

	var outputPath string
	scanner := bufio.NewScanner(stdout)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if pct, msg, ok := parseProgress(line); ok {
			if progress != nil {
				progress(ProgressUpdate{Percent: pct, Message: msg})
			}
			continue
		}
		// The after_move print emits the final file path as a bare line.
		if !strings.HasPrefix(line, "[") {
			outputPath = line
		}
	}
	if err := scanner.Err(); err != nil {
		_ = cmd.Wait()
		return "", services.Wrap(services.ErrExternalTool, "download", "fetch", "read output", err)
	}
	if err := cmd.Wait(); err != nil {
		return "", services.Wrap(services.ErrExternalTool, "download", "fetch",
			fmt.Sprintf("%s failed for %s", c.binary, url), err)
	}
	if outputPath == "" {
		return "", services.Wrap(services.ErrExternalTool, "download", "fetch",
			"downloader reported no output file", nil)
	}
	return outputPath, nil
}

// parseProgress reads yt-dlp's "[download]  42.1% of ..." progress lines.
func parseProgress(line string) (float64, string, bool) {
	if !strings.HasPrefix(line, "[download]") {
		return 0, "", false
	}
	rest := strings.TrimSpace(strings.TrimPrefix(line, "[download]"))
	fields := strings.Fields(rest)
	if len(fields) == 0 || !strings.HasSuffix(fields[0], "%") {
		return 0, "", false
	}
	pct, err := strconv.ParseFloat(strings.TrimSuffix(fields[0], "%"), 64)
	if err != nil {
		return 0, "", false
	}
	return pct, rest, true
}

var _ Client = (*CLI)(nil)
