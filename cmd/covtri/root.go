package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"

	"github.com/katalvlaran/covtri/obslog"
	"github.com/spf13/cobra"
)

var (
	flagLogLevel string
	flagLogFile  string
)

var rootCmd = &cobra.Command{
	Use:   "covtri",
	Short: "Minimum interval point cover and minimum triangle path",
	Long: `covtri bundles two deterministic combinatorial engines:

  cover    minimum number of points stabbing every segment in a file
  tripath  minimum top-to-bottom path sum through a numeric triangle

Both commands narrate their progress through a timestamped logger that
writes to the console and, optionally, to a file.`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "log verbosity: debug, info, warn, error")
	rootCmd.PersistentFlags().StringVar(&flagLogFile, "log-file", "", "also append log output to this file")
}

// parseLevel maps the --log-level flag to a slog.Level, defaulting to info.
func parseLevel(s string) slog.Level {
	switch s {
	case "debug":
		return slog.LevelDebug
	case "warn":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

// newRunLogger builds the logger for one command invocation. When
// --log-file is set the file handle is opened here and released by the
// returned closer; callers must invoke it on every exit path so the
// resource never outlives the run.
func newRunLogger(console io.Writer) (*slog.Logger, func(), error) {
	out := console
	closer := func() {}

	if flagLogFile != "" {
		f, err := os.Create(flagLogFile)
		if err != nil {
			return nil, nil, fmt.Errorf("open log file: %w", err)
		}
		closer = func() { _ = f.Close() }
		out = obslog.Tee(console, f)
	}

	return obslog.New(out, parseLevel(flagLogLevel)), closer, nil
}
