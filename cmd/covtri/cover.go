package main

import (
	"fmt"

	"github.com/katalvlaran/covtri/cover"
	"github.com/katalvlaran/covtri/obslog"
	"github.com/katalvlaran/covtri/segio"
	"github.com/spf13/cobra"
)

var flagCoverInput string

var coverCmd = &cobra.Command{
	Use:   "cover",
	Short: "Compute the minimum point cover for a segment file",
	Long: `Reads a count-prefixed two-column segment file (first non-blank
line is the segment count, then one "start end" pair per line; endpoint
order is normalized while reading) and prints the minimum number of
points needed to stab every segment, plus one witness set.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log, closeLog, err := newRunLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeLog()

		segs, err := segio.ReadSegmentsFile(flagCoverInput)
		if err != nil {
			return err
		}
		log.Info("segments loaded", "file", flagCoverInput, "count", len(segs))

		res, err := cover.MinPointCover(segs, obslog.CoverObserver(log)...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "segments: %d\n", len(segs))
		fmt.Fprintf(out, "minimum points: %d\n", res.Count)
		fmt.Fprintf(out, "points: %v\n", res.Points)
		return nil
	},
}

func init() {
	coverCmd.Flags().StringVar(&flagCoverInput, "input", "", "path to the segment file (required)")
	_ = coverCmd.MarkFlagRequired("input")
	rootCmd.AddCommand(coverCmd)
}
