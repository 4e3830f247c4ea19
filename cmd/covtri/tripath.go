package main

import (
	"fmt"

	"github.com/katalvlaran/covtri/obslog"
	"github.com/katalvlaran/covtri/trigen"
	"github.com/katalvlaran/covtri/tripath"
	"github.com/spf13/cobra"
)

var (
	flagTriRows int
	flagTriSeed int64
	flagTriMin  int64
	flagTriMax  int64
)

var tripathCmd = &cobra.Command{
	Use:   "tripath",
	Short: "Compute the minimum path sum through a triangle",
	Long: `Generates a reproducible random triangle (or, with --rows 0, uses
the built-in demo triangle) and prints the minimum top-to-bottom path
sum together with one optimal path.`,
	RunE: func(cmd *cobra.Command, _ []string) error {
		log, closeLog, err := newRunLogger(cmd.ErrOrStderr())
		if err != nil {
			return err
		}
		defer closeLog()

		var tri [][]int64
		if flagTriRows > 0 {
			tri, err = trigen.Triangle(flagTriRows, flagTriMin, flagTriMax, flagTriSeed)
			if err != nil {
				return err
			}
			log.Info("triangle generated", "rows", flagTriRows, "seed", flagTriSeed)
		} else {
			tri = [][]int64{{2}, {3, 4}, {6, 5, 7}, {4, 1, 8, 3}}
			log.Info("using demo triangle", "rows", len(tri))
		}

		res, err := tripath.MinPathSum(tri, obslog.TriPathObserver(log)...)
		if err != nil {
			return err
		}

		out := cmd.OutOrStdout()
		fmt.Fprintf(out, "rows: %d\n", len(tri))
		fmt.Fprintf(out, "minimum sum: %d\n", res.Sum)
		fmt.Fprintf(out, "path: %v\n", res.Path)
		return nil
	},
}

func init() {
	tripathCmd.Flags().IntVar(&flagTriRows, "rows", 0, "rows to generate; 0 runs the built-in demo triangle")
	tripathCmd.Flags().Int64Var(&flagTriSeed, "seed", 0, "generation seed; 0 uses a fixed default")
	tripathCmd.Flags().Int64Var(&flagTriMin, "min", -10, "minimum generated value")
	tripathCmd.Flags().Int64Var(&flagTriMax, "max", 10, "maximum generated value")
	rootCmd.AddCommand(tripathCmd)
}
