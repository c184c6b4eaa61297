package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
	"github.com/MuhammadZain2005/Flask-Filler/internal/solver"
)

var (
	checkPreset string
	checkSolve  bool
)

func init() {
	checkCmd := &cobra.Command{
		Use:   "check [file]",
		Short: "Load a puzzle and report its state",
		Long: `Load a puzzle description, list any lines that were skipped, and show
each flask with its sealed state.

Examples:
  flasks check puzzle.txt
  flasks check --preset starter --solve`,
		Args: cobra.MaximumNArgs(1),
		RunE: runCheck,
	}

	checkCmd.Flags().StringVarP(&checkPreset, "preset", "p", "", "Built-in puzzle to check instead of a file")
	checkCmd.Flags().BoolVar(&checkSolve, "solve", false, "Also search for a solution")

	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	flasks, warnings, err := loadFlasks(cmd, firstArg(args), checkPreset)
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()

	sealed := 0
	for _, f := range flasks {
		if f.IsSealed() {
			sealed++
		}
	}

	fmt.Fprintf(out, "Flasks: %d  Units: %d  Sealed: %d\n", len(flasks), board.TotalUnits(flasks), sealed)
	fmt.Fprint(out, board.Format(flasks))
	if len(warnings) > 0 {
		fmt.Fprintf(out, "Warnings (%d):\n", len(warnings))
		for _, w := range warnings {
			fmt.Fprintf(out, "  %s\n", w)
		}
	}
	if board.AllSealed(flasks) {
		fmt.Fprintln(out, "Won: yes")
	} else {
		fmt.Fprintln(out, "Won: no")
	}

	if !checkSolve {
		return nil
	}
	rating, err := solver.Difficulty(cmd.Context(), flasks, solverOptions())
	if errors.Is(err, solver.ErrNoSolution) {
		fmt.Fprintf(out, "Solvable: no (%d positions searched)\n", rating.Explored)
		return nil
	}
	if err != nil {
		fmt.Fprintf(out, "Solvable: unknown (%v after %d positions)\n", err, rating.Explored)
		return nil
	}
	fmt.Fprintf(out, "Solvable: yes, %d pours (difficulty %d)\n", rating.Moves, rating.Score())
	return nil
}

// solverOptions builds solver limits from the loaded config.
func solverOptions() *solver.Options {
	return &solver.Options{
		Timeout:   cfg.Solver.Timeout,
		MaxStates: cfg.Solver.MaxStates,
	}
}
