package cmd

import (
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MuhammadZain2005/Flask-Filler/internal/solver"
)

var (
	solvePreset    string
	solveTimeout   time.Duration
	solveMaxStates int
)

func init() {
	solveCmd := &cobra.Command{
		Use:   "solve [file]",
		Short: "Find the shortest sequence of pours",
		Long: `Search for the fewest pours that leave every flask empty or sealed.
Moves are printed as source>destination with one-based flask numbers and can
be fed straight to replay.

Examples:
  flasks solve puzzle.txt
  flasks solve --preset classic --timeout 30s`,
		Args: cobra.MaximumNArgs(1),
		RunE: runSolve,
	}

	solveCmd.Flags().StringVarP(&solvePreset, "preset", "p", "", "Built-in puzzle to solve instead of a file")
	solveCmd.Flags().DurationVar(&solveTimeout, "timeout", 0, "Search timeout (default from config)")
	solveCmd.Flags().IntVar(&solveMaxStates, "max-states", 0, "Maximum positions to visit (default from config)")

	rootCmd.AddCommand(solveCmd)
}

func runSolve(cmd *cobra.Command, args []string) error {
	flasks, _, err := loadFlasks(cmd, firstArg(args), solvePreset)
	if err != nil {
		return err
	}

	opts := solverOptions()
	if solveTimeout > 0 {
		opts.Timeout = solveTimeout
	}
	if solveMaxStates > 0 {
		opts.MaxStates = solveMaxStates
	}

	s := solver.New(flasks, opts)
	start := time.Now()
	moves, err := s.Solve(cmd.Context())
	logger.Debug("search finished",
		zap.Int("explored", s.Explored()),
		zap.Duration("elapsed", time.Since(start)),
		zap.Error(err))
	if err != nil {
		return fmt.Errorf("solve failed: %w", err)
	}

	out := cmd.OutOrStdout()
	if len(moves) == 0 {
		fmt.Fprintln(out, "Already solved.")
		return nil
	}
	for i, m := range moves {
		fmt.Fprintf(out, "%3d. %s\n", i+1, m)
	}
	rating := solver.Rating{Moves: len(moves), Explored: s.Explored()}
	fmt.Fprintf(out, "%d pours, %d positions searched, difficulty %d\n", rating.Moves, rating.Explored, rating.Score())
	return nil
}
