package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
	"github.com/MuhammadZain2005/Flask-Filler/internal/game"
)

var replayPreset string

func init() {
	replayCmd := &cobra.Command{
		Use:   "replay [file] [moves...]",
		Short: "Apply a list of pours without prompting",
		Long: `Apply pours to a puzzle and report the result. Moves are one-based
source>destination pairs; "1>3", "1-3" and "1,3" are all accepted.
With --preset every argument is a move.

Examples:
  flasks replay puzzle.txt '1>3' '2>1' '3>2'
  flasks replay --preset swap 1,3 2,1 3,2`,
		Args: cobra.MinimumNArgs(1),
		RunE: runReplay,
	}

	replayCmd.Flags().StringVarP(&replayPreset, "preset", "p", "", "Built-in puzzle to replay on instead of a file")

	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	path, moveArgs := "", args
	if replayPreset == "" {
		path, moveArgs = args[0], args[1:]
	}

	flasks, _, err := loadFlasks(cmd, path, replayPreset)
	if err != nil {
		return err
	}

	moves := make([]board.Move, 0, len(moveArgs))
	for _, arg := range moveArgs {
		m, err := game.ParseMove(arg, len(flasks))
		if err != nil {
			return err
		}
		moves = append(moves, m)
	}

	rec := &game.Recorder{}
	state := game.NewState(flasks)
	res, err := game.NewLoop(game.NewScript(moves), rec, logger).Run(cmd.Context(), state)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, rej := range rec.Rejections {
		fmt.Fprintf(out, "rejected %s: %s\n", board.Move{Source: rej.Source, Dest: rej.Dest}, rej.Error())
	}
	fmt.Fprint(out, board.Format(state.Flasks))
	switch res.Outcome {
	case game.OutcomeWon:
		fmt.Fprintf(out, "Solved after %d pours.\n", res.Moves)
	default:
		fmt.Fprintf(out, "Not solved after %d pours.\n", res.Moves)
	}
	return nil
}
