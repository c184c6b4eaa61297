package cmd

import (
	"errors"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MuhammadZain2005/Flask-Filler/internal/console"
	"github.com/MuhammadZain2005/Flask-Filler/internal/game"
	"github.com/MuhammadZain2005/Flask-Filler/internal/render"
	"github.com/MuhammadZain2005/Flask-Filler/internal/tui"
)

var (
	playPreset string
	playPlain  bool
)

func init() {
	playCmd := &cobra.Command{
		Use:   "play [file]",
		Short: "Play a puzzle interactively",
		Long: `Play a puzzle from a description file, stdin ("-"), or a built-in preset.

The full-screen interface picks flasks with the number keys. --plain uses a
line prompt instead; type EXIT at any prompt to leave. Moves are read from
stdin, so "-" is not accepted as the puzzle source.

Examples:
  flasks play puzzle.txt
  flasks play --preset classic
  flasks gen -o puzzle.txt && flasks play --plain puzzle.txt`,
		Args: cobra.MaximumNArgs(1),
		RunE: runPlay,
	}

	playCmd.Flags().StringVarP(&playPreset, "preset", "p", "", "Built-in puzzle to play instead of a file")
	playCmd.Flags().BoolVar(&playPlain, "plain", false, "Use the line prompt instead of the full-screen interface")

	rootCmd.AddCommand(playCmd)
}

func runPlay(cmd *cobra.Command, args []string) error {
	path := firstArg(args)
	if path == "-" && playPreset == "" {
		return errors.New("play reads moves from stdin, so the puzzle must come from a file or --preset")
	}

	flasks, warnings, err := loadFlasks(cmd, path, playPreset)
	if err != nil {
		return err
	}
	// loadFlasks already logged the warnings; repeat them only when the log
	// goes somewhere the player cannot see.
	if !logsToTerminal(cfg.Log) {
		for _, w := range warnings {
			fmt.Fprintln(cmd.ErrOrStderr(), "warning:", w)
		}
	}

	state := game.NewState(flasks)
	out := cmd.OutOrStdout()

	if playPlain {
		r := render.New(lipgloss.NewRenderer(out), cfg.Palette, cfg.Display.FlasksPerRow)
		c := console.New(cmd.InOrStdin(), out, r, console.WithClearScreen())
		res, err := game.NewLoop(c, c, logger).Run(cmd.Context(), state)
		if err != nil {
			return err
		}
		if res.Outcome == game.OutcomeQuit {
			fmt.Fprintln(out, "Exiting game.")
		}
		return nil
	}

	// Logs written to the terminal would tear the full-screen view.
	uiLogger := logger
	if logsToTerminal(cfg.Log) {
		uiLogger = zap.NewNop()
	}
	r := render.New(lipgloss.NewRenderer(out), cfg.Palette, cfg.Display.FlasksPerRow)
	res, err := tui.Run(state, r, uiLogger,
		tea.WithAltScreen(),
		tea.WithContext(cmd.Context()),
		tea.WithInput(cmd.InOrStdin()),
		tea.WithOutput(out))
	if err != nil {
		return err
	}

	if res.Outcome == game.OutcomeWon {
		fmt.Fprintf(out, "You win! Solved in %d pours.\n", res.Moves)
	} else {
		fmt.Fprintln(out, "Exiting game.")
	}
	return nil
}
