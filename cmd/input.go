package cmd

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
)

// readDescription returns the puzzle text named by a preset, a file path,
// or "-" for stdin.
func readDescription(cmd *cobra.Command, path, preset string) (string, error) {
	switch {
	case preset != "":
		return board.Preset(preset)
	case path == "":
		return "", errors.New("a puzzle file or --preset is required")
	case path == "-":
		data, err := io.ReadAll(cmd.InOrStdin())
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(data), nil
	default:
		data, err := os.ReadFile(path)
		if err != nil {
			return "", fmt.Errorf("failed to read puzzle file: %w", err)
		}
		return string(data), nil
	}
}

// loadFlasks reads and parses a puzzle, logging every load warning.
func loadFlasks(cmd *cobra.Command, path, preset string) ([]*board.Flask, []board.LoadWarning, error) {
	text, err := readDescription(cmd, path, preset)
	if err != nil {
		return nil, nil, err
	}
	flasks, warnings, err := board.LoadString(text)
	if err != nil {
		return nil, nil, err
	}
	for _, w := range warnings {
		logger.Warn("description line skipped",
			zap.Int("line", w.Line),
			zap.String("text", w.Text),
			zap.Stringer("reason", w.Reason),
			zap.Int("remaining", w.Remaining))
	}
	logger.Debug("puzzle loaded",
		zap.Int("flasks", len(flasks)),
		zap.Int("units", board.TotalUnits(flasks)))
	return flasks, warnings, nil
}

// firstArg returns args[0] or "".
func firstArg(args []string) string {
	if len(args) == 0 {
		return ""
	}
	return args[0]
}
