package cmd

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/MuhammadZain2005/Flask-Filler/internal/board"
	"github.com/MuhammadZain2005/Flask-Filler/internal/generator"
)

// execute runs the root command with fresh flag values and returns stdout
// and stderr separately.
func execute(t *testing.T, stdin string, args ...string) (string, string, error) {
	t.Helper()

	configPath, verbose = "", false
	playPreset, playPlain = "", false
	checkPreset, checkSolve = "", false
	solvePreset, solveTimeout, solveMaxStates = "", 0, 0
	replayPreset = ""
	numPuzzles, colorCount, emptyFlasks, genSeed, outputFile, timeout = 1, "3", 1, 0, "", 10*time.Second

	var stdout, stderr bytes.Buffer
	rootCmd.SetOut(&stdout)
	rootCmd.SetErr(&stderr)
	rootCmd.SetIn(strings.NewReader(stdin))
	rootCmd.SetArgs(args)
	err := rootCmd.Execute()
	return stdout.String(), stderr.String(), err
}

func writeFile(t *testing.T, name, text string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(text), 0o644))
	return path
}

func TestCheckPreset(t *testing.T) {
	out, _, err := execute(t, "", "check", "--preset", "swap")
	require.NoError(t, err)
	assert.Contains(t, out, "Flasks: 3  Units: 6  Sealed: 0")
	assert.Contains(t, out, " 1: [AA AA BB]")
	assert.Contains(t, out, "Won: no")
	assert.NotContains(t, out, "Solvable")
}

func TestCheckSolve(t *testing.T) {
	out, _, err := execute(t, "", "check", "--preset", "swap", "--solve")
	require.NoError(t, err)
	assert.Contains(t, out, "Solvable: yes, 3 pours")

	path := writeFile(t, "stuck.txt", "2\nAA\nBB\n2F1\n")
	out, _, err = execute(t, "", "check", "--solve", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Solvable: no")
}

func TestCheckReportsWarnings(t *testing.T) {
	path := writeFile(t, "puzzle.txt", "2\nAA\nAA\nAA\n3F1\nBB\n1F5\n")
	out, _, err := execute(t, "", "check", path)
	require.NoError(t, err)
	assert.Contains(t, out, "Warnings (1):")
	assert.Contains(t, out, "line 7: 1F5: flask number out of range")
	assert.Contains(t, out, " 1: [AA AA AA] sealed")
	assert.Contains(t, out, "Won: yes")
}

func TestCheckStdin(t *testing.T) {
	out, _, err := execute(t, "1\nAA\n1F1\n", "check", "-")
	require.NoError(t, err)
	assert.Contains(t, out, " 1: [AA]")
}

func TestCheckErrors(t *testing.T) {
	_, _, err := execute(t, "", "check")
	assert.Error(t, err)

	_, _, err = execute(t, "", "check", filepath.Join(t.TempDir(), "missing.txt"))
	assert.Error(t, err)

	_, _, err = execute(t, "", "check", writeFile(t, "bad.txt", "lots\n"))
	assert.ErrorIs(t, err, board.ErrInvalidHeader)

	_, _, err = execute(t, "", "check", "--preset", "nope")
	assert.Error(t, err)
}

func TestSolve(t *testing.T) {
	out, _, err := execute(t, "", "solve", "--preset", "swap")
	require.NoError(t, err)
	assert.Contains(t, out, "  1. ")
	assert.Contains(t, out, "3 pours")

	out, _, err = execute(t, "", "solve", writeFile(t, "done.txt", "1\nAA\nAA\nAA\n3F1\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "Already solved.")

	_, _, err = execute(t, "", "solve", writeFile(t, "stuck.txt", "2\nAA\nBB\n2F1\n"))
	assert.Error(t, err)
}

func TestReplay(t *testing.T) {
	out, _, err := execute(t, "", "replay", "--preset", "swap", "2>2", "1>3", "2>1", "3>2")
	require.NoError(t, err)
	assert.Contains(t, out, "rejected 2>2: Source and destination flasks can't be the same.")
	assert.Contains(t, out, "Solved after 3 pours.")

	path := writeFile(t, "swap.txt", mustPreset(t, "swap"))
	out, _, err = execute(t, "", "replay", path, "1,3")
	require.NoError(t, err)
	assert.Contains(t, out, "Not solved after 1 pours.")

	_, _, err = execute(t, "", "replay", "--preset", "swap", "1>9")
	assert.Error(t, err)
}

func TestPlayPlain(t *testing.T) {
	out, _, err := execute(t, "1\n3\n2\n1\n3\n2\n", "play", "--plain", "--preset", "swap")
	require.NoError(t, err)
	assert.Contains(t, out, "Select Source Flask:")
	assert.Contains(t, out, "You win!")

	out, _, err = execute(t, "exit\n", "play", "--plain", "--preset", "swap")
	require.NoError(t, err)
	assert.Contains(t, out, "Exiting game.")
}

func TestPlayRejectsStdinPuzzle(t *testing.T) {
	_, _, err := execute(t, "1\nAA\n1F1\n", "play", "--plain", "-")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "stdin")

	_, _, err = execute(t, "", "play", "-")
	assert.Error(t, err)
}

func TestPlayWarningsShownOnce(t *testing.T) {
	puzzle := writeFile(t, "puzzle.txt", "2\nAA\n1F5\n1F1\n")

	// Default config logs to stderr, which already carries the warning.
	_, stderr, err := execute(t, "exit\n", "play", "--plain", puzzle)
	require.NoError(t, err)
	assert.NotContains(t, stderr, "warning:")

	logFile := filepath.Join(t.TempDir(), "flasks.log")
	config := writeFile(t, "flasks.yaml", "log:\n  output: "+logFile+"\n")
	_, stderr, err = execute(t, "exit\n", "--config", config, "play", "--plain", puzzle)
	require.NoError(t, err)
	assert.Equal(t, 1, strings.Count(stderr, "warning:"))
	assert.Contains(t, stderr, "line 3: 1F5: flask number out of range")
}

func TestGenStdout(t *testing.T) {
	out, summary, err := execute(t, "", "gen", "--colors", "2", "--seed", "3")
	require.NoError(t, err)
	assert.Contains(t, summary, "Puzzle #1 (colors: 2")

	flasks, warnings, err := board.LoadString(out)
	require.NoError(t, err)
	assert.Empty(t, warnings)
	assert.Len(t, flasks, 3)
	assert.False(t, board.AllSealed(flasks))
}

func TestGenFiles(t *testing.T) {
	path := filepath.Join(t.TempDir(), "puzzle.txt")
	out, _, err := execute(t, "", "gen", "-n", "2", "--colors", "2:3", "--seed", "11", "-o", path)
	require.NoError(t, err)
	assert.Contains(t, out, "puzzle-1.txt")
	assert.Contains(t, out, "puzzle-2.txt")

	for _, name := range []string{"puzzle-1.txt", "puzzle-2.txt"} {
		data, err := os.ReadFile(filepath.Join(filepath.Dir(path), name))
		require.NoError(t, err)
		_, warnings, err := board.LoadString(string(data))
		require.NoError(t, err)
		assert.Empty(t, warnings)
	}
}

func TestGenRejectsBadColors(t *testing.T) {
	for _, c := range []string{"1", "9", "5:3", "x", "2:3:4"} {
		_, _, err := execute(t, "", "gen", "--colors", c)
		assert.Error(t, err, c)
	}
}

func TestParseColorRange(t *testing.T) {
	lo, hi, err := parseColorRange("4")
	require.NoError(t, err)
	assert.Equal(t, [2]int{4, 4}, [2]int{lo, hi})

	lo, hi, err = parseColorRange(" 3 : 5 ")
	require.NoError(t, err)
	assert.Equal(t, [2]int{3, 5}, [2]int{lo, hi})

	for _, s := range []string{"1", "2:9", "0:3"} {
		_, _, err := parseColorRange(s)
		assert.ErrorIs(t, err, generator.ErrInvalidColors, s)
	}
	for _, s := range []string{"", "x", "3:", "5:3", "2:3:4"} {
		_, _, err := parseColorRange(s)
		assert.Error(t, err, s)
	}
}

func TestNumberedPath(t *testing.T) {
	assert.Equal(t, "p.txt", numberedPath("p.txt", 0, 1))
	assert.Equal(t, "p-3.txt", numberedPath("p.txt", 2, 5))
	assert.Equal(t, "dir/p-1", numberedPath("dir/p", 0, 2))
}

func TestConfigFlag(t *testing.T) {
	path := writeFile(t, "flasks.yaml", "display:\n  flasks_per_row: 2\n")
	_, _, err := execute(t, "", "--config", path, "check", "--preset", "swap")
	require.NoError(t, err)
	assert.Equal(t, 2, cfg.Display.FlasksPerRow)

	_, _, err = execute(t, "", "--config", writeFile(t, "bad.yaml", "log:\n  level: loud\n"), "check", "--preset", "swap")
	assert.Error(t, err)
}

func mustPreset(t *testing.T, name string) string {
	t.Helper()
	text, err := board.Preset(name)
	require.NoError(t, err)
	return text
}
