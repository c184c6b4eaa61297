package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/MuhammadZain2005/Flask-Filler/internal/generator"
)

var (
	numPuzzles  int
	colorCount  string
	emptyFlasks int
	genSeed     int64
	outputFile  string
	timeout     time.Duration
)

func init() {
	genCmd := &cobra.Command{
		Use:   "gen",
		Short: "Generate flask puzzles",
		Long: `Generate one or more solvable flask puzzles as description text.

Examples:
  flasks gen --colors 4 | flasks solve -
  flasks gen -n 5 --colors 3:5 --empty 2
  flasks gen --colors 6 --timeout 30s -o puzzle.txt`,
		RunE: runGen,
	}

	genCmd.Flags().IntVarP(&numPuzzles, "number", "n", 1, "Number of puzzles to generate")
	genCmd.Flags().StringVarP(&colorCount, "colors", "c", fmt.Sprintf("%d", generator.DefaultColors), "Number of chemical types 2-8 or range like 3:5")
	genCmd.Flags().IntVarP(&emptyFlasks, "empty", "e", generator.DefaultEmptyFlasks, "Spare flasks that start empty")
	genCmd.Flags().Int64Var(&genSeed, "seed", 0, "Seed for reproducible output (0 = random)")
	genCmd.Flags().StringVarP(&outputFile, "output", "o", "", "Output file (e.g., puzzle.txt); numbered when -n > 1")
	genCmd.Flags().DurationVar(&timeout, "timeout", 10*time.Second, "Generation timeout per puzzle")

	rootCmd.AddCommand(genCmd)
}

// parseColorRange reads a colour count ("4") or an inclusive range ("3:5").
// Both ends must be within the generator's limits.
func parseColorRange(s string) (lo, hi int, err error) {
	first, second, isRange := strings.Cut(s, ":")
	if lo, err = parseColors(first); err != nil {
		return 0, 0, err
	}
	if !isRange {
		return lo, lo, nil
	}
	if hi, err = parseColors(second); err != nil {
		return 0, 0, err
	}
	if lo > hi {
		return 0, 0, fmt.Errorf("color range %q runs backwards", s)
	}
	return lo, hi, nil
}

// parseColors reads one colour count.
func parseColors(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil {
		return 0, fmt.Errorf("invalid color count %q (use a number like 4 or a range like 3:5)", s)
	}
	if n < generator.MinColors || n > generator.MaxColors {
		return 0, fmt.Errorf("%w, got %d", generator.ErrInvalidColors, n)
	}
	return n, nil
}

// numberedPath inserts a one-based index before the extension when more
// than one puzzle is written: puzzle.txt -> puzzle-2.txt.
func numberedPath(path string, i, total int) string {
	if total <= 1 {
		return path
	}
	ext := filepath.Ext(path)
	return fmt.Sprintf("%s-%d%s", strings.TrimSuffix(path, ext), i+1, ext)
}

func runGen(cmd *cobra.Command, args []string) error {
	minColors, maxColors, err := parseColorRange(colorCount)
	if err != nil {
		return err
	}

	seed := genSeed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))
	out := cmd.OutOrStdout()

	for i := 0; i < numPuzzles; i++ {
		colors := minColors
		if maxColors > minColors {
			colors = minColors + rng.Intn(maxColors-minColors+1)
		}

		opts := generator.DefaultOptions(colors)
		opts.EmptyFlasks = emptyFlasks
		opts.Timeout = timeout
		opts.Seed = rng.Int63()
		opts.MaxStates = cfg.Solver.MaxStates
		gen := generator.New(opts)

		puzzle, err := gen.Generate(cmd.Context())
		if err != nil {
			return fmt.Errorf("generation failed: %w", err)
		}
		pours := len(puzzle.Solution)
		logger.Debug("puzzle generated",
			zap.Int("colors", colors),
			zap.Int("flasks", len(puzzle.Flasks)),
			zap.Int("pours", pours))

		if outputFile == "" {
			// Keep stdout loadable; the summary goes to stderr.
			fmt.Fprintf(cmd.ErrOrStderr(), "Puzzle #%d (colors: %d, shortest solution: %d pours)\n", i+1, colors, pours)
			fmt.Fprint(out, puzzle.Description())
			continue
		}

		path := numberedPath(outputFile, i, numPuzzles)
		if err := os.WriteFile(path, []byte(puzzle.Description()), 0o644); err != nil {
			return fmt.Errorf("failed to write puzzle file: %w", err)
		}
		fmt.Fprintf(out, "Wrote %s (colors: %d, shortest solution: %d pours)\n", path, colors, pours)
	}

	return nil
}
