package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/MuhammadZain2005/Flask-Filler/internal/config"
)

var (
	// Global flags
	configPath string
	verbose    bool

	cfg    *config.Config
	logger *zap.Logger
)

// rootCmd represents the base command
var rootCmd = &cobra.Command{
	Use:   "flasks",
	Short: "Magical flask sorting puzzle",
	Long: `Sort chemical units between flasks until every flask is empty or sealed.

A flask holds four units. It is sealed once its top three units match, and a
sealed flask can no longer be poured from or into.

Puzzle descriptions are plain text: the first line holds the flask count,
each following line is either a chemical label, which is staged, or a
directive like 3F1, which moves three staged units into flask 1.`,
	SilenceUsage: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		var err error
		if configPath != "" {
			cfg, err = config.Load(configPath)
			if err != nil {
				return err
			}
		} else {
			cfg = config.Default()
		}

		logger, err = newLogger(cfg.Log, verbose)
		if err != nil {
			return fmt.Errorf("failed to initialize logger: %w", err)
		}
		return nil
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		if logger != nil {
			_ = logger.Sync()
		}
	},
}

func init() {
	rootCmd.PersistentFlags().StringVar(&configPath, "config", "", "YAML config file")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "Enable debug logging")
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

// newLogger builds a console-encoded zap logger for the CLI.
func newLogger(lc config.LogConfig, debug bool) (*zap.Logger, error) {
	zc := zap.NewProductionConfig()
	zc.Encoding = "console"
	zc.EncoderConfig.EncodeTime = zapcore.ISO8601TimeEncoder
	zc.OutputPaths = []string{lc.Output}
	zc.ErrorOutputPaths = []string{"stderr"}

	level, err := zap.ParseAtomicLevel(strings.ToLower(lc.Level))
	if err != nil {
		return nil, err
	}
	zc.Level = level
	if debug {
		zc.Level = zap.NewAtomicLevelAt(zapcore.DebugLevel)
	}
	return zc.Build()
}

// logsToTerminal reports whether log output would interleave with the game.
func logsToTerminal(lc config.LogConfig) bool {
	return lc.Output == "stderr" || lc.Output == "stdout"
}
