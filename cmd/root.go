package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
	"github.com/xll-gen/aoc2018/internal/config"
	"github.com/xll-gen/aoc2018/internal/ui"
	"github.com/xll-gen/aoc2018/pkg/log"
)

var (
	cfgFile   string
	logLevel  string
	logFile   string
	colorMode string

	// cfg is the configuration resolved for the running command.
	cfg = config.Default()
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "aoc2018",
	Short: "Advent of Code 2018 puzzle solvers",
	Long: `aoc2018 solves Advent of Code 2018 puzzles. Each subcommand reads its
puzzle input from a file argument or standard input and prints the answers.`,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		if err := setup(cmd); err != nil {
			fail(err)
		}
	},
	PersistentPostRun: func(cmd *cobra.Command, args []string) {
		_ = log.Close()
	},
}

// Execute adds all child commands to the root command and sets flags appropriately.
// This is called by main.main(). It only needs to happen once to the rootCmd.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// init initializes the root command and its flags.
func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", config.DefaultPath, "Path to the YAML config file")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "Log level (debug, info, warn, error)")
	rootCmd.PersistentFlags().StringVar(&logFile, "log-file", "", "Write logs to this file instead of stderr")
	rootCmd.PersistentFlags().StringVar(&colorMode, "color", "", "Colorize results (auto, always, never)")
}

// setup loads the configuration, applies flag overrides and initializes logging.
// The default config path is optional; an explicitly named one must exist.
func setup(cmd *cobra.Command) error {
	flags := cmd.Flags()
	loaded, err := config.Load(cfgFile, !flags.Changed("config"))
	if err != nil {
		return err
	}

	if flags.Changed("log-level") {
		loaded.Logging.Level = logLevel
	}
	if flags.Changed("log-file") {
		loaded.Logging.Path = logFile
	}
	if flags.Changed("color") {
		loaded.Output.Color = colorMode
	}
	applyCommandFlags(cmd, loaded)

	if err := config.Validate(loaded); err != nil {
		return err
	}
	if loaded.Output.Color == "auto" {
		// Results are buffered before printing, so decide against the real stdout now.
		loaded.Output.Color = "never"
		if ui.IsTerminal(os.Stdout) {
			loaded.Output.Color = "always"
		}
	}

	if _, err := log.Init(loaded.Logging.Path, loaded.Logging.Level); err != nil {
		return fmt.Errorf("failed to initialize logger: %w", err)
	}
	log.Debug("configuration loaded", "command", cmd.Name(), "config", cfgFile,
		"grid_mode", loaded.Grid.Mode, "grid_size", loaded.Grid.Size)

	cfg = loaded
	return nil
}

// applyCommandFlags copies subcommand flags over the loaded configuration.
// Flags a command does not define are never reported as changed.
func applyCommandFlags(cmd *cobra.Command, c *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("grid-mode") {
		c.Grid.Mode = gridMode
	}
	if flags.Changed("grid-size") {
		c.Grid.Size = gridSize
	}
	if flags.Changed("max-passes") {
		c.Frequency.MaxPasses = maxPasses
	}
	if flags.Changed("safe-distance") {
		c.Coords.SafeDistance = safeDistance
	}
	if flags.Changed("workers") {
		c.Steps.Workers = workers
	}
	if flags.Changed("base-duration") {
		c.Steps.BaseDuration = baseDuration
	}
}

// fail reports err on stderr and exits with status 1.
func fail(err error) {
	log.Error("command failed", "err", err)
	ui.NewPrinter(os.Stderr, ui.IsTerminal(os.Stderr)).Error(err)
	_ = log.Close()
	os.Exit(1)
}
