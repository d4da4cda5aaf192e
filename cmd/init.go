package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/xll-gen/aoc2018/internal/config"
	"github.com/xll-gen/aoc2018/internal/templates"
)

var forceInit bool

// initCmd represents the init command.
var initCmd = &cobra.Command{
	Use:   "init [dir]",
	Short: "Write a default aoc2018.yaml",
	Args:  cobra.MaximumNArgs(1),
	Run: func(cmd *cobra.Command, args []string) {
		dir := "."
		if len(args) > 0 {
			dir = args[0]
		}
		path, err := runInit(dir, forceInit)
		if err != nil {
			fail(fmt.Errorf("initializing config: %w", err))
		}
		fmt.Printf("Wrote %s\n", path)
	},
}

func init() {
	initCmd.Flags().BoolVar(&forceInit, "force", false, "Overwrite an existing config file")
	rootCmd.AddCommand(initCmd)
}

// runInit writes the default configuration into dir, creating dir if needed.
//
// Parameters:
//   - dir: Directory that receives aoc2018.yaml.
//   - force: Overwrite an existing file.
//
// Returns:
//   - string: The path written.
//   - error: An error if the file exists (without force) or cannot be written.
func runInit(dir string, force bool) (string, error) {
	path := filepath.Join(dir, config.DefaultPath)
	if _, err := os.Stat(path); err == nil && !force {
		return "", fmt.Errorf("%s already exists (use --force to overwrite)", path)
	}

	if err := os.MkdirAll(dir, 0755); err != nil {
		return "", err
	}
	f, err := os.Create(path)
	if err != nil {
		return "", err
	}
	defer f.Close()

	if err := templates.Render(f, "aoc2018.yaml.tmpl", config.Default()); err != nil {
		return "", err
	}
	return path, f.Close()
}
