package main

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/config"
)

var (
	flagConfigWrite bool
	flagConfigForce bool
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print or install the default game config",
	Long: `Prints the built-in lander config. With --write it is saved to
~/.lander/configs/lander.yaml, where the game picks it up.

Examples:
  lander config > my-lander.yaml
  lander config --write`,
	Args: cobra.NoArgs,
	Run:  runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigWrite, "write", false, "Install the default config in ~/.lander/configs")
	configCmd.Flags().BoolVar(&flagConfigForce, "force", false, "Overwrite an existing config with --write")
}

func runConfig(_ *cobra.Command, _ []string) {
	data := config.GetDefaultYAML("lander")

	if !flagConfigWrite {
		_, used, err := config.LoadLanderFrom("")
		if err == nil && used != "" {
			fmt.Fprintf(os.Stderr, "# active config: %s\n", used)
		}
		os.Stdout.Write(data)
		return
	}

	path := config.UserLanderPath()
	if path == "" {
		fmt.Fprintln(os.Stderr, "Error: cannot find the home directory")
		os.Exit(1)
	}
	if err := writeConfig(path, data, flagConfigForce); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Wrote %s\n", path)
}

// writeConfig writes data to path, refusing to replace an existing file
// unless force is set.
func writeConfig(path string, data []byte, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return fmt.Errorf("%s already exists (use --force to overwrite)", path)
		} else if !errors.Is(err, fs.ErrNotExist) {
			return err
		}
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create config directory: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
