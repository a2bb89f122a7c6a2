// lander is a moon lander for the terminal.
//
// Usage:
//
//	lander list              - List game modes
//	lander play [mode]       - Play a mode directly
//	lander menu              - Start menu to pick modes, shop and scores
//	lander serve             - Start SSH server for remote play
//	lander scores <mode>     - Show high scores for a mode
//	lander shop [buy <item>] - List or buy consumables
//	lander wallet            - Show or top up a captain's coins
//	lander config            - Print or install the default config
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 30)
//	--seed <value>  - Set RNG seed for reproducible gameplay
//	--db <path>     - Set database path (default: ~/.lander/lander.db)
//	--log <path>    - Set log file (default: ~/.lander/lander.log)
//	--debug         - Log debug messages
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS     int
	flagSeed    int64
	flagDBPath  string
	flagLogPath string
	flagDebug   bool
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "lander",
	Short: "Moon Lander - land on the pad before the fuel runs out",
	Long: `Moon Lander is a terminal game: steer a lander with thrust and
flaps, touch down upright on the landing pad, and keep clear of the
alien saucer and falling asteroids.

Available commands:
  list     - Show all game modes
  play     - Play a mode directly
  menu     - Interactive menu with shop and scoreboard
  serve    - Start SSH server for remote play
  scores   - View high scores
  shop     - List or buy consumables
  wallet   - Show a captain's coins
  config   - Print or install the default config

Examples:
  lander play
  lander play lander_rugged --difficulty hard
  lander menu --captain neil
  lander serve --ssh :2222
  lander scores lander`,
	SilenceUsage:       true,
	PersistentPreRunE:  setupLogging,
	PersistentPostRunE: closeLogging,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 30, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.lander/lander.db", "Path to the lander database")
	rootCmd.PersistentFlags().StringVar(&flagLogPath, "log", "~/.lander/lander.log", "Path to the log file")
	rootCmd.PersistentFlags().BoolVar(&flagDebug, "debug", false, "Log debug messages")

	// Add subcommands
	rootCmd.AddCommand(listCmd)
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(menuCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(shopCmd)
	rootCmd.AddCommand(walletCmd)
	rootCmd.AddCommand(configCmd)
}
