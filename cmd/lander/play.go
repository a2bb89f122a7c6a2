package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

var playFlags gameFlags

var playCmd = &cobra.Command{
	Use:   "play [mode]",
	Short: "Play a mode",
	Long: `Start playing the specified mode (default: lander).

Controls:
  Up/W          - Thrust
  Left/Right    - Flaps
  Space         - Continue after a landing, restart after game over
  P/Esc         - Pause
  R             - Restart
  Q/Ctrl+C      - Quit
  Ctrl+S        - Screenshot

Difficulty options:
  easy   - Start at lowest difficulty, progresses to max
  normal - Start at 30% difficulty, progresses to max
  hard   - Start at 70% difficulty, progresses to max
  fixed  - No progression, stays at config's initial level

Examples:
  lander play
  lander play lander_rugged --difficulty hard
  lander play --config ./my-lander.yaml --watch
  lander play lander_flat --captain neil`,
	Args: cobra.MaximumNArgs(1),
	Run:  runPlay,
}

func init() {
	playFlags.register(playCmd)
}

func runPlay(_ *cobra.Command, args []string) {
	gameID := "lander"
	if len(args) > 0 {
		gameID = args[0]
	}

	// Check if mode exists
	if !registry.Exists(gameID) {
		fmt.Fprintf(os.Stderr, "Error: unknown mode %q\n", gameID)
		fmt.Fprintln(os.Stderr, "Run 'lander list' to see available modes.")
		os.Exit(1)
	}

	landerCfg, err := playFlags.apply()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	captain := playFlags.captain
	if captain == "" {
		captain = defaultCaptain()
	}

	game, err := registry.Create(gameID)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
		os.Exit(1)
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	ensureCaptain(store, captain)

	logger.Info("game started", "mode", gameID, "captain", captain, "seed", flagSeed)
	if err := tui.Run(game, store, runtimeConfig(), options(landerCfg, captain)); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
