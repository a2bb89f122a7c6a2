package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/registry"
)

var menuFlags gameFlags

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Start the interactive menu",
	Long: `Opens the lander menu to pick a mode, visit the shop or check the
scoreboard. Without --captain you are asked for your name first.

Menu controls:
  Up/Down or J/K - Navigate
  Enter/Space    - Play selected mode
  S              - Shop
  Tab            - Scoreboard
  Q/Esc          - Quit`,
	Run: runMenu,
}

func init() {
	menuFlags.register(menuCmd)
}

func runMenu(_ *cobra.Command, _ []string) {
	landerCfg, err := menuFlags.apply()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	cfg := runtimeConfig()

	captain := menuFlags.captain
	if captain == "" {
		captain, err = tui.AskCaptain(defaultCaptain(), cfg.ScreenW)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		if captain == "" {
			return
		}
	}

	store := openStore()
	if store != nil {
		defer store.Close()
	}
	ensureCaptain(store, captain)

	for {
		result, err := tui.RunMenu(store, cfg, captain)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		cfg = result.Config

		switch {
		case result.Quit:
			return

		case result.WantsShop:
			goBack, err := tui.RunShop(store, captain, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !goBack {
				return
			}

		case result.WantsScoreboard:
			goBack, err := tui.RunScoreboard(store, captain, cfg.ScreenW, cfg.ScreenH)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
			if !goBack {
				return
			}

		case result.GameID != "":
			game, err := registry.Create(result.GameID)
			if err != nil {
				fmt.Fprintf(os.Stderr, "Error creating game: %v\n", err)
				os.Exit(1)
			}
			logger.Info("game started", "mode", result.GameID, "captain", captain)
			if err := tui.Run(game, store, cfg, options(landerCfg, captain)); err != nil {
				fmt.Fprintf(os.Stderr, "Error: %v\n", err)
				os.Exit(1)
			}
		}
	}
}
