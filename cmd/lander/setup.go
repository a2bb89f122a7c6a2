package main

import (
	"fmt"
	"io"
	"os"
	"os/user"
	"path/filepath"
	"strings"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-lander/internal/config"
	"github.com/vovakirdan/tui-lander/internal/core"
	"github.com/vovakirdan/tui-lander/internal/games/lander"
	"github.com/vovakirdan/tui-lander/internal/platform/tui"
	"github.com/vovakirdan/tui-lander/internal/storage"
)

var (
	logger  = log.New(io.Discard)
	logFile *os.File
)

// setupLogging opens the log file. The terminal belongs to Bubble Tea, so
// nothing is logged to stdout.
func setupLogging(_ *cobra.Command, _ []string) error {
	path, err := expandHome(flagLogPath)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
		return fmt.Errorf("cannot create log directory: %w", err)
	}
	f, err := os.OpenFile(path, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}

	level := log.InfoLevel
	if flagDebug {
		level = log.DebugLevel
	}
	logFile = f
	logger = log.NewWithOptions(f, log.Options{
		ReportTimestamp: true,
		TimeFormat:      time.DateTime,
		Level:           level,
		Prefix:          "lander",
	})
	lander.SetLogger(logger)
	return nil
}

func closeLogging(_ *cobra.Command, _ []string) error {
	if logFile == nil {
		return nil
	}
	return logFile.Close()
}

// expandHome replaces a leading ~ with the home directory.
func expandHome(path string) (string, error) {
	if path != "~" && !strings.HasPrefix(path, "~/") {
		return path, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("cannot expand home directory: %w", err)
	}
	return filepath.Join(home, strings.TrimPrefix(path, "~")), nil
}

// runtimeConfig builds the runtime config from the terminal size and the
// global flags.
func runtimeConfig() core.RuntimeConfig {
	cfg := core.DefaultConfig()
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		cfg.ScreenW = w
		cfg.ScreenH = h
	}
	cfg.TickRate = flagFPS
	cfg.Seed = flagSeed
	return cfg
}

// gameFlags are the game settings shared by play and menu.
type gameFlags struct {
	config     string
	difficulty string
	captain    string
	watch      bool
}

func (f *gameFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVar(&f.config, "config", "", "Path to custom game config YAML")
	cmd.Flags().StringVar(&f.difficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
	cmd.Flags().StringVar(&f.captain, "captain", "", "Captain name for scores and the shop")
	cmd.Flags().BoolVar(&f.watch, "watch", false, "Reload the config file while playing")
}

// apply configures the lander package and validates the settings. A
// custom config that cannot be read is an error.
func (f *gameFlags) apply() (config.LanderConfig, error) {
	preset := config.DifficultyPreset(f.difficulty)
	if !config.ValidPreset(preset) {
		return config.LanderConfig{}, fmt.Errorf("unknown difficulty %q (want easy, normal, hard or fixed)", f.difficulty)
	}
	cfg, used, err := config.LoadLanderFrom(f.config)
	if err != nil {
		return config.LanderConfig{}, err
	}
	logger.Debug("config loaded", "path", used, "difficulty", f.difficulty)

	lander.SetConfigPath(f.config)
	lander.SetDifficultyPreset(f.difficulty)
	lander.SetWatch(f.watch)
	return cfg, nil
}

// options returns the session options for captain.
func options(cfg config.LanderConfig, captain string) tui.Options {
	return tui.Options{
		Captain: captain,
		Release: time.Duration(cfg.Input.ReleaseMS) * time.Millisecond,
		Logger:  logger,
	}
}

// defaultCaptain is the login name, used when no captain is given.
func defaultCaptain() string {
	if u, err := user.Current(); err == nil && u.Username != "" {
		return u.Username
	}
	return os.Getenv("USER")
}

// openStore opens the database. Games still run without it.
func openStore() *storage.Store {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Warning: could not open database: %v\n", err)
		logger.Warn("could not open database", "path", flagDBPath, "err", err)
		return nil
	}
	return store
}

// ensureCaptain opens the captain's account, creating it on first use.
func ensureCaptain(store *storage.Store, name string) {
	if store == nil || name == "" {
		return
	}
	if _, err := store.EnsureAccount(name); err != nil {
		logger.Warn("cannot open captain account", "captain", name, "err", err)
	}
}
