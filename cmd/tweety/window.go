package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/tweety-escape/internal/platform/window"
	"github.com/vovakirdan/tweety-escape/internal/registry"
	"github.com/vovakirdan/tweety-escape/internal/storage"
)

var windowCmd = &cobra.Command{
	Use:   "window",
	Short: "Play in a desktop window",
	Long: `Open Tweety Escape in a desktop window. The window size comes from
surface.window_width and surface.window_height in tweety.yaml.

Controls:
  Space       - Start / flap / play again
  Left click  - Click the on-screen buttons
  Esc/Q       - Close the window`,
	Args: cobra.NoArgs,
	RunE: runWindow,
}

func init() {
	windowCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runWindow(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logger, err := newLogger(os.Stderr, "tweety")
	if err != nil {
		return err
	}

	game, err := registry.Create("tweety")
	if err != nil {
		return err
	}

	journal, err := storage.Open(storage.MemoryDSN)
	if err != nil {
		logger.Warn("could not open attempt journal", "error", err)
		journal = nil
	} else {
		defer journal.Close()
	}

	player := openPlayer(logger)
	defer player.Close()

	rt := runtimeConfig(float64(cfg.Surface.WindowWidth), float64(cfg.Surface.WindowHeight))
	sessionID := storage.NewSessionID()
	logger.Info("opening window", "width", rt.SurfaceW, "height", rt.SurfaceH, "tps", rt.TickRate)

	if err := window.Run(game, rt, window.Options{
		Journal:   journal,
		Player:    player,
		Logger:    logger,
		SessionID: sessionID,
	}); err != nil {
		return fmt.Errorf("error running window: %w", err)
	}

	printSummary(journal, sessionID)
	return nil
}
