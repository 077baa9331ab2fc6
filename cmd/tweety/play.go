package main

import (
	"fmt"
	"os"

	"github.com/adrg/xdg"
	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tweety-escape/internal/audio"
	"github.com/vovakirdan/tweety-escape/internal/platform/tui"
	"github.com/vovakirdan/tweety-escape/internal/registry"
	"github.com/vovakirdan/tweety-escape/internal/storage"
)

var flagMute bool

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play in the current terminal",
	Long: `Start Tweety Escape in the current terminal.

The play field is sized once from the terminal at startup.

Controls:
  Space      - Start / flap / play again
  Mouse      - Click the on-screen buttons
  Tab        - Best attempts (menu and game over)
  Ctrl+S     - Save the frame as text
  Ctrl+Y     - Copy the frame to the clipboard
  Q/Ctrl+C   - Quit

Logs are written to $XDG_STATE_HOME/tweety/tweety.log.`,
	Args: cobra.NoArgs,
	RunE: runPlay,
}

func init() {
	playCmd.Flags().BoolVar(&flagMute, "mute", false, "Disable sound")
}

func runPlay(_ *cobra.Command, _ []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	logPath, err := xdg.StateFile("tweety/tweety.log")
	if err != nil {
		return fmt.Errorf("cannot resolve log path: %w", err)
	}
	logFile, err := os.OpenFile(logPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0o600)
	if err != nil {
		return fmt.Errorf("cannot open log file: %w", err)
	}
	defer logFile.Close()

	logger, err := newLogger(logFile, "tweety")
	if err != nil {
		return err
	}

	cols, rows := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		cols, rows = w, h
	}
	rt := tui.SurfaceConfig(runtimeConfig(0, 0), cols, rows, cfg.Surface.CellWidth, cfg.Surface.CellHeight)

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

	sessionID := storage.NewSessionID()
	logger.Info("starting", "cols", cols, "rows", rows, "width", rt.SurfaceW, "height", rt.SurfaceH, "seed", rt.Seed)

	if err := tui.Run(game, rt, tui.Options{
		Journal:    journal,
		Player:     player,
		Logger:     logger,
		SessionID:  sessionID,
		CellWidth:  cfg.Surface.CellWidth,
		CellHeight: cfg.Surface.CellHeight,
	}); err != nil {
		return fmt.Errorf("error running game: %w", err)
	}

	printSummary(journal, sessionID)
	return nil
}

// openPlayer returns the speaker, or a silent player when muted or when no
// audio device is available.
func openPlayer(logger *log.Logger) audio.Player {
	if flagMute {
		return audio.Nop{}
	}
	player, err := audio.Open()
	if err != nil {
		logger.Warn("audio disabled", "error", err)
	}
	return player
}

// printSummary prints the attempts of this run after the UI has exited.
func printSummary(journal *storage.Journal, sessionID string) {
	if journal == nil {
		return
	}
	sum, err := journal.SessionSummary(sessionID)
	if err != nil || sum.Attempts == 0 {
		return
	}
	fmt.Printf("Attempts: %d   Best: %d   Average: %.1f\n", sum.Attempts, sum.Best, sum.Average)
}
