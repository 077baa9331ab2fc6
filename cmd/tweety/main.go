// tweety is Tweety Escape: a flappy-style arcade game for the terminal,
// a desktop window or an SSH server.
//
// Usage:
//
//	tweety play      - Play in the current terminal
//	tweety window    - Play in a desktop window
//	tweety serve     - Start SSH server for remote play
//	tweety tiers     - Show the difficulty tiers in effect
//
// Global flags:
//
//	--fps <rate>         - Set tick rate (default: 60)
//	--seed <value>       - Set RNG seed for reproducible gameplay
//	--config <path>      - Use a custom tweety.yaml
//	--log-level <level>  - debug, info, warn or error (default: info)
package main

import (
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/tweety-escape/internal/config"
	"github.com/vovakirdan/tweety-escape/internal/core"
	"github.com/vovakirdan/tweety-escape/internal/games/tweety"
)

var (
	// Global flags
	flagFPS      int
	flagSeed     int64
	flagConfig   string
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "tweety",
	Short: "Tweety Escape - help Tweety fly through the forest",
	Long: `Tweety Escape is a one-button arcade game. Flap through the gaps
between the trees; every tree you pass scores a point and the forest
gets faster as you go.

Available commands:
  play     - Play in the current terminal
  window   - Play in a desktop window
  serve    - Start SSH server for remote play
  tiers    - Show the difficulty tiers in effect

Examples:
  tweety play
  tweety play --seed 42
  tweety window --config ./tweety.yaml
  tweety serve --ssh :2222`,
	SilenceUsage: true,
}

func init() {
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to custom tweety.yaml")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")

	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(windowCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(tiersCmd)
}

// newLogger creates a logger writing to w at the --log-level level.
func newLogger(w io.Writer, prefix string) (*log.Logger, error) {
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		return nil, fmt.Errorf("invalid --log-level %q: %w", flagLogLevel, err)
	}
	return log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		Prefix:          prefix,
		Level:           level,
	}), nil
}

// loadConfig loads tweety.yaml and hands it to the game package.
func loadConfig() (config.TweetyConfig, error) {
	cfg, err := config.LoadTweety(flagConfig)
	if err != nil {
		return cfg, err
	}
	tweety.SetConfig(cfg)
	return cfg, nil
}

// runtimeConfig builds the per-process runtime settings from the global flags.
func runtimeConfig(w, h float64) core.RuntimeConfig {
	rt := core.DefaultConfig()
	rt.SurfaceW = w
	rt.SurfaceH = h
	if flagFPS > 0 {
		rt.TickRate = flagFPS
	}
	rt.Seed = flagSeed
	return rt
}
