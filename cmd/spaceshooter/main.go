// spaceshooter is a gamepad-driven arcade shooter: steer with the right
// stick, aim with the left, fire with the right trigger.
//
// Usage:
//
//	spaceshooter [run]          - Open the game window
//	spaceshooter simulate       - Play headless with an autopilot and report
//	spaceshooter assets         - Write placeholder sprites and the font
//
// Global flags:
//
//	--config <path>     - Game config YAML (default: search order)
//	--seed <value>      - RNG seed (0 = random based on time)
//	--log-level <lvl>   - debug, info, warn or error
package main

import (
	"fmt"
	"os"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagConfig   string
	flagSeed     uint64
	flagLogLevel string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "spaceshooter",
	Short: "Space shooter - an arcade shooter for gamepads",
	Long: `Space shooter opens a window with your ship at the center. Asteroids
spawn around you and home in; shoot them before they hit you four times.

Controls (standard gamepad):
  Right stick     - Move
  Left stick      - Aim
  Right trigger   - Fire
  East (O / B)    - Restart after game over
  Left click      - Log the world position (debug level)

Examples:
  spaceshooter assets
  spaceshooter
  spaceshooter run --config ./my-game.yaml --log-level debug
  spaceshooter simulate --frames 3600 --seed 42`,
	RunE: runGame,
}

func init() {
	rootCmd.PersistentFlags().StringVar(&flagConfig, "config", "", "Path to game config YAML")
	rootCmd.PersistentFlags().Uint64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagLogLevel, "log-level", "info", "Log level: debug, info, warn, error")
	rootCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding sprites and fonts")

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(simulateCmd)
	rootCmd.AddCommand(assetsCmd)
}

func newLogger() *log.Logger {
	logger := log.NewWithOptions(os.Stderr, log.Options{
		ReportTimestamp: true,
		Prefix:          "spaceshooter",
	})
	level, err := log.ParseLevel(flagLogLevel)
	if err != nil {
		logger.Warn("unknown log level, using info", "level", flagLogLevel)
		level = log.InfoLevel
	}
	logger.SetLevel(level)
	return logger
}

func seed() uint64 {
	if flagSeed != 0 {
		return flagSeed
	}
	return uint64(time.Now().UnixNano())
}
