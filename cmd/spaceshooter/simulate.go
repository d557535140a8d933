package main

import (
	"fmt"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"chosenoffset.com/spaceshooter/internal/config"
	"chosenoffset.com/spaceshooter/internal/game"
)

var flagFrames int

var simulateCmd = &cobra.Command{
	Use:   "simulate",
	Short: "Play headless with an autopilot and print a report",
	Long: `Run the game rules without a window. An autopilot circles the origin,
aims at the nearest asteroid with the trigger held, and restarts after each
game over. The same seed always produces the same report.

Examples:
  spaceshooter simulate
  spaceshooter simulate --frames 36000 --seed 7`,
	RunE: runSimulate,
}

func init() {
	simulateCmd.Flags().IntVar(&flagFrames, "frames", 3600, "Number of frames to simulate")
}

func runSimulate(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}
	if flagFrames <= 0 {
		return fmt.Errorf("--frames must be positive, got %d", flagFrames)
	}

	runSeed := seed()
	h, err := game.NewHeadless(game.HeadlessOptions{Config: cfg, Seed: runSeed, Logger: logger})
	if err != nil {
		return err
	}

	start := time.Now()
	stats, err := h.Run(flagFrames)
	if err != nil {
		return fmt.Errorf("simulation failed at frame %d: %w", stats.Frames, err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), renderReport(stats, runSeed, cfg.Window.TickRate, time.Since(start)))
	return nil
}

var (
	reportTitle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("6"))
	reportLabel = lipgloss.NewStyle().Foreground(lipgloss.Color("8")).Width(20)
	reportValue = lipgloss.NewStyle().Bold(true).Align(lipgloss.Right).Width(10)
	reportBox   = lipgloss.NewStyle().Border(lipgloss.RoundedBorder()).Padding(0, 1)
)

// renderReport formats simulation counters as a boxed table
func renderReport(s game.Stats, seed uint64, tickRate int, elapsed time.Duration) string {
	gameTime := time.Duration(s.Frames) * time.Second / time.Duration(tickRate)
	rows := []struct {
		label, value string
	}{
		{"Seed", strconv.FormatUint(seed, 10)},
		{"Frames", strconv.Itoa(s.Frames)},
		{"Game time", gameTime.Round(time.Millisecond).String()},
		{"Wall time", elapsed.Round(time.Millisecond).String()},
		{"Bullets fired", strconv.Itoa(s.BulletsFired)},
		{"Asteroids spawned", strconv.Itoa(s.AsteroidsSpawned)},
		{"Asteroids shot", strconv.Itoa(s.AsteroidsShot)},
		{"Asteroids rammed", strconv.Itoa(s.AsteroidsRammed)},
		{"Peak asteroids", strconv.Itoa(s.PeakAsteroids)},
		{"Hits taken", strconv.Itoa(s.Hits)},
		{"Game overs", strconv.Itoa(s.GameOvers)},
		{"Restarts", strconv.Itoa(s.Restarts)},
	}

	lines := []string{reportTitle.Render("Simulation report"), ""}
	for _, r := range rows {
		lines = append(lines, lipgloss.JoinHorizontal(lipgloss.Top, reportLabel.Render(r.label), reportValue.Render(r.value)))
	}
	return reportBox.Render(lipgloss.JoinVertical(lipgloss.Left, lines...))
}
