package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"chosenoffset.com/spaceshooter/internal/assets"
	"chosenoffset.com/spaceshooter/internal/audio"
	"chosenoffset.com/spaceshooter/internal/config"
	"chosenoffset.com/spaceshooter/internal/game"
	"chosenoffset.com/spaceshooter/internal/input"
	ebitenrender "chosenoffset.com/spaceshooter/internal/render/ebiten"
	"chosenoffset.com/spaceshooter/internal/rules"
)

var flagAssets string

var runCmd = &cobra.Command{
	Use:   "run",
	Short: "Open the game window (default)",
	RunE:  runGame,
}

func init() {
	runCmd.Flags().StringVar(&flagAssets, "assets", "assets", "Directory holding sprites and fonts")
}

func runGame(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return fmt.Errorf("failed to load config: %w", err)
	}

	manifest := assets.ManifestFromConfig(cfg.Assets)
	lib, err := assets.Load(cmd.Context(), os.DirFS(flagAssets), manifest).Wait()
	if err != nil {
		return fmt.Errorf("failed to load assets from %s (run 'spaceshooter assets' to generate placeholders): %w",
			flagAssets, err)
	}

	var listeners []rules.Events
	if cfg.Audio.Enabled {
		sounds := audio.NewSoundManager(cfg.Audio.Volume)
		if err := sounds.Initialize(); err != nil {
			logger.Warn("audio disabled", "err", err)
		} else {
			defer sounds.Cleanup()
			listeners = append(listeners, game.NewSoundEvents(sounds))
		}
	}

	// Initialize the renderer backend (ebiten)
	renderer := ebitenrender.NewRenderer()
	inputMgr := ebitenrender.NewInputManager()
	engine := ebitenrender.NewEngine()

	var g *game.Game
	source := input.NewManagerSource(inputMgr, cfg.Input.Deadzone, func() (int, int) {
		return g.ScreenSize()
	})

	runSeed := seed()
	g, err = game.New(game.Options{
		Config:    cfg,
		Renderer:  renderer,
		Assets:    lib,
		Input:     source,
		Logger:    logger,
		Seed:      runSeed,
		Listeners: listeners,
	})
	if err != nil {
		return fmt.Errorf("failed to create game: %w", err)
	}
	defer g.Close()

	// Set up the window
	engine.SetWindowSize(cfg.Window.Width, cfg.Window.Height)
	engine.SetWindowTitle(cfg.Window.Title)
	engine.SetWindowResizable(cfg.Window.Resizable)
	engine.SetVsyncEnabled(cfg.Window.Vsync)
	engine.SetTPS(cfg.Window.TickRate)

	logger.Info("starting game", "seed", runSeed)
	if err := engine.RunGame(g); err != nil {
		return fmt.Errorf("game loop failed: %w", err)
	}

	s := g.Stats()
	logger.Info("game closed", "frames", s.Frames, "shot", s.AsteroidsShot, "game_overs", s.GameOvers)
	return nil
}
