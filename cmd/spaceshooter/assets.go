package main

import (
	"github.com/spf13/cobra"

	"chosenoffset.com/spaceshooter/internal/assets"
	"chosenoffset.com/spaceshooter/internal/config"
	"chosenoffset.com/spaceshooter/internal/placeholders"
)

var flagOut string

var assetsCmd = &cobra.Command{
	Use:   "assets",
	Short: "Write placeholder sprites and the font",
	Long: `Generate stand-in sprites for the fighter, bullet and asteroid plus the
bold font used for the game-over text. File names come from the config's
assets section.

Examples:
  spaceshooter assets
  spaceshooter assets --out ./build/assets`,
	RunE: runAssets,
}

func init() {
	assetsCmd.Flags().StringVar(&flagOut, "out", "assets", "Directory to write assets into")
}

func runAssets(cmd *cobra.Command, args []string) error {
	logger := newLogger()

	cfg, err := config.Load(flagConfig)
	if err != nil {
		return err
	}

	files, err := placeholders.GenerateAndSave(flagOut, assets.ManifestFromConfig(cfg.Assets))
	for _, f := range files {
		logger.Info("generated", "path", f.Path, "bytes", f.Bytes)
	}
	if err != nil {
		return err
	}
	logger.Info("placeholder assets ready", "dir", flagOut)
	return nil
}
