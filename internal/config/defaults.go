package config

import (
	_ "embed"
)

//go:embed defaults/game.yaml
var defaultGameYAML []byte

// Default returns the built-in configuration
func Default() *Config {
	return &Config{
		Window: WindowConfig{
			Width:     1280,
			Height:    720,
			Title:     "Space shooter",
			Resizable: true,
			Vsync:     false,
			TickRate:  60,
		},
		Player: PlayerConfig{
			HP:           4,
			Scale:        0.07,
			MoveFactor:   3.0,
			TimeScaled:   false,
			AimThreshold: 0.01,
		},
		Bullet: BulletConfig{
			Speed:        500,
			Scale:        0.05,
			FireInterval: 0.15,
		},
		Asteroid: AsteroidConfig{
			Speed:              100,
			Scale:              0.07,
			MaxAngularVelocity: 2.0,
		},
		Spawn: SpawnConfig{
			Interval:   1.0,
			RangeX:     600,
			RangeY:     350,
			ExclusionX: 200,
			ExclusionY: 150,
		},
		Collision: CollisionConfig{
			Radius: 30,
		},
		Input: InputConfig{
			Deadzone: 0.05,
		},
		Audio: AudioConfig{
			Enabled: true,
			Volume:  0.5,
		},
		Assets: AssetsConfig{
			Fighter:  "fighter.png",
			Bullet:   "bullet.png",
			Asteroid: "asteroid.png",
			Font:     "fonts/GoBold.ttf",
			FontSize: 48,
		},
	}
}
