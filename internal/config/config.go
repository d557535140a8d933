// Package config provides YAML-based tuning for the game: window, entity
// speeds, timers, spawn area, collision radius, input and audio settings.
package config

import (
	"errors"
	"fmt"
	"math"
	"time"
)

// ErrInvalid is wrapped by Validate for out-of-range settings.
var ErrInvalid = errors.New("invalid config")

// Config holds every tunable of the game
type Config struct {
	Window    WindowConfig    `yaml:"window"`
	Player    PlayerConfig    `yaml:"player"`
	Bullet    BulletConfig    `yaml:"bullet"`
	Asteroid  AsteroidConfig  `yaml:"asteroid"`
	Spawn     SpawnConfig     `yaml:"spawn"`
	Collision CollisionConfig `yaml:"collision"`
	Input     InputConfig     `yaml:"input"`
	Audio     AudioConfig     `yaml:"audio"`
	Assets    AssetsConfig    `yaml:"assets"`
}

// WindowConfig describes the display
type WindowConfig struct {
	Width     int    `yaml:"width"`
	Height    int    `yaml:"height"`
	Title     string `yaml:"title"`
	Resizable bool   `yaml:"resizable"`
	Vsync     bool   `yaml:"vsync"`     // false = immediate present
	TickRate  int    `yaml:"tick_rate"` // Updates per second
}

// PlayerConfig defines the player ship
type PlayerConfig struct {
	HP           int     `yaml:"hp"`
	Scale        float64 `yaml:"scale"`
	MoveFactor   float64 `yaml:"move_factor"`   // Units per stick unit per tick
	TimeScaled   bool    `yaml:"time_scaled"`   // Scale movement by dt*tick_rate instead of per tick
	AimThreshold float64 `yaml:"aim_threshold"` // Minimum squared stick length to aim
}

// BulletConfig defines bullets and the fire rate
type BulletConfig struct {
	Speed        float64 `yaml:"speed"`
	Scale        float64 `yaml:"scale"`
	FireInterval float64 `yaml:"fire_interval"` // Seconds between shots
}

// AsteroidConfig defines asteroid motion
type AsteroidConfig struct {
	Speed              float64 `yaml:"speed"`
	Scale              float64 `yaml:"scale"`
	MaxAngularVelocity float64 `yaml:"max_angular_velocity"` // Spin drawn from [-max, max)
}

// SpawnConfig defines where and how often asteroids appear
type SpawnConfig struct {
	Interval   float64 `yaml:"interval"`    // Seconds between spawns
	RangeX     float64 `yaml:"range_x"`     // X drawn from [-range_x, range_x)
	RangeY     float64 `yaml:"range_y"`     // Y drawn from [-range_y, range_y)
	ExclusionX float64 `yaml:"exclusion_x"` // Half-width of the no-spawn box around the player
	ExclusionY float64 `yaml:"exclusion_y"` // Half-height of the no-spawn box
}

// CollisionConfig defines hit distances
type CollisionConfig struct {
	Radius float64 `yaml:"radius"` // Centers closer than this collide
}

// InputConfig defines gamepad handling
type InputConfig struct {
	Deadzone float64 `yaml:"deadzone"`
}

// AudioConfig defines sound effects
type AudioConfig struct {
	Enabled bool    `yaml:"enabled"`
	Volume  float64 `yaml:"volume"` // 0.0-1.0
}

// AssetsConfig lists asset paths relative to the assets directory
type AssetsConfig struct {
	Fighter  string  `yaml:"fighter"`
	Bullet   string  `yaml:"bullet"`
	Asteroid string  `yaml:"asteroid"`
	Font     string  `yaml:"font"`
	FontSize float64 `yaml:"font_size"`
}

// FireInterval returns the fire-rate period
func (c *Config) FireInterval() time.Duration {
	return seconds(c.Bullet.FireInterval)
}

// SpawnInterval returns the asteroid spawn period
func (c *Config) SpawnInterval() time.Duration {
	return seconds(c.Spawn.Interval)
}

// Validate rejects settings the rules can't work with
func (c *Config) Validate() error {
	switch {
	case c.Window.Width <= 0 || c.Window.Height <= 0:
		return fmt.Errorf("%w: window size %dx%d", ErrInvalid, c.Window.Width, c.Window.Height)
	case c.Window.TickRate <= 0:
		return fmt.Errorf("%w: tick_rate %d", ErrInvalid, c.Window.TickRate)
	case c.Player.HP <= 0:
		return fmt.Errorf("%w: player hp %d", ErrInvalid, c.Player.HP)
	case c.Bullet.FireInterval <= 0:
		return fmt.Errorf("%w: fire_interval %v", ErrInvalid, c.Bullet.FireInterval)
	case c.Spawn.Interval <= 0:
		return fmt.Errorf("%w: spawn interval %v", ErrInvalid, c.Spawn.Interval)
	case c.Spawn.RangeX <= 0 || c.Spawn.RangeY <= 0:
		return fmt.Errorf("%w: spawn range %vx%v", ErrInvalid, c.Spawn.RangeX, c.Spawn.RangeY)
	case c.Spawn.ExclusionX < 0 || c.Spawn.ExclusionY < 0:
		return fmt.Errorf("%w: negative exclusion zone", ErrInvalid)
	case c.Collision.Radius <= 0:
		return fmt.Errorf("%w: collision radius %v", ErrInvalid, c.Collision.Radius)
	case c.Input.Deadzone < 0 || c.Input.Deadzone >= 1:
		return fmt.Errorf("%w: deadzone %v", ErrInvalid, c.Input.Deadzone)
	case c.Audio.Volume < 0 || c.Audio.Volume > 1:
		return fmt.Errorf("%w: volume %v", ErrInvalid, c.Audio.Volume)
	}
	return nil
}

func seconds(s float64) time.Duration {
	return time.Duration(math.Round(s * float64(time.Second)))
}
