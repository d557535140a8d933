package game

import (
	"github.com/charmbracelet/log"

	"chosenoffset.com/spaceshooter/internal/geom"
	"chosenoffset.com/spaceshooter/internal/rules"
)

func (s *Stats) BulletFired(geom.Vec2)     { s.BulletsFired++ }
func (s *Stats) AsteroidSpawned(geom.Vec2) { s.AsteroidsSpawned++ }
func (s *Stats) PlayerHit(int)             { s.Hits++ }
func (s *Stats) GameOver()                 { s.GameOvers++ }
func (s *Stats) Restarted()                { s.Restarts++ }

func (s *Stats) AsteroidDestroyed(_ geom.Vec2, cause rules.Cause) {
	if cause == rules.CauseBullet {
		s.AsteroidsShot++
	} else {
		s.AsteroidsRammed++
	}
}

// logEvents writes gameplay events to a logger
type logEvents struct {
	logger *log.Logger
}

// NewLogEvents logs gameplay events; routine ones at debug level
func NewLogEvents(logger *log.Logger) rules.Events {
	return logEvents{logger: logger}
}

func (l logEvents) BulletFired(pos geom.Vec2) {
	l.logger.Debug("bullet fired", "x", pos.X, "y", pos.Y)
}

func (l logEvents) AsteroidSpawned(pos geom.Vec2) {
	l.logger.Debug("asteroid spawned", "x", pos.X, "y", pos.Y)
}

func (l logEvents) AsteroidDestroyed(pos geom.Vec2, cause rules.Cause) {
	l.logger.Debug("asteroid destroyed", "cause", cause, "x", pos.X, "y", pos.Y)
}

func (l logEvents) PlayerHit(hp int) {
	l.logger.Info("player hit", "hp", hp)
}

func (l logEvents) GameOver() {
	l.logger.Info("game over")
}

func (l logEvents) Restarted() {
	l.logger.Info("restarted")
}

// SoundPlayer plays the game's sound effects
type SoundPlayer interface {
	PlayFire()
	PlayExplosion()
	PlayHit()
	PlayGameOver()
}

type soundEvents struct {
	sounds SoundPlayer
}

// NewSoundEvents plays a sound for each audible event
func NewSoundEvents(p SoundPlayer) rules.Events {
	return soundEvents{sounds: p}
}

func (s soundEvents) BulletFired(geom.Vec2)                    { s.sounds.PlayFire() }
func (s soundEvents) AsteroidSpawned(geom.Vec2)                {}
func (s soundEvents) AsteroidDestroyed(geom.Vec2, rules.Cause) { s.sounds.PlayExplosion() }
func (s soundEvents) PlayerHit(int)                            { s.sounds.PlayHit() }
func (s soundEvents) GameOver()                                { s.sounds.PlayGameOver() }
func (s soundEvents) Restarted()                               {}
