package rules

import "chosenoffset.com/spaceshooter/internal/geom"

// Cause says what destroyed an asteroid
type Cause int

const (
	CauseBullet Cause = iota
	CausePlayer
)

// String returns the cause name
func (c Cause) String() string {
	switch c {
	case CauseBullet:
		return "bullet"
	case CausePlayer:
		return "player"
	default:
		return "unknown"
	}
}

// Events receives notifications about gameplay from the rules. Listeners run
// synchronously inside the frame and must not block.
type Events interface {
	BulletFired(pos geom.Vec2)
	AsteroidSpawned(pos geom.Vec2)
	AsteroidDestroyed(pos geom.Vec2, cause Cause)
	PlayerHit(hp int)
	GameOver()
	Restarted()
}

// Nop ignores every event
type Nop struct{}

func (Nop) BulletFired(geom.Vec2)              {}
func (Nop) AsteroidSpawned(geom.Vec2)          {}
func (Nop) AsteroidDestroyed(geom.Vec2, Cause) {}
func (Nop) PlayerHit(int)                      {}
func (Nop) GameOver()                          {}
func (Nop) Restarted()                         {}

// Multi forwards each event to every listener in order
type Multi []Events

func (m Multi) BulletFired(pos geom.Vec2) {
	for _, e := range m {
		e.BulletFired(pos)
	}
}

func (m Multi) AsteroidSpawned(pos geom.Vec2) {
	for _, e := range m {
		e.AsteroidSpawned(pos)
	}
}

func (m Multi) AsteroidDestroyed(pos geom.Vec2, cause Cause) {
	for _, e := range m {
		e.AsteroidDestroyed(pos, cause)
	}
}

func (m Multi) PlayerHit(hp int) {
	for _, e := range m {
		e.PlayerHit(hp)
	}
}

func (m Multi) GameOver() {
	for _, e := range m {
		e.GameOver()
	}
}

func (m Multi) Restarted() {
	for _, e := range m {
		e.Restarted()
	}
}
