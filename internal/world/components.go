// Package world defines the entity components stored in the donburi world and
// the helpers that create and remove game entities.
package world

import (
	"github.com/yohamta/donburi"

	"chosenoffset.com/spaceshooter/internal/geom"
)

// SpriteKind selects which image an entity is drawn with.
type SpriteKind int

const (
	SpriteFighter SpriteKind = iota
	SpriteBullet
	SpriteAsteroid
)

// Draw layers. Lower values are drawn first.
const (
	LayerBullet   = -1
	LayerAsteroid = 0
	LayerPlayer   = 1
)

// TransformData places an entity in world space.
type TransformData struct {
	Position geom.Vec2
	Rotation float64 // Radians, counter-clockwise
	Scale    float64
	Layer    int
}

// Forward returns the direction the entity faces
func (t TransformData) Forward() geom.Vec2 {
	return geom.Forward(t.Rotation)
}

// HealthData tracks remaining hit points
type HealthData struct {
	HP int
}

// BulletData holds bullet motion
type BulletData struct {
	Speed float64 // Units per second along the bullet's facing
}

// AsteroidData holds asteroid motion
type AsteroidData struct {
	Velocity        geom.Vec2
	AngularVelocity float64 // Radians per second
}

// SpriteData names the image to draw
type SpriteData struct {
	Kind SpriteKind
}

// TextData is a screen-centered text block
type TextData struct {
	Content string
	Size    float64
}

var (
	Transform = donburi.NewComponentType[TransformData]()
	Health    = donburi.NewComponentType[HealthData]()
	Bullet    = donburi.NewComponentType[BulletData]()
	Asteroid  = donburi.NewComponentType[AsteroidData]()
	Sprite    = donburi.NewComponentType[SpriteData]()
	Text      = donburi.NewComponentType[TextData]()

	// PlayerTag marks the player ship.
	PlayerTag = donburi.NewTag()
	// GameEntity marks everything removed by Cleanup.
	GameEntity = donburi.NewTag()
)
