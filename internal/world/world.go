package world

import (
	"github.com/yohamta/donburi"
	"github.com/yohamta/donburi/filter"

	"chosenoffset.com/spaceshooter/internal/geom"
)

var (
	playerQuery     = donburi.NewQuery(filter.Contains(PlayerTag, Transform))
	bulletQuery     = donburi.NewQuery(filter.Contains(Bullet, Transform))
	asteroidQuery   = donburi.NewQuery(filter.Contains(Asteroid, Transform))
	spriteQuery     = donburi.NewQuery(filter.Contains(Sprite, Transform))
	textQuery       = donburi.NewQuery(filter.Contains(Text))
	gameEntityQuery = donburi.NewQuery(filter.Contains(GameEntity))
)

// New creates an empty world
func New() donburi.World {
	return donburi.NewWorld()
}

// SpawnPlayer creates the player ship at pos with hp hit points.
func SpawnPlayer(w donburi.World, pos geom.Vec2, hp int, scale float64) donburi.Entity {
	e := w.Create(PlayerTag, Transform, Health, Sprite, GameEntity)
	entry := w.Entry(e)
	*Transform.Get(entry) = TransformData{Position: pos, Scale: scale, Layer: LayerPlayer}
	*Health.Get(entry) = HealthData{HP: hp}
	*Sprite.Get(entry) = SpriteData{Kind: SpriteFighter}
	return e
}

// SpawnBullet creates a bullet at pos facing rotation.
func SpawnBullet(w donburi.World, pos geom.Vec2, rotation, speed, scale float64) donburi.Entity {
	e := w.Create(Bullet, Transform, Sprite, GameEntity)
	entry := w.Entry(e)
	*Transform.Get(entry) = TransformData{Position: pos, Rotation: rotation, Scale: scale, Layer: LayerBullet}
	*Bullet.Get(entry) = BulletData{Speed: speed}
	*Sprite.Get(entry) = SpriteData{Kind: SpriteBullet}
	return e
}

// SpawnAsteroid creates an asteroid at pos.
func SpawnAsteroid(w donburi.World, pos, velocity geom.Vec2, angularVelocity, scale float64) donburi.Entity {
	e := w.Create(Asteroid, Transform, Sprite, GameEntity)
	entry := w.Entry(e)
	*Transform.Get(entry) = TransformData{Position: pos, Scale: scale, Layer: LayerAsteroid}
	*Asteroid.Get(entry) = AsteroidData{Velocity: velocity, AngularVelocity: angularVelocity}
	*Sprite.Get(entry) = SpriteData{Kind: SpriteAsteroid}
	return e
}

// SpawnText creates a centered text block.
func SpawnText(w donburi.World, content string, size float64) donburi.Entity {
	e := w.Create(Text, GameEntity)
	*Text.Get(w.Entry(e)) = TextData{Content: content, Size: size}
	return e
}

// Player returns the player entry. It reports false when there is no player
// or, against the singleton invariant, more than one.
func Player(w donburi.World) (*donburi.Entry, bool) {
	var found *donburi.Entry
	n := 0
	playerQuery.Each(w, func(entry *donburi.Entry) {
		found = entry
		n++
	})
	return found, n == 1
}

// EachBullet visits every bullet
func EachBullet(w donburi.World, fn func(*donburi.Entry)) {
	bulletQuery.Each(w, fn)
}

// EachAsteroid visits every asteroid
func EachAsteroid(w donburi.World, fn func(*donburi.Entry)) {
	asteroidQuery.Each(w, fn)
}

// EachSprite visits every drawable entity
func EachSprite(w donburi.World, fn func(*donburi.Entry)) {
	spriteQuery.Each(w, fn)
}

// EachText visits every text entity
func EachText(w donburi.World, fn func(*donburi.Entry)) {
	textQuery.Each(w, fn)
}

// CountPlayers returns the number of player entities
func CountPlayers(w donburi.World) int {
	return playerQuery.Count(w)
}

// CountBullets returns the number of bullets
func CountBullets(w donburi.World) int {
	return bulletQuery.Count(w)
}

// CountAsteroids returns the number of asteroids
func CountAsteroids(w donburi.World) int {
	return asteroidQuery.Count(w)
}

// CountGameEntities returns the number of entities Cleanup would remove
func CountGameEntities(w donburi.World) int {
	return gameEntityQuery.Count(w)
}

// Despawn removes the given entities, skipping ones already gone.
func Despawn(w donburi.World, entities ...donburi.Entity) {
	for _, e := range entities {
		if w.Valid(e) {
			w.Remove(e)
		}
	}
}

// Cleanup removes every GameEntity and returns how many were removed.
func Cleanup(w donburi.World) int {
	var doomed []donburi.Entity
	gameEntityQuery.Each(w, func(entry *donburi.Entry) {
		doomed = append(doomed, entry.Entity())
	})
	Despawn(w, doomed...)
	return len(doomed)
}
