package rules

import (
	"math/rand/v2"

	"chosenoffset.com/spaceshooter/internal/config"
	"chosenoffset.com/spaceshooter/internal/geom"
	"chosenoffset.com/spaceshooter/internal/world"
)

// SpawnPosition draws an asteroid position from the spawn area. Any axis
// whose offset from the player falls inside the exclusion half-extent is
// pushed out by that half-extent, away from the player, so the result never
// lies inside the box.
func SpawnPosition(rng *rand.Rand, player geom.Vec2, cfg config.SpawnConfig) geom.Vec2 {
	p := geom.Vec2{
		X: uniform(rng, -cfg.RangeX, cfg.RangeX),
		Y: uniform(rng, -cfg.RangeY, cfg.RangeY),
	}
	p.X = pushOut(p.X, player.X, cfg.ExclusionX)
	p.Y = pushOut(p.Y, player.Y, cfg.ExclusionY)
	return p
}

// InExclusion reports whether p lies strictly inside the no-spawn box
// around player.
func InExclusion(p, player geom.Vec2, cfg config.SpawnConfig) bool {
	d := p.Sub(player)
	return abs(d.X) < cfg.ExclusionX && abs(d.Y) < cfg.ExclusionY
}

func pushOut(v, center, half float64) float64 {
	offset := v - center
	if abs(offset) >= half {
		return v
	}
	if offset < 0 {
		return v - half
	}
	return v + half
}

// SpawnAsteroids ticks the spawn timer and spawns one asteroid each time it
// finishes while a player exists.
func SpawnAsteroids(c *Context) {
	if !c.Timers.Spawn.Tick(c.Delta).JustFinished() {
		return
	}
	player, ok := world.Player(c.World)
	if !ok {
		return
	}

	target := world.Transform.Get(player).Position
	pos := SpawnPosition(c.Rand, target, c.Config.Spawn)
	velocity := target.Sub(pos).Normalize().Scale(c.Config.Asteroid.Speed)
	spin := c.Config.Asteroid.MaxAngularVelocity
	angular := uniform(c.Rand, -spin, spin)

	world.SpawnAsteroid(c.World, pos, velocity, angular, c.Config.Asteroid.Scale)
	c.events().AsteroidSpawned(pos)
}

// uniform returns a value in [lo, hi)
func uniform(rng *rand.Rand, lo, hi float64) float64 {
	return lo + rng.Float64()*(hi-lo)
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
