package rules

import (
	"github.com/yohamta/donburi"

	"chosenoffset.com/spaceshooter/internal/geom"
	"chosenoffset.com/spaceshooter/internal/state"
	"chosenoffset.com/spaceshooter/internal/world"
)

// Within reports whether a and b are strictly closer than radius.
func Within(a, b geom.Vec2, radius float64) bool {
	return geom.Distance(a, b) < radius
}

type located struct {
	entity donburi.Entity
	pos    geom.Vec2
}

func collect(each func(donburi.World, func(*donburi.Entry)), w donburi.World) []located {
	var out []located
	each(w, func(entry *donburi.Entry) {
		out = append(out, located{entity: entry.Entity(), pos: world.Transform.Get(entry).Position})
	})
	return out
}

// BulletHitsAsteroid checks every bullet against every asteroid. Both members
// of each colliding pair are removed after the scan, so one bullet can destroy
// several asteroids in the same frame.
func BulletHitsAsteroid(c *Context) {
	bullets := collect(world.EachBullet, c.World)
	asteroids := collect(world.EachAsteroid, c.World)
	if len(bullets) == 0 || len(asteroids) == 0 {
		return
	}

	radius := c.Config.Collision.Radius
	hitBullets := make(map[donburi.Entity]bool)
	hitAsteroids := make(map[donburi.Entity]bool)
	for _, b := range bullets {
		for _, a := range asteroids {
			if Within(b.pos, a.pos, radius) {
				hitBullets[b.entity] = true
				hitAsteroids[a.entity] = true
			}
		}
	}

	for _, b := range bullets {
		if hitBullets[b.entity] {
			world.Despawn(c.World, b.entity)
		}
	}
	for _, a := range asteroids {
		if hitAsteroids[a.entity] {
			world.Despawn(c.World, a.entity)
			c.events().AsteroidDestroyed(a.pos, CauseBullet)
		}
	}
}

// PlayerHitsAsteroid removes every asteroid touching the player and takes one
// hit point for each. When hp reaches zero the player is removed and the game
// moves to GameOver; remaining contacts are ignored.
func PlayerHitsAsteroid(c *Context) {
	player, ok := world.Player(c.World)
	if !ok {
		return
	}
	playerEntity := player.Entity()
	pos := world.Transform.Get(player).Position
	hp := world.Health.Get(player).HP

	radius := c.Config.Collision.Radius
	var contacts []located
	for _, a := range collect(world.EachAsteroid, c.World) {
		if Within(pos, a.pos, radius) {
			contacts = append(contacts, a)
		}
	}
	if len(contacts) == 0 {
		return
	}

	for _, a := range contacts {
		world.Despawn(c.World, a.entity)
		c.events().AsteroidDestroyed(a.pos, CausePlayer)
		hp--
		c.events().PlayerHit(hp)

		if hp <= 0 {
			world.Despawn(c.World, playerEntity)
			c.States.Set(state.GameOver)
			c.events().GameOver()
			return
		}
	}

	world.Health.Get(c.World.Entry(playerEntity)).HP = hp
}
