package rules

import (
	"github.com/yohamta/donburi"

	"chosenoffset.com/spaceshooter/internal/geom"
	"chosenoffset.com/spaceshooter/internal/world"
)

// MovePlayer translates the player by each pad's right stick. Movement is per
// tick unless player.time_scaled is set.
func MovePlayer(c *Context) {
	player, ok := world.Player(c.World)
	if !ok || len(c.Input.Pads) == 0 {
		return
	}

	factor := c.Config.Player.MoveFactor
	if c.Config.Player.TimeScaled {
		factor *= c.dt() * float64(c.Config.Window.TickRate)
	}

	t := world.Transform.Get(player)
	for _, pad := range c.Input.Pads {
		t.Position = t.Position.Add(pad.RightStick.Scale(factor))
	}
}

// Aim turns the player to face each pad's left stick once it leaves the aim
// threshold.
func Aim(c *Context) {
	player, ok := world.Player(c.World)
	if !ok {
		return
	}

	t := world.Transform.Get(player)
	for _, pad := range c.Input.Pads {
		stick := pad.LeftStick
		if stick.LengthSquared() <= c.Config.Player.AimThreshold {
			continue
		}
		t.Rotation = geom.NormalizeAngle(t.Rotation + geom.AngleBetween(t.Forward(), stick))
	}
}

// MoveBullets advances every bullet along its facing.
func MoveBullets(c *Context) {
	dt := c.dt()
	world.EachBullet(c.World, func(entry *donburi.Entry) {
		t := world.Transform.Get(entry)
		speed := world.Bullet.Get(entry).Speed
		t.Position = t.Position.Add(t.Forward().Scale(speed * dt))
	})
}

// MoveAsteroids steers every asteroid toward the player and spins it.
// Without a player the asteroids hold still.
func MoveAsteroids(c *Context) {
	player, ok := world.Player(c.World)
	if !ok {
		return
	}
	target := world.Transform.Get(player).Position
	speed := c.Config.Asteroid.Speed
	dt := c.dt()

	world.EachAsteroid(c.World, func(entry *donburi.Entry) {
		t := world.Transform.Get(entry)
		a := world.Asteroid.Get(entry)

		a.Velocity = target.Sub(t.Position).Normalize().Scale(speed)
		t.Position = t.Position.Add(a.Velocity.Scale(dt))
		t.Rotation = geom.NormalizeAngle(t.Rotation + a.AngularVelocity*dt)
	})
}
