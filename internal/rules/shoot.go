package rules

import (
	"chosenoffset.com/spaceshooter/internal/input"
	"chosenoffset.com/spaceshooter/internal/state"
	"chosenoffset.com/spaceshooter/internal/world"
)

// Shoot ticks the fire-rate timer while a player and a gamepad exist and
// fires a bullet when it finishes with the right trigger held.
func Shoot(c *Context) {
	player, ok := world.Player(c.World)
	if !ok || len(c.Input.Pads) == 0 {
		return
	}
	if !c.Timers.Fire.Tick(c.Delta).JustFinished() {
		return
	}
	if !c.Input.AnyPressed(input.ButtonRightTrigger2) {
		return
	}

	t := world.Transform.Get(player)
	world.SpawnBullet(c.World, t.Position, t.Rotation, c.Config.Bullet.Speed, c.Config.Bullet.Scale)
	c.events().BulletFired(t.Position)
}

// Restart returns to Playing when the single connected pad presses East.
func Restart(c *Context) {
	pad, ok := c.Input.Single()
	if !ok || !pad.JustPressed(input.ButtonEast) {
		return
	}
	c.States.Set(state.Playing)
	c.events().Restarted()
	c.log().Info("restart requested", "pad", pad.ID)
}

// DebugProbe logs the world position of a left click.
func DebugProbe(c *Context) {
	if !c.Input.MouseJustPressed {
		return
	}
	p := c.Input.CursorWorld()
	c.log().Debug("click", "x", p.X, "y", p.Y)
}
