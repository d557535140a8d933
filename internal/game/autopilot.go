package game

import (
	"math"

	"github.com/yohamta/donburi"

	"chosenoffset.com/spaceshooter/internal/geom"
	"chosenoffset.com/spaceshooter/internal/input"
	"chosenoffset.com/spaceshooter/internal/world"
)

// Autopilot is an input.Source that plays the game: it circles, aims at the
// nearest asteroid with the trigger held, and restarts after a game over.
type Autopilot struct {
	World donburi.World
	frame int
}

// Poll synthesizes one gamepad for the frame
func (a *Autopilot) Poll() input.Frame {
	a.frame++

	player, ok := world.Player(a.World)
	if !ok {
		// Tap East on alternate frames so it registers as a fresh press
		var east input.Button
		if a.frame%2 == 0 {
			east = input.ButtonEast
		}
		return input.Frame{Pads: []input.Pad{input.NewPad(0, geom.Vec2{}, geom.Vec2{}, east, east)}}
	}

	t := world.Transform.Get(player)
	aim := t.Forward()
	if target, found := a.nearestAsteroid(t.Position); found {
		aim = target.Sub(t.Position).Normalize()
	}

	angle := float64(a.frame) * 0.02
	move := geom.V(math.Cos(angle), math.Sin(angle)).Scale(0.5)

	pad := input.NewPad(0, aim, move, input.ButtonRightTrigger2, 0)
	return input.Frame{Pads: []input.Pad{pad}}
}

func (a *Autopilot) nearestAsteroid(from geom.Vec2) (geom.Vec2, bool) {
	best, found := geom.Vec2{}, false
	bestDist := math.Inf(1)
	world.EachAsteroid(a.World, func(entry *donburi.Entry) {
		p := world.Transform.Get(entry).Position
		if d := geom.Distance(from, p); d < bestDist {
			best, bestDist, found = p, d, true
		}
	})
	return best, found
}
