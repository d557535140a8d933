package game

import "chosenoffset.com/spaceshooter/internal/geom"

// Camera maps world space (origin at the center, y up) to screen pixels.
type Camera struct {
	Width, Height int
}

// ToScreen returns the screen pixel for a world position
func (c Camera) ToScreen(p geom.Vec2) (float64, float64) {
	return float64(c.Width)/2 + p.X, float64(c.Height)/2 - p.Y
}

// Stats counts what happened during a run. It listens to game events.
type Stats struct {
	Frames           int
	BulletsFired     int
	AsteroidsSpawned int
	AsteroidsShot    int
	AsteroidsRammed  int
	Hits             int
	GameOvers        int
	Restarts         int
	PeakAsteroids    int
}
