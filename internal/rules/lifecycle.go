package rules

import (
	"chosenoffset.com/spaceshooter/internal/geom"
	"chosenoffset.com/spaceshooter/internal/state"
	"chosenoffset.com/spaceshooter/internal/world"
)

// GameOverText is shown centered when the player dies
const GameOverText = "GAME OVER\nPress O on your Controller to Restart"

// Cleanup removes every game entity and rewinds the timers. Running it twice
// is the same as running it once.
func Cleanup(c *Context) {
	n := world.Cleanup(c.World)
	c.Timers.Reset()
	c.log().Debug("cleanup", "removed", n)
}

// SetupPlayer spawns the player at the origin with full health.
func SetupPlayer(c *Context) {
	world.SpawnPlayer(c.World, geom.Vec2{}, c.Config.Player.HP, c.Config.Player.Scale)
}

// ShowGameOver spawns the game-over banner
func ShowGameOver(c *Context) {
	world.SpawnText(c.World, GameOverText, c.Config.Assets.FontSize)
}

// Register installs the rule sets and hooks for every reachable state.
// Playing rules run in order with the player collision last.
func Register(m *state.Machine[*Context]) {
	m.OnEnter(state.Playing, "cleanup", Cleanup).
		OnEnter(state.Playing, "setup_player", SetupPlayer).
		OnEnter(state.GameOver, "show_game_over", ShowGameOver)

	m.Register(state.Playing, "debug_probe", DebugProbe).
		Register(state.Playing, "move_player", MovePlayer).
		Register(state.Playing, "aim", Aim).
		Register(state.Playing, "shoot", Shoot).
		Register(state.Playing, "spawn_asteroids", SpawnAsteroids).
		Register(state.Playing, "move_asteroids", MoveAsteroids).
		Register(state.Playing, "move_bullets", MoveBullets).
		Register(state.Playing, "bullet_hits_asteroid", BulletHitsAsteroid).
		Register(state.Playing, "player_hits_asteroid", PlayerHitsAsteroid)

	m.Register(state.GameOver, "debug_probe", DebugProbe).
		Register(state.GameOver, "restart", Restart)
}
