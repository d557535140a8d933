package world

import (
	"testing"

	"github.com/yohamta/donburi"

	"chosenoffset.com/spaceshooter/internal/geom"
)

func TestSpawnPlayer(t *testing.T) {
	w := New()
	SpawnPlayer(w, geom.V(1, 2), 4, 0.07)

	entry, ok := Player(w)
	if !ok {
		t.Fatal("Expected a player")
	}

	tr := Transform.Get(entry)
	if tr.Position != geom.V(1, 2) || tr.Layer != LayerPlayer || tr.Scale != 0.07 {
		t.Errorf("Unexpected transform: %+v", *tr)
	}
	if hp := Health.Get(entry).HP; hp != 4 {
		t.Errorf("Expected hp 4, got %d", hp)
	}
	if !entry.HasComponent(GameEntity) {
		t.Error("Expected player to be tagged GameEntity")
	}
}

func TestPlayerRequiresSingleton(t *testing.T) {
	w := New()
	if _, ok := Player(w); ok {
		t.Error("Expected no player in an empty world")
	}

	SpawnPlayer(w, geom.Vec2{}, 4, 1)
	SpawnPlayer(w, geom.Vec2{}, 4, 1)
	if _, ok := Player(w); ok {
		t.Error("Expected Player to refuse two players")
	}
}

func TestCounts(t *testing.T) {
	w := New()
	SpawnPlayer(w, geom.Vec2{}, 4, 1)
	SpawnBullet(w, geom.Vec2{}, 0, 500, 0.05)
	SpawnBullet(w, geom.Vec2{}, 0, 500, 0.05)
	SpawnAsteroid(w, geom.V(100, 0), geom.V(-100, 0), 1, 0.07)
	SpawnText(w, "GAME OVER", 48)

	if n := CountBullets(w); n != 2 {
		t.Errorf("Expected 2 bullets, got %d", n)
	}
	if n := CountAsteroids(w); n != 1 {
		t.Errorf("Expected 1 asteroid, got %d", n)
	}
	if n := CountGameEntities(w); n != 5 {
		t.Errorf("Expected 5 game entities, got %d", n)
	}

	sprites := 0
	EachSprite(w, func(*donburi.Entry) { sprites++ })
	if sprites != 4 {
		t.Errorf("Expected 4 sprites, got %d", sprites)
	}
}

func TestCleanupIsIdempotent(t *testing.T) {
	w := New()
	SpawnPlayer(w, geom.Vec2{}, 4, 1)
	SpawnAsteroid(w, geom.V(10, 10), geom.Vec2{}, 0, 1)
	SpawnText(w, "x", 10)

	// Untagged entities survive cleanup.
	keep := w.Create(Transform)

	if n := Cleanup(w); n != 3 {
		t.Errorf("Expected 3 removed, got %d", n)
	}
	if n := CountGameEntities(w); n != 0 {
		t.Errorf("Expected 0 game entities after cleanup, got %d", n)
	}
	if n := Cleanup(w); n != 0 {
		t.Errorf("Expected second cleanup to remove nothing, got %d", n)
	}
	if n := CountGameEntities(w); n != 0 {
		t.Errorf("Expected 0 game entities after second cleanup, got %d", n)
	}
	if !w.Valid(keep) {
		t.Error("Expected untagged entity to survive cleanup")
	}
}

func TestDespawnSkipsRemoved(t *testing.T) {
	w := New()
	e := SpawnBullet(w, geom.Vec2{}, 0, 1, 1)
	Despawn(w, e, e)

	if w.Valid(e) {
		t.Error("Expected bullet to be removed")
	}
}
