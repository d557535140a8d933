package placeholders

import (
	"bytes"
	"context"
	"image/color"
	"os"
	"testing"

	"golang.org/x/image/font/gofont/gobold"

	"chosenoffset.com/spaceshooter/internal/assets"
)

var manifest = assets.Manifest{
	Fighter:  "fighter.png",
	Bullet:   "bullet.png",
	Asteroid: "asteroid.png",
	Font:     "fonts/GoBold.ttf",
}

func TestCreateFighterPointsUp(t *testing.T) {
	img := CreateFighter()
	if img.Bounds().Dx() != SpriteSize || img.Bounds().Dy() != SpriteSize {
		t.Fatalf("Unexpected fighter size %v", img.Bounds())
	}

	// The nose is near the top center; the top corners are empty
	if img.NRGBAAt(SpriteSize/2, SpriteSize/10).A == 0 {
		t.Error("Expected hull below the nose")
	}
	if img.NRGBAAt(SpriteSize/10, SpriteSize/10).A != 0 {
		t.Error("Expected transparent top-left corner")
	}
}

func TestCreateBulletPointsRight(t *testing.T) {
	img := CreateBullet()
	if img.Bounds().Dx() != BulletWidth || img.Bounds().Dy() != BulletHeight {
		t.Fatalf("Unexpected bullet size %v", img.Bounds())
	}
	if img.NRGBAAt(BulletWidth/2, BulletHeight/2).A == 0 {
		t.Error("Expected an opaque center")
	}
	if img.NRGBAAt(0, 0).A != 0 {
		t.Error("Expected transparent corner")
	}
}

func TestCreateAsteroidDeterministic(t *testing.T) {
	a := CreateAsteroid(3)
	b := CreateAsteroid(3)
	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("Expected the same seed to draw the same asteroid")
	}
	c := CreateAsteroid(4)
	if bytes.Equal(a.Pix, c.Pix) {
		t.Error("Expected a different seed to change the shape")
	}
	if a.NRGBAAt(SpriteSize/2, SpriteSize/2).A == 0 {
		t.Error("Expected a solid center")
	}
}

func TestDarkenLighten(t *testing.T) {
	c := color.NRGBA{100, 200, 50, 255}
	if got := Darken(c, 0.5); got != (color.NRGBA{50, 100, 25, 255}) {
		t.Errorf("Darken: got %v", got)
	}
	if got := Lighten(c, 1); got != (color.NRGBA{255, 255, 255, 255}) {
		t.Errorf("Lighten: got %v", got)
	}
}

func TestGenerateAndSaveLoads(t *testing.T) {
	dir := t.TempDir()
	files, err := GenerateAndSave(dir, manifest)
	if err != nil {
		t.Fatalf("GenerateAndSave failed: %v", err)
	}
	if len(files) != 4 {
		t.Fatalf("Expected 4 files, got %d", len(files))
	}

	lib, err := assets.Load(context.Background(), os.DirFS(dir), manifest).Wait()
	if err != nil {
		t.Fatalf("Generated assets did not load: %v", err)
	}
	if b := lib.Bullet.Bounds(); b.Dx() != BulletHeight || b.Dy() != BulletWidth {
		t.Errorf("Expected upright bullet %dx%d, got %v", BulletHeight, BulletWidth, b)
	}
	if !bytes.Equal(lib.Font, gobold.TTF) {
		t.Error("Expected the bold font to be written verbatim")
	}
}
