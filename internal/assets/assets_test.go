package assets

import (
	"bytes"
	"context"
	"errors"
	"image"
	"image/color"
	"image/png"
	"io/fs"
	"sync"
	"testing"
	"testing/fstest"

	"chosenoffset.com/spaceshooter/internal/sprite"
)

func encodePNG(t *testing.T, w, h int) []byte {
	t.Helper()
	img := image.NewNRGBA(image.Rect(0, 0, w, h))
	img.SetNRGBA(0, 0, color.NRGBA{R: 255, A: 255})
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func testFS(t *testing.T) fstest.MapFS {
	return fstest.MapFS{
		"fighter.png":      {Data: encodePNG(t, 8, 8)},
		"bullet.png":       {Data: encodePNG(t, 6, 2)},
		"asteroid.png":     {Data: encodePNG(t, 4, 4)},
		"fonts/GoBold.ttf": {Data: []byte("font")},
	}
}

var manifest = Manifest{
	Fighter:  "fighter.png",
	Bullet:   "bullet.png",
	Asteroid: "asteroid.png",
	Font:     "fonts/GoBold.ttf",
}

func TestLoadRotatesBullet(t *testing.T) {
	lib, err := Load(context.Background(), testFS(t), manifest).Wait()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}

	if b := lib.Bullet.Bounds(); b.Dx() != 2 || b.Dy() != 6 {
		t.Errorf("Expected rotated bullet 2x6, got %dx%d", b.Dx(), b.Dy())
	}
	// (0,0) of a 6-wide image lands at (0, 5) after a counter-clockwise turn
	if got := lib.Bullet.NRGBAAt(0, 5); got.R != 255 {
		t.Errorf("Expected red pixel at (0,5), got %v", got)
	}
	if b := lib.Fighter.Bounds(); b.Dx() != 8 || b.Dy() != 8 {
		t.Errorf("Expected fighter 8x8, got %v", b)
	}
	if string(lib.Font) != "font" {
		t.Errorf("Expected font bytes, got %q", lib.Font)
	}
}

func TestWaitRotatesOnce(t *testing.T) {
	p := Load(context.Background(), testFS(t), manifest)

	var wg sync.WaitGroup
	results := make([]*Library, 8)
	for i := range results {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			lib, err := p.Wait()
			if err != nil {
				t.Errorf("Wait failed: %v", err)
			}
			results[i] = lib
		}(i)
	}
	wg.Wait()

	for _, lib := range results {
		if lib != results[0] {
			t.Fatal("Expected every Wait to return the same library")
		}
	}
	if b := results[0].Bullet.Bounds(); b.Dx() != 2 {
		t.Errorf("Expected the bullet rotated exactly once, got %dx%d", b.Dx(), b.Dy())
	}
}

func encodeImagePNG(t *testing.T, img image.Image) []byte {
	t.Helper()
	var buf bytes.Buffer
	if err := png.Encode(&buf, img); err != nil {
		t.Fatalf("encode: %v", err)
	}
	return buf.Bytes()
}

func TestLoadRejectsBulletPixelFormat(t *testing.T) {
	deep := image.NewNRGBA64(image.Rect(0, 0, 3, 2))
	deep.SetNRGBA64(0, 0, color.NRGBA64{R: 0x1234, A: 0x8000})
	gray := image.NewGray(image.Rect(0, 0, 3, 2))
	gray.SetGray(1, 1, color.Gray{Y: 200})

	tests := []struct {
		name string
		img  image.Image
	}{
		{"16-bit", deep},
		{"grayscale", gray},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			fsys := testFS(t)
			fsys["bullet.png"] = &fstest.MapFile{Data: encodeImagePNG(t, tt.img)}

			lib, err := Load(context.Background(), fsys, manifest).Wait()
			if !errors.Is(err, sprite.ErrPixelFormat) {
				t.Errorf("Expected ErrPixelFormat, got %v", err)
			}
			if lib != nil {
				t.Error("Expected no library on a pixel format error")
			}
		})
	}
}

func TestLoadAcceptsOpaqueBullet(t *testing.T) {
	opaque := image.NewNRGBA(image.Rect(0, 0, 3, 2))
	for i := 3; i < len(opaque.Pix); i += 4 {
		opaque.Pix[i] = 255
	}
	opaque.SetNRGBA(0, 0, color.NRGBA{G: 255, A: 255})

	fsys := testFS(t)
	fsys["bullet.png"] = &fstest.MapFile{Data: encodeImagePNG(t, opaque)}

	lib, err := Load(context.Background(), fsys, manifest).Wait()
	if err != nil {
		t.Fatalf("Load failed: %v", err)
	}
	if got := lib.Bullet.NRGBAAt(0, 2); got.G != 255 {
		t.Errorf("Expected green pixel at (0,2), got %v", got)
	}
}

func TestLoadMissingFile(t *testing.T) {
	fsys := testFS(t)
	delete(fsys, "asteroid.png")

	_, err := Load(context.Background(), fsys, manifest).Wait()
	if !errors.Is(err, fs.ErrNotExist) {
		t.Errorf("Expected ErrNotExist, got %v", err)
	}
}

func TestLoadUndecodableImage(t *testing.T) {
	fsys := testFS(t)
	fsys["fighter.png"] = &fstest.MapFile{Data: []byte("not a png")}

	lib, err := Load(context.Background(), fsys, manifest).Wait()
	if err == nil || lib != nil {
		t.Errorf("Expected decode error, got %v", err)
	}
}

func TestLoadCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := Load(ctx, testFS(t), manifest).Wait()
	if !errors.Is(err, context.Canceled) {
		t.Errorf("Expected context.Canceled, got %v", err)
	}
}

func TestDone(t *testing.T) {
	p := Load(context.Background(), testFS(t), manifest)
	<-p.Done()
	if _, err := p.Wait(); err != nil {
		t.Errorf("Wait after Done failed: %v", err)
	}
}
