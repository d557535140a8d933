// Package assets loads the sprite images and font the game draws with. Loads
// run concurrently in the background and are awaited once before the game
// loop starts.
package assets

import (
	"context"
	"fmt"
	"image"
	"image/png"
	"io/fs"
	"sync"

	"golang.org/x/sync/errgroup"

	"chosenoffset.com/spaceshooter/internal/config"
	"chosenoffset.com/spaceshooter/internal/sprite"
)

// Manifest lists asset paths relative to the asset filesystem root
type Manifest struct {
	Fighter  string
	Bullet   string
	Asteroid string
	Font     string
}

// ManifestFromConfig takes the asset paths from cfg
func ManifestFromConfig(cfg config.AssetsConfig) Manifest {
	return Manifest{
		Fighter:  cfg.Fighter,
		Bullet:   cfg.Bullet,
		Asteroid: cfg.Asteroid,
		Font:     cfg.Font,
	}
}

// Library holds decoded assets. Bullet is stored rotated a quarter turn
// counter-clockwise so it points along an entity's facing; its PNG must decode
// to 8-bit NRGBA (or opaque 8-bit RGBA) or Wait fails with sprite.ErrPixelFormat.
type Library struct {
	Fighter  *image.NRGBA
	Bullet   *image.NRGBA
	Asteroid *image.NRGBA
	Font     []byte
}

// Pending is an in-flight Load
type Pending struct {
	done chan struct{}
	once sync.Once

	lib    *Library
	bullet image.Image
	err    error
}

// Load starts reading every asset in m from fsys and returns immediately.
// Cancelling ctx aborts loads that have not finished.
func Load(ctx context.Context, fsys fs.FS, m Manifest) *Pending {
	p := &Pending{done: make(chan struct{})}

	go func() {
		defer close(p.done)

		lib := &Library{}
		g, ctx := errgroup.WithContext(ctx)
		g.Go(func() (err error) {
			lib.Fighter, err = loadImage(ctx, fsys, m.Fighter)
			return err
		})
		g.Go(func() (err error) {
			p.bullet, err = decodeImage(ctx, fsys, m.Bullet)
			return err
		})
		g.Go(func() (err error) {
			lib.Asteroid, err = loadImage(ctx, fsys, m.Asteroid)
			return err
		})
		g.Go(func() (err error) {
			lib.Font, err = loadFile(ctx, fsys, m.Font)
			return err
		})

		if err := g.Wait(); err != nil {
			p.err = err
			return
		}
		p.lib = lib
	}()

	return p
}

// Done is closed once every load has finished or failed
func (p *Pending) Done() <-chan struct{} {
	return p.done
}

// Wait blocks until loading completes. The first call rotates the bullet
// image; later calls return the same result.
func (p *Pending) Wait() (*Library, error) {
	<-p.done
	p.once.Do(func() {
		if p.err != nil {
			return
		}
		rotated, err := sprite.RotateCCW(p.bullet)
		if err != nil {
			p.lib, p.err = nil, fmt.Errorf("rotate bullet: %w", err)
			return
		}
		p.lib.Bullet = rotated
		p.bullet = nil
	})
	return p.lib, p.err
}

func loadImage(ctx context.Context, fsys fs.FS, path string) (*image.NRGBA, error) {
	img, err := decodeImage(ctx, fsys, path)
	if err != nil {
		return nil, err
	}
	return sprite.ToNRGBA(img), nil
}

// decodeImage returns the image in whatever layout the PNG decoder produced
func decodeImage(ctx context.Context, fsys fs.FS, path string) (image.Image, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	f, err := fsys.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image %s: %w", path, err)
	}
	defer f.Close()

	img, err := png.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image %s: %w", path, err)
	}
	return img, nil
}

func loadFile(ctx context.Context, fsys fs.FS, path string) ([]byte, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data, err := fs.ReadFile(fsys, path)
	if err != nil {
		return nil, fmt.Errorf("failed to read %s: %w", path, err)
	}
	return data, nil
}
