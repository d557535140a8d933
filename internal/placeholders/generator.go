// Package placeholders draws stand-in sprites for the fighter, bullet and
// asteroid and writes them, with a bold font, into an assets directory.
package placeholders

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"math"
	"os"
	"path/filepath"

	"golang.org/x/image/font/gofont/gobold"

	"chosenoffset.com/spaceshooter/internal/assets"
)

// SpriteSize is the edge length of the fighter and asteroid images
const SpriteSize = 512

// Bullet image size. It points right and is turned upright when loaded.
const (
	BulletWidth  = 512
	BulletHeight = 128
)

// ColorPalette defines the placeholder colors
var ColorPalette = struct {
	Hull     color.NRGBA
	Cockpit  color.NRGBA
	Engine   color.NRGBA
	Bolt     color.NRGBA
	BoltCore color.NRGBA
	Rock     color.NRGBA
}{
	Hull:     color.NRGBA{170, 180, 200, 255}, // Steel blue-gray
	Cockpit:  color.NRGBA{0, 150, 200, 255},   // Cyan
	Engine:   color.NRGBA{255, 140, 0, 255},   // Orange
	Bolt:     color.NRGBA{255, 60, 60, 255},   // Red
	BoltCore: color.NRGBA{255, 230, 200, 255}, // Near white
	Rock:     color.NRGBA{140, 120, 100, 255}, // Dusty brown
}

// CreateFighter draws an arrowhead ship pointing up
func CreateFighter() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	s := float64(SpriteSize)
	hull := ColorPalette.Hull
	edge := Darken(hull, 0.5)

	nose := [2]float64{s / 2, s * 0.05}
	left := [2]float64{s * 0.1, s * 0.9}
	right := [2]float64{s * 0.9, s * 0.9}
	notch := [2]float64{s / 2, s * 0.72}

	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			p := [2]float64{float64(x) + 0.5, float64(y) + 0.5}
			if !inTriangle(p, nose, left, notch) && !inTriangle(p, nose, notch, right) {
				continue
			}
			img.SetNRGBA(x, y, hull)
			if nearEdge(p, nose, left, s*0.015) || nearEdge(p, nose, right, s*0.015) {
				img.SetNRGBA(x, y, edge)
			}
		}
	}

	fillEllipse(img, s/2, s*0.42, s*0.06, s*0.12, ColorPalette.Cockpit)
	fillEllipse(img, s*0.35, s*0.84, s*0.04, s*0.05, ColorPalette.Engine)
	fillEllipse(img, s*0.65, s*0.84, s*0.04, s*0.05, ColorPalette.Engine)
	return img
}

// CreateBullet draws a bolt pointing right with a hot core
func CreateBullet() *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, BulletWidth, BulletHeight))
	w, h := float64(BulletWidth), float64(BulletHeight)

	fillEllipse(img, w/2, h/2, w/2-2, h/2-2, ColorPalette.Bolt)
	fillEllipse(img, w*0.6, h/2, w*0.3, h*0.2, ColorPalette.BoltCore)
	return img
}

// CreateAsteroid draws a lumpy rock. The same seed always gives the same
// shape.
func CreateAsteroid(seed int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, SpriteSize, SpriteSize))
	c := float64(SpriteSize) / 2
	base := c * 0.8
	rock := ColorPalette.Rock
	shade := Darken(rock, 0.7)

	phase := float64(seed)
	radius := func(a float64) float64 {
		return base * (1 +
			0.08*math.Sin(3*a+phase) +
			0.05*math.Sin(5*a+2*phase) +
			0.03*math.Sin(9*a+3*phase))
	}

	for y := 0; y < SpriteSize; y++ {
		for x := 0; x < SpriteSize; x++ {
			dx, dy := float64(x)+0.5-c, float64(y)+0.5-c
			d := math.Hypot(dx, dy)
			r := radius(math.Atan2(dy, dx))
			switch {
			case d > r:
				continue
			case d > r-c*0.04:
				img.SetNRGBA(x, y, Darken(rock, 0.5))
			case dx+dy > c*0.3:
				img.SetNRGBA(x, y, shade)
			default:
				img.SetNRGBA(x, y, rock)
			}
		}
	}

	crater := Darken(rock, 0.6)
	fillEllipse(img, c*0.7, c*0.75, c*0.14, c*0.12, crater)
	fillEllipse(img, c*1.3, c*1.1, c*0.1, c*0.1, crater)
	fillEllipse(img, c*0.9, c*1.35, c*0.07, c*0.06, crater)
	return img
}

// Generated describes one written asset file
type Generated struct {
	Path  string
	Bytes int
}

// GenerateAndSave writes every asset named in m under dir, creating
// directories as needed.
func GenerateAndSave(dir string, m assets.Manifest) ([]Generated, error) {
	images := []struct {
		name string
		img  image.Image
	}{
		{m.Fighter, CreateFighter()},
		{m.Bullet, CreateBullet()},
		{m.Asteroid, CreateAsteroid(7)},
	}

	var out []Generated
	for _, entry := range images {
		path := filepath.Join(dir, filepath.FromSlash(entry.name))
		n, err := SavePNG(entry.img, path)
		if err != nil {
			return out, fmt.Errorf("failed to save %s: %w", entry.name, err)
		}
		out = append(out, Generated{Path: path, Bytes: n})
	}

	fontPath := filepath.Join(dir, filepath.FromSlash(m.Font))
	if err := writeFile(fontPath, gobold.TTF); err != nil {
		return out, fmt.Errorf("failed to save %s: %w", m.Font, err)
	}
	out = append(out, Generated{Path: fontPath, Bytes: len(gobold.TTF)})
	return out, nil
}

// SavePNG encodes img to path and returns the file size
func SavePNG(img image.Image, path string) (int, error) {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return 0, err
	}
	file, err := os.Create(path)
	if err != nil {
		return 0, err
	}
	defer file.Close()

	if err := png.Encode(file, img); err != nil {
		return 0, err
	}
	info, err := file.Stat()
	if err != nil {
		return 0, err
	}
	return int(info.Size()), nil
}

func writeFile(path string, data []byte) error {
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// Darken returns a darker version of a color
func Darken(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) * factor),
		G: uint8(float64(c.G) * factor),
		B: uint8(float64(c.B) * factor),
		A: c.A,
	}
}

// Lighten returns a lighter version of a color
func Lighten(c color.NRGBA, factor float64) color.NRGBA {
	return color.NRGBA{
		R: uint8(float64(c.R) + (255-float64(c.R))*factor),
		G: uint8(float64(c.G) + (255-float64(c.G))*factor),
		B: uint8(float64(c.B) + (255-float64(c.B))*factor),
		A: c.A,
	}
}

func fillEllipse(img *image.NRGBA, cx, cy, rx, ry float64, col color.NRGBA) {
	b := img.Bounds()
	hi := Lighten(col, 0.25)
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			dx := (float64(x) + 0.5 - cx) / rx
			dy := (float64(y) + 0.5 - cy) / ry
			d := dx*dx + dy*dy
			if d > 1 {
				continue
			}
			if d < 0.15 {
				img.SetNRGBA(x, y, hi)
			} else {
				img.SetNRGBA(x, y, col)
			}
		}
	}
}

func inTriangle(p, a, b, c [2]float64) bool {
	d1 := side(p, a, b)
	d2 := side(p, b, c)
	d3 := side(p, c, a)
	neg := d1 < 0 || d2 < 0 || d3 < 0
	pos := d1 > 0 || d2 > 0 || d3 > 0
	return !(neg && pos)
}

func side(p, a, b [2]float64) float64 {
	return (p[0]-b[0])*(a[1]-b[1]) - (a[0]-b[0])*(p[1]-b[1])
}

// nearEdge reports whether p is within width of segment ab
func nearEdge(p, a, b [2]float64, width float64) bool {
	ab := [2]float64{b[0] - a[0], b[1] - a[1]}
	ap := [2]float64{p[0] - a[0], p[1] - a[1]}
	t := (ap[0]*ab[0] + ap[1]*ab[1]) / (ab[0]*ab[0] + ab[1]*ab[1])
	t = math.Max(0, math.Min(1, t))
	dx := ap[0] - t*ab[0]
	dy := ap[1] - t*ab[1]
	return dx*dx+dy*dy <= width*width
}
