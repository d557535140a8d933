package ebiten

import (
	"bytes"
	"fmt"
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"chosenoffset.com/spaceshooter/internal/render"
)

// EbitenRenderer implements the Renderer interface using Ebiten.
type EbitenRenderer struct{}

// init sets up the global functions for the ebiten render.
func init() {
	render.NewGeoM = func() render.GeoM {
		return NewGeoM()
	}
}

// NewRenderer creates a new Ebiten-based render.
func NewRenderer() render.Renderer {
	return &EbitenRenderer{}
}

// NewImageFromImage uploads a decoded image.
func (r *EbitenRenderer) NewImageFromImage(src image.Image) render.Image {
	return &EbitenImage{img: ebiten.NewImageFromImage(src)}
}

// FillCircle draws a filled circle on the destination image.
func (r *EbitenRenderer) FillCircle(dst render.Image, x, y, radius float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.DrawFilledCircle(ebitenImg, x, y, radius, clr, true)
}

// StrokeCircle draws a circle outline on the destination image.
func (r *EbitenRenderer) StrokeCircle(dst render.Image, x, y, radius float32, strokeWidth float32, clr color.Color) {
	ebitenImg := dst.(*EbitenImage).img
	vector.StrokeCircle(ebitenImg, x, y, radius, strokeWidth, clr, true)
}

// NewFontFace parses a TrueType/OpenType font and sizes it.
func (r *EbitenRenderer) NewFontFace(src []byte, size float64) (render.FontFace, error) {
	source, err := text.NewGoTextFaceSource(bytes.NewReader(src))
	if err != nil {
		return nil, fmt.Errorf("failed to parse font: %w", err)
	}
	return &EbitenFontFace{face: &text.GoTextFace{Source: source, Size: size}}, nil
}

// DrawText draws text on the destination image.
func (r *EbitenRenderer) DrawText(dst render.Image, str string, face render.FontFace, opts *render.DrawTextOptions) {
	ebitenImg := dst.(*EbitenImage).img
	goFace := face.(*EbitenFontFace).face

	op := &text.DrawOptions{}
	if opts != nil {
		op.GeoM.Translate(opts.X, opts.Y)
		if opts.Color != nil {
			op.ColorScale.ScaleWithColor(opts.Color)
		}
		op.LineSpacing = opts.LineSpacing
		op.PrimaryAlign = alignToText(opts.PrimaryAlign)
		op.SecondaryAlign = alignToText(opts.SecondaryAlign)
	}
	if op.LineSpacing == 0 {
		op.LineSpacing = goFace.Size * 1.2
	}

	text.Draw(ebitenImg, str, goFace, op)
}

func alignToText(a render.Align) text.Align {
	switch a {
	case render.AlignCenter:
		return text.AlignCenter
	case render.AlignEnd:
		return text.AlignEnd
	default:
		return text.AlignStart
	}
}

// EbitenFontFace wraps a text/v2 face.
type EbitenFontFace struct {
	face *text.GoTextFace
}

// Size returns the font size in pixels.
func (f *EbitenFontFace) Size() float64 {
	return f.face.Size
}

// EbitenImage wraps an ebiten.Image to implement the render.Image interface.
type EbitenImage struct {
	img *ebiten.Image
}

// Bounds returns the bounds of the image.
func (i *EbitenImage) Bounds() image.Rectangle {
	return i.img.Bounds()
}

// Size returns the width and height of the image.
func (i *EbitenImage) Size() (width, height int) {
	return i.img.Bounds().Dx(), i.img.Bounds().Dy()
}

// Fill fills the entire image with the given color.
func (i *EbitenImage) Fill(clr color.Color) {
	i.img.Fill(clr)
}

// Dispose frees the GPU texture. The image must not be drawn afterwards.
func (i *EbitenImage) Dispose() {
	if i.img != nil {
		i.img.Deallocate()
		i.img = nil
	}
}

// DrawImage draws the source image onto this image.
func (i *EbitenImage) DrawImage(src render.Image, opts *render.DrawImageOptions) {
	srcImg := src.(*EbitenImage).img

	if opts == nil {
		i.img.DrawImage(srcImg, nil)
		return
	}

	ebitenOpts := &ebiten.DrawImageOptions{}
	ebitenOpts.Filter = ebiten.FilterLinear
	if opts.GeoM != nil {
		ebitenGeoM := opts.GeoM.(*EbitenGeoM)
		ebitenOpts.GeoM = ebitenGeoM.geoM
	}

	i.img.DrawImage(srcImg, ebitenOpts)
}

// EbitenGeoM wraps ebiten's GeoM to implement the render.GeoM interface.
type EbitenGeoM struct {
	geoM ebiten.GeoM
}

// NewGeoM creates a new geometric transformation matrix.
func NewGeoM() render.GeoM {
	return &EbitenGeoM{geoM: ebiten.GeoM{}}
}

// Translate shifts the image by (tx, ty).
func (g *EbitenGeoM) Translate(tx, ty float64) {
	g.geoM.Translate(tx, ty)
}

// Scale scales the image by (sx, sy).
func (g *EbitenGeoM) Scale(sx, sy float64) {
	g.geoM.Scale(sx, sy)
}

// Rotate rotates the image by the given angle in radians.
func (g *EbitenGeoM) Rotate(angle float64) {
	g.geoM.Rotate(angle)
}

// Reset resets the matrix to identity.
func (g *EbitenGeoM) Reset() {
	g.geoM.Reset()
}
