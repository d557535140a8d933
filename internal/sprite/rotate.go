// Package sprite holds pixel-level operations applied to decoded sprite images
// before they are uploaded to the renderer.
package sprite

import (
	"errors"
	"fmt"
	"image"
	"image/draw"
)

// BytesPerPixel is the size of one pixel in the only supported layout (8-bit
// non-premultiplied RGBA).
const BytesPerPixel = 4

// ErrPixelFormat is returned when an image is not in the supported layout.
var ErrPixelFormat = errors.New("unsupported pixel format")

// RotateCCW returns a copy of src rotated 90° counter-clockwise.
//
// A W×H source yields an H×W result. The source pixel at (x, y) is copied
// verbatim to (y, W-x-1); there is no resampling, so four rotations give back
// the original bytes. Only *image.NRGBA is accepted, plus a fully opaque
// *image.RGBA whose bytes are identical in both layouts.
func RotateCCW(src image.Image) (*image.NRGBA, error) {
	var in *image.NRGBA
	switch img := src.(type) {
	case *image.NRGBA:
		in = img
	case *image.RGBA:
		if !img.Opaque() {
			return nil, fmt.Errorf("rotate: %w: translucent %T", ErrPixelFormat, src)
		}
		in = &image.NRGBA{Pix: img.Pix, Stride: img.Stride, Rect: img.Rect}
	default:
		return nil, fmt.Errorf("rotate: %w: %T", ErrPixelFormat, src)
	}

	width := in.Rect.Dx()
	height := in.Rect.Dy()
	out := image.NewNRGBA(image.Rect(0, 0, height, width))

	for y := 0; y < height; y++ {
		row := y * in.Stride
		for x := 0; x < width; x++ {
			srcIndex := row + x*BytesPerPixel
			dstX := y
			dstY := width - x - 1
			dstIndex := dstY*out.Stride + dstX*BytesPerPixel

			copy(out.Pix[dstIndex:dstIndex+BytesPerPixel], in.Pix[srcIndex:srcIndex+BytesPerPixel])
		}
	}

	return out, nil
}

// ToNRGBA converts a decoded image into the supported layout. Images that are
// already *image.NRGBA with a zero origin are returned unchanged.
func ToNRGBA(img image.Image) *image.NRGBA {
	if n, ok := img.(*image.NRGBA); ok && n.Rect.Min == (image.Point{}) {
		return n
	}

	b := img.Bounds()
	out := image.NewNRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
	draw.Draw(out, out.Bounds(), img, b.Min, draw.Src)
	return out
}
