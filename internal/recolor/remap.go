package recolor

import (
	"image"
	"image/color"
	"image/draw"
)

// Remap returns a copy of src with every pixel passed through RemapColor.
// src is not modified.
func Remap(src image.Image, t Table) *image.NRGBA {
	dst := toNRGBA(src)
	b := dst.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			i := dst.PixOffset(x, y)
			p := dst.Pix[i : i+4 : i+4]
			c := RemapColor(color.NRGBA{R: p[0], G: p[1], B: p[2], A: p[3]}, t)
			p[0], p[1], p[2] = c.R, c.G, c.B
		}
	}
	return dst
}

// toNRGBA returns a fresh non-premultiplied copy of src with the same bounds.
func toNRGBA(src image.Image) *image.NRGBA {
	b := src.Bounds()
	dst := image.NewNRGBA(b)
	if n, ok := src.(*image.NRGBA); ok {
		for y := b.Min.Y; y < b.Max.Y; y++ {
			copy(dst.Pix[dst.PixOffset(b.Min.X, y):dst.PixOffset(b.Max.X, y)],
				n.Pix[n.PixOffset(b.Min.X, y):n.PixOffset(b.Max.X, y)])
		}
		return dst
	}
	draw.Draw(dst, b, src, b.Min, draw.Src)
	return dst
}
