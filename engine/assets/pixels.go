package assets

import (
	"image"
	"image/draw"
)

// RGBA8 flattens img into tightly packed RGBA bytes, rows top to bottom, the
// layout glTexImage2D expects with the default unpack alignment.
func RGBA8(img image.Image) (w, h int, pix []byte) {
	m, ok := img.(*image.RGBA)
	if !ok || m.Rect.Min != (image.Point{}) {
		b := img.Bounds()
		m = image.NewRGBA(image.Rect(0, 0, b.Dx(), b.Dy()))
		draw.Draw(m, m.Rect, img, b.Min, draw.Src)
	}
	w, h = m.Rect.Dx(), m.Rect.Dy()
	row := w * 4
	if m.Stride == row {
		return w, h, m.Pix[:row*h]
	}
	pix = make([]byte, 0, row*h)
	for y := range h {
		pix = append(pix, m.Pix[y*m.Stride:y*m.Stride+row]...)
	}
	return w, h, pix
}
