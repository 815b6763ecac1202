package raster

import "image"
import "image/color"
import "github.com/gogpu/gg"

// GG renders through the github.com/gogpu/gg software context
type GG struct{}

type ggCanvas struct {
	dc        *gg.Context
	antialias bool
}

// NewCanvas implements Backend
func (GG) NewCanvas(size int, antialias bool) (Canvas, error) {
	if size <= 0 {
		return nil, ErrSize
	}
	dc := gg.NewContext(size, size)
	dc.ClearWithColor(gg.White)
	dc.SetRGB(0, 0, 0)
	return &ggCanvas{dc: dc, antialias: antialias}, nil
}

func (c *ggCanvas) FillPolygon(xs, ys []float64) error {
	if len(xs) == 0 {
		return nil
	}
	c.dc.MoveTo(xs[0], ys[0])
	for i := 1; i < len(xs); i++ {
		c.dc.LineTo(xs[i], ys[i])
	}
	c.dc.ClosePath()
	return c.dc.Fill()
}

// Intensity takes the red channel only, the canvas holds black ink on white
func (c *ggCanvas) Intensity(dst []float64) {
	img := c.dc.Image()
	if rgba, ok := img.(*image.RGBA); ok && rgba.Rect.Min == (image.Point{}) {
		w := rgba.Rect.Dx()
		for y := 0; y < rgba.Rect.Dy(); y++ {
			for x := 0; x < w; x++ {
				r := rgba.Pix[y*rgba.Stride+4*x]
				dst[y*w+x] = ink(Background-r, c.antialias)
			}
		}
		return
	}
	b := img.Bounds()
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			r := color.RGBAModel.Convert(img.At(x, y)).(color.RGBA).R
			dst[(y-b.Min.Y)*b.Dx()+(x-b.Min.X)] = ink(Background-r, c.antialias)
		}
	}
}

func (c *ggCanvas) Close() error {
	return c.dc.Close()
}
