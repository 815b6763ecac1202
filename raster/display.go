package raster

import "github.com/jbeda/geom"

// DisplayExtent is the square the image is stretched over when shown next to
// unit square coordinates, so predicted vertices can be overlaid on it.
var DisplayExtent = geom.Rect{
	Min: geom.Coord{X: -0.15, Y: -0.15},
	Max: geom.Coord{X: 1.15, Y: 1.15},
}

// ToDisplay maps a unit square point to the pixel it falls on when an image of
// size x size pixels is shown over extent. The second result is false for
// points outside the image.
func ToDisplay(p geom.Coord, extent geom.Rect, size int) (x, y int, ok bool) {
	u := (p.X - extent.Min.X) / extent.Width()
	v := (extent.Max.Y - p.Y) / extent.Height()
	fx := u * float64(size)
	fy := v * float64(size)
	if fx < 0 || fy < 0 || fx >= float64(size) || fy >= float64(size) {
		return 0, 0, false
	}
	return int(fx), int(fy), true
}
