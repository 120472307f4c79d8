// Package heightmap rasterizes a terrain's elevation field into a grayscale
// image: the elevation range maps onto gray 30..250, points outside the
// triangulated hull stay black.
package heightmap

import (
	"image"
	"math"

	"github.com/katalvlaran/fastlem/terrain"
)

const (
	grayFloor = 30
	grayRange = 220
)

// Render samples the terrain over its bounds into a width-pixel-wide image;
// the height follows the bounds' aspect ratio.
func Render(t *terrain.Terrain2D, width int) *image.Gray {
	if width < 1 {
		width = 1
	}
	min, max := t.Bounds()
	height := int(math.Round(float64(width) * (max.Y - min.Y) / (max.X - min.X)))
	if height < 1 {
		height = 1
	}

	lo, hi := elevationRange(t.Elevations())
	img := image.NewGray(image.Rect(0, 0, width, height))
	for py := 0; py < height; py++ {
		y := min.Y + (max.Y-min.Y)*(float64(py)+0.5)/float64(height)
		for px := 0; px < width; px++ {
			x := min.X + (max.X-min.X)*(float64(px)+0.5)/float64(width)
			e, ok := t.ElevationAt(x, y)
			if !ok {
				continue // outside the hull, keep black
			}
			rate := 0.0
			if hi > lo {
				rate = (e - lo) / (hi - lo)
			}
			img.Pix[py*img.Stride+px] = uint8(rate*grayRange + grayFloor)
		}
	}

	return img
}

// elevationRange returns the min and max of the elevation field.
func elevationRange(elevations []float64) (lo, hi float64) {
	lo, hi = math.Inf(1), math.Inf(-1)
	for _, e := range elevations {
		lo = math.Min(lo, e)
		hi = math.Max(hi, e)
	}
	return lo, hi
}
