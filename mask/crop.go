package mask

import (
	"image"
	"image/draw"
)

// Crop removes fully transparent rows and columns around img. It returns the
// cropped copy and the position of its top-left corner inside img, relative
// to img.Bounds().Min. A fully transparent image crops to an empty image.
func Crop(img image.Image) (*image.NRGBA, image.Point) {
	b := img.Bounds()
	minX, minY := b.Max.X, b.Max.Y
	maxX, maxY := b.Min.X-1, b.Min.Y-1
	for y := b.Min.Y; y < b.Max.Y; y++ {
		for x := b.Min.X; x < b.Max.X; x++ {
			if alphaAt(img, x, y) == 0 {
				continue
			}
			minX = min(minX, x)
			maxX = max(maxX, x)
			minY = min(minY, y)
			maxY = max(maxY, y)
		}
	}
	if maxX < minX {
		return image.NewNRGBA(image.Rectangle{}), image.Point{}
	}

	r := image.Rect(minX, minY, maxX+1, maxY+1)
	out := image.NewNRGBA(image.Rect(0, 0, r.Dx(), r.Dy()))
	draw.Draw(out, out.Bounds(), img, r.Min, draw.Src)
	return out, r.Min.Sub(b.Min)
}
