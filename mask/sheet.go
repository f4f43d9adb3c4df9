package mask

import "image"

// FrameRect returns the rectangle of one frame in a sheet of cols x rows
// equally sized frames, numbered row-major from the top-left.
func FrameRect(sheet image.Rectangle, cols, rows, frame int) image.Rectangle {
	if cols <= 0 || rows <= 0 {
		return image.Rectangle{}
	}
	fw := sheet.Dx() / cols
	fh := sheet.Dy() / rows
	x := sheet.Min.X + (frame%cols)*fw
	y := sheet.Min.Y + (frame/cols)*fh
	return image.Rect(x, y, x+fw, y+fh)
}

// SheetMasks builds one mask per frame of a sprite sheet.
func SheetMasks(img image.Image, cols, rows int, threshold uint8) []*Mask {
	if cols <= 0 || rows <= 0 {
		return nil
	}
	out := make([]*Mask, 0, cols*rows)
	for f := 0; f < cols*rows; f++ {
		out = append(out, FromImageRect(img, FrameRect(img.Bounds(), cols, rows, f), threshold))
	}
	return out
}
