package mask

import (
	"image"
	"image/color"
	"math/rand/v2"
	"testing"
)

func solid(w, h int) *Mask {
	m := New(w, h)
	m.Fill()
	return m
}

func bruteOverlap(a, b *Mask, off image.Point) (image.Point, bool) {
	for y := 0; y < a.Height(); y++ {
		for x := 0; x < a.Width(); x++ {
			if a.Get(x, y) && b.Get(x-off.X, y-off.Y) {
				return image.Pt(x, y), true
			}
		}
	}
	return image.Point{}, false
}

func TestOverlapSolidSquares(t *testing.T) {
	const size = 32
	a := solid(size, size)
	b := solid(size, size)

	cases := []struct {
		name   string
		offset image.Point
		want   bool
	}{
		{"same_origin", image.Pt(0, 0), true},
		{"one_pixel_corner", image.Pt(size-1, size-1), true},
		{"negative_one_pixel", image.Pt(-(size - 1), -(size - 1)), true},
		{"touching_right", image.Pt(size, 0), false},
		{"touching_bottom", image.Pt(0, size), false},
		{"apart_by_half_widths_plus_one", image.Pt(size/2+size/2+1, 0), false},
		{"far_negative", image.Pt(-100, -100), false},
	}
	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			_, got := a.Overlap(b, c.offset)
			if got != c.want {
				t.Fatalf("Overlap(%v) = %v, want %v", c.offset, got, c.want)
			}
		})
	}
}

func TestOverlapReturnsFirstPointInReceiverSpace(t *testing.T) {
	a := solid(10, 10)
	b := New(4, 4)
	b.Set(2, 3, true)

	p, ok := a.Overlap(b, image.Pt(5, 1))
	if !ok {
		t.Fatalf("expected overlap")
	}
	if p != image.Pt(7, 4) {
		t.Fatalf("expected (7,4), got %v", p)
	}
}

func TestOverlapMatchesBruteForceAcrossWords(t *testing.T) {
	rng := rand.New(rand.NewPCG(1, 2))
	random := func(w, h int, density float64) *Mask {
		m := New(w, h)
		for y := 0; y < h; y++ {
			for x := 0; x < w; x++ {
				if rng.Float64() < density {
					m.Set(x, y, true)
				}
			}
		}
		return m
	}

	for i := 0; i < 200; i++ {
		a := random(1+rng.IntN(150), 1+rng.IntN(20), 0.05)
		b := random(1+rng.IntN(150), 1+rng.IntN(20), 0.05)
		off := image.Pt(rng.IntN(300)-150, rng.IntN(40)-20)

		got, gotOK := a.Overlap(b, off)
		want, wantOK := bruteOverlap(a, b, off)
		if gotOK != wantOK || got != want {
			t.Fatalf("case %d offset %v: got (%v,%v) want (%v,%v)", i, off, got, gotOK, want, wantOK)
		}
	}
}

func TestOverlapEmptyMasks(t *testing.T) {
	if _, ok := New(0, 0).Overlap(solid(4, 4), image.Point{}); ok {
		t.Fatalf("empty mask should not overlap")
	}
	if _, ok := solid(4, 4).Overlap(nil, image.Point{}); ok {
		t.Fatalf("nil mask should not overlap")
	}
}

func TestFromImageThreshold(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 3, 1))
	img.SetNRGBA(0, 0, color.NRGBA{A: 0})
	img.SetNRGBA(1, 0, color.NRGBA{A: 127})
	img.SetNRGBA(2, 0, color.NRGBA{A: 128})

	m := FromImage(img, DefaultThreshold)
	if m.Get(0, 0) || m.Get(1, 0) || !m.Get(2, 0) {
		t.Fatalf("unexpected mask bits: %v %v %v", m.Get(0, 0), m.Get(1, 0), m.Get(2, 0))
	}
	if m.Count() != 1 {
		t.Fatalf("expected 1 opaque pixel, got %d", m.Count())
	}
}

func TestCrop(t *testing.T) {
	img := image.NewNRGBA(image.Rect(0, 0, 10, 8))
	img.SetNRGBA(3, 2, color.NRGBA{R: 255, A: 255})
	img.SetNRGBA(6, 5, color.NRGBA{G: 255, A: 10})

	out, off := Crop(img)
	if off != image.Pt(3, 2) {
		t.Fatalf("expected offset (3,2), got %v", off)
	}
	if out.Bounds().Dx() != 4 || out.Bounds().Dy() != 4 {
		t.Fatalf("expected 4x4 crop, got %v", out.Bounds())
	}
	if out.NRGBAAt(0, 0).R != 255 || out.NRGBAAt(3, 3).G != 255 {
		t.Fatalf("crop did not preserve pixels")
	}

	empty, off := Crop(image.NewNRGBA(image.Rect(0, 0, 5, 5)))
	if !empty.Bounds().Empty() || off != (image.Point{}) {
		t.Fatalf("transparent image should crop to empty, got %v %v", empty.Bounds(), off)
	}
}

func TestSheetMasks(t *testing.T) {
	sheet := image.NewNRGBA(image.Rect(0, 0, 8, 4))
	// frame 3 of a 4x2 sheet of 2x2 frames is at (6,0)
	sheet.SetNRGBA(7, 1, color.NRGBA{A: 255})

	masks := SheetMasks(sheet, 4, 2, DefaultThreshold)
	if len(masks) != 8 {
		t.Fatalf("expected 8 masks, got %d", len(masks))
	}
	for i, m := range masks {
		want := 0
		if i == 3 {
			want = 1
		}
		if m.Count() != want {
			t.Fatalf("frame %d: expected %d opaque pixels, got %d", i, want, m.Count())
		}
	}
	if !masks[3].Get(1, 1) {
		t.Fatalf("expected frame-local pixel (1,1) in frame 3")
	}
}
