//go:build !tinygo

package hal

import (
	"image/color"
	"testing"
)

func TestBandDisplayClipsToBand(t *testing.T) {
	fb := NewFramebuffer(8, 8)
	d := NewBandDisplay(fb, 2, 3)

	if w, h := d.Size(); w != 8 || h != 3 {
		t.Fatalf("Size() = %d,%d, want 8,3", w, h)
	}

	white := color.RGBA{R: 0xFF, G: 0xFF, B: 0xFF, A: 0xFF}
	d.SetPixel(1, 0, white)
	d.SetPixel(1, 3, white)
	d.SetPixel(-1, 1, white)

	if got := PixelAt(fb, 1, 2); got != 0xFFFF {
		t.Fatalf("PixelAt(1,2) = %#x, want 0xffff", got)
	}
	if got := PixelAt(fb, 1, 5); got != 0 {
		t.Fatalf("PixelAt(1,5) = %#x, want 0 (outside band)", got)
	}

	d.Fill(-4, -4, 100, 100, 0x1234)
	for y := 0; y < 8; y++ {
		want := uint16(0)
		if y >= 2 && y < 5 {
			want = 0x1234
		}
		if got := PixelAt(fb, 7, y); got != want {
			t.Fatalf("after Fill PixelAt(7,%d) = %#x, want %#x", y, got, want)
		}
	}
}

func TestBandDisplayClampsToFramebuffer(t *testing.T) {
	fb := NewFramebuffer(4, 4)
	if _, h := NewBandDisplay(fb, 2, 10).Size(); h != 2 {
		t.Fatalf("Size() height = %d, want 2", h)
	}
	if _, h := NewBandDisplay(fb, 9, 2).Size(); h != 0 {
		t.Fatalf("Size() height = %d, want 0", h)
	}
	if w, h := NewBandDisplay(nil, 0, 4).Size(); w != 0 || h != 0 {
		t.Fatalf("nil framebuffer Size() = %d,%d, want 0,0", w, h)
	}
}

func TestBandDisplayScrollUp(t *testing.T) {
	fb := NewFramebuffer(2, 6)
	d := NewBandDisplay(fb, 1, 4)
	for y := 0; y < 4; y++ {
		d.Fill(0, y, 2, 1, uint16(y+1))
	}
	fb.Buffer()[0] = 0xAA

	if err := d.ScrollUp(1, color.RGBA{}); err != nil {
		t.Fatalf("ScrollUp() = %v", err)
	}

	want := []uint16{0x00AA, 2, 3, 4, 0, 0}
	for y, w := range want {
		if got := PixelAt(fb, 0, y); got != w {
			t.Fatalf("PixelAt(0,%d) = %#x, want %#x", y, got, w)
		}
	}
}

func TestRGB565(t *testing.T) {
	if got := RGB565(0xFF, 0, 0); got != 0xF800 {
		t.Fatalf("RGB565(red) = %#x, want 0xf800", got)
	}
	r, g, b := rgb888From565(0xFFFF)
	if r != 0xFF || g != 0xFF || b != 0xFF {
		t.Fatalf("rgb888From565(white) = %d,%d,%d", r, g, b)
	}
}
