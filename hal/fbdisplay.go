package hal

import (
	"image/color"

	"tinygo.org/x/drivers"
)

// FramebufferDisplay adapts an RGB565 Framebuffer to the TinyGo displayer
// contract used by tinyfont and tinyterm.
//
// A display may cover a horizontal band of the framebuffer: coordinates are
// relative to the band origin and every write is clipped to the band.
type FramebufferDisplay struct {
	fb Framebuffer
	y0 int
	h  int
}

var _ drivers.Displayer = (*FramebufferDisplay)(nil)

// NewFramebufferDisplay returns a display covering the whole framebuffer.
func NewFramebufferDisplay(fb Framebuffer) *FramebufferDisplay {
	if fb == nil {
		return &FramebufferDisplay{}
	}
	return &FramebufferDisplay{fb: fb, h: fb.Height()}
}

// NewBandDisplay returns a display covering rows [y0, y0+height) of fb.
func NewBandDisplay(fb Framebuffer, y0, height int) *FramebufferDisplay {
	d := &FramebufferDisplay{fb: fb, y0: y0, h: height}
	if fb == nil {
		d.h = 0
		return d
	}
	if d.y0 < 0 {
		d.y0 = 0
	}
	if d.y0+d.h > fb.Height() {
		d.h = fb.Height() - d.y0
	}
	if d.h < 0 {
		d.h = 0
	}
	return d
}

func (d *FramebufferDisplay) ok() bool {
	return d.fb != nil && d.fb.Format() == PixelFormatRGB565 && d.fb.Buffer() != nil
}

func (d *FramebufferDisplay) Size() (x, y int16) {
	if d.fb == nil {
		return 0, 0
	}
	return int16(d.fb.Width()), int16(d.h)
}

func (d *FramebufferDisplay) SetPixel(x, y int16, c color.RGBA) {
	if !d.ok() {
		return
	}
	ix := int(x)
	iy := int(y)
	if ix < 0 || ix >= d.fb.Width() || iy < 0 || iy >= d.h {
		return
	}
	d.put(ix, d.y0+iy, RGB565(c.R, c.G, c.B))
}

func (d *FramebufferDisplay) Display() error {
	if d.fb == nil {
		return ErrNotImplemented
	}
	return d.fb.Present()
}

func (d *FramebufferDisplay) FillRectangle(x, y, width, height int16, c color.RGBA) error {
	d.Fill(int(x), int(y), int(width), int(height), RGB565(c.R, c.G, c.B))
	return nil
}

// Fill paints a solid rectangle with a prepacked pixel, skipping anything
// outside the band.
func (d *FramebufferDisplay) Fill(x, y, width, height int, pixel uint16) {
	if !d.ok() {
		return
	}
	x0 := clampInt(x, 0, d.fb.Width())
	y0 := clampInt(y, 0, d.h)
	x1 := clampInt(x+width, 0, d.fb.Width())
	y1 := clampInt(y+height, 0, d.h)
	if x0 >= x1 || y0 >= y1 {
		return
	}

	buf := d.fb.Buffer()
	lo := byte(pixel)
	hi := byte(pixel >> 8)
	stride := d.fb.StrideBytes()
	for py := y0; py < y1; py++ {
		row := (d.y0 + py) * stride
		for px := x0; px < x1; px++ {
			off := row + px*2
			if off < 0 || off+1 >= len(buf) {
				continue
			}
			buf[off] = lo
			buf[off+1] = hi
		}
	}
}

// ScrollUp shifts the band up by n rows and clears the exposed rows.
func (d *FramebufferDisplay) ScrollUp(pixels int16, bg color.RGBA) error {
	if !d.ok() {
		return nil
	}
	n := int(pixels)
	if n <= 0 {
		return nil
	}
	if n >= d.h {
		return d.FillRectangle(0, 0, int16(d.fb.Width()), int16(d.h), bg)
	}

	buf := d.fb.Buffer()
	stride := d.fb.StrideBytes()
	dst := d.y0 * stride
	src := (d.y0 + n) * stride
	end := (d.y0 + d.h) * stride
	if end > len(buf) {
		end = len(buf)
	}
	if src < end {
		copy(buf[dst:], buf[src:end])
	}
	return d.FillRectangle(0, int16(d.h-n), int16(d.fb.Width()), int16(n), bg)
}

func (d *FramebufferDisplay) SetScroll(line int16) {
	_ = line
}

func (d *FramebufferDisplay) SetRotation(rotation drivers.Rotation) error {
	_ = rotation
	return nil
}

func (d *FramebufferDisplay) put(x, y int, pixel uint16) {
	buf := d.fb.Buffer()
	off := y*d.fb.StrideBytes() + x*2
	if off < 0 || off+1 >= len(buf) {
		return
	}
	buf[off] = byte(pixel)
	buf[off+1] = byte(pixel >> 8)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
