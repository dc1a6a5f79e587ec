//go:build !tinygo

package pong

import (
	"testing"

	"pongos/hal"

	"github.com/stretchr/testify/assert"
)

func bandIsBlank(fb hal.Framebuffer, y0, y1 int) bool {
	for y := y0; y < y1; y++ {
		for x := 0; x < fb.Width(); x++ {
			if hal.PixelAt(fb, x, y) != 0 {
				return false
			}
		}
	}
	return true
}

func TestRendererPaintFrame(t *testing.T) {
	fb := hal.NewFramebuffer(ScreenWidth, ScreenHeight)
	fb.ClearRGB(0x40, 0x40, 0x40)
	r := NewRenderer(fb, make([]byte, ScratchSize()))

	s := NewStore().Snapshot()
	s.LeftY = 100
	s.RightY = 300
	s.BallX = 50
	s.BallY = 60
	r.PaintFrame(s)

	white := hal.RGB565(0xFF, 0xFF, 0xFF)
	assert.Equal(t, white, hal.PixelAt(fb, 20, 100), "left paddle corner")
	assert.Equal(t, white, hal.PixelAt(fb, 29, 159), "left paddle far corner")
	assert.Zero(t, hal.PixelAt(fb, 30, 100), "right of left paddle")
	assert.Zero(t, hal.PixelAt(fb, 20, 160), "below left paddle")
	assert.Equal(t, white, hal.PixelAt(fb, 615, 330), "right paddle")
	assert.Equal(t, white, hal.PixelAt(fb, 55, 65), "ball")

	assert.Equal(t, white, hal.PixelAt(fb, 320, 32), "centerline dash")
	assert.Zero(t, hal.PixelAt(fb, 320, 36), "centerline gap")
	assert.Zero(t, hal.PixelAt(fb, 200, 400), "field background")

	// The console rows above the score band are left alone.
	assert.Equal(t, hal.RGB565(0x40, 0x40, 0x40), hal.PixelAt(fb, 5, 5))
	assert.False(t, bandIsBlank(fb, ScoreBandY, TextBandHeight), "score text drawn")
}

func TestRendererSpritesStayOutOfTextBand(t *testing.T) {
	fb := hal.NewFramebuffer(ScreenWidth, ScreenHeight)
	fb.ClearRGB(0x40, 0x40, 0x40)
	r := NewRenderer(fb, make([]byte, ScratchSize()))
	grey := hal.RGB565(0x40, 0x40, 0x40)

	s := NewStore().Snapshot()
	s.BallX, s.BallY = 100, 0
	s.LeftY = 0
	r.PaintFrame(s)

	assert.Equal(t, grey, hal.PixelAt(fb, 105, 5), "ball at the top wall")
	assert.Equal(t, grey, hal.PixelAt(fb, 25, 5), "paddle at the top")
	assert.Equal(t, hal.RGB565(0xFF, 0xFF, 0xFF), hal.PixelAt(fb, 25, TextBandHeight), "paddle clipped, not dropped")

	s.BallX, s.BallY = 300, 300
	s.LeftY = 200
	r.PaintFrame(s)

	for y := 0; y < ScoreBandY; y++ {
		for x := 0; x < ScreenWidth; x++ {
			if got := hal.PixelAt(fb, x, y); got != grey {
				t.Fatalf("pixel(%d,%d) = %#04x, want console background", x, y, got)
			}
		}
	}
}

func TestRendererScoreWithoutScratch(t *testing.T) {
	fb := hal.NewFramebuffer(ScreenWidth, ScreenHeight)
	fb.ClearRGB(0xFF, 0xFF, 0xFF)

	NewRenderer(fb, nil).PaintScore(NewStore().Snapshot())

	assert.True(t, bandIsBlank(fb, ScoreBandY, TextBandHeight))
	assert.Equal(t, hal.RGB565(0xFF, 0xFF, 0xFF), hal.PixelAt(fb, 0, ScoreBandY-1))
	assert.Equal(t, hal.RGB565(0xFF, 0xFF, 0xFF), hal.PixelAt(fb, 0, TextBandHeight))
}

func TestRendererBanner(t *testing.T) {
	fb := hal.NewFramebuffer(ScreenWidth, ScreenHeight)
	r := NewRenderer(fb, nil)

	r.PaintBanner()
	assert.Equal(t, hal.RGB565(0xFF, 0, 0), hal.PixelAt(fb, 100, ScreenHeight-15))
	assert.Equal(t, hal.RGB565(0, 0xFF, 0), hal.PixelAt(fb, 100, ScreenHeight-10))
	assert.Equal(t, hal.RGB565(0, 0, 0xFF), hal.PixelAt(fb, 100, ScreenHeight-5))

	r.PaintFrame(NewStore().Snapshot())
	assert.Zero(t, hal.PixelAt(fb, 100, ScreenHeight-15))
}

func TestRendererNilFramebuffer(t *testing.T) {
	r := NewRenderer(nil, make([]byte, ScratchSize()))
	r.PaintBanner()
	r.PaintFrame(NewStore().Snapshot())
}

func TestFormatScore(t *testing.T) {
	buf := make([]byte, 0, ScratchSize())
	assert.Equal(t, "Score: 3 - 12", string(formatScore(buf, 3, 12)))

	allocs := testing.AllocsPerRun(100, func() {
		_ = formatScore(buf[:0], 999, 1000)
	})
	assert.Zero(t, allocs)
}
