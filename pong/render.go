package pong

import (
	"image/color"
	"strconv"

	"pongos/hal"

	"tinygo.org/x/tinyfont"
	"tinygo.org/x/tinyfont/proggy"
)

const (
	// ScoreBandY is where the score line starts inside the text band; the
	// console owns the rows above it.
	ScoreBandY = 16

	centerLineX = ScreenWidth / 2

	scoreBaseline = TextBandHeight - 5
	scoreScratch  = 32
)

var (
	pixelBlack = hal.RGB565(0x00, 0x00, 0x00)
	pixelWhite = hal.RGB565(0xFF, 0xFF, 0xFF)

	scoreColor = color.RGBA{R: 0xEE, G: 0xEE, B: 0xEE, A: 0xFF}

	scorePrefix = []byte("Score: ")
	scoreSep    = []byte(" - ")
)

// Renderer paints the match onto an RGB565 framebuffer.
type Renderer struct {
	fb     hal.Framebuffer
	screen *hal.FramebufferDisplay
	field  *hal.FramebufferDisplay
	score  *hal.FramebufferDisplay

	font      tinyfont.Fonter
	charWidth int16

	// text is formatting scratch for the score line. It is handed in once at
	// boot so that painting from the timer handler never allocates.
	text []byte
}

var _ Painter = (*Renderer)(nil)

// NewRenderer returns a renderer drawing into fb. text is scratch space for
// the score line; when it is nil the score band is only cleared.
func NewRenderer(fb hal.Framebuffer, text []byte) *Renderer {
	r := &Renderer{
		fb:     fb,
		screen: hal.NewFramebufferDisplay(fb),
		field:  hal.NewBandDisplay(fb, TextBandHeight, ScreenHeight-TextBandHeight),
		score:  hal.NewBandDisplay(fb, ScoreBandY, TextBandHeight-ScoreBandY),
		font:   &proggy.TinySZ8pt7b,
		text:   text,
	}
	_, w := tinyfont.LineWidth(r.font, "0")
	r.charWidth = int16(w)
	return r
}

// ScratchSize is the score formatting space the renderer wants.
func ScratchSize() int { return scoreScratch }

// PaintFrame clears the play field and draws the centerline, both paddles,
// the ball and the score. Sprites are clipped to the play field so nothing
// lands in the text band above it.
func (r *Renderer) PaintFrame(s Snapshot) {
	d := r.field
	d.Fill(0, 0, ScreenWidth, ScreenHeight-TextBandHeight, pixelBlack)

	for y := TextBandHeight; y < ScreenHeight; y++ {
		if y%8 < 4 {
			d.Fill(centerLineX, y-TextBandHeight, 1, 1, pixelWhite)
		}
	}

	d.Fill(leftBandX0, int(s.LeftY)-TextBandHeight, PaddleWidth, PaddleHeight, pixelWhite)
	d.Fill(rightBandX0, int(s.RightY)-TextBandHeight, PaddleWidth, PaddleHeight, pixelWhite)
	d.Fill(int(s.BallX), int(s.BallY)-TextBandHeight, BallSize, BallSize, pixelWhite)

	r.PaintScore(s)
}

// PaintScore clears the score band and writes "Score: L - R".
func (r *Renderer) PaintScore(s Snapshot) {
	w, h := r.score.Size()
	r.score.Fill(0, 0, int(w), int(h), pixelBlack)

	if len(r.text) > 0 {
		line := formatScore(r.text[:0], s.LeftScore, s.RightScore)
		x := int16(0)
		for _, b := range line {
			tinyfont.DrawChar(r.score, r.font, x, scoreBaseline-ScoreBandY, rune(b), scoreColor)
			x += r.charWidth
		}
	}

	if r.fb != nil {
		_ = r.fb.Present()
	}
}

// formatScore appends "Score: L - R" to dst without allocating when dst has room.
func formatScore(dst []byte, left, right int32) []byte {
	dst = append(dst, scorePrefix...)
	dst = strconv.AppendInt(dst, int64(left), 10)
	dst = append(dst, scoreSep...)
	dst = strconv.AppendInt(dst, int64(right), 10)
	return dst
}

// PaintBanner draws the red, green and blue boot lines near the bottom edge.
// The first frame clears them.
func (r *Renderer) PaintBanner() {
	d := r.screen
	for i, p := range [...]uint16{
		hal.RGB565(0xFF, 0x00, 0x00),
		hal.RGB565(0x00, 0xFF, 0x00),
		hal.RGB565(0x00, 0x00, 0xFF),
	} {
		d.Fill(0, ScreenHeight-15+5*i, ScreenWidth, 1, p)
	}
	if r.fb != nil {
		_ = r.fb.Present()
	}
}
