// Package pong implements the paddle-and-ball match driven by the timer and
// keyboard interrupts: the shared match state, the input router, the fixed
// step simulation and the framebuffer renderer.
package pong

const (
	ScreenWidth  = 640
	ScreenHeight = 480

	PaddleWidth  = 10
	PaddleHeight = 60
	PaddleOffset = 20
	BallSize     = 10

	PaddleSpeed      = 5
	AIPaddleSpeed    = 3
	InitialBallSpeed = 2

	// AutoReleaseTicks is how many ticks a move flag stays set without a
	// fresh key press. The keyboard only reports presses, never releases.
	AutoReleaseTicks = 5

	// TextBandHeight is the top band reserved for text; the play field
	// starts below it.
	TextBandHeight = 30

	maxPaddleY = ScreenHeight - PaddleHeight
	maxBallY   = ScreenHeight - BallSize
	maxBallX   = ScreenWidth - BallSize

	leftBandX0  = PaddleOffset
	leftBandX1  = PaddleOffset + PaddleWidth
	rightBandX0 = ScreenWidth - PaddleOffset - PaddleWidth
	rightBandX1 = ScreenWidth - PaddleOffset

	centerPaddleY = (ScreenHeight - PaddleHeight) / 2
	centerBallX   = (ScreenWidth - BallSize) / 2
	centerBallY   = (ScreenHeight - BallSize) / 2
)

// AI paddle directions.
const (
	DirUp   int32 = -1
	DirDown int32 = 1
)
