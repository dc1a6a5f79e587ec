package pong

import "sync/atomic"

// Store holds the match state shared by the timer and keyboard handlers.
//
// Every field is independently atomic and there is no compound transaction:
// a reader may see a mix of values from before and after a concurrent
// handler. Each field transition is individually valid, so the worst case is
// one visually inconsistent frame. Only the scores and the idle counter are
// updated with read-modify-write (Add); everything else is a plain Load or
// Store.
type Store struct {
	LeftY  atomic.Int32
	RightY atomic.Int32

	BallX atomic.Int32
	BallY atomic.Int32
	VelX  atomic.Int32
	VelY  atomic.Int32

	LeftScore  atomic.Int32
	RightScore atomic.Int32

	Active atomic.Bool
	AIDir  atomic.Int32

	MoveUp   atomic.Bool
	MoveDown atomic.Bool
	Idle     atomic.Int32
}

// NewStore returns a store in the starting layout.
func NewStore() *Store {
	s := &Store{}
	s.Reset()
	return s
}

// Reset restores the starting layout: paddles and ball centered, initial
// ball velocity, scores zero, match active, AI moving down, input clear.
func (s *Store) Reset() {
	s.LeftY.Store(centerPaddleY)
	s.RightY.Store(centerPaddleY)
	s.resetBall(InitialBallSpeed)
	s.LeftScore.Store(0)
	s.RightScore.Store(0)
	s.Active.Store(true)
	s.AIDir.Store(DirDown)
	s.MoveUp.Store(false)
	s.MoveDown.Store(false)
	s.Idle.Store(0)
}

func (s *Store) resetBall(velX int32) {
	s.BallX.Store(centerBallX)
	s.BallY.Store(centerBallY)
	s.VelX.Store(velX)
	s.VelY.Store(InitialBallSpeed)
}

// Snapshot is a plain copy of the match state, read field by field.
type Snapshot struct {
	LeftY, RightY    int32
	BallX, BallY     int32
	VelX, VelY       int32
	LeftScore        int32
	RightScore       int32
	Active           bool
	AIDir            int32
	MoveUp, MoveDown bool
	Idle             int32
}

// Snapshot reads every field once. The result may be torn across a
// concurrent update, like any other reader.
func (s *Store) Snapshot() Snapshot {
	return Snapshot{
		LeftY:      s.LeftY.Load(),
		RightY:     s.RightY.Load(),
		BallX:      s.BallX.Load(),
		BallY:      s.BallY.Load(),
		VelX:       s.VelX.Load(),
		VelY:       s.VelY.Load(),
		LeftScore:  s.LeftScore.Load(),
		RightScore: s.RightScore.Load(),
		Active:     s.Active.Load(),
		AIDir:      s.AIDir.Load(),
		MoveUp:     s.MoveUp.Load(),
		MoveDown:   s.MoveDown.Load(),
		Idle:       s.Idle.Load(),
	}
}
