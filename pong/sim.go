package pong

// Painter is told when the match state is ready to be drawn.
type Painter interface {
	// PaintFrame draws the whole screen.
	PaintFrame(s Snapshot)
	// PaintScore redraws only the score band.
	PaintScore(s Snapshot)
}

// Sim is the timer interrupt handler: one call to Tick advances the match by
// exactly one fixed step.
type Sim struct {
	store   *Store
	painter Painter
}

// NewSim returns a simulation over store. painter may be nil.
func NewSim(store *Store, painter Painter) *Sim {
	return &Sim{store: store, painter: painter}
}

// Tick advances the match one step. It does nothing while the match is idle.
func (m *Sim) Tick() {
	st := m.store
	if !st.Active.Load() {
		return
	}

	m.autoRelease()

	// Both flags may be set; down is applied after up and wins.
	if st.MoveUp.Load() {
		m.moveLeft(-PaddleSpeed)
	}
	if st.MoveDown.Load() {
		m.moveLeft(PaddleSpeed)
	}

	m.moveAI()

	x := st.BallX.Load()
	y := st.BallY.Load()
	vx := st.VelX.Load()
	vy := st.VelY.Load()

	x += vx
	y += vy

	if y <= 0 || y >= maxBallY {
		vy = -vy
	}

	if ly := st.LeftY.Load(); overlaps(x, y, leftBandX0, leftBandX1, ly) {
		x = leftBandX1
		vx = speedUp(-vx)
	}
	if ry := st.RightY.Load(); overlaps(x, y, rightBandX0, rightBandX1, ry) {
		x = rightBandX0 - BallSize
		vx = speedUp(-vx)
	}

	if x <= 0 {
		st.RightScore.Add(1)
		m.serveBall()
		return
	}
	if x >= maxBallX {
		st.LeftScore.Add(1)
		m.serveBall()
		return
	}

	st.BallX.Store(x)
	st.BallY.Store(y)
	st.VelX.Store(vx)
	st.VelY.Store(vy)

	if m.painter != nil {
		m.painter.PaintFrame(st.Snapshot())
	}
}

// autoRelease clears the move flags once AutoReleaseTicks ticks pass
// without a fresh press.
func (m *Sim) autoRelease() {
	st := m.store
	if st.Idle.Add(1) < AutoReleaseTicks {
		return
	}
	st.Idle.Store(0)
	st.MoveUp.Store(false)
	st.MoveDown.Store(false)
}

func (m *Sim) moveLeft(dy int32) {
	st := m.store
	cur := st.LeftY.Load()
	if dy < 0 {
		if cur > -dy {
			st.LeftY.Store(cur + dy)
		} else {
			st.LeftY.Store(0)
		}
		return
	}
	if cur < maxPaddleY-dy {
		st.LeftY.Store(cur + dy)
	} else {
		st.LeftY.Store(maxPaddleY)
	}
}

// moveAI oscillates the right paddle. The edge check updates the stored
// direction, but the move uses the direction read before it; a move that
// reaches an edge also flips the direction within the same step.
func (m *Sim) moveAI() {
	st := m.store
	y := st.RightY.Load()
	dir := st.AIDir.Load()

	if y <= 0 {
		st.AIDir.Store(DirDown)
	} else if y >= maxPaddleY {
		st.AIDir.Store(DirUp)
	}

	if dir > 0 {
		if y < maxPaddleY-AIPaddleSpeed {
			st.RightY.Store(y + AIPaddleSpeed)
		} else {
			st.RightY.Store(maxPaddleY)
			st.AIDir.Store(DirUp)
		}
		return
	}
	if y > AIPaddleSpeed {
		st.RightY.Store(y - AIPaddleSpeed)
	} else {
		st.RightY.Store(0)
		st.AIDir.Store(DirDown)
	}
}

// serveBall recenters the ball after a point. The new horizontal direction
// is the opposite of the stored velocity, i.e. the one from before this tick.
func (m *Sim) serveBall() {
	st := m.store
	vx := int32(-InitialBallSpeed)
	if st.VelX.Load() < 0 {
		vx = InitialBallSpeed
	}
	st.resetBall(vx)

	if m.painter != nil {
		m.painter.PaintScore(st.Snapshot())
	}
}

// overlaps reports whether the ball at (x, y) touches the paddle band
// [bx0, bx1] horizontally and the paddle span starting at py vertically.
func overlaps(x, y, bx0, bx1, py int32) bool {
	return x <= bx1 && x+BallSize >= bx0 &&
		y+BallSize >= py && y <= py+PaddleHeight
}

func speedUp(v int32) int32 {
	if v < 0 {
		return v - 1
	}
	return v + 1
}
