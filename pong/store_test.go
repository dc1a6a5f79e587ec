package pong

import (
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func startingLayout() Snapshot {
	return Snapshot{
		LeftY:  210,
		RightY: 210,
		BallX:  315,
		BallY:  235,
		VelX:   2,
		VelY:   2,
		Active: true,
		AIDir:  DirDown,
	}
}

func TestNewStoreStartingLayout(t *testing.T) {
	assert.Equal(t, startingLayout(), NewStore().Snapshot())
}

func TestStoreResetAfterPlay(t *testing.T) {
	s := NewStore()
	s.LeftY.Store(0)
	s.RightY.Store(420)
	s.BallX.Store(5)
	s.BallY.Store(5)
	s.VelX.Store(-7)
	s.VelY.Store(-3)
	s.LeftScore.Store(4)
	s.RightScore.Store(9)
	s.Active.Store(false)
	s.AIDir.Store(DirUp)
	s.MoveUp.Store(true)
	s.MoveDown.Store(true)
	s.Idle.Store(3)

	s.Reset()

	assert.Equal(t, startingLayout(), s.Snapshot())
}

func TestStoreConcurrentScoring(t *testing.T) {
	const workers, perWorker = 8, 1000

	s := NewStore()
	var wg sync.WaitGroup
	for i := 0; i < workers; i++ {
		wg.Add(1)
		go func(left bool) {
			defer wg.Done()
			for j := 0; j < perWorker; j++ {
				if left {
					s.LeftScore.Add(1)
				} else {
					s.RightScore.Add(1)
				}
				_ = s.Snapshot()
			}
		}(i%2 == 0)
	}
	wg.Wait()

	require.Equal(t, int32(workers/2*perWorker), s.LeftScore.Load())
	require.Equal(t, int32(workers/2*perWorker), s.RightScore.Load())
}

// A keyboard handler and the timer handler racing on the same store must
// leave every field in range, even if a frame is torn.
func TestStoreConcurrentTickAndInput(t *testing.T) {
	s := NewStore()
	m := NewSim(s, nil)
	r := NewRouter(s, nil, nil, nil)

	done := make(chan struct{})
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for i := 0; ; i++ {
			select {
			case <-done:
				return
			default:
			}
			r.Handle(keyRune("ws"[i%2]))
		}
	}()

	for i := 0; i < 2000; i++ {
		m.Tick()
		snap := s.Snapshot()
		require.GreaterOrEqual(t, snap.LeftY, int32(0))
		require.LessOrEqual(t, snap.LeftY, int32(maxPaddleY))
		require.GreaterOrEqual(t, snap.RightY, int32(0))
		require.LessOrEqual(t, snap.RightY, int32(maxPaddleY))
	}
	close(done)
	wg.Wait()
}
