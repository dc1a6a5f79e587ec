//go:build !tinygo

package hal

import "time"

// hostTime turns wall-clock progress observed by the runner into timer
// interrupts at a fixed period. Ticks that cannot be queued are dropped, the
// way a missed timer interrupt is lost on hardware.
type hostTime struct {
	ch     chan uint64
	seq    uint64
	period time.Duration

	now  func() time.Time
	last time.Time
	acc  time.Duration
}

func newHostTime(period time.Duration) *hostTime {
	if period <= 0 {
		period = time.Second / 60
	}
	return &hostTime{ch: make(chan uint64, 1024), period: period, now: time.Now}
}

func (t *hostTime) Ticks() <-chan uint64 { return t.ch }

// advance emits however many whole periods elapsed since the last call.
func (t *hostTime) advance() {
	now := t.now()
	if t.last.IsZero() {
		t.last = now
		t.acc = 0
		t.stepN(1)
		return
	}

	t.acc += now.Sub(t.last)
	t.last = now

	ticks := uint64(t.acc / t.period)
	if ticks == 0 {
		return
	}
	t.acc = t.acc % t.period
	t.stepN(ticks)
}

func (t *hostTime) stepN(n uint64) {
	for i := uint64(0); i < n; i++ {
		t.seq++
		select {
		case t.ch <- t.seq:
		default:
		}
	}
}
