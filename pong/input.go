package pong

import (
	"fmt"

	"pongos/hal"

	"github.com/rs/xid"
)

// Intent is the logical action decoded from one key event.
type Intent uint8

const (
	IntentNone Intent = iota
	IntentMoveUp
	IntentMoveDown
	IntentServe
	IntentRelease
)

func (i Intent) String() string {
	switch i {
	case IntentMoveUp:
		return "move-up"
	case IntentMoveDown:
		return "move-down"
	case IntentServe:
		return "serve"
	case IntentRelease:
		return "release"
	default:
		return "none"
	}
}

// Echo receives key events that carry no match intent.
type Echo interface {
	EchoRune(r rune)
	EchoKey(code hal.KeyCode)
}

// Classify maps a key event to an intent. Release events never carry one.
func Classify(ev hal.KeyEvent) Intent {
	if !ev.Press {
		return IntentNone
	}
	if ev.Rune != 0 {
		switch ev.Rune {
		case 'w':
			return IntentMoveUp
		case 's':
			return IntentMoveDown
		case ' ':
			return IntentServe
		case 'q':
			return IntentRelease
		}
		return IntentNone
	}
	switch ev.Code {
	case hal.KeyW:
		return IntentMoveUp
	case hal.KeyS:
		return IntentMoveDown
	}
	return IntentNone
}

// Router is the keyboard interrupt handler. It holds no state of its own;
// every intent is applied straight to the Store.
type Router struct {
	store   *Store
	painter Painter
	echo    Echo
	log     hal.Logger
}

// NewRouter returns a router applying intents to store. painter, echo and
// log may be nil.
func NewRouter(store *Store, painter Painter, echo Echo, log hal.Logger) *Router {
	return &Router{store: store, painter: painter, echo: echo, log: log}
}

// Handle applies one key event and returns the intent it carried.
func (r *Router) Handle(ev hal.KeyEvent) Intent {
	if !ev.Press {
		return IntentNone
	}
	r.logf("input: key %s", describeKey(ev))

	intent := Classify(ev)
	switch intent {
	case IntentMoveUp:
		r.store.MoveUp.Store(true)
		r.store.Idle.Store(0)
		r.logf("input: W key pressed")
	case IntentMoveDown:
		r.store.MoveDown.Store(true)
		r.store.Idle.Store(0)
		r.logf("input: S key pressed")
	case IntentServe:
		r.store.Reset()
		r.store.MoveUp.Store(false)
		r.store.MoveDown.Store(false)
		r.logf("input: serve, match %s started", xid.New())
		if r.painter != nil {
			r.painter.PaintFrame(r.store.Snapshot())
		}
	case IntentRelease:
		r.store.MoveUp.Store(false)
		r.store.MoveDown.Store(false)
		r.logf("input: keys released with Q")
	default:
		r.passThrough(ev)
	}
	return intent
}

func (r *Router) passThrough(ev hal.KeyEvent) {
	if r.echo == nil {
		return
	}
	if ev.Rune != 0 {
		r.echo.EchoRune(ev.Rune)
		return
	}
	r.echo.EchoKey(ev.Code)
}

func (r *Router) logf(format string, args ...any) {
	if r.log == nil {
		return
	}
	r.log.WriteLineString(fmt.Sprintf(format, args...))
}

func describeKey(ev hal.KeyEvent) string {
	if ev.Rune != 0 {
		return fmt.Sprintf("rune %q", ev.Rune)
	}
	return "raw " + ev.Code.String()
}
