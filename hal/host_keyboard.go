//go:build !tinygo && cgo

package hal

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

type hostKeyboard struct {
	ch chan KeyEvent
}

func newHostKeyboard() *hostKeyboard {
	return &hostKeyboard{ch: make(chan KeyEvent, 64)}
}

func (k *hostKeyboard) Events() <-chan KeyEvent { return k.ch }

func (k *hostKeyboard) inject(ev KeyEvent) bool {
	select {
	case k.ch <- ev:
		return true
	default:
		return false
	}
}

// rawKeys are reported by code rather than as text.
var rawKeys = []struct {
	key  ebiten.Key
	code KeyCode
}{
	{ebiten.KeyArrowUp, KeyUp},
	{ebiten.KeyArrowDown, KeyDown},
	{ebiten.KeyArrowLeft, KeyLeft},
	{ebiten.KeyArrowRight, KeyRight},
	{ebiten.KeyEnter, KeyEnter},
	{ebiten.KeyEscape, KeyEscape},
	{ebiten.KeyBackspace, KeyBackspace},
	{ebiten.KeyTab, KeyTab},
}

func (k *hostKeyboard) poll() {
	emit := func(ev KeyEvent) { _ = k.inject(ev) }

	// With ctrl held no text is produced; W and S still arrive as raw codes,
	// the way a PS/2 decoder reports them.
	ctrl := ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight)
	if ctrl {
		if inpututil.IsKeyJustPressed(ebiten.KeyW) {
			emit(KeyEvent{Code: KeyW, Press: true})
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyS) {
			emit(KeyEvent{Code: KeyS, Press: true})
		}
	}

	for _, r := range ebiten.AppendInputChars(nil) {
		emit(KeyEvent{Press: true, Rune: r})
	}

	for _, rk := range rawKeys {
		if inpututil.IsKeyJustPressed(rk.key) {
			emit(KeyEvent{Code: rk.code, Press: true})
		}
		if inpututil.IsKeyJustReleased(rk.key) {
			emit(KeyEvent{Code: rk.code, Press: false})
		}
	}
}
