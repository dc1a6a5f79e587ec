//go:build tinygo && baremetal

package hal

// stubFramebuffer reports geometry but has no backing store; drawing is a
// no-op until a panel driver is attached.
type stubFramebuffer struct {
	w      int
	h      int
	format PixelFormat
}

func (f *stubFramebuffer) Width() int             { return f.w }
func (f *stubFramebuffer) Height() int            { return f.h }
func (f *stubFramebuffer) Format() PixelFormat    { return f.format }
func (f *stubFramebuffer) StrideBytes() int       { return f.w * 2 }
func (f *stubFramebuffer) Buffer() []byte         { return nil }
func (f *stubFramebuffer) ClearRGB(_, _, _ uint8) {}
func (f *stubFramebuffer) Present() error         { return ErrNotImplemented }

// stubKeyboard never raises a keyboard interrupt.
type stubKeyboard struct{}

func (k *stubKeyboard) Events() <-chan KeyEvent { return nil }
