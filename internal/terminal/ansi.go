package terminal

import (
	"bufio"
	"io"
	"sync"

	"github.com/pkg/term"

	"github.com/omarnabikhan/caret"
)

// ANSI drives an xterm-compatible terminal with raw escape sequences. Input bytes are decoded into
// keys by a Decoder.
type ANSI struct {
	raw  io.Writer
	out  *bufio.Writer
	keys *Decoder

	release    func() error
	restore    sync.Once
	restoreErr error
}

var _ caret.Surface = (*ANSI)(nil)

// NewANSI wraps an already raw stream pair. release is called once by Restore; it may be nil.
func NewANSI(in io.Reader, out io.Writer, release func() error) *ANSI {
	return &ANSI{
		raw:     out,
		out:     bufio.NewWriterSize(out, 4096),
		keys:    NewDecoder(in),
		release: release,
	}
}

// OpenANSI opens the tty device at path and puts it into raw mode. The previous mode is captured
// by term.Open and put back by Restore.
func OpenANSI(path string) (*ANSI, error) {
	t, err := term.Open(path, term.RawMode)
	if err != nil {
		return nil, &caret.IOError{Op: "open", Err: err}
	}
	return NewANSI(t, t, func() error {
		err := t.Restore()
		if cerr := t.Close(); err == nil {
			err = cerr
		}
		return err
	}), nil
}

func (a *ANSI) ReadKey() (caret.Key, error) {
	key, err := a.keys.ReadKey()
	if err != nil {
		return caret.Key{}, &caret.IOError{Op: "read", Err: err}
	}
	return key, nil
}

func (a *ANSI) Clear()        { a.out.Write(csiClear) }
func (a *ANSI) Goto(x, y int) { writeCursorPos(a.out, x, y) }
func (a *ANSI) HideCursor()   { a.out.Write(csiCursorHide) }
func (a *ANSI) ShowCursor()   { a.out.Write(csiCursorShow) }

func (a *ANSI) SetBackground(c caret.Color) { writeColor(a.out, csiBg256, c) }
func (a *ANSI) ResetBackground()            { a.out.Write(csiDefaultBg) }
func (a *ANSI) SetForeground(c caret.Color) { writeColor(a.out, csiFg256, c) }
func (a *ANSI) ResetForeground()            { a.out.Write(csiDefaultFg) }

func (a *ANSI) WriteString(s string) { a.out.WriteString(s) }

func (a *ANSI) Flush() error {
	if err := a.out.Flush(); err != nil {
		return &caret.IOError{Op: "write", Err: err}
	}
	return nil
}

// Restore resets colors, shows the cursor and releases the device. Only the first call does
// anything; later calls return the first result.
//
// The trailer goes straight to the device, skipping the buffer, so Restore doesn't touch state
// owned by the goroutine running the editor. Anything still buffered is dropped.
func (a *ANSI) Restore() error {
	a.restore.Do(func() {
		// Best effort: the output may be what failed in the first place.
		a.raw.Write(restoreTrailer)

		if a.release != nil {
			a.restoreErr = a.release()
		}
	})
	return a.restoreErr
}
