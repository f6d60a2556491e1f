package terminal

import (
	"fmt"
	"io"
	"strings"

	"github.com/omarnabikhan/caret"
)

// Recorder is an in-memory Surface. It replays a fixed list of keys and records every drawing call
// as a short op string, e.g. "goto(6,4)" or "write(\"a\")".
type Recorder struct {
	keys []caret.Key
	// ReadErr is returned once the keys run out. Defaults to io.EOF.
	ReadErr error
	// FlushErr, when set, is returned by every Flush.
	FlushErr error

	Ops      []string
	Flushes  int
	Restores int

	written strings.Builder
}

var _ caret.Surface = (*Recorder)(nil)

func NewRecorder(keys ...caret.Key) *Recorder {
	return &Recorder{keys: keys, ReadErr: io.EOF}
}

func (r *Recorder) ReadKey() (caret.Key, error) {
	if len(r.keys) == 0 {
		return caret.Key{}, &caret.IOError{Op: "read", Err: r.ReadErr}
	}
	k := r.keys[0]
	r.keys = r.keys[1:]
	return k, nil
}

func (r *Recorder) record(format string, args ...any) {
	r.Ops = append(r.Ops, fmt.Sprintf(format, args...))
}

func (r *Recorder) Clear()                      { r.record("clear") }
func (r *Recorder) Goto(x, y int)               { r.record("goto(%d,%d)", x, y) }
func (r *Recorder) HideCursor()                 { r.record("hide") }
func (r *Recorder) ShowCursor()                 { r.record("show") }
func (r *Recorder) SetBackground(c caret.Color) { r.record("bg(%d)", c) }
func (r *Recorder) ResetBackground()            { r.record("bg(reset)") }
func (r *Recorder) SetForeground(c caret.Color) { r.record("fg(%d)", c) }
func (r *Recorder) ResetForeground()            { r.record("fg(reset)") }

func (r *Recorder) WriteString(s string) {
	r.record("write(%q)", s)
	r.written.WriteString(s)
}

func (r *Recorder) Flush() error {
	r.record("flush")
	r.Flushes++
	if r.FlushErr != nil {
		return &caret.IOError{Op: "write", Err: r.FlushErr}
	}
	return nil
}

func (r *Recorder) Restore() error {
	r.Restores++
	return nil
}

// Since returns the ops recorded after the first n.
func (r *Recorder) Since(n int) []string {
	return r.Ops[n:]
}

// Written concatenates the text of every write op, in order.
func (r *Recorder) Written() string {
	return r.written.String()
}
