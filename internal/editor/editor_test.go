package editor

import (
	"errors"
	"fmt"
	"io"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/omarnabikhan/caret"
	"github.com/omarnabikhan/caret/internal/cursor"
	"github.com/omarnabikhan/caret/internal/terminal"
)

var (
	size = cursor.Coordinate{X: 80, Y: 24}

	left  = caret.Key{Type: caret.KeyLeft}
	right = caret.Key{Type: caret.KeyRight}
	up    = caret.Key{Type: caret.KeyUp}
	down  = caret.Key{Type: caret.KeyDown}
	home  = caret.Key{Type: caret.KeyHome}
	end   = caret.Key{Type: caret.KeyEnd}
	other = caret.Key{Type: caret.KeyOther}
	quit  = caret.Ctrl('q')
)

func repeat(k caret.Key, n int) []caret.Key {
	keys := make([]caret.Key, n)
	for i := range keys {
		keys[i] = k
	}
	return keys
}

func newTestEditor(keys ...caret.Key) (*editorImpl, *terminal.Recorder) {
	rec := terminal.NewRecorder(keys...)
	return newEditorImpl(rec, size, nil), rec
}

// placeAt moves the cursor directly, without going through the surface.
func placeAt(e *editorImpl, x, y int) {
	e.cursor.ToLineStart().MoveRight(x - 1).MoveUp(size.Y).MoveDown(y - 1)
}

func TestRunStartsWithClearedScreenAndStatusLine(t *testing.T) {
	e, rec := newTestEditor(quit)
	require.NoError(t, e.Run())

	want := []string{
		"clear", "goto(1,1)",
		"hide", "goto(1,24)", "bg(3)", `write("` + strings.Repeat(" ", 80) + `")`, "bg(reset)", "goto(1,1)", "show",
		"hide", "goto(1,24)", "bg(3)", "fg(0)", `write("(  1,  1)")`, "fg(reset)", "bg(reset)", "goto(1,1)", "show",
		"flush",
	}
	require.GreaterOrEqual(t, len(rec.Ops), len(want))
	assert.Equal(t, want, rec.Ops[:len(want)])
}

func TestRunRightThenDown(t *testing.T) {
	keys := append(repeat(right, 5), repeat(down, 3)...)
	e, rec := newTestEditor(append(keys, quit)...)

	require.NoError(t, e.Run())

	assert.Equal(t, cursor.Coordinate{X: 6, Y: 4}, e.cursor.Current())
	assert.Equal(t, TERMINATED, e.state)
	// Startup, one per key, shutdown.
	assert.Equal(t, 1+8+1, rec.Flushes)
}

func TestInterruptEndsWithoutRepaint(t *testing.T) {
	e, rec := newTestEditor(right, quit)
	require.NoError(t, e.Run())

	ops := rec.Ops
	require.GreaterOrEqual(t, len(ops), 5)
	assert.Equal(t, []string{"flush", "clear", "goto(1,1)", "show", "flush"}, ops[len(ops)-5:])
	assert.Equal(t, 3, rec.Flushes)
}

func TestRunStopsAtInterruptAndIgnoresRemainingKeys(t *testing.T) {
	e, _ := newTestEditor(right, quit, right, right)
	require.NoError(t, e.Run())

	assert.Equal(t, cursor.Coordinate{X: 2, Y: 1}, e.cursor.Current())
}

func TestHandleIsNoOpOnceTerminated(t *testing.T) {
	e, rec := newTestEditor()
	require.NoError(t, e.Handle(quit))
	n := len(rec.Ops)

	require.NoError(t, e.Handle(right))

	assert.Empty(t, rec.Since(n))
	assert.Equal(t, cursor.Origin, e.cursor.Current())
}

func TestHandleRuneOps(t *testing.T) {
	e, rec := newTestEditor()

	require.NoError(t, e.Handle(caret.Rune('a')))

	assert.Equal(t, []string{
		`write("a")`, "goto(2,1)",
		"hide", "goto(1,24)", "bg(3)", "fg(0)", `write("(  2,  1)")`, "fg(reset)", "bg(reset)", "goto(2,1)", "show",
		"flush",
	}, rec.Ops)
}

func TestHandleArrowsMoveAndReposition(t *testing.T) {
	e, rec := newTestEditor()

	for _, k := range []caret.Key{down, down, right, up, left, left} {
		require.NoError(t, e.Handle(k))
	}

	assert.Equal(t, cursor.Coordinate{X: 1, Y: 2}, e.cursor.Current())
	assert.Equal(t, 6, rec.Flushes)
	assert.NotContains(t, rec.Ops, `write("*")`)
}

func TestHandleRightAtEdgeClamps(t *testing.T) {
	e, _ := newTestEditor()
	placeAt(e, 80, 1)

	require.NoError(t, e.Handle(right))
	assert.Equal(t, cursor.Coordinate{X: 80, Y: 1}, e.cursor.Current())

	require.NoError(t, e.Handle(caret.Rune('x')))
	assert.Equal(t, cursor.Coordinate{X: 80, Y: 1}, e.cursor.Current())
}

func TestHandleDownNeverReachesStatusRow(t *testing.T) {
	e, _ := newTestEditor()
	placeAt(e, 1, 23)

	require.NoError(t, e.Handle(down))
	assert.Equal(t, cursor.Coordinate{X: 1, Y: 23}, e.cursor.Current())

	require.NoError(t, e.Handle(caret.Rune('\n')))
	assert.Equal(t, cursor.Coordinate{X: 1, Y: 23}, e.cursor.Current())
}

func TestHandleNewlineWritesReturnSymbol(t *testing.T) {
	e, rec := newTestEditor()
	placeAt(e, 10, 3)

	require.NoError(t, e.Handle(caret.Rune('\n')))

	assert.Equal(t, fmt.Sprintf("write(%q)", RETURN_SYMBOL), rec.Ops[0])
	assert.Equal(t, "goto(1,4)", rec.Ops[1])
	assert.Equal(t, cursor.Coordinate{X: 1, Y: 4}, e.cursor.Current())
}

func TestHandleHomeAndEnd(t *testing.T) {
	e, _ := newTestEditor()
	placeAt(e, 10, 3)

	require.NoError(t, e.Handle(end))
	assert.Equal(t, cursor.Coordinate{X: 80, Y: 3}, e.cursor.Current())

	require.NoError(t, e.Handle(home))
	assert.Equal(t, cursor.Coordinate{X: 1, Y: 3}, e.cursor.Current())
}

func TestHandleUnmappedKeysWritePlaceholder(t *testing.T) {
	for _, k := range []caret.Key{other, caret.Ctrl('w'), caret.Rune('\t'), caret.Rune('\x00')} {
		t.Run(k.String(), func(t *testing.T) {
			e, rec := newTestEditor()

			require.NoError(t, e.Handle(k))

			assert.Equal(t, `write("*")`, rec.Ops[0])
			assert.Equal(t, cursor.Coordinate{X: 2, Y: 1}, e.cursor.Current())
		})
	}
}

func TestHandleWideRuneTakesTwoCells(t *testing.T) {
	e, rec := newTestEditor()

	require.NoError(t, e.Handle(caret.Rune('日')))
	require.NoError(t, e.Handle(caret.Rune('é')))

	assert.Equal(t, `write("日")`, rec.Ops[0])
	assert.Equal(t, "goto(3,1)", rec.Ops[1])
	assert.Contains(t, rec.Ops, `write("é")`)
	assert.Equal(t, cursor.Coordinate{X: 4, Y: 1}, e.cursor.Current())
}

func TestStatusLineFollowsEveryKey(t *testing.T) {
	keys := []caret.Key{right, right, down, caret.Rune('z')}
	e, rec := newTestEditor()

	for _, k := range keys {
		require.NoError(t, e.Handle(k))
	}

	written := rec.Written()
	for _, status := range []string{"(  2,  1)", "(  3,  1)", "(  3,  2)", "(  4,  2)"} {
		assert.Contains(t, written, status)
	}
}

func TestRunReturnsReadFailure(t *testing.T) {
	e, rec := newTestEditor(right)
	rec.ReadErr = errors.New("device gone")

	err := e.Run()

	var ioErr *caret.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.EqualError(t, ioErr.Err, "device gone")
	assert.Equal(t, 0, rec.Restores, "restoring is up to the caller")
}

func TestRunReturnsEOFAsReadFailure(t *testing.T) {
	e, _ := newTestEditor()

	err := e.Run()

	assert.ErrorIs(t, err, io.EOF)
}

func TestRunReturnsWriteFailure(t *testing.T) {
	e, rec := newTestEditor(right, quit)
	rec.FlushErr = errors.New("broken pipe")

	err := e.Run()

	var ioErr *caret.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "write", ioErr.Op)
	assert.Equal(t, 1, rec.Flushes, "nothing is read after the first failed flush")
}

type plainErrSurface struct {
	*terminal.Recorder
}

func (plainErrSurface) ReadKey() (caret.Key, error) {
	return caret.Key{}, io.ErrUnexpectedEOF
}

func TestRunWrapsPlainReadErrors(t *testing.T) {
	e := newEditorImpl(plainErrSurface{terminal.NewRecorder()}, size, nil)

	err := e.Run()

	var ioErr *caret.IOError
	require.ErrorAs(t, err, &ioErr)
	assert.Equal(t, "read", ioErr.Op)
	assert.ErrorIs(t, err, io.ErrUnexpectedEOF)
}

func TestNewEditorReturnsEditor(t *testing.T) {
	var ed caret.Editor = NewEditor(terminal.NewRecorder(quit), size, nil)
	assert.NoError(t, ed.Run())
}
