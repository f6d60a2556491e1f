// Package editor runs the key loop: every key moves the cursor and/or echoes a glyph, then the
// status line is repainted and the output flushed once.
package editor

import (
	"errors"
	"log/slog"
	"unicode"

	"github.com/mattn/go-runewidth"

	"github.com/omarnabikhan/caret"
	"github.com/omarnabikhan/caret/internal/cursor"
	"github.com/omarnabikhan/caret/internal/statusline"
)

type State string

const (
	RUNNING    State = "RUNNING"
	TERMINATED State = "TERMINATED"

	// Shown where a newline was typed (U+23CE RETURN SYMBOL).
	RETURN_SYMBOL = "⏎"
	// Shown for keys that have no character of their own.
	PLACEHOLDER = "*"
)

func NewEditor(surface caret.Surface, size cursor.Coordinate, logger *slog.Logger) caret.Editor {
	return newEditorImpl(surface, size, logger)
}

func newEditorImpl(surface caret.Surface, size cursor.Coordinate, logger *slog.Logger) *editorImpl {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &editorImpl{
		surface:    surface,
		cursor:     cursor.New(size),
		statusLine: statusline.New(surface),
		state:      RUNNING,
		logger:     logger,
	}
}

type editorImpl struct {
	surface    caret.Surface
	cursor     *cursor.Cursor
	statusLine *statusline.Renderer

	state  State
	logger *slog.Logger
}

var _ caret.Editor = (*editorImpl)(nil)

func (e *editorImpl) Run() error {
	if err := e.preprocess(); err != nil {
		return err
	}
	for e.state == RUNNING {
		key, err := e.surface.ReadKey()
		if err != nil {
			return asIOError("read", err)
		}
		if err := e.Handle(key); err != nil {
			return err
		}
	}
	return e.postprocess()
}

func (e *editorImpl) Handle(key caret.Key) error {
	if e.state == TERMINATED {
		return nil
	}

	switch key.Type {
	case caret.KeyLeft:
		e.cursor.MoveLeft(1)
	case caret.KeyRight:
		e.cursor.MoveRight(1)
	case caret.KeyUp:
		e.cursor.MoveUp(1)
	case caret.KeyDown:
		e.cursor.MoveDown(1)
	case caret.KeyHome:
		e.cursor.ToLineStart()
	case caret.KeyEnd:
		e.cursor.ToLineEnd()
	case caret.KeyRune:
		e.echo(key.Rune)
	default:
		if key.IsInterrupt() {
			e.state = TERMINATED
			e.logger.Info("interrupt key pressed")
			return nil
		}
		e.echoPlaceholder()
	}
	e.gotoCursor()

	cur := e.cursor.Current()
	e.logger.Debug("handled key", "key", key.String(), "x", cur.X, "y", cur.Y)
	return e.sync()
}

// echo writes r at the cursor and steps over it. Wide runes take two cells.
func (e *editorImpl) echo(r rune) {
	switch {
	case r == '\n':
		e.surface.WriteString(RETURN_SYMBOL)
		e.cursor.ToNextLine()
	case unicode.IsPrint(r):
		e.surface.WriteString(string(r))
		e.cursor.MoveRight(max(runewidth.RuneWidth(r), 1))
	default:
		e.echoPlaceholder()
	}
}

func (e *editorImpl) echoPlaceholder() {
	e.surface.WriteString(PLACEHOLDER)
	e.cursor.MoveRight(1)
}

func (e *editorImpl) gotoCursor() {
	cur := e.cursor.Current()
	e.surface.Goto(cur.X, cur.Y)
}

// sync repaints the status line and flushes. It runs once per key, so the status line is never
// stale and each key costs one write to the terminal.
func (e *editorImpl) sync() error {
	e.statusLine.Refresh(e.cursor.Current(), e.cursor.Max())
	return asIOError("write", e.surface.Flush())
}

func (e *editorImpl) preprocess() error {
	e.clear()
	e.statusLine.Initialize(e.cursor.Current(), e.cursor.Max())
	e.logger.Info("session started", "cols", e.cursor.Max().X, "rows", e.cursor.Max().Y)
	return e.sync()
}

func (e *editorImpl) postprocess() error {
	e.clear()
	e.surface.ShowCursor()
	e.logger.Info("session ended")
	return asIOError("write", e.surface.Flush())
}

func (e *editorImpl) clear() {
	e.surface.Clear()
	e.surface.Goto(1, 1)
}

// asIOError makes sure terminal failures reach the caller as *caret.IOError.
func asIOError(op string, err error) error {
	if err == nil {
		return nil
	}
	var ioErr *caret.IOError
	if errors.As(err, &ioErr) {
		return err
	}
	return &caret.IOError{Op: op, Err: err}
}
