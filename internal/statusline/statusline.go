// Package statusline paints the reserved bottom row that shows where the cursor is.
package statusline

import (
	"fmt"
	"strings"

	"github.com/omarnabikhan/caret"
	"github.com/omarnabikhan/caret/internal/cursor"
)

const (
	Background = caret.ColorYellow
	Foreground = caret.ColorBlack
)

// Renderer draws the status line onto a Surface. It never flushes; the caller batches one flush
// per key.
type Renderer struct {
	surface caret.Surface
}

func New(surface caret.Surface) *Renderer {
	return &Renderer{surface: surface}
}

// Text formats the position as shown in the status line, e.g. "(  6,  4)".
func Text(c cursor.Coordinate) string {
	return fmt.Sprintf("(%3d,%3d)", c.X, c.Y)
}

// Initialize paints the empty bar across the whole bottom row, then puts the hardware cursor back
// at current.
func (r *Renderer) Initialize(current, max cursor.Coordinate) {
	r.surface.HideCursor()
	r.surface.Goto(1, max.Y)
	r.surface.SetBackground(Background)
	r.surface.WriteString(strings.Repeat(" ", max.X))
	r.surface.ResetBackground()
	r.surface.Goto(current.X, current.Y)
	r.surface.ShowCursor()
}

// Refresh writes the coordinates at the start of the bar. The text is fixed width, so it always
// overwrites the previous one completely.
func (r *Renderer) Refresh(current, max cursor.Coordinate) {
	// Hidden while we are on the bottom row so it doesn't flicker there.
	r.surface.HideCursor()
	r.surface.Goto(1, max.Y)
	r.surface.SetBackground(Background)
	r.surface.SetForeground(Foreground)
	r.surface.WriteString(Text(current))
	r.surface.ResetForeground()
	r.surface.ResetBackground()
	r.surface.Goto(current.X, current.Y)
	r.surface.ShowCursor()
}
