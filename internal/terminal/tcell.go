package terminal

import (
	"io"
	"sync"

	"github.com/gdamore/tcell/v2"
	"github.com/mattn/go-runewidth"

	"github.com/omarnabikhan/caret"
)

// Tcell draws through a tcell screen. tcell has no notion of a write position, so the surface keeps
// its own pen: Goto moves it and WriteString advances it by the display width of each rune.
type Tcell struct {
	screen tcell.Screen

	// 0-based pen position.
	x, y          int
	style         tcell.Style
	cursorVisible bool

	restore sync.Once
}

var _ caret.Surface = (*Tcell)(nil)

// OpenTcell creates and initialises a screen for the controlling terminal. Init puts the terminal
// into raw mode.
func OpenTcell() (*Tcell, error) {
	screen, err := tcell.NewScreen()
	if err != nil {
		return nil, &caret.IOError{Op: "open", Err: err}
	}
	if err := screen.Init(); err != nil {
		return nil, &caret.IOError{Op: "open", Err: err}
	}
	return NewTcell(screen), nil
}

// NewTcell wraps a screen that has already been initialised.
func NewTcell(screen tcell.Screen) *Tcell {
	return &Tcell{screen: screen, style: tcell.StyleDefault, cursorVisible: true}
}

// ReadKey waits for the next key event. Resize and mouse events are dropped. Once the screen has
// been finalised there are no more events and io.EOF is returned.
func (t *Tcell) ReadKey() (caret.Key, error) {
	for {
		switch ev := t.screen.PollEvent().(type) {
		case nil:
			return caret.Key{}, &caret.IOError{Op: "read", Err: io.EOF}
		case *tcell.EventKey:
			return keyFromTcell(ev), nil
		}
	}
}

func keyFromTcell(ev *tcell.EventKey) caret.Key {
	switch k := ev.Key(); {
	case k == tcell.KeyRune:
		if ev.Modifiers()&tcell.ModAlt != 0 {
			return otherKey
		}
		return caret.Rune(ev.Rune())
	case k == tcell.KeyEnter || k == tcell.KeyCtrlJ:
		return caret.Rune('\n')
	case k == tcell.KeyTab:
		return caret.Rune('\t')
	case k == tcell.KeyLeft:
		return caret.Key{Type: caret.KeyLeft}
	case k == tcell.KeyRight:
		return caret.Key{Type: caret.KeyRight}
	case k == tcell.KeyUp:
		return caret.Key{Type: caret.KeyUp}
	case k == tcell.KeyDown:
		return caret.Key{Type: caret.KeyDown}
	case k == tcell.KeyHome:
		return caret.Key{Type: caret.KeyHome}
	case k == tcell.KeyEnd:
		return caret.Key{Type: caret.KeyEnd}
	case k >= tcell.KeyCtrlA && k <= tcell.KeyCtrlZ:
		return caret.Ctrl(rune(k-tcell.KeyCtrlA) + 'a')
	}
	return otherKey
}

// Clear empties the screen. Like the ANSI surface it leaves the pen where it was.
func (t *Tcell) Clear() {
	t.screen.Clear()
}

func (t *Tcell) Goto(x, y int) {
	t.x, t.y = x-1, y-1
	if t.cursorVisible {
		t.screen.ShowCursor(t.x, t.y)
	}
}

func (t *Tcell) HideCursor() {
	t.cursorVisible = false
	t.screen.HideCursor()
}

func (t *Tcell) ShowCursor() {
	t.cursorVisible = true
	t.screen.ShowCursor(t.x, t.y)
}

func (t *Tcell) SetBackground(c caret.Color) {
	t.style = t.style.Background(tcell.PaletteColor(int(c)))
}

func (t *Tcell) ResetBackground() {
	t.style = t.style.Background(tcell.ColorReset)
}

func (t *Tcell) SetForeground(c caret.Color) {
	t.style = t.style.Foreground(tcell.PaletteColor(int(c)))
}

func (t *Tcell) ResetForeground() {
	t.style = t.style.Foreground(tcell.ColorReset)
}

func (t *Tcell) WriteString(s string) {
	for _, r := range s {
		t.screen.SetContent(t.x, t.y, r, nil, t.style)
		t.x += max(runewidth.RuneWidth(r), 1)
	}
}

// Flush never fails: tcell swallows output errors.
func (t *Tcell) Flush() error {
	t.screen.Show()
	return nil
}

func (t *Tcell) Restore() error {
	t.restore.Do(t.screen.Fini)
	return nil
}
