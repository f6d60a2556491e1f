//go:build curses

package terminal

import (
	"fmt"
	"sync"

	gc "github.com/gbin/goncurses"

	"github.com/omarnabikhan/caret"
)

func init() {
	openers[BackendCurses] = func(Options) (caret.Surface, error) { return OpenCurses() }
}

// Default colors, see use_default_colors(3).
const cursesDefaultColor int16 = -1

// Curses draws through ncurses. Colors are combined into pairs lazily as fg/bg combinations show up.
type Curses struct {
	window *gc.Window

	fg, bg   int16
	pairs    map[[2]int16]int16
	nextPair int16
	pending  []byte
	restore  sync.Once
}

var _ caret.Surface = (*Curses)(nil)

func OpenCurses() (*Curses, error) {
	window, err := gc.Init()
	if err != nil {
		return nil, &caret.IOError{Op: "open", Err: err}
	}
	gc.Echo(false)
	gc.Raw(true)
	if err := window.Keypad(true); err != nil {
		gc.End()
		return nil, &caret.IOError{Op: "open", Err: err}
	}
	if err := gc.StartColor(); err != nil {
		gc.End()
		return nil, &caret.IOError{Op: "open", Err: err}
	}
	gc.UseDefaultColors()

	return &Curses{
		window:   window,
		fg:       cursesDefaultColor,
		bg:       cursesDefaultColor,
		pairs:    map[[2]int16]int16{},
		nextPair: 1,
	}, nil
}

// ReadKey maps the curses KEY_* codes itself and runs plain bytes through the same decoding the
// ANSI surface uses, so multi-byte runes come out whole.
func (c *Curses) ReadKey() (caret.Key, error) {
	for {
		k := c.window.GetChar()
		switch {
		case k < 0:
			return caret.Key{}, &caret.IOError{Op: "read", Err: fmt.Errorf("wgetch returned %d", k)}
		case k > 0xff:
			c.pending = c.pending[:0]
			return cursesKey(k), nil
		}

		c.pending = append(c.pending, byte(k))
		if key, n, ok := decodeKey(c.pending); ok {
			c.pending = c.pending[:copy(c.pending, c.pending[n:])]
			return key, nil
		}
	}
}

func cursesKey(k gc.Key) caret.Key {
	switch k {
	case gc.KEY_LEFT:
		return caret.Key{Type: caret.KeyLeft}
	case gc.KEY_RIGHT:
		return caret.Key{Type: caret.KeyRight}
	case gc.KEY_UP:
		return caret.Key{Type: caret.KeyUp}
	case gc.KEY_DOWN:
		return caret.Key{Type: caret.KeyDown}
	case gc.KEY_HOME:
		return caret.Key{Type: caret.KeyHome}
	case gc.KEY_END:
		return caret.Key{Type: caret.KeyEnd}
	case gc.KEY_ENTER:
		return caret.Rune('\n')
	}
	return otherKey
}

func (c *Curses) Clear()        { c.window.Erase() }
func (c *Curses) Goto(x, y int) { c.window.Move(y-1, x-1) }
func (c *Curses) HideCursor()   { gc.Cursor(0) }
func (c *Curses) ShowCursor()   { gc.Cursor(1) }

func (c *Curses) SetBackground(col caret.Color) { c.bg = int16(col) }
func (c *Curses) ResetBackground()              { c.bg = cursesDefaultColor }
func (c *Curses) SetForeground(col caret.Color) { c.fg = int16(col) }
func (c *Curses) ResetForeground()              { c.fg = cursesDefaultColor }

func (c *Curses) WriteString(s string) {
	pair := c.pair()
	if pair != 0 {
		c.window.ColorOn(pair)
		defer c.window.ColorOff(pair)
	}
	c.window.Print(s)
}

// pair returns the color pair for the current fg/bg, allocating one on first use. Pair 0 is the
// terminal default.
func (c *Curses) pair() int16 {
	if c.fg == cursesDefaultColor && c.bg == cursesDefaultColor {
		return 0
	}
	key := [2]int16{c.fg, c.bg}
	if p, ok := c.pairs[key]; ok {
		return p
	}
	p := c.nextPair
	if err := gc.InitPair(p, c.fg, c.bg); err != nil {
		return 0
	}
	c.pairs[key] = p
	c.nextPair++
	return p
}

func (c *Curses) Flush() error {
	c.window.NoutRefresh()
	if err := gc.Update(); err != nil {
		return &caret.IOError{Op: "write", Err: err}
	}
	return nil
}

func (c *Curses) Restore() error {
	c.restore.Do(gc.End)
	return nil
}
