package terminal

import (
	"fmt"

	"github.com/omarnabikhan/caret"
)

const (
	BackendANSI   = "ansi"
	BackendTcell  = "tcell"
	BackendCurses = "curses"
)

// Options selects and configures a backend.
type Options struct {
	Backend string
	// TTY is the device the ANSI backend opens.
	TTY string
}

type opener func(Options) (caret.Surface, error)

// openers holds the backends compiled into this binary. curses registers itself when built with
// the curses tag.
var openers = map[string]opener{
	BackendANSI:  func(o Options) (caret.Surface, error) { return OpenANSI(o.TTY) },
	BackendTcell: func(Options) (caret.Surface, error) { return OpenTcell() },
}

// Available reports whether the named backend was compiled in.
func Available(backend string) bool {
	_, ok := openers[backend]
	return ok
}

// Open puts the terminal into raw mode through the selected backend. The caller owns the returned
// Surface and must Restore it.
func Open(o Options) (caret.Surface, error) {
	open, ok := openers[o.Backend]
	if !ok {
		if o.Backend == BackendCurses {
			return nil, fmt.Errorf("backend %q is not compiled in (build with -tags curses)", o.Backend)
		}
		return nil, fmt.Errorf("unknown backend %q", o.Backend)
	}
	return open(o)
}
