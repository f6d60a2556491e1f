package terminal

import (
	"fmt"

	"golang.org/x/sys/unix"
	"golang.org/x/term"

	"github.com/omarnabikhan/caret"
)

// QuerySize returns the size of the terminal on fd as (columns, rows). It must run before raw mode
// is entered: a failure here means there is no terminal to restore.
func QuerySize(fd int) (cols, rows int, err error) {
	if !term.IsTerminal(fd) {
		return 0, 0, &caret.QueryError{Err: caret.ErrNotTerminal}
	}
	ws, err := unix.IoctlGetWinsize(fd, unix.TIOCGWINSZ)
	if err != nil {
		return 0, 0, &caret.QueryError{Err: err}
	}
	if ws.Col == 0 || ws.Row == 0 {
		return 0, 0, &caret.QueryError{Err: fmt.Errorf("terminal reports %dx%d", ws.Col, ws.Row)}
	}
	return int(ws.Col), int(ws.Row), nil
}
