package terminal

import (
	"bufio"
	"strconv"

	"github.com/omarnabikhan/caret"
)

// xterm control sequences. Colors use the 256-color form even for the 8 base colors.
var (
	csi = []byte("\x1b[")

	csiClear      = []byte("\x1b[2J")
	csiCursorHide = []byte("\x1b[?25l")
	csiCursorShow = []byte("\x1b[?25h")

	csiFg256     = []byte("\x1b[38;5;") // followed by Nm
	csiBg256     = []byte("\x1b[48;5;") // followed by Nm
	csiDefaultFg = []byte("\x1b[39m")
	csiDefaultBg = []byte("\x1b[49m")

	restoreTrailer = []byte("\x1b[39m\x1b[49m\x1b[?25h")
)

// writeCursorPos writes the cursor positioning sequence for 1-based x, y. Rows come first on the
// wire.
func writeCursorPos(w *bufio.Writer, x, y int) {
	w.Write(csi)
	writeInt(w, y)
	w.WriteByte(';')
	writeInt(w, x)
	w.WriteByte('H')
}

func writeColor(w *bufio.Writer, prefix []byte, c caret.Color) {
	w.Write(prefix)
	writeInt(w, int(c))
	w.WriteByte('m')
}

func writeInt(w *bufio.Writer, n int) {
	var buf [20]byte
	w.Write(strconv.AppendInt(buf[:0], int64(n), 10))
}
