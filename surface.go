package caret

// Color is a terminal palette index, matching the 256-color numbering.
type Color uint8

const (
	ColorBlack  Color = 0
	ColorRed    Color = 1
	ColorGreen  Color = 2
	ColorYellow Color = 3
	ColorBlue   Color = 4
	ColorWhite  Color = 7
)

// Surface - The terminal device as seen by the editor. An implementation owns the terminal in raw
// mode from the moment it is opened until Restore is called.
//
// Drawing calls are buffered. They do not report errors themselves; the first write error is kept
// and returned by Flush, the same way bufio.Writer behaves.
type Surface interface {
	// ReadKey blocks until the next key is available.
	ReadKey() (Key, error)

	// Clear erases the whole screen. It does not move the cursor.
	Clear()
	// Goto moves the hardware cursor to the 1-based column x and row y.
	Goto(x, y int)
	HideCursor()
	ShowCursor()
	SetBackground(c Color)
	ResetBackground()
	SetForeground(c Color)
	ResetForeground()
	// WriteString draws s at the current cursor position.
	WriteString(s string)

	// Flush pushes everything buffered since the last Flush to the terminal.
	Flush() error

	// Restore leaves raw mode and releases the device. It is safe to call more than once, and from
	// a different goroutine than the one running the editor.
	Restore() error
}
