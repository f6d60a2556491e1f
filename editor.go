package caret

// Editor - Owns the cursor and the status line for one terminal session. Keys read from the Surface
// are passed to Handle one at a time; each one moves the cursor or echoes a glyph, and the result is
// written back to the Surface before the next key is read.
type Editor interface {
	// Handle applies a single key. It returns an error only if the terminal could not be written.
	Handle(key Key) error
	// Run blocks reading keys until the interrupt key is pressed or the terminal fails.
	Run() error
}
