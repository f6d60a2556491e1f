package caret

import "fmt"

// KeyType distinguishes the keys the editor knows how to act on.
type KeyType uint8

const (
	// KeyOther is any key without a defined effect: function keys, backspace, escape, ...
	KeyOther KeyType = iota
	KeyRune
	KeyLeft
	KeyRight
	KeyUp
	KeyDown
	KeyHome
	KeyEnd
	// KeyCtrl is a Ctrl+letter chord. The lower-case letter is in Key.Rune.
	KeyCtrl
)

// InterruptLetter is the letter that, pressed with Ctrl, ends the session.
const InterruptLetter = 'q'

// Key is a single decoded key press.
type Key struct {
	Type KeyType
	Rune rune
}

// Rune returns a KeyRune for r.
func Rune(r rune) Key {
	return Key{Type: KeyRune, Rune: r}
}

// Ctrl returns the Ctrl+letter chord. Upper-case letters are folded to lower case.
func Ctrl(letter rune) Key {
	if letter >= 'A' && letter <= 'Z' {
		letter += 'a' - 'A'
	}
	return Key{Type: KeyCtrl, Rune: letter}
}

// IsInterrupt reports whether k is Ctrl+Q.
func (k Key) IsInterrupt() bool {
	return k.Type == KeyCtrl && k.Rune == InterruptLetter
}

func (k Key) String() string {
	switch k.Type {
	case KeyRune:
		return fmt.Sprintf("%q", k.Rune)
	case KeyLeft:
		return "left"
	case KeyRight:
		return "right"
	case KeyUp:
		return "up"
	case KeyDown:
		return "down"
	case KeyHome:
		return "home"
	case KeyEnd:
		return "end"
	case KeyCtrl:
		return fmt.Sprintf("ctrl+%c", k.Rune)
	default:
		return "other"
	}
}
