package terminal

import (
	"io"
	"unicode/utf8"

	"github.com/omarnabikhan/caret"
)

const (
	keyESC = 0x1b
	keyDEL = 0x7f

	// A CSI longer than this without a final byte is treated as garbage.
	maxCSILen = 32
)

var otherKey = caret.Key{Type: caret.KeyOther}

// Decoder turns the raw byte stream of a terminal in raw mode into keys.
//
// A lone ESC is only reported as the escape key when it is the last byte of a read. Terminals send
// a whole escape sequence in one write, so an ESC followed by more bytes in the same read starts a
// sequence. A sequence cut short by the end of a read is completed by further reads.
type Decoder struct {
	r   io.Reader
	buf []byte // undecoded bytes; always ends where the last read ended
	in  [256]byte
}

func NewDecoder(r io.Reader) *Decoder {
	return &Decoder{r: r, buf: make([]byte, 0, 256)}
}

// ReadKey blocks until a full key has been read. A read error is returned as-is once the bytes
// already buffered have been decoded.
func (d *Decoder) ReadKey() (caret.Key, error) {
	for {
		if len(d.buf) > 0 {
			if key, n, ok := decodeKey(d.buf); ok {
				d.consume(n)
				return key, nil
			}
		}

		n, err := d.r.Read(d.in[:])
		if n > 0 {
			d.buf = append(d.buf, d.in[:n]...)
			continue
		}
		if err != nil {
			return caret.Key{}, err
		}
	}
}

func (d *Decoder) consume(n int) {
	rest := copy(d.buf, d.buf[n:])
	d.buf = d.buf[:rest]
}

// decodeKey decodes the first key in data. ok is false when data ends in the middle of a key.
func decodeKey(data []byte) (key caret.Key, n int, ok bool) {
	b := data[0]
	switch {
	case b == keyESC:
		return decodeEscape(data)
	case b == '\r' || b == '\n':
		return caret.Rune('\n'), 1, true
	case b == '\t':
		return caret.Rune('\t'), 1, true
	case b == keyDEL || b == 0 || (b >= 0x1c && b <= 0x1f):
		return otherKey, 1, true
	case b >= 0x01 && b <= 0x1a:
		return caret.Ctrl(rune(b-0x01) + 'a'), 1, true
	case b < utf8.RuneSelf:
		return caret.Rune(rune(b)), 1, true
	}

	if !utf8.FullRune(data) {
		return caret.Key{}, 0, false
	}
	r, size := utf8.DecodeRune(data)
	if r == utf8.RuneError && size <= 1 {
		return otherKey, 1, true
	}
	return caret.Rune(r), size, true
}

func decodeEscape(data []byte) (caret.Key, int, bool) {
	if len(data) == 1 {
		// Nothing followed in the same read: the escape key itself.
		return otherKey, 1, true
	}

	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		return decodeSS3(data)
	}

	// ESC ESC: the first one is the escape key, the second may start a sequence.
	if data[1] == keyESC {
		return otherKey, 1, true
	}
	// Alt+key. Swallow the whole following key so it isn't echoed on its own.
	_, n, ok := decodeKey(data[1:])
	if !ok {
		return caret.Key{}, 0, false
	}
	return otherKey, 1 + n, true
}

// decodeCSI decodes ESC [ params final.
func decodeCSI(data []byte) (caret.Key, int, bool) {
	for i := 2; i < len(data); i++ {
		b := data[i]
		switch {
		case b >= 0x40 && b <= 0x7e:
			return csiKey(data[2:i], b), i + 1, true
		case b < 0x20 || b > 0x7e:
			// Not a CSI after all; drop what we have so far.
			return otherKey, i, true
		case i+1 >= maxCSILen:
			return otherKey, i + 1, true
		}
	}
	return caret.Key{}, 0, false
}

func csiKey(params []byte, final byte) caret.Key {
	switch final {
	case 'A', 'B', 'C', 'D', 'H', 'F':
		// Modified variants (ESC [ 1 ; 5 C and the like) have no meaning here.
		if len(params) == 0 || string(params) == "1" {
			return letterKey(final)
		}
	case '~':
		switch string(params) {
		case "1", "7":
			return caret.Key{Type: caret.KeyHome}
		case "4", "8":
			return caret.Key{Type: caret.KeyEnd}
		}
	}
	return otherKey
}

// decodeSS3 decodes ESC O final, sent by terminals in application cursor mode.
func decodeSS3(data []byte) (caret.Key, int, bool) {
	if len(data) < 3 {
		return caret.Key{}, 0, false
	}
	return letterKey(data[2]), 3, true
}

func letterKey(final byte) caret.Key {
	switch final {
	case 'A':
		return caret.Key{Type: caret.KeyUp}
	case 'B':
		return caret.Key{Type: caret.KeyDown}
	case 'C':
		return caret.Key{Type: caret.KeyRight}
	case 'D':
		return caret.Key{Type: caret.KeyLeft}
	case 'H':
		return caret.Key{Type: caret.KeyHome}
	case 'F':
		return caret.Key{Type: caret.KeyEnd}
	}
	return otherKey
}
