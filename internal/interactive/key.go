package interactive

// Key is one decoded keypress event. Anything the selector does not
// react to decodes as KeyOther and leaves its state unchanged.
type Key int

const (
	KeyOther Key = iota
	KeyUp
	KeyDown
	KeyEnter
	KeyQuit
)

// decodeKey maps a raw byte sequence read in raw mode to a Key. Arrow
// keys arrive as CSI or SS3 sequences; a bare escape cancels.
func decodeKey(buf []byte) Key {
	if len(buf) == 0 {
		return KeyOther
	}

	if len(buf) >= 3 && buf[0] == 0x1b && (buf[1] == '[' || buf[1] == 'O') {
		switch buf[2] {
		case 'A':
			return KeyUp
		case 'B':
			return KeyDown
		}
		return KeyOther
	}

	switch buf[0] {
	case '\r', '\n':
		return KeyEnter
	case 'q', 'Q', 0x03, 0x1b:
		return KeyQuit
	case 'k':
		return KeyUp
	case 'j':
		return KeyDown
	}
	return KeyOther
}
