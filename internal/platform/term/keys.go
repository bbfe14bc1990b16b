package term

import (
	"time"
	"unicode/utf8"

	"github.com/vovakirdan/tui-snake/internal/core"
)

// maxCSILen bounds the scan for a CSI final byte.
const maxCSILen = 16

// escapeTimeout is how long a trailing ESC waits for the rest of a sequence
// before it counts as the esc key.
const escapeTimeout = 50 * time.Millisecond

// isLoneEsc reports whether pending holds only an undecided ESC.
func isLoneEsc(pending []byte) bool {
	return len(pending) == 1 && pending[0] == 0x1b
}

// decodeKeys parses raw terminal input into key names and returns how many
// bytes were consumed. An incomplete escape sequence or UTF-8 rune at the
// end of data is left for the next read. A lone ESC at the end of data is
// left too; the reader reports it as esc once escapeTimeout passes.
func decodeKeys(data []byte) (keys []core.Key, consumed int) {
	i := 0
	n := len(data)

	for i < n {
		b := data[i]

		switch {
		// Fast path: printable ASCII
		case b >= 0x20 && b < 0x7f:
			keys = append(keys, core.Key(string(rune(b))))
			i++

		case b == 0x1b:
			if i+1 >= n {
				return keys, i
			}
			used, k := decodeEscape(data[i:])
			if used == 0 {
				return keys, i // Wait for more data
			}
			if k != "" {
				keys = append(keys, k)
			}
			i += used

		case b == 0x03:
			keys = append(keys, core.KeyCtrlC)
			i++

		case b == '\r' || b == '\n':
			keys = append(keys, core.KeyEnter)
			i++

		case b == 0x7f:
			keys = append(keys, "backspace")
			i++

		case b >= 0x80:
			if !utf8.FullRune(data[i:]) {
				return keys, i
			}
			r, size := utf8.DecodeRune(data[i:])
			if r != utf8.RuneError {
				keys = append(keys, core.Key(string(r)))
			}
			i += size

		default:
			// Other control characters are ignored.
			i++
		}
	}
	return keys, i
}

// decodeEscape parses a sequence starting with ESC. It returns 0 when more
// bytes are needed and an empty key for sequences that are swallowed.
func decodeEscape(data []byte) (int, core.Key) {
	switch data[1] {
	case '[':
		return decodeCSI(data)
	case 'O':
		// SS3: ESC O A..D, sent by terminals in application cursor mode
		if len(data) < 3 {
			return 0, ""
		}
		return 3, arrowKey(data[2])
	case 0x1b:
		return 1, core.KeyEsc
	}

	// Alt+printable
	if data[1] >= 0x20 && data[1] < 0x7f {
		return 2, core.Key("alt+" + string(rune(data[1])))
	}
	return 1, core.KeyEsc
}

// decodeCSI parses ESC [ params final. Arrow keys keep their name whatever
// the modifier parameters are.
func decodeCSI(data []byte) (int, core.Key) {
	limit := len(data)
	if limit > maxCSILen {
		limit = maxCSILen
	}
	for end := 2; end < limit; end++ {
		b := data[end]
		if b >= 0x40 && b <= 0x7e {
			return end + 1, arrowKey(b)
		}
		if b < 0x20 || b > 0x7e {
			// Malformed: drop the ESC [ prefix.
			return 2, ""
		}
	}
	if len(data) >= maxCSILen {
		return maxCSILen, ""
	}
	return 0, ""
}

func arrowKey(final byte) core.Key {
	switch final {
	case 'A':
		return core.KeyUp
	case 'B':
		return core.KeyDown
	case 'C':
		return core.KeyRight
	case 'D':
		return core.KeyLeft
	}
	return ""
}
