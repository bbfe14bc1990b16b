package term

import (
	"reflect"
	"testing"

	"github.com/vovakirdan/tui-snake/internal/core"
)

func TestDecodeKeys(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		expected []core.Key
		consumed int
	}{
		{"letters", "wq", []core.Key{"w", "q"}, 2},
		{"arrows", "\x1b[A\x1b[B\x1b[C\x1b[D", []core.Key{core.KeyUp, core.KeyDown, core.KeyRight, core.KeyLeft}, 12},
		{"ss3 arrows", "\x1bOA\x1bOD", []core.Key{core.KeyUp, core.KeyLeft}, 6},
		{"modified arrow", "\x1b[1;5C", []core.Key{core.KeyRight}, 6},
		{"lone esc", "\x1b", nil, 0},
		{"trailing esc", "q\x1b", []core.Key{"q"}, 1},
		{"double esc", "\x1b\x1b", []core.Key{core.KeyEsc}, 1},
		{"ctrl+c", "\x03", []core.Key{core.KeyCtrlC}, 1},
		{"enter", "\r", []core.Key{core.KeyEnter}, 1},
		{"alt", "\x1bx", []core.Key{"alt+x"}, 2},
		{"function key swallowed", "\x1b[15~q", []core.Key{"q"}, 6},
		{"utf8", "é", []core.Key{"é"}, 2},
		{"incomplete csi", "w\x1b[", []core.Key{"w"}, 1},
		{"incomplete csi params", "\x1b[1;5", nil, 0},
		{"incomplete ss3", "\x1bO", nil, 0},
		{"incomplete utf8", "\xc3", nil, 0},
		{"other control ignored", "\x01a", []core.Key{"a"}, 2},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			keys, consumed := decodeKeys([]byte(tc.input))
			if !reflect.DeepEqual(keys, tc.expected) {
				t.Errorf("decodeKeys(%q) keys = %q, expected %q", tc.input, keys, tc.expected)
			}
			if consumed != tc.consumed {
				t.Errorf("decodeKeys(%q) consumed = %d, expected %d", tc.input, consumed, tc.consumed)
			}
		})
	}
}

func TestDecodeKeysAcrossReads(t *testing.T) {
	first, used := decodeKeys([]byte("a\x1b["))
	if used != 1 || len(first) != 1 {
		t.Fatalf("first read: keys %q, consumed %d", first, used)
	}

	rest := append([]byte("\x1b["), 'A')
	keys, used := decodeKeys(rest)
	if used != 3 || len(keys) != 1 || keys[0] != core.KeyUp {
		t.Errorf("second read: keys %q, consumed %d, expected [up], 3", keys, used)
	}
}
