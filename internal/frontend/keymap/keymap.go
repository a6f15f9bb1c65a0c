// Package keymap maps the keys of a modern keyboard to the hexadecimal keypad.
//
// The left side of a QWERTY keyboard is used in the shape of the keypad:
//
//	1 2 3 4        1 2 3 C
//	Q W E R   ->   4 5 6 D
//	A S D F        7 8 9 E
//	Z X C V        A 0 B F
package keymap

import "unicode"

// layout contains the keyboard character for each keypad key.
const layout = "x123qweasdzc4rfv"

// Key returns the keypad key for a keyboard character.
func Key(r rune) (byte, bool) {
	r = unicode.ToLower(r)
	for key, c := range layout {
		if c == r {
			return byte(key), true
		}
	}
	return 0, false
}

// Rune returns the keyboard character of a keypad key.
func Rune(key byte) rune {
	return rune(layout[key&0x0F])
}
