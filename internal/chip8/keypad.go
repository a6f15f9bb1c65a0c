package chip8

// KeyCount is the number of keys on the hexadecimal keypad.
const KeyCount = 16

// KeySetter is implemented by anything that accepts key state changes from an input device.
type KeySetter interface {
	SetKey(key byte, down bool)
}

// Keypad holds the pressed state of the 16 keys.
type Keypad [KeyCount]bool

// Pressed returns the lowest pressed key, or false if no key is down.
func (k *Keypad) Pressed() (byte, bool) {
	for key, down := range k {
		if down {
			return byte(key), true
		}
	}
	return 0, false
}
