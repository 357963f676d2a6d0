package emulator

// KeyCount is the number of keys of the hexadecimal CHIP-8 keypad.
const KeyCount = 16

// Keypad reports the state of the 16 key hexadecimal keypad.
type Keypad interface {
	// IsPressed returns whether the key 0x0-0xF is held down.
	IsPressed(key uint8) bool
	// PressedKey returns the lowest key that is held down.
	PressedKey() (uint8, bool)
}

// Compile-time check to ensure KeyState implements Keypad.
var _ Keypad = (*KeyState)(nil)

// KeyState is a Keypad backed by an array of key states, set by the
// program driving the emulator. The zero value has no key pressed.
type KeyState struct {
	keys [KeyCount]bool
}

// Press marks the key as held down.
func (k *KeyState) Press(key uint8) {
	k.keys[key&0xF] = true
}

// Release marks the key as released.
func (k *KeyState) Release(key uint8) {
	k.keys[key&0xF] = false
}

// IsPressed returns whether the key is held down.
func (k *KeyState) IsPressed(key uint8) bool {
	return k.keys[key&0xF]
}

// PressedKey returns the lowest key that is held down.
func (k *KeyState) PressedKey() (uint8, bool) {
	for key, pressed := range k.keys {
		if pressed {
			return uint8(key), true
		}
	}
	return 0, false
}
