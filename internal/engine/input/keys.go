package input

import (
	"fmt"
	"sort"
	"strings"
)

// Key is a physical key code. Values match USB HID usage IDs, which SDL uses as scancodes.
type Key uint16

// Keys used by gestures and the demo host.
const (
	KeyUnknown Key = 0

	KeyA Key = 4 + iota - 1
	KeyB
	KeyC
	KeyD
	KeyE
	KeyF
	KeyG
	KeyH
	KeyI
	KeyJ
	KeyK
	KeyL
	KeyM
	KeyN
	KeyO
	KeyP
	KeyQ
	KeyR
	KeyS
	KeyT
	KeyU
	KeyV
	KeyW
	KeyX
	KeyY
	KeyZ
	Key1
	Key2
	Key3
	Key4
	Key5
	Key6
	Key7
	Key8
	Key9
	Key0
)

const (
	KeyEscape     Key = 41
	KeySpace      Key = 44
	KeyLeftCtrl   Key = 224
	KeyLeftShift  Key = 225
	KeyLeftAlt    Key = 226
	KeyRightCtrl  Key = 228
	KeyRightShift Key = 229
	KeyRightAlt   Key = 230
)

var keyNames = map[Key]string{
	KeyEscape:     "Escape",
	KeySpace:      "Space",
	KeyLeftCtrl:   "LeftCtrl",
	KeyLeftShift:  "LeftShift",
	KeyLeftAlt:    "LeftAlt",
	KeyRightCtrl:  "RightCtrl",
	KeyRightShift: "RightShift",
	KeyRightAlt:   "RightAlt",
}

func init() {
	for k := KeyA; k <= KeyZ; k++ {
		keyNames[k] = string(rune('A' + int(k-KeyA)))
	}
	for k := Key1; k <= Key9; k++ {
		keyNames[k] = string(rune('1' + int(k-Key1)))
	}
	keyNames[Key0] = "0"
}

// String returns the key name used in configuration files.
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return fmt.Sprintf("Key(%d)", uint16(k))
}

// ParseKey resolves a configuration key name (case-insensitive).
func ParseKey(name string) (Key, error) {
	for k, n := range keyNames {
		if strings.EqualFold(n, name) {
			return k, nil
		}
	}
	return KeyUnknown, fmt.Errorf("unknown key %q (known keys: %s)", name, strings.Join(KeyNames(), ", "))
}

// ParseKeys resolves a list of key names.
func ParseKeys(names []string) ([]Key, error) {
	keys := make([]Key, 0, len(names))
	for _, n := range names {
		k, err := ParseKey(n)
		if err != nil {
			return nil, err
		}
		keys = append(keys, k)
	}
	return keys, nil
}

// KeyNames lists every known key name, sorted.
func KeyNames() []string {
	names := make([]string, 0, len(keyNames))
	for _, n := range keyNames {
		names = append(names, n)
	}
	sort.Strings(names)
	return names
}
