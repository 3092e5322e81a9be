package input

// Key identifies a physical key independent of the terminal backend
type Key uint8

const (
	KeyNone Key = iota
	KeyRune     // Printable character (check KeyEvent.Rune)

	// Control keys
	KeyEscape
	KeyEnter
	KeyTab
	KeyBackspace
	KeySpace
	KeyCtrlC

	// Navigation
	KeyUp
	KeyDown
	KeyLeft
	KeyRight
)

// keyToName maps Key constants to canonical log names
var keyToName = map[Key]string{
	KeyNone:      "none",
	KeyRune:      "rune",
	KeyEscape:    "escape",
	KeyEnter:     "enter",
	KeyTab:       "tab",
	KeyBackspace: "backspace",
	KeySpace:     "space",
	KeyCtrlC:     "ctrl_c",
	KeyUp:        "up",
	KeyDown:      "down",
	KeyLeft:      "left",
	KeyRight:     "right",
}

func (k Key) String() string {
	if name, ok := keyToName[k]; ok {
		return name
	}
	return "unknown"
}

// IsDirection reports whether k is one of the four arrow keys
func (k Key) IsDirection() bool {
	return k >= KeyUp && k <= KeyRight
}

// Modifier is a bitmask of held modifier keys
type Modifier uint8

const (
	ModShift Modifier = 1 << iota
	ModCtrl
	ModAlt
	ModMeta

	ModNone Modifier = 0
)

// Has reports whether all bits of m2 are set in m
func (m Modifier) Has(m2 Modifier) bool {
	return m&m2 == m2
}

// KeyEvent is a discrete key transition delivered to entities
type KeyEvent struct {
	Key    Key
	Rune   rune // Valid only when Key == KeyRune
	Mod    Modifier
	Repeat bool // Same key arrived again while still held
}

// IsQuit reports whether the event requests application shutdown.
// Some terminals report Ctrl-C as a rune with the Ctrl modifier.
func (e KeyEvent) IsQuit() bool {
	switch e.Key {
	case KeyEscape, KeyCtrlC:
		return true
	case KeyRune:
		return (e.Rune == 'c' || e.Rune == 'C') && e.Mod.Has(ModCtrl)
	}
	return false
}

// keyID distinguishes runes sharing KeyRune for press tracking
type keyID struct {
	key  Key
	char rune
}

func (e KeyEvent) id() keyID {
	if e.Key == KeyRune {
		return keyID{KeyRune, e.Rune}
	}
	return keyID{key: e.Key}
}
