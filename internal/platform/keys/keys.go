// Package keys translates host key names into DOM KeyboardEvent.key
// identifiers, so games see the same names whichever host runs them.
package keys

import (
	"strconv"
	"strings"
)

// terminalKeys maps Bubble Tea key strings to DOM names.
var terminalKeys = map[string]string{
	"up":        "ArrowUp",
	"down":      "ArrowDown",
	"left":      "ArrowLeft",
	"right":     "ArrowRight",
	"esc":       "Escape",
	"enter":     "Enter",
	"tab":       "Tab",
	"backspace": "Backspace",
	"delete":    "Delete",
	"home":      "Home",
	"end":       "End",
	"pgup":      "PageUp",
	"pgdown":    "PageDown",
	"insert":    "Insert",
	" ":         " ",
}

// ebitenKeys maps ebiten Key.String() names that differ from DOM names.
var ebitenKeys = map[string]string{
	"Space":        " ",
	"ShiftLeft":    "Shift",
	"ShiftRight":   "Shift",
	"ControlLeft":  "Control",
	"ControlRight": "Control",
	"AltLeft":      "Alt",
	"AltRight":     "Alt",
	"MetaLeft":     "Meta",
	"MetaRight":    "Meta",
	"Minus":        "-",
	"Equal":        "=",
	"Comma":        ",",
	"Period":       ".",
	"Slash":        "/",
	"Backslash":    "\\",
	"Semicolon":    ";",
	"Quote":        "'",
	"Backquote":    "`",
	"BracketLeft":  "[",
	"BracketRight": "]",
}

// terminalModifiers maps Bubble Tea modifier prefixes to DOM names.
var terminalModifiers = []struct {
	prefix, name string
}{
	{"ctrl+", "Control"},
	{"alt+", "Alt"},
	{"shift+", "Shift"},
}

// FromTerminal converts a Bubble Tea key string ("up", "a", "f2", "ctrl+shift+up")
// to the DOM key names it presses: modifiers first, then the key itself.
// Printable characters and unknown names pass through unchanged.
func FromTerminal(s string) []string {
	var out []string
	for {
		stripped := false
		for _, m := range terminalModifiers {
			if rest, ok := strings.CutPrefix(s, m.prefix); ok && rest != "" {
				out = append(out, m.name)
				s = rest
				stripped = true
			}
		}
		if !stripped {
			break
		}
	}
	return append(out, terminalKey(s))
}

func terminalKey(s string) string {
	if k, ok := terminalKeys[s]; ok {
		return k
	}
	if n, ok := strings.CutPrefix(s, "f"); ok {
		if i, err := strconv.Atoi(n); err == nil && i >= 1 && i <= 20 {
			return "F" + n
		}
	}
	return s
}

// FromEbiten converts an ebiten Key.String() name ("A", "Digit1", "ArrowUp") to a DOM key name.
// Letters are lowercased as typed without modifiers. Left and right modifiers
// share one name; use a Chord to release it only when both are up.
func FromEbiten(name string) string {
	if k, ok := ebitenKeys[name]; ok {
		return k
	}
	if len(name) == 1 {
		return strings.ToLower(name)
	}
	if d, ok := strings.CutPrefix(name, "Digit"); ok && len(d) == 1 {
		return d
	}
	if d, ok := strings.CutPrefix(name, "Numpad"); ok && len(d) == 1 {
		return d
	}
	return name
}

// Chord counts physical keys held per DOM name, for names several physical
// keys map to (ShiftLeft and ShiftRight both press "Shift").
type Chord struct {
	down map[string]int
}

// NewChord creates an empty chord.
func NewChord() *Chord {
	return &Chord{down: make(map[string]int)}
}

// Press records one more physical key down for name and reports whether
// name just became held.
func (c *Chord) Press(name string) bool {
	c.down[name]++
	return c.down[name] == 1
}

// Release records one physical key up for name and reports whether name is
// no longer held. Releasing an unheld name reports false.
func (c *Chord) Release(name string) bool {
	n, ok := c.down[name]
	if !ok {
		return false
	}
	if n <= 1 {
		delete(c.down, name)
		return true
	}
	c.down[name] = n - 1
	return false
}
