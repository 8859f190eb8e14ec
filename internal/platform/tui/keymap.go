package tui

import (
	"sort"
	"time"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/vovakirdan/gameloop/internal/platform/keys"
)

// KeyMap defines the host-level key bindings. Every other key goes to the game.
type KeyMap struct {
	Quit key.Binding
	Help key.Binding
}

// ShortHelp returns key bindings for the short help view.
func (k KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Help, k.Quit}
}

// FullHelp returns key bindings for the full help view.
func (k KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{{k.Help, k.Quit}}
}

// DefaultKeyMap returns default key bindings.
func DefaultKeyMap() KeyMap {
	return KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("ctrl+c"),
			key.WithHelp("ctrl+c", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("f1"),
			key.WithHelp("f1", "toggle help"),
		),
	}
}

// KeyMapper translates Bubble Tea key messages to DOM key names and
// synthesizes releases. Terminals report presses and auto-repeats but never
// key-up, so a key counts as released once it has not repeated for holdTimeout.
type KeyMapper struct {
	holdTimeout time.Duration
	lastSeen    map[string]time.Time
}

// NewKeyMapper creates a mapper releasing keys after holdTimeout without repeats.
func NewKeyMapper(holdTimeout time.Duration) *KeyMapper {
	return &KeyMapper{
		holdTimeout: holdTimeout,
		lastSeen:    make(map[string]time.Time),
	}
}

// Press records a key message at now and returns the DOM key names it presses.
// A message carrying several runes (fast typing, a paste) presses each rune.
func (km *KeyMapper) Press(msg tea.KeyMsg, now time.Time) []string {
	var pressed []string
	if msg.Type == tea.KeyRunes && len(msg.Runes) > 1 {
		if msg.Alt {
			pressed = append(pressed, "Alt")
		}
		for _, r := range msg.Runes {
			pressed = append(pressed, keys.FromTerminal(string(r))...)
		}
	} else {
		pressed = keys.FromTerminal(msg.String())
	}

	for _, k := range pressed {
		km.lastSeen[k] = now
	}
	return pressed
}

// Expire returns, in lexical order, the keys not seen for at least the hold
// timeout, and forgets them.
func (km *KeyMapper) Expire(now time.Time) []string {
	var released []string
	for k, seen := range km.lastSeen {
		if now.Sub(seen) >= km.holdTimeout {
			released = append(released, k)
			delete(km.lastSeen, k)
		}
	}
	sort.Strings(released)
	return released
}

// Held returns the number of keys currently considered held.
func (km *KeyMapper) Held() int {
	return len(km.lastSeen)
}
