package ui

import (
	"time"

	"github.com/amalg/go-bomberhuman/internal/game"
)

// KeyToggler receives held-key changes. *game.GameState implements it.
type KeyToggler interface {
	ToggleKey(slot int, key game.Key, pressed bool)
}

type binding struct {
	slot int
	key  game.Key
}

// defaultBindings maps bubbletea key names to player slots.
var defaultBindings = []struct {
	help string
	keys map[string]game.Key
}{
	{
		help: "P1: Arrows move | M: Bomb",
		keys: map[string]game.Key{
			"left":  game.KeyLeft,
			"right": game.KeyRight,
			"up":    game.KeyUp,
			"down":  game.KeyDown,
			"m":     game.KeyPlaceBomb,
		},
	},
	{
		help: "P2: WASD move | Space: Bomb",
		keys: map[string]game.Key{
			"a": game.KeyLeft,
			"d": game.KeyRight,
			"w": game.KeyUp,
			"s": game.KeyDown,
			" ": game.KeyPlaceBomb,
		},
	},
	{
		help: "P3: IJKL move | U: Bomb",
		keys: map[string]game.Key{
			"j": game.KeyLeft,
			"l": game.KeyRight,
			"i": game.KeyUp,
			"k": game.KeyDown,
			"u": game.KeyPlaceBomb,
		},
	},
	{
		help: "P4: TFGH move | Y: Bomb",
		keys: map[string]game.Key{
			"f": game.KeyLeft,
			"h": game.KeyRight,
			"t": game.KeyUp,
			"g": game.KeyDown,
			"y": game.KeyPlaceBomb,
		},
	},
}

// opposite pairs the directions that cancel each other out.
var opposite = map[game.Key]game.Key{
	game.KeyLeft:  game.KeyRight,
	game.KeyRight: game.KeyLeft,
	game.KeyUp:    game.KeyDown,
	game.KeyDown:  game.KeyUp,
}

// Input turns terminal key presses into held keys. Terminals only report
// presses (and auto-repeats), so a movement key counts as held until hold
// passes without a repeat. The bomb key is released after a single frame.
type Input struct {
	bindings map[string]binding
	hold     time.Duration
	deadline map[binding]time.Time
	help     []string
}

// NewInput binds the keyboard for the first players slots.
func NewInput(players int, hold time.Duration) *Input {
	in := &Input{
		bindings: make(map[string]binding),
		hold:     hold,
		deadline: make(map[binding]time.Time),
	}
	for slot, set := range defaultBindings {
		if slot >= players {
			break
		}
		for name, key := range set.keys {
			in.bindings[name] = binding{slot: slot, key: key}
		}
		in.help = append(in.help, set.help)
	}
	return in
}

// Help lists one line per bound player.
func (in *Input) Help() []string {
	return in.help
}

// Press handles a key event; it reports whether the key was bound. A
// direction releases its opposite at once so reversing never stalls.
func (in *Input) Press(t KeyToggler, name string, now time.Time) bool {
	b, ok := in.bindings[name]
	if !ok {
		return false
	}
	if key, ok := opposite[b.key]; ok {
		back := binding{slot: b.slot, key: key}
		if _, held := in.deadline[back]; held {
			t.ToggleKey(back.slot, back.key, false)
			delete(in.deadline, back)
		}
	}
	t.ToggleKey(b.slot, b.key, true)
	if b.key == game.KeyPlaceBomb {
		in.deadline[b] = now
	} else {
		in.deadline[b] = now.Add(in.hold)
	}
	return true
}

// Release lets go of every key whose hold has expired by now.
func (in *Input) Release(t KeyToggler, now time.Time) {
	for b, deadline := range in.deadline {
		if now.Before(deadline) {
			continue
		}
		t.ToggleKey(b.slot, b.key, false)
		delete(in.deadline, b)
	}
}

// Reset forgets all held keys without notifying anyone.
func (in *Input) Reset() {
	clear(in.deadline)
}
