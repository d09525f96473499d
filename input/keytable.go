package input

import (
	"github.com/gdamore/tcell/v2"

	"github.com/lixenwraith/papercraft/core"
)

// KeyTable maps terminal keys to semantic keys
type KeyTable struct {
	// Special keys (Ctrl+*, Escape)
	SpecialKeys map[tcell.Key]core.Key

	// Printable rune bindings; both cases are listed explicitly
	Runes map[rune]core.Key
}

// DefaultKeyTable returns the default key bindings
func DefaultKeyTable() *KeyTable {
	return &KeyTable{
		SpecialKeys: map[tcell.Key]core.Key{
			tcell.KeyCtrlQ:  core.KeyQuit,
			tcell.KeyCtrlC:  core.KeyQuit,
			tcell.KeyEscape: core.KeyEscape,
		},
		Runes: map[rune]core.Key{
			'm': core.KeyMove,
			'M': core.KeyMove,
			'a': core.KeyAttack,
			'A': core.KeyAttack,
			'b': core.KeyBuild,
			'B': core.KeyBuild,
			' ': core.KeySpace,
			'r': core.KeyReport,
			'R': core.KeyReport,
		},
	}
}

// Translate resolves a key event; unbound keys return core.KeyNone
func (kt *KeyTable) Translate(ev *tcell.EventKey) core.Key {
	if ev.Key() == tcell.KeyRune {
		return kt.Runes[ev.Rune()]
	}
	return kt.SpecialKeys[ev.Key()]
}

var defaultTable = DefaultKeyTable()

// TranslateKey resolves a key event with the default bindings
func TranslateKey(ev *tcell.EventKey) core.Key {
	return defaultTable.Translate(ev)
}
