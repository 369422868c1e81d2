// Package keys.go defines the canonical key names of the driver contract
// and the modifier set. Drivers translate their platform events into these
// names; bindings and handlers never see raw escape sequences.

package schirmwerk

import (
	"fmt"
	"sort"
	"strings"
)

// Modifiers is a bit set of the modifier keys held during an event.
type Modifiers uint8

const (
	ModCtrl Modifiers = 1 << iota
	ModShift
	ModAlt
	ModMeta
)

// Has reports whether all given modifiers are held.
func (m Modifiers) Has(mods Modifiers) bool {
	return m&mods == mods
}

// keyModifierOrder is the canonical prefix order in combined key names.
var keyModifierOrder = []struct {
	bit  Modifiers
	name string
}{
	{ModCtrl, "ctrl"},
	{ModShift, "shift"},
	{ModAlt, "alt"},
	{ModMeta, "meta"},
}

// KeyName builds the canonical name for a key with modifiers, such as
// "ctrl+shift+left" or "a".
func KeyName(base string, mods Modifiers) string {
	if mods == 0 {
		return base
	}
	var parts []string
	for _, mod := range keyModifierOrder {
		if mods.Has(mod.bit) {
			parts = append(parts, mod.name)
		}
	}
	parts = append(parts, base)
	return strings.Join(parts, "+")
}

// NormalizeKey canonicalizes a user-written key expression: lower-cased,
// modifiers sorted into canonical order, aliases resolved.
func NormalizeKey(key string) string {
	parts := strings.Split(strings.ToLower(strings.TrimSpace(key)), "+")
	base := parts[len(parts)-1]
	switch base {
	case "esc":
		base = "escape"
	case "return":
		base = "enter"
	case "del":
		base = "delete"
	case "pgup":
		base = "pageup"
	case "pgdn", "pgdown":
		base = "pagedown"
	case "":
		// "ctrl++" style expressions name the plus key.
		base = "plus"
	}
	var mods Modifiers
	for _, part := range parts[:len(parts)-1] {
		switch part {
		case "ctrl", "control":
			mods |= ModCtrl
		case "shift":
			mods |= ModShift
		case "alt", "option":
			mods |= ModAlt
		case "meta", "cmd", "super":
			mods |= ModMeta
		}
	}
	return KeyName(base, mods)
}

// namedKeys is the canonical table of non-character key names drivers must
// produce.
var namedKeys = map[string]struct{}{
	"enter": {}, "escape": {}, "tab": {}, "space": {}, "backspace": {},
	"delete": {}, "insert": {}, "up": {}, "down": {}, "left": {},
	"right": {}, "home": {}, "end": {}, "pageup": {}, "pagedown": {},
}

func init() {
	for i := 1; i <= 24; i++ {
		namedKeys[fmt.Sprintf("f%d", i)] = struct{}{}
	}
}

// IsNamedKey reports whether the base name is in the canonical key table.
func IsNamedKey(name string) bool {
	base := name
	if i := strings.LastIndexByte(name, '+'); i >= 0 {
		base = name[i+1:]
	}
	if _, ok := namedKeys[base]; ok {
		return true
	}
	runes := []rune(base)
	return len(runes) == 1
}

// NamedKeys returns the canonical non-character key names, sorted.
func NamedKeys() []string {
	result := make([]string, 0, len(namedKeys))
	for name := range namedKeys {
		result = append(result, name)
	}
	sort.Strings(result)
	return result
}
