package input

import (
	"fmt"
	"strings"

	"github.com/lixenwraith/term-snake/terminal"
	"github.com/lixenwraith/term-snake/vmath"
)

// Rune aliases for keys that can't be bare single-char config keys
var runeAliases = map[string]rune{
	"space":     ' ',
	"backslash": '\\',
}

// actionNames maps config action names to intents; "none" unbinds
var actionNames = map[string]Intent{
	"none":  {},
	"up":    Steer(vmath.DirUp),
	"down":  Steer(vmath.DirDown),
	"left":  Steer(vmath.DirLeft),
	"right": Steer(vmath.DirRight),
	"quit":  Quit(),
}

// LoadKeyConfig turns key → action bindings (the [keys] config table) into a sparse override table
// Keys are key names ("up", "ctrl_c"), rune aliases ("space") or single characters
func LoadKeyConfig(bindings map[string]string) (*KeyTable, error) {
	kt := &KeyTable{
		Keys:  make(map[terminal.Key]Intent),
		Runes: make(map[rune]Intent),
	}

	for keyStr, actionName := range bindings {
		in, err := resolveAction(actionName)
		if err != nil {
			return nil, fmt.Errorf("[keys] %q: %w", keyStr, err)
		}

		if k, ok := terminal.KeyByName(strings.ToLower(keyStr)); ok {
			kt.Keys[k] = in
			continue
		}
		r, err := resolveRune(keyStr)
		if err != nil {
			return nil, fmt.Errorf("[keys] %q: %w", keyStr, err)
		}
		kt.Runes[r] = in
	}
	return kt, nil
}

// resolveRune converts a config key to a rune
func resolveRune(s string) (rune, error) {
	if r, ok := runeAliases[strings.ToLower(s)]; ok {
		return r, nil
	}
	runes := []rune(s)
	if len(runes) == 1 {
		return runes[0], nil
	}
	return 0, fmt.Errorf("invalid key: %q (expected key name, alias or single character)", s)
}

func resolveAction(name string) (Intent, error) {
	in, ok := actionNames[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Intent{}, fmt.Errorf("unknown action: %q", name)
	}
	return in, nil
}

// MergeKeyTable returns base with override applied; IntentNone entries remove the binding
func MergeKeyTable(base, override *KeyTable) *KeyTable {
	result := base.Clone()
	if override == nil {
		return result
	}
	mergeMap(result.Keys, override.Keys)
	mergeMap(result.Runes, override.Runes)
	return result
}

func mergeMap[K comparable](base, override map[K]Intent) {
	for k, v := range override {
		if v.Type == IntentNone {
			delete(base, k)
		} else {
			base[k] = v
		}
	}
}
