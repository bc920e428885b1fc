package wicket

import "strings"

// DefaultIgnoredModifiers are the lock modifiers whose incidental state
// should not affect whether a chord fires.
var DefaultIgnoredModifiers = []KeyModifiers{ModNumLock, ModCapsLock, ModScrollLock}

// ChordDefinition is a key plus a modifier bitmask.
//
// IgnoreModifiers lists modifiers whose state is irrelevant to the chord;
// a nil slice means DefaultIgnoredModifiers. Pass an empty non-nil slice to
// ignore nothing.
type ChordDefinition struct {
	Key             Key
	Modifiers       KeyModifiers
	IgnoreModifiers []KeyModifiers
}

func (c ChordDefinition) ignored() []KeyModifiers {
	if c.IgnoreModifiers == nil {
		return DefaultIgnoredModifiers
	}
	return c.IgnoreModifiers
}

// String renders the chord human-readably, e.g. "SHIFT+CTRL+A".
func (c ChordDefinition) String() string {
	var parts []string
	for _, m := range [...]struct {
		bit  KeyModifiers
		name string
	}{
		{ModShift, "SHIFT"},
		{ModCtrl, "CTRL"},
		{ModAlt, "ALT"},
		{ModMeta, "META"},
		{ModNumLock, "NUMLOCK"},
		{ModCapsLock, "CAPSLOCK"},
		{ModScrollLock, "SCROLLLOCK"},
	} {
		if c.Modifiers&m.bit != 0 {
			parts = append(parts, m.name)
		}
	}
	parts = append(parts, strings.ToUpper(c.Key.String()))
	return strings.Join(parts, "+")
}

// KeyboardActionDefinition binds chords and/or runes to press and release
// callbacks. Rune bindings fire both callbacks immediately on the text
// event; there is no release event for text, and text events repeat while
// the key is held.
type KeyboardActionDefinition struct {
	Chords []ChordDefinition
	Runes  []rune

	OnPress   func() EventResult
	OnRelease func() EventResult
}

// KeyMap maps (modifiers, key) pairs and runes to actions. Registering a
// chord fans the action out across the powerset of its ignored modifiers,
// so lookup stays an exact-match on whatever modifier state the platform
// reports.
type KeyMap struct {
	chords map[KeyModifiers]map[Key][]*KeyboardActionDefinition
	runes  map[rune][]*KeyboardActionDefinition
}

// NewKeyMap creates an empty key map.
func NewKeyMap() *KeyMap {
	return &KeyMap{
		chords: make(map[KeyModifiers]map[Key][]*KeyboardActionDefinition),
		runes:  make(map[rune][]*KeyboardActionDefinition),
	}
}

// AddAction registers an action for all of its chords and runes. Adding the
// same action twice for the same binding is a no-op.
func (km *KeyMap) AddAction(action *KeyboardActionDefinition) {
	for _, chord := range action.Chords {
		for _, mods := range chordModifierCombinations(chord) {
			keyMap := km.chords[mods]
			if keyMap == nil {
				keyMap = make(map[Key][]*KeyboardActionDefinition)
				km.chords[mods] = keyMap
			}
			if !containsAction(keyMap[chord.Key], action) {
				keyMap[chord.Key] = append(keyMap[chord.Key], action)
			}
		}
	}
	for _, r := range action.Runes {
		if !containsAction(km.runes[r], action) {
			km.runes[r] = append(km.runes[r], action)
		}
	}
}

// RemoveAction removes an action from all of its bindings.
func (km *KeyMap) RemoveAction(action *KeyboardActionDefinition) {
	for _, chord := range action.Chords {
		for _, mods := range chordModifierCombinations(chord) {
			if keyMap := km.chords[mods]; keyMap != nil {
				keyMap[chord.Key] = removeAction(keyMap[chord.Key], action)
			}
		}
	}
	for _, r := range action.Runes {
		km.runes[r] = removeAction(km.runes[r], action)
	}
}

// chordModifierCombinations returns the chord's modifiers OR-combined with
// every subset of its ignored modifiers.
func chordModifierCombinations(chord ChordDefinition) []KeyModifiers {
	ignored := chord.ignored()
	combos := make([]KeyModifiers, 0, 1<<len(ignored))
	for set := 0; set < 1<<len(ignored); set++ {
		mods := chord.Modifiers
		for i, m := range ignored {
			if set&(1<<i) != 0 {
				mods |= m
			}
		}
		combos = append(combos, mods)
	}
	return combos
}

func containsAction(actions []*KeyboardActionDefinition, action *KeyboardActionDefinition) bool {
	for _, a := range actions {
		if a == action {
			return true
		}
	}
	return false
}

func removeAction(actions []*KeyboardActionDefinition, action *KeyboardActionDefinition) []*KeyboardActionDefinition {
	for i, a := range actions {
		if a == action {
			copy(actions[i:], actions[i+1:])
			actions[len(actions)-1] = nil
			return actions[:len(actions)-1]
		}
	}
	return actions
}

// KeyboardHandler is a zero-size box that routes key and text events
// through a KeyMap. Multiple handlers can be live at once; they receive
// events in the usual handler-stack order.
//
// With FocusRequired set, the handler only processes events while its
// widget holds keyboard focus (see KeyboardFocusBox).
type KeyboardHandler struct {
	*Box

	keymap        *KeyMap
	FocusRequired bool
	hasFocus      bool
}

// NewKeyboardHandler creates a keyboard handler around the given key map.
// Panics if keymap is nil.
func NewKeyboardHandler(keymap *KeyMap, focusRequired bool) *KeyboardHandler {
	if keymap == nil {
		panic("wicket: keyboard handler requires a key map")
	}
	kh := &KeyboardHandler{
		Box:           NewBox(BoxDefinition{}),
		keymap:        keymap,
		FocusRequired: focusRequired,
	}
	kh.Box.keys = kh
	return kh
}

// KeyMap returns the handler's key map.
func (kh *KeyboardHandler) KeyMap() *KeyMap { return kh.keymap }

// HasFocus reports whether the handler currently has keyboard focus.
func (kh *KeyboardHandler) HasFocus() bool { return kh.hasFocus }

func (kh *KeyboardHandler) active() bool {
	return !kh.FocusRequired || kh.hasFocus
}

func (kh *KeyboardHandler) handleKeyPress(key Key, mods KeyModifiers) EventResult {
	if !kh.active() {
		return EventUnhandled
	}
	handled := false
	for _, action := range kh.keymap.chords[mods][key] {
		if action.OnPress != nil && action.OnPress() == EventHandled {
			handled = true
		}
	}
	if handled {
		return EventHandled
	}
	return EventUnhandled
}

func (kh *KeyboardHandler) handleKeyRelease(key Key, mods KeyModifiers) EventResult {
	if !kh.active() {
		return EventUnhandled
	}
	handled := false
	for _, action := range kh.keymap.chords[mods][key] {
		if action.OnRelease != nil && action.OnRelease() == EventHandled {
			handled = true
		}
	}
	if handled {
		return EventHandled
	}
	return EventUnhandled
}

func (kh *KeyboardHandler) handleText(r rune) EventResult {
	if !kh.active() {
		return EventUnhandled
	}
	handled := false
	for _, action := range kh.keymap.runes[r] {
		if action.OnPress != nil && action.OnPress() == EventHandled {
			handled = true
		}
		if action.OnRelease != nil && action.OnRelease() == EventHandled {
			handled = true
		}
	}
	if handled {
		return EventHandled
	}
	return EventUnhandled
}
