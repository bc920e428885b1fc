package wicket

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestChordIgnoredModifierFanOut(t *testing.T) {
	s := NewStage(800, 600)
	km := NewKeyMap()
	var fired int
	km.AddAction(&KeyboardActionDefinition{
		Chords:  []ChordDefinition{{Key: ebiten.KeyA}},
		OnPress: func() EventResult { fired++; return EventHandled },
	})
	s.Add(NewKeyboardHandler(km, false).Box)

	// Lock modifiers are ignored by default.
	s.KeyPress(ebiten.KeyA, 0)
	s.KeyPress(ebiten.KeyA, ModCapsLock)
	s.KeyPress(ebiten.KeyA, ModNumLock|ModScrollLock)
	if fired != 3 {
		t.Errorf("chord fired %d times, want 3", fired)
	}

	// Non-ignored modifiers still require an exact match.
	s.KeyPress(ebiten.KeyA, ModShift)
	if fired != 3 {
		t.Error("chord should not fire with an unexpected modifier")
	}
}

func TestChordEmptyIgnoreModifiers(t *testing.T) {
	s := NewStage(800, 600)
	km := NewKeyMap()
	var fired int
	km.AddAction(&KeyboardActionDefinition{
		Chords: []ChordDefinition{{
			Key:             ebiten.KeyA,
			IgnoreModifiers: []KeyModifiers{}, // ignore nothing
		}},
		OnPress: func() EventResult { fired++; return EventHandled },
	})
	s.Add(NewKeyboardHandler(km, false).Box)

	s.KeyPress(ebiten.KeyA, 0)
	s.KeyPress(ebiten.KeyA, ModCapsLock)
	if fired != 1 {
		t.Errorf("chord fired %d times, want 1 (caps lock not ignored)", fired)
	}
}

func TestChordWithModifiers(t *testing.T) {
	s := NewStage(800, 600)
	km := NewKeyMap()
	var fired int
	km.AddAction(&KeyboardActionDefinition{
		Chords:  []ChordDefinition{{Key: ebiten.KeyS, Modifiers: ModCtrl}},
		OnPress: func() EventResult { fired++; return EventHandled },
	})
	s.Add(NewKeyboardHandler(km, false).Box)

	s.KeyPress(ebiten.KeyS, 0)
	if fired != 0 {
		t.Error("chord should require its modifier")
	}
	s.KeyPress(ebiten.KeyS, ModCtrl)
	s.KeyPress(ebiten.KeyS, ModCtrl|ModCapsLock)
	if fired != 2 {
		t.Errorf("chord fired %d times, want 2", fired)
	}
}

func TestRuneFiresBothCallbacks(t *testing.T) {
	s := NewStage(800, 600)
	km := NewKeyMap()
	var presses, releases int
	km.AddAction(&KeyboardActionDefinition{
		Runes:     []rune{'x'},
		OnPress:   func() EventResult { presses++; return EventHandled },
		OnRelease: func() EventResult { releases++; return EventHandled },
	})
	s.Add(NewKeyboardHandler(km, false).Box)

	// Text has no separate release event, so both callbacks fire at once.
	if !s.Text('x') {
		t.Error("handled rune action should consume")
	}
	if presses != 1 || releases != 1 {
		t.Errorf("presses=%d releases=%d, want 1 each", presses, releases)
	}
	if s.Text('y') {
		t.Error("unbound rune should not consume")
	}
}

func TestRemoveAction(t *testing.T) {
	s := NewStage(800, 600)
	km := NewKeyMap()
	var fired int
	action := &KeyboardActionDefinition{
		Chords:  []ChordDefinition{{Key: ebiten.KeyA}},
		Runes:   []rune{'a'},
		OnPress: func() EventResult { fired++; return EventHandled },
	}
	km.AddAction(action)
	// Adding the same action twice is a no-op.
	km.AddAction(action)
	s.Add(NewKeyboardHandler(km, false).Box)

	s.KeyPress(ebiten.KeyA, 0)
	if fired != 1 {
		t.Fatalf("chord fired %d times, want 1", fired)
	}

	km.RemoveAction(action)
	s.KeyPress(ebiten.KeyA, 0)
	s.Text('a')
	if fired != 1 {
		t.Errorf("removed action still fired, total %d", fired)
	}
}

func TestFocusRequiredGating(t *testing.T) {
	s := NewStage(800, 600)
	km := NewKeyMap()
	var fired int
	km.AddAction(&KeyboardActionDefinition{
		Chords:  []ChordDefinition{{Key: ebiten.KeyA}},
		OnPress: func() EventResult { fired++; return EventHandled },
	})
	kh := NewKeyboardHandler(km, true)
	s.Add(kh.Box)

	s.KeyPress(ebiten.KeyA, 0)
	if fired != 0 {
		t.Error("focus-required handler should ignore events without focus")
	}

	kh.hasFocus = true
	s.KeyPress(ebiten.KeyA, 0)
	if fired != 1 {
		t.Errorf("focused handler fired %d times, want 1", fired)
	}
}

func TestKeyPressUnhandledPropagates(t *testing.T) {
	s := NewStage(800, 600)
	var lower int
	lowerMap := NewKeyMap()
	lowerMap.AddAction(&KeyboardActionDefinition{
		Chords:  []ChordDefinition{{Key: ebiten.KeyA}},
		OnPress: func() EventResult { lower++; return EventHandled },
	})
	s.Add(NewKeyboardHandler(lowerMap, false).Box)

	upperMap := NewKeyMap()
	upperMap.AddAction(&KeyboardActionDefinition{
		Chords:  []ChordDefinition{{Key: ebiten.KeyA}},
		OnPress: func() EventResult { return EventDefault },
	})
	s.Add(NewKeyboardHandler(upperMap, false).Box)

	// The upper handler expressed no opinion, so the lower one still sees
	// the key and consumes it.
	if !s.KeyPress(ebiten.KeyA, 0) {
		t.Error("lower handler should consume")
	}
	if lower != 1 {
		t.Errorf("lower handler fired %d times, want 1", lower)
	}
}

func TestChordString(t *testing.T) {
	c := ChordDefinition{Key: ebiten.KeyA, Modifiers: ModShift | ModCtrl}
	if got := c.String(); got != "SHIFT+CTRL+A" {
		t.Errorf("chord string = %q, want %q", got, "SHIFT+CTRL+A")
	}
	c = ChordDefinition{Key: ebiten.KeyEnter}
	if got := c.String(); got != "ENTER" {
		t.Errorf("chord string = %q, want %q", got, "ENTER")
	}
}

func TestKeyboardHandlerRequiresKeyMap(t *testing.T) {
	assertPanics(t, "nil keymap", func() { NewKeyboardHandler(nil, false) })
}
