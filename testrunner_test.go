package wicket

import (
	"testing"

	"github.com/hajimehoshi/ebiten/v2"
)

func TestLoadInteractionScript(t *testing.T) {
	r, err := LoadInteractionScript([]byte(`{"steps": [{"action": "click", "x": 50, "y": 50}]}`))
	if err != nil {
		t.Fatal(err)
	}
	if r.Done() {
		t.Error("fresh runner should not be done")
	}

	if _, err := LoadInteractionScript([]byte(`{"steps": [`)); err == nil {
		t.Error("malformed JSON should error")
	}
	if _, err := LoadInteractionScript([]byte(`{"steps": []}`)); err == nil {
		t.Error("empty script should error")
	}
}

// runScript steps the runner and drains injected input one event per frame,
// the way Stage.Update does.
func runScript(t *testing.T, s *Stage, r *ScriptRunner) int {
	t.Helper()
	frames := 0
	for !r.Done() {
		if frames++; frames > 100 {
			t.Fatal("script did not finish")
		}
		r.step(s)
		s.processInput()
	}
	return frames
}

func TestScriptClick(t *testing.T) {
	s := NewStage(800, 600)
	var presses, releases int
	mb := NewMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnPress: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			presses++
			return EventDefault
		},
		OnRelease: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			releases++
			return EventDefault
		},
	})
	s.Add(mb.Box)

	r, err := LoadInteractionScript([]byte(`{"steps": [
		{"action": "click", "x": 50, "y": 50}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, r)
	if presses != 1 || releases != 1 {
		t.Errorf("presses=%d releases=%d, want 1 each", presses, releases)
	}
}

func TestScriptDragAndWait(t *testing.T) {
	s := NewStage(800, 600)
	db := NewDraggableBox(DraggableBoxDefinition{
		MouseBoxDefinition: MouseBoxDefinition{
			BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		},
	})
	s.Add(db.Box)

	r, err := LoadInteractionScript([]byte(`{"steps": [
		{"action": "wait", "frames": 3},
		{"action": "drag", "fromX": 50, "fromY": 50, "toX": 250, "toY": 150, "frames": 4}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	frames := runScript(t, s, r)
	if db.X != 200 || db.Y != 100 {
		t.Errorf("box at (%v, %v), want (200, 100)", db.X, db.Y)
	}
	// The wait burns two extra idle frames before the drag starts.
	if frames < 6 {
		t.Errorf("script finished in %d frames, want the wait to stall it", frames)
	}
}

func TestScriptKeyAndText(t *testing.T) {
	s := NewStage(800, 600)
	var chords, runes int
	km := NewKeyMap()
	km.AddAction(&KeyboardActionDefinition{
		Chords:  []ChordDefinition{{Key: ebiten.KeyEnter}},
		OnPress: func() EventResult { chords++; return EventHandled },
	})
	km.AddAction(&KeyboardActionDefinition{
		Runes:   []rune{'a'},
		OnPress: func() EventResult { runes++; return EventHandled },
	})
	s.Add(NewKeyboardHandler(km, false).Box)

	r, err := LoadInteractionScript([]byte(`{"steps": [
		{"action": "key", "key": "Enter"},
		{"action": "text", "text": "aa"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, r)
	if chords != 1 {
		t.Errorf("chord fired %d times, want 1", chords)
	}
	if runes != 2 {
		t.Errorf("rune fired %d times, want 2", runes)
	}
}

func TestScriptScreenshot(t *testing.T) {
	s := NewStage(800, 600)
	r, err := LoadInteractionScript([]byte(`{"steps": [
		{"action": "screenshot", "label": "before"},
		{"action": "screenshot", "label": "after"}
	]}`))
	if err != nil {
		t.Fatal(err)
	}
	runScript(t, s, r)
	if len(s.screenshotQueue) != 2 {
		t.Fatalf("queue len = %d, want 2", len(s.screenshotQueue))
	}
	if s.screenshotQueue[0] != "before" || s.screenshotQueue[1] != "after" {
		t.Errorf("queue = %v, want [before after]", s.screenshotQueue)
	}
}

func TestKeyByName(t *testing.T) {
	if k, ok := keyByName("A"); !ok || k.String() != "A" {
		t.Error("keyByName should resolve A")
	}
	if _, ok := keyByName("NoSuchKey"); ok {
		t.Error("unknown names should not resolve")
	}
}
