package wicket

import "testing"

func newTestMouseBox(def MouseBoxDefinition, s *Stage) *MouseBox {
	mb := NewMouseBox(def)
	s.Add(mb.Box)
	return mb
}

func TestPressConsumesByDefault(t *testing.T) {
	s := NewStage(800, 600)
	var fired int
	mb := newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnPress: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			fired++
			return EventDefault
		},
	}, s)

	if !s.MousePress(50, 50, MouseButtonLeft, 0) {
		t.Error("press with a configured callback should consume")
	}
	if fired != 1 {
		t.Errorf("press fired %d times, want 1", fired)
	}
	if mb.Pressed() != MouseButtonLeft {
		t.Errorf("pressed = %v, want left", mb.Pressed())
	}
}

func TestPressUnhandledPropagates(t *testing.T) {
	s := NewStage(800, 600)
	var underFired bool
	newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnPress: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			underFired = true
			return EventDefault
		},
	}, s)
	newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnPress: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			return EventUnhandled
		},
	}, s)

	s.MousePress(50, 50, MouseButtonLeft, 0)
	if !underFired {
		t.Error("explicit EventUnhandled should let the press continue down")
	}
}

func TestPressWithoutCallbacksIgnored(t *testing.T) {
	s := NewStage(800, 600)
	mb := newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
	}, s)

	if s.MousePress(50, 50, MouseButtonLeft, 0) {
		t.Error("press on a callback-less box should not consume")
	}
	if mb.Pressed() != 0 {
		t.Error("callback-less box should not record press state")
	}
	s.MouseRelease(50, 50, MouseButtonLeft, 0)
}

func TestPressOutside(t *testing.T) {
	s := NewStage(800, 600)
	var outside int
	newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnPressOutside: func(_ *MouseBox, x, y float64, _ MouseButton, _ KeyModifiers) EventResult {
			outside++
			return EventHandled // informational; must still not consume
		},
	}, s)

	if s.MousePress(300, 300, MouseButtonLeft, 0) {
		t.Error("press-outside must never consume")
	}
	if outside != 1 {
		t.Errorf("press-outside fired %d times, want 1", outside)
	}
	s.MouseRelease(300, 300, MouseButtonLeft, 0)
}

func TestReleaseRequiresPriorPress(t *testing.T) {
	s := NewStage(800, 600)
	var released int
	mb := newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		// A press callback is needed to record press state for the
		// release pairing; returning EventUnhandled keeps it passive.
		OnPress: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			return EventUnhandled
		},
		OnRelease: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			released++
			return EventDefault
		},
	}, s)
	mb.X, mb.Y = 200, 200

	// Press off the box, release on it: nothing fires.
	s.MousePress(10, 10, MouseButtonLeft, 0)
	s.MouseRelease(250, 250, MouseButtonLeft, 0)
	if released != 0 {
		t.Error("release without a prior press inside should not fire")
	}

	// Press and release inside: fires and clears press state.
	s.MousePress(250, 250, MouseButtonLeft, 0)
	s.MouseRelease(250, 250, MouseButtonLeft, 0)
	if released != 1 {
		t.Errorf("release fired %d times, want 1", released)
	}
	if mb.Pressed() != 0 {
		t.Error("press state should clear after release")
	}
}

func TestReleaseOutsideDoesNotFire(t *testing.T) {
	s := NewStage(800, 600)
	var released int
	mb := newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnPress: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			return EventUnhandled
		},
		OnRelease: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			released++
			return EventDefault
		},
	}, s)

	s.MousePress(50, 50, MouseButtonLeft, 0)
	s.MouseRelease(300, 300, MouseButtonLeft, 0)
	if released != 0 {
		t.Error("release outside the box should not fire")
	}
	if mb.Pressed() == 0 {
		t.Error("press state survives a release elsewhere until the pointer leaves")
	}
}

func TestHoverBeforeMotion(t *testing.T) {
	s := NewStage(800, 600)
	var events []string
	newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnHover: func(*MouseBox, float64, float64, float64, float64) EventResult {
			events = append(events, "hover")
			return EventDefault
		},
		OnMotion: func(*MouseBox, float64, float64, float64, float64) EventResult {
			events = append(events, "motion")
			return EventDefault
		},
		OnUnhover: func(*MouseBox, float64, float64, float64, float64) EventResult {
			events = append(events, "unhover")
			return EventDefault
		},
	}, s)

	// Entering fires hover then motion on the same movement.
	s.MouseMove(50, 50)
	// Moving within fires motion only.
	s.MouseMove(60, 60)
	// Leaving fires unhover.
	s.MouseMove(300, 300)

	want := []string{"hover", "motion", "motion", "unhover"}
	if len(events) != len(want) {
		t.Fatalf("events = %v, want %v", events, want)
	}
	for i := range want {
		if events[i] != want[i] {
			t.Fatalf("events = %v, want %v", events, want)
		}
	}
}

func TestHoverHandledSuppressesMotion(t *testing.T) {
	s := NewStage(800, 600)
	var motion int
	newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnHover: func(*MouseBox, float64, float64, float64, float64) EventResult {
			return EventHandled
		},
		OnMotion: func(*MouseBox, float64, float64, float64, float64) EventResult {
			motion++
			return EventDefault
		},
	}, s)

	if !s.MouseMove(50, 50) {
		t.Error("hover returning EventHandled should consume the movement")
	}
	if motion != 0 {
		t.Error("handled hover should suppress motion on the same movement")
	}
}

// Hover and motion returning EventDefault must not consume, so overlapping
// hover regions all see the same movement.
func TestMotionDefaultDoesNotConsume(t *testing.T) {
	s := NewStage(800, 600)
	var lower, upper int
	newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnHover: func(*MouseBox, float64, float64, float64, float64) EventResult {
			lower++
			return EventDefault
		},
	}, s)
	newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnHover: func(*MouseBox, float64, float64, float64, float64) EventResult {
			upper++
			return EventDefault
		},
	}, s)

	if s.MouseMove(50, 50) {
		t.Error("default hover results should not consume")
	}
	if lower != 1 || upper != 1 {
		t.Errorf("hover fired lower=%d upper=%d, want 1 each", lower, upper)
	}
}

func TestUnhoverVoidsPressState(t *testing.T) {
	s := NewStage(800, 600)
	mb := newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnPress: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			return EventDefault
		},
	}, s)

	s.MouseMove(50, 50)
	s.MousePress(50, 50, MouseButtonLeft, 0)
	if mb.Pressed() != MouseButtonLeft {
		t.Fatal("press not recorded")
	}
	// Release elsewhere so the next move is a motion, not a drag.
	s.MouseRelease(300, 300, MouseButtonLeft, 0)
	s.MouseMove(300, 300)
	if mb.Pressed() != 0 {
		t.Error("leaving the box should void the partial press state")
	}
	if mb.Hovered() {
		t.Error("box should no longer be hovered")
	}
}

// Drag delivery depends only on the dragging flag, never on hit-testing: a
// fast pointer can leave the box between two drag events.
func TestDragIgnoresHitTest(t *testing.T) {
	s := NewStage(800, 600)
	var drags int
	mb := newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnDrag: func(*MouseBox, float64, float64, float64, float64, MouseButton, KeyModifiers) EventResult {
			drags++
			return EventDefault
		},
	}, s)

	mb.StartDragging()
	s.MousePress(700, 500, MouseButtonLeft, 0) // far away from the box
	s.MouseMove(600, 400)
	if drags != 1 {
		t.Errorf("drag fired %d times, want 1", drags)
	}

	mb.StopDragging()
	s.MouseMove(500, 300)
	if drags != 1 {
		t.Error("drag should stop with the dragging flag")
	}
	s.MouseRelease(500, 300, MouseButtonLeft, 0)
}

func TestCoordFilter(t *testing.T) {
	s := NewStage(800, 600)
	var fired int
	mb := newTestMouseBox(MouseBoxDefinition{
		BoxDefinition: BoxDefinition{Width: 100, Height: 100},
		OnPress: func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
			fired++
			return EventDefault
		},
	}, s)
	mb.CoordFilter = func(x, y float64) bool { return x < 50 }

	s.MousePress(75, 25, MouseButtonLeft, 0)
	if fired != 0 {
		t.Error("filtered press should not fire")
	}
	s.MouseRelease(75, 25, MouseButtonLeft, 0)

	s.MousePress(25, 25, MouseButtonLeft, 0)
	if fired != 1 {
		t.Errorf("press fired %d times, want 1", fired)
	}
	s.MouseRelease(25, 25, MouseButtonLeft, 0)
}
