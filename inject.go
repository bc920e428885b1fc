package wicket

// Synthetic input injection. Events queue up and are consumed one per frame
// by Stage.Update, exactly as real input would arrive. Tests that want
// synchronous dispatch can call the Mouse*/Key*/Text methods directly
// instead.

type syntheticKind uint8

const (
	synthPress syntheticKind = iota
	synthRelease
	synthMove
	synthKeyPress
	synthKeyRelease
	synthText
)

type syntheticInputEvent struct {
	kind    syntheticKind
	x, y    float64
	buttons MouseButton
	key     Key
	r       rune
}

// InjectPress queues a left-button press at world (x, y), consumed on the
// next Update.
func (s *Stage) InjectPress(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticInputEvent{
		kind: synthPress, x: x, y: y, buttons: MouseButtonLeft,
	})
}

// InjectRelease queues a left-button release at world (x, y).
func (s *Stage) InjectRelease(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticInputEvent{
		kind: synthRelease, x: x, y: y, buttons: MouseButtonLeft,
	})
}

// InjectMove queues a cursor move to world (x, y).
func (s *Stage) InjectMove(x, y float64) {
	s.injectQueue = append(s.injectQueue, syntheticInputEvent{
		kind: synthMove, x: x, y: y,
	})
}

// InjectClick queues a press followed by a release at the same coordinates.
// Consumes two frames.
func (s *Stage) InjectClick(x, y float64) {
	s.InjectPress(x, y)
	s.InjectRelease(x, y)
}

// InjectDrag queues a full drag sequence: press at (fromX, fromY), linearly
// interpolated moves, and release at (toX, toY). The sequence consumes
// `frames` frames; minimum is 2 (press + release).
func (s *Stage) InjectDrag(fromX, fromY, toX, toY float64, frames int) {
	if frames < 2 {
		frames = 2
	}
	s.InjectPress(fromX, fromY)
	steps := frames - 2
	for i := 1; i <= steps; i++ {
		// The final move lands on the destination, so the release there
		// carries no further displacement.
		t := float64(i) / float64(steps)
		s.InjectMove(fromX+(toX-fromX)*t, fromY+(toY-fromY)*t)
	}
	s.InjectRelease(toX, toY)
}

// InjectKey queues a key press and a key release on consecutive frames.
func (s *Stage) InjectKey(key Key) {
	s.injectQueue = append(s.injectQueue,
		syntheticInputEvent{kind: synthKeyPress, key: key},
		syntheticInputEvent{kind: synthKeyRelease, key: key},
	)
}

// InjectText queues one text event per rune of str.
func (s *Stage) InjectText(str string) {
	for _, r := range str {
		s.injectQueue = append(s.injectQueue, syntheticInputEvent{kind: synthText, r: r})
	}
}

// processInjectedInput pops one queued event and dispatches it. Returns true
// if an event was consumed; real input is skipped for that frame.
func (s *Stage) processInjectedInput(mods KeyModifiers) bool {
	if len(s.injectQueue) == 0 {
		return false
	}
	evt := s.injectQueue[0]
	copy(s.injectQueue, s.injectQueue[1:])
	s.injectQueue = s.injectQueue[:len(s.injectQueue)-1]

	switch evt.kind {
	case synthPress:
		s.MousePress(evt.x, evt.y, evt.buttons, mods)
	case synthRelease:
		s.MouseRelease(evt.x, evt.y, evt.buttons, mods)
	case synthMove:
		s.MouseMove(evt.x, evt.y)
	case synthKeyPress:
		s.KeyPress(evt.key, mods)
	case synthKeyRelease:
		s.KeyRelease(evt.key, mods)
	case synthText:
		s.Text(evt.r)
	}
	return true
}
