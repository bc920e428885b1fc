package wicket

import (
	"os"

	"github.com/hajimehoshi/ebiten/v2"
)

// Stage owns the box tree, the handler stack, input dispatch, and the render
// pass. Coordinates handed to dispatch methods are world coordinates with
// the origin at the bottom-left of the stage.
//
// Boxes push onto the handler stack when they enter the stage and remove
// themselves on exit. Parents enter before their children, so children sit
// nearer the top of the stack and receive events first. Dispatch walks the
// stack top-down until a handler consumes the event.
type Stage struct {
	root          *Box
	width, height float64
	debug         bool

	handlers []*Box

	// Pending work queued from inside a dispatch, drained when the
	// outermost dispatch unwinds. Mutating the handler stack mid-dispatch
	// (SetZTop from a press callback, say) can skip handlers for the rest
	// of the current event; callbacks that need to do that consume the
	// event and queue a re-dispatch instead.
	redispatch    []func()
	dispatchDepth int
	draining      bool

	// One cursor per in-flight dispatch, outermost first. removeHandler
	// shifts them so a walk never re-lands on a handler it already ran.
	dispatchCursors []int

	pressedButtons MouseButton
	lastMods       KeyModifiers
	lastX, lastY   float64

	animations   []*TweenGroup
	scriptRunner *ScriptRunner

	injectQueue []syntheticInputEvent
	keyBuf      []Key
	runeBuf     []rune
	prevCursorX float64
	prevCursorY float64
	cursorSeen  bool

	// ScreenshotDir is where Screenshot writes its PNGs.
	ScreenshotDir   string
	screenshotQueue []string
}

// NewStage creates a stage of the given size with an empty fixed-size root
// box already entered on it.
func NewStage(width, height float64) *Stage {
	s := &Stage{width: width, height: height, ScreenshotDir: "screenshots"}
	s.root = NewBox(BoxDefinition{Width: width, Height: height})
	s.root.enter(s)
	return s
}

// Root returns the stage's root box.
func (s *Stage) Root() *Box { return s.root }

// Width returns the stage width in world units.
func (s *Stage) Width() float64 { return s.width }

// Height returns the stage height in world units.
func (s *Stage) Height() float64 { return s.height }

// Add attaches a box to the root.
func (s *Stage) Add(b *Box) { s.root.Add(b) }

// SetDebugMode enables or disables debug diagnostics for this stage and the
// package-level checks. Enabling dumps the current handler stack to stderr.
func (s *Stage) SetDebugMode(enabled bool) {
	s.debug = enabled
	debugMode = enabled
	if enabled {
		s.debugDumpHandlers(os.Stderr)
	}
}

// pushHandler registers a box for event dispatch. Later pushes get priority.
func (s *Stage) pushHandler(b *Box) {
	s.handlers = append(s.handlers, b)
}

func (s *Stage) removeHandler(b *Box) {
	for i, h := range s.handlers {
		if h == b {
			copy(s.handlers[i:], s.handlers[i+1:])
			s.handlers[len(s.handlers)-1] = nil
			s.handlers = s.handlers[:len(s.handlers)-1]
			// Everything above the removed slot shifted down one. A cursor
			// sitting on the removed slot itself stays put, so the walk's
			// own decrement moves it to the next handler below.
			for k, c := range s.dispatchCursors {
				if c > i {
					s.dispatchCursors[k] = c - 1
				}
			}
			return
		}
	}
}

// dispatchEvent walks the handler stack from the top, invoking fn on each
// handler until one returns EventHandled. Callbacks may remove boxes while
// we iterate; removeHandler keeps the cursor pointed at the handler it just
// ran, so no handler runs twice for one event. Handlers pushed mid-walk land
// above the cursor and are skipped for the rest of the event, which is where
// the mid-dispatch skip hazard comes from.
func (s *Stage) dispatchEvent(fn func(*Box) EventResult) bool {
	s.dispatchDepth++
	cur := len(s.dispatchCursors)
	s.dispatchCursors = append(s.dispatchCursors, len(s.handlers)-1)
	handled := false
	for s.dispatchCursors[cur] >= 0 {
		if fn(s.handlers[s.dispatchCursors[cur]]) == EventHandled {
			handled = true
			break
		}
		s.dispatchCursors[cur]--
	}
	s.dispatchCursors = s.dispatchCursors[:cur]
	s.dispatchDepth--
	if s.dispatchDepth == 0 {
		s.drainRedispatch()
	}
	return handled
}

// RequestRedispatch queues fn to run after the current event dispatch has
// fully unwound. If no dispatch is in flight, fn runs immediately.
func (s *Stage) RequestRedispatch(fn func()) {
	s.redispatch = append(s.redispatch, fn)
	if s.dispatchDepth == 0 {
		s.drainRedispatch()
	}
}

func (s *Stage) drainRedispatch() {
	if s.draining {
		return
	}
	s.draining = true
	for len(s.redispatch) > 0 {
		fn := s.redispatch[0]
		copy(s.redispatch, s.redispatch[1:])
		s.redispatch[len(s.redispatch)-1] = nil
		s.redispatch = s.redispatch[:len(s.redispatch)-1]
		fn()
	}
	s.draining = false
}

// MousePress dispatches a mouse press at world (x, y). The buttons mask may
// carry several buttons at once. Returns whether any handler consumed it.
func (s *Stage) MousePress(x, y float64, buttons MouseButton, mods KeyModifiers) bool {
	s.pressedButtons |= buttons
	s.lastMods = mods
	// Anchor drag deltas at the press point.
	s.lastX, s.lastY = x, y
	return s.dispatchEvent(func(b *Box) EventResult {
		if b.mouse == nil {
			return EventUnhandled
		}
		return b.mouse.handlePress(x, y, buttons, mods)
	})
}

// MouseRelease dispatches a mouse release at world (x, y).
func (s *Stage) MouseRelease(x, y float64, buttons MouseButton, mods KeyModifiers) bool {
	s.lastMods = mods
	handled := s.dispatchEvent(func(b *Box) EventResult {
		if b.mouse == nil {
			return EventUnhandled
		}
		return b.mouse.handleRelease(x, y, buttons, mods)
	})
	s.pressedButtons &^= buttons
	return handled
}

// MouseMove dispatches cursor movement to world (x, y). With a button held
// it becomes a drag event; otherwise hover/unhover/motion.
func (s *Stage) MouseMove(x, y float64) bool {
	dx, dy := x-s.lastX, y-s.lastY
	s.lastX, s.lastY = x, y
	if s.pressedButtons != 0 {
		buttons, mods := s.pressedButtons, s.lastMods
		return s.dispatchEvent(func(b *Box) EventResult {
			if b.mouse == nil {
				return EventUnhandled
			}
			return b.mouse.handleDrag(x, y, dx, dy, buttons, mods)
		})
	}
	return s.dispatchEvent(func(b *Box) EventResult {
		if b.mouse == nil {
			return EventUnhandled
		}
		return b.mouse.handleMotion(x, y, dx, dy)
	})
}

// KeyPress dispatches a key press to keyboard handlers.
func (s *Stage) KeyPress(key Key, mods KeyModifiers) bool {
	s.lastMods = mods
	return s.dispatchEvent(func(b *Box) EventResult {
		if b.keys == nil {
			return EventUnhandled
		}
		return b.keys.handleKeyPress(key, mods)
	})
}

// KeyRelease dispatches a key release to keyboard handlers.
func (s *Stage) KeyRelease(key Key, mods KeyModifiers) bool {
	s.lastMods = mods
	return s.dispatchEvent(func(b *Box) EventResult {
		if b.keys == nil {
			return EventUnhandled
		}
		return b.keys.handleKeyRelease(key, mods)
	})
}

// Text dispatches a typed character to keyboard handlers.
func (s *Stage) Text(r rune) bool {
	return s.dispatchEvent(func(b *Box) EventResult {
		if b.keys == nil {
			return EventUnhandled
		}
		return b.keys.handleText(r)
	})
}

// Animate registers a tween group to be advanced by Update until done.
func (s *Stage) Animate(g *TweenGroup) {
	s.animations = append(s.animations, g)
}

// Update polls input and advances animations. Call once per frame from the
// host game's Update.
func (s *Stage) Update() {
	dt := float32(1.0 / float64(ebiten.TPS()))
	if s.scriptRunner != nil {
		s.scriptRunner.step(s)
	}
	s.processInput()
	s.updateAnimations(dt)
}

func (s *Stage) updateAnimations(dt float32) {
	n := 0
	for _, g := range s.animations {
		if g.Update(dt) {
			continue
		}
		s.animations[n] = g
		n++
	}
	for i := n; i < len(s.animations); i++ {
		s.animations[i] = nil
	}
	s.animations = s.animations[:n]
}
