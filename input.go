package wicket

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

// readModifiers reads the current keyboard modifier state.
func readModifiers() KeyModifiers {
	var mods KeyModifiers
	if ebiten.IsKeyPressed(ebiten.KeyShift) || ebiten.IsKeyPressed(ebiten.KeyShiftLeft) || ebiten.IsKeyPressed(ebiten.KeyShiftRight) {
		mods |= ModShift
	}
	if ebiten.IsKeyPressed(ebiten.KeyControl) || ebiten.IsKeyPressed(ebiten.KeyControlLeft) || ebiten.IsKeyPressed(ebiten.KeyControlRight) {
		mods |= ModCtrl
	}
	if ebiten.IsKeyPressed(ebiten.KeyAlt) || ebiten.IsKeyPressed(ebiten.KeyAltLeft) || ebiten.IsKeyPressed(ebiten.KeyAltRight) {
		mods |= ModAlt
	}
	if ebiten.IsKeyPressed(ebiten.KeyMeta) || ebiten.IsKeyPressed(ebiten.KeyMetaLeft) || ebiten.IsKeyPressed(ebiten.KeyMetaRight) {
		mods |= ModMeta
	}
	return mods
}

var pollableButtons = [...]struct {
	ebiten ebiten.MouseButton
	mask   MouseButton
}{
	{ebiten.MouseButtonLeft, MouseButtonLeft},
	{ebiten.MouseButtonRight, MouseButtonRight},
	{ebiten.MouseButtonMiddle, MouseButtonMiddle},
}

// processInput polls real Ebitengine input and feeds it through the dispatch
// methods. Called from Stage.Update. Screen Y grows downward; world Y grows
// upward, so the cursor position is flipped against the stage height here,
// once.
func (s *Stage) processInput() {
	mods := readModifiers()

	if s.processInjectedInput(mods) {
		return
	}

	mx, my := ebiten.CursorPosition()
	x := float64(mx)
	y := s.height - float64(my)

	for _, pb := range pollableButtons {
		if inpututil.IsMouseButtonJustPressed(pb.ebiten) {
			s.MousePress(x, y, pb.mask, mods)
		}
		if inpututil.IsMouseButtonJustReleased(pb.ebiten) {
			s.MouseRelease(x, y, pb.mask, mods)
		}
	}

	if !s.cursorSeen {
		s.cursorSeen = true
		s.prevCursorX, s.prevCursorY = x, y
		s.lastX, s.lastY = x, y
	} else if x != s.prevCursorX || y != s.prevCursorY {
		s.prevCursorX, s.prevCursorY = x, y
		s.MouseMove(x, y)
	}

	s.keyBuf = inpututil.AppendJustPressedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.KeyPress(k, mods)
	}
	s.keyBuf = inpututil.AppendJustReleasedKeys(s.keyBuf[:0])
	for _, k := range s.keyBuf {
		s.KeyRelease(k, mods)
	}

	s.runeBuf = ebiten.AppendInputChars(s.runeBuf[:0])
	for _, r := range s.runeBuf {
		s.Text(r)
	}
}
