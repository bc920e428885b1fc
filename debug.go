package wicket

import (
	"fmt"
	"io"
	"os"
)

// debugMode enables developer diagnostics package-wide. Toggled via
// Stage.SetDebugMode.
var debugMode bool

// debugCheckTree runs sanity checks on a box after a tree mutation. No-op
// unless debug mode is on.
func debugCheckTree(b *Box) {
	if !debugMode {
		return
	}
	debugCheckTreeDepth(b)
	debugCheckChildCount(b)
	debugCheckZOrder(b)
}

// debugCheckTreeDepth warns on stderr if tree depth exceeds the threshold.
const debugMaxTreeDepth = 32

func debugCheckTreeDepth(b *Box) {
	depth := 0
	for p := b; p != nil; p = p.parent {
		depth++
	}
	if depth > debugMaxTreeDepth {
		_, _ = fmt.Fprintf(os.Stderr, "[wicket] warning: tree depth %d exceeds %d\n",
			depth, debugMaxTreeDepth)
	}
}

// debugCheckChildCount warns on stderr if a box has more than 1000 children.
const debugMaxChildCount = 1000

func debugCheckChildCount(b *Box) {
	if len(b.children) > debugMaxChildCount {
		_, _ = fmt.Fprintf(os.Stderr, "[wicket] warning: box has %d children (threshold %d)\n",
			len(b.children), debugMaxChildCount)
	}
}

// debugCheckZOrder panics if the child slice is not sorted by z. The insert
// paths maintain this invariant; a violation means a direct mutation.
func debugCheckZOrder(b *Box) {
	for i := 1; i < len(b.children); i++ {
		if b.children[i-1].z > b.children[i].z {
			panic(fmt.Sprintf("wicket debug: children out of z-order at index %d (%d > %d)",
				i, b.children[i-1].z, b.children[i].z))
		}
	}
}

// debugDumpHandlers writes the stage's handler stack, top first, in dispatch
// order. SetDebugMode dumps it to stderr when diagnostics are switched on.
func (s *Stage) debugDumpHandlers(w io.Writer) {
	_, _ = fmt.Fprintf(w, "[wicket] handler stack (%d, top first):\n", len(s.handlers))
	for i := len(s.handlers) - 1; i >= 0; i-- {
		h := s.handlers[i]
		kind := "keys"
		if h.mouse != nil {
			kind = "mouse"
		}
		_, _ = fmt.Fprintf(w, "[wicket]   %2d: %s box %.0fx%.0f at (%.0f, %.0f)\n",
			len(s.handlers)-1-i, kind, h.width, h.height, h.X, h.Y)
	}
}
