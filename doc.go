// Package wicket is a retained-mode widget layer for [Ebitengine].
//
// Wicket provides the box tree, mouse and keyboard event routing, focus
// handling, drag and snap behaviour, layout containers, rubber-band
// selection, and a small set of widgets (buttons, windows, sliders) that a
// tool or game UI needs.
//
// # Quick start
//
// Create a [Stage], add boxes to its root, and drive it from an
// [ebiten.Game]:
//
//	stage := wicket.NewStage(1280, 720)
//	button := wicket.NewButton(wicket.ButtonDefinition{Text: "Start"})
//	stage.Add(button.Box)
//
//	type Game struct{ stage *wicket.Stage }
//
//	func (g *Game) Update() error              { g.stage.Update(); return nil }
//	func (g *Game) Draw(screen *ebiten.Image)  { g.stage.Draw(screen) }
//	func (g *Game) Layout(w, h int) (int, int) { return w, h }
//
// # Box tree
//
// Every widget is built on a [Box]: a node with a local position, z-ordered
// children, and a sizing protocol. A box's width and height are either
// fixed by its [BoxDefinition] or dynamic, in which case the box grows to
// fit its children or matches its parent per [DynamicSizeBehaviour].
// Coordinates are Y-up with the origin at a box's bottom-left; the stage
// flips to screen space once, at the input and draw boundaries.
//
// # Events
//
// Mouse and keyboard events route through a last-registered-first handler
// stack. Handlers return an [EventResult]: for presses, releases and drags
// a callback with no opinion consumes the event, and only an explicit
// [EventUnhandled] lets it propagate; hovering and motion propagate unless
// explicitly handled.
//
// [Ebitengine]: https://ebitengine.org
package wicket
