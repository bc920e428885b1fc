package wicket

import "math"

// Orientation of a Slider.
type Orientation uint8

const (
	Vertical Orientation = iota
	Horizontal
)

// Default slider widget colors.
var (
	SliderLightGrey = Color{R: 0.7, G: 0.7, B: 0.7, A: 1}
	SliderGrey      = Color{R: 0.5, G: 0.5, B: 0.5, A: 1}
	SliderDarkGrey  = Color{R: 0.3, G: 0.3, B: 0.3, A: 1}
)

// DefaultSliderButtonStyle returns the grey style used for slider buttons
// when the definition does not supply one.
func DefaultSliderButtonStyle() ButtonDefinition {
	depressed := SliderDarkGrey
	hover := SliderGrey
	return ButtonDefinition{
		BaseColor:      SliderLightGrey,
		HoverColor:     &hover,
		DepressedColor: &depressed,
	}
}

// SliderDefinition describes a slider picking a value in [Minimum, Maximum].
//
// Increment is the step applied by the increment/decrement buttons; dragging
// the handle is continuous unless Graduations lists the allowed values, in
// which case the slider snaps to the closest one. The definition must give
// the slider a fixed size.
type SliderDefinition struct {
	BoxDefinition
	Minimum     float64
	Maximum     float64
	Increment   float64
	Graduations []float64
	OnChange    func(value float64)
	Orientation Orientation

	// ButtonStyle styles the increment/decrement buttons; its text fields
	// are ignored. Nil means DefaultSliderButtonStyle.
	ButtonStyle *ButtonDefinition

	// Button labels; empty means arrows matching the orientation.
	IncrementText string
	DecrementText string
}

func (def SliderDefinition) validateSlider() {
	if def.isDynamic() {
		panic("wicket: slider requires a fixed size")
	}
	if def.Minimum >= def.Maximum {
		panic("wicket: slider minimum must be less than maximum")
	}
	for _, g := range def.Graduations {
		if g < def.Minimum || g > def.Maximum {
			panic("wicket: slider graduation outside value range")
		}
	}
}

func (def SliderDefinition) valueRange() float64 { return def.Maximum - def.Minimum }

func (def SliderDefinition) incrementText() string {
	if def.IncrementText != "" {
		return def.IncrementText
	}
	if def.Orientation == Horizontal {
		return ">"
	}
	return "^"
}

func (def SliderDefinition) decrementText() string {
	if def.DecrementText != "" {
		return def.DecrementText
	}
	if def.Orientation == Horizontal {
		return "<"
	}
	return "v"
}

// Slider sets and displays a value via a draggable handle between an
// increment and a decrement button.
type Slider struct {
	*Box

	sliderDef SliderDefinition

	incrementButton *Button
	decrementButton *Button
	handle          *DraggableBox

	value float64
	// Handle travel along the slider axis, recomputed on resize.
	minPosition, maxTravel float64
}

// NewSlider creates a slider. Panics on an invalid definition.
func NewSlider(def SliderDefinition) *Slider {
	def.BoxDefinition.validate()
	def.validateSlider()
	if def.Increment == 0 {
		def.Increment = def.valueRange() / 10
	}
	s := &Slider{
		Box:       NewBox(def.BoxDefinition),
		sliderDef: def,
		value:     def.Minimum,
	}

	style := DefaultSliderButtonStyle()
	if def.ButtonStyle != nil {
		style = *def.ButtonStyle
	}
	// Buttons and handle are square, matching the slider's cross size.
	side := s.width
	if def.Orientation == Horizontal {
		side = s.height
	}

	inc := style
	inc.Text = def.incrementText()
	inc.Width, inc.Height = side, side
	inc.OnPress = func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
		s.IncrementValue()
		return EventHandled
	}
	s.incrementButton = NewButton(inc)
	s.AddNoResize(s.incrementButton.Box)
	s.incrementButton.AlignAnchorWithOtherAnchor(s.Box, RightTop, RightTop, 0)

	dec := style
	dec.Text = def.decrementText()
	dec.Width, dec.Height = side, side
	dec.OnPress = func(*MouseBox, float64, float64, MouseButton, KeyModifiers) EventResult {
		s.DecrementValue()
		return EventHandled
	}
	s.decrementButton = NewButton(dec)
	s.AddNoResize(s.decrementButton.Box)
	s.decrementButton.AlignAnchorWithOtherAnchor(s.Box, LeftBottom, LeftBottom, 0)

	handleColor := style.BaseColor
	if style.DepressedColor != nil {
		handleColor = *style.DepressedColor
	}
	s.handle = NewDraggableBox(DraggableBoxDefinition{
		MouseBoxDefinition: MouseBoxDefinition{
			BoxDefinition: BoxDefinition{
				Width:           side,
				Height:          side,
				BackgroundColor: &handleColor,
			},
			OnDrag: s.readHandlePosition,
		},
		BoundingBox: s.Box,
	})
	s.AddNoResize(s.handle.Box)

	s.sizeHooks = append(s.sizeHooks, s.recalibrate)
	s.recalibrate()
	return s
}

// SliderDefinition returns the slider's definition.
func (s *Slider) SliderDefinition() SliderDefinition { return s.sliderDef }

// Handle returns the draggable value indicator.
func (s *Slider) Handle() *DraggableBox { return s.handle }

// Value returns the slider's current value.
func (s *Slider) Value() float64 { return s.value }

// SetValue sets the slider's value, clamped to the range and snapped to the
// nearest graduation, then moves the handle to match. OnChange fires even
// when clamping brings the value back to where it was.
func (s *Slider) SetValue(value float64) {
	value = math.Max(s.sliderDef.Minimum, math.Min(s.sliderDef.Maximum, value))
	if len(s.sliderDef.Graduations) > 0 {
		nearest := s.sliderDef.Graduations[0]
		for _, g := range s.sliderDef.Graduations[1:] {
			if math.Abs(value-g) < math.Abs(value-nearest) {
				nearest = g
			}
		}
		value = nearest
	}
	s.value = value
	if s.sliderDef.OnChange != nil {
		s.sliderDef.OnChange(value)
	}
	s.updateHandlePosition()
}

// IncrementValue raises the value by the defined increment.
func (s *Slider) IncrementValue() float64 {
	s.SetValue(s.value + s.sliderDef.Increment)
	return s.value
}

// DecrementValue lowers the value by the defined increment.
func (s *Slider) DecrementValue() float64 {
	s.SetValue(s.value - s.sliderDef.Increment)
	return s.value
}

// recalibrate recomputes the handle's travel bounds after a resize, keeping
// the displayed value unchanged.
func (s *Slider) recalibrate() {
	if s.sliderDef.Orientation == Vertical {
		s.minPosition = s.decrementButton.height
		s.maxTravel = s.height - s.incrementButton.height - s.decrementButton.height - s.handle.height
	} else {
		s.minPosition = s.decrementButton.width
		s.maxTravel = s.width - s.incrementButton.width - s.decrementButton.width - s.handle.width
	}
	s.updateHandlePosition()
}

// readHandlePosition converts the dragged handle position back to a value.
func (s *Slider) readHandlePosition(*MouseBox, float64, float64, float64, float64, MouseButton, KeyModifiers) EventResult {
	if s.maxTravel <= 0 {
		return EventHandled
	}
	position := s.handle.Y
	if s.sliderDef.Orientation == Horizontal {
		position = s.handle.X
	}
	ratio := (position - s.minPosition) / s.maxTravel
	s.SetValue(s.sliderDef.Minimum + ratio*s.sliderDef.valueRange())
	return EventHandled
}

// updateHandlePosition is the inverse of readHandlePosition.
func (s *Slider) updateHandlePosition() {
	ratio := (s.value - s.sliderDef.Minimum) / s.sliderDef.valueRange()
	position := s.minPosition + ratio*math.Max(s.maxTravel, 0)
	if s.sliderDef.Orientation == Vertical {
		s.handle.Y = position
	} else {
		s.handle.X = position
	}
}
