package wicket

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/pelletier/go-toml/v2"
)

// HexColor is a Color parsed from a "#RRGGBB" or "#RRGGBBAA" TOML string.
type HexColor Color

// UnmarshalText implements encoding.TextUnmarshaler.
func (h *HexColor) UnmarshalText(text []byte) error {
	s := strings.TrimPrefix(string(text), "#")
	if len(s) != 6 && len(s) != 8 {
		return fmt.Errorf("wicket: invalid hex color %q", string(text))
	}
	v, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return fmt.Errorf("wicket: invalid hex color %q: %w", string(text), err)
	}
	if len(s) == 6 {
		v = v<<8 | 0xff
	}
	h.R = float64(v>>24&0xff) / 255
	h.G = float64(v>>16&0xff) / 255
	h.B = float64(v>>8&0xff) / 255
	h.A = float64(v&0xff) / 255
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (h HexColor) MarshalText() ([]byte, error) {
	to8 := func(v float64) uint64 { return uint64(clamp01(v)*255 + 0.5) }
	if h.A >= 1 {
		return []byte(fmt.Sprintf("#%02x%02x%02x", to8(h.R), to8(h.G), to8(h.B))), nil
	}
	return []byte(fmt.Sprintf("#%02x%02x%02x%02x", to8(h.R), to8(h.G), to8(h.B), to8(h.A))), nil
}

// Color converts back to the package color type.
func (h HexColor) Color() Color { return Color(h) }

// ButtonTheme styles buttons built from a theme.
type ButtonTheme struct {
	BaseColor      HexColor `toml:"base_color"`
	HoverColor     HexColor `toml:"hover_color"`
	DepressedColor HexColor `toml:"depressed_color"`
	TextColor      HexColor `toml:"text_color"`
	TextPadding    float64  `toml:"text_padding"`
}

// WindowTheme styles windows built from a theme.
type WindowTheme struct {
	TitleBarColor  HexColor `toml:"title_bar_color"`
	BodyColor      HexColor `toml:"body_color"`
	TitleBarHeight float64  `toml:"title_bar_height"`
	ButtonSpacing  float64  `toml:"button_spacing"`
	Padding        float64  `toml:"padding"`
}

// SliderTheme styles sliders built from a theme.
type SliderTheme struct {
	HandleColor HexColor `toml:"handle_color"`
	ButtonColor HexColor `toml:"button_color"`
	HoverColor  HexColor `toml:"hover_color"`
}

// Theme is a TOML-loadable set of widget style defaults.
type Theme struct {
	Button ButtonTheme `toml:"button"`
	Window WindowTheme `toml:"window"`
	Slider SliderTheme `toml:"slider"`
}

// DefaultTheme returns the built-in widget colors.
func DefaultTheme() *Theme {
	return &Theme{
		Button: ButtonTheme{
			BaseColor:      HexColor(ButtonBlue),
			HoverColor:     HexColor{R: 0.2, G: 0.56, B: 1, A: 1},
			DepressedColor: HexColor{R: 0, G: 0.3, B: 0.7, A: 1},
			TextColor:      HexColor(ColorWhite),
			TextPadding:    4,
		},
		Window: WindowTheme{
			TitleBarColor: HexColor(WindowTitleBarBlue),
			BodyColor:     HexColor(WindowBodyGrey),
			ButtonSpacing: 2,
			Padding:       15,
		},
		Slider: SliderTheme{
			HandleColor: HexColor(SliderDarkGrey),
			ButtonColor: HexColor(SliderLightGrey),
			HoverColor:  HexColor(SliderGrey),
		},
	}
}

// ParseTheme decodes a theme from TOML. Fields absent from the document
// keep the default theme's values.
func ParseTheme(data []byte) (*Theme, error) {
	theme := DefaultTheme()
	if err := toml.Unmarshal(data, theme); err != nil {
		return nil, fmt.Errorf("parse theme: %w", err)
	}
	return theme, nil
}

// Encode renders the theme as TOML.
func (t *Theme) Encode() ([]byte, error) {
	data, err := toml.Marshal(t)
	if err != nil {
		return nil, fmt.Errorf("encode theme: %w", err)
	}
	return data, nil
}

// ButtonDefinition builds a button definition in this theme's style.
func (t *Theme) ButtonDefinition(text string) ButtonDefinition {
	hover := t.Button.HoverColor.Color()
	depressed := t.Button.DepressedColor.Color()
	return ButtonDefinition{
		Text:           text,
		TextColor:      t.Button.TextColor.Color(),
		TextPadding:    t.Button.TextPadding,
		BaseColor:      t.Button.BaseColor.Color(),
		HoverColor:     &hover,
		DepressedColor: &depressed,
	}
}

// WindowDefinition builds a window definition in this theme's style.
func (t *Theme) WindowDefinition(title string) WindowDefinition {
	body := t.Window.BodyColor.Color()
	return WindowDefinition{
		BoxDefinition: BoxDefinition{
			Width:           DynamicSize,
			Height:          DynamicSize,
			BackgroundColor: &body,
		},
		Title:                 title,
		TitleBarHeight:        t.Window.TitleBarHeight,
		TitleBarButtonSpacing: t.Window.ButtonSpacing,
		TitleBarColor:         t.Window.TitleBarColor.Color(),
		Padding:               t.Window.Padding,
	}
}

// SliderButtonStyle builds the slider button style for this theme.
func (t *Theme) SliderButtonStyle() ButtonDefinition {
	hover := t.Slider.HoverColor.Color()
	depressed := t.Slider.HandleColor.Color()
	return ButtonDefinition{
		BaseColor:      t.Slider.ButtonColor.Color(),
		HoverColor:     &hover,
		DepressedColor: &depressed,
	}
}
