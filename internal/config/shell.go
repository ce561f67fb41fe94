package config

import (
	_ "embed"
	"errors"
	"fmt"
	"image/color"
	"strconv"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed defaults.yaml
var defaultsYAML []byte

// Color is an RGBA color written as "#RRGGBB" or "#RRGGBBAA" in YAML
type Color struct {
	color.NRGBA
}

// ParseColor parses a hex color string
func ParseColor(s string) (Color, error) {
	hex := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(hex) != 6 && len(hex) != 8 {
		return Color{}, fmt.Errorf("invalid color %q: expected #RRGGBB or #RRGGBBAA", s)
	}
	if len(hex) == 6 {
		hex += "ff"
	}
	v, err := strconv.ParseUint(hex, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid color %q: %w", s, err)
	}
	return Color{color.NRGBA{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}}, nil
}

// String returns the color as "#RRGGBBAA"
func (c Color) String() string {
	return fmt.Sprintf("#%02X%02X%02X%02X", c.R, c.G, c.B, c.A)
}

// UnmarshalYAML implements yaml.Unmarshaler
func (c *Color) UnmarshalYAML(node *yaml.Node) error {
	var s string
	if err := node.Decode(&s); err != nil {
		return err
	}
	parsed, err := ParseColor(s)
	if err != nil {
		return fmt.Errorf("line %d: %w", node.Line, err)
	}
	*c = parsed
	return nil
}

// Insets are paddings in pixels
type Insets struct {
	Top    float32 `yaml:"top"`
	Bottom float32 `yaml:"bottom"`
	Left   float32 `yaml:"left"`
	Right  float32 `yaml:"right"`
}

// Window geometry
type Window struct {
	Title  string  `yaml:"title"`
	Width  float32 `yaml:"width"`
	Height float32 `yaml:"height"`
}

// Header bar appearance
type Header struct {
	Text       string  `yaml:"text"`
	Background Color   `yaml:"background"`
	Foreground Color   `yaml:"foreground"`
	TextSize   float32 `yaml:"text_size"`
	Padding    Insets  `yaml:"padding"`
}

// List holds the list-wide styling that row rendering draws from
type List struct {
	Background          Color   `yaml:"background"`
	Foreground          Color   `yaml:"foreground"`
	DisabledForeground  Color   `yaml:"disabled_foreground"`
	SelectionBackground Color   `yaml:"selection_background"`
	SelectionForeground Color   `yaml:"selection_foreground"`
	FocusBorder         Color   `yaml:"focus_border"`
	StripeEven          Color   `yaml:"stripe_even"`
	StripeOdd           Color   `yaml:"stripe_odd"`
	RowHeight           float32 `yaml:"row_height"`
	Enabled             bool    `yaml:"enabled"`
	RightToLeft         bool    `yaml:"right_to_left"`
}

// Cell holds the per-row layout constants
type Cell struct {
	Padding             float32 `yaml:"padding"`
	IconTextGap         float32 `yaml:"icon_text_gap"`
	ThumbnailWidth      int     `yaml:"thumbnail_width"`
	ThumbnailHeight     int     `yaml:"thumbnail_height"`
	TitleTextSize       float32 `yaml:"title_text_size"`
	DescriptionTextSize float32 `yaml:"description_text_size"`
	DescriptionColor    Color   `yaml:"description_color"`
}

// Shell is the complete configuration of the window shell. It is passed
// explicitly to the theme and the UI instead of living in global state.
type Shell struct {
	Window Window `yaml:"window"`
	Header Header `yaml:"header"`
	List   List   `yaml:"list"`
	Cell   Cell   `yaml:"cell"`
}

// Default returns the built-in configuration
func Default() *Shell {
	cfg, err := parse(defaultsYAML, &Shell{})
	if err != nil {
		panic(fmt.Sprintf("config: embedded defaults are invalid: %v", err))
	}
	return cfg
}

// Parse overlays a YAML document on top of the defaults. Keys missing from
// data keep their default values.
func Parse(data []byte) (*Shell, error) {
	return parse(data, Default())
}

func parse(data []byte, base *Shell) (*Shell, error) {
	if err := yaml.Unmarshal(data, base); err != nil {
		return nil, fmt.Errorf("failed to parse shell config: %w", err)
	}
	if err := base.Validate(); err != nil {
		return nil, err
	}
	return base, nil
}

// Validate checks that all sizes are usable
func (s *Shell) Validate() error {
	var errs []error
	if s.Window.Width <= 0 || s.Window.Height <= 0 {
		errs = append(errs, fmt.Errorf("window size must be positive, got %vx%v", s.Window.Width, s.Window.Height))
	}
	if s.List.RowHeight <= 0 {
		errs = append(errs, fmt.Errorf("row height must be positive, got %v", s.List.RowHeight))
	}
	if s.Cell.ThumbnailWidth <= 0 || s.Cell.ThumbnailHeight <= 0 {
		errs = append(errs, fmt.Errorf("thumbnail size must be positive, got %dx%d", s.Cell.ThumbnailWidth, s.Cell.ThumbnailHeight))
	}
	if s.Cell.Padding < 0 || s.Cell.IconTextGap < 0 {
		errs = append(errs, errors.New("cell padding and gap must not be negative"))
	}
	if len(errs) > 0 {
		return fmt.Errorf("invalid shell config: %w", errors.Join(errs...))
	}
	return nil
}
