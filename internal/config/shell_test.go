package config

import (
	"image/color"
	"strings"
	"testing"
)

func TestDefault(t *testing.T) {
	cfg := Default()

	if cfg.Window.Width != 900 || cfg.Window.Height != 750 {
		t.Errorf("Expected 900x750 window, got %vx%v", cfg.Window.Width, cfg.Window.Height)
	}
	if cfg.List.RowHeight != 86 {
		t.Errorf("Expected row height 86, got %v", cfg.List.RowHeight)
	}
	if cfg.Cell.ThumbnailWidth != 120 || cfg.Cell.ThumbnailHeight != 72 {
		t.Errorf("Expected 120x72 thumbnails, got %dx%d", cfg.Cell.ThumbnailWidth, cfg.Cell.ThumbnailHeight)
	}
	if cfg.Cell.Padding != 8 || cfg.Cell.IconTextGap != 12 {
		t.Errorf("Expected padding 8 and gap 12, got %v and %v", cfg.Cell.Padding, cfg.Cell.IconTextGap)
	}

	deepBlue := color.NRGBA{R: 30, G: 64, B: 175, A: 255}
	if cfg.Header.Background.NRGBA != deepBlue {
		t.Errorf("Expected header background %v, got %v", deepBlue, cfg.Header.Background)
	}
	if cfg.Header.Padding != (Insets{Top: 12, Bottom: 12, Left: 16, Right: 16}) {
		t.Errorf("Unexpected header padding %+v", cfg.Header.Padding)
	}
	if cfg.Header.TextSize != 16 {
		t.Errorf("Expected header text size 16, got %v", cfg.Header.TextSize)
	}

	selection := color.NRGBA{R: 199, G: 224, B: 255, A: 255}
	if cfg.List.SelectionBackground.NRGBA != selection {
		t.Errorf("Expected selection background %v, got %v", selection, cfg.List.SelectionBackground)
	}
	if cfg.List.StripeEven.NRGBA != (color.NRGBA{R: 248, G: 250, B: 253, A: 255}) {
		t.Errorf("Unexpected even stripe %v", cfg.List.StripeEven)
	}
	if cfg.List.StripeOdd.NRGBA != (color.NRGBA{R: 255, G: 255, B: 255, A: 255}) {
		t.Errorf("Unexpected odd stripe %v", cfg.List.StripeOdd)
	}
	if !cfg.List.Enabled || cfg.List.RightToLeft {
		t.Error("Default list should be enabled and left-to-right")
	}
}

func TestDefault_Independent(t *testing.T) {
	a := Default()
	a.Window.Title = "changed"

	if Default().Window.Title == "changed" {
		t.Error("Default should return a fresh configuration each call")
	}
}

func TestParse_Overlay(t *testing.T) {
	cfg, err := Parse([]byte("window:\n  title: Custom\nlist:\n  right_to_left: true\n"))
	if err != nil {
		t.Fatalf("Parse failed: %v", err)
	}

	if cfg.Window.Title != "Custom" {
		t.Errorf("Expected title 'Custom', got %s", cfg.Window.Title)
	}
	if !cfg.List.RightToLeft {
		t.Error("Expected right_to_left override to apply")
	}
	// untouched keys keep defaults
	if cfg.Window.Width != 900 || cfg.List.RowHeight != 86 {
		t.Errorf("Defaults not preserved: width=%v rowHeight=%v", cfg.Window.Width, cfg.List.RowHeight)
	}
}

func TestParse_Errors(t *testing.T) {
	tests := []struct {
		name    string
		doc     string
		errPart string
	}{
		{"bad color", "header:\n  background: blue\n", "invalid color"},
		{"bad hex", "header:\n  background: \"#GGGGGG\"\n", "invalid color"},
		{"zero window", "window:\n  width: 0\n", "window size"},
		{"zero row", "list:\n  row_height: 0\n", "row height"},
		{"negative thumb", "cell:\n  thumbnail_width: -1\n", "thumbnail size"},
		{"negative gap", "cell:\n  icon_text_gap: -2\n", "must not be negative"},
		{"not yaml", "window: [", "failed to parse"},
	}

	for _, test := range tests {
		_, err := Parse([]byte(test.doc))
		if err == nil {
			t.Errorf("%s: expected error, got nil", test.name)
			continue
		}
		if !strings.Contains(err.Error(), test.errPart) {
			t.Errorf("%s: error %q should contain %q", test.name, err, test.errPart)
		}
	}
}

func TestParseColor(t *testing.T) {
	tests := []struct {
		input    string
		expected color.NRGBA
	}{
		{"#000000", color.NRGBA{A: 255}},
		{"#1E40AF", color.NRGBA{R: 30, G: 64, B: 175, A: 255}},
		{"c7e0ff", color.NRGBA{R: 199, G: 224, B: 255, A: 255}},
		{"#FFFFFF00", color.NRGBA{R: 255, G: 255, B: 255, A: 0}},
	}

	for _, test := range tests {
		c, err := ParseColor(test.input)
		if err != nil {
			t.Errorf("ParseColor(%s) failed: %v", test.input, err)
			continue
		}
		if c.NRGBA != test.expected {
			t.Errorf("ParseColor(%s) = %v, expected %v", test.input, c.NRGBA, test.expected)
		}
	}

	for _, bad := range []string{"", "#123", "#12345G", "#1234567"} {
		if _, err := ParseColor(bad); err == nil {
			t.Errorf("ParseColor(%q) should fail", bad)
		}
	}
}

func TestColor_String(t *testing.T) {
	c, _ := ParseColor("#1e40af")
	if c.String() != "#1E40AFFF" {
		t.Errorf("Expected #1E40AFFF, got %s", c.String())
	}
}
