package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/theme"

	"github.com/ytget/top-destinations/internal/config"
)

// DestinationTheme is a light theme whose colors come from the shell config
type DestinationTheme struct {
	cfg *config.Shell
}

// NewDestinationTheme creates a theme for cfg
func NewDestinationTheme(cfg *config.Shell) fyne.Theme {
	return &DestinationTheme{cfg: cfg}
}

// Color returns theme colors
func (t *DestinationTheme) Color(name fyne.ThemeColorName, variant fyne.ThemeVariant) color.Color {
	list := t.cfg.List
	switch name {
	case theme.ColorNamePrimary:
		return t.cfg.Header.Background // deep blue, shared with the header bar
	case theme.ColorNameBackground:
		return list.Background
	case theme.ColorNameForeground:
		return list.Foreground
	case theme.ColorNameDisabled:
		return list.DisabledForeground
	case theme.ColorNameSelection:
		return list.SelectionBackground
	case theme.ColorNameFocus:
		return list.FocusBorder
	case theme.ColorNameHover:
		return color.Transparent // rows paint their own background
	}

	// The shell is always light
	return theme.DefaultTheme().Color(name, theme.VariantLight)
}

// Font returns theme fonts
func (t *DestinationTheme) Font(style fyne.TextStyle) fyne.Resource {
	return theme.DefaultTheme().Font(style)
}

// Icon returns theme icons
func (t *DestinationTheme) Icon(name fyne.ThemeIconName) fyne.Resource {
	return theme.DefaultTheme().Icon(name)
}

// Size returns theme sizes
func (t *DestinationTheme) Size(name fyne.ThemeSizeName) float32 {
	switch name {
	case theme.SizeNameInnerPadding:
		return 0 // cells carry their own padding
	case theme.SizeNameSeparatorThickness:
		return 0 // striped rows, no separators
	case theme.SizeNameText:
		return t.cfg.Cell.TitleTextSize
	case theme.SizeNameHeadingText:
		return t.cfg.Header.TextSize
	case theme.SizeNameCaptionText:
		return t.cfg.Cell.DescriptionTextSize
	case theme.SizeNameSelectionRadius:
		return 0
	}

	return theme.DefaultTheme().Size(name)
}
