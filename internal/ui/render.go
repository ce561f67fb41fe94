package ui

import (
	"image"
	"image/color"

	"fyne.io/fyne/v2"

	"github.com/ytget/top-destinations/internal/config"
	"github.com/ytget/top-destinations/internal/model"
)

// ListStyle is the list-wide styling a row is rendered with
type ListStyle struct {
	Foreground          color.Color
	DisabledForeground  color.Color
	SelectionBackground color.Color
	SelectionForeground color.Color
	FocusBorder         color.Color
	StripeEven          color.Color
	StripeOdd           color.Color
	DescriptionColor    color.Color

	TextStyle           fyne.TextStyle // list font
	TitleTextSize       float32
	DescriptionTextSize float32

	Padding     float32
	IconTextGap float32
	Enabled     bool
	RightToLeft bool
}

// NewListStyle derives the list styling from the shell config
func NewListStyle(cfg *config.Shell) ListStyle {
	return ListStyle{
		Foreground:          cfg.List.Foreground,
		DisabledForeground:  cfg.List.DisabledForeground,
		SelectionBackground: cfg.List.SelectionBackground,
		SelectionForeground: cfg.List.SelectionForeground,
		FocusBorder:         cfg.List.FocusBorder,
		StripeEven:          cfg.List.StripeEven,
		StripeOdd:           cfg.List.StripeOdd,
		DescriptionColor:    cfg.Cell.DescriptionColor,
		TitleTextSize:       cfg.Cell.TitleTextSize,
		DescriptionTextSize: cfg.Cell.DescriptionTextSize,
		Padding:             cfg.Cell.Padding,
		IconTextGap:         cfg.Cell.IconTextGap,
		Enabled:             cfg.List.Enabled,
		RightToLeft:         cfg.List.RightToLeft,
	}
}

// TextLine is a styled line of a cell's text block
type TextLine struct {
	Text  string
	Style fyne.TextStyle
	Size  float32
	Color color.Color
}

// VisualCell is everything needed to draw one row
type VisualCell struct {
	Lines []TextLine
	Image image.Image

	Background  color.Color
	Foreground  color.Color
	BorderColor color.Color // transparent for the empty border
	BorderWidth float32
	Padding     float32 // inside the border, all sides
	IconTextGap float32

	Enabled     bool
	RightToLeft bool
}

// Inset is the distance from the cell edge to its content
func (v VisualCell) Inset() float32 {
	return v.BorderWidth + v.Padding
}

// RenderCell computes the visual state of row at index. It depends only on
// its arguments.
func RenderCell(row model.Row, index int, selected, focused bool, style ListStyle) VisualCell {
	v := VisualCell{
		Image:       row.Image,
		BorderColor: color.Transparent,
		BorderWidth: CellBorderWidth,
		Padding:     style.Padding,
		IconTextGap: style.IconTextGap,
		Enabled:     style.Enabled,
		RightToLeft: style.RightToLeft,
	}

	switch {
	case selected:
		v.Background = style.SelectionBackground
		v.Foreground = style.SelectionForeground
	case index%2 == 0:
		v.Background = style.StripeEven
		v.Foreground = style.Foreground
	default:
		v.Background = style.StripeOdd
		v.Foreground = style.Foreground
	}

	if focused {
		v.BorderColor = style.FocusBorder
	}

	for _, ml := range parseMarkup(row.Markup) {
		line := TextLine{
			Text:  ml.Text,
			Style: style.TextStyle,
			Size:  style.TitleTextSize,
			Color: v.Foreground,
		}
		line.Style.Bold = line.Style.Bold || ml.Bold
		if ml.Class == model.ClassDescription {
			line.Size = style.DescriptionTextSize
			line.Color = style.DescriptionColor
		}
		if !style.Enabled {
			line.Color = style.DisabledForeground
		}
		v.Lines = append(v.Lines, line)
	}

	return v
}
