package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/layout"

	"github.com/ytget/top-destinations/internal/config"
)

// HeaderBar is the opaque title strip docked to the top of the window
type HeaderBar struct {
	background *canvas.Rectangle
	label      *canvas.Text
	content    *fyne.Container
}

// NewHeaderBar builds the header from its config
func NewHeaderBar(cfg config.Header) *HeaderBar {
	h := &HeaderBar{
		background: canvas.NewRectangle(cfg.Background),
		label:      canvas.NewText(cfg.Text, cfg.Foreground),
	}
	h.label.TextStyle = fyne.TextStyle{Bold: true}
	h.label.TextSize = cfg.TextSize
	h.label.Alignment = fyne.TextAlignLeading

	p := cfg.Padding
	padded := container.New(layout.NewCustomPaddedLayout(p.Top, p.Bottom, p.Left, p.Right), h.label)
	h.content = container.NewStack(h.background, padded)
	return h
}

// Container returns the header's canvas object
func (h *HeaderBar) Container() *fyne.Container {
	return h.content
}

// Text returns the header text
func (h *HeaderBar) Text() string {
	return h.label.Text
}
