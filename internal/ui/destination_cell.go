package ui

import (
	"image/color"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/widget"
)

// DestinationCell is the reusable widget a VisualCell is drawn into. The list
// keeps one per visible row and re-applies styling as rows scroll by.
type DestinationCell struct {
	widget.BaseWidget

	visual    VisualCell
	rowHeight float32
	thumbSize fyne.Size
}

// NewDestinationCell creates an empty cell of fixed height with room for a
// thumbnail of thumbSize
func NewDestinationCell(rowHeight float32, thumbSize fyne.Size) *DestinationCell {
	c := &DestinationCell{
		rowHeight: rowHeight,
		thumbSize: thumbSize,
		visual: VisualCell{
			Background:  color.Transparent,
			Foreground:  color.Transparent,
			BorderColor: color.Transparent,
			BorderWidth: CellBorderWidth,
		},
	}
	c.ExtendBaseWidget(c)
	return c
}

// Apply replaces the cell's visual state and redraws it
func (c *DestinationCell) Apply(v VisualCell) {
	c.visual = v
	c.Refresh()
}

// Visual returns the visual state last applied
func (c *DestinationCell) Visual() VisualCell {
	return c.visual
}

// CreateRenderer creates the widget renderer
func (c *DestinationCell) CreateRenderer() fyne.WidgetRenderer {
	r := &destinationCellRenderer{
		cell:   c,
		bg:     canvas.NewRectangle(color.Transparent),
		border: canvas.NewRectangle(color.Transparent),
		thumb:  canvas.NewImageFromImage(nil),
	}
	r.border.StrokeWidth = CellBorderWidth
	r.thumb.FillMode = canvas.ImageFillStretch
	r.thumb.ScaleMode = canvas.ImageScaleSmooth
	r.thumb.SetMinSize(c.thumbSize)
	r.sync()
	return r
}

// destinationCellRenderer renders a DestinationCell
type destinationCellRenderer struct {
	cell *DestinationCell

	bg     *canvas.Rectangle
	border *canvas.Rectangle
	thumb  *canvas.Image
	lines  []*canvas.Text

	objects []fyne.CanvasObject
}

// sync copies the cell's visual state into the canvas objects
func (r *destinationCellRenderer) sync() {
	v := r.cell.visual

	r.bg.FillColor = v.Background
	r.border.StrokeColor = v.BorderColor
	r.border.StrokeWidth = v.BorderWidth
	r.thumb.Image = v.Image
	r.thumb.Translucency = 0
	if !v.Enabled {
		r.thumb.Translucency = DisabledThumbTranslucency
	}

	for len(r.lines) < len(v.Lines) {
		r.lines = append(r.lines, canvas.NewText("", color.Transparent))
	}
	r.lines = r.lines[:len(v.Lines)]
	for i, l := range v.Lines {
		t := r.lines[i]
		t.Text = l.Text
		t.TextStyle = l.Style
		t.TextSize = l.Size
		t.Color = l.Color
		if v.RightToLeft {
			t.Alignment = fyne.TextAlignTrailing
		} else {
			t.Alignment = fyne.TextAlignLeading
		}
	}

	objects := make([]fyne.CanvasObject, 0, len(r.lines)+3)
	objects = append(objects, r.bg, r.thumb)
	for _, t := range r.lines {
		objects = append(objects, t)
	}
	r.objects = append(objects, r.border)
}

// Layout arranges the components
func (r *destinationCellRenderer) Layout(size fyne.Size) {
	v := r.cell.visual
	inset := v.Inset()
	thumb := r.cell.thumbSize

	r.bg.Move(fyne.NewPos(0, 0))
	r.bg.Resize(size)
	r.border.Move(fyne.NewPos(0, 0))
	r.border.Resize(size)

	thumbX := inset
	textX := inset + thumb.Width + v.IconTextGap
	textW := size.Width - textX - inset
	if v.RightToLeft {
		thumbX = size.Width - inset - thumb.Width
		textX = inset
	}
	if textW < 0 {
		textW = 0
	}

	r.thumb.Move(fyne.NewPos(thumbX, (size.Height-thumb.Height)/2))
	r.thumb.Resize(thumb)

	textH := r.textHeight()
	y := (size.Height - textH) / 2
	for _, t := range r.lines {
		h := t.MinSize().Height
		t.Move(fyne.NewPos(textX, y))
		t.Resize(fyne.NewSize(textW, h))
		y += h + TextLineSpacing
	}
}

func (r *destinationCellRenderer) textHeight() float32 {
	var h float32
	for i, t := range r.lines {
		if i > 0 {
			h += TextLineSpacing
		}
		h += t.MinSize().Height
	}
	return h
}

// MinSize returns the minimum size; the height is always the row height
func (r *destinationCellRenderer) MinSize() fyne.Size {
	v := r.cell.visual
	var textW float32
	for _, t := range r.lines {
		if w := t.MinSize().Width; w > textW {
			textW = w
		}
	}
	width := 2*v.Inset() + r.cell.thumbSize.Width + v.IconTextGap + textW
	return fyne.NewSize(width, r.cell.rowHeight)
}

// Refresh refreshes the renderer
func (r *destinationCellRenderer) Refresh() {
	r.sync()
	r.Layout(r.cell.Size())
	canvas.Refresh(r.cell)
}

// Objects returns the canvas objects
func (r *destinationCellRenderer) Objects() []fyne.CanvasObject {
	return r.objects
}

// Destroy cleans up the renderer
func (r *destinationCellRenderer) Destroy() {}
