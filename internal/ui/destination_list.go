package ui

import (
	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/widget"

	"github.com/ytget/top-destinations/internal/model"
)

// DestinationList is a widget.List over a fixed set of destination rows. It
// tracks the selected row and keyboard focus so every row can be styled by
// RenderCell.
type DestinationList struct {
	widget.List

	rows      []model.Row
	style     ListStyle
	rowHeight float32
	thumbSize fyne.Size

	selected widget.ListItemID
	focused  bool
}

// NewDestinationList creates the list. rows are not copied and must not be
// modified afterwards.
func NewDestinationList(rows []model.Row, style ListStyle, rowHeight float32, thumbSize fyne.Size) *DestinationList {
	l := &DestinationList{
		rows:      rows,
		style:     style,
		rowHeight: rowHeight,
		thumbSize: thumbSize,
		selected:  noSelection,
	}

	l.Length = func() int {
		return len(l.rows)
	}
	l.CreateItem = func() fyne.CanvasObject {
		return NewDestinationCell(l.rowHeight, l.thumbSize)
	}
	l.UpdateItem = func(id widget.ListItemID, obj fyne.CanvasObject) {
		if cell, ok := obj.(*DestinationCell); ok {
			cell.Apply(l.CellFor(id))
		}
	}
	l.OnSelected = func(id widget.ListItemID) {
		l.selected = id
		l.Refresh()
	}
	l.OnUnselected = func(id widget.ListItemID) {
		if l.selected == id {
			l.selected = noSelection
		}
		l.Refresh()
	}

	l.ExtendBaseWidget(l)
	for id := range rows {
		l.SetItemHeight(id, rowHeight)
	}
	return l
}

// Rows returns the rows in display order
func (l *DestinationList) Rows() []model.Row {
	return l.rows
}

// Selected returns the selected row id, or -1
func (l *DestinationList) Selected() widget.ListItemID {
	return l.selected
}

// CellFor renders the row at id with the current selection and focus state
func (l *DestinationList) CellFor(id widget.ListItemID) VisualCell {
	if id < 0 || id >= len(l.rows) {
		return VisualCell{}
	}
	selected := id == l.selected
	return RenderCell(l.rows[id], id, selected, selected && l.focused, l.style)
}

// FocusGained is called when the list receives keyboard focus
func (l *DestinationList) FocusGained() {
	l.focused = true
	l.List.FocusGained()
	l.Refresh()
}

// FocusLost is called when the list loses keyboard focus
func (l *DestinationList) FocusLost() {
	l.focused = false
	l.List.FocusLost()
	l.Refresh()
}
