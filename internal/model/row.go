package model

import "image"

// Row is a display row of the destination list. Rows are built once at
// startup and never modified.
type Row struct {
	Order       int
	Title       string
	Description string
	Markup      string      // escaped two-line markup, see FormatRowMarkup
	Image       image.Image // thumbnail or transparent placeholder, never nil
}

// ImageFunc resolves a logical image name into a thumbnail
type ImageFunc func(logicalName string) image.Image

// NewRow builds the display row for a destination. A nil image is replaced
// with an empty 1x1 transparent image so Row.Image is always usable.
func NewRow(dest Destination, img image.Image) Row {
	if img == nil {
		img = image.NewNRGBA(image.Rect(0, 0, 1, 1))
	}
	return Row{
		Order:       dest.Order,
		Title:       dest.Title,
		Description: dest.Description,
		Markup:      FormatRowMarkup(dest.Order, dest.Title, dest.Description),
		Image:       img,
	}
}

// BuildRows resolves the thumbnail of every destination and returns the
// rows in the same order
func BuildRows(dests []Destination, resolve ImageFunc) []Row {
	rows := make([]Row, 0, len(dests))
	for _, d := range dests {
		var img image.Image
		if resolve != nil {
			img = resolve(d.ImageName)
		}
		rows = append(rows, NewRow(d, img))
	}
	return rows
}
