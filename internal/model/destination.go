package model

import (
	"fmt"
	"html"
)

// Destination is one entry of the fixed destination list
type Destination struct {
	Order       int    // display rank, 1-based
	Title       string // e.g. "Paris, France"
	Description string // one sentence
	ImageName   string // logical image name, e.g. "/images/paris.png"
}

// Logical image names of the bundled thumbnails
const (
	ImageGrandCanyon = "/images/gc.png"
	ImageParis       = "/images/paris.png"
	ImageTokyo       = "/images/tokyo.png"
	ImageMaui        = "/images/maui.png"
	ImageRome        = "/images/rome.png"
)

var topDestinations = []Destination{
	{
		Order:       1,
		Title:       "Grand Canyon, USA",
		Description: "Vast red-rock canyons carved by the Colorado River with sweeping rim-top vistas.",
		ImageName:   ImageGrandCanyon,
	},
	{
		Order:       2,
		Title:       "Paris, France",
		Description: "Iconic art and café culture with Eiffel Tower views along the winding Seine.",
		ImageName:   ImageParis,
	},
	{
		Order:       3,
		Title:       "Tokyo, Japan",
		Description: "Neon nights, tranquil shrines, and bustling crossings in a city of contrasts.",
		ImageName:   ImageTokyo,
	},
	{
		Order:       4,
		Title:       "Maui, Hawaii",
		Description: "Golden beaches and lush Road to Hana scenes capped by a Haleakalā sunrise.",
		ImageName:   ImageMaui,
	},
	{
		Order:       5,
		Title:       "Rome, Italy",
		Description: "Ancient ruins and baroque piazzas where history and gelato meet at every turn.",
		ImageName:   ImageRome,
	},
}

// TopDestinations returns a copy of the five destinations in display order
func TopDestinations() []Destination {
	out := make([]Destination, len(topDestinations))
	copy(out, topDestinations)
	return out
}

// Markup class names used by FormatRowMarkup
const (
	ClassTitle       = "title"
	ClassDescription = "desc"
)

// FormatRowMarkup combines rank, title and description into the two-line
// markup block rendered by the list. Title and description are escaped, so
// any markup they contain is shown as literal text.
func FormatRowMarkup(order int, title, description string) string {
	return fmt.Sprintf(`<div class="%s"><b>%d. %s</b></div><div class="%s">%s</div>`,
		ClassTitle, order, html.EscapeString(title),
		ClassDescription, html.EscapeString(description))
}
