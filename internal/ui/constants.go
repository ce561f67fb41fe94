package ui

// UI-wide constants to avoid magic numbers/strings scattered across the codebase.

// Border around a cell, drawn in the focus color when the cell has focus and
// left empty otherwise
const (
	CellBorderWidth float32 = 1
)

// Thumbnails of a disabled list are drawn faded
const (
	DisabledThumbTranslucency = 0.5
)

// Spacing between the title and description lines
const (
	TextLineSpacing float32 = 2
)

// Markup elements understood by the row renderer
const (
	tagLine = "div"
	tagBold = "b"
	attrCls = "class"
)

// No row is selected
const noSelection = -1
