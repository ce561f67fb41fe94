// Package assets holds the files compiled into the binary: destination
// thumbnails under images/.
package assets

import "embed"

// FS is rooted at the application resource root, so thumbnails live at
// "images/<name>".
//
//go:embed images
var FS embed.FS
