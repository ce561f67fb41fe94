package ui

import (
	"image"
	"log"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"

	"github.com/ytget/top-destinations/internal/config"
	"github.com/ytget/top-destinations/internal/model"
	"github.com/ytget/top-destinations/internal/platform"
)

// ImageResolver resolves a logical image name to a thumbnail of the given
// size. *platform.ImageResolver implements it.
type ImageResolver interface {
	Resolve(logicalName string, width, height int) image.Image
}

var _ ImageResolver = (*platform.ImageResolver)(nil)

// LoadRows builds the display rows of the top destinations, resolving every
// thumbnail at the configured size
func LoadRows(resolver ImageResolver, cell config.Cell) []model.Row {
	return model.BuildRows(model.TopDestinations(), func(name string) image.Image {
		return resolver.Resolve(name, cell.ThumbnailWidth, cell.ThumbnailHeight)
	})
}

// RootUI represents the main window: a header bar over the destination list
type RootUI struct {
	window fyne.Window
	cfg    *config.Shell

	header *HeaderBar
	list   *DestinationList
}

// NewRootUI lays out the window content and configures the window. The
// window becomes the master window, so closing it quits the app.
func NewRootUI(window fyne.Window, cfg *config.Shell, rows []model.Row) *RootUI {
	ui := &RootUI{
		window: window,
		cfg:    cfg,
	}

	window.SetTitle(cfg.Window.Title)
	ui.setupUI(rows)

	window.Resize(fyne.NewSize(cfg.Window.Width, cfg.Window.Height))
	window.SetFixedSize(true)
	window.CenterOnScreen()
	window.SetMaster()

	return ui
}

// setupUI creates and arranges all UI components
func (ui *RootUI) setupUI(rows []model.Row) {
	ui.header = NewHeaderBar(ui.cfg.Header)

	thumb := fyne.NewSize(float32(ui.cfg.Cell.ThumbnailWidth), float32(ui.cfg.Cell.ThumbnailHeight))
	ui.list = NewDestinationList(rows, NewListStyle(ui.cfg), ui.cfg.List.RowHeight, thumb)

	// widget.List scrolls on its own and draws no border
	listBackground := canvas.NewRectangle(ui.cfg.List.Background)
	center := container.NewStack(listBackground, ui.list)

	content := container.NewBorder(
		ui.header.Container(), // top
		nil,                   // bottom
		nil,                   // left
		nil,                   // right
		center,                // center
	)
	ui.window.SetContent(content)

	log.Printf("UI setup completed: %d destinations", len(rows))
}

// List returns the destination list
func (ui *RootUI) List() *DestinationList {
	return ui.list
}

// Header returns the header bar
func (ui *RootUI) Header() *HeaderBar {
	return ui.header
}
