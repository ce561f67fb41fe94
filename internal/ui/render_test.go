package ui

import (
	"image"
	"image/color"
	"testing"

	"fyne.io/fyne/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ytget/top-destinations/internal/config"
	"github.com/ytget/top-destinations/internal/model"
)

func testRows() []model.Row {
	return model.BuildRows(model.TopDestinations(), func(string) image.Image {
		return image.NewNRGBA(image.Rect(0, 0, 120, 72))
	})
}

func TestRenderCell_Stripes(t *testing.T) {
	cfg := config.Default()
	style := NewListStyle(cfg)
	rows := testRows()

	var bgs []color.Color
	for i, row := range rows {
		v := RenderCell(row, i, false, false, style)
		bgs = append(bgs, v.Background)
		assert.Equal(t, style.Foreground, v.Foreground)
	}

	for i := 1; i < len(bgs); i++ {
		assert.NotEqual(t, bgs[i-1], bgs[i], "adjacent rows %d and %d share a background", i-1, i)
	}
	assert.Equal(t, bgs[0], bgs[2])
	assert.Equal(t, bgs[0], bgs[4])
	assert.Equal(t, color.Color(cfg.List.StripeEven), bgs[0])
	assert.Equal(t, color.Color(cfg.List.StripeOdd), bgs[1])
}

func TestRenderCell_SelectionOverridesStripe(t *testing.T) {
	style := NewListStyle(config.Default())
	rows := testRows()

	for i, row := range rows {
		v := RenderCell(row, i, true, false, style)
		assert.Equal(t, style.SelectionBackground, v.Background, "row %d", i)
		assert.Equal(t, style.SelectionForeground, v.Foreground, "row %d", i)
		assert.Equal(t, style.SelectionForeground, v.Lines[0].Color, "title of row %d", i)
	}
}

func TestRenderCell_Border(t *testing.T) {
	style := NewListStyle(config.Default())
	row := testRows()[0]

	plain := RenderCell(row, 0, false, false, style)
	assert.Equal(t, color.Transparent, plain.BorderColor)
	assert.Equal(t, CellBorderWidth, plain.BorderWidth)
	assert.Equal(t, float32(8), plain.Padding)
	assert.Equal(t, float32(9), plain.Inset())

	focused := RenderCell(row, 0, true, true, style)
	assert.Equal(t, style.FocusBorder, focused.BorderColor)
	assert.Equal(t, plain.Inset(), focused.Inset(), "focus must not shift content")
	assert.Equal(t, float32(12), focused.IconTextGap)
}

func TestRenderCell_Text(t *testing.T) {
	style := NewListStyle(config.Default())
	row := model.NewRow(model.Destination{Order: 3, Title: "<b>Tokyo</b>", Description: "Neon & shrines."}, nil)

	v := RenderCell(row, 2, false, false, style)

	require.Len(t, v.Lines, 2)
	assert.Equal(t, "3. <b>Tokyo</b>", v.Lines[0].Text)
	assert.True(t, v.Lines[0].Style.Bold)
	assert.Equal(t, style.TitleTextSize, v.Lines[0].Size)
	assert.Equal(t, "Neon & shrines.", v.Lines[1].Text)
	assert.False(t, v.Lines[1].Style.Bold)
	assert.Equal(t, style.DescriptionTextSize, v.Lines[1].Size)
	assert.Equal(t, style.DescriptionColor, v.Lines[1].Color)
	assert.Same(t, row.Image, v.Image)
}

func TestRenderCell_PropagatesListState(t *testing.T) {
	style := NewListStyle(config.Default())
	style.Enabled = false
	style.RightToLeft = true
	style.TextStyle = fyne.TextStyle{Italic: true}

	v := RenderCell(testRows()[1], 1, false, false, style)

	assert.False(t, v.Enabled)
	assert.True(t, v.RightToLeft)
	for _, l := range v.Lines {
		assert.True(t, l.Style.Italic, "list font should carry over")
		assert.Equal(t, style.DisabledForeground, l.Color)
	}
}

func TestRenderCell_Pure(t *testing.T) {
	style := NewListStyle(config.Default())
	row := testRows()[4]

	first := RenderCell(row, 4, true, true, style)
	RenderCell(row, 3, false, false, style)
	second := RenderCell(row, 4, true, true, style)

	assert.Equal(t, first, second)
}
