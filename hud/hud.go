package hud

import (
	"fmt"
	"image/color"

	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/golang/freetype/truetype"
	"github.com/hajimehoshi/ebiten/v2"
	"golang.org/x/image/font"
	"golang.org/x/image/font/gofont/gomono"

	"gridcaster/engine"
)

var (
	textColor  = color.RGBA{0, 255, 0, 255}
	panelColor = color.RGBA{0, 0, 0, 128}
)

// Face loads Go Mono at the given point size.
func Face(size float64) (font.Face, error) {
	f, err := truetype.Parse(gomono.TTF)
	if err != nil {
		return nil, fmt.Errorf("hud: parse font: %w", err)
	}
	return truetype.NewFace(f, &truetype.Options{
		Size:    size,
		DPI:     72,
		Hinting: font.HintingFull,
	}), nil
}

// HUD is a panel of diagnostics text in the top-left corner of the screen.
type HUD struct {
	ui    *ebitenui.UI
	lines []*widget.Text
}

func New(face font.Face) *HUD {
	root := widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewAnchorLayout()),
	)

	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(image.NewNineSliceColor(panelColor)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Padding(widget.NewInsetsSimple(4)),
			widget.RowLayoutOpts.Spacing(2),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionStart,
				VerticalPosition:   widget.AnchorLayoutPositionStart,
			}),
		),
	)
	root.AddChild(panel)

	h := &HUD{ui: &ebitenui.UI{Container: root}}
	for range (engine.Diagnostics{}).Lines() {
		t := widget.NewText(widget.TextOpts.Text("", face, textColor))
		panel.AddChild(t)
		h.lines = append(h.lines, t)
	}
	return h
}

func (h *HUD) Update(d engine.Diagnostics) {
	for i, line := range d.Lines() {
		h.lines[i].Label = line
	}
	h.ui.Update()
}

func (h *HUD) Draw(screen *ebiten.Image) {
	h.ui.Draw(screen)
}
