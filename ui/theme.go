// Package ui builds the ebitenui overlays and screens and draws the HUD.
package ui

import (
	"image/color"

	"github.com/ebitenui/ebitenui"
	imageui "github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
	ebtext "github.com/hajimehoshi/ebiten/v2/text/v2"
	"golang.org/x/image/font/basicfont"

	"github.com/milk9111/overworld/common"
)

var (
	white     = color.NRGBA{R: 0xff, G: 0xff, B: 0xff, A: 0xff}
	dimWhite  = color.NRGBA{R: 0xcc, G: 0xcc, B: 0xcc, A: 0xff}
	panelFill = color.NRGBA{R: 0x00, G: 0x00, B: 0x00, A: 200}
	btnIdle   = color.NRGBA{R: 0x33, G: 0x33, B: 0x33, A: 0xff}
	btnHover  = color.NRGBA{R: 0x4a, G: 0x4a, B: 0x4a, A: 0xff}
	btnPress  = color.NRGBA{R: 0x22, G: 0x22, B: 0x22, A: 0xff}
)

// Face is the UI text face shared by every widget.
var Face ebtext.Face = ebtext.NewGoXFace(basicfont.Face7x13)

func buttonImage() *widget.ButtonImage {
	return &widget.ButtonImage{
		Idle:    imageui.NewNineSliceColor(btnIdle),
		Hover:   imageui.NewNineSliceColor(btnHover),
		Pressed: imageui.NewNineSliceColor(btnPress),
	}
}

func centered() widget.WidgetOpt {
	return widget.WidgetOpts.LayoutData(widget.RowLayoutData{Position: widget.RowLayoutPositionCenter})
}

func newButton(label string, onClick func()) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.Image(buttonImage()),
		widget.ButtonOpts.Text(label, &Face, &widget.ButtonTextColor{Idle: white}),
		widget.ButtonOpts.WidgetOpts(centered()),
		widget.ButtonOpts.ClickedHandler(func(*widget.ButtonClickedEventArgs) {
			onClick()
		}),
	)
}

func newLabel(label string, c color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(label, &Face, c),
		widget.TextOpts.WidgetOpts(centered()),
	)
}

// newPanel returns a UI whose root centers a vertical panel holding
// children.
func newPanel(children ...widget.PreferredSizeLocateableWidget) *ebitenui.UI {
	panel := widget.NewContainer(
		widget.ContainerOpts.BackgroundImage(imageui.NewNineSliceColor(panelFill)),
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(10),
			widget.RowLayoutOpts.Padding(&widget.Insets{Top: 20, Bottom: 20, Left: 30, Right: 30}),
		)),
		widget.ContainerOpts.WidgetOpts(
			widget.WidgetOpts.MinSize(common.BaseWidth/3, common.BaseHeight/3),
			widget.WidgetOpts.LayoutData(widget.AnchorLayoutData{
				HorizontalPosition: widget.AnchorLayoutPositionCenter,
				VerticalPosition:   widget.AnchorLayoutPositionCenter,
			}),
		),
	)
	for _, c := range children {
		panel.AddChild(c)
	}

	root := widget.NewContainer(widget.ContainerOpts.Layout(widget.NewAnchorLayout()))
	root.AddChild(panel)
	return &ebitenui.UI{Container: root}
}
