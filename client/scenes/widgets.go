package scenes

import (
	"image/color"

	"github.com/cbodonnell/stackfall/client/fonts"
	"github.com/ebitenui/ebitenui/image"
	"github.com/ebitenui/ebitenui/widget"
)

var (
	buttonImage = &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 170, G: 170, B: 180, A: 255}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 135, G: 135, B: 150, A: 255}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 120, A: 255}),
	}

	linkButtonImage = &widget.ButtonImage{
		Idle:    image.NewNineSliceColor(color.NRGBA{R: 0, G: 0, B: 0, A: 0}),
		Hover:   image.NewNineSliceColor(color.NRGBA{R: 0, G: 0, B: 0, A: 0}),
		Pressed: image.NewNineSliceColor(color.NRGBA{R: 0, G: 0, B: 0, A: 0}),
	}

	textColor     = color.NRGBA{254, 255, 255, 255}
	disabledColor = color.NRGBA{R: 200, G: 200, B: 200, A: 255}
	errorColor    = color.NRGBA{R: 255, G: 0, B: 0, A: 255}
)

// newColumn returns a vertical container centred in the window.
func newColumn(top int) *widget.Container {
	return widget.NewContainer(
		widget.ContainerOpts.Layout(widget.NewRowLayout(
			widget.RowLayoutOpts.Direction(widget.DirectionVertical),
			widget.RowLayoutOpts.Spacing(20),
			widget.RowLayoutOpts.Padding(widget.Insets{
				Top:    top,
				Left:   120,
				Right:  120,
				Bottom: 90,
			}))),
	)
}

func newButton(text string, handler func(args *widget.ButtonClickedEventArgs)) *widget.Button {
	return widget.NewButton(
		widget.ButtonOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.ButtonOpts.Image(buttonImage),
		widget.ButtonOpts.Text(text, fonts.TTFNormalFont, &widget.ButtonTextColor{
			Idle:     textColor,
			Disabled: disabledColor,
		}),
		widget.ButtonOpts.TextPadding(widget.Insets{
			Left:   30,
			Right:  30,
			Top:    5,
			Bottom: 5,
		}),
		widget.ButtonOpts.ClickedHandler(handler),
	)
}

func newTextInput(placeholder string, secure bool, changed func(text string)) *widget.TextInput {
	return widget.NewTextInput(
		widget.TextInputOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
				Stretch:  true,
			}),
		),
		widget.TextInputOpts.MobileInputMode("text"),
		widget.TextInputOpts.Image(&widget.TextInputImage{
			Idle:     image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
			Disabled: image.NewNineSliceColor(color.NRGBA{R: 100, G: 100, B: 100, A: 255}),
		}),
		widget.TextInputOpts.Face(fonts.TTFNormalFont),
		widget.TextInputOpts.Color(&widget.TextInputColor{
			Idle:          textColor,
			Disabled:      disabledColor,
			Caret:         textColor,
			DisabledCaret: disabledColor,
		}),
		widget.TextInputOpts.Padding(widget.NewInsetsSimple(5)),
		widget.TextInputOpts.CaretOpts(
			widget.CaretOpts.Size(fonts.TTFNormalFont, 2),
		),
		widget.TextInputOpts.Placeholder(placeholder),
		widget.TextInputOpts.Secure(secure),
		widget.TextInputOpts.ChangedHandler(func(args *widget.TextInputChangedEventArgs) {
			changed(args.InputText)
		}),
	)
}

func newLabel(text string, clr color.Color) *widget.Text {
	return widget.NewText(
		widget.TextOpts.Text(text, fonts.TTFNormalFont, clr),
		widget.TextOpts.WidgetOpts(
			widget.WidgetOpts.LayoutData(widget.RowLayoutData{
				Position: widget.RowLayoutPositionCenter,
			}),
		),
	)
}
