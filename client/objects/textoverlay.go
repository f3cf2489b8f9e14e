package objects

import (
	"image/color"
	"strings"

	"github.com/cbodonnell/stackfall/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"github.com/hajimehoshi/ebiten/v2/vector"
	"golang.org/x/image/font"
)

// TextOverlayObject dims the screen and centres a line of large text on it,
// with an optional smaller hint underneath.
type TextOverlayObject struct {
	*BaseObject

	text    string
	hint    string
	visible bool
}

func NewTextOverlayObject(id string, text string, zIndex int) *TextOverlayObject {
	return &TextOverlayObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		text:       text,
		visible:    true,
	}
}

func (o *TextOverlayObject) SetText(text string) {
	o.text = text
}

func (o *TextOverlayObject) SetHint(hint string) {
	o.hint = hint
}

func (o *TextOverlayObject) SetVisible(visible bool) {
	o.visible = visible
}

func (o *TextOverlayObject) Visible() bool {
	return o.visible
}

func (o *TextOverlayObject) Draw(screen *ebiten.Image) {
	if !o.visible {
		return
	}
	w, h := screen.Bounds().Dx(), screen.Bounds().Dy()
	vector.DrawFilledRect(screen, 0, 0, float32(w), float32(h), color.NRGBA{A: 160}, false)

	t := strings.ToUpper(o.text)
	f := fonts.MPlusLargeFont
	bounds, _ := font.BoundString(f, t)
	x := w/2 - (bounds.Max.X-bounds.Min.X).Ceil()/2
	y := h/2 + (bounds.Max.Y-bounds.Min.Y).Ceil()/2
	text.Draw(screen, t, f, x, y, color.White)

	if o.hint == "" {
		return
	}
	hintBounds, _ := font.BoundString(fonts.TTFSmallFont, o.hint)
	hx := w/2 - (hintBounds.Max.X-hintBounds.Min.X).Ceil()/2
	text.Draw(screen, o.hint, fonts.TTFSmallFont, hx, y+40, color.NRGBA{R: 200, G: 200, B: 210, A: 255})
}
