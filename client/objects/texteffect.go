package objects

import (
	"fmt"
	"image/color"
	"strings"

	"github.com/cbodonnell/stackfall/client/fonts"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/text"
	"golang.org/x/image/font"
)

// TextEffect is a short lived caption that floats upwards and removes itself
// from its parent when its time to live runs out.
type TextEffect struct {
	*BaseObject

	text   string
	x      float64
	y      float64
	color  color.Color
	scroll bool
	// ttl is the remaining time to live in ticks.
	ttl int
}

type NewTextEffectOptions struct {
	// Text is the text to display.
	Text string
	// X is the x-coordinate of the centre of the text.
	X float64
	// Y is the y-coordinate of the baseline of the text.
	Y float64
	// Color is the color of the text. Defaults to white.
	Color color.Color
	// Scroll is a boolean value indicating whether the text should float upwards.
	Scroll bool
	// TTL is the time to live in ticks.
	TTL int
	// ZIndex is the z-index of the text effect.
	ZIndex int
}

func NewTextEffect(id string, opts NewTextEffectOptions) *TextEffect {
	clr := opts.Color
	if clr == nil {
		clr = color.White
	}

	return &TextEffect{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: opts.ZIndex}),
		text:       opts.Text,
		x:          opts.X,
		y:          opts.Y,
		color:      clr,
		scroll:     opts.Scroll,
		ttl:        opts.TTL,
	}
}

func (o *TextEffect) Update() error {
	if o.scroll {
		o.y -= 0.5
	}
	o.ttl--
	if o.ttl <= 0 {
		if err := o.BaseObject.RemoveFromParent(); err != nil {
			return fmt.Errorf("failed to remove text effect from parent: %v", err)
		}
	}
	return nil
}

func (o *TextEffect) Draw(screen *ebiten.Image) {
	t := strings.ToUpper(o.text)
	f := fonts.TTFBoldFont
	bounds, _ := font.BoundString(f, t)
	x := int(o.x) - (bounds.Max.X-bounds.Min.X).Ceil()/2
	text.Draw(screen, t, f, x, int(o.y), o.color)
}
