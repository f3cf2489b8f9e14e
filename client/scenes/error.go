package scenes

import "github.com/cbodonnell/stackfall/client/objects"

// ErrorScene shows a failure until the player returns to the menu.
type ErrorScene struct {
	*BaseScene
}

var _ Scene = &ErrorScene{}

func NewErrorScene(msg string) (Scene, error) {
	overlay := objects.NewTextOverlayObject("overlay-error", msg, 0)
	overlay.SetHint("Press Enter to return to the menu")
	return &ErrorScene{
		BaseScene: NewBaseScene(overlay),
	}, nil
}
