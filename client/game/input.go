package game

import (
	"fmt"

	"github.com/cbodonnell/stackfall/client/input"
)

// handleErrorInput returns to the menu from the network error scene.
func (g *Game) handleErrorInput() error {
	if input.IsPositiveJustPressed() || input.IsNegativeJustPressed() {
		if err := g.loadMenu(); err != nil {
			return fmt.Errorf("failed to load menu scene: %v", err)
		}
	}
	return nil
}
