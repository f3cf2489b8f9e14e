package objects

import "github.com/hajimehoshi/ebiten/v2"

// Lifecycle is driven once per frame by the scene that owns the object tree.
// Init runs when an object joins a tree and Destroy when the scene is torn down.
type Lifecycle interface {
	Init() error
	Destroy() error
	Update() error
	Draw(screen *ebiten.Image)
}
