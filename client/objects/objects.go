package objects

import (
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

// GameObject is the highest level interface for game related types.
type GameObject interface {
	Lifecycle

	GetID() string
	GetZIndex() int
	GetParent() GameObject
	SetParent(parent GameObject)
	GetChildren() []GameObject
	AddChild(child GameObject) error
	RemoveChild(id string) error
}

// BaseObject implements the tree bookkeeping of a GameObject. Embedders
// override the lifecycle methods they need.
type BaseObject struct {
	id     string
	zIndex int
	parent GameObject
	// children is kept sorted by z-index, insertion order within a z-index.
	children []GameObject
}

var _ GameObject = &BaseObject{}

type NewBaseObjectOpts struct {
	// ZIndex orders siblings when drawing. Lower values are drawn first.
	ZIndex int
}

func NewBaseObject(id string, opts *NewBaseObjectOpts) *BaseObject {
	o := &BaseObject{
		id:       id,
		children: make([]GameObject, 0),
	}
	if opts != nil {
		o.zIndex = opts.ZIndex
	}
	return o
}

func (o *BaseObject) Init() error {
	return nil
}

func (o *BaseObject) Destroy() error {
	return nil
}

func (o *BaseObject) Update() error {
	return nil
}

func (o *BaseObject) Draw(screen *ebiten.Image) {}

func (o *BaseObject) GetID() string {
	return o.id
}

func (o *BaseObject) GetZIndex() int {
	return o.zIndex
}

func (o *BaseObject) GetParent() GameObject {
	return o.parent
}

func (o *BaseObject) SetParent(parent GameObject) {
	o.parent = parent
}

func (o *BaseObject) GetChildren() []GameObject {
	return o.children
}

// AddChild initializes the child's tree and inserts it after every sibling
// with a lower or equal z-index.
func (o *BaseObject) AddChild(child GameObject) error {
	for _, c := range o.children {
		if c.GetID() == child.GetID() {
			return fmt.Errorf("child object with id %s already exists", child.GetID())
		}
	}
	if err := InitTree(child); err != nil {
		return fmt.Errorf("failed to initialize child object tree: %v", err)
	}
	child.SetParent(o)

	i := len(o.children)
	for j, c := range o.children {
		if c.GetZIndex() > child.GetZIndex() {
			i = j
			break
		}
	}
	o.children = append(o.children, nil)
	copy(o.children[i+1:], o.children[i:])
	o.children[i] = child
	return nil
}

// RemoveChild destroys the child's tree and detaches it.
func (o *BaseObject) RemoveChild(id string) error {
	for i, c := range o.children {
		if c.GetID() != id {
			continue
		}
		if err := DestroyTree(c); err != nil {
			return fmt.Errorf("failed to destroy child object tree: %v", err)
		}
		c.SetParent(nil)
		o.children = append(o.children[:i], o.children[i+1:]...)
		return nil
	}
	return fmt.Errorf("child object with id %s does not exist", id)
}

// RemoveFromParent detaches the object from its parent, if any.
func (o *BaseObject) RemoveFromParent() error {
	if o.parent == nil {
		return nil
	}
	return o.parent.RemoveChild(o.id)
}

// InitTree initializes an object and then its children.
func InitTree(root GameObject) error {
	if err := root.Init(); err != nil {
		return fmt.Errorf("failed to initialize %s: %v", root.GetID(), err)
	}
	for _, child := range root.GetChildren() {
		if err := InitTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DestroyTree destroys the children of an object and then the object itself.
func DestroyTree(root GameObject) error {
	for _, child := range root.GetChildren() {
		if err := DestroyTree(child); err != nil {
			return err
		}
	}
	if err := root.Destroy(); err != nil {
		return fmt.Errorf("failed to destroy %s: %v", root.GetID(), err)
	}
	return nil
}

// UpdateTree updates an object and then its children. Children may remove
// themselves while being updated.
func UpdateTree(root GameObject) error {
	if err := root.Update(); err != nil {
		return fmt.Errorf("failed to update %s: %v", root.GetID(), err)
	}
	children := make([]GameObject, len(root.GetChildren()))
	copy(children, root.GetChildren())
	for _, child := range children {
		if err := UpdateTree(child); err != nil {
			return err
		}
	}
	return nil
}

// DrawTree draws an object and then its children in z-index order.
func DrawTree(root GameObject, screen *ebiten.Image) {
	root.Draw(screen)
	for _, child := range root.GetChildren() {
		DrawTree(child, screen)
	}
}
