package scenes

import (
	"github.com/cbodonnell/stackfall/client/objects"
	"github.com/cbodonnell/stackfall/client/ui"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// MenuScene offers offline play, guest play and signing in.
type MenuScene struct {
	*BaseScene

	onPlayOffline func() error
	onPlayGuest   func() error
	onSignIn      func() error
	ui            *ebitenui.UI
	errMsg        string
}

type MenuSceneOptions struct {
	// OnPlayOffline starts a local session.
	OnPlayOffline func() error
	// OnPlayGuest joins the game server without credentials.
	OnPlayGuest func() error
	// OnSignIn opens the sign in scene.
	OnSignIn func() error
}

var _ Scene = &MenuScene{}

func NewMenuScene(opts MenuSceneOptions) (Scene, error) {
	return &MenuScene{
		BaseScene:     NewBaseScene(objects.NewBaseObject("menu-root", nil)),
		onPlayOffline: opts.OnPlayOffline,
		onPlayGuest:   opts.OnPlayGuest,
		onSignIn:      opts.OnSignIn,
	}, nil
}

func (s *MenuScene) Init() error {
	s.renderUI()
	return s.BaseScene.Init()
}

func (s *MenuScene) renderUI() {
	rootContainer := newColumn(120)
	rootContainer.AddChild(newLabel("STACKFALL", textColor))

	rootContainer.AddChild(newButton("Play Offline", s.handler(s.onPlayOffline, "Failed to start the game.")))
	rootContainer.AddChild(newButton("Play as Guest", s.handler(s.onPlayGuest, "Failed to join the server.")))
	rootContainer.AddChild(newButton("Sign In", s.handler(s.onSignIn, "Failed to open sign in.")))

	if s.errMsg != "" {
		rootContainer.AddChild(newLabel(s.errMsg, errorColor))
		s.errMsg = ""
	}

	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
}

// handler runs action and shows its error under the buttons.
func (s *MenuScene) handler(action func() error, fallback string) func(args *widget.ButtonClickedEventArgs) {
	return func(args *widget.ButtonClickedEventArgs) {
		if err := action(); err != nil {
			log.Error("Menu action failed: %v", err)
			if actionableErr, ok := err.(*ui.ActionableError); ok {
				s.errMsg = actionableErr.Message
			} else {
				s.errMsg = fallback
			}
			s.renderUI()
		}
	}
}

func (s *MenuScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *MenuScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
