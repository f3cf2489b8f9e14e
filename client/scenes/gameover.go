package scenes

import (
	"fmt"

	"github.com/cbodonnell/stackfall/client/objects"
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/log"
	"github.com/ebitenui/ebitenui"
	"github.com/ebitenui/ebitenui/widget"
	"github.com/hajimehoshi/ebiten/v2"
)

// GameOverScene shows the final counters of a session.
type GameOverScene struct {
	*BaseScene

	stats       types.Stats
	onPlayAgain func() error
	onMenu      func() error
	ui          *ebitenui.UI
}

type GameOverSceneOptions struct {
	Stats       types.Stats
	OnPlayAgain func() error
	OnMenu      func() error
}

var _ Scene = &GameOverScene{}

func NewGameOverScene(opts GameOverSceneOptions) (Scene, error) {
	return &GameOverScene{
		BaseScene:   NewBaseScene(objects.NewBaseObject("gameover-root", nil)),
		stats:       opts.Stats,
		onPlayAgain: opts.OnPlayAgain,
		onMenu:      opts.OnMenu,
	}, nil
}

func (s *GameOverScene) Init() error {
	rootContainer := newColumn(100)
	rootContainer.AddChild(newLabel("GAME OVER", errorColor))
	rootContainer.AddChild(newLabel(fmt.Sprintf("Rows cleared: %d", s.stats.RowsCleared), textColor))
	rootContainer.AddChild(newLabel(fmt.Sprintf("Pieces: %d", s.stats.PiecesSpawned), textColor))
	rootContainer.AddChild(newButton("Play Again", func(args *widget.ButtonClickedEventArgs) {
		if err := s.onPlayAgain(); err != nil {
			log.Error("Failed to start a new game: %v", err)
		}
	}))
	rootContainer.AddChild(newButton("Menu", func(args *widget.ButtonClickedEventArgs) {
		if err := s.onMenu(); err != nil {
			log.Error("Failed to return to menu: %v", err)
		}
	}))
	s.ui = &ebitenui.UI{
		Container: rootContainer,
	}
	return s.BaseScene.Init()
}

func (s *GameOverScene) Update() error {
	s.ui.Update()
	return s.BaseScene.Update()
}

func (s *GameOverScene) Draw(screen *ebiten.Image) {
	s.ui.Draw(screen)
	s.BaseScene.Draw(screen)
}
