package scenes

import (
	"fmt"
	"image/color"
	"time"

	"github.com/cbodonnell/stackfall/client/drivers"
	"github.com/cbodonnell/stackfall/client/input"
	"github.com/cbodonnell/stackfall/client/objects"
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/log"
)

const (
	// ScreenWidth and ScreenHeight are the logical size of the window.
	ScreenWidth  = 640
	ScreenHeight = 480

	// boardMargin keeps the board off the window edge.
	boardMargin = 20
	// panelWidth is reserved right of the board.
	panelWidth = 160
	// effectTTL is how long a rows cleared caption stays up, in ticks.
	effectTTL = 60
)

// GameScene renders the session run by a driver and feeds it player input.
type GameScene struct {
	*BaseScene

	driver       drivers.Driver
	board        *objects.BoardObject
	panel        *objects.PanelObject
	pauseOverlay *objects.TextOverlayObject
	onGameOver   func(stats types.Stats) error
	onQuit       func() error
	rows         int
	columns      int
	effectCount  int
	now          func() time.Time
}

type GameSceneOptions struct {
	Driver drivers.Driver
	// OnGameOver is called once the session ends with a game over.
	OnGameOver func(stats types.Stats) error
	// OnQuit is called when the player leaves the game.
	OnQuit func() error
}

var _ Scene = &GameScene{}

func NewGameScene(opts GameSceneOptions) (Scene, error) {
	if opts.Driver == nil {
		return nil, fmt.Errorf("missing driver")
	}
	return &GameScene{
		BaseScene:    NewBaseScene(objects.NewBaseObject("game-root", nil)),
		driver:       opts.Driver,
		board:        objects.NewBoardObject("board", objects.NewBoardObjectOptions{}),
		panel:        objects.NewPanelObject("panel", 0, 0, 0),
		pauseOverlay: objects.NewTextOverlayObject("overlay-paused", "Paused", 10),
		onGameOver:   opts.OnGameOver,
		onQuit:       opts.OnQuit,
		now:          time.Now,
	}, nil
}

func (g *GameScene) Init() error {
	g.pauseOverlay.SetVisible(false)
	g.pauseOverlay.SetHint("Press P to resume, N for a new game")
	for _, child := range []objects.GameObject{g.board, g.panel, g.pauseOverlay} {
		if err := g.Root.AddChild(child); err != nil {
			return fmt.Errorf("failed to add %s: %v", child.GetID(), err)
		}
	}
	return g.BaseScene.Init()
}

// FitBoard returns the largest whole cell size at which a rows by columns
// board and the side panel fit the window, and the board's top left corner.
func FitBoard(rows, columns int) (x, y, cellSize float32) {
	byHeight := (ScreenHeight - 2*boardMargin) / rows
	byWidth := (ScreenWidth - 3*boardMargin - panelWidth) / columns
	size := byHeight
	if byWidth < size {
		size = byWidth
	}
	if size < 1 {
		size = 1
	}
	boardWidth := size * columns
	x = float32((ScreenWidth - panelWidth - boardMargin - boardWidth) / 2)
	y = float32((ScreenHeight - size*rows) / 2)
	return x, y, float32(size)
}

func (g *GameScene) Update() error {
	if input.IsNegativeJustPressed() {
		return g.onQuit()
	}

	if err := g.handleInput(); err != nil {
		log.Error("Failed to send input: %v", err)
	}

	if err := g.driver.Update(g.now()); err != nil {
		return fmt.Errorf("failed to update driver: %v", err)
	}

	g.layout(g.driver.State())

	for _, notice := range g.driver.Notices() {
		switch notice.Type {
		case drivers.NoticeRowsCleared:
			if err := g.addRowsClearedEffect(notice.Count); err != nil {
				return err
			}
		case drivers.NoticeGameOver:
			return g.onGameOver(notice.Stats)
		}
	}

	return g.BaseScene.Update()
}

func (g *GameScene) handleInput() error {
	if input.IsNewGameJustPressed() {
		return g.driver.NewGame()
	}
	if input.IsPauseJustPressed() {
		cmd := types.CommandPause
		if state := g.driver.State(); state != nil && state.Paused {
			cmd = types.CommandResume
		}
		if err := g.driver.Apply(cmd); err != nil {
			return err
		}
	}
	for _, cmd := range input.Commands() {
		if err := g.driver.Apply(cmd); err != nil {
			return err
		}
	}
	return nil
}

// layout hands the latest state to the board and the panel, refitting both
// when the board dimensions change.
func (g *GameScene) layout(state *types.BoardState) {
	g.board.SetState(state)
	g.panel.SetState(state)
	g.panel.SetStatus(g.driver.Status()...)
	if state == nil {
		g.pauseOverlay.SetVisible(false)
		return
	}
	g.pauseOverlay.SetVisible(state.Paused)

	if state.Rows == g.rows && state.Columns == g.columns {
		return
	}
	g.rows, g.columns = state.Rows, state.Columns
	x, y, cellSize := FitBoard(state.Rows, state.Columns)
	g.board.SetGeometry(x, y, cellSize)
	w, _ := g.board.Size()
	previewCell := cellSize
	if previewCell > 20 {
		previewCell = 20
	}
	g.panel.SetGeometry(x+w+boardMargin, y, previewCell)
}

// RowsClearedCaption names a clear of count rows.
func RowsClearedCaption(count int) string {
	switch count {
	case 1:
		return "Single"
	case 2:
		return "Double"
	case 3:
		return "Triple"
	default:
		return fmt.Sprintf("%d rows", count)
	}
}

func (g *GameScene) addRowsClearedEffect(count int) error {
	caption := RowsClearedCaption(count)

	w, h := g.board.Size()
	x, y, _ := g.board.CellRect(0, 0)
	g.effectCount++
	effect := objects.NewTextEffect(fmt.Sprintf("effect-%d", g.effectCount), objects.NewTextEffectOptions{
		Text:   caption,
		X:      float64(x + w/2),
		Y:      float64(y + h/2),
		Color:  color.NRGBA{R: 255, G: 220, B: 80, A: 255},
		Scroll: true,
		TTL:    effectTTL,
		ZIndex: 5,
	})
	if err := g.Root.AddChild(effect); err != nil {
		return fmt.Errorf("failed to add text effect: %v", err)
	}
	return nil
}
