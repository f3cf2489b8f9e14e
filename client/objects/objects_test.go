package objects

import (
	"testing"

	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type recordingObject struct {
	*BaseObject
	log *[]string
}

func newRecordingObject(id string, zIndex int, log *[]string) *recordingObject {
	return &recordingObject{
		BaseObject: NewBaseObject(id, &NewBaseObjectOpts{ZIndex: zIndex}),
		log:        log,
	}
}

func (o *recordingObject) Init() error {
	*o.log = append(*o.log, "init "+o.GetID())
	return nil
}

func (o *recordingObject) Destroy() error {
	*o.log = append(*o.log, "destroy "+o.GetID())
	return nil
}

func (o *recordingObject) Draw(screen *ebiten.Image) {
	*o.log = append(*o.log, "draw "+o.GetID())
}

func ids(children []GameObject) []string {
	out := make([]string, 0, len(children))
	for _, c := range children {
		out = append(out, c.GetID())
	}
	return out
}

func TestBaseObject_AddChildOrdersByZIndex(t *testing.T) {
	var log []string
	root := NewBaseObject("root", nil)

	require.NoError(t, root.AddChild(newRecordingObject("overlay", 10, &log)))
	require.NoError(t, root.AddChild(newRecordingObject("board", 0, &log)))
	require.NoError(t, root.AddChild(newRecordingObject("panel", 0, &log)))
	require.NoError(t, root.AddChild(newRecordingObject("effect", 5, &log)))

	assert.Equal(t, []string{"board", "panel", "effect", "overlay"}, ids(root.GetChildren()))
	assert.Equal(t, []string{"init overlay", "init board", "init panel", "init effect"}, log)

	log = nil
	DrawTree(root, nil)
	assert.Equal(t, []string{"draw board", "draw panel", "draw effect", "draw overlay"}, log)
}

func TestBaseObject_AddChildDuplicateID(t *testing.T) {
	var log []string
	root := NewBaseObject("root", nil)
	require.NoError(t, root.AddChild(newRecordingObject("board", 0, &log)))
	assert.Error(t, root.AddChild(newRecordingObject("board", 1, &log)))
	assert.Len(t, root.GetChildren(), 1)
}

func TestBaseObject_RemoveChild(t *testing.T) {
	var log []string
	root := NewBaseObject("root", nil)
	child := newRecordingObject("board", 0, &log)
	require.NoError(t, root.AddChild(child))
	assert.Equal(t, root, child.GetParent())

	require.NoError(t, root.RemoveChild("board"))
	assert.Empty(t, root.GetChildren())
	assert.Nil(t, child.GetParent())
	assert.Contains(t, log, "destroy board")

	assert.Error(t, root.RemoveChild("board"))
}

func TestTextEffect_ExpiresDuringUpdate(t *testing.T) {
	root := NewBaseObject("root", nil)
	short := NewTextEffect("short", NewTextEffectOptions{Text: "single", TTL: 1})
	long := NewTextEffect("long", NewTextEffectOptions{Text: "double", TTL: 3, Scroll: true, Y: 100})
	require.NoError(t, root.AddChild(short))
	require.NoError(t, root.AddChild(long))

	require.NoError(t, UpdateTree(root))
	assert.Equal(t, []string{"long"}, ids(root.GetChildren()))
	assert.Less(t, long.y, 100.0)

	require.NoError(t, UpdateTree(root))
	require.NoError(t, UpdateTree(root))
	assert.Empty(t, root.GetChildren())
}

func TestCellColor(t *testing.T) {
	assert.Zero(t, CellColor(tetris.ColorNone).A)
	assert.NotZero(t, CellColor(tetris.ColorGarbage).A)

	seen := map[[3]uint8]tetris.Family{}
	for _, f := range tetris.Families {
		c := CellColor(f.Color())
		require.NotZero(t, c.A, "family %s has no colour", f)
		key := [3]uint8{c.R, c.G, c.B}
		if other, ok := seen[key]; ok {
			t.Fatalf("families %s and %s share a colour", other, f)
		}
		seen[key] = f
	}
}

func TestBoardObject_Geometry(t *testing.T) {
	board := NewBoardObject("board", NewBoardObjectOptions{X: 10, Y: 20, CellSize: 8})
	w, h := board.Size()
	assert.Zero(t, w)
	assert.Zero(t, h)

	board.SetState(&types.BoardState{Rows: 20, Columns: 10, Cells: make([]tetris.Color, 200)})
	w, h = board.Size()
	assert.Equal(t, float32(80), w)
	assert.Equal(t, float32(160), h)

	x, y, size := board.CellRect(2, 3)
	assert.Equal(t, float32(34), x)
	assert.Equal(t, float32(36), y)
	assert.Equal(t, float32(8), size)
}

func TestStatsLines(t *testing.T) {
	assert.Nil(t, StatsLines(nil))
	lines := StatsLines(&types.BoardState{Stats: types.Stats{RowsCleared: 4, PiecesSpawned: 12, GarbageRows: 1}})
	assert.Equal(t, []string{"Rows: 4", "Pieces: 12", "Garbage: 1"}, lines)
}
