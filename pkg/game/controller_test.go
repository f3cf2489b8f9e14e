package game

import (
	"testing"

	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fixedSource spawns the same family every time and always picks column 0.
type fixedSource struct {
	family tetris.Family
}

func (s fixedSource) NextFamily() tetris.Family { return s.family }

func (s fixedSource) IntN(n int) int { return 0 }

func newTestController(family tetris.Family, rows, columns int) *Controller {
	return NewController(NewControllerOptions{
		Rows:    rows,
		Columns: columns,
		Source:  fixedSource{family: family},
	})
}

// runUntilDone steps the controller until the session ends or limit steps pass.
func runUntilDone(c *Controller, limit int) int {
	steps := 0
	for ; steps < limit && !c.Done(); steps++ {
		c.Step()
	}
	return steps
}

func TestNewController_Defaults(t *testing.T) {
	c := NewController(NewControllerOptions{})
	assert.Equal(t, 20, c.Playfield().Rows())
	assert.Equal(t, 10, c.Playfield().Columns())
	assert.False(t, c.Running())
	assert.False(t, c.Done())
}

func TestController_Start(t *testing.T) {
	c := newTestController(tetris.FamilyT, 20, 10)
	c.Start()

	assert.True(t, c.Running())
	assert.True(t, c.Playfield().HasActivePiece())
	assert.Equal(t, 1, c.Stats().PiecesSpawned)
	assert.Equal(t, []Event{{Type: EventNewPiece, Current: tetris.FamilyT, Next: tetris.FamilyT}}, c.DrainEvents())
	assert.Empty(t, c.DrainEvents())

	// a second Start is a no-op
	c.Start()
	assert.Equal(t, 1, c.Stats().PiecesSpawned)
}

func TestController_Apply(t *testing.T) {
	tests := []struct {
		name    string
		setup   func(c *Controller)
		command types.Command
		want    bool
		check   func(t *testing.T, c *Controller)
	}{
		{
			name:    "move before start",
			setup:   func(c *Controller) {},
			command: types.CommandMoveLeft,
			want:    false,
		},
		{
			name:    "move left",
			setup:   func(c *Controller) { c.Start() },
			command: types.CommandMoveLeft,
			want:    true,
			check: func(t *testing.T, c *Controller) {
				assert.Equal(t, 2, c.Playfield().ActivePiece().Offset().Col)
			},
		},
		{
			name:    "move right",
			setup:   func(c *Controller) { c.Start() },
			command: types.CommandMoveRight,
			want:    true,
			check: func(t *testing.T, c *Controller) {
				assert.Equal(t, 4, c.Playfield().ActivePiece().Offset().Col)
			},
		},
		{
			name: "move into the wall",
			setup: func(c *Controller) {
				c.Start()
				for c.Apply(types.CommandMoveLeft) {
				}
			},
			command: types.CommandMoveLeft,
			want:    false,
		},
		{
			name:    "rotate",
			setup:   func(c *Controller) { c.Start() },
			command: types.CommandRotate,
			want:    true,
			check: func(t *testing.T, c *Controller) {
				assert.Equal(t, 2, c.Playfield().ActivePiece().Orientation())
			},
		},
		{
			name:    "drop steps once",
			setup:   func(c *Controller) { c.Start() },
			command: types.CommandDrop,
			want:    true,
			check: func(t *testing.T, c *Controller) {
				assert.Equal(t, 1, c.Playfield().ActivePiece().Offset().Row)
			},
		},
		{
			name:    "pause",
			setup:   func(c *Controller) { c.Start() },
			command: types.CommandPause,
			want:    true,
			check: func(t *testing.T, c *Controller) {
				assert.True(t, c.Paused())
				assert.True(t, c.Snapshot().Paused)
			},
		},
		{
			name: "pause twice",
			setup: func(c *Controller) {
				c.Start()
				c.Apply(types.CommandPause)
			},
			command: types.CommandPause,
			want:    false,
		},
		{
			name: "move while paused",
			setup: func(c *Controller) {
				c.Start()
				c.Apply(types.CommandPause)
			},
			command: types.CommandMoveLeft,
			want:    false,
			check: func(t *testing.T, c *Controller) {
				assert.Equal(t, 3, c.Playfield().ActivePiece().Offset().Col)
			},
		},
		{
			name: "resume",
			setup: func(c *Controller) {
				c.Start()
				c.Apply(types.CommandPause)
			},
			command: types.CommandResume,
			want:    true,
			check: func(t *testing.T, c *Controller) {
				assert.False(t, c.Paused())
			},
		},
		{
			name:    "resume without pause",
			setup:   func(c *Controller) { c.Start() },
			command: types.CommandResume,
			want:    false,
		},
		{
			name: "move after stop",
			setup: func(c *Controller) {
				c.Start()
				c.Stop()
			},
			command: types.CommandMoveLeft,
			want:    false,
		},
		{
			name:    "unknown command",
			setup:   func(c *Controller) { c.Start() },
			command: types.Command(0),
			want:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(tetris.FamilyT, 20, 10)
			tt.setup(c)
			assert.Equal(t, tt.want, c.Apply(tt.command))
			if tt.check != nil {
				tt.check(t, c)
			}
		})
	}
}

func TestController_StepSpawnsAfterLock(t *testing.T) {
	c := newTestController(tetris.FamilyI, 20, 10)
	c.Start()
	c.DrainEvents()

	steps := 0
	for c.Stats().PiecesSpawned == 1 {
		c.Step()
		steps++
		require.Less(t, steps, 100)
	}

	// the horizontal I locks on the floor and the next piece is already in play
	assert.True(t, c.Playfield().IsFixed(19, 3))
	assert.True(t, c.Playfield().HasActivePiece())
	assert.Equal(t, 0, c.Playfield().ActivePiece().Offset().Row)
	assert.Equal(t, []Event{{Type: EventNewPiece, Current: tetris.FamilyI, Next: tetris.FamilyI}}, c.DrainEvents())
}

func TestController_StepWhilePausedDoesNothing(t *testing.T) {
	c := newTestController(tetris.FamilyT, 20, 10)
	c.Start()
	c.Pause()

	c.Step()
	assert.Equal(t, 0, c.Playfield().ActivePiece().Offset().Row)

	c.Resume()
	c.Step()
	assert.Equal(t, 1, c.Playfield().ActivePiece().Offset().Row)
}

func TestController_ClearsRows(t *testing.T) {
	// four columns: every horizontal I fills a whole row
	c := newTestController(tetris.FamilyI, 4, 4)
	c.Start()
	c.DrainEvents()

	for c.Stats().RowsCleared == 0 {
		c.Step()
		require.False(t, c.Done())
	}

	assert.Equal(t, 1, c.Stats().RowsCleared)
	assert.Contains(t, c.DrainEvents(), Event{Type: EventRowsCleared, RowsCleared: 1})
	assert.Equal(t, 4, c.Playfield().FreeRowsFromTop())
}

func TestController_GameOver(t *testing.T) {
	c := newTestController(tetris.FamilyO, 4, 4)
	c.Start()

	runUntilDone(c, 100)

	require.True(t, c.Done())
	assert.True(t, c.Playfield().IsOver())
	assert.False(t, c.Running())
	assert.True(t, c.Snapshot().Over)
	assert.Contains(t, c.DrainEvents(), Event{Type: EventGameOver})

	assert.False(t, c.Apply(types.CommandDrop))
	assert.False(t, c.Apply(types.CommandPause))
}

func TestController_SpawnLocksOnStack(t *testing.T) {
	tests := []struct {
		name        string
		family      tetris.Family
		garbageRows int
		wantSpawned int
		wantOver    bool
	}{
		{
			// the first O rests on the garbage and locks, the second overlaps it
			name:        "lock then overlap ends the game",
			family:      tetris.FamilyO,
			garbageRows: 2,
			wantSpawned: 2,
			wantOver:    true,
		},
		{
			// every I fills row 0 on top of the garbage and clears it again
			name:        "lock that clears its own row is bounded",
			family:      tetris.FamilyI,
			garbageRows: 3,
			wantSpawned: 16,
			wantOver:    false,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestController(tt.family, 4, 4)
			for i := 0; i < tt.garbageRows; i++ {
				require.False(t, c.Playfield().AddIncompleteRow())
			}

			c.Start()

			assert.Equal(t, tt.wantSpawned, c.Stats().PiecesSpawned)
			assert.Equal(t, tt.wantOver, c.Playfield().IsOver())
		})
	}
}

func TestController_Stop(t *testing.T) {
	c := newTestController(tetris.FamilyT, 20, 10)
	c.Start()
	c.Stop()

	assert.True(t, c.Done())
	assert.False(t, c.Running())
	assert.False(t, c.Playfield().IsOver())
	assert.True(t, c.Snapshot().Over)
}

func TestController_AddIncompleteRow(t *testing.T) {
	c := newTestController(tetris.FamilyT, 20, 10)

	assert.False(t, c.AddIncompleteRow(), "ignored before start")
	assert.Zero(t, c.Stats().GarbageRows)

	c.Start()
	assert.False(t, c.AddIncompleteRow())
	assert.Equal(t, 1, c.Stats().GarbageRows)

	// fixedSource leaves the gap in column 0
	assert.False(t, c.Playfield().IsFixed(19, 0))
	for col := 1; col < 10; col++ {
		assert.True(t, c.Playfield().IsFixed(19, col))
		assert.Equal(t, tetris.ColorGarbage, c.Playfield().ColorAt(19, col))
	}
}

func TestController_Snapshot(t *testing.T) {
	c := newTestController(tetris.FamilyO, 20, 10)
	c.Start()

	s := c.Snapshot()
	assert.Equal(t, 20, s.Rows)
	assert.Equal(t, 10, s.Columns)
	assert.Len(t, s.Cells, 200)
	assert.Equal(t, tetris.FamilyO, s.Current)
	assert.Equal(t, tetris.FamilyO, s.Next)
	assert.Equal(t, types.Stats{PiecesSpawned: 1}, s.Stats)
	assert.False(t, s.Over)

	for _, p := range c.Playfield().ActivePiece().Cells() {
		assert.Equal(t, tetris.FamilyO.Color(), s.ColorAt(p.Row, p.Col))
	}
}
