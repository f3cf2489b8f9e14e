package main

import (
	"testing"

	"github.com/cbodonnell/stackfall/client/drivers"
	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/nsf/termbox-go"
	"github.com/stretchr/testify/assert"
)

func TestKeyAction(t *testing.T) {
	tests := []struct {
		name       string
		event      termbox.Event
		wantAction action
		wantCmd    types.Command
	}{
		{name: "arrow left", event: termbox.Event{Key: termbox.KeyArrowLeft}, wantAction: actionCommand, wantCmd: types.CommandMoveLeft},
		{name: "d", event: termbox.Event{Ch: 'd'}, wantAction: actionCommand, wantCmd: types.CommandMoveRight},
		{name: "arrow up", event: termbox.Event{Key: termbox.KeyArrowUp}, wantAction: actionCommand, wantCmd: types.CommandRotate},
		{name: "space", event: termbox.Event{Key: termbox.KeySpace}, wantAction: actionCommand, wantCmd: types.CommandDrop},
		{name: "pause", event: termbox.Event{Ch: 'p'}, wantAction: actionCommand, wantCmd: types.CommandPause},
		{name: "new game", event: termbox.Event{Ch: 'N'}, wantAction: actionNewGame},
		{name: "escape", event: termbox.Event{Key: termbox.KeyEsc}, wantAction: actionQuit},
		{name: "q", event: termbox.Event{Ch: 'q'}, wantAction: actionQuit},
		{name: "unbound", event: termbox.Event{Ch: 'z'}, wantAction: actionNone},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			act, cmd := keyAction(tt.event)
			assert.Equal(t, tt.wantAction, act)
			assert.Equal(t, tt.wantCmd, cmd)
		})
	}
}

func TestTogglePause(t *testing.T) {
	assert.Equal(t, types.CommandPause, togglePause(types.CommandPause, nil))
	assert.Equal(t, types.CommandPause, togglePause(types.CommandPause, &types.BoardState{}))
	assert.Equal(t, types.CommandResume, togglePause(types.CommandPause, &types.BoardState{Paused: true}))
	assert.Equal(t, types.CommandDrop, togglePause(types.CommandDrop, &types.BoardState{Paused: true}))
}

func TestCellAttribute(t *testing.T) {
	assert.Equal(t, termbox.ColorDefault, cellAttribute(tetris.ColorNone))
	seen := map[termbox.Attribute]bool{}
	for c := range palette {
		attr := cellAttribute(c)
		assert.NotEqual(t, termbox.ColorDefault, attr)
		assert.False(t, seen[attr], "colour %v reused", c)
		seen[attr] = true
	}
}

func TestScreenNotice(t *testing.T) {
	s := &screen{}
	s.notice(drivers.Notice{Type: drivers.NoticeRowsCleared, Count: 2})
	assert.Equal(t, "2 row(s) cleared!", s.message)
	s.notice(drivers.Notice{Type: drivers.NoticeNewPiece})
	assert.Equal(t, "2 row(s) cleared!", s.message)
	s.notice(drivers.Notice{Type: drivers.NoticeGameOver})
	assert.Equal(t, "GAME OVER", s.message)
}
