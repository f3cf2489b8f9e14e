package game

import (
	"testing"
	"time"

	"github.com/cbodonnell/stackfall/pkg/game/types"
	"github.com/cbodonnell/stackfall/pkg/repositories/models"
	"github.com/cbodonnell/stackfall/pkg/tetris"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestSession(t0 time.Time) *Session {
	c := newTestController(tetris.FamilyT, 20, 10)
	c.Start()
	c.DrainEvents()
	return NewSession(4, "user-4", c, t0)
}

func TestSession_Advance(t *testing.T) {
	t0 := time.UnixMilli(1700000000000)
	s := newTestSession(t0)
	s.dirty = false

	assert.False(t, s.Advance(t0.Add(99*time.Millisecond), 100*time.Millisecond, 0))
	assert.Equal(t, 0, s.Controller().Playfield().ActivePiece().Offset().Row)
	assert.False(t, s.dirty)

	assert.True(t, s.Advance(t0.Add(100*time.Millisecond), 100*time.Millisecond, 0))
	assert.Equal(t, 1, s.Controller().Playfield().ActivePiece().Offset().Row)
	assert.True(t, s.dirty)

	// the step clock restarted at the last step
	assert.False(t, s.Advance(t0.Add(150*time.Millisecond), 100*time.Millisecond, 0))
}

func TestSession_AdvanceGarbage(t *testing.T) {
	t0 := time.UnixMilli(1700000000000)
	s := newTestSession(t0)

	assert.True(t, s.Advance(t0.Add(time.Second), time.Hour, time.Second))
	assert.Equal(t, 1, s.Controller().Stats().GarbageRows)
	assert.Equal(t, 0, s.Controller().Playfield().ActivePiece().Offset().Row)
}

func TestSession_AdvancePausedHoldsClocks(t *testing.T) {
	t0 := time.UnixMilli(1700000000000)
	s := newTestSession(t0)

	require.True(t, s.Apply(types.CommandPause, t0))
	assert.False(t, s.Advance(t0.Add(time.Second), 100*time.Millisecond, time.Second))
	assert.Equal(t, t0.Add(time.Second), s.lastStep)
	assert.Equal(t, t0.Add(time.Second), s.lastGarbage)

	require.True(t, s.Apply(types.CommandResume, t0.Add(2*time.Second)))
	assert.Equal(t, t0.Add(2*time.Second), s.lastStep)
	assert.False(t, s.Advance(t0.Add(2050*time.Millisecond), 100*time.Millisecond, 0))
}

func TestSession_Apply(t *testing.T) {
	t0 := time.UnixMilli(1700000000000)
	s := newTestSession(t0)
	s.dirty = false

	require.True(t, s.Apply(types.CommandMoveLeft, t0.Add(time.Second)))
	assert.True(t, s.dirty)
	assert.Equal(t, t0, s.lastStep)

	require.True(t, s.Apply(types.CommandDrop, t0.Add(time.Second)))
	assert.Equal(t, t0.Add(time.Second), s.lastStep)

	s.dirty = false
	assert.False(t, s.Apply(types.CommandResume, t0.Add(2*time.Second)))
	assert.False(t, s.dirty)
}

func TestSession_SnapshotAndResult(t *testing.T) {
	t0 := time.UnixMilli(1700000000000)
	s := newTestSession(t0)

	snapshot := s.Snapshot(t0.Add(time.Second))
	assert.Equal(t, t0.Add(time.Second).UnixMilli(), snapshot.Timestamp)
	assert.Equal(t, s.ID.String(), snapshot.SessionID)
	assert.Equal(t, tetris.FamilyT, snapshot.Current)

	result := s.result(models.EndReasonStopped, t0.Add(time.Minute))
	assert.Equal(t, s.ID.String(), result.ID)
	assert.Equal(t, "user-4", result.UserID)
	assert.Equal(t, t0.UnixMilli(), result.StartedAt)
	assert.Equal(t, t0.Add(time.Minute).UnixMilli(), result.EndedAt)
	assert.Equal(t, 20, result.Rows)
	assert.Equal(t, 10, result.Columns)
	assert.Equal(t, 1, result.PiecesSpawned)
	assert.Equal(t, models.EndReasonStopped, result.Reason)
}
