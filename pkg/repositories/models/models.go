package models

// EndReason describes why a session finished.
type EndReason string

const (
	EndReasonGameOver     EndReason = "game_over"
	EndReasonStopped      EndReason = "stopped"
	EndReasonDisconnected EndReason = "disconnected"
)

// SessionResult is the summary stored when a session finishes. It cannot be
// used to resume a game.
type SessionResult struct {
	ID            string    `json:"id"`
	UserID        string    `json:"user_id"`
	StartedAt     int64     `json:"started_at"`
	EndedAt       int64     `json:"ended_at"`
	Rows          int       `json:"rows"`
	Columns       int       `json:"columns"`
	RowsCleared   int       `json:"rows_cleared"`
	PiecesSpawned int       `json:"pieces_spawned"`
	GarbageRows   int       `json:"garbage_rows"`
	Reason        EndReason `json:"reason"`
}
