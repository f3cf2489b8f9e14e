package constants

import "time"

const (
	// DefaultRows is the height of a standard board
	DefaultRows = 20
	// DefaultColumns is the width of a standard board
	DefaultColumns = 10
	// MinBoardSize is the smallest row or column count that can hold every piece
	MinBoardSize = 4

	// DefaultStepInterval is how often a session drops the active piece by one row
	DefaultStepInterval = 500 * time.Millisecond
	// DefaultLoopInterval is how often the game manager processes input and steps sessions
	DefaultLoopInterval = 50 * time.Millisecond // 20 ticks per second

	// CommandQueueSize is the capacity of the client message queue
	CommandQueueSize = 10000
	// SessionEventQueueSize is the capacity of the session event queue
	SessionEventQueueSize = 1000
)
