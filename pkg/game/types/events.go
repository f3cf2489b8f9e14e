package types

// StartSessionEvent is queued when an authenticated client connects.
type StartSessionEvent struct {
	ClientID uint32
	UserID   string
}

// EndSessionEvent is queued when a client disconnects.
type EndSessionEvent struct {
	ClientID uint32
}
