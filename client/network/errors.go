package network

// ErrConnectionClosed is returned when the server closes the connection
type ErrConnectionClosed struct{}

func (e *ErrConnectionClosed) Error() string {
	return "connection closed by server"
}

// ErrLoginFailed is returned when the server rejects the login token
type ErrLoginFailed struct {
	Reason string
}

func (e *ErrLoginFailed) Error() string {
	return "server login failure: " + e.Reason
}
