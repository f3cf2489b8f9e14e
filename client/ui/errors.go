package ui

// ActionableError carries a message the player can act on, shown as is by
// the scenes in place of a generic failure.
type ActionableError struct {
	Message string
}

func NewActionableError(message string) *ActionableError {
	return &ActionableError{
		Message: message,
	}
}

func (e *ActionableError) Error() string {
	return e.Message
}
