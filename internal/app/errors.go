package app

import (
	"errors"
	"fmt"
)

// Session errors.
var (
	// ErrQuit signals that the embedder should end the session.
	ErrQuit = errors.New("quit requested")

	// ErrSessionClosed indicates a key arrived after Close.
	ErrSessionClosed = errors.New("session closed")

	// ErrMarkNotSet indicates a jump to a mark that was never set.
	ErrMarkNotSet = errors.New("mark not set")

	// ErrExpressionUnavailable indicates the = register was used without
	// an evaluator.
	ErrExpressionUnavailable = errors.New("expression register unavailable")

	// ErrNoExpression indicates the = register was used before an
	// expression was entered.
	ErrNoExpression = errors.New("no expression entered")
)

// OperationError represents an error that occurred during a specific operation.
type OperationError struct {
	Op     string // Operation name (e.g., "execute", "save macros")
	Target string // Target of the operation (e.g., action name, file path)
	Err    error  // Underlying error
}

// NewOperationError creates a new OperationError.
func NewOperationError(op, target string, err error) *OperationError {
	return &OperationError{
		Op:     op,
		Target: target,
		Err:    err,
	}
}

func (e *OperationError) Error() string {
	if e == nil {
		return ""
	}

	msg := e.Op
	if e.Target != "" {
		msg = fmt.Sprintf("%s %s", e.Op, e.Target)
	}
	if e.Err != nil {
		msg = fmt.Sprintf("%s: %v", msg, e.Err)
	}
	return msg
}

func (e *OperationError) Unwrap() error {
	if e == nil {
		return nil
	}
	return e.Err
}
