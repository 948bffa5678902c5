// Package errors provides sentinel errors and error types for the chess engine.
// It defines the rule-violation conditions surfaced to callers and structured
// error types that preserve context while allowing inspection with errors.Is()
// and errors.As().
package errors

import (
	"errors"
	"fmt"
	"strings"
)

// Sentinel errors for common failure conditions.
// Use these with errors.Is() to check for specific error types.
var (
	// ErrInvalidColor indicates a player token other than WHITE or BLACK.
	ErrInvalidColor = errors.New("invalid color")

	// ErrInvalidMoveFormat indicates a malformed move or castle token.
	ErrInvalidMoveFormat = errors.New("invalid move format")

	// ErrIllegalMove indicates a move whose preconditions do not hold,
	// such as moving from an empty square.
	ErrIllegalMove = errors.New("illegal move")

	// ErrImpossiblePosition indicates both kings are in check at once.
	ErrImpossiblePosition = errors.New("impossible position")

	// ErrInternalInvariant indicates an engine invariant was broken,
	// such as the two kings standing on adjacent squares.
	ErrInternalInvariant = errors.New("internal invariant violated")

	// ErrInvalidPiece indicates a piece identifier outside the catalog.
	ErrInvalidPiece = errors.New("invalid piece identifier")

	// ErrInvalidFEN indicates a malformed FEN string.
	ErrInvalidFEN = errors.New("invalid FEN string")

	// ErrInvalidConfig indicates invalid configuration values.
	ErrInvalidConfig = errors.New("invalid configuration")
)

// MoveError wraps errors with move context: the move token, the player
// making it and the search ply where it happened. It supports unwrapping
// via errors.Is() and errors.As().
type MoveError struct {
	Err    error  // The underlying error
	Move   string // Move token that caused the error (if known)
	Player string // Player token (if known)
	Ply    int    // Search ply (0 if not applicable)
}

// Error returns a formatted error message including all available context.
func (e *MoveError) Error() string {
	var parts []string

	if e.Move != "" {
		parts = append(parts, fmt.Sprintf("move %q", e.Move))
	}
	if e.Player != "" {
		parts = append(parts, fmt.Sprintf("player %s", e.Player))
	}
	if e.Ply > 0 {
		parts = append(parts, fmt.Sprintf("ply %d", e.Ply))
	}

	context := strings.Join(parts, ", ")
	if e.Err != nil {
		if context == "" {
			return e.Err.Error()
		}
		return fmt.Sprintf("%s: %v", context, e.Err)
	}
	if context == "" {
		return "move error"
	}
	return context
}

// Unwrap returns the underlying error, enabling errors.Is() and errors.As()
// to work through the MoveError wrapper.
func (e *MoveError) Unwrap() error {
	return e.Err
}

// PositionError reports a problem tied to a board location.
type PositionError struct {
	Err    error  // The underlying error
	Square string // Square in algebraic form, e.g. "e4" (if known)
	Detail string // Additional description
}

// Error returns a formatted error message with square and detail context.
func (e *PositionError) Error() string {
	var parts []string
	if e.Square != "" {
		parts = append(parts, "square "+e.Square)
	}
	if e.Detail != "" {
		parts = append(parts, e.Detail)
	}

	if e.Err != nil {
		if len(parts) > 0 {
			return fmt.Sprintf("%s: %v", strings.Join(parts, ": "), e.Err)
		}
		return e.Err.Error()
	}

	if len(parts) > 0 {
		return strings.Join(parts, ": ")
	}
	return "position error"
}

// Unwrap returns the underlying error.
func (e *PositionError) Unwrap() error {
	return e.Err
}

// Wrap adds context to an error while preserving the underlying error
// for inspection with errors.Is() and errors.As().
func Wrap(err error, context string) error {
	if err == nil {
		return nil
	}
	return fmt.Errorf("%s: %w", context, err)
}

// Wrapf adds formatted context to an error while preserving the underlying
// error for inspection with errors.Is() and errors.As().
func Wrapf(err error, format string, args ...interface{}) error {
	if err == nil {
		return nil
	}
	return Wrap(err, fmt.Sprintf(format, args...))
}
