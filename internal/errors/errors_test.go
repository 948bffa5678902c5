package errors

import (
	"errors"
	"fmt"
	"strings"
	"testing"
)

// TestSentinelErrors_Are verifies that sentinel errors are properly defined
// and can be checked with errors.Is()
func TestSentinelErrors_Are(t *testing.T) {
	tests := []struct {
		name     string
		err      error
		sentinel error
	}{
		{"ErrInvalidColor", ErrInvalidColor, ErrInvalidColor},
		{"ErrInvalidMoveFormat", ErrInvalidMoveFormat, ErrInvalidMoveFormat},
		{"ErrIllegalMove", ErrIllegalMove, ErrIllegalMove},
		{"ErrImpossiblePosition", ErrImpossiblePosition, ErrImpossiblePosition},
		{"ErrInternalInvariant", ErrInternalInvariant, ErrInternalInvariant},
		{"ErrInvalidPiece", ErrInvalidPiece, ErrInvalidPiece},
		{"ErrInvalidFEN", ErrInvalidFEN, ErrInvalidFEN},
		{"ErrInvalidConfig", ErrInvalidConfig, ErrInvalidConfig},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !errors.Is(tt.err, tt.sentinel) {
				t.Errorf("errors.Is(%v, %v) = false, want true", tt.err, tt.sentinel)
			}
		})
	}
}

// TestSentinelErrors_Distinct guards against two sentinels sharing identity.
func TestSentinelErrors_Distinct(t *testing.T) {
	all := []error{
		ErrInvalidColor, ErrInvalidMoveFormat, ErrIllegalMove, ErrImpossiblePosition,
		ErrInternalInvariant, ErrInvalidPiece, ErrInvalidFEN, ErrInvalidConfig,
	}
	for i, a := range all {
		for j, b := range all {
			if i != j && errors.Is(a, b) {
				t.Errorf("errors.Is(%v, %v) = true, want false", a, b)
			}
		}
	}
}

// TestMoveError_Error verifies the error message format
func TestMoveError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *MoveError
		contains []string
	}{
		{
			name: "full context",
			err: &MoveError{
				Err:    ErrIllegalMove,
				Move:   "e3e4",
				Player: "WHITE",
				Ply:    2,
			},
			contains: []string{"e3e4", "WHITE", "ply 2", "illegal move"},
		},
		{
			name:     "minimal context",
			err:      &MoveError{Err: ErrInvalidMoveFormat},
			contains: []string{"invalid move format"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			msg := tt.err.Error()
			for _, s := range tt.contains {
				if !containsIgnoreCase(msg, s) {
					t.Errorf("MoveError.Error() = %q, should contain %q", msg, s)
				}
			}
		})
	}
}

// TestMoveError_As verifies that errors.As works with MoveError
func TestMoveError_As(t *testing.T) {
	moveErr := &MoveError{Err: ErrIllegalMove, Move: "a3a4", Player: "BLACK"}
	wrapped := fmt.Errorf("applying move: %w", moveErr)

	var extracted *MoveError
	if !errors.As(wrapped, &extracted) {
		t.Fatal("errors.As() could not extract MoveError")
	}
	if extracted.Move != "a3a4" {
		t.Errorf("extracted.Move = %q, want %q", extracted.Move, "a3a4")
	}
	if !errors.Is(wrapped, ErrIllegalMove) {
		t.Error("errors.Is(wrapped, ErrIllegalMove) = false, want true")
	}
}

// TestPositionError_Error verifies PositionError formatting
func TestPositionError_Error(t *testing.T) {
	err := &PositionError{
		Err:    ErrInternalInvariant,
		Square: "e5",
		Detail: "kings on adjacent squares",
	}

	msg := err.Error()
	for _, s := range []string{"e5", "adjacent", "invariant"} {
		if !containsIgnoreCase(msg, s) {
			t.Errorf("PositionError.Error() = %q, should contain %q", msg, s)
		}
	}
	if !errors.Is(err, ErrInternalInvariant) {
		t.Error("errors.Is(err, ErrInternalInvariant) = false, want true")
	}
}

// TestWrap verifies the Wrap helper function
func TestWrap(t *testing.T) {
	wrapped := Wrap(ErrInvalidFEN, "loading position")

	if !errors.Is(wrapped, ErrInvalidFEN) {
		t.Error("Wrap should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "loading position") {
		t.Errorf("Wrap should include context, got %q", wrapped.Error())
	}
	if Wrap(nil, "ignored") != nil {
		t.Error("Wrap(nil) should return nil")
	}
}

// TestWrapf verifies the Wrapf helper function
func TestWrapf(t *testing.T) {
	wrapped := Wrapf(ErrImpossiblePosition, "after move %s", "d1h5")

	if !errors.Is(wrapped, ErrImpossiblePosition) {
		t.Error("Wrapf should preserve the underlying error")
	}
	if !containsIgnoreCase(wrapped.Error(), "after move d1h5") {
		t.Errorf("Wrapf should include formatted context, got %q", wrapped.Error())
	}
}

// containsIgnoreCase checks if s contains substr (case-insensitive).
func containsIgnoreCase(s, substr string) bool {
	return strings.Contains(strings.ToLower(s), strings.ToLower(substr))
}
