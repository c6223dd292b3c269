// Package cellerr defines the error kinds shared by the cell and comparator packages.
//
// Both kinds are contract violations (a caller asked for bytes that do not exist, or the
// cell bytes are corrupt). None of them are retryable.
package cellerr

import (
	"errors"
	"fmt"
)

var (
	// ErrOutOfBounds is matched by every *BoundsError via errors.Is.
	ErrOutOfBounds = errors.New("cell: range out of bounds")
	// ErrMalformedCell is matched by every *MalformedCellError via errors.Is.
	ErrMalformedCell = errors.New("cell: malformed cell")
)

// BoundsError reports a read of [Offset, Offset+Length) against a region of Extent bytes.
type BoundsError struct {
	Offset int
	Length int
	Extent int
}

func (e *BoundsError) Error() string {
	return fmt.Sprintf("cell: range [%d, %d+%d) out of bounds for extent %d", e.Offset, e.Offset, e.Length, e.Extent)
}

// Is reports whether target is ErrOutOfBounds.
func (e *BoundsError) Is(target error) bool { return target == ErrOutOfBounds }

// CheckBounds returns a *BoundsError unless 0 <= off, 0 <= n and off+n <= extent.
func CheckBounds(off, n, extent int) error {
	if off < 0 || n < 0 || off > extent || n > extent-off {
		return &BoundsError{Offset: off, Length: n, Extent: extent}
	}
	return nil
}

// MalformedCellError reports cell bytes whose declared lengths do not fit the cell,
// or a field that cannot be interpreted by a comparator.
type MalformedCellError struct {
	Reason string
	// Field is the name of the affected field, if known.
	Field string
}

func (e *MalformedCellError) Error() string {
	if e.Field != "" {
		return fmt.Sprintf("cell: malformed %s: %s", e.Field, e.Reason)
	}
	return "cell: malformed: " + e.Reason
}

// Is reports whether target is ErrMalformedCell.
func (e *MalformedCellError) Is(target error) bool { return target == ErrMalformedCell }

// Malformed is shorthand for a *MalformedCellError with a formatted reason.
func Malformed(field, format string, args ...any) error {
	return &MalformedCellError{Field: field, Reason: fmt.Sprintf(format, args...)}
}
