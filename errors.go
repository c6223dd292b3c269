package cellkit

import (
	"errors"

	"github.com/hupe1980/cellkit/cellerr"
)

var (
	// ErrOutOfBounds is returned when a field range exceeds its backing.
	ErrOutOfBounds = cellerr.ErrOutOfBounds
	// ErrMalformedCell is returned for corrupt cells and for fields a comparator
	// cannot interpret, such as a non 8-byte field under a long comparator.
	ErrMalformedCell = cellerr.ErrMalformedCell
	// ErrInvalidCompareOp is returned when a filter pairs a predicate comparator
	// with an ordering operator.
	ErrInvalidCompareOp = errors.New("cellkit: compare op not supported by comparator")
	// ErrNilComparator is returned when a filter is built without a comparator.
	ErrNilComparator = errors.New("cellkit: nil comparator")
)

// BoundsError is the concrete error behind ErrOutOfBounds.
type BoundsError = cellerr.BoundsError

// MalformedCellError is the concrete error behind ErrMalformedCell.
type MalformedCellError = cellerr.MalformedCellError
