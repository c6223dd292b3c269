package cell

import "fmt"

// Type is the cell type tag stored in the last byte of a cell.
type Type uint8

// Type codes. Deletes sort before puts for the same coordinates because types
// are ordered descending.
const (
	TypeMinimum             Type = 0
	TypePut                 Type = 4
	TypeDelete              Type = 8
	TypeDeleteFamilyVersion Type = 10
	TypeDeleteColumn        Type = 12
	TypeDeleteFamily        Type = 14
	TypeMaximum             Type = 255
)

func (t Type) String() string {
	switch t {
	case TypeMinimum:
		return "Minimum"
	case TypePut:
		return "Put"
	case TypeDelete:
		return "Delete"
	case TypeDeleteFamilyVersion:
		return "DeleteFamilyVersion"
	case TypeDeleteColumn:
		return "DeleteColumn"
	case TypeDeleteFamily:
		return "DeleteFamily"
	case TypeMaximum:
		return "Maximum"
	default:
		return fmt.Sprintf("Type(%d)", uint8(t))
	}
}

// IsDelete reports whether t is one of the delete markers.
func (t Type) IsDelete() bool {
	switch t {
	case TypeDelete, TypeDeleteFamilyVersion, TypeDeleteColumn, TypeDeleteFamily:
		return true
	default:
		return false
	}
}
