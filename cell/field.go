package cell

import "fmt"

// Field identifies a logical field of a cell.
type Field uint8

const (
	// FieldRow is the row key.
	FieldRow Field = iota
	// FieldFamily is the column family.
	FieldFamily
	// FieldQualifier is the column qualifier.
	FieldQualifier
	// FieldValue is the cell value.
	FieldValue
	// FieldTimestamp is the 8-byte big endian timestamp.
	FieldTimestamp
	// FieldType is the 1-byte type tag.
	FieldType
)

var fieldNames = [...]string{
	FieldRow:       "row",
	FieldFamily:    "family",
	FieldQualifier: "qualifier",
	FieldValue:     "value",
	FieldTimestamp: "timestamp",
	FieldType:      "type",
}

func (f Field) String() string {
	if int(f) < len(fieldNames) {
		return fieldNames[f]
	}
	return fmt.Sprintf("Field(%d)", uint8(f))
}

// ParseField returns the Field named s.
func ParseField(s string) (Field, error) {
	for i, name := range fieldNames {
		if name == s {
			return Field(i), nil
		}
	}
	return 0, fmt.Errorf("cell: unknown field %q", s)
}
