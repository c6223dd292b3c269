package cell

import (
	"encoding/binary"
	"math"

	"github.com/hupe1980/cellkit/backing"
	"github.com/hupe1980/cellkit/cellerr"
	"github.com/hupe1980/cellkit/internal/conv"
)

const (
	valueLenSize  = 4
	rowLenSize    = 2
	familyLenSize = 1
	timestampSize = 8
	typeSize      = 1

	headerSize  = valueLenSize + rowLenSize
	trailerSize = timestampSize + typeSize

	// MinSize is the encoded size of a cell whose variable fields are all empty.
	MinSize = headerSize + familyLenSize + trailerSize

	// MaxRowLen is the largest row key the layout can describe.
	MaxRowLen = math.MaxUint16
	// MaxFamilyLen is the largest family the layout can describe.
	MaxFamilyLen = math.MaxUint8
)

// KeyValue holds the logical fields of a cell. It is the input of the
// construction path and the output of Cell.KeyValue.
type KeyValue struct {
	Row       []byte
	Family    []byte
	Qualifier []byte
	Timestamp int64
	Type      Type
	Value     []byte
}

// EncodedLen returns the number of bytes Encode appends for kv.
func EncodedLen(kv KeyValue) int {
	return MinSize + len(kv.Row) + len(kv.Family) + len(kv.Qualifier) + len(kv.Value)
}

// Encode appends the serialized form of kv to dst.
func Encode(dst []byte, kv KeyValue) ([]byte, error) {
	rowLen, err := conv.IntToUint16(len(kv.Row))
	if err != nil {
		return dst, cellerr.Malformed("row", "%d bytes exceeds %d", len(kv.Row), MaxRowLen)
	}
	famLen, err := conv.IntToUint8(len(kv.Family))
	if err != nil {
		return dst, cellerr.Malformed("family", "%d bytes exceeds %d", len(kv.Family), MaxFamilyLen)
	}
	valLen, err := conv.IntToUint32(len(kv.Value))
	if err != nil {
		return dst, cellerr.Malformed("value", "%v", err)
	}

	dst = binary.BigEndian.AppendUint32(dst, valLen)
	dst = binary.BigEndian.AppendUint16(dst, rowLen)
	dst = append(dst, kv.Row...)
	dst = append(dst, famLen)
	dst = append(dst, kv.Family...)
	dst = append(dst, kv.Qualifier...)
	dst = append(dst, kv.Value...)
	dst = binary.BigEndian.AppendUint64(dst, uint64(kv.Timestamp)) //nolint:gosec // two's complement round trip
	dst = append(dst, byte(kv.Type))
	return dst, nil
}

// span is an (offset, length) pair inside a backing.
type span struct {
	off int
	n   int
}

// layout holds the resolved field spans of one cell.
type layout struct {
	row       span
	family    span
	qualifier span
	value     span
	trailer   int
}

func (l *layout) span(f Field) (span, error) {
	switch f {
	case FieldRow:
		return l.row, nil
	case FieldFamily:
		return l.family, nil
	case FieldQualifier:
		return l.qualifier, nil
	case FieldValue:
		return l.value, nil
	case FieldTimestamp:
		return span{off: l.trailer, n: timestampSize}, nil
	case FieldType:
		return span{off: l.trailer + timestampSize, n: typeSize}, nil
	default:
		return span{}, cellerr.Malformed("", "unknown field %s", f)
	}
}

// parseLayout resolves every field span of the cell stored in b. It reads only the
// length prefixes, through b.Read.
func parseLayout(b backing.Backing) (layout, error) {
	total := b.Len()
	if total < MinSize {
		return layout{}, cellerr.Malformed("", "cell is %d bytes, minimum is %d", total, MinSize)
	}

	hdr, err := b.Read(0, headerSize)
	if err != nil {
		return layout{}, err
	}
	valueLen, err := conv.Uint32ToInt(binary.BigEndian.Uint32(hdr))
	if err != nil {
		return layout{}, cellerr.Malformed("value", "%v", err)
	}
	rowLen := int(binary.BigEndian.Uint16(hdr[valueLenSize:]))

	trailer := total - trailerSize
	famLenOff := headerSize + rowLen
	if famLenOff+familyLenSize > trailer {
		return layout{}, cellerr.Malformed("row", "length %d exceeds cell length %d", rowLen, total)
	}

	fl, err := b.Read(famLenOff, familyLenSize)
	if err != nil {
		return layout{}, err
	}
	famLen := int(fl[0])
	famOff := famLenOff + familyLenSize
	qualOff := famOff + famLen
	if qualOff > trailer {
		return layout{}, cellerr.Malformed("family", "length %d exceeds cell length %d", famLen, total)
	}
	if valueLen > trailer-qualOff {
		return layout{}, cellerr.Malformed("value", "length %d exceeds cell length %d", valueLen, total)
	}
	valOff := trailer - valueLen

	return layout{
		row:       span{off: headerSize, n: rowLen},
		family:    span{off: famOff, n: famLen},
		qualifier: span{off: qualOff, n: valOff - qualOff},
		value:     span{off: valOff, n: valueLen},
		trailer:   trailer,
	}, nil
}

// Locate returns the offset and length of field f of the cell stored in b.
//
// Only b.Read and b.Len are used, so the result is the same for every backing
// holding the same bytes. Declared lengths that do not fit the cell yield a
// *cellerr.MalformedCellError.
func Locate(b backing.Backing, f Field) (off, n int, err error) {
	l, err := parseLayout(b)
	if err != nil {
		return 0, 0, err
	}
	s, err := l.span(f)
	if err != nil {
		return 0, 0, err
	}
	return s.off, s.n, nil
}
