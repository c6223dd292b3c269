package cell

import (
	"encoding/binary"
	"strings"
	"testing"

	"github.com/hupe1980/cellkit/backing"
	"github.com/hupe1980/cellkit/cellerr"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleKV() KeyValue {
	return KeyValue{
		Row:       []byte("row1"),
		Family:    []byte("cf1"),
		Qualifier: []byte("qual1"),
		Timestamp: 1700000000000,
		Type:      TypePut,
		Value:     []byte("value-bytes"),
	}
}

func TestEncode_Layout(t *testing.T) {
	kv := sampleKV()

	data, err := Encode(nil, kv)
	require.NoError(t, err)
	require.Len(t, data, EncodedLen(kv))

	assert.Equal(t, uint32(len(kv.Value)), binary.BigEndian.Uint32(data[0:4]))
	assert.Equal(t, uint16(len(kv.Row)), binary.BigEndian.Uint16(data[4:6]))
	assert.Equal(t, "row1", string(data[6:10]))
	assert.Equal(t, byte(3), data[10])
	assert.Equal(t, "cf1", string(data[11:14]))
	assert.Equal(t, "qual1", string(data[14:19]))
	assert.Equal(t, "value-bytes", string(data[19:30]))
	assert.Equal(t, uint64(kv.Timestamp), binary.BigEndian.Uint64(data[30:38]))
	assert.Equal(t, byte(TypePut), data[38])
}

func TestEncode_Appends(t *testing.T) {
	prefix := []byte("keep")
	data, err := Encode(prefix, sampleKV())
	require.NoError(t, err)
	assert.Equal(t, "keep", string(data[:4]))
	assert.Len(t, data, 4+EncodedLen(sampleKV()))
}

func TestEncode_Limits(t *testing.T) {
	kv := sampleKV()
	kv.Row = make([]byte, MaxRowLen+1)
	_, err := Encode(nil, kv)
	assert.ErrorIs(t, err, cellerr.ErrMalformedCell)

	kv = sampleKV()
	kv.Family = make([]byte, MaxFamilyLen+1)
	_, err = Encode(nil, kv)
	assert.ErrorIs(t, err, cellerr.ErrMalformedCell)

	kv = sampleKV()
	kv.Row = make([]byte, MaxRowLen)
	kv.Family = make([]byte, MaxFamilyLen)
	_, err = Encode(nil, kv)
	assert.NoError(t, err)
}

func TestLocate_BothBackings(t *testing.T) {
	kv := sampleKV()
	data, err := Encode(nil, kv)
	require.NoError(t, err)

	mem := append(append([]byte("garbage-before"), data...), "garbage-after"...)
	buf, err := backing.NewBuffer(mem, len("garbage-before"), len(data))
	require.NoError(t, err)

	want := map[Field]string{
		FieldRow:       "row1",
		FieldFamily:    "cf1",
		FieldQualifier: "qual1",
		FieldValue:     "value-bytes",
	}

	for _, b := range []backing.Backing{backing.NewArray(data), buf} {
		for f, w := range want {
			off, n, err := Locate(b, f)
			require.NoError(t, err, f.String())
			v, err := b.Read(off, n)
			require.NoError(t, err)
			assert.Equal(t, w, string(v), f.String())
		}

		off, n, err := Locate(b, FieldTimestamp)
		require.NoError(t, err)
		assert.Equal(t, len(data)-9, off)
		assert.Equal(t, 8, n)

		off, n, err = Locate(b, FieldType)
		require.NoError(t, err)
		assert.Equal(t, len(data)-1, off)
		assert.Equal(t, 1, n)
	}
}

func TestLocate_EmptyFields(t *testing.T) {
	data, err := Encode(nil, KeyValue{})
	require.NoError(t, err)
	require.Len(t, data, MinSize)

	for _, f := range []Field{FieldRow, FieldFamily, FieldQualifier, FieldValue} {
		_, n, err := Locate(backing.NewArray(data), f)
		require.NoError(t, err)
		assert.Zero(t, n, f.String())
	}
}

func TestLocate_Malformed(t *testing.T) {
	valid, err := Encode(nil, sampleKV())
	require.NoError(t, err)

	corrupt := func(fn func(b []byte)) []byte {
		b := append([]byte(nil), valid...)
		fn(b)
		return b
	}

	tests := []struct {
		name string
		data []byte
	}{
		{"too short", valid[:MinSize-1]},
		{"row length too large", corrupt(func(b []byte) { binary.BigEndian.PutUint16(b[4:], 0xffff) })},
		{"family length too large", corrupt(func(b []byte) { b[10] = 0xff })},
		{"value length too large", corrupt(func(b []byte) { binary.BigEndian.PutUint32(b[0:], uint32(len(valid))) })},
		{"value overlaps family", corrupt(func(b []byte) { binary.BigEndian.PutUint32(b[0:], 17) })},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, _, err := Locate(backing.NewArray(tt.data), FieldQualifier)
			require.Error(t, err)
			assert.ErrorIs(t, err, cellerr.ErrMalformedCell)

			_, err = NewArrayCell(tt.data)
			assert.ErrorIs(t, err, cellerr.ErrMalformedCell)
		})
	}
}

func TestLocate_UnknownField(t *testing.T) {
	data, err := Encode(nil, sampleKV())
	require.NoError(t, err)

	_, _, err = Locate(backing.NewArray(data), Field(42))
	assert.ErrorIs(t, err, cellerr.ErrMalformedCell)
	assert.True(t, strings.Contains(err.Error(), "Field(42)"))
}

func TestParseField(t *testing.T) {
	for _, f := range []Field{FieldRow, FieldFamily, FieldQualifier, FieldValue, FieldTimestamp, FieldType} {
		got, err := ParseField(f.String())
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	_, err := ParseField("column")
	assert.Error(t, err)
}
