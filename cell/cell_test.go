package cell

import (
	"slices"
	"testing"

	"github.com/hupe1980/cellkit/backing"
	"github.com/hupe1980/cellkit/cellerr"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func bufferCopy(t *testing.T, kv KeyValue) *Cell {
	t.Helper()
	pad := []byte("pooled-memory:")
	mem, err := Encode(append([]byte(nil), pad...), kv)
	require.NoError(t, err)
	mem = append(mem, "trailing"...)

	c, err := NewBufferCell(mem, len(pad), EncodedLen(kv))
	require.NoError(t, err)
	return c
}

func TestCell_Accessors(t *testing.T) {
	kv := sampleKV()

	arr, err := Build(kv)
	require.NoError(t, err)
	buf := bufferCopy(t, kv)

	for name, c := range map[string]*Cell{"array": arr, "buffer": buf} {
		t.Run(name, func(t *testing.T) {
			assert.Equal(t, "row1", string(c.Row()))
			assert.Equal(t, "cf1", string(c.Family()))
			assert.Equal(t, "qual1", string(c.Qualifier()))
			assert.Equal(t, "value-bytes", string(c.Value()))
			assert.Equal(t, kv.Timestamp, c.Timestamp())
			assert.Equal(t, TypePut, c.Type())
			assert.Equal(t, EncodedLen(kv), c.Len())
			assert.Equal(t, kv, c.KeyValue())

			v, err := c.Field(FieldQualifier)
			require.NoError(t, err)
			assert.Equal(t, "qual1", string(v))

			off, n, err := c.Locate(FieldValue)
			require.NoError(t, err)
			assert.Equal(t, 19, off)
			assert.Equal(t, 11, n)
		})
	}

	assert.True(t, Equal(arr, buf))
	assert.Equal(t, arr.String(), buf.String())
}

func TestCell_NegativeTimestamp(t *testing.T) {
	kv := sampleKV()
	kv.Timestamp = -42

	c, err := Build(kv)
	require.NoError(t, err)
	assert.Equal(t, int64(-42), c.Timestamp())
}

func TestCell_String(t *testing.T) {
	c, err := Build(sampleKV())
	require.NoError(t, err)
	assert.Equal(t, `"row1"/"cf1":"qual1"/1700000000000/Put/vlen=11`, c.String())
}

func TestNewBufferCell_OutOfRange(t *testing.T) {
	_, err := NewBufferCell(make([]byte, 20), 10, 20)
	assert.Error(t, err)
}

func TestCell_Reset(t *testing.T) {
	first := sampleKV()
	second := sampleKV()
	second.Row = []byte("row2")

	var c Cell
	require.NoError(t, c.Reset(backing.NewArray(mustEncode(t, first))))
	assert.Equal(t, "row1", string(c.Row()))

	require.NoError(t, c.Reset(backing.NewArray(mustEncode(t, second))))
	assert.Equal(t, "row2", string(c.Row()))

	err := c.Reset(backing.NewArray(make([]byte, MinSize-1)))
	assert.ErrorIs(t, err, cellerr.ErrMalformedCell)
	assert.Equal(t, "row2", string(c.Row()), "failed reset keeps the previous cell")
}

func mustEncode(t *testing.T, kv KeyValue) []byte {
	t.Helper()
	b, err := Encode(nil, kv)
	require.NoError(t, err)
	return b
}

func TestCompare_Order(t *testing.T) {
	mk := func(row, fam, qual string, ts int64, typ Type) *Cell {
		c, err := Build(KeyValue{Row: []byte(row), Family: []byte(fam), Qualifier: []byte(qual), Timestamp: ts, Type: typ})
		require.NoError(t, err)
		return c
	}

	want := []*Cell{
		mk("a", "cf", "q", 5, TypePut),
		mk("b", "cf", "q", 9, TypeDeleteFamily),
		mk("b", "cf", "q", 9, TypePut),
		mk("b", "cf", "q", 1, TypePut),
		mk("b", "cf", "r", 1, TypePut),
		mk("b", "cg", "", 1, TypePut),
		mk("b\x00", "", "", 0, TypePut),
		mk("\xff", "", "", 0, TypePut),
	}

	got := slices.Clone(want)
	slices.Reverse(got)
	slices.SortFunc(got, Compare)

	for i := range want {
		assert.Same(t, want[i], got[i], "position %d: %s", i, got[i])
	}
}

func TestType_String(t *testing.T) {
	assert.Equal(t, "DeleteColumn", TypeDeleteColumn.String())
	assert.Equal(t, "Type(7)", Type(7).String())
	assert.True(t, TypeDeleteFamily.IsDelete())
	assert.False(t, TypePut.IsDelete())
}
