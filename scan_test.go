package cellkit

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"log/slog"
	"testing"
	"time"

	"github.com/hupe1980/cellkit/block"
	"github.com/hupe1980/cellkit/cell"
	"github.com/hupe1980/cellkit/comparator"
	"github.com/hupe1980/cellkit/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func scanBlocks(t testing.TB, n int) []*block.Block {
	t.Helper()

	var out bytes.Buffer
	w := block.NewWriter(&out, block.WithCompression(block.CompressionLZ4), block.WithBlockSize(512))
	for i := 0; i < n; i++ {
		require.NoError(t, w.Add(cell.KeyValue{
			Row:       []byte(fmt.Sprintf("row%04d", i)),
			Family:    []byte("cf1"),
			Qualifier: []byte(fmt.Sprintf("qual%d", i%3)),
			Timestamp: int64(i),
			Type:      cell.TypePut,
			Value:     longBytes(int64(i)),
		}))
	}
	require.NoError(t, w.Close())

	blocks, err := block.Decode(out.Bytes())
	require.NoError(t, err)
	require.NotEmpty(t, blocks)
	t.Cleanup(func() {
		for _, b := range blocks {
			b.Release()
		}
	})
	return blocks
}

func qual0Filter(t testing.TB) Filter {
	t.Helper()
	f, err := NewQualifierFilter(Equal, comparator.NewBinary([]byte("qual0")))
	require.NoError(t, err)
	return f
}

func TestScanner_ScanAllMatchesSequential(t *testing.T) {
	blocks := scanBlocks(t, 200)
	require.Greater(t, len(blocks), 1)
	f := qual0Filter(t)

	parallel, err := NewScanner(f, WithConcurrency(4)).ScanAll(context.Background(), blocks)
	require.NoError(t, err)
	require.Len(t, parallel, len(blocks))

	seq := NewScanner(f, WithConcurrency(1))
	var total uint64
	for i, b := range blocks {
		bm, err := seq.Scan(context.Background(), b)
		require.NoError(t, err)
		assert.True(t, bm.Equals(parallel[i]), "block %d", i)

		it := bm.Iterator()
		for it.HasNext() {
			c, err := b.Cell(int(it.Next()))
			require.NoError(t, err)
			assert.Equal(t, []byte("qual0"), c.Qualifier())
		}
		total += bm.GetCardinality()
	}

	// qual0 is every third cell of 200.
	assert.Equal(t, uint64(67), total)

	n, err := NewScanner(f).Count(context.Background(), blocks)
	require.NoError(t, err)
	assert.Equal(t, total, n)
}

func TestScanner_FilterError(t *testing.T) {
	blocks := scanBlocks(t, 50)

	// Values are 8-byte longs, so a long comparator on the row fails.
	f, err := NewRowFilter(Equal, comparator.NewLong(1))
	require.NoError(t, err)

	_, err = NewScanner(f, WithConcurrency(2)).ScanAll(context.Background(), blocks)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrMalformedCell)
	assert.Contains(t, err.Error(), "block")
	assert.Contains(t, err.Error(), "row filter")
}

func TestScanner_Canceled(t *testing.T) {
	blocks := scanBlocks(t, 50)

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewScanner(qual0Filter(t)).ScanAll(ctx, blocks)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestScanner_RateLimit(t *testing.T) {
	blocks := scanBlocks(t, 50)

	ctx, cancel := context.WithTimeout(context.Background(), 50*time.Millisecond)
	defer cancel()

	_, err := NewScanner(qual0Filter(t), WithRateLimit(1)).Scan(ctx, blocks[0])
	assert.Error(t, err)

	n, err := NewScanner(qual0Filter(t), WithRateLimit(1<<30)).Count(context.Background(), blocks)
	require.NoError(t, err)
	assert.Equal(t, uint64(17), n)
}

func TestScanner_Logging(t *testing.T) {
	blocks := scanBlocks(t, 20)

	var buf bytes.Buffer
	logger := NewLogger(slog.NewJSONHandler(&buf, &slog.HandlerOptions{Level: slog.LevelDebug}))

	_, err := NewScanner(qual0Filter(t), WithLogger(logger)).ScanAll(context.Background(), blocks)
	require.NoError(t, err)

	out := buf.String()
	assert.Contains(t, out, `"msg":"scan completed"`)
	assert.Contains(t, out, `"msg":"block scanned"`)
	assert.Contains(t, out, `"filter":"qualifier equal binary"`)
	assert.Contains(t, out, `"matched":7`)
}

func TestScanner_NilLogger(t *testing.T) {
	blocks := scanBlocks(t, 10)
	s := NewScanner(NewFilterList(MustPassAll), WithLogger(nil), WithConcurrency(0))

	n, err := s.Count(context.Background(), blocks)
	require.NoError(t, err)
	assert.Equal(t, uint64(10), n)
}

func TestDescribeFilter(t *testing.T) {
	assert.Equal(t, "qualifier equal binary", describeFilter(qual0Filter(t)))
	assert.Equal(t, "list(one)", describeFilter(NewFilterList(MustPassOne)))
	assert.Equal(t, "custom", describeFilter(errFilter{errors.New("x")}))
}

func TestScanner_Metrics(t *testing.T) {
	blocks := scanBlocks(t, 50)
	mc := &BasicMetricsCollector{}

	n, err := NewScanner(qual0Filter(t), WithMetrics(mc)).Count(context.Background(), blocks)
	require.NoError(t, err)

	var size int
	for _, b := range blocks {
		size += b.Size()
	}

	stats := mc.GetStats()
	assert.Equal(t, int64(len(blocks)), stats.BlockCount)
	assert.Zero(t, stats.BlockErrors)
	assert.Equal(t, int64(50), stats.CellsScanned)
	assert.Equal(t, int64(n), stats.CellsMatched) //nolint:gosec
	assert.Equal(t, int64(size), stats.BytesScanned)
	assert.Equal(t, int64(1), stats.ScanCount)
	assert.Zero(t, stats.ScanErrors)

	f, err := NewRowFilter(Equal, comparator.NewLong(1))
	require.NoError(t, err)
	_, err = NewScanner(f, WithMetrics(mc), WithConcurrency(1)).ScanAll(context.Background(), blocks[:1])
	require.Error(t, err)

	stats = mc.GetStats()
	assert.Equal(t, int64(1), stats.BlockErrors)
	assert.Equal(t, int64(1), stats.ScanErrors)
	assert.Equal(t, int64(2), stats.ScanCount)
}

func BenchmarkScanner_ScanAll(b *testing.B) {
	rng := testutil.NewRNG(7)

	var out bytes.Buffer
	w := block.NewWriter(&out, block.WithCompression(block.CompressionZSTD))
	for i := 0; i < 20000; i++ {
		// Skewed row distribution, as in a table with hot rows.
		require.NoError(b, w.Add(cell.KeyValue{
			Row:       []byte(fmt.Sprintf("row%05d", rng.Zipf(1000, 1.1))),
			Family:    []byte("cf1"),
			Qualifier: rng.Key(4, 12),
			Timestamp: int64(i),
			Type:      cell.TypePut,
			Value:     longBytes(rng.Int63()),
		}))
	}
	require.NoError(b, w.Close())

	blocks, err := block.Decode(out.Bytes())
	require.NoError(b, err)
	defer func() {
		for _, blk := range blocks {
			blk.Release()
		}
	}()

	f, err := NewRowFilter(Less, comparator.NewBinary([]byte("row00010")))
	require.NoError(b, err)
	s := NewScanner(f)

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.ScanAll(context.Background(), blocks); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScanner_Scan(b *testing.B) {
	var out bytes.Buffer
	w := block.NewWriter(&out)
	for i := 0; i < 1000; i++ {
		require.NoError(b, w.Add(cell.KeyValue{
			Row:       []byte(fmt.Sprintf("row%04d", i)),
			Family:    []byte("cf1"),
			Qualifier: []byte(fmt.Sprintf("qual%d", i%3)),
			Type:      cell.TypePut,
			Value:     longBytes(int64(i)),
		}))
	}
	require.NoError(b, w.Close())

	blocks, err := block.Decode(out.Bytes())
	require.NoError(b, err)
	require.Len(b, blocks, 1)

	s := NewScanner(qual0Filter(b))

	b.ReportAllocs()
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := s.Scan(context.Background(), blocks[0]); err != nil {
			b.Fatal(err)
		}
	}
}
