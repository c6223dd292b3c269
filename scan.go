package cellkit

import (
	"context"
	"fmt"
	"sync/atomic"
	"time"

	"github.com/RoaringBitmap/roaring/v2"
	"github.com/hupe1980/cellkit/block"
	"github.com/hupe1980/cellkit/cell"
	"golang.org/x/sync/errgroup"
	"golang.org/x/time/rate"
)

// Scanner evaluates a Filter over decoded cell blocks.
//
// A Scanner is safe for concurrent use. The blocks passed to it must stay
// unreleased until the scan returns.
type Scanner struct {
	filter  Filter
	opts    scanOptions
	limiter *rate.Limiter
	logger  *Logger
}

// NewScanner returns a Scanner for f.
func NewScanner(f Filter, opts ...ScanOption) *Scanner {
	o := defaultScanOptions()
	for _, opt := range opts {
		opt(&o)
	}

	s := &Scanner{
		filter: f,
		opts:   o,
		logger: o.logger.WithFilter(f),
	}
	if o.bytesPerSec > 0 {
		s.limiter = rate.NewLimiter(rate.Limit(o.bytesPerSec), o.bytesPerSec)
	}
	return s
}

// Scan evaluates the filter over every cell of b. Bit i of the result is set when
// cell i matched.
func (s *Scanner) Scan(ctx context.Context, b *block.Block) (*roaring.Bitmap, error) {
	start := time.Now()
	bm, err := s.scan(ctx, b)
	var matched uint64
	if err == nil {
		matched = bm.GetCardinality()
	}
	s.opts.metrics.RecordBlock(b.Len(), matched, b.Size(), time.Since(start), err)
	return bm, err
}

func (s *Scanner) scan(ctx context.Context, b *block.Block) (*roaring.Bitmap, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if err := s.throttle(ctx, b.Size()); err != nil {
		return nil, err
	}

	matches := roaring.New()
	err := b.Each(func(i int, c *cell.Cell) error {
		ok, err := s.filter.Match(c)
		if err != nil {
			return fmt.Errorf("cellkit: cell %d: %w", i, err)
		}
		if ok {
			matches.Add(uint32(i)) //nolint:gosec // block cell counts fit in uint32
		}
		return nil
	})
	if err != nil {
		return nil, err
	}
	return matches, nil
}

// ScanAll scans blocks concurrently and returns one bitmap per block, in order.
// The first error cancels the remaining work.
func (s *Scanner) ScanAll(ctx context.Context, blocks []*block.Block) ([]*roaring.Bitmap, error) {
	start := time.Now()
	results := make([]*roaring.Bitmap, len(blocks))

	var cells atomic.Int64
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(s.opts.concurrency)

	for i, b := range blocks {
		g.Go(func() error {
			bm, err := s.Scan(gctx, b)
			if err != nil {
				s.logger.LogBlock(gctx, i, b.Len(), 0, err)
				return fmt.Errorf("cellkit: block %d: %w", i, err)
			}
			cells.Add(int64(b.Len()))
			s.logger.LogBlock(gctx, i, b.Len(), bm.GetCardinality(), nil)
			results[i] = bm
			return nil
		})
	}

	err := g.Wait()
	var matched uint64
	if err == nil {
		for _, bm := range results {
			matched += bm.GetCardinality()
		}
	}
	s.logger.LogScan(ctx, len(blocks), int(cells.Load()), matched, err)
	s.opts.metrics.RecordScan(len(blocks), matched, time.Since(start), err)
	if err != nil {
		return nil, err
	}
	return results, nil
}

// Count returns the number of matching cells across blocks.
func (s *Scanner) Count(ctx context.Context, blocks []*block.Block) (uint64, error) {
	results, err := s.ScanAll(ctx, blocks)
	if err != nil {
		return 0, err
	}
	var n uint64
	for _, bm := range results {
		n += bm.GetCardinality()
	}
	return n, nil
}

func (s *Scanner) throttle(ctx context.Context, n int) error {
	if s.limiter == nil {
		return nil
	}
	for n > 0 {
		step := min(n, s.limiter.Burst())
		if err := s.limiter.WaitN(ctx, step); err != nil {
			return err
		}
		n -= step
	}
	return nil
}
