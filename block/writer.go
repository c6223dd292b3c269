package block

import (
	"encoding/binary"
	"errors"
	"fmt"
	"io"

	"github.com/hupe1980/cellkit/cell"
	"github.com/hupe1980/cellkit/internal/conv"
)

const (
	// Magic identifies a cell block stream ("CELB").
	Magic uint32 = 0x424c4543
	// Version is the current format version.
	Version uint8 = 1

	headerSize  = 6
	cellLenSize = 4
)

var (
	// ErrCorrupt is returned when block data does not follow the format.
	ErrCorrupt = errors.New("block: corrupt data")
	// ErrUnknownCompression is returned for compression codes this build cannot decode.
	ErrUnknownCompression = errors.New("block: unknown compression")
	// ErrClosed is returned when writing to a closed Writer.
	ErrClosed = errors.New("block: writer closed")
	// ErrReleased is returned when reading cells from a released Block.
	ErrReleased = errors.New("block: block released")
	// ErrFrameTooLarge is returned when a single cell does not fit in MaxFrameSize.
	ErrFrameTooLarge = errors.New("block: frame too large")
)

// Writer appends cells to w as a block stream. It is not safe for concurrent use.
//
// After a write to w fails, the stream may hold a torn frame; every later call
// returns that first error.
type Writer struct {
	w       io.Writer
	err     error
	opts    writerOptions
	buf     []byte // pending uncompressed frame
	frame   []byte // scratch for the encoded frame
	started bool
	closed  bool
	cells   int
	frames  int
	written int64
}

// NewWriter returns a Writer writing to w.
func NewWriter(w io.Writer, opts ...WriterOption) *Writer {
	o := writerOptions{
		compression: CompressionNone,
		blockSize:   DefaultBlockSize,
	}
	for _, opt := range opts {
		opt(&o)
	}
	return &Writer{w: w, opts: o}
}

// Add encodes kv and appends it to the current frame.
func (w *Writer) Add(kv cell.KeyValue) error {
	if err := w.reserve(cell.EncodedLen(kv)); err != nil {
		return err
	}
	start := len(w.buf)
	w.buf = append(w.buf, 0, 0, 0, 0)
	buf, err := cell.Encode(w.buf, kv)
	if err != nil {
		w.buf = w.buf[:start]
		return err
	}
	w.buf = buf
	return w.commit(start)
}

// AddCell appends the encoded bytes of c to the current frame.
func (w *Writer) AddCell(c *cell.Cell) error {
	if err := w.reserve(c.Len()); err != nil {
		return err
	}
	start := len(w.buf)
	w.buf = append(w.buf, 0, 0, 0, 0)
	w.buf = append(w.buf, c.Bytes()...)
	return w.commit(start)
}

// reserve makes room in the current frame for a cell of n bytes, flushing first
// when the frame would outgrow MaxFrameSize.
func (w *Writer) reserve(n int) error {
	if w.err != nil {
		return w.err
	}
	if w.closed {
		return ErrClosed
	}
	need := cellLenSize + n
	if need > maxFrameSize {
		return fmt.Errorf("%w: cell of %d bytes exceeds %d", ErrFrameTooLarge, n, maxFrameSize)
	}
	if len(w.buf)+need > maxFrameSize {
		return w.Flush()
	}
	return nil
}

func (w *Writer) commit(start int) error {
	n, err := conv.IntToUint32(len(w.buf) - start - cellLenSize)
	if err != nil {
		w.buf = w.buf[:start]
		return err
	}
	binary.LittleEndian.PutUint32(w.buf[start:], n)
	w.cells++
	if len(w.buf) >= w.opts.blockSize {
		return w.Flush()
	}
	return nil
}

func (w *Writer) writeHeader() error {
	if w.started {
		return nil
	}
	if !w.opts.compression.valid() {
		return fmt.Errorf("%w: %s", ErrUnknownCompression, w.opts.compression)
	}
	var hdr [headerSize]byte
	binary.LittleEndian.PutUint32(hdr[:], Magic)
	hdr[4] = Version
	hdr[5] = byte(w.opts.compression)
	n, err := w.w.Write(hdr[:])
	w.written += int64(n)
	if err != nil {
		w.err = err
		return err
	}
	w.started = true
	return nil
}

// Flush writes the pending cells as one frame.
func (w *Writer) Flush() error {
	if w.err != nil {
		return w.err
	}
	if err := w.writeHeader(); err != nil {
		return err
	}
	if len(w.buf) == 0 {
		return nil
	}

	frame, err := appendFrame(w.frame[:0], w.buf, w.opts.compression)
	if err != nil {
		return err
	}
	w.frame = frame

	n, err := w.w.Write(frame)
	w.written += int64(n)
	if err != nil {
		w.err = err
		return err
	}
	w.frames++
	w.buf = w.buf[:0]
	return nil
}

// Close flushes pending cells. The stream header is written even when no cell was
// added, so an empty stream still decodes.
func (w *Writer) Close() error {
	if w.closed {
		return w.err
	}
	err := w.Flush()
	w.closed = true
	return err
}

// Cells returns the number of cells added.
func (w *Writer) Cells() int { return w.cells }

// Frames returns the number of frames written.
func (w *Writer) Frames() int { return w.frames }

// BytesWritten returns the number of bytes written to the underlying writer.
func (w *Writer) BytesWritten() int64 { return w.written }
