package block

// DefaultBlockSize is the uncompressed size at which the writer cuts a frame.
const DefaultBlockSize = 64 << 10

type writerOptions struct {
	compression Compression
	blockSize   int
}

// WriterOption configures a Writer.
type WriterOption func(*writerOptions)

// WithCompression sets the frame compression. Default: CompressionNone.
func WithCompression(c Compression) WriterOption {
	return func(o *writerOptions) {
		o.compression = c
	}
}

// WithBlockSize sets the target uncompressed frame size. Values <= 0 select
// DefaultBlockSize. A frame always holds at least one cell, so a cell larger than
// the block size gets a frame of its own.
func WithBlockSize(n int) WriterOption {
	return func(o *writerOptions) {
		if n <= 0 {
			n = DefaultBlockSize
		}
		o.blockSize = n
	}
}
