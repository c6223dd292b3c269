package block

import (
	"encoding/binary"
	"errors"
	"fmt"
	"sync"

	"github.com/hupe1980/cellkit/internal/conv"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"
)

// Compression selects the frame compression algorithm.
type Compression uint8

const (
	// CompressionNone stores frames raw; decoded cells point straight into the input.
	CompressionNone Compression = 0
	// CompressionLZ4 uses LZ4 block compression (fast, good for hot data).
	CompressionLZ4 Compression = 1
	// CompressionZSTD uses ZSTD (better ratio, good for cold data).
	CompressionZSTD Compression = 2
)

func (c Compression) String() string {
	switch c {
	case CompressionNone:
		return "none"
	case CompressionLZ4:
		return "lz4"
	case CompressionZSTD:
		return "zstd"
	default:
		return fmt.Sprintf("Compression(%d)", uint8(c))
	}
}

func (c Compression) valid() bool {
	return c <= CompressionZSTD
}

// ZSTD encoder/decoder pools for efficiency
var (
	zstdEncoderPool sync.Pool
	zstdDecoderPool sync.Pool
)

func getZstdEncoder() *zstd.Encoder {
	if v := zstdEncoderPool.Get(); v != nil {
		return v.(*zstd.Encoder)
	}
	enc, _ := zstd.NewWriter(nil, zstd.WithEncoderLevel(zstd.SpeedDefault))
	return enc
}

func putZstdEncoder(enc *zstd.Encoder) {
	zstdEncoderPool.Put(enc)
}

func getZstdDecoder() *zstd.Decoder {
	if v := zstdDecoderPool.Get(); v != nil {
		return v.(*zstd.Decoder)
	}
	dec, _ := zstd.NewReader(nil)
	return dec
}

func putZstdDecoder(dec *zstd.Decoder) {
	zstdDecoderPool.Put(dec)
}

const frameHeaderSize = 8

// MaxFrameSize is the largest uncompressed frame the writer produces and the
// decoder accepts.
const MaxFrameSize = 256 << 20

// maxFrameSize is MaxFrameSize, lowered by tests.
var maxFrameSize = MaxFrameSize

// lz4MaxRatio bounds LZ4 block expansion: one compressed byte encodes at most 255
// bytes of match length.
const lz4MaxRatio = 255

// checkRawSize rejects a claimed uncompressed size that compSize bytes of c
// cannot produce, before any buffer is allocated for it.
func checkRawSize(rawSize, compSize int, c Compression) error {
	if rawSize > maxFrameSize {
		return fmt.Errorf("uncompressed size %d exceeds %d", rawSize, maxFrameSize)
	}
	if c == CompressionLZ4 && rawSize/lz4MaxRatio > compSize {
		return fmt.Errorf("uncompressed size %d impossible for %d lz4 bytes", rawSize, compSize)
	}
	return nil
}

// appendFrame appends data as one frame to dst. The frame is stored raw when
// compression is off or does not pay (ratio > 0.9).
func appendFrame(dst, data []byte, c Compression) ([]byte, error) {
	rawSize, err := conv.IntToUint32(len(data))
	if err != nil {
		return dst, err
	}

	var compressed []byte
	switch c {
	case CompressionLZ4:
		compressed, err = compressLZ4(data)
	case CompressionZSTD:
		enc := getZstdEncoder()
		compressed = enc.EncodeAll(data, nil)
		putZstdEncoder(enc)
	}
	if err != nil {
		return dst, err
	}

	if len(compressed) == 0 || float64(len(compressed)) > float64(len(data))*0.9 {
		dst = binary.LittleEndian.AppendUint32(dst, rawSize)
		dst = binary.LittleEndian.AppendUint32(dst, 0) // 0 = raw
		return append(dst, data...), nil
	}

	dst = binary.LittleEndian.AppendUint32(dst, rawSize)
	dst = binary.LittleEndian.AppendUint32(dst, uint32(len(compressed))) //nolint:gosec // smaller than rawSize
	return append(dst, compressed...), nil
}

func compressLZ4(data []byte) ([]byte, error) {
	compressed := make([]byte, lz4.CompressBlockBound(len(data)))
	n, err := lz4.CompressBlock(data, compressed, nil)
	if err != nil {
		return nil, err
	}
	if n == 0 {
		return nil, nil // Incompressible
	}
	return compressed[:n], nil
}

// decompressInto decodes src into dst, which must have exactly the uncompressed length.
func decompressInto(dst, src []byte, c Compression) error {
	switch c {
	case CompressionLZ4:
		n, err := lz4.UncompressBlock(src, dst)
		if err != nil {
			return err
		}
		if n != len(dst) {
			return errors.New("decompressed size mismatch")
		}
		return nil
	case CompressionZSTD:
		dec := getZstdDecoder()
		defer putZstdDecoder(dec)

		decoded, err := dec.DecodeAll(src, dst[:0])
		if err != nil {
			return err
		}
		if len(decoded) != len(dst) {
			return errors.New("decompressed size mismatch")
		}
		if len(dst) > 0 && &decoded[0] != &dst[0] {
			copy(dst, decoded)
		}
		return nil
	default:
		return fmt.Errorf("%w: %s", ErrUnknownCompression, c)
	}
}
