// Package compression provides in-memory compression support for Tabular
// with multiple algorithms and pooled compressor state. It backs table
// archiving, where derived sub-tables are kept around in compressed form.
//
// Algorithm trade-offs:
//   - Snappy/S2: best for speed, moderate compression
//   - LZ4: extremely fast, decent compression
//   - Zstd: best compression ratio, good speed
//   - Gzip: wide compatibility, good compression
package compression

import (
	"bytes"
	"compress/gzip"
	"io"
	"sync"

	"github.com/klauspost/compress/s2"
	"github.com/klauspost/compress/snappy"
	"github.com/klauspost/compress/zstd"
	"github.com/pierrec/lz4/v4"

	"github.com/ajitpratap0/tabular/pkg/errors"
	stringpool "github.com/ajitpratap0/tabular/pkg/strings"
)

// Algorithm represents a compression algorithm.
type Algorithm string

const (
	// None represents no compression
	None Algorithm = "none"
	// Gzip represents gzip compression
	Gzip Algorithm = "gzip"
	// Snappy represents snappy compression
	Snappy Algorithm = "snappy"
	// LZ4 represents lz4 compression
	LZ4 Algorithm = "lz4"
	// Zstd represents zstandard compression
	Zstd Algorithm = "zstd"
	// S2 represents s2 compression (Snappy compatible)
	S2 Algorithm = "s2"
)

// ParseAlgorithm maps a config string to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch Algorithm(s) {
	case None, Gzip, Snappy, LZ4, Zstd, S2:
		return Algorithm(s), nil
	default:
		return "", errors.New(errors.ErrorTypeConfig, "unsupported compression algorithm").
			WithDetail("algorithm", s)
	}
}

// Compressor provides compression and decompression functionality.
// All implementations are safe for concurrent use.
type Compressor interface {
	// Compress compresses data and returns the compressed bytes.
	// The input data is not modified.
	Compress(data []byte) ([]byte, error)

	// Decompress decompresses data and returns the original bytes.
	// The input data is not modified.
	Decompress(data []byte) ([]byte, error)

	// Algorithm returns the compression algorithm used.
	Algorithm() Algorithm
}

// NewCompressor creates a new compressor for the given algorithm.
func NewCompressor(algorithm Algorithm) (Compressor, error) {
	switch algorithm {
	case None:
		return &noneCompressor{}, nil
	case Gzip:
		return newGzipCompressor(), nil
	case Snappy:
		return &snappyCompressor{}, nil
	case LZ4:
		return &lz4Compressor{}, nil
	case Zstd:
		return newZstdCompressor(), nil
	case S2:
		return &s2Compressor{}, nil
	default:
		return nil, errors.New(errors.ErrorTypeConfig, "unsupported compression algorithm").
			WithDetail("algorithm", string(algorithm))
	}
}

// None compressor (no compression)
type noneCompressor struct{}

func (nc *noneCompressor) Algorithm() Algorithm { return None }

func (nc *noneCompressor) Compress(data []byte) ([]byte, error) {
	return data, nil
}

func (nc *noneCompressor) Decompress(data []byte) ([]byte, error) {
	return data, nil
}

// Gzip compressor
type gzipCompressor struct {
	writerPool sync.Pool
	readerPool sync.Pool
}

func newGzipCompressor() *gzipCompressor {
	gc := &gzipCompressor{}
	gc.writerPool.New = func() interface{} {
		return gzip.NewWriter(nil)
	}
	gc.readerPool.New = func() interface{} {
		return new(gzip.Reader)
	}
	return gc
}

func (gc *gzipCompressor) Algorithm() Algorithm { return Gzip }

func (gc *gzipCompressor) Compress(data []byte) ([]byte, error) {
	builder := stringpool.GetBuilder(stringpool.Medium)
	defer stringpool.PutBuilder(builder, stringpool.Medium)

	w := gc.writerPool.Get().(*gzip.Writer)
	defer gc.writerPool.Put(w)

	w.Reset(builder)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	result := make([]byte, builder.Len())
	copy(result, builder.Bytes())
	return result, nil
}

func (gc *gzipCompressor) Decompress(data []byte) ([]byte, error) {
	r := gc.readerPool.Get().(*gzip.Reader)
	defer gc.readerPool.Put(r)

	if err := r.Reset(bytes.NewReader(data)); err != nil {
		return nil, err
	}

	builder := stringpool.GetBuilder(stringpool.Medium)
	defer stringpool.PutBuilder(builder, stringpool.Medium)

	if _, err := io.Copy(builder, r); err != nil { //nolint:gosec // G110: archive payloads are caller-owned
		return nil, err
	}

	result := make([]byte, builder.Len())
	copy(result, builder.Bytes())
	return result, nil
}

// Snappy compressor
type snappyCompressor struct{}

func (sc *snappyCompressor) Algorithm() Algorithm { return Snappy }

func (sc *snappyCompressor) Compress(data []byte) ([]byte, error) {
	return snappy.Encode(nil, data), nil
}

func (sc *snappyCompressor) Decompress(data []byte) ([]byte, error) {
	return snappy.Decode(nil, data)
}

// S2 compressor (Snappy-compatible but better compression)
type s2Compressor struct{}

func (sc *s2Compressor) Algorithm() Algorithm { return S2 }

func (sc *s2Compressor) Compress(data []byte) ([]byte, error) {
	return s2.Encode(nil, data), nil
}

func (sc *s2Compressor) Decompress(data []byte) ([]byte, error) {
	return s2.Decode(nil, data)
}

// LZ4 compressor
type lz4Compressor struct{}

func (lc *lz4Compressor) Algorithm() Algorithm { return LZ4 }

func (lc *lz4Compressor) Compress(data []byte) ([]byte, error) {
	builder := stringpool.GetBuilder(stringpool.Medium)
	defer stringpool.PutBuilder(builder, stringpool.Medium)

	w := lz4.NewWriter(builder)
	if _, err := w.Write(data); err != nil {
		return nil, err
	}
	if err := w.Close(); err != nil {
		return nil, err
	}

	result := make([]byte, builder.Len())
	copy(result, builder.Bytes())
	return result, nil
}

func (lc *lz4Compressor) Decompress(data []byte) ([]byte, error) {
	r := lz4.NewReader(bytes.NewReader(data))

	builder := stringpool.GetBuilder(stringpool.Medium)
	defer stringpool.PutBuilder(builder, stringpool.Medium)

	if _, err := io.Copy(builder, r); err != nil { //nolint:gosec // G110: archive payloads are caller-owned
		return nil, err
	}

	result := make([]byte, builder.Len())
	copy(result, builder.Bytes())
	return result, nil
}

// Zstd compressor
type zstdCompressor struct {
	encoderPool sync.Pool
	decoderPool sync.Pool
}

func newZstdCompressor() *zstdCompressor {
	zc := &zstdCompressor{}
	zc.encoderPool.New = func() interface{} {
		enc, _ := zstd.NewWriter(nil)
		return enc
	}
	zc.decoderPool.New = func() interface{} {
		dec, _ := zstd.NewReader(nil)
		return dec
	}
	return zc
}

func (zc *zstdCompressor) Algorithm() Algorithm { return Zstd }

func (zc *zstdCompressor) Compress(data []byte) ([]byte, error) {
	enc := zc.encoderPool.Get().(*zstd.Encoder)
	defer zc.encoderPool.Put(enc)

	return enc.EncodeAll(data, nil), nil
}

func (zc *zstdCompressor) Decompress(data []byte) ([]byte, error) {
	dec := zc.decoderPool.Get().(*zstd.Decoder)
	defer zc.decoderPool.Put(dec)

	return dec.DecodeAll(data, nil)
}
