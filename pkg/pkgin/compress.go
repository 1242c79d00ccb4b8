package pkgin

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
	"github.com/ulikunitz/xz"
)

// Compression formats recognised by file extension
const (
	CompressionNone = ""
	CompressionGzip = ".gz"
	CompressionXz   = ".xz"
	CompressionZstd = ".zst"
)

// CompressionFor returns the compression format implied by name's extension
func CompressionFor(name string) string {
	switch strings.ToLower(filepath.Ext(name)) {
	case ".gz", ".tgz":
		return CompressionGzip
	case ".xz":
		return CompressionXz
	case ".zst", ".zstd":
		return CompressionZstd
	default:
		return CompressionNone
	}
}

// NewListReader wraps r with the decompressor matching name
func NewListReader(r io.Reader, name string) (io.ReadCloser, error) {
	switch CompressionFor(name) {
	case CompressionGzip:
		zr, err := gzip.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("gzip init: %w", err)
		}
		return zr, nil
	case CompressionXz:
		xr, err := xz.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("xz init: %w", err)
		}
		return io.NopCloser(xr), nil
	case CompressionZstd:
		zr, err := zstd.NewReader(r)
		if err != nil {
			return nil, fmt.Errorf("zstd init: %w", err)
		}
		return zr.IOReadCloser(), nil
	default:
		return io.NopCloser(r), nil
	}
}

// NewListWriter wraps w with the compressor matching name. Closing the
// returned writer flushes the compressor but leaves w open.
func NewListWriter(w io.Writer, name string) (io.WriteCloser, error) {
	switch CompressionFor(name) {
	case CompressionGzip:
		return gzip.NewWriter(w), nil
	case CompressionXz:
		xw, err := xz.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("xz init: %w", err)
		}
		return xw, nil
	case CompressionZstd:
		zw, err := zstd.NewWriter(w)
		if err != nil {
			return nil, fmt.Errorf("zstd init: %w", err)
		}
		return zw, nil
	default:
		return nopWriteCloser{w}, nil
	}
}

type nopWriteCloser struct{ io.Writer }

func (nopWriteCloser) Close() error { return nil }

// prepareImportList returns a plain-text path for filename, decompressing
// into a temporary file when needed. cleanup removes that file.
func prepareImportList(filename string) (path string, cleanup func(), err error) {
	noop := func() {}
	if CompressionFor(filename) == CompressionNone {
		return filename, noop, nil
	}

	src, err := os.Open(filename)
	if err != nil {
		return "", noop, fmt.Errorf("opening import list: %w", err)
	}
	defer src.Close()

	r, err := NewListReader(src, filename)
	if err != nil {
		return "", noop, fmt.Errorf("reading import list %s: %w", filename, err)
	}
	defer r.Close()

	tmp, err := os.CreateTemp("", "pkgin-import-*.txt")
	if err != nil {
		return "", noop, fmt.Errorf("creating temp file: %w", err)
	}
	cleanup = func() { os.Remove(tmp.Name()) }

	if _, err := io.Copy(tmp, r); err != nil {
		tmp.Close()
		cleanup()
		return "", noop, fmt.Errorf("decompressing %s: %w", filename, err)
	}
	if err := tmp.Close(); err != nil {
		cleanup()
		return "", noop, err
	}
	return tmp.Name(), cleanup, nil
}
