package cookielog

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/klauspost/compress/gzip"
	"github.com/klauspost/compress/zstd"
)

// Open opens a log file for reading, transparently decompressing
// gzip (.gz) and zstandard (.zst, .zstd) files by extension.
func Open(path string) (io.ReadCloser, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(path)) {
	case ".gz":
		zr, err := gzip.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("gzip %s: %w", path, err)
		}
		return &compressedFile{r: zr, f: f}, nil
	case ".zst", ".zstd":
		zr, err := zstd.NewReader(f)
		if err != nil {
			f.Close()
			return nil, fmt.Errorf("zstd %s: %w", path, err)
		}
		return &compressedFile{r: zr.IOReadCloser(), f: f}, nil
	default:
		return f, nil
	}
}

// compressedFile closes the decompressor and the file behind it.
type compressedFile struct {
	r io.ReadCloser
	f *os.File
}

func (c *compressedFile) Read(p []byte) (int, error) { return c.r.Read(p) }

func (c *compressedFile) Close() error {
	err := c.r.Close()
	if cerr := c.f.Close(); err == nil {
		err = cerr
	}
	return err
}
