// Package cookielog reads cookie log files into records the analyzer
// can consume. A log is a sequence of lines, each carrying a cookie
// identifier and a timestamp; the package decodes the well-formed
// lines and skips the rest with a diagnostic.
package cookielog

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/crimson-sun/crumb/internal/model"
)

// Format decodes a single log line into a LogRecord.
type Format interface {
	// Name returns the registry name of the format.
	Name() string

	// SkipHeader reports whether the first line of a file in this
	// format is a header to discard before decoding.
	SkipHeader() bool

	// DecodeLine parses one line. The returned record carries the
	// cookie identifier and the timestamp's calendar date.
	DecodeLine(line string) (model.LogRecord, error)
}

// Constructor is a function that creates a new Format instance.
type Constructor func() Format

var registry = map[string]Constructor{}

// Register adds a format constructor under the given name.
func Register(name string, ctor Constructor) {
	registry[name] = ctor
}

// Get returns the format constructor for the given name.
func Get(name string) (Constructor, error) {
	ctor, ok := registry[name]
	if !ok {
		return nil, fmt.Errorf("unknown log format: %s", name)
	}
	return ctor, nil
}

// Formats returns the names of all registered formats.
func Formats() []string {
	names := make([]string, 0, len(registry))
	for name := range registry {
		names = append(names, name)
	}
	return names
}

// Detect guesses the format name from the file extension, looking past
// a trailing compression suffix. Anything unrecognized is treated as csv.
func Detect(path string) string {
	base := path
	switch strings.ToLower(filepath.Ext(base)) {
	case ".gz", ".zst", ".zstd":
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}
	switch strings.ToLower(filepath.Ext(base)) {
	case ".ndjson", ".jsonl", ".json":
		return "ndjson"
	default:
		return "csv"
	}
}
