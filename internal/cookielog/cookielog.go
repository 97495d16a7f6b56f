package cookielog

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"

	"github.com/crimson-sun/crumb/internal/model"
)

// maxLineSize bounds a single log line; longer lines abort the scan.
const maxLineSize = 1024 * 1024

// Parser reads a cookie log and collects its well-formed records.
// Malformed lines are skipped with a warning, never fatal.
type Parser struct {
	format Format
	log    *slog.Logger
}

// NewParser creates a Parser that decodes lines with the given format.
// A nil logger falls back to slog.Default().
func NewParser(format Format, log *slog.Logger) *Parser {
	if log == nil {
		log = slog.Default()
	}
	return &Parser{format: format, log: log}
}

// Parse decodes every line read from r, in order. When the format has
// a header, the first line is discarded without decoding. Lines that
// fail to decode are logged and skipped; the scan continues. Only a
// read failure returns an error.
func (p *Parser) Parse(r io.Reader) ([]model.LogRecord, error) {
	var records []model.LogRecord
	skipped := 0

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	line := 0
	for scanner.Scan() {
		line++
		if line == 1 && p.format.SkipHeader() {
			continue
		}
		rec, err := p.format.DecodeLine(scanner.Text())
		if err != nil {
			skipped++
			p.log.Warn("skipping malformed line", "line", line, "reason", err)
			continue
		}
		records = append(records, rec)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("cookielog: read error: %w", err)
	}

	p.log.Debug("parsed log",
		"format", p.format.Name(),
		"records", len(records),
		"skipped", skipped)
	return records, nil
}

// ParseFile opens path, decompressing if the extension calls for it,
// and parses the contents.
func (p *Parser) ParseFile(path string) ([]model.LogRecord, error) {
	f, err := Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	return p.Parse(f)
}
