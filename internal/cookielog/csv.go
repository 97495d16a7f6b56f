package cookielog

import (
	"fmt"
	"strings"
	"time"

	"github.com/crimson-sun/crumb/internal/model"
)

func init() {
	Register("csv", func() Format { return CSV{} })
}

// CSV decodes the two-column cookie,timestamp log format. The first
// line of a CSV log is always a header and is never decoded.
type CSV struct{}

func (CSV) Name() string { return "csv" }

func (CSV) SkipHeader() bool { return true }

// DecodeLine splits the line on commas and requires exactly two
// fields: a cookie identifier and an RFC 3339 timestamp with an
// explicit UTC offset. Both fields are trimmed of surrounding
// whitespace. The timestamp is reduced to its calendar date in the
// offset it was written with.
func (CSV) DecodeLine(line string) (model.LogRecord, error) {
	fields := strings.Split(line, ",")
	if len(fields) != 2 {
		return model.LogRecord{}, fmt.Errorf("expected 2 fields, got %d", len(fields))
	}
	ts, err := time.Parse(time.RFC3339, strings.TrimSpace(fields[1]))
	if err != nil {
		return model.LogRecord{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	return model.LogRecord{
		Cookie: strings.TrimSpace(fields[0]),
		Date:   model.DateOf(ts),
	}, nil
}
