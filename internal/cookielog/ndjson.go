package cookielog

import (
	"errors"
	"fmt"
	"time"

	"github.com/valyala/fastjson"

	"github.com/crimson-sun/crumb/internal/model"
)

func init() {
	Register("ndjson", func() Format { return &NDJSON{} })
}

// NDJSON decodes newline-delimited JSON logs, one object per line with
// string fields "cookie" and "timestamp". There is no header line.
//
// An NDJSON value is not safe for concurrent use; the embedded parser
// is reused across lines.
type NDJSON struct {
	parser fastjson.Parser
}

func (*NDJSON) Name() string { return "ndjson" }

func (*NDJSON) SkipHeader() bool { return false }

func (n *NDJSON) DecodeLine(line string) (model.LogRecord, error) {
	v, err := n.parser.Parse(line)
	if err != nil {
		return model.LogRecord{}, fmt.Errorf("invalid json: %w", err)
	}
	for _, field := range []string{"cookie", "timestamp"} {
		if !v.Exists(field) {
			return model.LogRecord{}, fmt.Errorf("missing %s field", field)
		}
	}
	cookie := v.GetStringBytes("cookie")
	if cookie == nil {
		return model.LogRecord{}, errors.New("cookie is not a string")
	}
	raw := v.GetStringBytes("timestamp")
	if raw == nil {
		return model.LogRecord{}, errors.New("timestamp is not a string")
	}
	ts, err := time.Parse(time.RFC3339, string(raw))
	if err != nil {
		return model.LogRecord{}, fmt.Errorf("invalid timestamp: %w", err)
	}
	return model.LogRecord{Cookie: string(cookie), Date: model.DateOf(ts)}, nil
}
