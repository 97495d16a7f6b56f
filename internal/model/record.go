package model

// LogRecord is one parsed cookie log entry: an opaque cookie identifier
// and the calendar date it was seen on. Records are immutable values —
// the parser constructs them, the aggregator only reads them. The
// identifier carries no format constraints; it is never canonicalized,
// case-folded, or trimmed here (the parser trims raw fields before
// construction).
type LogRecord struct {
	Cookie string
	Date   Date
}
