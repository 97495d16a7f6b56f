// Package activity computes which cookies were most active on a given
// calendar date. It is pure: no I/O, no logging, no retained state —
// diagnostics around it belong to the calling pipeline.
package activity

import (
	"errors"

	"github.com/crimson-sun/crumb/internal/model"
)

// ErrNoTargetDate is returned when FindMostActive is called without a
// target date. It is the only error the aggregation can produce;
// malformed records never reach this package (the parser drops them).
var ErrNoTargetDate = errors.New("target date must be specified")

// FindMostActive returns every cookie identifier tied for the highest
// occurrence count on target, in the order each identifier was first
// seen while scanning the date-filtered records. An empty input, or an
// input with no records on target, yields an empty result and no error.
//
// The records may arrive in any order and may repeat identifiers across
// dates; only exact Date equality counts. Calling twice with the same
// inputs produces identical, identically ordered output.
func FindMostActive(records []model.LogRecord, target model.Date) ([]string, error) {
	if target.IsZero() {
		return nil, ErrNoTargetDate
	}

	t := newTally()
	for _, rec := range records {
		if rec.Date == target {
			t.add(rec.Cookie)
		}
	}
	return t.leaders(), nil
}

// tally is the call-scoped frequency table. Go maps don't preserve
// insertion order, and tie results must come out in first-occurrence
// order, so an auxiliary order slice tracks when each identifier was
// first seen.
type tally struct {
	counts map[string]int
	order  []string
}

func newTally() *tally {
	return &tally{counts: make(map[string]int)}
}

func (t *tally) add(cookie string) {
	if _, seen := t.counts[cookie]; !seen {
		t.order = append(t.order, cookie)
	}
	t.counts[cookie]++
}

// leaders returns all identifiers whose count equals the maximum, in
// first-occurrence order. Nil when the tally is empty.
func (t *tally) leaders() []string {
	if len(t.counts) == 0 {
		return nil
	}

	max := 0
	for _, n := range t.counts {
		if n > max {
			max = n
		}
	}

	var leaders []string
	for _, cookie := range t.order {
		if t.counts[cookie] == max {
			leaders = append(leaders, cookie)
		}
	}
	return leaders
}
