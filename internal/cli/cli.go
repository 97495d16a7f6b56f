// Package cli validates and parses the crumb command line.
package cli

import (
	"errors"

	"github.com/crimson-sun/crumb/internal/model"
)

// Usage is the invocation synopsis printed when the arguments do not
// match the expected shape.
const Usage = "Usage: crumb -f <filename> -d <YYYY-MM-DD>"

// ErrUsage reports arguments that do not match the -f <filename> -d <date> form.
var ErrUsage = errors.New("invalid arguments: expected -f <filename> -d <date>")

// Args holds the validated command line.
type Args struct {
	File string
	Date model.Date
}

// Parse checks argv (everything after the program name) against the
// fixed four-token form -f <filename> -d <YYYY-MM-DD> and returns the
// log file path and target date. The flags must appear in that order.
// A malformed date is reported as a parse error distinct from ErrUsage
// so the caller can present it instead of the usage synopsis.
func Parse(argv []string) (Args, error) {
	if len(argv) != 4 || argv[0] != "-f" || argv[2] != "-d" {
		return Args{}, ErrUsage
	}
	date, err := model.ParseDate(argv[3])
	if err != nil {
		return Args{}, err
	}
	return Args{File: argv[1], Date: date}, nil
}
