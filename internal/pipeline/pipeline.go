// Package pipeline wires the log parser, the activity aggregation and
// the renderer into one end-to-end run.
package pipeline

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/crimson-sun/crumb/internal/activity"
	"github.com/crimson-sun/crumb/internal/cookielog"
	"github.com/crimson-sun/crumb/internal/model"
	"github.com/crimson-sun/crumb/internal/render"
)

// ErrNoRecords reports a log file with no decodable entries.
var ErrNoRecords = errors.New("log file is empty or contains no valid entries")

// Pipeline connects a parser, the aggregation and a renderer.
type Pipeline struct {
	parser   *cookielog.Parser
	renderer *render.Renderer
	log      *slog.Logger
}

// New creates a Pipeline from the given components. A nil logger falls
// back to slog.Default().
func New(parser *cookielog.Parser, renderer *render.Renderer, log *slog.Logger) *Pipeline {
	if log == nil {
		log = slog.Default()
	}
	return &Pipeline{parser: parser, renderer: renderer, log: log}
}

// Run parses the log at path, finds the cookies most active on the
// target date and renders the result. A file that yields no records
// at all returns ErrNoRecords; a date with no activity is not an
// error and renders the fixed no-results message.
func (p *Pipeline) Run(path string, target model.Date) error {
	records, err := p.parser.ParseFile(path)
	if err != nil {
		return fmt.Errorf("pipeline read: %w", err)
	}
	if len(records) == 0 {
		return ErrNoRecords
	}

	p.log.Debug("analyzing records", "count", len(records), "date", target.String())

	cookies, err := activity.FindMostActive(records, target)
	if err != nil {
		return fmt.Errorf("pipeline analyze: %w", err)
	}
	if len(cookies) == 0 {
		p.log.Info("no active cookies", "date", target.String())
	}

	if err := p.renderer.MostActive(target, cookies); err != nil {
		return fmt.Errorf("pipeline render: %w", err)
	}
	return nil
}
