// Package render prints the most-active-cookie report to a terminal,
// centered to the display width and optionally styled.
package render

import (
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"

	"github.com/crimson-sun/crumb/internal/model"
)

// DefaultWidth is used when the display width cannot be detected.
const DefaultWidth = 80

// NoResultsMessage is printed when no cookie was active on the target date.
const NoResultsMessage = "No active cookies found for the specified date."

const (
	ansiGreen = "\033[32m"
	ansiBold  = "\033[1m"
	ansiReset = "\033[0m"
)

// Option configures a Renderer.
type Option func(*Renderer)

// WithWidth sets the display width used for centering. Non-positive
// values are ignored. Default: DefaultWidth.
func WithWidth(width int) Option {
	return func(r *Renderer) {
		if width > 0 {
			r.width = width
		}
	}
}

// WithColor enables or disables ANSI styling. Default: disabled.
func WithColor(enabled bool) Option {
	return func(r *Renderer) { r.color = enabled }
}

// Renderer writes the report to w, one centered line at a time.
type Renderer struct {
	w     io.Writer
	width int
	color bool
}

// New creates a Renderer writing to w.
func New(w io.Writer, opts ...Option) *Renderer {
	r := &Renderer{w: w, width: DefaultWidth}
	for _, opt := range opts {
		opt(r)
	}
	return r
}

// MostActive prints the identifiers most active on the target date,
// one per line, framed by blank lines. An empty list prints the fixed
// no-results message instead.
func (r *Renderer) MostActive(target model.Date, cookies []string) error {
	lines := []string{""}
	if len(cookies) == 0 {
		lines = append(lines, NoResultsMessage)
	} else {
		lines = append(lines, fmt.Sprintf("Most active cookies on %s:", target), "")
		lines = append(lines, cookies...)
	}
	lines = append(lines, "")

	for _, line := range lines {
		if err := r.println(line); err != nil {
			return fmt.Errorf("render: %w", err)
		}
	}
	return nil
}

// println centers the visible text and applies styling after padding,
// so the leading spaces never carry escape codes.
func (r *Renderer) println(line string) error {
	if line == "" {
		_, err := fmt.Fprintln(r.w)
		return err
	}
	pad := (r.width - utf8.RuneCountInString(line)) / 2
	if pad < 0 {
		pad = 0
	}
	if r.color {
		line = ansiGreen + ansiBold + line + ansiReset
	}
	_, err := fmt.Fprintf(r.w, "%s%s\n", strings.Repeat(" ", pad), line)
	return err
}

// DetectWidth returns the width of the terminal attached to stdout,
// falling back to the COLUMNS variable and then to DefaultWidth.
func DetectWidth() int {
	if w, _, err := term.GetSize(int(os.Stdout.Fd())); err == nil && w > 0 {
		return w
	}
	if s := os.Getenv("COLUMNS"); s != "" {
		if w, err := strconv.Atoi(s); err == nil && w > 0 {
			return w
		}
	}
	return DefaultWidth
}

// ColorEnabled resolves a color mode ("auto", "always" or "never") to
// a decision for stdout. Auto styles only real terminals and honors
// NO_COLOR.
func ColorEnabled(mode string) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	}
	if _, ok := os.LookupEnv("NO_COLOR"); ok {
		return false
	}
	return isatty.IsTerminal(os.Stdout.Fd()) || isatty.IsCygwinTerminal(os.Stdout.Fd())
}
