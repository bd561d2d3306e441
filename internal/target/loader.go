// Package target loads expected deployment counts from delimiter-separated
// target files.
package target

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/opswiki/bfstats/internal/ctxlog"
)

// DefaultDelim separates name from count in a stock target file.
const DefaultDelim = ","

// Entry is one parsed target line: the group name and its expected count.
type Entry struct {
	Name   string
	Target uint
}

// ParseError describes a target line that could not be parsed. The line is
// skipped; loading continues.
type ParseError struct {
	File string
	Line int
	Text string
	Err  error
}

func (e *ParseError) Error() string {
	return fmt.Sprintf("%s:%d: cannot parse target from %q: %v", e.File, e.Line, e.Text, e.Err)
}

func (e *ParseError) Unwrap() error { return e.Err }

// Options configures a single load.
type Options struct {
	// File names the source in diagnostics only; the reader is the source.
	File string

	// Delim separates name from count. Empty means DefaultDelim.
	Delim string

	// Embedded relaxes the loader for single-file runs where target lines sit
	// inside a report: lines starting with RecordMarker, lines without the
	// delimiter, and lines whose count does not parse are all skipped
	// silently instead of being reported.
	Embedded     bool
	RecordMarker string
}

// Load parses name<delim>count lines from r. Malformed lines are logged and
// skipped; the returned error covers only reader failures, so a file with bad
// lines still yields every entry that did parse.
func Load(ctx context.Context, r io.Reader, opts Options) ([]Entry, error) {
	logger := ctxlog.FromContext(ctx)
	delim := opts.Delim
	if delim == "" {
		delim = DefaultDelim
	}

	var entries []Entry
	lineNo := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if strings.TrimSpace(line) == "" {
			continue
		}
		if opts.Embedded && opts.RecordMarker != "" && strings.HasPrefix(line, opts.RecordMarker) {
			continue
		}

		name, rest, found := strings.Cut(line, delim)
		if !found {
			if !opts.Embedded {
				perr := &ParseError{File: opts.File, Line: lineNo, Text: line, Err: fmt.Errorf("missing %q delimiter", delim)}
				logger.Warn("Skipping malformed target line.", "error", perr)
			}
			continue
		}

		count, err := strconv.ParseUint(strings.TrimSpace(rest), 10, 32)
		if err != nil {
			if !opts.Embedded {
				perr := &ParseError{File: opts.File, Line: lineNo, Text: line, Err: err}
				logger.Warn("Skipping malformed target line.", "error", perr)
			}
			continue
		}

		entries = append(entries, Entry{Name: strings.TrimSpace(name), Target: uint(count)})
	}
	if err := sc.Err(); err != nil {
		return entries, err
	}
	logger.Debug("Target load complete.", "file", opts.File, "entries", len(entries))
	return entries, nil
}
