// Package scan extracts (group, count) records from BigFix-style deployment
// reports. The scanner assumes flat, well-formed tag markers; it does not
// parse HTML.
package scan

import (
	"bufio"
	"context"
	"io"
	"log/slog"
	"strconv"
	"strings"

	"github.com/opswiki/bfstats/internal/ctxlog"
)

// Markers configures the substrings that delimit records and values within a
// report. A line beginning with Record is a record line; within it, each
// Start...End span is one cell.
type Markers struct {
	Record string
	Start  string
	End    string
}

// DefaultMarkers returns the marker set used by stock BigFix report exports.
func DefaultMarkers() Markers {
	return Markers{Record: "<tr>", Start: "<td>", End: "</td>"}
}

// Pair is one (group name, count) record extracted from a report line.
type Pair struct {
	Name  string
	Count uint
}

// Scan reads report lines from r and returns all extracted pairs in document
// order. Duplicate names are allowed; callers decide how duplicates merge.
// Cells alternate name, count, left to right, non-overlapping. An unterminated
// cell ends extraction for that line silently; a non-numeric count drops that
// pair with a warning and scanning continues.
func Scan(ctx context.Context, r io.Reader, m Markers) ([]Pair, error) {
	logger := ctxlog.FromContext(ctx)

	var pairs []Pair
	lineNo := 0
	records := 0
	sc := bufio.NewScanner(r)
	for sc.Scan() {
		lineNo++
		line := sc.Text()
		if !strings.HasPrefix(line, m.Record) {
			continue
		}
		records++
		pairs = append(pairs, scanLine(logger, line, lineNo, m)...)
	}
	if err := sc.Err(); err != nil {
		return pairs, err
	}
	logger.Debug("Report scan complete.", "lines", lineNo, "records", records, "pairs", len(pairs))
	return pairs, nil
}

// scanLine pulls alternating name/count cells out of a single record line.
func scanLine(logger *slog.Logger, line string, lineNo int, m Markers) []Pair {
	var out []Pair
	rest := line
	for {
		name, afterName, ok := nextCell(rest, m)
		if !ok {
			break
		}
		countText, afterCount, ok := nextCell(afterName, m)
		if !ok {
			break
		}
		rest = afterCount

		count, err := strconv.ParseUint(strings.TrimSpace(countText), 10, 32)
		if err != nil {
			logger.Warn("Skipping record with non-numeric count.", "line", lineNo, "group", name, "count", countText)
			continue
		}
		out = append(out, Pair{Name: name, Count: uint(count)})
	}
	return out
}

// nextCell returns the content of the next Start...End span in s and the
// remainder of s after the consumed end marker. ok is false when no start
// marker remains or the span is unterminated.
func nextCell(s string, m Markers) (content, rest string, ok bool) {
	i := strings.Index(s, m.Start)
	if i < 0 {
		return "", "", false
	}
	after := s[i+len(m.Start):]
	j := strings.Index(after, m.End)
	if j < 0 {
		return "", "", false
	}
	return after[:j], after[j+len(m.End):], true
}
