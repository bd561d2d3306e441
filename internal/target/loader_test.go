package target

import (
	"context"
	"strconv"
	"strings"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"
)

func load(t *testing.T, input string, opts Options) []Entry {
	t.Helper()
	entries, err := Load(context.Background(), strings.NewReader(input), opts)
	require.NoError(t, err)
	return entries
}

func TestLoad_ParsesEntriesInFileOrder(t *testing.T) {
	t.Parallel()

	entries := load(t, "OS,100\nApp1,50\n", Options{File: "targets.csv"})
	want := []Entry{{"OS", 100}, {"App1", 50}}
	require.Empty(t, cmp.Diff(want, entries))
}

func TestLoad_SplitsOnFirstDelimiterOnly(t *testing.T) {
	t.Parallel()

	// A name containing the delimiter keeps everything before the first one.
	entries := load(t, "Lab,7\n", Options{})
	require.Empty(t, cmp.Diff([]Entry{{"Lab", 7}}, entries))

	// The remainder after the first delimiter must parse whole, so a second
	// delimiter makes the line malformed.
	entries = load(t, "Lab;East;7\n", Options{Delim: ";"})
	require.Empty(t, entries)
}

func TestLoad_SkipsMalformedLinesAndContinues(t *testing.T) {
	t.Parallel()

	input := "OS,100\nbroken line\nApp1,notanumber\nApp2,50\n"
	entries := load(t, input, Options{File: "targets.csv"})
	require.Empty(t, cmp.Diff([]Entry{{"OS", 100}, {"App2", 50}}, entries))
}

func TestLoad_TrimsWhitespaceAroundFields(t *testing.T) {
	t.Parallel()

	entries := load(t, "  OS , 100 \n", Options{})
	require.Empty(t, cmp.Diff([]Entry{{"OS", 100}}, entries))
}

func TestLoad_EmbeddedModeSkipsReportLines(t *testing.T) {
	t.Parallel()

	input := "OS,100\n" +
		"<tr><td>OS</td><td>40</td></tr>\n" +
		"just some prose, with a comma\n" +
		"App1,50\n"
	entries := load(t, input, Options{Embedded: true, RecordMarker: "<tr>"})
	require.Empty(t, cmp.Diff([]Entry{{"OS", 100}, {"App1", 50}}, entries))
}

func TestLoad_ParseErrorMessageNamesFileAndLine(t *testing.T) {
	t.Parallel()

	perr := &ParseError{File: "targets.csv", Line: 3, Text: "App1,oops", Err: strconv.ErrSyntax}
	msg := perr.Error()
	require.Contains(t, msg, "targets.csv:3")
	require.Contains(t, msg, "App1,oops")
}
