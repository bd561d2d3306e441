// Package render turns a finalized group set into wiki-table text. The
// default style emits column-aligned Confluence rows; minimal emits a
// compact single-space variant; pretty draws a bordered terminal preview.
package render

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/dustin/go-humanize"

	"github.com/opswiki/bfstats/internal/model"
	"github.com/opswiki/bfstats/internal/reconcile"
)

// Style selects the output format of the table renderer.
type Style string

const (
	StyleAligned Style = "aligned"
	StyleMinimal Style = "minimal"
	StylePretty  Style = "pretty"
)

// Valid reports whether s names a known style.
func (s Style) Valid() bool {
	switch s {
	case StyleAligned, StyleMinimal, StylePretty:
		return true
	}
	return false
}

// Row labels for the four table lines.
const (
	headerLabel  = "|| Nodes       || "
	currentLabel = "| *Current*    | "
	targetLabel  = "| *Target*     | "
	percentLabel = "| *% Comp*     | "
)

// Renderer renders group sets in a fixed style with a fixed root marker.
type Renderer struct {
	style      Style
	rootMarker string
}

// New returns a renderer. An unknown style falls back to aligned.
func New(style Style, rootMarker string) *Renderer {
	if !style.Valid() {
		style = StyleAligned
	}
	return &Renderer{style: style, rootMarker: rootMarker}
}

// FormatCount renders n with a thousands separator every three digits.
func FormatCount(n uint) string {
	return humanize.Comma(int64(n))
}

// displayName decorates aggregate roots with the configured marker.
func (r *Renderer) displayName(g *model.ComputerGroup) string {
	if g.Root {
		return g.Name + r.rootMarker
	}
	return g.Name
}

// percentCell brackets the percentage in bold markup before any padding.
func percentCell(g *model.ComputerGroup) string {
	return "*" + strconv.Itoa(g.Percent()) + "*"
}

// widest returns the column width for one group: the longest of its display
// name, formatted counts, and bracketed percent.
func (r *Renderer) widest(g *model.ComputerGroup) int {
	top := len(r.displayName(g))
	for _, cell := range []string{FormatCount(g.Current), FormatCount(g.Target), percentCell(g)} {
		if len(cell) > top {
			top = len(cell)
		}
	}
	return top
}

// pad right-pads cell with spaces to the given width.
func pad(cell string, width int) string {
	if len(cell) >= width {
		return cell
	}
	return cell + strings.Repeat(" ", width-len(cell))
}

// Table renders the four table lines for the finalized set.
func (r *Renderer) Table(set *model.GroupSet) []string {
	switch r.style {
	case StyleMinimal:
		return r.minimalTable(set)
	case StylePretty:
		return r.prettyTable(set)
	default:
		return r.alignedTable(set)
	}
}

// alignedTable pads every cell to the widest cell of its group's column, so
// re-rendering an already padded set yields identical widths.
func (r *Renderer) alignedTable(set *model.GroupSet) []string {
	header := headerLabel
	current := currentLabel
	tgt := targetLabel
	percent := percentLabel
	for _, g := range set.Groups() {
		w := r.widest(g)
		header += pad(r.displayName(g), w) + " || "
		current += pad(FormatCount(g.Current), w) + " | "
		tgt += pad(FormatCount(g.Target), w) + " | "
		percent += pad(percentCell(g), w) + " | "
	}
	return []string{header, current, tgt, percent}
}

// minimalTable emits the compact variant: no column alignment, and the TOTAL
// column appended literally at render time.
func (r *Renderer) minimalTable(set *model.GroupSet) []string {
	header := "|| Nodes ||"
	current := "| *Current* |"
	tgt := "| *Target* |"
	percent := "| *% Comp* |"
	var total *model.ComputerGroup
	for _, g := range set.Groups() {
		if g.Name == reconcile.TotalName {
			total = g
			continue
		}
		header += " " + r.displayName(g) + " ||"
		current += " " + FormatCount(g.Current) + " |"
		tgt += " " + FormatCount(g.Target) + " |"
		percent += " " + percentCell(g) + " |"
	}
	if total != nil {
		header += " " + reconcile.TotalName + " ||"
		current += " " + FormatCount(total.Current) + " |"
		tgt += " " + FormatCount(total.Target) + " |"
		percent += " " + percentCell(total) + " |"
	}
	return []string{header, current, tgt, percent}
}

// RawBlock renders the two-line unmerged totals block for a snapshot: a
// header of group names and one row keyed by the report date, with a literal
// trailing TOTAL column.
func (r *Renderer) RawBlock(snap reconcile.RawSnapshot) []string {
	header := "|| Date ||"
	row := fmt.Sprintf("| %s |", snap.Date)
	for _, p := range snap.Pairs {
		header += " " + p.Name + " ||"
		row += " " + FormatCount(p.Count) + " |"
	}
	header += " " + reconcile.TotalName + " ||"
	row += " " + FormatCount(snap.Total()) + " |"
	return []string{header, row}
}
