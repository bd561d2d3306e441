package reconcile

import (
	"path/filepath"
	"strings"

	"github.com/opswiki/bfstats/internal/scan"
)

// RawSnapshot is the unmerged per-tag view of a report: every scanned pair
// outside the exclusion set, in scan order, tagged with the date embedded in
// the report filename. It is informational and independent of the finalized
// table.
type RawSnapshot struct {
	Date  string
	Pairs []scan.Pair
}

// Total sums the snapshot's counts.
func (s RawSnapshot) Total() uint {
	var total uint
	for _, p := range s.Pairs {
		total += p.Count
	}
	return total
}

// Snapshot filters the scanned pairs through the exclusion set and tags the
// result with the date from reportPath.
func Snapshot(pairs []scan.Pair, reportPath string, rules Rules) RawSnapshot {
	var kept []scan.Pair
	for _, p := range pairs {
		if _, excluded := rules.Exclude[p.Name]; excluded {
			continue
		}
		kept = append(kept, p)
	}
	return RawSnapshot{Date: dateTag(reportPath, rules.DateWidth), Pairs: kept}
}

// dateTag returns the trailing fixed-width run of the base filename before
// its extension: report-20140131.html with width 8 yields 20140131. Shorter
// names come back whole.
func dateTag(path string, width int) string {
	base := filepath.Base(path)
	base = strings.TrimSuffix(base, filepath.Ext(base))
	if width <= 0 || len(base) <= width {
		return base
	}
	return base[len(base)-width:]
}
