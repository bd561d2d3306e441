// Package reconcile merges scanned current counts with loaded targets into a
// finalized, ordered group set, applying the alias-merge and exclusion rules.
package reconcile

import (
	"github.com/opswiki/bfstats/internal/model"
	"github.com/opswiki/bfstats/internal/scan"
	"github.com/opswiki/bfstats/internal/target"
)

// TotalName is the reserved name of the synthesized roll-up group.
const TotalName = "TOTAL"

// OrderPolicy selects the ordering of the finalized set.
type OrderPolicy int

const (
	// OrderInsertion keeps first-appearance order: target-file order first,
	// then report-only groups in scan order. This is the default.
	OrderInsertion OrderPolicy = iota

	// OrderLexicographic sorts groups by name instead of keeping discovery
	// order.
	OrderLexicographic
)

// Rules carries the per-deployment merge policy. Nothing in the merge itself
// is hard-coded to particular group names; callers supply the pairs and sets
// that apply to their site.
type Rules struct {
	// Aliases maps a satellite group name to the root group that absorbs its
	// count. Satellites are dropped from the finalized set.
	Aliases map[string]string

	// Exclude lists group names left out of the raw-totals snapshot.
	Exclude map[string]struct{}

	// RootMarker decorates the display name of an aggregate root.
	RootMarker string

	Order OrderPolicy

	// DateWidth is the length of the trailing filename substring used as the
	// raw snapshot's date tag.
	DateWidth int
}

// DefaultRules returns the stock site policy: MBDA folds into OS, CBS and
// HCHB stay out of raw totals.
func DefaultRules() Rules {
	return Rules{
		Aliases:    map[string]string{"MBDA": "OS"},
		Exclude:    map[string]struct{}{"CBS": {}, "HCHB": {}},
		RootMarker: "*",
		Order:      OrderInsertion,
		DateWidth:  8,
	}
}

// Reconcile builds the finalized group set from target entries and scanned
// pairs. Targets seed the set in file order with Current zero; scanned counts
// then fill in Current (set, not accumulated, so later duplicates win and the
// operation is idempotent); alias satellites fold into their roots and drop
// out; a TOTAL group summing the finalized set is appended last.
func Reconcile(targets []target.Entry, pairs []scan.Pair, rules Rules) *model.GroupSet {
	set := model.NewGroupSet()
	for _, t := range targets {
		g := set.Add(t.Name)
		g.Target = t.Target
	}
	for _, p := range pairs {
		g := set.Add(p.Name)
		g.Current = p.Count
	}

	// Alias merge works from the scanned counts, never from the (possibly
	// already merged) set, so applying it twice cannot double-count.
	scanned := make(map[string]uint, len(pairs))
	for _, p := range pairs {
		scanned[p.Name] = p.Count
	}
	folded := make(map[string]uint)
	for satellite, rootName := range rules.Aliases {
		if satellite == TotalName || rootName == TotalName {
			continue
		}
		if _, ok := set.Get(satellite); !ok {
			continue
		}
		folded[rootName] += scanned[satellite]
		set.Remove(satellite)
	}
	for rootName, absorbed := range folded {
		root := set.Add(rootName)
		root.Current = scanned[rootName] + absorbed
		root.Root = true
	}

	if rules.Order == OrderLexicographic {
		set.Sort()
	}

	var current, tgt uint
	for _, g := range set.Groups() {
		current += g.Current
		tgt += g.Target
	}
	total := set.Add(TotalName)
	total.Current = current
	total.Target = tgt
	return set
}
