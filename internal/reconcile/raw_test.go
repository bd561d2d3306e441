package reconcile

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/require"

	"github.com/opswiki/bfstats/internal/scan"
)

func TestSnapshot_FiltersExclusionSet(t *testing.T) {
	t.Parallel()

	pairs := []scan.Pair{
		{Name: "OS", Count: 40},
		{Name: "CBS", Count: 5},
		{Name: "App1", Count: 20},
		{Name: "HCHB", Count: 7},
	}
	snap := Snapshot(pairs, "report-20140131.html", DefaultRules())

	require.Equal(t, "20140131", snap.Date)
	require.Empty(t, cmp.Diff([]scan.Pair{{Name: "OS", Count: 40}, {Name: "App1", Count: 20}}, snap.Pairs))
	require.Equal(t, uint(60), snap.Total())
}

func TestSnapshot_KeepsDuplicatesUnmerged(t *testing.T) {
	t.Parallel()

	pairs := []scan.Pair{{Name: "OS", Count: 40}, {Name: "OS", Count: 45}}
	snap := Snapshot(pairs, "r.html", Rules{DateWidth: 8})

	require.Len(t, snap.Pairs, 2, "the raw view is pre-merge and keeps every pair")
	require.Equal(t, uint(85), snap.Total())
}

func TestDateTag(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name  string
		path  string
		width int
		want  string
	}{
		{"trailing date before extension", "reports/deploy-20140131.html", 8, "20140131"},
		{"short base comes back whole", "r.html", 8, "r"},
		{"exact width", "20140131.html", 8, "20140131"},
		{"zero width keeps base", "deploy-20140131.html", 0, "deploy-20140131"},
		{"no extension", "deploy-20140131", 8, "20140131"},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			require.Equal(t, tc.want, dateTag(tc.path, tc.width))
		})
	}
}
