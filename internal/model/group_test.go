package model

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPercent(t *testing.T) {
	t.Parallel()

	cases := []struct {
		name    string
		current uint
		target  uint
		want    int
	}{
		{"zero target reports zero", 40, 0, 0},
		{"zero of zero", 0, 0, 0},
		{"exact half", 50, 100, 50},
		{"rounds down", 124, 300, 41},
		{"rounds up", 125, 300, 42},
		{"half rounds away from zero", 1, 200, 1},
		{"two thirds", 70, 150, 47},
		{"complete", 100, 100, 100},
		{"overshoot is not clamped", 150, 100, 150},
	}
	for _, tc := range cases {
		tc := tc
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			g := &ComputerGroup{Name: "g", Current: tc.current, Target: tc.target}
			assert.Equal(t, tc.want, g.Percent())
		})
	}
}

func TestGroupSet_AddIsUniqueByName(t *testing.T) {
	t.Parallel()

	set := NewGroupSet()
	first := set.Add("OS")
	first.Target = 100

	again := set.Add("OS")
	require.Same(t, first, again, "re-adding a name must return the existing group")
	require.Equal(t, 1, set.Len())
	require.Equal(t, uint(100), again.Target)
}

func TestGroupSet_KeepsInsertionOrder(t *testing.T) {
	t.Parallel()

	set := NewGroupSet()
	for _, name := range []string{"Zeta", "Alpha", "Mid"} {
		set.Add(name)
	}
	set.Add("Alpha") // no reordering on re-add

	require.Empty(t, cmp.Diff([]string{"Zeta", "Alpha", "Mid"}, set.Names()))
}

func TestGroupSet_Remove(t *testing.T) {
	t.Parallel()

	set := NewGroupSet()
	set.Add("A")
	set.Add("B")
	set.Add("C")

	set.Remove("B")
	require.Equal(t, []string{"A", "C"}, set.Names())
	_, ok := set.Get("B")
	require.False(t, ok)

	// Removing an absent name is a no-op.
	set.Remove("B")
	require.Equal(t, 2, set.Len())
}

func TestGroupSet_SortIsLexicographic(t *testing.T) {
	t.Parallel()

	set := NewGroupSet()
	for _, name := range []string{"OS", "App1", "MBDA"} {
		set.Add(name)
	}
	set.Sort()
	require.Equal(t, []string{"App1", "MBDA", "OS"}, set.Names())
}
