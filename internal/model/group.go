package model

import "math"

// ComputerGroup tracks deployment progress for one named group of managed
// endpoints: how many currently report in versus how many are expected.
type ComputerGroup struct {
	Name    string
	Current uint
	Target  uint

	// Root marks the group as an aggregate root that absorbed a satellite
	// group's count. Renderers may decorate the display name accordingly.
	Root bool
}

// Percent returns the completion percentage, rounded to the nearest integer.
// A group with no known target reports zero. The value is not clamped, so a
// Current above Target yields more than 100.
func (g *ComputerGroup) Percent() int {
	if g.Target == 0 {
		return 0
	}
	return int(math.Round(float64(g.Current) / float64(g.Target) * 100))
}
