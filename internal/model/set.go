package model

import "sort"

// GroupSet is an ordered collection of computer groups, unique by name.
// Lookup goes through a map while iteration follows insertion order, so
// output ordering stays deterministic without a comparison-based container.
type GroupSet struct {
	byName map[string]*ComputerGroup
	order  []string
}

// NewGroupSet returns an empty set.
func NewGroupSet() *GroupSet {
	return &GroupSet{byName: make(map[string]*ComputerGroup)}
}

// Add returns the group with the given name, creating and appending a zeroed
// group if the name has not been seen before. Re-adding a name never creates
// a duplicate.
func (s *GroupSet) Add(name string) *ComputerGroup {
	if g, ok := s.byName[name]; ok {
		return g
	}
	g := &ComputerGroup{Name: name}
	s.byName[name] = g
	s.order = append(s.order, name)
	return g
}

// Get looks up a group by name.
func (s *GroupSet) Get(name string) (*ComputerGroup, bool) {
	g, ok := s.byName[name]
	return g, ok
}

// Remove deletes a group by name, preserving the order of the rest. Removing
// an absent name is a no-op.
func (s *GroupSet) Remove(name string) {
	if _, ok := s.byName[name]; !ok {
		return
	}
	delete(s.byName, name)
	for i, n := range s.order {
		if n == name {
			s.order = append(s.order[:i], s.order[i+1:]...)
			break
		}
	}
}

// Len returns the number of groups in the set.
func (s *GroupSet) Len() int {
	return len(s.order)
}

// Names returns the group names in iteration order.
func (s *GroupSet) Names() []string {
	out := make([]string, len(s.order))
	copy(out, s.order)
	return out
}

// Groups returns the groups in iteration order.
func (s *GroupSet) Groups() []*ComputerGroup {
	out := make([]*ComputerGroup, 0, len(s.order))
	for _, name := range s.order {
		out = append(out, s.byName[name])
	}
	return out
}

// Sort reorders the set lexicographically by name. This is the alternative
// ordering policy; the default leaves insertion order untouched.
func (s *GroupSet) Sort() {
	sort.Strings(s.order)
}
