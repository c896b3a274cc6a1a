package metadata

import "sort"

// Set is implemented by set-typed metadata values. Slice returns the members
// as a sequence suitable for serialization.
type Set interface {
	Slice() []string
}

// StringSet is an unordered collection of unique strings.
type StringSet map[string]struct{}

// NewStringSet returns a set holding values.
func NewStringSet(values ...string) StringSet {
	s := make(StringSet, len(values))
	for _, v := range values {
		s[v] = struct{}{}
	}
	return s
}

// Slice returns the members in sorted order.
func (s StringSet) Slice() []string {
	out := make([]string, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Strings(out)
	return out
}
