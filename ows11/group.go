package ows11

import "golang.org/x/exp/slices"

// Member is one entry of a substitution group: the element name it is
// written under and its value.
type Member[T any] struct {
	Name  string
	Value T
}

// Group is an ordered substitution group slot. Typed views over a group
// are computed from its members and never stored separately.
type Group[T any] []Member[T]

func (g *Group[T]) Add(name string, v T) {
	*g = append(*g, Member[T]{Name: name, Value: v})
}

// Remove deletes the i-th member.
func (g *Group[T]) Remove(i int) {
	*g = append((*g)[:i], (*g)[i+1:]...)
}

func (g Group[T]) Len() int {
	return len(g)
}

// Values returns the members written under any of the given names,
// or all members when no name is given.
func (g Group[T]) Values(names ...string) []T {
	res := make([]T, 0, len(g))
	for _, m := range g {
		if len(names) == 0 || slices.Contains(names, m.Name) {
			res = append(res, m.Value)
		}
	}
	return res
}

func (g Group[T]) Names() []string {
	res := make([]string, len(g))
	for i, m := range g {
		res[i] = m.Name
	}
	return res
}
