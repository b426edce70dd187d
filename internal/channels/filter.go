package channels

import (
	"sort"
	"strings"
)

// Filter selects channel kinds. The zero value selects nothing.
type Filter struct {
	All   bool
	kinds map[Kind]bool
}

func NewFilter(kinds ...Kind) Filter {
	f := Filter{}
	for _, k := range kinds {
		f.Add(k)
	}
	return f
}

func AllKinds() Filter {
	return Filter{All: true}
}

func (f *Filter) Add(k Kind) {
	if f.kinds == nil {
		f.kinds = map[Kind]bool{}
	}
	f.kinds[k] = true
}

func (f Filter) Empty() bool {
	return !f.All && len(f.kinds) == 0
}

func (f Filter) Match(k Kind) bool {
	if f.All {
		return true
	}
	return f.kinds[k]
}

func (f Filter) String() string {
	if f.All {
		return "all"
	}
	if len(f.kinds) == 0 {
		return "none"
	}

	names := make([]string, 0, len(f.kinds))
	for k := range f.kinds {
		names = append(names, k.String())
	}
	sort.Strings(names)

	return strings.Join(names, ",")
}
