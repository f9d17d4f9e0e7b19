package libpolicy

import (
	"slices"
	"strings"
)

// Policy is the resolved library inclusion decision. The only
// implementations are UseAll, IgnoreAll and UseOnly.
type Policy interface {
	// Name returns the catalog name of the policy.
	Name() string
	String() string
	isPolicy()
}

// UseAll includes every library.
type UseAll struct{}

// IgnoreAll excludes every library.
type IgnoreAll struct{}

// UseOnly includes just the listed library ids. Only NewUseOnly and
// Resolve produce valid values; a UseOnly literal has an empty id set.
type UseOnly struct {
	ids []string // sorted, unique, never empty when built by NewUseOnly
}

func (UseAll) isPolicy()    {}
func (IgnoreAll) isPolicy() {}
func (UseOnly) isPolicy()   {}

func (UseAll) Name() string    { return NameUseAll }
func (IgnoreAll) Name() string { return NameIgnoreAll }
func (UseOnly) Name() string   { return NameUseOnly }

func (UseAll) String() string    { return NameUseAll }
func (IgnoreAll) String() string { return NameIgnoreAll }

func (p UseOnly) String() string {
	return NameUseOnly + "[" + strings.Join(p.ids, ", ") + "]"
}

// NewUseOnly builds a UseOnly policy from ids, collapsing duplicates.
// Ids are kept verbatim: no trimming, empty strings allowed.
func NewUseOnly(ids ...string) (UseOnly, error) {
	if len(ids) == 0 {
		return UseOnly{}, NewMissingArgsError(NameUseOnly)
	}
	set := slices.Clone(ids)
	slices.Sort(set)
	return UseOnly{ids: slices.Compact(set)}, nil
}

// IDs returns the library ids in sorted order.
func (p UseOnly) IDs() []string {
	return slices.Clone(p.ids)
}

// Contains reports whether id is part of the set.
func (p UseOnly) Contains(id string) bool {
	_, found := slices.BinarySearch(p.ids, id)
	return found
}

// Len returns the number of distinct ids.
func (p UseOnly) Len() int { return len(p.ids) }

// Equal reports whether a and b are the same policy by value. Two nil
// policies are equal.
func Equal(a, b Policy) bool {
	switch x := a.(type) {
	case UseAll:
		_, ok := b.(UseAll)
		return ok
	case IgnoreAll:
		_, ok := b.(IgnoreAll)
		return ok
	case UseOnly:
		y, ok := b.(UseOnly)
		return ok && slices.Equal(x.ids, y.ids)
	}
	return a == nil && b == nil
}
