package libpolicy

// Variant describes one named library policy and whether it takes arguments.
type Variant struct {
	Name        string
	AcceptsArgs bool
}

const (
	NameUseAll    = "UseAll"
	NameIgnoreAll = "IgnoreAll"
	NameUseOnly   = "UseOnly"
)

// catalog is fixed at init and never mutated; order drives error messages.
var catalog = []Variant{
	{Name: NameUseAll},
	{Name: NameIgnoreAll},
	{Name: NameUseOnly, AcceptsArgs: true},
}

// FindByName looks a variant up by its exact, case-sensitive name.
func FindByName(name string) (Variant, bool) {
	for _, v := range catalog {
		if v.Name == name {
			return v, true
		}
	}
	return Variant{}, false
}

// AllNames returns the variant names in declaration order.
func AllNames() []string {
	names := make([]string, 0, len(catalog))
	for _, v := range catalog {
		names = append(names, v.Name)
	}
	return names
}

// Variants returns a copy of the catalog.
func Variants() []Variant {
	out := make([]Variant, len(catalog))
	copy(out, catalog)
	return out
}
