package domain

import "sort"

// Namespace holds the exported symbols of a loaded module, keyed by name.
type Namespace map[string]any

// Lookup returns the exported symbol with the given name.
func (n Namespace) Lookup(name string) (any, bool) {
	v, ok := n[name]
	return v, ok
}

// Names returns the exported symbol names in lexical order.
func (n Namespace) Names() []string {
	names := make([]string, 0, len(n))
	for name := range n {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
