// Package registry holds the compiled-in skill catalog: which skills exist,
// where their sources live relative to the registry root, and which alternate
// names resolve to them.
package registry

import (
	"sort"
	"strings"
)

// Descriptor identifies one skill in the catalog: its canonical name, its
// source directory relative to the registry root, the category it is grouped
// under, and a one-line description.
type Descriptor struct {
	Name        string
	Path        string
	Category    string
	Description string
}

// Registry is the fixed catalog plus its alias table. It is built once at
// startup and never mutated afterwards; every component that needs it
// receives it explicitly.
type Registry struct {
	entries []Descriptor
	index   map[string]int
	aliases map[string]string
}

// New builds a Registry from a descriptor list and an alias table. Entry
// order is preserved; listings and search results come back in it. Alias
// keys are folded to lowercase.
func New(entries []Descriptor, aliases map[string]string) *Registry {
	r := &Registry{
		entries: make([]Descriptor, len(entries)),
		index:   make(map[string]int, len(entries)),
		aliases: make(map[string]string, len(aliases)),
	}
	copy(r.entries, entries)
	for i, d := range r.entries {
		if _, dup := r.index[d.Name]; !dup {
			r.index[d.Name] = i
		}
	}
	for alias, canonical := range aliases {
		r.aliases[strings.ToLower(alias)] = canonical
	}
	return r
}

// Resolve folds name to lowercase and maps it through the alias table.
// Names without an alias come back as-is: they may be canonical already, or
// unknown, and the caller's Lookup decides which.
func (r *Registry) Resolve(name string) string {
	lower := strings.ToLower(name)
	if canonical, ok := r.aliases[lower]; ok {
		return canonical
	}
	return lower
}

// Lookup returns the descriptor for a canonical name.
func (r *Registry) Lookup(name string) (Descriptor, bool) {
	i, ok := r.index[name]
	if !ok {
		return Descriptor{}, false
	}
	return r.entries[i], true
}

// Len returns the number of catalog entries.
func (r *Registry) Len() int { return len(r.entries) }

// Descriptors returns the catalog in declaration order.
func (r *Registry) Descriptors() []Descriptor {
	out := make([]Descriptor, len(r.entries))
	copy(out, r.entries)
	return out
}

// Aliases returns the alias names pointing at canonical, sorted.
func (r *Registry) Aliases(canonical string) []string {
	var out []string
	for alias, c := range r.aliases {
		if c == canonical {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// DanglingAliases returns aliases whose canonical target is missing from the
// catalog, sorted. The shipped table has none; doctor re-checks at runtime.
func (r *Registry) DanglingAliases() []string {
	var out []string
	for alias, canonical := range r.aliases {
		if _, ok := r.index[canonical]; !ok {
			out = append(out, alias)
		}
	}
	sort.Strings(out)
	return out
}

// Group pairs a category with its descriptors, both in declaration order.
type Group struct {
	Category string
	Skills   []Descriptor
}

// ByCategory groups the catalog by category in declaration order. A
// non-empty filter keeps only the matching category (case-insensitive); an
// unknown filter yields no groups, which is a valid empty result.
func (r *Registry) ByCategory(filter string) []Group {
	var groups []Group
	at := make(map[string]int)
	for _, d := range r.entries {
		if filter != "" && !strings.EqualFold(d.Category, filter) {
			continue
		}
		i, ok := at[d.Category]
		if !ok {
			i = len(groups)
			at[d.Category] = i
			groups = append(groups, Group{Category: d.Category})
		}
		groups[i].Skills = append(groups[i].Skills, d)
	}
	return groups
}

// Categories returns the category names in declaration order.
func (r *Registry) Categories() []string {
	var out []string
	seen := make(map[string]bool)
	for _, d := range r.entries {
		if !seen[d.Category] {
			seen[d.Category] = true
			out = append(out, d.Category)
		}
	}
	return out
}
