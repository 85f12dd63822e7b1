package registry

import (
	"sort"
	"strings"
)

// Result is one search hit. Alias is set when the hit came from the alias
// table rather than the descriptor's own fields.
type Result struct {
	Skill Descriptor
	Alias string
}

// Search returns catalog entries whose name, description, or category
// contains query (case-insensitive), in catalog order, followed by alias
// matches for canonicals not already present, in sorted-alias order. An
// empty query matches everything: every string contains the empty substring,
// so a bare search lists the whole catalog.
func (r *Registry) Search(query string) []Result {
	q := strings.ToLower(query)

	var results []Result
	matched := make(map[string]bool, len(r.entries))
	for _, d := range r.entries {
		if strings.Contains(strings.ToLower(d.Name), q) ||
			strings.Contains(strings.ToLower(d.Description), q) ||
			strings.Contains(strings.ToLower(d.Category), q) {
			results = append(results, Result{Skill: d})
			matched[d.Name] = true
		}
	}

	// Second pass: aliases whose canonical entry has not matched yet.
	aliasNames := make([]string, 0, len(r.aliases))
	for alias := range r.aliases {
		aliasNames = append(aliasNames, alias)
	}
	sort.Strings(aliasNames)
	for _, alias := range aliasNames {
		canonical := r.aliases[alias]
		if matched[canonical] || !strings.Contains(alias, q) {
			continue
		}
		d, ok := r.Lookup(canonical)
		if !ok {
			continue
		}
		results = append(results, Result{Skill: d, Alias: alias})
		matched[canonical] = true
	}
	return results
}
