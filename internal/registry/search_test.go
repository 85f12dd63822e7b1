package registry

import "testing"

func names(results []Result) []string {
	out := make([]string, len(results))
	for i, r := range results {
		out[i] = r.Skill.Name
	}
	return out
}

func contains(results []Result, name string) bool {
	for _, r := range results {
		if r.Skill.Name == name {
			return true
		}
	}
	return false
}

func TestSearchSubstring(t *testing.T) {
	r := testRegistry()

	got := r.Search("auth")
	if !contains(got, "better-auth") || !contains(got, "create-auth") {
		t.Fatalf("Search(auth) = %v, want better-auth and create-auth", names(got))
	}
	if contains(got, "pptx") {
		t.Errorf("Search(auth) matched pptx: %v", names(got))
	}

	// Catalog order, not score order.
	if got[0].Skill.Name != "better-auth" || got[1].Skill.Name != "create-auth" {
		t.Errorf("Search(auth) order = %v, want catalog order", names(got))
	}
}

func TestSearchCaseInsensitive(t *testing.T) {
	r := testRegistry()
	if got := r.Search("POWERPOINT"); !contains(got, "pptx") {
		t.Errorf("Search(POWERPOINT) = %v, want pptx via alias", names(got))
	}
	if got := r.Search("AUTH"); len(got) < 2 {
		t.Errorf("Search(AUTH) = %v, want the auth entries", names(got))
	}
}

func TestSearchDescriptionAndCategory(t *testing.T) {
	r := testRegistry()

	if got := r.Search("decks"); len(got) != 1 || got[0].Skill.Name != "pptx" {
		t.Errorf("Search(decks) = %v, want [pptx]", names(got))
	}
	// "general" only appears as a category.
	if got := r.Search("general"); len(got) != 1 || got[0].Skill.Name != "pptx" {
		t.Errorf("Search(general) = %v, want [pptx]", names(got))
	}
}

func TestSearchAliasSecondPass(t *testing.T) {
	r := testRegistry()

	// "power" matches only the alias "powerpoint"; the hit is annotated and
	// appended after catalog matches.
	got := r.Search("power")
	if len(got) != 1 {
		t.Fatalf("Search(power) = %v, want one alias hit", names(got))
	}
	if got[0].Skill.Name != "pptx" || got[0].Alias != "powerpoint" {
		t.Errorf("Search(power) = %+v, want pptx via alias powerpoint", got[0])
	}

	// "better" matches the better-auth entry directly; its alias must not
	// add a duplicate.
	got = r.Search("better")
	if len(got) != 1 || got[0].Alias != "" {
		t.Errorf("Search(better) = %+v, want a single direct hit", got)
	}
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	r := testRegistry()
	got := r.Search("")
	if len(got) != r.Len() {
		t.Fatalf("Search(\"\") returned %d of %d entries", len(got), r.Len())
	}
	for i, d := range r.Descriptors() {
		if got[i].Skill.Name != d.Name {
			t.Errorf("Search(\"\")[%d] = %s, want %s (catalog order)", i, got[i].Skill.Name, d.Name)
		}
	}
}

func TestSearchNoMatch(t *testing.T) {
	r := testRegistry()
	if got := r.Search("zzz-nothing"); len(got) != 0 {
		t.Errorf("Search(zzz-nothing) = %v, want empty", names(got))
	}
}
