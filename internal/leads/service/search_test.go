package service

import (
	"testing"

	"outreach_backend/internal/leads/repository"
)

func searchFixture() []repository.Lead {
	return []repository.Lead{
		{Name: "Ada Lovelace", Email: "ada@analytical.io", Company: "Analytical Engines", Phone: "+14155552671", Position: "CTO", Source: "conference"},
		{Name: "Grace Hopper", Email: "grace@navy.mil", Company: "US Navy", Phone: "+12025550147", Position: "Rear Admiral", Source: "webinar"},
		{Name: "Linus B", Email: "linus@kernel.org", Company: "Kernel Co", Phone: "", Position: "Engineer", Source: "conference"},
	}
}

func TestSearchEmptyQueryMatchesNothing(t *testing.T) {
	leads := searchFixture()

	for _, query := range []string{"", "   ", "\t\n"} {
		got := Search(query, leads)
		if got == nil {
			t.Fatalf("Search(%q) returned nil, want empty slice", query)
		}
		if len(got) != 0 {
			t.Fatalf("Search(%q) returned %d leads, want 0", query, len(got))
		}
	}
}

func TestSearchSingleToken(t *testing.T) {
	leads := searchFixture()

	got := Search("ADA", leads)
	if len(got) != 1 {
		t.Fatalf("expected 1 match, got %d", len(got))
	}
	if got[0].Email != "ada@analytical.io" {
		t.Fatalf("unexpected match: %s", got[0].Email)
	}
}

func TestSearchAllTokensMustMatch(t *testing.T) {
	leads := searchFixture()

	// "engine" alone matches Ada (company) and Linus (position).
	if got := Search("engine", leads); len(got) != 2 {
		t.Fatalf("expected 2 matches for 'engine', got %d", len(got))
	}

	// Adding a second token narrows to leads matching both.
	got := Search("engine kernel", leads)
	if len(got) != 1 {
		t.Fatalf("expected 1 match for 'engine kernel', got %d", len(got))
	}
	if got[0].Name != "Linus B" {
		t.Fatalf("unexpected match: %s", got[0].Name)
	}
}

func TestSearchMatchesPhoneSubstring(t *testing.T) {
	got := Search("4155552671", searchFixture())
	if len(got) != 1 || got[0].Name != "Ada Lovelace" {
		t.Fatalf("phone substring search failed: %+v", got)
	}
}

func TestSearchNoMatch(t *testing.T) {
	got := Search("nobody-here", searchFixture())
	if len(got) != 0 {
		t.Fatalf("expected no matches, got %d", len(got))
	}
}

func TestSearchPreservesSourceTag(t *testing.T) {
	got := Search("conference", searchFixture())
	// Source is not a searchable field.
	if len(got) != 0 {
		t.Fatalf("source must not be searchable, got %d matches", len(got))
	}

	got = Search("grace", searchFixture())
	if len(got) != 1 || got[0].Source != "webinar" {
		t.Fatalf("match should carry its source, got %+v", got)
	}
}
