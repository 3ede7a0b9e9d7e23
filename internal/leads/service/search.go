package service

import (
	"strings"

	"outreach_backend/internal/leads/repository"
)

// Search filters leads by a whitespace-tokenized query. Every token must be
// a case-insensitive substring of at least one searchable field. An empty or
// whitespace-only query matches nothing; the grouped-by-source listing is the
// caller's fallback, never a match-everything search.
//
// The index is recomputed per call: it is a pure function of the query and
// the current lead set, so there is no derived state to keep consistent.
func Search(query string, leads []repository.Lead) []repository.Lead {
	tokens := strings.Fields(strings.ToLower(query))
	if len(tokens) == 0 {
		return []repository.Lead{}
	}

	matches := make([]repository.Lead, 0)
	for _, lead := range leads {
		if matchesAll(lead, tokens) {
			matches = append(matches, lead)
		}
	}
	return matches
}

func matchesAll(lead repository.Lead, tokens []string) bool {
	fields := []string{
		strings.ToLower(lead.Name),
		strings.ToLower(lead.Email),
		strings.ToLower(lead.Company),
		strings.ToLower(lead.Phone),
		strings.ToLower(lead.Position),
	}

	for _, token := range tokens {
		found := false
		for _, field := range fields {
			if strings.Contains(field, token) {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}
	return true
}
