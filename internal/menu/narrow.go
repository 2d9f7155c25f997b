package menu

import (
	"strings"

	"github.com/sahilm/fuzzy"
)

// Narrow reduces the candidate list to fuzzy matches of query, best match
// first. This runs before the picker is invoked; an empty query keeps the
// list unchanged.
func Narrow(cands []Candidate, query string) []Candidate {
	query = strings.TrimSpace(strings.ToLower(query))
	if query == "" || len(cands) == 0 {
		return cands
	}

	targets := make([]string, len(cands))
	for i, c := range cands {
		targets[i] = strings.ToLower(c.Label)
	}

	matches := fuzzy.Find(query, targets)
	narrowed := make([]Candidate, 0, len(matches))
	for _, m := range matches {
		narrowed = append(narrowed, cands[m.Index])
	}
	return narrowed
}
