package menu

import "errors"

// ErrUnknownSelection is returned when the picker hands back a line that is
// not in the index. It covers cancellation and any unexpected picker output;
// callers treat it as a clean no-op, not a failure.
var ErrUnknownSelection = errors.New("selection is not a known candidate")

// BuildIndex maps labels back to their candidates. Labels are unique after
// rendering, so the map is total over the candidate set.
func BuildIndex(cands []Candidate) map[string]Candidate {
	index := make(map[string]Candidate, len(cands))
	for _, c := range cands {
		index[c.Label] = c
	}
	return index
}

// ResolveChoice resolves a picked label to its candidate.
func ResolveChoice(label string, index map[string]Candidate) (Candidate, error) {
	c, ok := index[label]
	if !ok {
		return Candidate{}, ErrUnknownSelection
	}
	return c, nil
}
