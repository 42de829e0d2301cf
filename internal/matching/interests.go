package matching

import (
	"sort"
	"strings"
)

// NormalizeInterests turns comma-separated free text into a sorted set of
// lowercase, trimmed, non-empty tokens.
func NormalizeInterests(raw string) []string {
	seen := make(map[string]struct{})
	for _, part := range strings.Split(raw, ",") {
		token := strings.ToLower(strings.TrimSpace(part))
		if token == "" {
			continue
		}
		seen[token] = struct{}{}
	}

	tokens := make([]string, 0, len(seen))
	for token := range seen {
		tokens = append(tokens, token)
	}
	sort.Strings(tokens)
	return tokens
}

// interestSet is a normalized interest list indexed for membership checks
type interestSet map[string]struct{}

func newInterestSet(raw string) interestSet {
	tokens := NormalizeInterests(raw)
	set := make(interestSet, len(tokens))
	for _, t := range tokens {
		set[t] = struct{}{}
	}
	return set
}

// intersect returns the sorted common tokens; never nil
func (s interestSet) intersect(other interestSet) []string {
	small, large := s, other
	if len(large) < len(small) {
		small, large = large, small
	}

	common := make([]string, 0)
	for token := range small {
		if _, ok := large[token]; ok {
			common = append(common, token)
		}
	}
	sort.Strings(common)
	return common
}

// CommonInterests returns the case-insensitive overlap of two interest texts
func CommonInterests(a, b string) []string {
	return newInterestSet(a).intersect(newInterestSet(b))
}
