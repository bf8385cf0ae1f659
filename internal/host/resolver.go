package host

import "strings"

// Ref is the canonical identifier for one of the two wedding principals.
// It is the only form an invited_by entry may take once normalized.
type Ref string

const (
	RefA Ref = "host_a"
	RefB Ref = "host_b"
)

// IsValid reports whether r is one of the two canonical references
func (r Ref) IsValid() bool {
	return r == RefA || r == RefB
}

// Names holds the display names of the two hosts, as configured on the
// wedding record. They are the match targets for free-text attribution.
type Names struct {
	A string
	B string
}

// similarityThreshold is the minimum score the fuzzy fallback accepts.
// Scoring is common-leading-run over max length; see Resolve step 4.
const similarityThreshold = 0.70

// Resolve maps a free-text "invited by" value (legacy data, CSV imports,
// typos, nicknames) to a canonical host reference. Matching runs in strict
// precedence order; the first rule that matches wins:
//
//  1. exact case-insensitive match against either display name
//  2. literal canonical spellings ("host a", "hosta", "host_a")
//  3. prefix containment in either direction ("Jorge" vs "Jorge Luis")
//  4. similarity fallback for inputs of length >= 3, accepted only when the
//     score clears the threshold AND strictly beats the other host's score
//     (a tie is rejected, never picked arbitrarily)
//
// The second return is false when nothing matched; callers drop the value.
func Resolve(raw string, names Names) (Ref, bool) {
	input := strings.ToLower(strings.TrimSpace(raw))
	if input == "" {
		return "", false
	}

	nameA := strings.ToLower(strings.TrimSpace(names.A))
	nameB := strings.ToLower(strings.TrimSpace(names.B))

	// 1. Exact display-name match
	if input == nameA && nameA != "" {
		return RefA, true
	}
	if input == nameB && nameB != "" {
		return RefB, true
	}

	// 2. Literal canonical spellings
	switch input {
	case "hosta", "host a", "host_a":
		return RefA, true
	case "hostb", "host b", "host_b":
		return RefB, true
	}

	// 3. Prefix containment, either direction
	if isPrefixMatch(input, nameA) {
		return RefA, true
	}
	if isPrefixMatch(input, nameB) {
		return RefB, true
	}

	// 4. Similarity fallback. Short inputs are too ambiguous to score.
	if len(input) < 3 {
		return "", false
	}

	scoreA := similarity(input, nameA)
	scoreB := similarity(input, nameB)

	if scoreA >= similarityThreshold && scoreA > scoreB {
		return RefA, true
	}
	if scoreB >= similarityThreshold && scoreB > scoreA {
		return RefB, true
	}

	return "", false
}

// Normalize applies Resolve to each raw value and returns the deduplicated
// canonical set. Already-canonical references pass through unchanged.
// Unresolvable entries are returned in dropped instead of producing an
// error: this is a data-quality filter, not a validation gate. Callers that
// care log the dropped values.
func Normalize(values []string, names Names) (refs []Ref, dropped []string) {
	seen := make(map[Ref]bool, 2)

	for _, v := range values {
		if ref := Ref(strings.TrimSpace(v)); ref.IsValid() {
			if !seen[ref] {
				seen[ref] = true
				refs = append(refs, ref)
			}
			continue
		}

		ref, ok := Resolve(v, names)
		if !ok {
			dropped = append(dropped, v)
			continue
		}
		if !seen[ref] {
			seen[ref] = true
			refs = append(refs, ref)
		}
	}

	return refs, dropped
}

// isPrefixMatch reports whether one non-empty string is a prefix of the
// other. Both arguments must already be lowercased and trimmed.
func isPrefixMatch(input, name string) bool {
	if input == "" || name == "" {
		return false
	}
	return strings.HasPrefix(input, name) || strings.HasPrefix(name, input)
}

// similarity scores how alike two strings are as the length of their common
// leading-character run divided by the longer length. The result is in
// [0,1]; identical strings score 1, strings with different first characters
// score 0. Transposed typos score poorly with this metric, which matches the
// legacy data this was tuned against.
func similarity(a, b string) float64 {
	if a == "" || b == "" {
		return 0
	}

	maxLen := len(a)
	if len(b) > maxLen {
		maxLen = len(b)
	}

	common := 0
	for common < len(a) && common < len(b) && a[common] == b[common] {
		common++
	}

	return float64(common) / float64(maxLen)
}
