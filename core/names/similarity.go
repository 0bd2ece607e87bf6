package names

import "github.com/agnivade/levenshtein"

// Similarity scores how closely a candidate (first, last) name pair
// matches a query pair, from 0 (unrelated) to 1 (exact or fully
// nickname-equivalent identity).
//
// Both pairs are normalized first. Exact and nickname-equivalent pairs
// short-circuit to 1.0 before any edit-distance work, because edit
// distance alone scores unrelated short nicknames ("bob" vs "robert")
// poorly. Otherwise the score is the better of a direct and a
// swapped-order comparison, each averaging per-field scores.
func Similarity(queryFirst, queryLast, candidateFirst, candidateLast string) float64 {
	qf := Normalize(queryFirst)
	ql := Normalize(queryLast)
	cf := Normalize(candidateFirst)
	cl := Normalize(candidateLast)

	if qf == cf && ql == cl {
		return 1.0
	}

	// Nickname matches count as full matches, not partial credit.
	if Equivalent(qf, cf) && (ql == cl || Equivalent(ql, cl)) {
		return 1.0
	}

	direct := (fieldScore(qf, cf) + fieldScore(ql, cl)) / 2
	swapped := (fieldScore(qf, cl) + fieldScore(ql, cf)) / 2

	if swapped > direct {
		return swapped
	}
	return direct
}

// fieldScore scores a single name field: 1.0 when nickname-equivalent,
// otherwise normalized edit-distance similarity.
func fieldScore(a, b string) float64 {
	if Equivalent(a, b) {
		return 1.0
	}
	return editSimilarity(a, b)
}

// editSimilarity is 1 - levenshtein(a,b)/max(len(a),len(b)). Two empty
// strings are defined as identical.
func editSimilarity(a, b string) float64 {
	longest := len([]rune(a))
	if l := len([]rune(b)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 1.0
	}
	dist := levenshtein.ComputeDistance(a, b)
	return 1.0 - float64(dist)/float64(longest)
}
