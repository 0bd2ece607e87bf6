// Package names provides fuzzy similarity scoring and ranking for rider names.
//
// Legacy result pages and registration forms carry free-text names with no
// shared identifier, so matching against canonical rider records has to
// tolerate typos, nicknames, diacritics, and first/last order swaps.
//
// # Components
//
//   - Normalize: canonical lowercase/letters-only form of a name token.
//   - Equivalent / Variants: nickname equivalence backed by a static
//     canonical-name -> nicknames table (e.g. Robert/Bob).
//   - Similarity: 0..1 score between two (first, last) name pairs,
//     combining nickname equivalence, edit-distance similarity, and a
//     swapped-order check.
//   - Rank: generic top-K search over candidate records with accessor
//     functions, threshold filtering, and stable best-first ordering.
//
// All functions are pure; the nickname table is built once and read-only,
// so the package is safe for concurrent use.
package names
