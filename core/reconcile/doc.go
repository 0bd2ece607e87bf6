// Package reconcile compares event results scraped from legacy HTML pages
// against the canonical database records and reports every difference it
// finds.
//
// The package pairs entities from the two sources without a shared
// identifier, so matching is fuzzy: events pair on exact date, distance
// within tolerance, and name similarity; riders pair inside a matched
// event on name similarity alone (core/names). Both passes are greedy
// bipartite one-to-one: each entity is claimed at most once, and ties go
// to the first source entity in input order. This is a deliberate
// simplification over optimal assignment; candidate sets are small (tens
// of riders per event) and ties are rare.
//
// # Components
//
//   - MatchEvents / MatchRiders: the greedy matchers.
//   - Compare: runs both passes and classifies value-level differences
//     (time, status, name variation) into severity-tagged discrepancies.
//   - Summarize / Render: aggregate counts and report output in console,
//     JSON, or Markdown form.
//
// Everything here is pure and synchronous: inputs are value records built
// fresh per invocation, no state survives a call, and no wall-clock or
// randomness is consulted, so running Compare twice on the same inputs
// yields identical output. Matching ambiguity is never an error; an
// unmatched event is data (DBEvent nil plus a discrepancy), not a failure.
package reconcile
