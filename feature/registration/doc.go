// Package registration matches registering riders against existing
// member records so decades of results stay attached to the right
// person.
//
// Two paths:
//
//   - Email on file: an exact email match identifies the rider
//     immediately and no name matching runs.
//   - No email match: riders without an email on file are prefiltered
//     by first-name nickname variants, then ranked by name similarity
//     (core/names). Up to ten candidates come back, best first, each
//     enriched with participation history.
//
// Candidate matching is advisory. Lookup failures degrade to an empty
// candidate list so a registration can always proceed as a new member.
package registration
