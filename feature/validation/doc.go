// Package validation implements the historical-data validation feature.
//
// It reconciles the club's legacy HTML result pages against the canonical
// database, per chapter and year:
//
//  1. Fetch the legacy page (core/legacyhtml, disk-cached with retry).
//  2. Extract structured events from the HTML (core/extractor, LLM-backed
//     with strict shape validation).
//  3. Load the canonical events and results (GORM query layer).
//  4. Reconcile and classify differences (core/reconcile).
//
// The stages run strictly in order; each needs the full output of the
// previous one. Output is advisory: a report of confidence-scored matches
// and severity-tagged discrepancies consumed by the validate CLI command
// or the HTTP endpoint, never applied destructively.
//
// # Components
//
//   - Service: orchestrates the pipeline behind small collaborator
//     interfaces (PageFetcher, EventExtractor, EventStore).
//   - Store: the GORM query layer for chapters, events, and results.
//   - Handler: exposes GET /validation/:chapter/:year.
//   - Feature: registers the handler with the application loader.
package validation
