// Package legacyhtml fetches legacy result pages over HTTP with a local
// disk cache.
//
// The club's historical results live on an old static site that is slow
// and occasionally flaky, so successful fetches are cached on disk keyed
// by a sanitized form of the URL, and transient failures are retried with
// linear backoff. HTTP 404 is a distinct, non-retried outcome (ErrNotFound)
// because a missing year page is an input problem, not a transport one.
//
// Cache writes are best-effort: a failed write is logged and ignored, it
// never fails the fetch.
package legacyhtml
