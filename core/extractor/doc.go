// Package extractor converts legacy result page HTML into structured
// event data using an LLM.
//
// The legacy pages were hand-edited over two decades and follow no stable
// markup, so a prompted model does the parsing. The model is untrusted:
// its output is decoded defensively (code fences tolerated) and validated
// field by field before anything downstream sees it. Validation failures
// wrap ErrMalformedPayload so callers can tell a bad model response apart
// from a transport error.
//
// Normalization applied to accepted payloads: ISO dates, H:MM finish
// times with zero-padded minutes, lowercased status values.
package extractor
