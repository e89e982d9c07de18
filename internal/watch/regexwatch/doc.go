// Package regexwatch implements the regex extractor kind: finding all
// non-overlapping matches of a pattern and reporting them as a
// newline-joined artifact, with named capture groups surfaced as
// symbolic context.
package regexwatch
