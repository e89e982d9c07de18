// Package jqwatch implements the jq extractor kind: running a jq query
// over a version's content as JSON and rendering the results as text.
// Line ranges are never produced, since jq output is a transformation
// of the input rather than a subset of it.
package jqwatch
