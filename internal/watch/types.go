package watch

import "github.com/dshills/warden/internal/watch/watchtype"

// LineRange is an inclusive line range within a filtered artifact —
// not a source-file line range. It is derived from the new-side of the
// first hunk in the artifact diff, so consumers that assume it maps to
// source lines will be misled for extractors that reshape content
// (jq's transformation output, for instance, never produces one).
type LineRange struct {
	Start int
	End   int
}

// FilterResult is a watch's non-absent output: the two extracted
// artifacts differ, and here is how.
type FilterResult struct {
	DiffText      string
	LeftArtifact  string
	RightArtifact string
	LineRange     *LineRange
	Context       []map[string]string
}

// Extracted is one side's extractor output.
type Extracted = watchtype.Extracted
