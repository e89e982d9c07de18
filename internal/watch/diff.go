package watch

import (
	"regexp"
	"strconv"

	"github.com/sergi/go-diff/diffmatchpatch"
)

// firstHunkHeaderRe matches the spec's exact hunk-header shape (§4.3.6):
// the new-side start/length of the first hunk in a filtered artifact's
// diff text.
var firstHunkHeaderRe = regexp.MustCompile(`(?m)^@@ -\d+(?:,\d+)? \+(\d+)(?:,(\d+))? @@`)

// unifiedDiff computes a line-oriented diff of left/right with three
// lines of surrounding context, in a format consumers can scan for a
// leading "@@ -a,b +c,d @@" hunk header.
func unifiedDiff(left, right string) string {
	dmp := diffmatchpatch.New()
	dmp.PatchMargin = 3

	chars1, chars2, lineArray := dmp.DiffLinesToChars(left, right)
	diffs := dmp.DiffMain(chars1, chars2, false)
	diffs = dmp.DiffCharsToLines(diffs, lineArray)

	patches := dmp.PatchMake(left, diffs)
	return dmp.PatchToText(patches)
}

// lineRangeFromDiff parses the first new-side hunk header out of diff
// text, per §4.3.6. Returns nil when no header is present (e.g. every
// eligible watch found no line-structured change, or the extractor
// opted out of line ranges).
func lineRangeFromDiff(diffText string) *LineRange {
	m := firstHunkHeaderRe.FindStringSubmatch(diffText)
	if m == nil {
		return nil
	}
	start, err := strconv.Atoi(m[1])
	if err != nil {
		return nil
	}
	length := 1
	if m[2] != "" {
		length, err = strconv.Atoi(m[2])
		if err != nil {
			length = 1
		}
	}
	return &LineRange{Start: start, End: start + length - 1}
}
