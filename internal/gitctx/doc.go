// Package gitctx extracts diffs and commit metadata from a git repository.
//
// It supports six diff sources — unstaged, staged, commit, range, snippet,
// and codebase — by shelling out to git with appropriate arguments. Results
// are filtered by include/exclude glob patterns and truncated to a
// configurable maximum byte size.
//
// [ListCommits] returns the commits in a revision range, oldest first.
package gitctx
