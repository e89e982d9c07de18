// Package astgrepwatch implements the ast-grep extractor kind: running
// the ast-grep CLI's structural pattern matcher against source code and
// surfacing matched nodes and their metavariable bindings.
//
// There is no in-process Go binding for ast-grep's pattern engine, so
// this extractor shells out to the "sg" binary, in the same subprocess
// idiom the git content provider uses for "git show".
package astgrepwatch
