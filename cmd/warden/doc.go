// Warden is a local-first CLI for deterministic code-change governance.
//
// It acquires a diff (unstaged, staged, commit, or revision range),
// materializes the old/new content of every changed file, runs each
// concern's declared watches against that content, and renders a
// report for every watch that fires.
//
// Usage:
//
//	warden check unstaged                  # check working tree changes
//	warden check staged                    # check staged changes
//	warden check commit <sha>              # check a specific commit
//	warden check range origin/main..HEAD   # check a revision range
//
// See the config package for the governance document format.
package main
