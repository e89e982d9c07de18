// Package github provides a minimal GitHub REST API client for posting warden
// reports as pull-request review comments.
//
// It detects the repository owner and name from the local git remote and
// authenticates with the GITHUB_TOKEN environment variable; the PR number is
// supplied by the caller. Comments are posted in GitHub's standard PR review
// format with file path and line number annotations.
package github
