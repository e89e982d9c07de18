// Package content defines the ContentProvider contract: a pure function
// from (revision, path) to file content or absence.
//
// Absence — the file does not exist at that revision — is never an
// error; only I/O or authorization failures are. The special revision
// "." (or "") means "working tree" for filesystem-backed providers.
//
// Two reference implementations live in the gitprovider and
// githubprovider subpackages; neither is required by the engine beyond
// satisfying [Provider].
package content
