// Package concern holds the runner's per-run, concern-scoped side
// channel: key/value context accumulated across every file processed
// for a concern id. It is write-only from the runner's perspective
// during a run and is never read back by subsequent watch evaluations,
// so accumulation order does not affect emitted reports.
package concern
