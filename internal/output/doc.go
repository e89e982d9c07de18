// Package output formats a runner.Result for display or machine
// consumption.
//
// Four formats are supported:
//   - text     — human-readable terminal output (default)
//   - json     — the full {reports, concerns, failures} structure as JSON
//   - markdown — PR-comment-friendly with collapsible sections per report
//   - sarif    — SARIF v2.1.0 for upload to GitHub Advanced Security and other CI tools
//
// Use [GetWriter] to obtain a [Writer] for a given format string, then
// call [Writer.Write] with an [io.Writer] and a [*runner.Result].
// [WriteReport] is a convenience helper that handles destination
// selection.
package output
