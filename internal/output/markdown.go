package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/dshills/warden/internal/runner"
)

// MarkdownWriter outputs a PR-comment-friendly markdown report, one
// collapsible section per rendered report.
type MarkdownWriter struct{}

func (m *MarkdownWriter) Write(w io.Writer, result *runner.Result) error {
	fmt.Fprintf(w, "## Warden Change Governance\n\n")
	fmt.Fprintf(w, "%d signal(s) fired.\n\n", len(result.Reports))

	if len(result.Reports) == 0 {
		fmt.Fprintln(w, "No signals fired. :white_check_mark:")
		return nil
	}

	for _, r := range result.Reports {
		fmt.Fprintf(w, "<details>\n<summary>%s</summary>\n\n", r.FileName)
		if r.LineRange != nil {
			fmt.Fprintf(w, "`%s:%d-%d`\n\n", r.FileName, r.LineRange.Start, r.LineRange.End)
		}
		fmt.Fprintf(w, "%s\n\n", r.Content)
		if r.DiffText != "" {
			fmt.Fprintf(w, "```diff\n%s\n```\n\n", strings.TrimRight(r.DiffText, "\n"))
		}
		fmt.Fprintf(w, "</details>\n\n")
	}

	if len(result.Failures) > 0 {
		fmt.Fprintf(w, "### Surfaced failures\n\n")
		for _, f := range result.Failures {
			fmt.Fprintf(w, "- `%s` (%s): %s\n", f.Path, f.ConcernID, f.Message)
		}
	}

	return nil
}
