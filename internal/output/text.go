package output

import (
	"fmt"
	"io"
	"sort"
	"strings"

	"github.com/dshills/warden/internal/runner"
)

// TextWriter outputs a human-readable text report.
type TextWriter struct{}

func (t *TextWriter) Write(w io.Writer, result *runner.Result) error {
	ew := &errWriter{w: w}

	ew.printf("warden run — %d report(s)\n", len(result.Reports))
	ew.println(strings.Repeat("─", 60))

	if len(result.Reports) == 0 {
		ew.println("\nNo signals fired.")
	}

	for _, r := range result.Reports {
		ew.printf("\n%s\n", r.FileName)
		if r.LineRange != nil {
			ew.printf("  lines %d-%d\n", r.LineRange.Start, r.LineRange.End)
		}
		ew.println(strings.Repeat("-", 40))
		ew.println(r.Content)
	}

	if len(result.Failures) > 0 {
		ew.printf("\n%s\n", strings.Repeat("─", 60))
		ew.printf("Surfaced failures: %d\n", len(result.Failures))
		for _, f := range result.Failures {
			ew.printf("  %s (%s): %v\n", f.Path, f.ConcernID, f.Err)
		}
	}

	if len(result.Concerns) > 0 {
		ew.printf("\n%s\n", strings.Repeat("─", 60))
		ew.println("Concern context:")
		ids := make([]string, 0, len(result.Concerns))
		for id := range result.Concerns {
			ids = append(ids, id)
		}
		sort.Strings(ids)
		for _, id := range ids {
			keys := make([]string, 0, len(result.Concerns[id]))
			for k := range result.Concerns[id] {
				keys = append(keys, k)
			}
			sort.Strings(keys)
			for _, k := range keys {
				ew.printf("  %s.%s = %s\n", id, k, result.Concerns[id][k])
			}
		}
	}

	return ew.err
}

// errWriter defers error handling until Write returns, matching the
// teacher's terminal-writer convenience wrapper.
type errWriter struct {
	w   io.Writer
	err error
}

func (e *errWriter) printf(format string, args ...any) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintf(e.w, format, args...)
}

func (e *errWriter) println(s string) {
	if e.err != nil {
		return
	}
	_, e.err = fmt.Fprintln(e.w, s)
}
