package runner

import (
	"github.com/dshills/warden/internal/report"
)

// Params are the processing context §4.2 requires beyond the diff and
// configuration: the revisions that bound the change. The content
// provider is passed to [Run] separately.
type Params struct {
	BaseRef string
	HeadRef string
}

// SignalFailure records a per-signal failure that the runner surfaces
// rather than collapsing to absence, per §5's failure-isolation rule: a
// configuration-level contract violation caught at extraction time
// (missing language, missing external tool, invalid watch config), a
// content retrieval failure, or a report render failure.
type SignalFailure struct {
	ConcernID string `json:"concernId"`
	Path      string `json:"path"`
	Err       error  `json:"-"`
	Message   string `json:"message"`
}

// Result is the runner's output: rendered reports in emission order,
// accumulated concern context, and any per-signal failures that were
// surfaced instead of silently treated as absence.
type Result struct {
	Reports  []report.Output              `json:"reports"`
	Concerns map[string]map[string]string `json:"concerns,omitempty"`
	Failures []SignalFailure              `json:"failures,omitempty"`
}
