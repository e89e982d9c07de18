package report

import "github.com/dshills/warden/internal/config"

// Output is one rendered report, matching §6's ReportOutput shape.
type Output struct {
	Content   string               `json:"content"`
	FileName  string               `json:"fileName"`
	DiffText  string               `json:"diffText"`
	Message   string               `json:"message"`
	LineRange *LineRange           `json:"lineRange,omitempty"`
	Context   []map[string]string  `json:"context,omitempty"`
	Notify    *config.NotifyConfig `json:"notify,omitempty"`
}

// LineRange mirrors watch.LineRange without importing the watch
// package, since report must not depend on the extractor scaffold.
type LineRange struct {
	Start int `json:"start"`
	End   int `json:"end"`
}
