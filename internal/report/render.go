package report

import (
	"github.com/aymerick/raymond"

	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/wverrors"
)

// Renderer holds a compiled Handlebars template for one resolved
// report configuration.
type Renderer struct {
	tpl *raymond.Template
}

// New compiles the report's template once, at signal-resolution time.
// Handlebars is the only variant today; the switch stays exhaustive so
// a future report kind fails loudly here instead of at render time.
func New(cfg config.Report) (*Renderer, error) {
	switch cfg.Kind {
	case config.Handlebars:
		tpl, err := raymond.Parse(cfg.Handlebars.Template)
		if err != nil {
			return nil, &wverrors.RenderError{Cause: err}
		}
		return &Renderer{tpl: tpl}, nil
	default:
		return nil, &wverrors.ConfigError{Detail: "unknown report kind: " + string(cfg.Kind)}
	}
}

// FilterResult is the subset of watch.FilterResult the renderer needs,
// duplicated here so report does not import the watch package.
type FilterResult struct {
	DiffText      string
	LeftArtifact  string
	RightArtifact string
	LineRange     *LineRange
	Context       []map[string]string
}

// Render executes the template against filePath and the watch's
// filtered artifacts, per §4.4. diffText and both artifacts are marked
// safe so Handlebars does not HTML-escape them — template output is
// markdown, not HTML.
func (r *Renderer) Render(filePath string, fr FilterResult, notify *config.NotifyConfig) (Output, error) {
	ctx := map[string]any{
		"filePath": filePath,
		"diffText": raymond.SafeString(fr.DiffText),
		"left": map[string]any{
			"artifact": raymond.SafeString(fr.LeftArtifact),
		},
		"right": map[string]any{
			"artifact": raymond.SafeString(fr.RightArtifact),
		},
	}

	content, err := r.tpl.Exec(ctx)
	if err != nil {
		return Output{}, &wverrors.RenderError{Cause: err}
	}

	return Output{
		Content:   content,
		FileName:  filePath,
		DiffText:  fr.DiffText,
		Message:   content,
		LineRange: fr.LineRange,
		Context:   fr.Context,
		Notify:    notify,
	}, nil
}
