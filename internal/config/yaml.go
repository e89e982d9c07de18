package config

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// UnmarshalYAML dispatches on the "type" field to decode the kind-
// specific watch payload.
func (w *Watch) UnmarshalYAML(value *yaml.Node) error {
	var head struct {
		Kind    WatchKind `yaml:"type"`
		Include Globs     `yaml:"include"`
	}
	if err := value.Decode(&head); err != nil {
		return err
	}
	w.Kind = head.Kind
	w.Include = head.Include

	switch head.Kind {
	case WatchJQ:
		var p JQWatch
		if err := value.Decode(&p); err != nil {
			return err
		}
		w.JQ = &p
	case WatchRegex:
		var p RegexWatch
		if err := value.Decode(&p); err != nil {
			return err
		}
		w.Regex = &p
	case WatchXPath:
		var p XPathWatch
		if err := value.Decode(&p); err != nil {
			return err
		}
		w.XPath = &p
	case WatchTSQ:
		var p TSQWatch
		if err := value.Decode(&p); err != nil {
			return err
		}
		w.TSQ = &p
	case WatchASTGrep:
		var p ASTGrepWatch
		if err := value.Decode(&p); err != nil {
			return err
		}
		w.ASTGrep = &p
	default:
		return fmt.Errorf("unknown watch type %q", head.Kind)
	}
	return nil
}

// UnmarshalYAML accepts either a single glob string or a sequence of
// globs.
func (g *Globs) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		*g = Globs{value.Value}
		return nil
	}
	var list []string
	if err := value.Decode(&list); err != nil {
		return err
	}
	*g = list
	return nil
}

// UnmarshalYAML decodes JQWatch's "query" field.
func (p *JQWatch) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Query string `yaml:"query"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.Query = raw.Query
	return nil
}

// UnmarshalYAML decodes RegexWatch's fields.
func (p *RegexWatch) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Pattern string `yaml:"pattern"`
		Flags   string `yaml:"flags"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.Pattern = raw.Pattern
	p.Flags = raw.Flags
	return nil
}

// UnmarshalYAML decodes XPathWatch's fields.
func (p *XPathWatch) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Expression string            `yaml:"expression"`
		Namespaces map[string]string `yaml:"namespaces"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.Expression = raw.Expression
	p.Namespaces = raw.Namespaces
	return nil
}

// UnmarshalYAML decodes TSQWatch's fields.
func (p *TSQWatch) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Query    string `yaml:"query"`
		Capture  string `yaml:"capture"`
		Language string `yaml:"language"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.Query = raw.Query
	p.Capture = raw.Capture
	p.Language = raw.Language
	return nil
}

// UnmarshalYAML decodes ASTGrepWatch's fields.
func (p *ASTGrepWatch) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Language string         `yaml:"language"`
		Pattern  ASTGrepPattern `yaml:"pattern"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.Language = raw.Language
	p.Pattern = raw.Pattern
	return nil
}

// UnmarshalYAML accepts either a bare pattern string or a {context,
// selector} mapping.
func (p *ASTGrepPattern) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		p.Simple = value.Value
		p.IsObject = false
		return nil
	}
	var raw struct {
		Context  string `yaml:"context"`
		Selector string `yaml:"selector"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.Context = raw.Context
	p.Selector = raw.Selector
	p.IsObject = true
	return nil
}

// UnmarshalYAML dispatches on the "type" field to decode the kind-
// specific report payload.
func (r *Report) UnmarshalYAML(value *yaml.Node) error {
	var head struct {
		Kind ReportKind `yaml:"type"`
	}
	if err := value.Decode(&head); err != nil {
		return err
	}
	r.Kind = head.Kind

	switch head.Kind {
	case Handlebars:
		var p HandlebarsReport
		if err := value.Decode(&p); err != nil {
			return err
		}
		r.Handlebars = &p
	default:
		return fmt.Errorf("unknown report type %q", head.Kind)
	}
	return nil
}

// UnmarshalYAML decodes HandlebarsReport's fields.
func (p *HandlebarsReport) UnmarshalYAML(value *yaml.Node) error {
	var raw struct {
		Template string `yaml:"template"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	p.Template = raw.Template
	return nil
}

// UnmarshalYAML accepts either {use: "#defined/watches/<name>"} or an
// inline Watch.
func (wr *WatchRef) UnmarshalYAML(value *yaml.Node) error {
	if use, ok := useField(value); ok {
		wr.Use = use
		return nil
	}
	var w Watch
	if err := value.Decode(&w); err != nil {
		return err
	}
	wr.Watch = &w
	return nil
}

// UnmarshalYAML accepts either {use: "#defined/reports/<name>"} or an
// inline Report.
func (rr *ReportRef) UnmarshalYAML(value *yaml.Node) error {
	if use, ok := useField(value); ok {
		rr.Use = use
		return nil
	}
	var r Report
	if err := value.Decode(&r); err != nil {
		return err
	}
	rr.Report = &r
	return nil
}

// UnmarshalYAML accepts either {use: "#defined/signals/<name>"} or an
// inline Signal.
func (sr *SignalRef) UnmarshalYAML(value *yaml.Node) error {
	if use, ok := useField(value); ok {
		sr.Use = use
		return nil
	}
	var raw struct {
		Watch  WatchRef      `yaml:"watch"`
		Report ReportRef     `yaml:"report"`
		Notify *NotifyConfig `yaml:"notify"`
	}
	if err := value.Decode(&raw); err != nil {
		return err
	}
	sr.Signal = &Signal{Watch: raw.Watch, Report: raw.Report, Notify: raw.Notify}
	return nil
}

// useField reports whether a mapping node is a bare "{use: ...}"
// reference, returning its value when it is.
func useField(value *yaml.Node) (string, bool) {
	if value.Kind != yaml.MappingNode {
		return "", false
	}
	for i := 0; i+1 < len(value.Content); i += 2 {
		if value.Content[i].Value == "use" {
			return value.Content[i+1].Value, true
		}
	}
	return "", false
}
