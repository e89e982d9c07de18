package config

// WatchKind is the closed set of extractor kinds a watch may use.
type WatchKind string

const (
	WatchJQ      WatchKind = "jq"
	WatchRegex   WatchKind = "regex"
	WatchXPath   WatchKind = "xpath"
	WatchTSQ     WatchKind = "tsq"
	WatchASTGrep WatchKind = "ast-grep"
)

// ReportKind is the closed set of report template kinds.
type ReportKind string

// Handlebars is currently the only report variant.
const Handlebars ReportKind = "handlebars"

// Globs is one include glob or a set of them, with minimatch-style
// matching semantics.
type Globs []string

// Watch is a tagged union over the five extractor kinds, plus the
// include globs common to all of them. Exactly one of the kind-specific
// fields is populated, selected by Kind.
type Watch struct {
	Kind    WatchKind
	Include Globs

	JQ      *JQWatch
	Regex   *RegexWatch
	XPath   *XPathWatch
	TSQ     *TSQWatch
	ASTGrep *ASTGrepWatch
}

// JQWatch runs a jq query over JSON content.
type JQWatch struct {
	Query string
}

// RegexWatch finds all matches of a pattern.
type RegexWatch struct {
	Pattern string
	Flags   string
}

// XPathWatch evaluates an XPath expression against XML content.
type XPathWatch struct {
	Expression string
	Namespaces map[string]string
}

// TSQWatch runs a tree-sitter query against source code.
type TSQWatch struct {
	Query    string
	Capture  string
	Language string
}

// ASTGrepPattern is either a bare pattern string or a {context,
// selector} object, mirroring the YAML shape of the ast-grep watch's
// "pattern" field.
type ASTGrepPattern struct {
	Simple   string
	Context  string
	Selector string
	IsObject bool
}

// ASTGrepWatch runs a structural pattern match via ast-grep.
type ASTGrepWatch struct {
	Language string
	Pattern  ASTGrepPattern
}

// Report is a tagged union over the report template kinds.
type Report struct {
	Kind       ReportKind
	Handlebars *HandlebarsReport
}

// HandlebarsReport renders a Handlebars-style template string.
type HandlebarsReport struct {
	Template string
}

// NotifyConfig is opaque stakeholder/channel metadata passed through
// verbatim to a ReportOutput; the engine never interprets its fields.
type NotifyConfig map[string]any

// WatchRef is either an inline Watch or a "#defined/watches/<name>"
// reference.
type WatchRef struct {
	Use   string
	Watch *Watch
}

// ReportRef is either an inline Report or a "#defined/reports/<name>"
// reference.
type ReportRef struct {
	Use    string
	Report *Report
}

// Signal is a (watch, report, optional notify) triple. Watch and
// Report may be inline values or "#defined/..." references.
type Signal struct {
	Watch  WatchRef
	Report ReportRef
	Notify *NotifyConfig
}

// SignalRef is either an inline Signal or a "#defined/signals/<name>"
// reference.
type SignalRef struct {
	Use    string
	Signal *Signal
}

// Concern is a named governance area: an ordered sequence of signals
// plus opaque stakeholder metadata.
type Concern struct {
	ID           string
	Signals      []SignalRef
	Stakeholders map[string]any
}

// DefinedBlock holds shared, named watches/reports/signals that
// "#defined/..." references resolve against.
type DefinedBlock struct {
	Watches map[string]Watch
	Reports map[string]Report
	Signals map[string]Signal
}

// Root is the top-level configuration document: an ordered sequence of
// concerns, plus the shared defined block. Concern order is preserved
// from the source document since it governs signal-emission order.
type Root struct {
	Concerns []Concern
	Defined  DefinedBlock
}
