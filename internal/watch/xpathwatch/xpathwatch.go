package xpathwatch

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	"github.com/antchfx/xmlquery"
	"github.com/antchfx/xpath"

	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/watch/watchtype"
	"github.com/dshills/warden/internal/wverrors"
)

// Extractor evaluates a compiled XPath expression against XML content.
type Extractor struct {
	expr *xpath.Expr
}

// New compiles the expression with the watch's namespace bindings, if
// any, once at signal-resolution time.
func New(w *config.XPathWatch) (*Extractor, error) {
	var expr *xpath.Expr
	var err error
	if len(w.Namespaces) > 0 {
		expr, err = xpath.CompileWithNS(w.Expression, w.Namespaces)
	} else {
		expr, err = xpath.Compile(w.Expression)
	}
	if err != nil {
		return nil, &wverrors.ConfigError{Detail: fmt.Sprintf("invalid xpath expression: %v", err)}
	}
	return &Extractor{expr: expr}, nil
}

// ProducesLineRange reports true: a node-set result is a subset of the
// source document, so the artifact diff's line numbers are meaningful.
func (e *Extractor) ProducesLineRange() bool { return true }

// Extract parses content as XML and evaluates the expression. Parse
// failure yields empty output, per the watch's documented tolerance of
// malformed content (a version may simply not be XML yet).
func (e *Extractor) Extract(ctx context.Context, content, path string) (watchtype.Extracted, error) {
	if strings.TrimSpace(content) == "" {
		return watchtype.Extracted{}, nil
	}

	doc, err := xmlquery.Parse(strings.NewReader(content))
	if err != nil {
		return watchtype.Extracted{}, nil
	}

	nav := xmlquery.CreateXPathNavigator(doc)
	result := e.expr.Evaluate(nav)

	text, err := renderResult(result)
	if err != nil {
		return watchtype.Extracted{}, &wverrors.ExtractorError{Watch: "xpath", Cause: err}
	}
	return watchtype.Extracted{Text: text}, nil
}

func renderResult(result any) (string, error) {
	switch v := result.(type) {
	case *xpath.NodeIterator:
		var parts []string
		for v.MoveNext() {
			n, ok := v.Current().(*xmlquery.NodeNavigator)
			if !ok {
				continue
			}
			node := n.Current()
			if node == nil {
				continue
			}
			parts = append(parts, node.OutputXML(true))
		}
		return strings.Join(parts, "\n"), nil
	case string:
		return v, nil
	case float64:
		return strconv.FormatFloat(v, 'f', -1, 64), nil
	case bool:
		return strconv.FormatBool(v), nil
	default:
		return fmt.Sprintf("%v", v), nil
	}
}
