package tsqwatch

import (
	"context"
	"fmt"
	"strings"
	"sync"

	sitter "github.com/smacker/go-tree-sitter"

	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/watch/watchtype"
	"github.com/dshills/warden/internal/wverrors"
)

// queryCache caches compiled queries by "language|query" so repeated
// files in a run do not recompile an identical query.
var queryCache sync.Map // string -> *sitter.Query

// Extractor runs a tree-sitter query, resolving language per file when
// the watch config does not pin one.
type Extractor struct {
	query   string
	capture string
	lang    string // explicit override, may be empty
}

// New checks only that a query is present and stores the config:
// language resolution depends on the file path, so it happens per
// Extract call.
func New(w *config.TSQWatch) (*Extractor, error) {
	if w.Query == "" {
		return nil, &wverrors.ConfigError{Detail: "tsq watch requires a query"}
	}
	return &Extractor{query: w.Query, capture: w.Capture, lang: w.Language}, nil
}

// ProducesLineRange reports true: matched nodes are a subset of the
// source file, so the artifact diff's line numbers are meaningful.
func (e *Extractor) ProducesLineRange() bool { return true }

func (e *Extractor) Extract(ctx context.Context, content, path string) (watchtype.Extracted, error) {
	if strings.TrimSpace(content) == "" {
		return watchtype.Extracted{}, nil
	}

	ext, lang, err := resolveLanguage(e.lang, path)
	if err != nil {
		return watchtype.Extracted{}, err
	}

	query, err := e.compiledQuery(ext, lang)
	if err != nil {
		return watchtype.Extracted{}, err
	}

	parser := sitter.NewParser()
	parser.SetLanguage(lang)
	source := []byte(content)
	tree, err := parser.ParseCtx(ctx, nil, source)
	if err != nil || tree == nil {
		return watchtype.Extracted{}, nil
	}

	cursor := sitter.NewQueryCursor()
	cursor.Exec(query, tree.RootNode())

	var (
		seen     = map[uintptr]bool{}
		segments []string
		contexts []map[string]string
	)

	for {
		m, ok := cursor.NextMatch()
		if !ok {
			break
		}

		contentNodes, contextEntry := e.matchContent(query, m, source)
		for _, node := range contentNodes {
			id := nodeIdentity(node)
			if seen[id] {
				continue
			}
			seen[id] = true
			segments = append(segments, node.Content(source))
		}
		if len(contextEntry) > 0 {
			contexts = append(contexts, contextEntry)
		}
	}

	return watchtype.Extracted{
		Text:    strings.Join(segments, "\n\n"),
		Context: contexts,
	}, nil
}

type captured struct {
	name string
	node *sitter.Node
}

// matchContent splits a match's captures into content nodes (what
// Extract emits as text) and a context entry (everything else),
// per §4.3.4's "maximal captures" rule: when no explicit capture name
// is pinned, content captures are those not spatially contained by any
// other capture in the same match.
func (e *Extractor) matchContent(query *sitter.Query, m *sitter.QueryMatch, source []byte) ([]*sitter.Node, map[string]string) {
	var caps []captured
	for _, c := range m.Captures {
		caps = append(caps, captured{name: query.CaptureNameForId(c.Index), node: c.Node})
	}

	var content []*sitter.Node
	ctxEntry := map[string]string{}

	if e.capture != "" {
		for _, c := range caps {
			if c.name == e.capture {
				content = append(content, c.node)
			} else {
				ctxEntry[c.name] = c.node.Content(source)
			}
		}
		return content, ctxEntry
	}

	for _, c := range caps {
		if isMaximal(c.node, caps) {
			content = append(content, c.node)
		} else {
			ctxEntry[c.name] = c.node.Content(source)
		}
	}
	return content, ctxEntry
}

// isMaximal reports whether node is not spatially contained by any
// other capture's node within the same match.
func isMaximal(node *sitter.Node, all []captured) bool {
	for _, other := range all {
		if other.node == node {
			continue
		}
		if contains(other.node, node) {
			return false
		}
	}
	return true
}

func contains(outer, inner *sitter.Node) bool {
	return outer.StartByte() <= inner.StartByte() && outer.EndByte() >= inner.EndByte() && outer.EndByte()-outer.StartByte() > inner.EndByte()-inner.StartByte()
}

func nodeIdentity(n *sitter.Node) uintptr {
	return uintptr(n.StartByte())<<32 | uintptr(n.EndByte())
}

func (e *Extractor) compiledQuery(ext string, lang *sitter.Language) (*sitter.Query, error) {
	key := ext + "|" + e.query
	if cached, ok := queryCache.Load(key); ok {
		return cached.(*sitter.Query), nil
	}
	query, err := sitter.NewQuery([]byte(e.query), lang)
	if err != nil {
		return nil, &wverrors.ConfigError{Detail: fmt.Sprintf("invalid tsq query: %v", err)}
	}
	queryCache.Store(key, query)
	return query, nil
}
