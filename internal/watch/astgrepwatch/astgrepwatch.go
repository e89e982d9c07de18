package astgrepwatch

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"strings"

	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/watch/watchtype"
	"github.com/dshills/warden/internal/wverrors"
)

// binary is the ast-grep CLI entry point. Overridable in tests.
var binary = "sg"

// Extractor runs a structural pattern match through the ast-grep CLI.
type Extractor struct {
	lang     string
	simple   string
	context  string
	selector string
}

// New stores the watch's pattern shape. Language is mandatory per
// §4.3.5; a simple pattern is a code-shaped template with $NAME /
// $$$REST metavariables, an object pattern pairs a surrounding context
// snippet with a selector node kind for disambiguation.
func New(w *config.ASTGrepWatch) (*Extractor, error) {
	if w.Language == "" {
		return nil, &wverrors.ConfigError{Detail: "ast-grep watch requires a language"}
	}
	ex := &Extractor{lang: w.Language}
	if w.Pattern.IsObject {
		ex.context = w.Pattern.Context
		ex.selector = w.Pattern.Selector
	} else {
		ex.simple = w.Pattern.Simple
	}
	return ex, nil
}

// ProducesLineRange reports true: matched nodes are a subset of the
// source file, so the artifact diff's line numbers are meaningful.
func (e *Extractor) ProducesLineRange() bool { return true }

func (e *Extractor) Extract(ctx context.Context, content, path string) (watchtype.Extracted, error) {
	if strings.TrimSpace(content) == "" {
		return watchtype.Extracted{}, nil
	}
	if _, err := exec.LookPath(binary); err != nil {
		return watchtype.Extracted{}, &wverrors.ToolNotFoundError{Tool: binary}
	}

	tmp, err := os.CreateTemp("", "warden-astgrep-*"+sourceSuffix(e.lang))
	if err != nil {
		return watchtype.Extracted{}, &wverrors.ExtractorError{Watch: "ast-grep", Cause: err}
	}
	defer os.Remove(tmp.Name())
	if _, err := tmp.WriteString(content); err != nil {
		tmp.Close()
		return watchtype.Extracted{}, &wverrors.ExtractorError{Watch: "ast-grep", Cause: err}
	}
	tmp.Close()

	args := []string{"run", "--lang", e.lang, "--json=compact"}
	if e.context != "" {
		args = append(args, "--pattern", e.context, "--selector", e.selector)
	} else {
		args = append(args, "--pattern", e.simple)
	}
	args = append(args, tmp.Name())

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, binary, args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	if err := cmd.Run(); err != nil {
		return watchtype.Extracted{}, &wverrors.ExtractorError{
			Watch: "ast-grep",
			Cause: fmt.Errorf("%w: %s", err, stderr.String()),
		}
	}

	var matches []sgMatch
	if stdout.Len() > 0 {
		if err := json.Unmarshal(stdout.Bytes(), &matches); err != nil {
			return watchtype.Extracted{}, &wverrors.ExtractorError{Watch: "ast-grep", Cause: err}
		}
	}

	var segments []string
	var contexts []map[string]string
	for _, m := range matches {
		segments = append(segments, m.Text)
		if entry := m.contextEntry(); len(entry) > 0 {
			contexts = append(contexts, entry)
		}
	}

	return watchtype.Extracted{
		Text:    strings.Join(segments, "\n\n"),
		Context: contexts,
	}, nil
}

// sgMatch mirrors the fields of ast-grep's --json=compact output that
// this extractor cares about: the matched text and its metavariable
// bindings, both single-capture and multi-capture ($$$REST-style).
type sgMatch struct {
	Text          string `json:"text"`
	MetaVariables struct {
		Single map[string]struct {
			Text string `json:"text"`
		} `json:"single"`
		Multi map[string][]struct {
			Text string `json:"text"`
		} `json:"multi"`
	} `json:"metaVariables"`
}

func (m sgMatch) contextEntry() map[string]string {
	entry := map[string]string{}
	for name, v := range m.MetaVariables.Single {
		entry[name] = v.Text
	}
	for name, parts := range m.MetaVariables.Multi {
		var texts []string
		for _, p := range parts {
			texts = append(texts, p.Text)
		}
		entry[name] = strings.Join(texts, "")
	}
	return entry
}

func sourceSuffix(lang string) string {
	if ext, ok := langSuffix[lang]; ok {
		return ext
	}
	return ".txt"
}

var langSuffix = map[string]string{
	"go":         ".go",
	"javascript": ".js",
	"typescript": ".ts",
	"python":     ".py",
	"java":       ".java",
	"rust":       ".rs",
	"c":          ".c",
	"cpp":        ".cpp",
}
