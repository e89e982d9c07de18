package jqwatch

import (
	"context"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/itchyny/gojq"

	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/watch/watchtype"
	"github.com/dshills/warden/internal/wverrors"
)

// Extractor runs a compiled jq query against JSON content.
type Extractor struct {
	code *gojq.Code
}

// New compiles the watch's query once, at signal-resolution time,
// so a malformed query fails fast rather than on first evaluation.
func New(w *config.JQWatch) (*Extractor, error) {
	query, err := gojq.Parse(w.Query)
	if err != nil {
		return nil, &wverrors.ConfigError{Detail: fmt.Sprintf("invalid jq query: %v", err)}
	}
	code, err := gojq.Compile(query)
	if err != nil {
		return nil, &wverrors.ConfigError{Detail: fmt.Sprintf("invalid jq query: %v", err)}
	}
	return &Extractor{code: code}, nil
}

// ProducesLineRange reports false: jq output is a transformation of
// the input, not a subset of it, so a derived line range would mislead.
func (e *Extractor) ProducesLineRange() bool { return false }

// Extract runs the query against content parsed as JSON, joining
// successive results with newlines. Empty content produces empty
// output without attempting to parse.
func (e *Extractor) Extract(ctx context.Context, content, path string) (watchtype.Extracted, error) {
	if strings.TrimSpace(content) == "" {
		return watchtype.Extracted{}, nil
	}

	var input any
	if err := json.Unmarshal([]byte(content), &input); err != nil {
		return watchtype.Extracted{}, &wverrors.ExtractorError{Watch: "jq", Cause: err}
	}

	iter := e.code.RunWithContext(ctx, input)
	var lines []string
	for {
		v, ok := iter.Next()
		if !ok {
			break
		}
		if err, ok := v.(error); ok {
			if err == nil {
				continue
			}
			var halt *gojq.HaltError
			if isHalt(err, &halt) && halt.Value() == nil {
				break
			}
			return watchtype.Extracted{}, &wverrors.ExtractorError{Watch: "jq", Cause: err}
		}
		lines = append(lines, renderValue(v))
	}

	return watchtype.Extracted{Text: strings.Join(lines, "\n")}, nil
}

func isHalt(err error, target **gojq.HaltError) bool {
	h, ok := err.(*gojq.HaltError)
	if ok {
		*target = h
	}
	return ok
}

func renderValue(v any) string {
	if s, ok := v.(string); ok {
		b, err := json.Marshal(s)
		if err == nil {
			return string(b)
		}
	}
	b, err := json.Marshal(v)
	if err != nil {
		return fmt.Sprintf("%v", v)
	}
	return string(b)
}
