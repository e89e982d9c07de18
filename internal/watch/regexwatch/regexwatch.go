package regexwatch

import (
	"context"
	"fmt"
	"regexp"
	"strings"

	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/watch/watchtype"
	"github.com/dshills/warden/internal/wverrors"
)

// Extractor finds all matches of a compiled pattern.
type Extractor struct {
	re *regexp.Regexp
}

// New compiles the pattern with effective flags: multiline and global
// matching always apply; user-supplied flags (i, s, U, ...) are passed
// through as an inline flag group ahead of the pattern.
func New(w *config.RegexWatch) (*Extractor, error) {
	flags := "m"
	for _, c := range w.Flags {
		if c == 'g' {
			continue // matching is always global; not a Go regexp flag
		}
		flags += string(c)
	}
	pattern := fmt.Sprintf("(?%s)%s", flags, w.Pattern)
	re, err := regexp.Compile(pattern)
	if err != nil {
		return nil, &wverrors.ConfigError{Detail: fmt.Sprintf("invalid regex pattern: %v", err)}
	}
	return &Extractor{re: re}, nil
}

// ProducesLineRange reports true: regex matches are a subset of the
// original content, so the artifact diff's line numbers are meaningful.
func (e *Extractor) ProducesLineRange() bool { return true }

// Extract finds all non-overlapping matches left to right, per the
// engine's documented resolution of matchAll's zero-length-match and
// overlap ambiguity: regexp.FindAll advances one character past a
// zero-length match to avoid stalling, and zero-length matches are then
// skipped, contributing neither text nor context.
func (e *Extractor) Extract(ctx context.Context, content, path string) (watchtype.Extracted, error) {
	names := e.re.SubexpNames()
	matches := e.re.FindAllStringSubmatchIndex(content, -1)

	var lines []string
	var contexts []map[string]string
	for _, m := range matches {
		if m[0] == m[1] {
			continue
		}
		lines = append(lines, content[m[0]:m[1]])

		entry := map[string]string{}
		for i, name := range names {
			if i == 0 || name == "" {
				continue
			}
			start, end := m[2*i], m[2*i+1]
			if start < 0 {
				continue
			}
			entry[name] = content[start:end]
		}
		if len(entry) > 0 {
			contexts = append(contexts, entry)
		}
	}

	return watchtype.Extracted{
		Text:    strings.Join(lines, "\n"),
		Context: contexts,
	}, nil
}
