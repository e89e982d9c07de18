package watch

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/warden/internal/wverrors"
)

// Run drives an [Extractor] against a file-version pair and folds the
// two extracted artifacts into a [FilterResult], or nil when the watch
// found no reportable change.
//
// Absence rules (spec §4.3.2): if both versions are absent, the watch
// is absent. Otherwise each present version is extracted; a missing
// version is treated as empty content for extraction purposes, and its
// artifact is the empty string. If the two artifacts are textually
// identical, the watch is absent — the diff, not the raw extraction,
// decides reportability.
func Run(ctx context.Context, ex Extractor, oldContent, newContent *string, path string) (*FilterResult, error) {
	if oldContent == nil && newContent == nil {
		return nil, nil
	}

	var leftText, rightText string
	if oldContent != nil {
		leftText = *oldContent
	}
	if newContent != nil {
		rightText = *newContent
	}

	var left, right Extracted
	g, gctx := errgroup.WithContext(ctx)
	extract := func(content string) (Extracted, error) {
		out, err := ex.Extract(gctx, content, path)
		if err == nil {
			return out, nil
		}
		switch err.(type) {
		case *wverrors.ToolNotFoundError, *wverrors.UnsupportedLanguageError, *wverrors.ConfigError:
			return Extracted{}, err
		}
		// Any other extractor failure collapses to empty extraction.
		return Extracted{}, nil
	}
	g.Go(func() error {
		var err error
		left, err = extract(leftText)
		return err
	})
	g.Go(func() error {
		var err error
		right, err = extract(rightText)
		return err
	})
	if err := g.Wait(); err != nil {
		return nil, err
	}

	if left.Text == right.Text {
		return nil, nil
	}

	diffText := unifiedDiff(left.Text, right.Text)

	var lr *LineRange
	if ex.ProducesLineRange() {
		lr = lineRangeFromDiff(diffText)
	}

	return &FilterResult{
		DiffText:      diffText,
		LeftArtifact:  left.Text,
		RightArtifact: right.Text,
		LineRange:     lr,
		Context:       mergeContext(left.Context, right.Context),
	}, nil
}
