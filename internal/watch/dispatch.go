package watch

import (
	"context"
	"fmt"

	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/content"
	"github.com/dshills/warden/internal/watch/astgrepwatch"
	"github.com/dshills/warden/internal/watch/jqwatch"
	"github.com/dshills/warden/internal/watch/regexwatch"
	"github.com/dshills/warden/internal/watch/tsqwatch"
	"github.com/dshills/warden/internal/watch/xpathwatch"
	"github.com/dshills/warden/internal/wverrors"
)

// Build constructs the concrete Extractor for a resolved watch
// configuration, selecting on its Kind.
func Build(w config.Watch) (Extractor, error) {
	switch w.Kind {
	case config.WatchJQ:
		return jqwatch.New(w.JQ)
	case config.WatchRegex:
		return regexwatch.New(w.Regex)
	case config.WatchXPath:
		return xpathwatch.New(w.XPath)
	case config.WatchTSQ:
		return tsqwatch.New(w.TSQ)
	case config.WatchASTGrep:
		return astgrepwatch.New(w.ASTGrep)
	default:
		return nil, &wverrors.ConfigError{Detail: fmt.Sprintf("unknown watch kind: %s", w.Kind)}
	}
}

// Dispatch builds the watch's extractor and runs it over a resolved
// file-version pair, returning nil when the watch is absent.
func Dispatch(ctx context.Context, w config.Watch, versions content.Versions, path string) (*FilterResult, error) {
	ex, err := Build(w)
	if err != nil {
		return nil, err
	}
	return Run(ctx, ex, versions.Old, versions.New, path)
}
