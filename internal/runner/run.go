package runner

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	"github.com/dshills/warden/internal/concern"
	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/content"
	"github.com/dshills/warden/internal/diffparse"
	"github.com/dshills/warden/internal/report"
	"github.com/dshills/warden/internal/watch"
	"github.com/dshills/warden/internal/wverrors"
)

// maxConcurrency bounds parallel (file, signal) evaluation. Watches are
// local, in-process computations, so this can run higher than the
// teacher's LLM-call concurrency cap.
const maxConcurrency = 8

type task struct {
	file      diffparse.FileChange
	concernID string
	signalID  string
	signalRef config.SignalRef
}

type taskResult struct {
	output  *report.Output
	failure *SignalFailure
}

// Run processes every diff-ordered file against every concern's
// declared signals, in declared order, per §4.2's contract. The
// emitted reports preserve that order regardless of how the underlying
// work was scheduled.
func Run(ctx context.Context, files []diffparse.FileChange, root config.Root, provider content.Provider, params Params) (Result, error) {
	var tasks []task
	for _, f := range files {
		for _, c := range root.Concerns {
			for i, sigRef := range c.Signals {
				tasks = append(tasks, task{
					file:      f,
					concernID: c.ID,
					signalID:  fmt.Sprintf("%s[%d]", c.ID, i),
					signalRef: sigRef,
				})
			}
		}
	}

	results := make([]taskResult, len(tasks))
	contexts := concern.NewContextStore()

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(maxConcurrency)

	for i, t := range tasks {
		i, t := i, t
		g.Go(func() error {
			out, failure, err := runOne(gctx, provider, params, root.Defined, t, contexts)
			if err != nil {
				return err
			}
			results[i] = taskResult{output: out, failure: failure}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return Result{}, err
	}

	var res Result
	res.Concerns = contexts.Snapshot()
	for _, r := range results {
		if r.output != nil {
			res.Reports = append(res.Reports, *r.output)
		}
		if r.failure != nil {
			res.Failures = append(res.Failures, *r.failure)
		}
	}
	return res, nil
}

// runOne executes the five steps of §4.2 for one (file, signal) pair.
// A non-nil error is a configuration resolution failure and is fatal
// for the whole run; everything else is reported through the return
// values so a failing signal never aborts its neighbors.
func runOne(ctx context.Context, provider content.Provider, params Params, defined config.DefinedBlock, t task, contexts *concern.ContextStore) (*report.Output, *SignalFailure, error) {
	signal, err := config.ResolveSignal(t.signalRef, defined, t.signalID)
	if err != nil {
		return nil, nil, err
	}

	w, err := config.ResolveWatch(signal.Watch, defined, t.signalID)
	if err != nil {
		return nil, nil, err
	}

	effectivePath := t.file.EffectivePath()
	if !w.Include.Match(effectivePath) {
		return nil, nil, nil
	}

	needOld := t.file.Kind != diffparse.Add
	needNew := t.file.Kind != diffparse.Delete
	versions, err := content.Fetch(ctx, provider, params.BaseRef, params.HeadRef, t.file.OldPath, t.file.NewPath, needOld, needNew)
	if err != nil {
		cerr := &wverrors.ContentError{Revision: params.HeadRef, Path: effectivePath, Cause: err}
		return nil, &SignalFailure{ConcernID: t.concernID, Path: effectivePath, Err: cerr, Message: cerr.Error()}, nil
	}

	fr, err := watch.Dispatch(ctx, w, versions, effectivePath)
	if err != nil {
		if surfaced(err) {
			return nil, &SignalFailure{ConcernID: t.concernID, Path: effectivePath, Err: err, Message: err.Error()}, nil
		}
		return nil, nil, nil
	}
	if fr == nil {
		return nil, nil, nil
	}

	reportCfg, err := config.ResolveReport(signal.Report, defined, t.signalID)
	if err != nil {
		return nil, nil, err
	}

	renderer, err := report.New(reportCfg)
	if err != nil {
		if _, ok := err.(*wverrors.RenderError); ok {
			return nil, &SignalFailure{ConcernID: t.concernID, Path: effectivePath, Err: err, Message: err.Error()}, nil
		}
		return nil, nil, err
	}

	out, err := renderer.Render(effectivePath, report.FilterResult{
		DiffText:      fr.DiffText,
		LeftArtifact:  fr.LeftArtifact,
		RightArtifact: fr.RightArtifact,
		LineRange:     convertLineRange(fr.LineRange),
		Context:       fr.Context,
	}, signal.Notify)
	if err != nil {
		return nil, &SignalFailure{ConcernID: t.concernID, Path: effectivePath, Err: err, Message: err.Error()}, nil
	}

	if signal.Notify != nil {
		for k, v := range *signal.Notify {
			contexts.Set(t.concernID, k, fmt.Sprint(v))
		}
	}

	return &out, nil, nil
}

func convertLineRange(lr *watch.LineRange) *report.LineRange {
	if lr == nil {
		return nil
	}
	return &report.LineRange{Start: lr.Start, End: lr.End}
}

// surfaced reports whether err is a configuration-level contract
// violation the runner must surface for its signal instead of
// collapsing to empty extraction, per §5's failure-isolation rule.
func surfaced(err error) bool {
	switch err.(type) {
	case *wverrors.ToolNotFoundError, *wverrors.UnsupportedLanguageError, *wverrors.ConfigError:
		return true
	default:
		return false
	}
}
