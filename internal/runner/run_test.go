package runner

import (
	"context"
	"strings"
	"testing"

	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/content"
	"github.com/dshills/warden/internal/diffparse"
)

type fakeProvider struct {
	base map[string]string
	head map[string]string
}

func (p *fakeProvider) Fetch(ctx context.Context, revision, path string) (*string, error) {
	m := p.head
	if revision == "base" {
		m = p.base
	}
	v, ok := m[path]
	if !ok {
		return nil, nil
	}
	return &v, nil
}

func jqSignal(query, template string, include ...string) config.SignalRef {
	return config.SignalRef{
		Signal: &config.Signal{
			Watch: config.WatchRef{Watch: &config.Watch{
				Kind:    config.WatchJQ,
				Include: include,
				JQ:      &config.JQWatch{Query: query},
			}},
			Report: config.ReportRef{Report: &config.Report{
				Kind:       config.Handlebars,
				Handlebars: &config.HandlebarsReport{Template: template},
			}},
		},
	}
}

func TestRun_ProducesReportOnChange(t *testing.T) {
	provider := &fakeProvider{
		base: map[string]string{"package.json": `{"version":"1.0.0"}`},
		head: map[string]string{"package.json": `{"version":"2.0.0"}`},
	}
	root := config.Root{
		Concerns: []config.Concern{
			{ID: "versioning", Signals: []config.SignalRef{
				jqSignal(".version", "{{left.artifact}} -> {{right.artifact}}", "**/*.json"),
			}},
		},
	}
	files := []diffparse.FileChange{{OldPath: "package.json", NewPath: "package.json", Kind: diffparse.Modify}}

	res, err := Run(context.Background(), files, root, provider, Params{BaseRef: "base", HeadRef: "head"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Reports) != 1 {
		t.Fatalf("len(Reports) = %d, want 1", len(res.Reports))
	}
	if res.Reports[0].Content != `"1.0.0" -> "2.0.0"` {
		t.Fatalf("Content = %q", res.Reports[0].Content)
	}
}

func TestRun_GlobGating(t *testing.T) {
	provider := &fakeProvider{
		base: map[string]string{"package.json": `{"version":"1.0.0"}`},
		head: map[string]string{"package.json": `{"version":"2.0.0"}`},
	}
	root := config.Root{
		Concerns: []config.Concern{
			{ID: "versioning", Signals: []config.SignalRef{
				jqSignal(".version", "changed", "**/*.yaml"),
			}},
		},
	}
	files := []diffparse.FileChange{{OldPath: "package.json", NewPath: "package.json", Kind: diffparse.Modify}}

	res, err := Run(context.Background(), files, root, provider, Params{BaseRef: "base", HeadRef: "head"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Reports) != 0 {
		t.Fatalf("len(Reports) = %d, want 0 (glob should have gated this signal out)", len(res.Reports))
	}
}

func TestRun_AbsenceOnEquality(t *testing.T) {
	provider := &fakeProvider{
		base: map[string]string{"a.json": `{"name":"x"}`},
		head: map[string]string{"a.json": `{"name":"x"}`},
	}
	root := config.Root{
		Concerns: []config.Concern{
			{ID: "c", Signals: []config.SignalRef{jqSignal(".name", "changed", "**/*.json")}},
		},
	}
	files := []diffparse.FileChange{{OldPath: "a.json", NewPath: "a.json", Kind: diffparse.Modify}}

	res, err := Run(context.Background(), files, root, provider, Params{BaseRef: "base", HeadRef: "head"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Reports) != 0 {
		t.Fatalf("len(Reports) = %d, want 0 for identical content", len(res.Reports))
	}
}

func TestRun_OrderPreservedAcrossFilesAndSignals(t *testing.T) {
	provider := &fakeProvider{
		base: map[string]string{
			"a.json": `{"v":"1"}`,
			"b.json": `{"v":"1"}`,
		},
		head: map[string]string{
			"a.json": `{"v":"2"}`,
			"b.json": `{"v":"2"}`,
		},
	}
	root := config.Root{
		Concerns: []config.Concern{
			{ID: "first", Signals: []config.SignalRef{jqSignal(".v", "first:{{filePath}}", "**/*.json")}},
			{ID: "second", Signals: []config.SignalRef{jqSignal(".v", "second:{{filePath}}", "**/*.json")}},
		},
	}
	files := []diffparse.FileChange{
		{OldPath: "a.json", NewPath: "a.json", Kind: diffparse.Modify},
		{OldPath: "b.json", NewPath: "b.json", Kind: diffparse.Modify},
	}

	res, err := Run(context.Background(), files, root, provider, Params{BaseRef: "base", HeadRef: "head"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Reports) != 4 {
		t.Fatalf("len(Reports) = %d, want 4", len(res.Reports))
	}
	want := []string{"first:a.json", "second:a.json", "first:b.json", "second:b.json"}
	for i, w := range want {
		if res.Reports[i].Content != w {
			t.Fatalf("Reports[%d].Content = %q, want %q", i, res.Reports[i].Content, w)
		}
	}
}

func TestRun_DanglingReferenceIsFatal(t *testing.T) {
	provider := &fakeProvider{base: map[string]string{}, head: map[string]string{"a.json": "{}"}}
	root := config.Root{
		Concerns: []config.Concern{
			{ID: "c", Signals: []config.SignalRef{{Use: "#defined/signals/missing"}}},
		},
	}
	files := []diffparse.FileChange{{OldPath: "a.json", NewPath: "a.json", Kind: diffparse.Add}}

	_, err := Run(context.Background(), files, root, provider, Params{BaseRef: "base", HeadRef: "head"})
	if err == nil {
		t.Fatal("Run: want a fatal error for a dangling signal reference")
	}
	if !strings.Contains(err.Error(), "not found") {
		t.Fatalf("err = %v, want it to mention the missing reference", err)
	}
}

func TestRun_AddFileSkipsOldFetch(t *testing.T) {
	provider := &fakeProvider{base: map[string]string{}, head: map[string]string{"x.json": `{"a":1}`}}
	root := config.Root{
		Concerns: []config.Concern{
			{ID: "c", Signals: []config.SignalRef{jqSignal(".a", "{{left.artifact}}|{{right.artifact}}", "**/*.json")}},
		},
	}
	files := []diffparse.FileChange{{NewPath: "x.json", Kind: diffparse.Add}}

	res, err := Run(context.Background(), files, root, provider, Params{BaseRef: "base", HeadRef: "head"})
	if err != nil {
		t.Fatalf("Run: %v", err)
	}
	if len(res.Reports) != 1 {
		t.Fatalf("len(Reports) = %d, want 1", len(res.Reports))
	}
	if res.Reports[0].Content != "|1" {
		t.Fatalf("Content = %q, want %q", res.Reports[0].Content, "|1")
	}
}

var _ content.Provider = (*fakeProvider)(nil)
