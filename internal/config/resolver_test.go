package config

import "testing"

func TestResolveWatch_Inline(t *testing.T) {
	ref := WatchRef{Watch: &Watch{Kind: WatchJQ, JQ: &JQWatch{Query: ".version"}}}
	w, err := ResolveWatch(ref, DefinedBlock{}, "sig1")
	if err != nil {
		t.Fatalf("ResolveWatch: %v", err)
	}
	if w.Kind != WatchJQ || w.JQ.Query != ".version" {
		t.Errorf("got %+v", w)
	}
}

func TestResolveWatch_Reference(t *testing.T) {
	defined := DefinedBlock{
		Watches: map[string]Watch{
			"versionBump": {Kind: WatchJQ, JQ: &JQWatch{Query: ".version"}},
		},
	}
	ref := WatchRef{Use: "#defined/watches/versionBump"}
	w, err := ResolveWatch(ref, defined, "sig1")
	if err != nil {
		t.Fatalf("ResolveWatch: %v", err)
	}
	if w.JQ.Query != ".version" {
		t.Errorf("got %+v", w)
	}
}

func TestResolveWatch_InvalidFormat(t *testing.T) {
	ref := WatchRef{Use: "not-a-reference"}
	_, err := ResolveWatch(ref, DefinedBlock{}, "sig1")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != `signal "sig1": Invalid reference format` {
		t.Errorf("got %q", got)
	}
}

func TestResolveWatch_KindMismatch(t *testing.T) {
	ref := WatchRef{Use: "#defined/reports/foo"}
	_, err := ResolveWatch(ref, DefinedBlock{}, "sig1")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != `signal "sig1": Expected a watches reference, got reports` {
		t.Errorf("got %q", got)
	}
}

func TestResolveWatch_NotFound(t *testing.T) {
	ref := WatchRef{Use: "#defined/watches/missing"}
	_, err := ResolveWatch(ref, DefinedBlock{}, "sig1")
	if err == nil {
		t.Fatal("expected error")
	}
	if got := err.Error(); got != `signal "sig1": watches 'missing' not found` {
		t.Errorf("got %q", got)
	}
}

func TestResolveReport_Reference(t *testing.T) {
	defined := DefinedBlock{
		Reports: map[string]Report{
			"std": {Kind: Handlebars, Handlebars: &HandlebarsReport{Template: "{{filePath}}"}},
		},
	}
	ref := ReportRef{Use: "#defined/reports/std"}
	r, err := ResolveReport(ref, defined, "sig1")
	if err != nil {
		t.Fatalf("ResolveReport: %v", err)
	}
	if r.Handlebars.Template != "{{filePath}}" {
		t.Errorf("got %+v", r)
	}
}

func TestResolveSignal_Reference(t *testing.T) {
	defined := DefinedBlock{
		Signals: map[string]Signal{
			"bump": {Watch: WatchRef{Watch: &Watch{Kind: WatchJQ, JQ: &JQWatch{Query: ".version"}}}},
		},
	}
	ref := SignalRef{Use: "#defined/signals/bump"}
	s, err := ResolveSignal(ref, defined, "concern1")
	if err != nil {
		t.Fatalf("ResolveSignal: %v", err)
	}
	if s.Watch.Watch.JQ.Query != ".version" {
		t.Errorf("got %+v", s)
	}
}
