package report

import (
	"strings"
	"testing"

	"github.com/dshills/warden/internal/config"
)

func TestRenderer_SubstitutesArtifacts(t *testing.T) {
	r, err := New(config.Report{
		Kind: config.Handlebars,
		Handlebars: &config.HandlebarsReport{
			Template: "{{filePath}} changed from {{left.artifact}} to {{right.artifact}}",
		},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.Render("package.json", FilterResult{
		DiffText:      "-\"1.0.0\"\n+\"2.0.0\"\n",
		LeftArtifact:  `"1.0.0"`,
		RightArtifact: `"2.0.0"`,
	}, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	want := `package.json changed from "1.0.0" to "2.0.0"`
	if out.Content != want {
		t.Fatalf("Content = %q, want %q", out.Content, want)
	}
	if out.Message != out.Content {
		t.Fatalf("Message = %q, want it to duplicate Content", out.Message)
	}
	if out.FileName != "package.json" {
		t.Fatalf("FileName = %q, want %q", out.FileName, "package.json")
	}
}

func TestRenderer_DiffTextUnescaped(t *testing.T) {
	r, err := New(config.Report{
		Kind:       config.Handlebars,
		Handlebars: &config.HandlebarsReport{Template: "{{diffText}}"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	out, err := r.Render("f.txt", FilterResult{DiffText: `<script>&"quotes"</script>`}, nil)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if strings.Contains(out.Content, "&lt;") {
		t.Fatalf("Content = %q, want raw diff text without HTML escaping", out.Content)
	}
	if out.Content != `<script>&"quotes"</script>` {
		t.Fatalf("Content = %q, want the raw diff text", out.Content)
	}
}

func TestRenderer_CompileError(t *testing.T) {
	_, err := New(config.Report{
		Kind:       config.Handlebars,
		Handlebars: &config.HandlebarsReport{Template: "{{#if}}"},
	})
	if err == nil {
		t.Fatal("New: want error for malformed template")
	}
}

func TestRenderer_NotifyPassthrough(t *testing.T) {
	r, err := New(config.Report{
		Kind:       config.Handlebars,
		Handlebars: &config.HandlebarsReport{Template: "ok"},
	})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	notify := config.NotifyConfig{"channel": "eng-alerts"}
	out, err := r.Render("f.txt", FilterResult{}, &notify)
	if err != nil {
		t.Fatalf("Render: %v", err)
	}
	if out.Notify == nil || (*out.Notify)["channel"] != "eng-alerts" {
		t.Fatalf("Notify = %+v, want passthrough of the signal's notify config", out.Notify)
	}
}
