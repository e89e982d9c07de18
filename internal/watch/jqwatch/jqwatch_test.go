package jqwatch

import (
	"context"
	"testing"

	"github.com/dshills/warden/internal/config"
)

func TestExtractor_VersionField(t *testing.T) {
	ex, err := New(&config.JQWatch{Query: ".version"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	old, err := ex.Extract(context.Background(), `{"version":"1.0.0"}`, "package.json")
	if err != nil {
		t.Fatalf("Extract(old): %v", err)
	}
	if old.Text != `"1.0.0"` {
		t.Fatalf("old.Text = %q, want %q", old.Text, `"1.0.0"`)
	}

	new_, err := ex.Extract(context.Background(), `{"version":"2.0.0"}`, "package.json")
	if err != nil {
		t.Fatalf("Extract(new): %v", err)
	}
	if new_.Text != `"2.0.0"` {
		t.Fatalf("new.Text = %q, want %q", new_.Text, `"2.0.0"`)
	}
}

func TestExtractor_AbsentField(t *testing.T) {
	ex, err := New(&config.JQWatch{Query: ".name"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	for _, content := range []string{`{"version":"1.0.0"}`, `{"version":"2.0.0"}`} {
		got, err := ex.Extract(context.Background(), content, "package.json")
		if err != nil {
			t.Fatalf("Extract: %v", err)
		}
		if got.Text != "null" {
			t.Fatalf("Text = %q, want %q", got.Text, "null")
		}
	}
}

func TestExtractor_EmptyContent(t *testing.T) {
	ex, err := New(&config.JQWatch{Query: ".a"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := ex.Extract(context.Background(), "", "x.json")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.Text != "" {
		t.Fatalf("Text = %q, want empty", got.Text)
	}
}

func TestExtractor_ProducesLineRange(t *testing.T) {
	ex, err := New(&config.JQWatch{Query: "."})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if ex.ProducesLineRange() {
		t.Fatal("ProducesLineRange() = true, want false")
	}
}
