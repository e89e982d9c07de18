package regexwatch

import (
	"context"
	"testing"

	"github.com/dshills/warden/internal/config"
)

func TestExtractor_IdenticalMatches(t *testing.T) {
	ex, err := New(&config.RegexWatch{Pattern: "foo.*baz"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	old, err := ex.Extract(context.Background(), "foo bar baz", "f.txt")
	if err != nil {
		t.Fatalf("Extract(old): %v", err)
	}
	new_, err := ex.Extract(context.Background(), "foo bar baz\nother", "f.txt")
	if err != nil {
		t.Fatalf("Extract(new): %v", err)
	}
	if old.Text != new_.Text {
		t.Fatalf("old.Text = %q, new.Text = %q, want equal", old.Text, new_.Text)
	}
}

func TestExtractor_CaseInsensitiveFlag(t *testing.T) {
	ex, err := New(&config.RegexWatch{Pattern: "foo", Flags: "i"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	old, err := ex.Extract(context.Background(), "foo", "f.txt")
	if err != nil {
		t.Fatalf("Extract(old): %v", err)
	}
	if old.Text != "foo" {
		t.Fatalf("old.Text = %q, want %q", old.Text, "foo")
	}

	new_, err := ex.Extract(context.Background(), "FOO", "f.txt")
	if err != nil {
		t.Fatalf("Extract(new): %v", err)
	}
	if new_.Text != "FOO" {
		t.Fatalf("new.Text = %q, want %q", new_.Text, "FOO")
	}
}

func TestExtractor_NamedCaptureContext(t *testing.T) {
	ex, err := New(&config.RegexWatch{Pattern: `version=(?P<ver>\d+\.\d+\.\d+)`})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := ex.Extract(context.Background(), "version=1.2.3", "f.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if len(got.Context) != 1 {
		t.Fatalf("len(Context) = %d, want 1", len(got.Context))
	}
	if got.Context[0]["ver"] != "1.2.3" {
		t.Fatalf("Context[0][ver] = %q, want %q", got.Context[0]["ver"], "1.2.3")
	}
}

func TestExtractor_NoMatches(t *testing.T) {
	ex, err := New(&config.RegexWatch{Pattern: "nomatch"})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := ex.Extract(context.Background(), "hello", "f.txt")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.Text != "" {
		t.Fatalf("Text = %q, want empty", got.Text)
	}
	if got.Context != nil {
		t.Fatalf("Context = %v, want nil", got.Context)
	}
}
