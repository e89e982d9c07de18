package tsqwatch

import (
	"context"
	"strings"
	"testing"

	"github.com/dshills/warden/internal/config"
)

func TestExtractor_FunctionDeclarations(t *testing.T) {
	ex, err := New(&config.TSQWatch{Query: `(function_declaration name: (identifier) @name) @func`})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	got, err := ex.Extract(context.Background(), "package p\n\nfunc Foo() {}\n", "f.go")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if !strings.Contains(got.Text, "func Foo() {}") {
		t.Fatalf("Text = %q, want it to contain the function", got.Text)
	}
	if len(got.Context) == 0 {
		t.Fatal("Context is empty, want the @name capture as context")
	}
}

func TestExtractor_MissingExtension(t *testing.T) {
	ex, err := New(&config.TSQWatch{Query: `(function_declaration) @func`})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = ex.Extract(context.Background(), "func Foo() {}", "noext")
	if err == nil {
		t.Fatal("Extract: want error for path with no extension")
	}
}

func TestExtractor_UnsupportedExtension(t *testing.T) {
	ex, err := New(&config.TSQWatch{Query: `(x) @y`})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	_, err = ex.Extract(context.Background(), "data", "f.xyz")
	if err == nil {
		t.Fatal("Extract: want error for unsupported extension")
	}
}

func TestExtractor_ProducesLineRange(t *testing.T) {
	ex, err := New(&config.TSQWatch{Query: `(function_declaration) @func`})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	if !ex.ProducesLineRange() {
		t.Fatal("ProducesLineRange() = false, want true")
	}
}
