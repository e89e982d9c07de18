package astgrepwatch

import (
	"context"
	"testing"

	"github.com/dshills/warden/internal/config"
	"github.com/dshills/warden/internal/wverrors"
)

func TestNew_RequiresLanguage(t *testing.T) {
	_, err := New(&config.ASTGrepWatch{Pattern: config.ASTGrepPattern{Simple: "$X"}})
	if err == nil {
		t.Fatal("New: want error when language is empty")
	}
}

func TestExtract_ToolNotFound(t *testing.T) {
	old := binary
	binary = "warden-sg-does-not-exist"
	defer func() { binary = old }()

	ex, err := New(&config.ASTGrepWatch{Language: "go", Pattern: config.ASTGrepPattern{Simple: "$X"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}

	_, err = ex.Extract(context.Background(), "package p\n", "f.go")
	if err == nil {
		t.Fatal("Extract: want error when sg binary is missing")
	}
	var notFound *wverrors.ToolNotFoundError
	if !asToolNotFound(err, &notFound) {
		t.Fatalf("Extract error = %v, want *wverrors.ToolNotFoundError", err)
	}
}

func asToolNotFound(err error, target **wverrors.ToolNotFoundError) bool {
	e, ok := err.(*wverrors.ToolNotFoundError)
	if ok {
		*target = e
	}
	return ok
}

func TestExtract_EmptyContent(t *testing.T) {
	ex, err := New(&config.ASTGrepWatch{Language: "go", Pattern: config.ASTGrepPattern{Simple: "$X"}})
	if err != nil {
		t.Fatalf("New: %v", err)
	}
	got, err := ex.Extract(context.Background(), "", "f.go")
	if err != nil {
		t.Fatalf("Extract: %v", err)
	}
	if got.Text != "" {
		t.Fatalf("Text = %q, want empty", got.Text)
	}
}
