package gitprovider

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"

	"github.com/dshills/warden/internal/content"
)

// Provider is a content.Provider backed by a local git checkout.
type Provider struct {
	// Root is the repository's working directory. Required for
	// working-tree reads; passed to git via -C for revision reads.
	Root string
}

// New creates a git-backed Provider rooted at root.
func New(root string) *Provider {
	return &Provider{Root: root}
}

// Fetch implements content.Provider.
func (p *Provider) Fetch(ctx context.Context, revision, path string) (*string, error) {
	if revision == "" || revision == content.WorkingTree {
		return p.readWorkingTree(path)
	}
	if revision == content.Index {
		return p.readRevision(ctx, "", path)
	}
	return p.readRevision(ctx, revision, path)
}

func (p *Provider) readWorkingTree(path string) (*string, error) {
	full := filepath.Join(p.Root, path)
	data, err := os.ReadFile(full)
	if err != nil {
		if os.IsNotExist(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("reading %s: %w", full, err)
	}
	s := string(data)
	return &s, nil
}

func (p *Provider) readRevision(ctx context.Context, revision, path string) (*string, error) {
	out, err := p.gitOutput(ctx, "show", revision+":"+path)
	if err != nil {
		if isMissingPathError(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("git show %s:%s: %w", revision, path, err)
	}
	return &out, nil
}

func (p *Provider) gitOutput(ctx context.Context, args ...string) (string, error) {
	fullArgs := args
	if p.Root != "" {
		fullArgs = append([]string{"-C", p.Root}, args...)
	}
	cmd := exec.CommandContext(ctx, "git", fullArgs...)
	out, err := cmd.Output()
	if err != nil {
		if exitErr, ok := err.(*exec.ExitError); ok {
			return string(out), fmt.Errorf("%s: %s", err, string(exitErr.Stderr))
		}
		return "", err
	}
	return string(out), nil
}

// isMissingPathError reports whether a "git show" failure indicates
// the path does not exist at that revision, as opposed to a real I/O
// or repository-level failure.
func isMissingPathError(err error) bool {
	msg := err.Error()
	return strings.Contains(msg, "does not exist") ||
		strings.Contains(msg, "exists on disk, but not in") ||
		strings.Contains(msg, "fatal: path")
}
