package config

import "testing"

func TestGlobs_Match(t *testing.T) {
	cases := []struct {
		pattern string
		path    string
		want    bool
	}{
		{"**/*", "anything.go", true},
		{"**/*", "a/b/c.go", true},
		{"*.json", "package.json", true},
		{"*.json", "a/package.json", false},
		{"**/*.json", "a/b/package.json", true},
		{"**/*.go", "main.go", true},
		{"src/**/*.ts", "src/a/b/x.ts", true},
		{"src/**/*.ts", "other/x.ts", false},
		{"**/.env", ".env", true},
		{"**/.env", "a/.env", true},
	}
	for _, tc := range cases {
		g := Globs{tc.pattern}
		if got := g.Match(tc.path); got != tc.want {
			t.Errorf("Globs{%q}.Match(%q) = %v, want %v", tc.pattern, tc.path, got, tc.want)
		}
	}
}

func TestGlobs_MatchAny(t *testing.T) {
	g := Globs{"*.md", "*.json"}
	if !g.Match("README.md") {
		t.Error("expected README.md to match")
	}
	if g.Match("main.go") {
		t.Error("expected main.go not to match")
	}
}
