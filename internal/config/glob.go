package config

import (
	"regexp"
	"strings"
	"sync"
)

// Match reports whether path matches any of the globs, using
// minimatch-style semantics: "**" matches across path separators,
// "*" matches within one segment, "?" matches a single character.
func (g Globs) Match(path string) bool {
	for _, pattern := range g {
		if matchGlob(pattern, path) {
			return true
		}
	}
	return false
}

// globCompileCache is read and written from concurrent (file, signal)
// evaluations (§5), so it is guarded rather than a bare map.
var globCompileCache sync.Map // string -> *regexp.Regexp

func matchGlob(pattern, path string) bool {
	if cached, ok := globCompileCache.Load(pattern); ok {
		return cached.(*regexp.Regexp).MatchString(path)
	}
	re := compileGlob(pattern)
	globCompileCache.Store(pattern, re)
	return re.MatchString(path)
}

// compileGlob translates a minimatch-style glob into an anchored
// regular expression.
func compileGlob(pattern string) *regexp.Regexp {
	var b strings.Builder
	b.WriteString("^")
	runes := []rune(pattern)
	for i := 0; i < len(runes); i++ {
		c := runes[i]
		switch {
		case c == '*' && i+1 < len(runes) && runes[i+1] == '*':
			// "**" — match zero or more path segments, including the separator.
			b.WriteString(".*")
			i++
			// Swallow an immediately following slash: "**/x" also matches "x".
			if i+1 < len(runes) && runes[i+1] == '/' {
				i++
			}
		case c == '*':
			b.WriteString("[^/]*")
		case c == '?':
			b.WriteString("[^/]")
		case strings.ContainsRune(`.+()|^$\{}[]`, c):
			b.WriteString(regexp.QuoteMeta(string(c)))
		default:
			b.WriteRune(c)
		}
	}
	b.WriteString("$")
	re, err := regexp.Compile(b.String())
	if err != nil {
		// Fall back to a pattern that matches nothing rather than
		// panicking on a malformed glob.
		return regexp.MustCompile(`^\x00$`)
	}
	return re
}
