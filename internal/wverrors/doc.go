// Package wverrors defines the typed error taxonomy the engine raises at
// its component boundaries: configuration resolution, content retrieval,
// extraction, and rendering.
//
// Extractor failures normally collapse to empty extraction rather than
// propagating (see the watch package); an extractor that returns a
// [ToolNotFoundError], [UnsupportedLanguageError] or [ConfigError] is
// the exception — contract violations the runner must surface for the
// affected signal instead of silently swallowing.
package wverrors
