// Package tsqwatch implements the tsq extractor kind: running a
// tree-sitter query against source code parsed with the language
// grammar resolved from the watch config or the file's extension.
//
// Grammars and compiled queries are cached process-wide in sync.Maps
// keyed by language and (language, query) respectively — there is no
// disk-backed persistence across runs, unlike the teacher's TTL cache,
// since query compilation is cheap and per-process caching is enough
// to avoid recompiling on every file in a single run.
package tsqwatch
