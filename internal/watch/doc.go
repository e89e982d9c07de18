// Package watch implements the shared scaffold every extractor kind
// runs through: absence-on-equality, unified-diff computation between
// the two extracted artifacts, line-range derivation from the diff's
// first hunk header, and symbolic-context deduplication.
//
// Five concrete extractor kinds live in the jqwatch, regexwatch,
// xpathwatch, tsqwatch, and astgrepwatch subpackages. Each implements
// [Extractor] and is invoked twice — once per side of a file-version
// pair — concurrently, since the two sides share no mutable state.
// [Dispatch] selects the extractor for a resolved [config.Watch] and
// runs it through [Run].
package watch
