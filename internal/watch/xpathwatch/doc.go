// Package xpathwatch implements the xpath extractor kind: evaluating
// an XPath expression against content parsed as XML, with an optional
// namespace map bound for the evaluation.
package xpathwatch
