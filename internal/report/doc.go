// Package report renders a resolved report configuration against a
// watch's FilterResult into an Output ready for the runner to collect.
//
// One variant exists today: Handlebars-style templates, rendered with
// raymond. Template variables (filePath, diffText, left.artifact,
// right.artifact) are passed through unescaped, since template output
// is expected to be markdown, not HTML.
package report
